// Package seccannon enumerates integer solutions to the Simultaneous
// Equation Cannon system:
//
//	fusion + xyz     = stars
//	fusion + 2*xyz   = nb_cards
package seccannon

import (
	"sort"

	"github.com/ygo-tools/seccannon/pkg/seccannon/models"
)

// Bounds holds the inclusive enumeration ranges for both variables.
type Bounds struct {
	// FusionMin is the minimum fusion monster level.
	FusionMin int
	// FusionMax is the maximum fusion monster level.
	FusionMax int
	// XYZMin is the minimum xyz monster rank.
	XYZMin int
	// XYZMax is the maximum xyz monster rank.
	XYZMax int
}

// Validate checks the bounds, in a fixed order: fusion range ordering,
// xyz range ordering, then positivity of both minimums.
func (b Bounds) Validate() error {
	if b.FusionMin > b.FusionMax {
		return &BoundsError{Bounds: b, Err: ErrFusionOrder}
	}
	if b.XYZMin > b.XYZMax {
		return &BoundsError{Bounds: b, Err: ErrXYZOrder}
	}
	if b.FusionMin < 1 || b.XYZMin < 1 {
		return &BoundsError{Bounds: b, Err: ErrNotPositive}
	}
	return nil
}

// Count returns the number of solutions Solve produces for b.
func (b Bounds) Count() int {
	return (b.FusionMax - b.FusionMin + 1) * (b.XYZMax - b.XYZMin + 1)
}

// Solve enumerates every (fusion, xyz) pair within b and computes the
// derived stars and nb_cards values. The result is sorted by stars
// descending, then xyz descending; remaining ties keep enumeration order
// (fusion outer loop ascending, xyz inner loop ascending).
//
// b must have passed Validate.
func Solve(b Bounds) []models.Solution {
	solutions := make([]models.Solution, 0, b.Count())
	for fusion := b.FusionMin; fusion <= b.FusionMax; fusion++ {
		for xyz := b.XYZMin; xyz <= b.XYZMax; xyz++ {
			solutions = append(solutions, models.Solution{
				Fusion:  fusion,
				XYZ:     xyz,
				Stars:   fusion + xyz,
				NbCards: fusion + 2*xyz,
			})
		}
	}

	sort.SliceStable(solutions, func(i, j int) bool {
		if solutions[i].Stars != solutions[j].Stars {
			return solutions[i].Stars > solutions[j].Stars
		}
		return solutions[i].XYZ > solutions[j].XYZ
	})

	return solutions
}
