// Package models defines data structures for equation solutions.
package models

// Solution is one integer solution of the two-equation system
// fusion + xyz = stars, fusion + 2*xyz = nb_cards.
type Solution struct {
	// Fusion is the fusion monster level.
	Fusion int
	// XYZ is the xyz monster rank.
	XYZ int
	// Stars is the derived value fusion + xyz.
	Stars int
	// NbCards is the derived value fusion + 2*xyz.
	NbCards int
}
