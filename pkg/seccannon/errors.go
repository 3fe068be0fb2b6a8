package seccannon

import (
	"errors"
	"fmt"
)

// ErrFusionOrder indicates fusion_min exceeds fusion_max.
var ErrFusionOrder = errors.New("fusion_min must be <= fusion_max")

// ErrXYZOrder indicates xyz_min exceeds xyz_max.
var ErrXYZOrder = errors.New("xyz_min must be <= xyz_max")

// ErrNotPositive indicates a level or rank bound below 1.
var ErrNotPositive = errors.New("all level/rank values must be >= 1")

// BoundsError reports the bounds that failed validation.
type BoundsError struct {
	Bounds Bounds
	Err    error
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("invalid bounds xyz[%d,%d] fusion[%d,%d]: %v",
		e.Bounds.XYZMin, e.Bounds.XYZMax, e.Bounds.FusionMin, e.Bounds.FusionMax, e.Err)
}

func (e *BoundsError) Unwrap() error {
	return e.Err
}
