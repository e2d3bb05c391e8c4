// Package resolver computes output dimensions that satisfy minimum
// resolution, maximum resolution, and multiple-of alignment constraints
// while keeping aspect-ratio distortion as small as possible.
//
// Resolution works in two steps: a single uniform scale factor is chosen
// for both axes, then each axis is independently rounded to the nearest
// multiple of the alignment value. The per-axis rounding is the only
// source of aspect drift between the scaled rectangle and the integer
// target; callers that need pixel-exact aspect preservation combine the
// resolved target with the cropper package.
package resolver

import (
	"errors"
	"fmt"
	"math"

	"github.com/menta2k/resfit/pkg/constraint"
)

// ErrDegenerateGeometry is returned when an input or computed dimension
// would be zero or negative.
var ErrDegenerateGeometry = errors.New("degenerate image geometry")

// Dimensions is a width/height pair in pixels
type Dimensions struct {
	Width  int
	Height int
}

// AspectRatio returns width divided by height, or 0 for a zero height
func (d Dimensions) AspectRatio() float64 {
	if d.Height == 0 {
		return 0
	}
	return float64(d.Width) / float64(d.Height)
}

// Target is a resolved output size together with the uniform scale that
// produced it (before alignment rounding).
type Target struct {
	Dimensions
	Scale float64
}

// ScaleBounds returns the feasible scale interval for the original size:
// lo is the scale at which the shorter dimension reaches exactly MinRes,
// hi the scale at which the longer dimension reaches exactly MaxRes.
// lo > hi means the aspect ratio is too extreme to satisfy both bounds
// with any single scale.
func ScaleBounds(orig Dimensions, c constraint.Constraints) (lo, hi float64) {
	short := math.Min(float64(orig.Width), float64(orig.Height))
	long := math.Max(float64(orig.Width), float64(orig.Height))
	return float64(c.MinRes) / short, float64(c.MaxRes) / long
}

// Resolve computes the aligned target size for an original size under the
// given constraints.
//
// In the feasible case the scale is clamp(1.0, lo, hi): an image already
// within bounds keeps scale 1.0 and is not resampled for nothing; one
// outside the bounds moves to the nearest boundary. In the conflict case
// (lo > hi) the constraint mode picks which bound wins. The chosen scale
// is applied uniformly, then each axis rounds independently to the nearest
// MultipleOf.
func Resolve(orig Dimensions, c constraint.Constraints) (Target, error) {
	if err := c.Validate(); err != nil {
		return Target{}, err
	}
	if orig.Width < 1 || orig.Height < 1 {
		return Target{}, fmt.Errorf("%w: original size %dx%d", ErrDegenerateGeometry, orig.Width, orig.Height)
	}

	lo, hi := ScaleBounds(orig, c)

	var scale float64
	switch {
	case lo <= hi:
		scale = clamp(1.0, lo, hi)
	case c.Mode == constraint.PrioritizeMin:
		// Shorter dimension meets MinRes; longer may exceed MaxRes.
		scale = lo
	default:
		// Longer dimension stays within MaxRes; shorter may fall below MinRes.
		scale = hi
	}

	w := roundToMultiple(float64(orig.Width)*scale, c.MultipleOf)
	h := roundToMultiple(float64(orig.Height)*scale, c.MultipleOf)
	if w < 1 || h < 1 {
		// Unreachable given the zero clamp in roundToMultiple, kept as a
		// guard against pathological inputs.
		return Target{}, fmt.Errorf("%w: resolved size %dx%d", ErrDegenerateGeometry, w, h)
	}

	return Target{Dimensions: Dimensions{Width: w, Height: h}, Scale: scale}, nil
}

// roundToMultiple rounds v to the nearest multiple of m, ties away from
// zero. A result of zero is raised to m: a zero dimension is never valid.
func roundToMultiple(v float64, m int) int {
	n := int(math.Floor(v/float64(m) + 0.5))
	if n < 1 {
		n = 1
	}
	return n * m
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
