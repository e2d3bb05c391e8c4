// Package render executes resolved resize/crop plans and packages results.
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/menta2k/resfit/pkg/cropper"
	"github.com/menta2k/resfit/pkg/resolver"
)

// Result packages one finished invocation
type Result struct {
	Image               image.Image // fitted output, owned by the caller
	Original            image.Image // input image, never mutated
	Width               int
	Height              int
	AspectRatio         float64 // Width/Height, rounded to 4 decimals
	OriginalAspectRatio float64 // rounded to 4 decimals
	AspectDrift         float64 // percent deviation between the two ratios
}

// Renderer applies bilinear resampling and cropping to realize a resolved
// target. It holds no per-invocation state and is safe for concurrent use.
type Renderer struct {
	filter imaging.ResampleFilter
}

// New creates a Renderer using bilinear resampling
func New() *Renderer {
	return &Renderer{filter: imaging.Linear}
}

// Render produces the output buffer for a resolved target.
//
// With crop enabled the image is uniformly resized to the smallest size
// covering the target, then the slack is cropped away at the given
// position; the output matches the target exactly with no aspect
// distortion. With crop disabled each axis is stretched independently to
// the target, the only path where the pixel aspect ratio may diverge from
// the original beyond rounding.
func (r *Renderer) Render(img image.Image, target resolver.Target, crop bool, pos cropper.Position) (Result, error) {
	bounds := img.Bounds()
	orig := resolver.Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}
	if orig.Width < 1 || orig.Height < 1 {
		return Result{}, fmt.Errorf("%w: image bounds %dx%d", resolver.ErrDegenerateGeometry, orig.Width, orig.Height)
	}
	if target.Width < 1 || target.Height < 1 {
		return Result{}, fmt.Errorf("%w: target %dx%d", resolver.ErrDegenerateGeometry, target.Width, target.Height)
	}

	var out image.Image
	switch {
	case orig == target.Dimensions:
		// Already at target size; clone so the result never aliases the input.
		out = imaging.Clone(img)
	case crop:
		intermediate, _ := cropper.CoverSize(orig, target.Dimensions)
		covered := imaging.Resize(img, intermediate.Width, intermediate.Height, r.filter)
		box := cropper.Plan(intermediate, target.Dimensions, pos)
		out = imaging.Crop(covered, box.Rect())
	default:
		out = imaging.Resize(img, target.Width, target.Height, r.filter)
	}

	return assemble(out, img, orig, target.Dimensions), nil
}

func assemble(out, original image.Image, orig, target resolver.Dimensions) Result {
	finalRatio := roundRatio(target.AspectRatio())
	origRatio := roundRatio(orig.AspectRatio())

	var drift float64
	if origRatio > 0 {
		drift = math.Abs((finalRatio - origRatio) / origRatio * 100)
	}

	return Result{
		Image:               out,
		Original:            original,
		Width:               target.Width,
		Height:              target.Height,
		AspectRatio:         finalRatio,
		OriginalAspectRatio: origRatio,
		AspectDrift:         drift,
	}
}

func roundRatio(r float64) float64 {
	return math.Round(r*10000) / 10000
}
