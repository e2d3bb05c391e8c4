// Package cropper plans the cover-resize and crop that realize a resolved
// target size without aspect distortion in the pixel data.
package cropper

import (
	"fmt"
	"image"
	"math"

	"github.com/menta2k/resfit/pkg/resolver"
)

// Position selects which part of the covering image survives the crop
type Position int

const (
	Center Position = iota
	Top
	Bottom
	Left
	Right
)

// String returns the canonical name of the position
func (p Position) String() string {
	switch p {
	case Center:
		return "center"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// ParsePosition converts a position name (as used in config files and CLI
// flags) to its Position value
func ParsePosition(s string) (Position, error) {
	switch s {
	case "center":
		return Center, nil
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown crop position %q", s)
	}
}

// Box is the pixel region extracted from an intermediate covering image.
// Width and Height always equal the resolved target exactly.
type Box struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// Rect returns the box as an image.Rectangle for the crop primitive
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.OffsetX, b.OffsetY, b.OffsetX+b.Width, b.OffsetY+b.Height)
}

// CoverSize returns the smallest uniformly scaled size of orig that spans
// target in both axes, together with the scale used. One axis lands exactly
// on the target (zero slack); the other carries the slack the crop removes.
func CoverSize(orig, target resolver.Dimensions) (resolver.Dimensions, float64) {
	scale := math.Max(
		float64(target.Width)/float64(orig.Width),
		float64(target.Height)/float64(orig.Height),
	)

	w := int(math.Round(float64(orig.Width) * scale))
	h := int(math.Round(float64(orig.Height) * scale))

	// Rounding may land one pixel short; the crop must never upscale.
	if w < target.Width {
		w = target.Width
	}
	if h < target.Height {
		h = target.Height
	}

	return resolver.Dimensions{Width: w, Height: h}, scale
}

// Plan computes the crop box that extracts target from intermediate at the
// given position. Centered splits use floor division, so an odd pixel of
// slack is trimmed from the trailing edge.
func Plan(intermediate, target resolver.Dimensions, pos Position) Box {
	slackX := intermediate.Width - target.Width
	slackY := intermediate.Height - target.Height

	b := Box{
		OffsetX: slackX / 2,
		OffsetY: slackY / 2,
		Width:   target.Width,
		Height:  target.Height,
	}

	switch pos {
	case Top:
		b.OffsetY = 0
	case Bottom:
		b.OffsetY = slackY
	case Left:
		b.OffsetX = 0
	case Right:
		b.OffsetX = slackX
	}

	return b
}
