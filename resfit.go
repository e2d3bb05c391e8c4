// Package resfit fits images to hard numeric resolution requirements:
// a minimum resolution, a maximum resolution, and multiple-of alignment,
// while keeping aspect-ratio distortion as small as possible.
//
// Basic usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/menta2k/resfit"
//	)
//
//	func main() {
//		fitter := resfit.New()
//
//		img, err := fitter.Load("photo.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		result, err := fitter.Process(img)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		fmt.Printf("Fitted to %dx%d (ratio %.4f, was %.4f)\n",
//			result.Width, result.Height, result.AspectRatio, result.OriginalAspectRatio)
//
//		if err := fitter.Save(result.Image, "photo_fitted.jpg", "jpg", 90, false); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of four main components:
//
// 1. Constraint (pkg/constraint): parameter validation and the priority mode
// 2. Resolver (pkg/resolver): chooses the uniform scale and aligned target size
// 3. Cropper (pkg/cropper): plans the cover-resize and crop box
// 4. Render (pkg/render): executes the plan and handles image I/O
//
// A single uniform scale is chosen so the shorter dimension meets the
// minimum and the longer stays within the maximum; when an extreme aspect
// ratio makes both impossible at once, the configured mode decides which
// bound wins. Each axis is then independently rounded to the nearest
// alignment multiple. With cropping enabled the pixel data is resized to
// cover the target and cropped, so the output carries no aspect distortion
// beyond that rounding; with cropping disabled the axes are stretched
// independently instead.
//
// Every call is stateless and independent, so one Constrainer may be shared
// across goroutines for batch work.
package resfit

import (
	"fmt"
	"image"
	"io"

	"github.com/menta2k/resfit/pkg/constraint"
	"github.com/menta2k/resfit/pkg/cropper"
	"github.com/menta2k/resfit/pkg/render"
	"github.com/menta2k/resfit/pkg/resolver"
)

// Version of the resfit library
const Version = "1.0.0"

// Config holds the full configuration for a Constrainer
type Config struct {
	Constraints constraint.Constraints
	Crop        bool             // crop to the exact target instead of stretching
	Position    cropper.Position // which part survives a crop
}

// DefaultConfig returns the configuration used by New
func DefaultConfig() Config {
	return Config{
		Constraints: constraint.Default(),
		Crop:        false,
		Position:    cropper.Center,
	}
}

// Constrainer provides a high-level interface for fitting images to
// resolution constraints
type Constrainer struct {
	config   Config
	renderer *render.Renderer
}

// New creates a Constrainer with default configuration
func New() *Constrainer {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Constrainer with custom configuration
func NewWithConfig(config Config) *Constrainer {
	return &Constrainer{
		config:   config,
		renderer: render.New(),
	}
}

// ResolveDimensions computes the constrained target size for an image
// without touching any pixel data. Use this when a downstream stage does
// the resampling itself and only the numbers are needed.
func (c *Constrainer) ResolveDimensions(img image.Image) (resolver.Target, error) {
	bounds := img.Bounds()
	orig := resolver.Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}
	return resolver.Resolve(orig, c.config.Constraints)
}

// Process resolves the target size for an image and renders the fitted
// output buffer. The input image is never mutated and is returned untouched
// in Result.Original.
func (c *Constrainer) Process(img image.Image) (render.Result, error) {
	target, err := c.ResolveDimensions(img)
	if err != nil {
		return render.Result{}, err
	}
	return c.renderer.Render(img, target, c.config.Crop, c.config.Position)
}

// ProcessFile loads an image from a file path or URL, fits it, and saves
// the result
func (c *Constrainer) ProcessFile(input, output, format string, quality int, lossless bool) (render.Result, error) {
	img, err := c.renderer.LoadAny(input)
	if err != nil {
		return render.Result{}, fmt.Errorf("failed to load image: %w", err)
	}

	result, err := c.Process(img)
	if err != nil {
		return render.Result{}, fmt.Errorf("fitting failed: %w", err)
	}

	if err := c.renderer.Save(result.Image, output, format, quality, lossless); err != nil {
		return render.Result{}, fmt.Errorf("failed to save image: %w", err)
	}

	return result, nil
}

// Load loads an image from a file path
func (c *Constrainer) Load(path string) (image.Image, error) {
	return c.renderer.Load(path)
}

// LoadFromReader loads an image from an io.Reader
func (c *Constrainer) LoadFromReader(reader io.Reader) (image.Image, error) {
	return c.renderer.LoadFromReader(reader)
}

// LoadAny loads an image from either a file path or URL
func (c *Constrainer) LoadAny(source string) (image.Image, error) {
	return c.renderer.LoadAny(source)
}

// Save saves an image to a file with the specified format and quality
func (c *Constrainer) Save(img image.Image, path, format string, quality int, lossless bool) error {
	return c.renderer.Save(img, path, format, quality, lossless)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
