package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/menta2k/resfit"
	"github.com/menta2k/resfit/internal/config"
	"github.com/menta2k/resfit/internal/utils"
	"github.com/menta2k/resfit/pkg/constraint"
	"github.com/menta2k/resfit/pkg/cropper"
)

// Rounding to the alignment multiple shifts the aspect ratio slightly;
// past this tolerance the deviation is worth calling out.
const driftTolerancePercent = 1.0

func main() {
	cfg := config.Default()
	if path := os.Getenv("RESFIT_CONFIG"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	} else if utils.FileExists(config.GetConfigPath()) {
		loaded, err := config.LoadFromFile(config.GetConfigPath())
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	var in, outDir, mode, pos, ext string
	var minRes, maxRes, multiple, quality int
	var crop, lossless, dimsOnly bool

	flag.StringVar(&in, "in", "", "input image path, directory, or URL (jpg/png/webp)")
	flag.StringVar(&outDir, "out", cfg.Output.Dir, "output directory")

	flag.IntVar(&minRes, "min", cfg.Fit.MinRes, "minimum resolution for both width and height (px)")
	flag.IntVar(&maxRes, "max", cfg.Fit.MaxRes, "maximum resolution for both width and height (px)")
	flag.IntVar(&multiple, "multiple", cfg.Fit.MultipleOf, "force dimensions to multiples of this number (e.g. 8 for SDXL)")
	flag.StringVar(&mode, "mode", cfg.Fit.Mode, "conflict handling for extreme aspect ratios: prioritize-min|prioritize-max")

	flag.BoolVar(&crop, "crop", cfg.Crop.Enabled, "crop to the exact target size instead of stretching")
	flag.StringVar(&pos, "pos", cfg.Crop.Position, "crop position: center|top|bottom|left|right")

	flag.StringVar(&ext, "ext", cfg.Output.Format, "output format: jpg|png|webp")
	flag.IntVar(&quality, "quality", cfg.Output.Quality, "JPEG/WebP output quality (1-100)")
	flag.BoolVar(&lossless, "lossless", cfg.Output.Lossless, "WebP lossless mode")

	flag.BoolVar(&dimsOnly, "dims", false, "print the constrained dimensions without writing an image")

	flag.Parse()
	if in == "" {
		log.Fatalf("usage: %s -in input.jpg|dir|URL [-min 704] [-max 1280] [-multiple 8] [-mode prioritize-min|prioritize-max] [-crop] [-pos center] [-out outdir] [-ext jpg|png|webp]", filepath.Base(os.Args[0]))
	}

	parsedMode, err := constraint.ParseMode(mode)
	if err != nil {
		log.Fatal(err)
	}
	parsedPos, err := cropper.ParsePosition(pos)
	if err != nil {
		log.Fatal(err)
	}

	fitter := resfit.NewWithConfig(resfit.Config{
		Constraints: constraint.Constraints{
			MinRes:     minRes,
			MaxRes:     maxRes,
			MultipleOf: multiple,
			Mode:       parsedMode,
		},
		Crop:     crop,
		Position: parsedPos,
	})

	inputs := []string{in}
	if utils.DirExists(in) {
		inputs, err = utils.ListImageFiles(in)
		if err != nil {
			log.Fatal(err)
		}
		if len(inputs) == 0 {
			log.Fatalf("no image files found in %s", in)
		}
	}

	if dimsOnly {
		for _, input := range inputs {
			img, err := fitter.LoadAny(input)
			if err != nil {
				log.Fatalf("%s: %v", input, err)
			}
			target, err := fitter.ResolveDimensions(img)
			if err != nil {
				log.Fatalf("%s: %v", input, err)
			}
			b := img.Bounds()
			fmt.Printf("%s: %dx%d -> %dx%d (scale %.4f)\n", input, b.Dx(), b.Dy(), target.Width, target.Height, target.Scale)
		}
		return
	}

	if err := utils.EnsureDir(outDir); err != nil {
		log.Fatal(err)
	}

	for _, input := range inputs {
		outPath := utils.GenerateOutputFilename(input, outDir, cfg.Output.Suffix, ext)

		result, err := fitter.ProcessFile(input, outPath, ext, quality, lossless)
		if err != nil {
			log.Printf("%s: %v", input, err)
			continue
		}

		log.Printf("wrote %s (%dx%d, ratio %.4f, was %.4f)",
			outPath, result.Width, result.Height, result.AspectRatio, result.OriginalAspectRatio)

		if result.AspectDrift > driftTolerancePercent {
			log.Printf("warning: aspect ratio deviation of %.2f%% due to rounding", result.AspectDrift)
		}
	}
}
