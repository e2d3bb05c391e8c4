package constraint

import (
	"errors"
	"fmt"
)

// ErrInvalidConstraints is returned when a constraint set is contradictory
// or outside the supported parameter domain.
var ErrInvalidConstraints = errors.New("invalid resolution constraints")

// Parameter domain limits
const (
	MaxResolution = 65536
	MaxMultiple   = 256
)

// Mode selects which bound wins when an extreme aspect ratio makes the
// minimum and maximum resolution constraints mutually unsatisfiable.
type Mode int

const (
	// PrioritizeMin scales so the shorter dimension meets MinRes, even if
	// the longer dimension then exceeds MaxRes.
	PrioritizeMin Mode = iota
	// PrioritizeMax scales so the longer dimension stays within MaxRes,
	// even if the shorter dimension then falls below MinRes.
	PrioritizeMax
)

// String returns the canonical name of the mode
func (m Mode) String() string {
	switch m {
	case PrioritizeMin:
		return "prioritize-min"
	case PrioritizeMax:
		return "prioritize-max"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name (as used in config files and CLI flags)
// to its Mode value
func ParseMode(s string) (Mode, error) {
	switch s {
	case "prioritize-min", "min":
		return PrioritizeMin, nil
	case "prioritize-max", "max":
		return PrioritizeMax, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidConstraints, s)
	}
}

// Constraints describes the numeric requirements an output size must meet
type Constraints struct {
	MinRes     int  // minimum for both width and height, in pixels
	MaxRes     int  // maximum for both width and height, in pixels
	MultipleOf int  // each output dimension must divide evenly by this
	Mode       Mode // conflict resolution for extreme aspect ratios
}

// Default returns the constraint set used when the caller supplies none.
// The values match common diffusion-model input requirements.
func Default() Constraints {
	return Constraints{
		MinRes:     704,
		MaxRes:     1280,
		MultipleOf: 8,
		Mode:       PrioritizeMin,
	}
}

// Validate reports whether the constraint set is usable. It must be called
// before any dimension math; later stages assume a validated set.
func (c Constraints) Validate() error {
	if c.MinRes < 1 {
		return fmt.Errorf("%w: min_res must be at least 1, got %d", ErrInvalidConstraints, c.MinRes)
	}
	if c.MinRes > MaxResolution {
		return fmt.Errorf("%w: min_res %d exceeds limit %d", ErrInvalidConstraints, c.MinRes, MaxResolution)
	}
	if c.MaxRes < c.MinRes {
		return fmt.Errorf("%w: max_res (%d) must be greater than or equal to min_res (%d)", ErrInvalidConstraints, c.MaxRes, c.MinRes)
	}
	if c.MaxRes > MaxResolution {
		return fmt.Errorf("%w: max_res %d exceeds limit %d", ErrInvalidConstraints, c.MaxRes, MaxResolution)
	}
	if c.MultipleOf < 1 {
		return fmt.Errorf("%w: multiple_of must be at least 1, got %d", ErrInvalidConstraints, c.MultipleOf)
	}
	if c.MultipleOf > MaxMultiple {
		return fmt.Errorf("%w: multiple_of %d exceeds limit %d", ErrInvalidConstraints, c.MultipleOf, MaxMultiple)
	}
	if c.Mode != PrioritizeMin && c.Mode != PrioritizeMax {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConstraints, int(c.Mode))
	}
	return nil
}
