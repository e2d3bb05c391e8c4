package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/menta2k/resfit/pkg/constraint"
	"github.com/menta2k/resfit/pkg/cropper"
)

// Config holds the application configuration
type Config struct {
	Fit    FitConfig    `json:"fit"`
	Crop   CropConfig   `json:"crop"`
	Output OutputConfig `json:"output"`
}

// FitConfig holds the resolution constraints
type FitConfig struct {
	MinRes     int    `json:"min_res"`
	MaxRes     int    `json:"max_res"`
	MultipleOf int    `json:"multiple_of"`
	Mode       string `json:"mode"`
}

// CropConfig holds configuration for the crop stage
type CropConfig struct {
	Enabled  bool   `json:"enabled"`
	Position string `json:"position"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	Format   string `json:"format"`
	Quality  int    `json:"quality"`
	Lossless bool   `json:"lossless"`
	Dir      string `json:"dir"`
	Suffix   string `json:"suffix"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Fit: FitConfig{
			MinRes:     704,
			MaxRes:     1280,
			MultipleOf: 8,
			Mode:       constraint.PrioritizeMin.String(),
		},
		Crop: CropConfig{
			Enabled:  false,
			Position: cropper.Center.String(),
		},
		Output: OutputConfig{
			Format:   "jpg",
			Quality:  90,
			Lossless: false,
			Dir:      "./out",
			Suffix:   "_fitted",
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Constraints converts the fit section to a validated constraint set
func (c *Config) Constraints() (constraint.Constraints, error) {
	mode, err := constraint.ParseMode(c.Fit.Mode)
	if err != nil {
		return constraint.Constraints{}, err
	}

	cs := constraint.Constraints{
		MinRes:     c.Fit.MinRes,
		MaxRes:     c.Fit.MaxRes,
		MultipleOf: c.Fit.MultipleOf,
		Mode:       mode,
	}
	if err := cs.Validate(); err != nil {
		return constraint.Constraints{}, err
	}
	return cs, nil
}

// Position converts the crop section's position name to its typed value
func (c *Config) Position() (cropper.Position, error) {
	return cropper.ParsePosition(c.Crop.Position)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := c.Constraints(); err != nil {
		return err
	}

	if _, err := c.Position(); err != nil {
		return err
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	switch c.Output.Format {
	case "jpg", "jpeg", "png", "webp":
	default:
		return fmt.Errorf("output.format must be one of jpg, png, webp")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "resfit", "config.json")
}
