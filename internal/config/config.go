package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"pixelscale/internal/imageio"
	"pixelscale/internal/resample"
)

// Target is one output size produced for every input image. Either Scale
// is set, or both Width and Height are. With Fit, Width x Height is a
// bounding box and the aspect ratio is kept; Pad then centers the result on
// a transparent canvas of exactly that box.
type Target struct {
	Name   string  `json:"name"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"`
	Fit    bool    `json:"fit"`
	Pad    bool    `json:"pad"`
}

// Config holds paths and resampling settings for a batch run.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`
	LogFile   string `json:"log_file"`

	// Resample settings
	Method      string   `json:"method"`
	Premultiply bool     `json:"premultiply"`
	Trim        bool     `json:"trim"`
	Targets     []Target `json:"targets"`

	// Output settings
	Format  string `json:"format"`
	Quality int    `json:"quality"`

	// Concurrency: files in flight, and row workers inside one resample.
	Workers    int `json:"workers"`
	RowWorkers int `json:"row_workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir  string
	OutputDir string
	Method    string
	Format    string
	Quality   int
	Workers   int

	// A non-zero size or scale replaces the configured targets.
	Width  int
	Height int
	Scale  float64
	Fit    bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Method != "" {
		c.Method = flags.Method
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Quality > 0 {
		c.Quality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Scale > 0 || flags.Width > 0 || flags.Height > 0 {
		c.Targets = []Target{{
			Width:  flags.Width,
			Height: flags.Height,
			Scale:  flags.Scale,
			Fit:    flags.Fit,
		}}
	}

	// Outputs go next to the input tree, never inside it, so a rerun does
	// not pick up its own results.
	if c.OutputDir == "" && c.InputDir != "" {
		c.OutputDir = filepath.Clean(c.InputDir) + "-resized"
	} else if c.OutputDir != "" && !filepath.IsAbs(c.OutputDir) && c.InputDir != "" {
		c.OutputDir = filepath.Join(filepath.Dir(filepath.Clean(c.InputDir)), c.OutputDir)
	}

	if c.Method == "" {
		c.Method = resample.Bicubic.String()
	}
	if c.Format == "" {
		c.Format = string(imageio.FormatWebP)
	}
	if c.Quality <= 0 {
		c.Quality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.RowWorkers <= 0 {
		c.RowWorkers = 1
	}
	for i := range c.Targets {
		if c.Targets[i].Name == "" {
			c.Targets[i].Name = c.Targets[i].defaultName()
		}
	}
}

func (t Target) defaultName() string {
	if t.Scale > 0 {
		return "x" + strconv.FormatFloat(t.Scale, 'g', -1, 64)
	}
	name := fmt.Sprintf("%dx%d", t.Width, t.Height)
	if t.Fit {
		name = "fit" + name
	}
	return name
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	var errs []error
	if c.InputDir == "" {
		errs = append(errs, errors.New("input dir is required"))
	}
	if _, err := resample.ParseMethod(c.Method); err != nil {
		errs = append(errs, err)
	}
	if _, err := imageio.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if len(c.Targets) == 0 {
		errs = append(errs, errors.New("at least one target is required"))
	}
	seen := make(map[string]bool)
	for i, t := range c.Targets {
		sized := t.Width > 0 || t.Height > 0
		switch {
		case t.Scale < 0:
			errs = append(errs, fmt.Errorf("target %d: negative scale %v", i, t.Scale))
		case t.Scale > 0 && sized:
			errs = append(errs, fmt.Errorf("target %d: set either scale or width/height", i))
		case t.Scale > 0 && (t.Fit || t.Pad):
			errs = append(errs, fmt.Errorf("target %d: scale cannot be combined with fit or pad", i))
		case t.Scale == 0 && (t.Width <= 0 || t.Height <= 0):
			errs = append(errs, fmt.Errorf("target %d: width and height must both be positive", i))
		}
		if t.Pad && !t.Fit {
			errs = append(errs, fmt.Errorf("target %d: pad requires fit", i))
		}
		if seen[t.Name] {
			errs = append(errs, fmt.Errorf("target %d: duplicate name %q", i, t.Name))
		}
		seen[t.Name] = true
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
