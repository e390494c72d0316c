package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rook-computer/artwork/internal/render"
)

const (
	EnvWidth     = "ARTWORK_WIDTH"
	EnvHeight    = "ARTWORK_HEIGHT"
	EnvAssetsDir = "ARTWORK_ASSETS_DIR"
	EnvFeatures  = "ARTWORK_FEATURES"

	DefaultWidth        = 1440
	DefaultHeight       = 900
	DefaultPreviewDelay = 2 * time.Second
)

// Config contains the settings for one batch run.
type Config struct {
	Width  int
	Height int

	// AssetsDir holds the source screenshots and receives the rendered PNGs.
	AssetsDir string
	// FeaturesPath is a JSON feature list; empty means the built-in list.
	FeaturesPath string
	// FontPaths are tried before the default font candidates.
	FontPaths []string

	// PreviewDevice is a framebuffer device to show each page on; empty disables preview.
	PreviewDevice string
	PreviewDelay  time.Duration
}

// DefaultConfigFromEnv returns the defaults, overridden by ARTWORK_* environment variables.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		AssetsDir:    ExecutableDir(),
		FeaturesPath: os.Getenv(EnvFeatures),
		PreviewDelay: DefaultPreviewDelay,
	}
	if dir := os.Getenv(EnvAssetsDir); dir != "" {
		cfg.AssetsDir = dir
	}

	var err error
	if cfg.Width, err = intFromEnv(EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = intFromEnv(EnvHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce an image.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("output size must be positive (got %dx%d)", c.Width, c.Height)
	}
	if c.AssetsDir == "" {
		return errors.New("assets directory is required")
	}
	return nil
}

// FontCandidates puts the configured font files ahead of the defaults.
func (c Config) FontCandidates() []render.FontSource {
	candidates := make([]render.FontSource, 0, len(c.FontPaths)+4)
	for _, path := range c.FontPaths {
		candidates = append(candidates, render.FontSource{Path: path})
	}
	return append(candidates, render.DefaultFontCandidates()...)
}

// ExecutableDir is the directory of the running binary, or "." if it cannot be found.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func intFromEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer (got %q): %w", name, raw, err)
	}
	return parsed, nil
}
