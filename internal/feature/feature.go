package feature

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rook-computer/artwork/internal/assets"
)

// Spec describes one artwork image: which screenshot it shows and the copy around it.
type Spec struct {
	OutputName string `json:"output_name"`
	SourceName string `json:"source_name"`
	Eyebrow    string `json:"eyebrow"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	// Link, when set, is rendered as a QR code under the subtitle.
	Link string `json:"link,omitempty"`
}

// File is the on-disk shape of a feature list.
type File struct {
	Features []Spec `json:"features"`
}

// Defaults returns the built-in feature list.
func Defaults() ([]Spec, error) {
	specs, err := Parse(assets.FeaturesJSON)
	if err != nil {
		return nil, fmt.Errorf("built-in features: %w", err)
	}
	return specs, nil
}

// Load reads a feature list from path. An empty path yields the built-in list.
func Load(path string) ([]Spec, error) {
	if path == "" {
		return Defaults()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	specs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

// Parse decodes and validates a JSON feature list.
func Parse(data []byte) ([]Spec, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if err := Validate(file.Features); err != nil {
		return nil, err
	}
	return file.Features, nil
}

// Validate checks that specs is non-empty, that file names are plain names, and that
// no two specs write the same output.
func Validate(specs []Spec) error {
	if len(specs) == 0 {
		return errors.New("no features defined")
	}
	seen := make(map[string]int, len(specs))
	for i, spec := range specs {
		if err := checkName(spec.OutputName); err != nil {
			return fmt.Errorf("feature %d output_name: %w", i, err)
		}
		if !strings.EqualFold(filepath.Ext(spec.OutputName), ".png") {
			return fmt.Errorf("feature %d output_name %q: must end in .png", i, spec.OutputName)
		}
		if err := checkName(spec.SourceName); err != nil {
			return fmt.Errorf("feature %d source_name: %w", i, err)
		}
		if prev, ok := seen[spec.OutputName]; ok {
			return fmt.Errorf("feature %d output_name %q already used by feature %d", i, spec.OutputName, prev)
		}
		seen[spec.OutputName] = i
	}
	return nil
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("must not be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%q must be a plain file name", name)
	}
	return nil
}
