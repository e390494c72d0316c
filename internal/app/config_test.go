package app

import (
	"strings"
	"testing"
)

func TestDefaultConfigFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvWidth, "")
	t.Setenv(EnvHeight, "")
	t.Setenv(EnvAssetsDir, "")
	t.Setenv(EnvFeatures, "")

	cfg, err := DefaultConfigFromEnv()
	if err != nil {
		t.Fatalf("DefaultConfigFromEnv: %v", err)
	}
	if cfg.Width != 1440 || cfg.Height != 900 {
		t.Fatalf("size = %dx%d, want 1440x900", cfg.Width, cfg.Height)
	}
	if cfg.AssetsDir != ExecutableDir() {
		t.Fatalf("assets dir = %q, want executable dir %q", cfg.AssetsDir, ExecutableDir())
	}
	if cfg.FeaturesPath != "" {
		t.Fatalf("features path = %q, want empty", cfg.FeaturesPath)
	}
}

func TestDefaultConfigFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvWidth, "2880")
	t.Setenv(EnvHeight, "1800")
	t.Setenv(EnvAssetsDir, "/tmp/art")
	t.Setenv(EnvFeatures, "/tmp/art/features.json")

	cfg, err := DefaultConfigFromEnv()
	if err != nil {
		t.Fatalf("DefaultConfigFromEnv: %v", err)
	}
	if cfg.Width != 2880 || cfg.Height != 1800 || cfg.AssetsDir != "/tmp/art" || cfg.FeaturesPath != "/tmp/art/features.json" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestDefaultConfigFromEnvRejectsGarbage(t *testing.T) {
	t.Setenv(EnvWidth, "wide")
	_, err := DefaultConfigFromEnv()
	if err == nil || !strings.Contains(err.Error(), EnvWidth) {
		t.Fatalf("err = %v, want mention of %s", err, EnvWidth)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		cfg     Config
		wantErr bool
	}{
		{Config{Width: 1440, Height: 900, AssetsDir: "."}, false},
		{Config{Width: 0, Height: 900, AssetsDir: "."}, true},
		{Config{Width: 1440, Height: -5, AssetsDir: "."}, true},
		{Config{Width: 1440, Height: 900}, true},
	}
	for _, tt := range tests {
		if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) = %v, wantErr %v", tt.cfg, err, tt.wantErr)
		}
	}
}

func TestFontCandidatesPutsUserFontsFirst(t *testing.T) {
	cfg := Config{FontPaths: []string{"/fonts/a.ttf", "/fonts/b.otf"}}
	candidates := cfg.FontCandidates()
	if len(candidates) < 3 {
		t.Fatalf("len = %d", len(candidates))
	}
	if candidates[0].Path != "/fonts/a.ttf" || candidates[1].Path != "/fonts/b.otf" {
		t.Fatalf("first candidates = %+v", candidates[:2])
	}
	if last := candidates[len(candidates)-1]; len(last.Data) == 0 {
		t.Fatalf("last candidate %q is not the embedded font", last.Name)
	}
}
