package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	def := DefaultRunnerConfig()

	if fromYAML.Movement != def.Movement || fromYAML.Jump != def.Jump || fromYAML.Field != def.Field || fromYAML.Score != def.Score {
		t.Errorf("embedded YAML and DefaultRunnerConfig() disagree:\n%+v\n%+v", fromYAML, def)
	}
	if len(fromYAML.Templates) != len(def.Templates) {
		t.Errorf("templates: %d in YAML, %d hardcoded", len(fromYAML.Templates), len(def.Templates))
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Templates = nil
	cfg.Field.MinSpacing = 4
	cfg.Field.MaxSpacing = 2
	cfg.Field.UnstableChance = 1.5
	cfg.Movement.VelocityPower = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	msg := err.Error()
	for _, want := range []string{"template", "max_spacing", "unstable_chance", "velocity_power"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
	if !strings.HasPrefix(msg, "config: ") {
		t.Errorf("error should carry the package prefix, got %q", msg)
	}
}

func TestValidateTable(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero min spacing", func(c *RunnerConfig) { c.Field.MinSpacing = 0 }},
		{"upward gravity", func(c *RunnerConfig) { c.World.Gravity = 5 }},
		{"kill plane above platforms", func(c *RunnerConfig) { c.World.KillHeight = 1 }},
		{"zero ground layer", func(c *RunnerConfig) { c.Ground.Layer = 0 }},
		{"negative coyote time", func(c *RunnerConfig) { c.Jump.CoyoteTime = -1 }},
		{"negative pool", func(c *RunnerConfig) { c.Field.InitialPoolSize = -1 }},
		{"zero-width template", func(c *RunnerConfig) { c.Templates[0].Width = 0 }},
		{"negative save interval", func(c *RunnerConfig) { c.Score.SaveInterval = -1 }},
		{"unknown progression", func(c *RunnerConfig) { c.Difficulty.Progression.Type = "exponential" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadRunnerCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	doc := "jump:\n  force: 20\nfield:\n  min_spacing: 3\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Jump.Force != 20 || cfg.Field.MinSpacing != 3 {
		t.Errorf("overrides not applied: jump=%v min=%v", cfg.Jump.Force, cfg.Field.MinSpacing)
	}
	if cfg.Jump.CoyoteTime != DefaultRunnerConfig().Jump.CoyoteTime {
		t.Error("values absent from the file should keep their defaults")
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field:\n  min_spacing: 6\n  max_spacing: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, ""); err == nil {
		t.Error("Load() should validate the loaded config")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	def := DefaultRunnerConfig()
	data, err := Marshal(def)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	var back RunnerConfig
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Marshal output does not parse: %v", err)
	}
	if back.World != def.World || back.Platform != def.Platform {
		t.Error("Marshal output lost values")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		level       float64
		unstableMax float64
	}{
		{DifficultyEasy, true, 0.0, 0.25},
		{DifficultyNormal, true, 0.3, 0.5},
		{DifficultyHard, true, 0.7, 0.7},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled || cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("difficulty = %+v", cfg.Difficulty)
			}
			if cfg.Field.UnstableChance != tt.unstableMax {
				t.Errorf("unstable_chance = %v, expected %v", cfg.Field.UnstableChance, tt.unstableMax)
			}
			if cfg.Field.MinSpacing != 2 || cfg.Field.MaxSpacing != 5 {
				t.Error("presets must not change spacing bounds")
			}
		})
	}

	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) failed")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
}

func TestDifficultyManagerSpeed(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "distance", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		distance float64
		want     float64
	}{
		{0, 6},
		{50, 9},
		{100, 12},
		{1000, 12},
	}
	for _, tt := range tests {
		if got := dm.Speed(6, tt.distance, 0); got != tt.want {
			t.Errorf("Speed(6, %v) = %v, expected %v", tt.distance, got, tt.want)
		}
	}

	cfg.Progression.Type = "time"
	dm = NewDifficultyManager(cfg)
	if got := dm.Level(1000, 50); got != 0.5 {
		t.Errorf("time Level = %v, expected 0.5", got)
	}

	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	dm = NewDifficultyManager(cfg)
	if dm.IsEnabled() || dm.Level(1000, 1000) != 0.3 {
		t.Error("disabled manager should stay at the initial level")
	}
}
