package renderer

import (
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(c *Config)
		expectError bool
	}{
		{"default config", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -5 }, true},
		{"zero fov", func(c *Config) { c.FOVDegrees = 0 }, true},
		{"fov of 180", func(c *Config) { c.FOVDegrees = 180 }, true},
		{"zero gamma", func(c *Config) { c.Gamma = 0 }, true},
		{"no samples", func(c *Config) { c.SamplesPerPixel = 0 }, true},
		{"negative shadow bias", func(c *Config) { c.ShadowBias = -1 }, true},
		{"unknown sidedness", func(c *Config) { c.Sidedness = Sidedness(7) }, true},
		{"two-sided", func(c *Config) { c.Sidedness = TwoSided }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)

			err := config.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Width != 800 || config.Height != 600 {
		t.Errorf("Expected 800x600, got %dx%d", config.Width, config.Height)
	}
	if config.FOVDegrees != 90 || config.Gamma != 2.2 || config.SamplesPerPixel != 1 {
		t.Errorf("Unexpected defaults: %+v", config)
	}
}

func TestParseSidedness(t *testing.T) {
	for _, s := range []Sidedness{OneSided, TwoSided} {
		parsed, err := ParseSidedness(s.String())
		if err != nil || parsed != s {
			t.Errorf("Round trip of %v gave %v, %v", s, parsed, err)
		}
	}
	if _, err := ParseSidedness("three-sided"); err == nil {
		t.Error("Expected error for unknown sidedness")
	}
}
