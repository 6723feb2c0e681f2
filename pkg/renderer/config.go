package renderer

import (
	"errors"
	"fmt"
)

// Sidedness selects how the Lambertian cosine treats back-lit surfaces
type Sidedness int

const (
	// OneSided clamps the cosine term at zero
	OneSided Sidedness = iota
	// TwoSided uses the absolute cosine so both faces are lit alike
	TwoSided
)

// String returns the name used in scene files and flags
func (s Sidedness) String() string {
	switch s {
	case OneSided:
		return "one-sided"
	case TwoSided:
		return "two-sided"
	default:
		return "unknown"
	}
}

// ParseSidedness parses the names returned by String
func ParseSidedness(name string) (Sidedness, error) {
	switch name {
	case "one-sided", "":
		return OneSided, nil
	case "two-sided":
		return TwoSided, nil
	default:
		return OneSided, fmt.Errorf("unknown shading sidedness %q", name)
	}
}

// Config is the immutable render configuration
type Config struct {
	Width           int       // Image width in pixels
	Height          int       // Image height in pixels
	FOVDegrees      float64   // Field of view in degrees
	Gamma           float64   // Display gamma used when quantizing
	SamplesPerPixel int       // Rays per pixel; 1 uses the pixel center only
	Seed            int64     // Seed for sub-pixel jitter when SamplesPerPixel > 1
	ShadowBias      float64   // Offset along the normal for shadow ray origins
	Sidedness       Sidedness // Lambertian sidedness
}

// DefaultConfig returns the standard 800x600, 90 degree, gamma 2.2 setup
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		FOVDegrees:      90,
		Gamma:           2.2,
		SamplesPerPixel: 1,
		Seed:            42,
		ShadowBias:      1e-4,
		Sidedness:       OneSided,
	}
}

// Validate checks that the configuration can be rendered
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("resolution must be positive, got %dx%d", c.Width, c.Height))
	}
	if !(c.FOVDegrees > 0 && c.FOVDegrees < 180) {
		errs = append(errs, fmt.Errorf("field of view must be in (0, 180), got %g", c.FOVDegrees))
	}
	if !(c.Gamma > 0) {
		errs = append(errs, fmt.Errorf("gamma must be positive, got %g", c.Gamma))
	}
	if c.SamplesPerPixel < 1 {
		errs = append(errs, fmt.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel))
	}
	if c.ShadowBias < 0 {
		errs = append(errs, fmt.Errorf("shadow bias must not be negative, got %g", c.ShadowBias))
	}
	if c.Sidedness != OneSided && c.Sidedness != TwoSided {
		errs = append(errs, fmt.Errorf("unknown sidedness %d", c.Sidedness))
	}
	return errors.Join(errs...)
}
