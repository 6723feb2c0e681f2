package lights

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// Falloff selects how a light's intensity decays with distance
type Falloff int

const (
	// FalloffInverseSquare divides intensity by the squared distance
	FalloffInverseSquare Falloff = iota
	// FalloffNone keeps intensity constant with distance
	FalloffNone
)

// String returns the name used in scene files
func (f Falloff) String() string {
	switch f {
	case FalloffInverseSquare:
		return "inverse-square"
	case FalloffNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseFalloff converts a scene file name to a Falloff. An empty name
// selects inverse-square.
func ParseFalloff(name string) (Falloff, error) {
	switch name {
	case "", "inverse-square":
		return FalloffInverseSquare, nil
	case "none":
		return FalloffNone, nil
	default:
		return 0, fmt.Errorf("unknown falloff %q", name)
	}
}

// LightSample describes the light arriving at a shading point
type LightSample struct {
	Direction core.Vec3 // Unit direction from the shading point to the light
	Distance  float64   // Distance to the light
	Intensity float64   // Intensity after falloff, before the cosine term
}
