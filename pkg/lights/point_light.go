package lights

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// PointLight is an isotropic light at a single position
type PointLight struct {
	Position  core.Vec3
	Intensity float64
	Falloff   Falloff
}

// NewPointLight creates a point light with inverse-square falloff
func NewPointLight(position core.Vec3, intensity float64) *PointLight {
	return &PointLight{
		Position:  position,
		Intensity: intensity,
		Falloff:   FalloffInverseSquare,
	}
}

// Sample returns direction, distance and attenuated intensity at a point.
// A point coinciding with the light gets zero intensity.
func (l *PointLight) Sample(point core.Vec3) LightSample {
	toLight := l.Position.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return LightSample{}
	}

	intensity := l.Intensity
	if l.Falloff == FalloffInverseSquare {
		intensity /= distance * distance
	}

	return LightSample{
		Direction: toLight.Multiply(1 / distance),
		Distance:  distance,
		Intensity: intensity,
	}
}
