package renderer

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
)

// Shade computes direct Lambertian lighting from a single point light.
// The shadow ray counts any hit as occluding, regardless of whether the
// occluder lies past the light.
func Shade(hit geometry.HitRecord, light *lights.PointLight, world World, config Config) core.Color {
	if light == nil {
		return core.Black
	}

	sample := light.Sample(hit.Point)
	if sample.Distance == 0 {
		return core.Black
	}

	// Two-sided surfaces are lit on whichever side faces the light, and the
	// shadow ray must leave from that side.
	normal := hit.Normal
	if config.Sidedness == TwoSided && normal.Dot(sample.Direction) < 0 {
		normal = normal.Negate()
	}

	shadowRay := core.NewRay(hit.Point.Add(normal.Multiply(config.ShadowBias)), sample.Direction)
	if world.Occluded(shadowRay) {
		return core.Black
	}

	cosine := max(0, normal.Dot(sample.Direction))
	return hit.Albedo.Multiply(cosine * sample.Intensity)
}
