package sdf

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// Surface is a renderable implicit surface with a single hue
type Surface struct {
	Field  SDF
	Albedo core.Color
	March  MarchConfig
}

// NewSurface creates a surface with the default march policy
func NewSurface(field SDF, albedo core.Color) *Surface {
	return &Surface{
		Field:  field,
		Albedo: albedo,
		March:  DefaultMarchConfig(),
	}
}

// Hit sphere-traces the ray and, on a hit, estimates the normal at the
// terminal point with a step of SurfaceDist
func (s *Surface) Hit(ray core.Ray) (geometry.HitRecord, bool) {
	d := March(ray, s.Field, s.March)
	if !s.March.Hit(d) {
		return geometry.HitRecord{}, false
	}

	point := ray.At(d)
	return geometry.HitRecord{
		T:      d,
		Point:  point,
		Normal: EstimateNormal(s.Field, point, s.March.SurfaceDist),
		Albedo: s.Albedo,
	}, true
}

// Occluded reports whether the ray reaches the surface within MaxDist.
// The origin must start clear of the surface by more than SurfaceDist or
// the march stops on its first step.
func (s *Surface) Occluded(ray core.Ray) bool {
	return s.March.Hit(March(ray, s.Field, s.March))
}
