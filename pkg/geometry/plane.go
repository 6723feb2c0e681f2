package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
	Albedo core.Color
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, albedo core.Color) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
		Albedo: albedo,
	}
}

// Intersect tests if a ray intersects with the plane in front of its origin
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return 0, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the plane normal
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}

// Color returns the plane's albedo
func (p *Plane) Color() core.Color {
	return p.Albedo
}
