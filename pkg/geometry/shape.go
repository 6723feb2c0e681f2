package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T      float64    // Parameter t along the ray
	Point  core.Vec3  // Point of intersection
	Normal core.Vec3  // Unit surface normal at intersection
	Albedo core.Color // Diffuse reflectance of the surface
}

// Shape is an analytic primitive that can be intersected by rays
type Shape interface {
	// Intersect returns the hit distance along the ray, or false for no hit
	Intersect(ray core.Ray) (float64, bool)
	// NormalAt returns the unit surface normal at a point on the shape
	NormalAt(point core.Vec3) core.Vec3
	// Color returns the diffuse albedo of the shape
	Color() core.Color
}

// ShapeList is an ordered collection of shapes searched by linear scan
type ShapeList []Shape

// Nearest returns the index and distance of the closest shape hit by the ray.
// Only hits in front of the ray origin (t > 0) count. Ties keep the shape
// inserted first.
func (l ShapeList) Nearest(ray core.Ray) (int, float64, bool) {
	index := -1
	closest := math.MaxFloat64

	for i, shape := range l {
		if t, ok := shape.Intersect(ray); ok && t > 0 && t < closest {
			closest = t
			index = i
		}
	}

	if index < 0 {
		return -1, 0, false
	}
	return index, closest, true
}

// Hit returns the full hit record of the nearest intersection
func (l ShapeList) Hit(ray core.Ray) (HitRecord, bool) {
	index, t, ok := l.Nearest(ray)
	if !ok {
		return HitRecord{}, false
	}

	shape := l[index]
	point := ray.At(t)
	return HitRecord{
		T:      t,
		Point:  point,
		Normal: shape.NormalAt(point),
		Albedo: shape.Color(),
	}, true
}

// Occluded reports whether any shape is hit by the ray at all.
// The hit distance is not compared to anything, so occluders beyond
// a light still count.
func (l ShapeList) Occluded(ray core.Ray) bool {
	for _, shape := range l {
		if t, ok := shape.Intersect(ray); ok && t > 0 {
			return true
		}
	}
	return false
}
