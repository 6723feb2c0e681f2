package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// ErrInvalidRadius is returned when a sphere is created with radius <= 0
var ErrInvalidRadius = errors.New("sphere radius must be positive")

// Sphere represents a sphere shape
type Sphere struct {
	Center  core.Vec3
	Radius  float64
	Albedo  core.Color
	radius2 float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, albedo core.Color) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidRadius, radius)
	}
	return &Sphere{
		Center:  center,
		Radius:  radius,
		Albedo:  albedo,
		radius2: radius * radius,
	}, nil
}

// Roots returns both intersection distances of the ray's line with the
// sphere, ordered so that t0 <= t1. The ray direction must be unit length.
func (s *Sphere) Roots(ray core.Ray) (t0, t1 float64, ok bool) {
	// Vector from ray origin to sphere center
	hyp := s.Center.Subtract(ray.Origin)
	// Distance along the ray to the point closest to the center
	tH := hyp.Dot(ray.Direction)
	// Squared distance from the center to the ray's line
	a2 := hyp.Dot(hyp) - tH*tH

	if a2 > s.radius2 {
		return 0, 0, false
	}

	thc := math.Sqrt(s.radius2 - a2)
	t0, t1 = tH-thc, tH+thc
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// Intersect returns the nearest non-negative root. A ray starting inside
// the sphere hits the far side.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	t0, t1, ok := s.Roots(ray)
	if !ok {
		return 0, false
	}

	if t0 < 0 {
		t0 = t1
		if t0 < 0 {
			return 0, false
		}
	}
	return t0, true
}

// NormalAt returns the outward unit normal at a point on the surface
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Color returns the sphere's albedo
func (s *Sphere) Color() core.Color {
	return s.Albedo
}
