// Package sdf implements implicit surfaces described by signed distance
// fields, intersected by sphere tracing.
//
// Every distance function here must never overestimate the true distance
// to its surface. Sphere tracing relies on that bound and nothing checks it
// at runtime.
package sdf

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// SDF is a signed distance field: negative inside, positive outside
type SDF interface {
	Distance(p core.Vec3) float64
}

// Func adapts an ordinary function to the SDF interface
type Func func(p core.Vec3) float64

// Distance calls f(p)
func (f Func) Distance(p core.Vec3) float64 {
	return f(p)
}

// Sphere is a sphere of the given radius
type Sphere struct {
	Center core.Vec3
	Radius float64
}

func (s Sphere) Distance(p core.Vec3) float64 {
	return p.Subtract(s.Center).Length() - s.Radius
}

// Box is an axis-aligned box, optionally with rounded edges.
// HalfExtents are measured before rounding is applied.
type Box struct {
	Center      core.Vec3
	HalfExtents core.Vec3
	Rounding    float64
}

func (b Box) Distance(p core.Vec3) float64 {
	q := p.Subtract(b.Center).Abs().Subtract(b.HalfExtents)
	outside := q.MaxScalar(0).Length()
	inside := min(q.MaxComponent(), 0)
	return outside + inside - b.Rounding
}

// CappedCylinder is a cylinder along the Y axis with flat caps
type CappedCylinder struct {
	Center     core.Vec3
	Radius     float64
	HalfHeight float64
}

func (c CappedCylinder) Distance(p core.Vec3) float64 {
	local := p.Subtract(c.Center)
	radial := math.Hypot(local.X, local.Z) - c.Radius
	axial := math.Abs(local.Y) - c.HalfHeight

	inside := min(max(radial, axial), 0)
	outside := math.Hypot(max(radial, 0), max(axial, 0))
	return inside + outside
}

// Union is the minimum over a fixed set of fields.
// An empty union is infinitely far from everything.
type Union []SDF

func (u Union) Distance(p core.Vec3) float64 {
	d := math.Inf(1)
	for _, field := range u {
		d = min(d, field.Distance(p))
	}
	return d
}

// Translate moves a field by Offset
type Translate struct {
	Field  SDF
	Offset core.Vec3
}

func (t Translate) Distance(p core.Vec3) float64 {
	return t.Field.Distance(p.Subtract(t.Offset))
}
