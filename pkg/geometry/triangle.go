package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
// The plane normal and constant are derived from the vertices and only
// change through SetVertices.
type Triangle struct {
	v0, v1, v2 core.Vec3
	normal     core.Vec3 // Cached unit normal
	d          float64   // Cached plane constant, dot(normal, v0)
	Albedo     core.Color
}

// TriangleHit holds the distance and barycentric coordinates of a hit
type TriangleHit struct {
	T    float64
	U, V float64
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, albedo core.Color) *Triangle {
	t := &Triangle{Albedo: albedo}
	t.SetVertices(v0, v1, v2)
	return t
}

// SetVertices replaces the vertices and recomputes the plane
func (t *Triangle) SetVertices(v0, v1, v2 core.Vec3) {
	t.v0, t.v1, t.v2 = v0, v1, v2

	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	t.normal = edge1.Cross(edge2).Normalize()
	t.d = t.normal.Dot(v0)
}

// Vertices returns the three vertices in winding order
func (t *Triangle) Vertices() (core.Vec3, core.Vec3, core.Vec3) {
	return t.v0, t.v1, t.v2
}

// PlaneConstant returns d in the plane equation dot(n, p) = d
func (t *Triangle) PlaneConstant() float64 {
	return t.d
}

// IntersectBarycentric tests the ray against the triangle using the
// Möller-Trumbore algorithm. Only front faces (det > 0) are hit; rays
// parallel to the plane are rejected by the same test. The returned
// distance is not checked against the ray origin.
func (t *Triangle) IntersectBarycentric(ray core.Ray) (TriangleHit, bool) {
	edge1 := t.v1.Subtract(t.v0)
	edge2 := t.v2.Subtract(t.v0)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if det <= 0 {
		return TriangleHit{}, false
	}

	invDet := 1.0 / det
	tvec := ray.Origin.Subtract(t.v0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return TriangleHit{}, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return TriangleHit{}, false
	}

	return TriangleHit{
		T: edge2.Dot(qvec) * invDet,
		U: u,
		V: v,
	}, true
}

// Intersect returns the hit distance of the ray against the triangle
func (t *Triangle) Intersect(ray core.Ray) (float64, bool) {
	hit, ok := t.IntersectBarycentric(ray)
	return hit.T, ok
}

// NormalAt returns the precomputed plane normal
func (t *Triangle) NormalAt(point core.Vec3) core.Vec3 {
	return t.normal
}

// GetNormal returns the triangle's normal vector
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}

// Color returns the triangle's albedo
func (t *Triangle) Color() core.Color {
	return t.Albedo
}
