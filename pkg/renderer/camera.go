package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// GenerateRay maps a pixel coordinate to a unit-direction ray from the
// world origin. The ray passes through the pixel center (x+0.5, y+0.5);
// the camera looks down -Z with +Y up and the horizontal field of view
// stretched by the aspect ratio.
func GenerateRay(x, y float64, width, height int, fovDegrees float64) core.Ray {
	return NewCamera(width, height, fovDegrees).rayThrough(x, y)
}

// Camera is a fixed pinhole at the origin. It caches the per-image
// constants used by GenerateRay.
type Camera struct {
	origin      core.Vec3
	width       float64
	height      float64
	aspectRatio float64
	scale       float64 // tan(fov/2)
}

// NewCamera creates a pinhole camera for an image of the given size
func NewCamera(width, height int, fovDegrees float64) *Camera {
	return &Camera{
		origin:      core.NewVec3(0, 0, 0),
		width:       float64(width),
		height:      float64(height),
		aspectRatio: float64(width) / float64(height),
		scale:       math.Tan(fovDegrees * math.Pi / 180.0 / 2.0),
	}
}

// GetRay returns the ray through the center of pixel (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	return c.rayThrough(float64(x), float64(y))
}

// GetRayOffset returns the ray through pixel (x, y) shifted by (dx, dy)
// pixels from its center. Offsets in [-0.5, 0.5) stay inside the pixel.
func (c *Camera) GetRayOffset(x, y int, dx, dy float64) core.Ray {
	return c.rayThrough(float64(x)+dx, float64(y)+dy)
}

func (c *Camera) rayThrough(x, y float64) core.Ray {
	ndcX := ((x+0.5)/c.width*2.0 - 1.0) * c.aspectRatio * c.scale
	ndcY := (1.0 - (y+0.5)/c.height*2.0) * c.scale

	direction := core.NewVec3(ndcX, ndcY, -1.0).Normalize()
	return core.NewRay(c.origin, direction)
}
