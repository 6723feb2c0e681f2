package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World      renderer.World      // Intersectable content
	Light      *lights.PointLight  // The single light, nil renders every hit black
	Background renderer.Background // Seen by primary rays that miss
	Config     renderer.Config     // Render settings the scene was built for
}

// GetWorld returns the intersectable content
func (s *Scene) GetWorld() renderer.World {
	return s.World
}

// GetLight returns the scene light
func (s *Scene) GetLight() *lights.PointLight {
	return s.Light
}

// GetBackground returns the background
func (s *Scene) GetBackground() renderer.Background {
	return s.Background
}

// AddShape appends a shape to a shape-list world. Scenes whose world is an
// implicit surface cannot take additional shapes.
func (s *Scene) AddShape(shape geometry.Shape) bool {
	if s.World == nil {
		s.World = geometry.ShapeList{}
	}
	list, ok := s.World.(geometry.ShapeList)
	if !ok {
		return false
	}
	s.World = append(list, shape)
	return true
}

// GetPrimitiveCount returns the number of intersectable primitives, or 1
// for an implicit surface
func (s *Scene) GetPrimitiveCount() int {
	switch world := s.World.(type) {
	case geometry.ShapeList:
		return len(world)
	case nil:
		return 0
	default:
		return 1
	}
}

// albedo8 converts 8-bit color components to a linear albedo
func albedo8(r, g, b uint8) core.Color {
	return core.NewColor(float64(r)/255, float64(g)/255, float64(b)/255)
}
