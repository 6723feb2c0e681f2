package scene

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// MeshOptions controls how OBJ data is placed into a scene
type MeshOptions struct {
	Albedo core.Color

	// Fit scales and moves the mesh so its largest dimension is FitSize
	// and its bounding box is centered on FitCenter
	Fit       bool
	FitCenter r3.Vec
	FitSize   float64

	// CullAgainstCenterRay drops every triangle whose normal does not face
	// the ray through the image center. It is a whole-mesh approximation
	// and can drop faces that off-center pixels would see.
	CullAgainstCenterRay bool
}

// DefaultMeshOptions fits a light grey mesh three units in front of the
// camera
func DefaultMeshOptions() MeshOptions {
	return MeshOptions{
		Albedo:    core.NewColor(0.8, 0.8, 0.8),
		Fit:       true,
		FitCenter: r3.Vec{X: 0, Y: 0, Z: -3},
		FitSize:   2,
	}
}

// fitTransform returns the function mapping mesh coordinates into the
// fitted placement. A mesh with zero extent is only translated.
func fitTransform(bounds r3.Box, center r3.Vec, size float64) func(r3.Vec) r3.Vec {
	meshCenter := r3.Scale(0.5, r3.Add(bounds.Min, bounds.Max))
	extent := r3.Sub(bounds.Max, bounds.Min)
	largest := max(extent.X, extent.Y, extent.Z)

	scale := 1.0
	if largest > 0 {
		scale = size / largest
	}
	return func(v r3.Vec) r3.Vec {
		return r3.Add(r3.Scale(scale, r3.Sub(v, meshCenter)), center)
	}
}

func toVec3(v r3.Vec) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// NewMeshTriangles converts OBJ data into triangles with the given options
// applied. The second result is the number of triangles culled.
func NewMeshTriangles(data *loaders.OBJData, options MeshOptions) ([]geometry.Shape, int) {
	transform := func(v r3.Vec) r3.Vec { return v }
	if options.Fit {
		transform = fitTransform(data.Bounds(), options.FitCenter, options.FitSize)
	}

	centerRay := renderer.GenerateRay(0, 0, 1, 1, 90).Direction
	culled := 0

	shapes := make([]geometry.Shape, 0, len(data.Faces))
	for _, tri := range data.Triangles() {
		triangle := geometry.NewTriangle(
			toVec3(transform(tri[0])),
			toVec3(transform(tri[1])),
			toVec3(transform(tri[2])),
			options.Albedo,
		)
		if options.CullAgainstCenterRay && triangle.GetNormal().Dot(centerRay) >= 0 {
			culled++
			continue
		}
		shapes = append(shapes, triangle)
	}
	return shapes, culled
}

// NewMeshScene creates a scene showing an OBJ mesh. Triangles are shaded
// two-sided by a light at the camera without falloff.
func NewMeshScene(data *loaders.OBJData, options MeshOptions, config renderer.Config, logger core.Logger) *Scene {
	shapes, culled := NewMeshTriangles(data, options)
	if culled > 0 {
		logger.Printf("Culled %d of %d triangles facing away from the center ray\n", culled, len(data.Faces))
	}

	config.Sidedness = renderer.TwoSided

	return &Scene{
		World: geometry.ShapeList(shapes),
		Light: &lights.PointLight{
			Position:  core.NewVec3(0, 0, 1),
			Intensity: 1,
			Falloff:   lights.FalloffNone,
		},
		Background: SolidBackground(core.Black),
		Config:     config,
	}
}
