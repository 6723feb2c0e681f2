package scene

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/sdf"
)

// SceneInfo describes a scene that can be selected by name
type SceneInfo struct {
	ID          string `json:"id"`          // Name used on the command line
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the scene file (file type only)
}

// BuiltinScenes lists the scenes available without a scene file
func BuiltinScenes() []SceneInfo {
	return []SceneInfo{
		{ID: "sphere", Name: "Single Sphere", Description: "One red sphere lit from the upper right", Type: "builtin"},
		{ID: "spheres", Name: "Three Spheres", Description: "Red, green and blue spheres over a gradient sky", Type: "builtin"},
		{ID: "sdf", Name: "Implicit Surface", Description: "Boxes and a disc traced through a distance field", Type: "builtin"},
	}
}

// NewBuiltinScene creates a built-in scene by ID
func NewBuiltinScene(id string, config renderer.Config) (*Scene, error) {
	switch id {
	case "sphere":
		return NewSingleSphereScene(config), nil
	case "spheres":
		return NewSpheresScene(config), nil
	case "sdf":
		return NewSDFScene(config), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", id)
	}
}

// mustSphere creates a sphere from constant parameters
func mustSphere(center core.Vec3, radius float64, albedo core.Color) *geometry.Sphere {
	sphere, err := geometry.NewSphere(center, radius, albedo)
	if err != nil {
		panic(err)
	}
	return sphere
}

// NewSingleSphereScene creates a red sphere five units ahead of the
// camera with a light above and to the right of it
func NewSingleSphereScene(config renderer.Config) *Scene {
	return &Scene{
		World: geometry.ShapeList{
			mustSphere(core.NewVec3(0, 0, -5), 1, albedo8(200, 35, 35)),
		},
		Light:      lights.NewPointLight(core.NewVec3(2, 1, -1), 5),
		Background: SolidBackground(core.Black),
		Config:     config,
	}
}

// NewSpheresScene creates three spheres of different sizes in front of a
// gradient sky
func NewSpheresScene(config renderer.Config) *Scene {
	return &Scene{
		World: geometry.ShapeList{
			mustSphere(core.NewVec3(-1, 0, -5), 3, albedo8(200, 35, 35)),
			mustSphere(core.NewVec3(2.2, 1, -3), 1, albedo8(35, 200, 35)),
			mustSphere(core.NewVec3(-3, -1, -2.8), 0.5, albedo8(35, 35, 200)),
		},
		Light: lights.NewPointLight(core.NewVec3(2, 1, -1), 5),
		Background: NewGradientBackground(config.Width, config.Height,
			core.NewColor(0.5, 0.7, 1.0), // Light blue
			core.NewColor(1.0, 1.0, 1.0), // White
			config.Gamma),
		Config: config,
	}
}

// NewSDFScene creates two boxes resting on a flat disc, all one implicit
// surface lit from the camera position without falloff
func NewSDFScene(config renderer.Config) *Scene {
	field := sdf.Translate{
		Field: sdf.Union{
			sdf.Box{Center: core.NewVec3(1, 0.25, -1), HalfExtents: core.NewVec3(0.1, 0.1, 0.1)},
			sdf.Box{Center: core.NewVec3(0.5, 0, -1), HalfExtents: core.NewVec3(0.25, 0.1, 0.1)},
			sdf.CappedCylinder{Center: core.NewVec3(0, 0, -1), Radius: 1, HalfHeight: 0.25},
		},
		Offset: core.NewVec3(0, -0.5, -3),
	}
	surface := sdf.NewSurface(field, core.NewColor(1, 0, 0))

	// Shadow rays must start clear of the surface band or they stop at once
	config.ShadowBias = 2 * surface.March.SurfaceDist

	return &Scene{
		World: surface,
		Light: &lights.PointLight{
			Position:  core.Vec3{},
			Intensity: 1,
			Falloff:   lights.FalloffNone,
		},
		Background: SolidBackground(core.Black),
		Config:     config,
	}
}
