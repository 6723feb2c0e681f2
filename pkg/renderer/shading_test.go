package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
)

// MockWorld implements World for testing
type MockWorld struct {
	hitFn      func(ray core.Ray) (geometry.HitRecord, bool)
	occludedFn func(ray core.Ray) bool
	shadowRays []core.Ray
}

func (m *MockWorld) Hit(ray core.Ray) (geometry.HitRecord, bool) {
	if m.hitFn == nil {
		return geometry.HitRecord{}, false
	}
	return m.hitFn(ray)
}

func (m *MockWorld) Occluded(ray core.Ray) bool {
	m.shadowRays = append(m.shadowRays, ray)
	if m.occludedFn == nil {
		return false
	}
	return m.occludedFn(ray)
}

func TestShade_Lambert(t *testing.T) {
	albedo := core.NewColor(0.8, 0.4, 0.2)
	// Surface at the origin facing +Y
	hit := geometry.HitRecord{
		T:      1,
		Point:  core.Vec3{},
		Normal: core.NewVec3(0, 1, 0),
		Albedo: albedo,
	}

	tests := []struct {
		name      string
		light     *lights.PointLight
		sidedness Sidedness
		expected  float64 // expected scale applied to albedo
	}{
		{
			name:     "light straight above",
			light:    &lights.PointLight{Position: core.NewVec3(0, 2, 0), Intensity: 8},
			expected: 2,
		},
		{
			name:     "light at 60 degrees",
			light:    &lights.PointLight{Position: core.NewVec3(math.Sqrt(3), 1, 0), Intensity: 4},
			expected: 0.5,
		},
		{
			name:     "light below is clamped when one-sided",
			light:    &lights.PointLight{Position: core.NewVec3(0, -1, 0), Intensity: 1},
			expected: 0,
		},
		{
			name:      "light below counts when two-sided",
			light:     &lights.PointLight{Position: core.NewVec3(0, -1, 0), Intensity: 1},
			sidedness: TwoSided,
			expected:  1,
		},
		{
			name:     "no falloff",
			light:    &lights.PointLight{Position: core.NewVec3(0, 10, 0), Intensity: 0.5, Falloff: lights.FalloffNone},
			expected: 0.5,
		},
		{
			name:     "no light",
			light:    nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.Sidedness = tt.sidedness

			color := Shade(hit, tt.light, &MockWorld{}, config)
			expected := albedo.Multiply(tt.expected)

			if math.Abs(color.R-expected.R) > 1e-9 ||
				math.Abs(color.G-expected.G) > 1e-9 ||
				math.Abs(color.B-expected.B) > 1e-9 {
				t.Errorf("Expected %v, got %v", expected, color)
			}
		})
	}
}

func TestShade_ShadowRay(t *testing.T) {
	hit := geometry.HitRecord{
		Point:  core.NewVec3(1, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
		Albedo: core.NewColor(1, 1, 1),
	}
	light := lights.NewPointLight(core.NewVec3(1, 3, 0), 9)
	config := DefaultConfig()

	world := &MockWorld{occludedFn: func(ray core.Ray) bool { return true }}
	if color := Shade(hit, light, world, config); color != core.Black {
		t.Errorf("Expected black in shadow, got %v", color)
	}

	if len(world.shadowRays) != 1 {
		t.Fatalf("Expected exactly one shadow ray, got %d", len(world.shadowRays))
	}
	shadow := world.shadowRays[0]
	expectedOrigin := core.NewVec3(1, config.ShadowBias, 0)
	if shadow.Origin.Subtract(expectedOrigin).Length() > 1e-15 {
		t.Errorf("Expected shadow origin %v, got %v", expectedOrigin, shadow.Origin)
	}
	if shadow.Direction.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-12 {
		t.Errorf("Expected shadow direction towards the light, got %v", shadow.Direction)
	}

	lit := Shade(hit, light, &MockWorld{}, config)
	if math.Abs(lit.R-1) > 1e-9 {
		t.Errorf("Expected unit irradiance when unoccluded, got %v", lit)
	}
}

func TestShade_TwoSidedTriangleLitFromBehind(t *testing.T) {
	albedo := core.NewColor(1, 1, 1)
	triangle := geometry.NewTriangle(
		core.NewVec3(-1, -1, -3),
		core.NewVec3(1, -1, -3),
		core.NewVec3(0, 1, -3),
		albedo,
	)
	world := geometry.ShapeList{triangle}

	hit, ok := world.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected the camera ray to hit the triangle")
	}

	tests := []struct {
		name      string
		lightZ    float64
		sidedness Sidedness
		expected  float64
	}{
		{"front light, one-sided", -1, OneSided, 1},
		{"front light, two-sided", -1, TwoSided, 1},
		{"back light, one-sided", -5, OneSided, 0},
		{"back light, two-sided", -5, TwoSided, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.Sidedness = tt.sidedness
			light := &lights.PointLight{
				Position:  core.NewVec3(0, 0, tt.lightZ),
				Intensity: 1,
				Falloff:   lights.FalloffNone,
			}

			color := Shade(hit, light, world, config)
			if math.Abs(color.R-tt.expected) > 1e-9 || color.R != color.G || color.G != color.B {
				t.Errorf("Expected grey %v, got %v", tt.expected, color)
			}
		})
	}
}
