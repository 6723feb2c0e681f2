package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// Vec3Cfg is an [x, y, z] triple
type Vec3Cfg [3]float64

func (v Vec3Cfg) vec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

// ColorCfg is a linear [r, g, b] triple, nominally in [0, 1]
type ColorCfg [3]float64

func (c ColorCfg) color() core.Color { return core.NewColor(c[0], c[1], c[2]) }

type LightCfg struct {
	Position  Vec3Cfg `json:"position"`
	Intensity float64 `json:"intensity"`
	Falloff   string  `json:"falloff,omitempty"` // "inverse-square" (default) or "none"
}

type SphereCfg struct {
	Center Vec3Cfg  `json:"center"`
	Radius float64  `json:"radius"`
	Color  ColorCfg `json:"color"`
}

type PlaneCfg struct {
	Point  Vec3Cfg  `json:"point"`
	Normal Vec3Cfg  `json:"normal"`
	Color  ColorCfg `json:"color"`
}

type TriangleCfg struct {
	Vertices [3]Vec3Cfg `json:"vertices"`
	Color    ColorCfg   `json:"color"`
}

type MeshCfg struct {
	Path      string    `json:"path"` // Relative to the scene file
	Color     *ColorCfg `json:"color,omitempty"`
	Fit       *bool     `json:"fit,omitempty"` // Defaults to true
	FitCenter *Vec3Cfg  `json:"fitCenter,omitempty"`
	FitSize   float64   `json:"fitSize,omitempty"`
	Cull      bool      `json:"cullAgainstCenterRay,omitempty"`
}

// BackgroundCfg selects at most one of a solid color, an image or a
// vertical gradient
type BackgroundCfg struct {
	Color    *ColorCfg    `json:"color,omitempty"`
	Image    string       `json:"image,omitempty"` // Relative to the scene file
	Gradient *GradientCfg `json:"gradient,omitempty"`
}

type GradientCfg struct {
	Top    ColorCfg `json:"top"`
	Bottom ColorCfg `json:"bottom"`
}

// FileCfg is the JSON scene file layout. Zero render settings keep the
// values they are applied to.
type FileCfg struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	FOV        float64 `json:"fov,omitempty"`
	Gamma      float64 `json:"gamma,omitempty"`
	Samples    int     `json:"samples,omitempty"`
	Seed       int64   `json:"seed,omitempty"`
	ShadowBias float64 `json:"shadowBias,omitempty"`
	Sidedness  string  `json:"sidedness,omitempty"`

	Light      *LightCfg      `json:"light,omitempty"`
	Spheres    []SphereCfg    `json:"spheres,omitempty"`
	Planes     []PlaneCfg     `json:"planes,omitempty"`
	Triangles  []TriangleCfg  `json:"triangles,omitempty"`
	Mesh       *MeshCfg       `json:"mesh,omitempty"`
	Background *BackgroundCfg `json:"background,omitempty"`

	dir string
}

// ReadSceneFile parses a JSON scene file. Unknown fields are rejected.
func ReadSceneFile(path string) (*FileCfg, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var cfg FileCfg
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return &cfg, nil
}

// ApplyTo overlays the file's render settings onto config
func (cfg *FileCfg) ApplyTo(config renderer.Config) (renderer.Config, error) {
	if cfg.Width != 0 {
		config.Width = cfg.Width
	}
	if cfg.Height != 0 {
		config.Height = cfg.Height
	}
	if cfg.FOV != 0 {
		config.FOVDegrees = cfg.FOV
	}
	if cfg.Gamma != 0 {
		config.Gamma = cfg.Gamma
	}
	if cfg.Samples != 0 {
		config.SamplesPerPixel = cfg.Samples
	}
	if cfg.Seed != 0 {
		config.Seed = cfg.Seed
	}
	if cfg.ShadowBias != 0 {
		config.ShadowBias = cfg.ShadowBias
	}
	if cfg.Sidedness != "" {
		sidedness, err := renderer.ParseSidedness(cfg.Sidedness)
		if err != nil {
			return config, err
		}
		config.Sidedness = sidedness
	}
	return config, nil
}

// resolve makes a path from the file relative to the file's directory
func (cfg *FileCfg) resolve(path string) string {
	if filepath.IsAbs(path) || cfg.dir == "" {
		return path
	}
	return filepath.Join(cfg.dir, path)
}

// Build creates the scene described by the file. config is used as given;
// call ApplyTo first to pick up the file's render settings.
func (cfg *FileCfg) Build(config renderer.Config, logger core.Logger) (*Scene, error) {
	s := &Scene{
		World:  geometry.ShapeList{},
		Config: config,
	}

	if cfg.Light != nil {
		falloff, err := lights.ParseFalloff(cfg.Light.Falloff)
		if err != nil {
			return nil, fmt.Errorf("light: %w", err)
		}
		s.Light = &lights.PointLight{
			Position:  cfg.Light.Position.vec3(),
			Intensity: cfg.Light.Intensity,
			Falloff:   falloff,
		}
	}

	for i, sc := range cfg.Spheres {
		sphere, err := geometry.NewSphere(sc.Center.vec3(), sc.Radius, sc.Color.color())
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.AddShape(sphere)
	}

	for i, pc := range cfg.Planes {
		normal := pc.Normal.vec3()
		if normal.LengthSquared() == 0 {
			return nil, fmt.Errorf("plane %d: zero normal", i)
		}
		s.AddShape(geometry.NewPlane(pc.Point.vec3(), normal, pc.Color.color()))
	}

	for _, tc := range cfg.Triangles {
		s.AddShape(geometry.NewTriangle(tc.Vertices[0].vec3(), tc.Vertices[1].vec3(), tc.Vertices[2].vec3(), tc.Color.color()))
	}

	if cfg.Mesh != nil {
		if err := cfg.addMesh(s, logger); err != nil {
			return nil, err
		}
	}

	background, err := cfg.buildBackground(config)
	if err != nil {
		return nil, err
	}
	s.Background = background

	logger.Printf("Built scene with %d primitives\n", s.GetPrimitiveCount())
	return s, nil
}

func (cfg *FileCfg) addMesh(s *Scene, logger core.Logger) error {
	data, err := loaders.LoadOBJ(cfg.resolve(cfg.Mesh.Path), logger)
	if err != nil {
		return fmt.Errorf("mesh: %w", err)
	}

	options := DefaultMeshOptions()
	if cfg.Mesh.Color != nil {
		options.Albedo = cfg.Mesh.Color.color()
	}
	if cfg.Mesh.Fit != nil {
		options.Fit = *cfg.Mesh.Fit
	}
	if cfg.Mesh.FitCenter != nil {
		options.FitCenter = r3.Vec{X: cfg.Mesh.FitCenter[0], Y: cfg.Mesh.FitCenter[1], Z: cfg.Mesh.FitCenter[2]}
	}
	if cfg.Mesh.FitSize > 0 {
		options.FitSize = cfg.Mesh.FitSize
	}
	options.CullAgainstCenterRay = cfg.Mesh.Cull

	shapes, culled := NewMeshTriangles(data, options)
	if culled > 0 {
		logger.Printf("Culled %d of %d triangles facing away from the center ray\n", culled, len(data.Faces))
	}
	for _, shape := range shapes {
		s.AddShape(shape)
	}
	return nil
}

func (cfg *FileCfg) buildBackground(config renderer.Config) (renderer.Background, error) {
	bg := cfg.Background
	if bg == nil {
		return SolidBackground(core.Black), nil
	}

	set := 0
	for _, present := range []bool{bg.Color != nil, bg.Image != "", bg.Gradient != nil} {
		if present {
			set++
		}
	}
	if set > 1 {
		return nil, errors.New("background: color, image and gradient are mutually exclusive")
	}

	switch {
	case bg.Color != nil:
		return SolidBackground(bg.Color.color()), nil
	case bg.Image != "":
		image, err := loaders.LoadImage(cfg.resolve(bg.Image))
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		return NewImageBackground(image, config.Gamma), nil
	case bg.Gradient != nil:
		return NewGradientBackground(config.Width, config.Height, bg.Gradient.Top.color(), bg.Gradient.Bottom.color(), config.Gamma), nil
	default:
		return SolidBackground(core.Black), nil
	}
}

// LoadSceneFile reads a scene file, applies its render settings to config
// and builds the scene
func LoadSceneFile(path string, config renderer.Config, logger core.Logger) (*Scene, error) {
	cfg, err := ReadSceneFile(path)
	if err != nil {
		return nil, err
	}
	config, err = cfg.ApplyTo(config)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	s, err := cfg.Build(config, logger)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return s, nil
}
