package renderer

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
)

// World is the intersectable content of a scene
type World interface {
	// Hit returns the nearest intersection in front of the ray origin
	Hit(ray core.Ray) (geometry.HitRecord, bool)
	// Occluded reports whether the ray hits anything at all
	Occluded(ray core.Ray) bool
}

// Background supplies the color of pixels whose primary ray misses
type Background interface {
	At(x, y int) core.Color
}

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() World
	GetLight() *lights.PointLight
	GetBackground() Background
}

// Raytracer casts primary rays for every pixel and shades the hits
type Raytracer struct {
	scene  Scene
	config Config
	camera *Camera
}

// NewRaytracer creates a new raytracer for a validated configuration
func NewRaytracer(scene Scene, config Config) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	return &Raytracer{
		scene:  scene,
		config: config,
		camera: NewCamera(config.Width, config.Height, config.FOVDegrees),
	}, nil
}

// Config returns the configuration the raytracer was built with
func (rt *Raytracer) Config() Config {
	return rt.config
}

// traceRay returns the linear color seen along a primary ray and whether
// it hit geometry
func (rt *Raytracer) traceRay(ray core.Ray, x, y int) (core.Color, bool) {
	hit, isHit := rt.scene.GetWorld().Hit(ray)
	if !isHit {
		if bg := rt.scene.GetBackground(); bg != nil {
			return bg.At(x, y), false
		}
		return core.Black, false
	}
	return Shade(hit, rt.scene.GetLight(), rt.scene.GetWorld(), rt.config), true
}

// RenderPixel returns the averaged linear color of one pixel. random is
// only consulted when more than one sample is taken.
func (rt *Raytracer) RenderPixel(x, y int, random *rand.Rand) PixelStats {
	var stats PixelStats

	if rt.config.SamplesPerPixel == 1 {
		color, hit := rt.traceRay(rt.camera.GetRay(x, y), x, y)
		stats.AddSample(color, hit)
		return stats
	}

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		dx := random.Float64() - 0.5
		dy := random.Float64() - 0.5
		color, hit := rt.traceRay(rt.camera.GetRayOffset(x, y, dx, dy), x, y)
		stats.AddSample(color, hit)
	}
	return stats
}

// RenderPass renders every pixel once, top row first, and returns the
// gamma-encoded framebuffer
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.config.Width, rt.config.Height))
	// Reseeded per pass so repeated renders are byte-identical
	random := rand.New(rand.NewSource(rt.config.Seed))

	stats := RenderStats{TotalPixels: rt.config.Width * rt.config.Height}

	for y := 0; y < rt.config.Height; y++ {
		for x := 0; x < rt.config.Width; x++ {
			pixel := rt.RenderPixel(x, y, random)

			stats.TotalSamples += pixel.SampleCount
			stats.HitSamples += pixel.HitCount
			stats.BackgroundSamples += pixel.SampleCount - pixel.HitCount

			img.SetRGBA(x, y, pixel.GetColor().ToRGBA(rt.config.Gamma))
		}
	}

	stats.Duration = time.Since(startTime)
	return img, stats
}
