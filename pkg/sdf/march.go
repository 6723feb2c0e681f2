package sdf

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// MarchConfig holds the termination policy for sphere tracing
type MarchConfig struct {
	MaxSteps    int     // Step budget per ray
	SurfaceDist float64 // Field values below this count as on the surface
	MaxDist     float64 // Accumulated distances beyond this count as a miss
}

// DefaultMarchConfig returns the standard policy: 100 steps, 0.01, 100.0
func DefaultMarchConfig() MarchConfig {
	return MarchConfig{
		MaxSteps:    100,
		SurfaceDist: 0.01,
		MaxDist:     100.0,
	}
}

// Hit reports whether a terminal march distance is a surface hit
func (c MarchConfig) Hit(d float64) bool {
	return d < c.MaxDist
}

// March sphere-traces the field along the ray and returns the terminal
// distance. Compare the result against MaxDist (or use Hit) to decide
// between hit and miss. The ray direction must be unit length.
func March(ray core.Ray, field SDF, config MarchConfig) float64 {
	d, _ := MarchSteps(ray, field, config)
	return d
}

// MarchSteps is March that also reports how many field evaluations it took
func MarchSteps(ray core.Ray, field SDF, config MarchConfig) (float64, int) {
	d := 0.0
	steps := 0

	for steps < config.MaxSteps {
		ds := field.Distance(ray.At(d))
		d += ds
		steps++
		if ds < config.SurfaceDist || d > config.MaxDist {
			break
		}
	}

	return d, steps
}
