package sdf

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// EstimateNormal approximates the field gradient at p by central
// differences with step h and normalizes it. Only meaningful within about
// h of the surface.
func EstimateNormal(field SDF, p core.Vec3, h float64) core.Vec3 {
	dx := core.NewVec3(h, 0, 0)
	dy := core.NewVec3(0, h, 0)
	dz := core.NewVec3(0, 0, h)

	return core.NewVec3(
		field.Distance(p.Add(dx))-field.Distance(p.Subtract(dx)),
		field.Distance(p.Add(dy))-field.Distance(p.Subtract(dy)),
		field.Distance(p.Add(dz))-field.Distance(p.Subtract(dz)),
	).Normalize()
}
