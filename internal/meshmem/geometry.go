package meshmem

import (
	"math"

	"github.com/danmuck/meshghost/internal/meshapi"
)

// PlanarGeometry embeds every model entity's non-periodic parametric axes
// directly as Cartesian coordinates: SnapToModel is the identity on the
// first model.Dim components of param. It is the geometry kernel for flat
// test meshes with no periodic axis.
type PlanarGeometry struct{}

func (PlanarGeometry) SnapToModel(model meshapi.ModelEntity, param meshapi.Param) meshapi.Point {
	var pt meshapi.Point
	for k := 0; k < model.Dim && k < 3; k++ {
		pt[k] = param[k]
	}
	return pt
}

// CylinderGeometry evaluates a model whose first axis is periodic (angle,
// radians) and second axis is a plain height, onto the surface of a
// cylinder of the given radius: x=r*cos(theta), y=r*sin(theta), z=height.
// It is the periodic-axis geometry a run config selects with
// geometry = "cylinder" (see config.ResolveGeometry).
type CylinderGeometry struct {
	Radius float64
}

func (g CylinderGeometry) SnapToModel(model meshapi.ModelEntity, param meshapi.Param) meshapi.Point {
	theta := param[0]
	height := param[1]
	r := g.Radius
	if r == 0 {
		r = 1
	}
	return meshapi.Point{r * math.Cos(theta), r * math.Sin(theta), height}
}
