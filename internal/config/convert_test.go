package config

import (
	"testing"

	"github.com/danmuck/meshghost/internal/meshmem"
)

func TestResolveGeometrySelectsCylinder(t *testing.T) {
	geom := ResolveGeometry(RunConfig{Geometry: "Cylinder", CylinderRadius: 2})
	cyl, ok := geom.(meshmem.CylinderGeometry)
	if !ok {
		t.Fatalf("got %T, want meshmem.CylinderGeometry", geom)
	}
	if cyl.Radius != 2 {
		t.Fatalf("got radius %v, want 2", cyl.Radius)
	}
}

func TestResolveGeometryDefaultsToPlanar(t *testing.T) {
	geom := ResolveGeometry(RunConfig{Geometry: "planar"})
	if _, ok := geom.(meshmem.PlanarGeometry); !ok {
		t.Fatalf("got %T, want meshmem.PlanarGeometry", geom)
	}
}
