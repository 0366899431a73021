package snap

import (
	"context"
	"testing"

	"github.com/danmuck/meshghost/internal/meshapi"
	"github.com/danmuck/meshghost/internal/meshmem"
)

func TestDriverSnapsAllValidVertices(t *testing.T) {
	sim := meshmem.NewSimulation(1, 2)
	m := sim.Mesh(0)
	v := m.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 1, ID: 0}, meshapi.Point{0, 0, 0}, meshapi.Param{0.5, 0, 0})

	d := Driver{Mesh: m, Geometry: meshmem.PlanarGeometry{}, Operator: Snapper{}}
	report, err := d.Run(context.Background(), sim.Messaging(0))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Targets != 1 || report.Snapped != 1 {
		t.Fatalf("got %+v, want Targets=1 Snapped=1", report)
	}
	if got := m.Point(v); got != (meshapi.Point{0.5, 0, 0}) {
		t.Fatalf("got point %v, want {0.5,0,0}", got)
	}
}

func TestDriverLeavesPermanentlyInvalidVertexUnsnapped(t *testing.T) {
	sim := meshmem.NewSimulation(1, 2)
	m := sim.Mesh(0)
	v := m.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 1, ID: 0}, meshapi.Point{0, 0, 0}, meshapi.Param{0.5, 0, 0})
	e := m.CreateEntity(meshapi.DimEdge, meshapi.Classification{Dim: 1, ID: 1}, meshapi.Point{}, meshapi.Param{})
	m.Connect(e, v)
	original := m.Point(v)

	d := Driver{
		Mesh:     m,
		Geometry: meshmem.PlanarGeometry{},
		Operator: Snapper{},
		Validity: meshmem.PredicateValidity{Fn: func(e meshapi.Entity) bool { return false }},
	}

	report, err := d.Run(context.Background(), sim.Messaging(0))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Snapped != 0 {
		t.Fatalf("expected 0 snapped when everything is invalid, got %+v", report)
	}
	if got := m.Point(v); got != original {
		t.Fatalf("expected reverted point %v, got %v", original, got)
	}
}

// flipOnDig is a Validity/Digger pair sharing one flag: invalid until the
// digger runs, valid afterward. It exercises the phase boundary directly —
// phase one (no dig) must revert every round, phase two's first dig-then-
// attempt must succeed.
type flipOnDig struct{ dug *bool }

func (f flipOnDig) IsValid(meshapi.Entity) bool { return *f.dug }
func (f flipOnDig) Dig(mesh meshapi.Mesh, v meshapi.Entity) bool {
	if *f.dug {
		return false
	}
	*f.dug = true
	return true
}

func TestDriverRetriesWithDigAfterPhaseOneReverts(t *testing.T) {
	sim := meshmem.NewSimulation(1, 2)
	m := sim.Mesh(0)
	v := m.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 1, ID: 0}, meshapi.Point{0, 0, 0}, meshapi.Param{0.5, 0, 0})
	e := m.CreateEntity(meshapi.DimEdge, meshapi.Classification{Dim: 1, ID: 1}, meshapi.Point{}, meshapi.Param{})
	m.Connect(e, v)

	dug := false
	flip := flipOnDig{dug: &dug}
	d := Driver{
		Mesh:     m,
		Geometry: meshmem.PlanarGeometry{},
		Operator: Snapper{},
		Validity: flip,
		Digger:   flip,
	}

	report, err := d.Run(context.Background(), sim.Messaging(0))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Snapped != 1 {
		t.Fatalf("expected the dig-enabled phase to snap the vertex, got %+v", report)
	}
	if got := m.Point(v); got != (meshapi.Point{0.5, 0, 0}) {
		t.Fatalf("got point %v, want {0.5,0,0}", got)
	}
}

func TestDriverRequiresOperator(t *testing.T) {
	sim := meshmem.NewSimulation(1, 2)
	m := sim.Mesh(0)
	d := Driver{Mesh: m, Geometry: meshmem.PlanarGeometry{}}
	_, err := d.Run(context.Background(), sim.Messaging(0))
	if err != ErrNoOperator {
		t.Fatalf("got %v, want ErrNoOperator", err)
	}
}
