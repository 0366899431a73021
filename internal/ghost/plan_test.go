package ghost

import (
	"errors"
	"testing"

	"github.com/danmuck/meshghost/internal/meshapi"
	"github.com/danmuck/meshghost/internal/meshmem"
)

func TestPlanSendAndSending(t *testing.T) {
	tri := meshmem.NewTwoPartTriangles()
	m0 := tri.Sim.Mesh(0)
	plan := NewPlan(m0)

	if err := plan.Send(tri.V0, meshapi.DimVertex, 1); err != nil {
		t.Fatalf("send: %v", err)
	}
	if !plan.Has(tri.V0, meshapi.DimVertex) {
		t.Fatalf("expected Has true after Send")
	}
	if got := plan.Sending(tri.V0, meshapi.DimVertex); len(got) != 1 || got[0] != 1 {
		t.Fatalf("got %v, want [1]", got)
	}
	if plan.Count(meshapi.DimVertex) != 1 {
		t.Fatalf("got count %d, want 1", plan.Count(meshapi.DimVertex))
	}
}

func TestPlanSendRejectsSelfGhost(t *testing.T) {
	tri := meshmem.NewTwoPartTriangles()
	m0 := tri.Sim.Mesh(0)
	plan := NewPlan(m0)

	err := plan.Send(tri.V0, meshapi.DimVertex, tri.V0.EntityKey().Part)
	if !errors.Is(err, ErrSelfGhost) {
		t.Fatalf("got %v, want ErrSelfGhost", err)
	}
}

func TestPlanSendAllStopsOnFirstError(t *testing.T) {
	tri := meshmem.NewTwoPartTriangles()
	m0 := tri.Sim.Mesh(0)
	plan := NewPlan(m0)

	err := plan.SendAll(tri.V0, meshapi.DimVertex, []int{1, tri.V0.EntityKey().Part})
	if !errors.Is(err, ErrSelfGhost) {
		t.Fatalf("got %v, want ErrSelfGhost", err)
	}
	// the valid destination from before the error should still be recorded.
	if got := plan.Sending(tri.V0, meshapi.DimVertex); len(got) != 1 || got[0] != 1 {
		t.Fatalf("got %v, want [1]", got)
	}
}

func TestPlanSummaryAndDestroy(t *testing.T) {
	tri := meshmem.NewTwoPartTriangles()
	m0 := tri.Sim.Mesh(0)
	plan := NewPlan(m0)

	if err := plan.Send(tri.V0, meshapi.DimVertex, 1); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := plan.Send(tri.E01, meshapi.DimEdge, 1); err != nil {
		t.Fatalf("send: %v", err)
	}

	summary := plan.Summary()
	if summary[meshapi.DimVertex] != 1 || summary[meshapi.DimEdge] != 1 {
		t.Fatalf("got %v, want {0:1,1:1}", summary)
	}

	plan.Destroy()
	if m0.HasTag(tri.V0, meshapi.TagHandle{Name: meshapi.TagPartsIndex, Type: meshapi.TagTypeInt, Size: 8}) {
		t.Fatalf("expected _parts_index_ tag cleared after Destroy")
	}
}
