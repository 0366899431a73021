package ghost

import (
	"context"
	"testing"

	"github.com/danmuck/meshghost/internal/meshapi"
	"github.com/danmuck/meshghost/internal/meshmem"
)

func TestCollectWalksDownwardClosure(t *testing.T) {
	tri := meshmem.NewTwoPartTriangles()
	sim := tri.Sim

	err := sim.Run(context.Background(), func(ctx context.Context, part int) error {
		m := sim.Mesh(part)
		msg := sim.Messaging(part)
		plan := NewPlan(m)

		var seeds []meshapi.Entity
		if part == 0 {
			seeds = []meshapi.Entity{tri.F0}
		}
		if err := Collect(ctx, m, msg, plan, seeds, meshapi.DimFace, []int{1}); err != nil {
			return err
		}

		if part != 0 {
			return nil
		}
		if !plan.Has(tri.F0, meshapi.DimFace) {
			t.Errorf("expected face planned")
		}
		for _, e := range []meshapi.Entity{tri.E01, tri.E12, tri.E20} {
			if !plan.Has(e, meshapi.DimEdge) {
				t.Errorf("expected edge %s planned", e.EntityKey())
			}
		}
		for _, v := range []meshapi.Entity{tri.V0, tri.V1, tri.V2} {
			if !plan.Has(v, meshapi.DimVertex) {
				t.Errorf("expected vertex %s planned", v.EntityKey())
			}
		}
		if plan.Count(meshapi.DimFace) != 1 || plan.Count(meshapi.DimEdge) != 3 || plan.Count(meshapi.DimVertex) != 3 {
			t.Errorf("unexpected plan counts: %v", plan.Summary())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestCollectDedupesSharedBoundaryAcrossSeeds(t *testing.T) {
	tri := meshmem.NewTwoPartTriangles()
	sim := tri.Sim

	err := sim.Run(context.Background(), func(ctx context.Context, part int) error {
		m := sim.Mesh(part)
		msg := sim.Messaging(part)
		plan := NewPlan(m)

		var seeds []meshapi.Entity
		if part == 0 {
			// Both edges share V1 in their downward closure; collecting
			// both must not double-plan V1.
			seeds = []meshapi.Entity{tri.E01, tri.E12}
		}
		if err := Collect(ctx, m, msg, plan, seeds, meshapi.DimEdge, []int{1}); err != nil {
			return err
		}

		if part == 0 && plan.Count(meshapi.DimVertex) != 3 {
			t.Errorf("got %d vertices planned, want 3 (V0,V1,V2)", plan.Count(meshapi.DimVertex))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestCollectReconcilesSharedEntityDestinations(t *testing.T) {
	// Three parts, one vertex shared across all of them. Only part 0 plans
	// a send (to part 2); the reconcile pass must tell part 1 that its own
	// copy needs to go to part 2 too, even though part 1 never decided
	// that itself.
	sim := meshmem.NewSimulation(3, 2)
	m0, m1, m2 := sim.Mesh(0), sim.Mesh(1), sim.Mesh(2)

	v0 := m0.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 0, ID: 0}, meshapi.Point{0, 0, 0}, meshapi.Param{})
	v1 := m1.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 0, ID: 0}, meshapi.Point{0, 0, 0}, meshapi.Param{})
	v2 := m2.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 0, ID: 0}, meshapi.Point{0, 0, 0}, meshapi.Param{})

	m0.SetResidence(v0, []int{0, 1, 2})
	m1.SetResidence(v1, []int{0, 1, 2})
	m2.SetResidence(v2, []int{0, 1, 2})

	m0.LinkRemote(v0, 1, v1)
	m0.LinkRemote(v0, 2, v2)
	m1.LinkRemote(v1, 0, v0)
	m1.LinkRemote(v1, 2, v2)
	m2.LinkRemote(v2, 0, v0)
	m2.LinkRemote(v2, 1, v1)

	err := sim.Run(context.Background(), func(ctx context.Context, part int) error {
		m := sim.Mesh(part)
		msg := sim.Messaging(part)
		plan := NewPlan(m)

		var seeds []meshapi.Entity
		var dests []int
		if part == 0 {
			seeds = []meshapi.Entity{v0}
			dests = []int{2}
		}
		if err := Collect(ctx, m, msg, plan, seeds, meshapi.DimVertex, dests); err != nil {
			return err
		}

		if part == 1 {
			got := plan.Sending(v1, meshapi.DimVertex)
			if len(got) != 1 || got[0] != 2 {
				t.Errorf("part 1: expected reconcile to plan its copy to [2], got %v", got)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
}
