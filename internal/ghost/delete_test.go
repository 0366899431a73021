package ghost

import (
	"context"
	"testing"

	"github.com/danmuck/meshghost/internal/meshapi"
	"github.com/danmuck/meshghost/internal/meshmem"
)

func TestDeleteRemovesCopyAndNotifiesOwner(t *testing.T) {
	tri := meshmem.NewTwoPartTriangles()
	sim := tri.Sim

	var ghostOnPart1 meshapi.Entity

	err := sim.Run(context.Background(), func(ctx context.Context, part int) error {
		mesh := sim.Mesh(part)
		msg := sim.Messaging(part)

		if part == 0 {
			plan := NewPlan(mesh)
			if err := plan.Send(tri.V0, meshapi.DimVertex, 1); err != nil {
				return err
			}
			if _, err := Create(ctx, mesh, msg, plan, meshapi.DimVertex); err != nil {
				return err
			}
			return nil
		}

		plan := NewPlan(mesh)
		report, err := Create(ctx, mesh, msg, plan, meshapi.DimVertex)
		if err != nil {
			return err
		}
		if report.Received != 1 {
			t.Errorf("expected to receive 1 ghost, got %d", report.Received)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("setup run: %v", err)
	}

	// Find the ghost copy installed on part 1 by scanning its vertices for
	// the one marked IsGhost.
	m1 := sim.Mesh(1)
	it := m1.Iterate(meshapi.DimVertex)
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		if m1.IsGhost(e) {
			ghostOnPart1 = e
			break
		}
	}
	if ghostOnPart1 == nil {
		t.Fatalf("expected to find a ghost vertex on part 1")
	}

	err = sim.Run(context.Background(), func(ctx context.Context, part int) error {
		mesh := sim.Mesh(part)
		msg := sim.Messaging(part)

		if part == 1 {
			n, err := Delete(ctx, mesh, msg, []meshapi.Entity{ghostOnPart1})
			if err != nil {
				return err
			}
			if n != 1 {
				t.Errorf("expected to delete 1 ghost, got %d", n)
			}
			return nil
		}
		_, err := Delete(ctx, mesh, msg, nil)
		return err
	})
	if err != nil {
		t.Fatalf("delete run: %v", err)
	}

	m0 := sim.Mesh(0)
	ghosts := m0.Ghosts(tri.V0)
	if _, ok := ghosts[1]; ok {
		t.Fatalf("expected part 0's ghost bookkeeping for V0/part1 to be cleared after delete")
	}
}
