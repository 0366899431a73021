package ghost

import (
	"context"
	"time"

	"github.com/danmuck/meshghost/internal/meshapi"
)

// LayerReport summarizes one PlanLayers (or PlanLayersDryRun) call.
type LayerReport struct {
	Layers   int
	Entities int
	Elapsed  time.Duration
}

// PlanLayers plans seeds and then breadth-first expands outward through
// same-dimension adjacency, planning up to layers layers in total (the seeds
// are the first layer; each further layer is one hop from the previous), via
// Collect (so
// each newly reached entity's downward closure and shared-copy reconcile
// come along too) every newly reached entity along the way. The
// ghost_check_mark tag dedupes visits within this one call and is destroyed
// before returning.
//
// Every part in the job must call PlanLayers once per frontier; an empty
// seeds slice is a normal case (a part with nothing of its own to seed this
// round still participates in Collect's collective reconcile pass), not an
// error. The loop runs for up to layers layers and stops early once the
// frontier size summed across every part hits zero.
func PlanLayers(ctx context.Context, mesh meshapi.Mesh, msg meshapi.Messaging, plan *Plan, seeds []meshapi.Entity, seedDim int, dests []int, layers int) (LayerReport, error) {
	start := time.Now()
	mark := mesh.CreateTag(meshapi.TagGhostCheckMark, meshapi.TagTypeInt, 1)
	defer mesh.DestroyTag(mark)

	frontier := append([]meshapi.Entity(nil), seeds...)
	for _, e := range frontier {
		mesh.SetTag(e, mark, []byte{1})
	}

	report := LayerReport{}
	for report.Layers < layers {
		if err := Collect(ctx, mesh, msg, plan, frontier, seedDim, dests); err != nil {
			return report, err
		}
		report.Entities += len(frontier)
		report.Layers++

		var next []meshapi.Entity
		for _, e := range frontier {
			for _, adj := range mesh.Adjacent(e, seedDim) {
				if mesh.HasTag(adj, mark) {
					continue
				}
				mesh.SetTag(adj, mark, []byte{1})
				next = append(next, adj)
			}
		}
		frontier = next

		total, err := msg.AllReduceSum(ctx, int64(len(frontier)))
		if err != nil {
			return report, err
		}
		if total == 0 {
			break
		}
	}

	report.Elapsed = time.Since(start)
	return report, nil
}

// PlanLayersDryRun runs the same breadth-first expansion as PlanLayers
// without touching a Plan, for estimating how many entities a given layer
// depth would reach before committing to the real exchange.
func PlanLayersDryRun(mesh meshapi.Mesh, seeds []meshapi.Entity, seedDim int, layers int) (LayerReport, error) {
	if len(seeds) == 0 {
		return LayerReport{}, ErrUnknownDimension
	}

	start := time.Now()
	mark := mesh.CreateTag(meshapi.TagGhostCheckMark, meshapi.TagTypeInt, 1)
	defer mesh.DestroyTag(mark)

	frontier := append([]meshapi.Entity(nil), seeds...)
	for _, e := range frontier {
		mesh.SetTag(e, mark, []byte{1})
	}

	report := LayerReport{}
	for report.Layers = 0; report.Layers < layers && len(frontier) > 0; report.Layers++ {
		report.Entities += len(frontier)

		var next []meshapi.Entity
		for _, e := range frontier {
			for _, adj := range mesh.Adjacent(e, seedDim) {
				if mesh.HasTag(adj, mark) {
					continue
				}
				mesh.SetTag(adj, mark, []byte{1})
				next = append(next, adj)
			}
		}
		frontier = next
	}

	report.Elapsed = time.Since(start)
	return report, nil
}
