package snap

import (
	"context"

	"github.com/danmuck/meshghost/internal/meshapi"
	"github.com/danmuck/meshghost/internal/observability"
)

// Report summarizes one Driver.Run: how many of this part's snap candidates
// were successfully moved, out of how many the planner found.
type Report struct {
	Snapped int
	Targets int
}

// Driver runs the two-phase snap loop (module D). Phase one iterates to
// quiescence with digging disabled: every round, every vertex still holding
// the ma_snap tag is marked pending, attempted, and either cleared (on a
// valid move) or reverted (on an invalid one); the round's successes are
// summed across every part, and the phase repeats until that global sum
// hits zero. Phase two then repeats the same loop with digging enabled, so
// vertices phase one couldn't place get one cavity-opening attempt per
// round before giving up.
type Driver struct {
	Mesh     meshapi.Mesh
	Geometry meshapi.Geometry
	Validity meshapi.Validity
	Operator Operator
	Digger   Digger
}

// Run plans this part's snap candidates and drives them through both
// phases. Every part in the job must call Run once per round: the phase
// loops terminate on a collectively reduced value, so a part that skips the
// call stalls every other part's reduction.
func (d Driver) Run(ctx context.Context, msg meshapi.Messaging) (Report, error) {
	if d.Operator == nil {
		return Report{}, ErrNoOperator
	}
	validity := d.Validity
	if validity == nil {
		validity = alwaysValid{}
	}
	digger := d.Digger
	if digger == nil {
		digger = NoOpDigger{}
	}

	h, planReport, err := Planner{}.TagVertsToSnap(ctx, d.Mesh, d.Geometry, msg)
	if err != nil {
		return Report{}, err
	}
	defer d.Mesh.DestroyTag(h)

	flag := d.Mesh.CreateTag(meshapi.TagSnapPending, meshapi.TagTypeInt, 1)
	defer d.Mesh.DestroyTag(flag)

	snapped, err := d.runPhase(ctx, msg, h, flag, validity, digger, false, "no-dig")
	if err != nil {
		return Report{}, err
	}
	dugSnapped, err := d.runPhase(ctx, msg, h, flag, validity, digger, true, "dig")
	if err != nil {
		return Report{}, err
	}
	snapped += dugSnapped

	return Report{Snapped: snapped, Targets: planReport.Local}, nil
}

// runPhase loops snapOneRound until the globally reduced success count for a
// round hits zero, i.e. until no part made any progress this round.
func (d Driver) runPhase(ctx context.Context, msg meshapi.Messaging, h, flag meshapi.TagHandle, validity meshapi.Validity, digger Digger, dig bool, phaseLabel string) (int, error) {
	snapped := 0
	for {
		if err := ctx.Err(); err != nil {
			return snapped, err
		}

		roundSuccess := d.snapOneRound(h, flag, validity, digger, dig)
		snapped += roundSuccess
		observability.RecordSnapRound(phaseLabel, roundSuccess)

		total, err := msg.AllReduceSum(ctx, int64(roundSuccess))
		if err != nil {
			return snapped, err
		}
		if total == 0 {
			return snapped, nil
		}
	}
}

// snapOneRound marks every vertex still carrying h with the transient flag,
// attempts each in turn, and returns how many succeeded.
func (d Driver) snapOneRound(h, flag meshapi.TagHandle, validity meshapi.Validity, digger Digger, dig bool) int {
	var pending []meshapi.Entity
	it := d.Mesh.Iterate(meshapi.DimVertex)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if d.Mesh.HasTag(v, h) {
			d.Mesh.SetTag(v, flag, []byte{1})
			pending = append(pending, v)
		}
	}

	success := 0
	for _, v := range pending {
		if d.trySnapping(h, validity, digger, dig, v) {
			success++
		}
		d.Mesh.RemoveTag(v, flag)
	}
	return success
}

// trySnapping runs one attempt at moving v to its tagged target. On success
// it clears h so the vertex is never attempted again; on failure it reverts
// v's point and leaves h in place for a later round or phase.
func (d Driver) trySnapping(h meshapi.TagHandle, validity meshapi.Validity, digger Digger, dig bool, v meshapi.Entity) bool {
	if !d.Operator.ShouldApply(d.Mesh, h, v) {
		return false
	}
	if dig {
		digger.Dig(d.Mesh, v)
	}

	original := d.Mesh.Point(v)
	d.Operator.Apply(d.Mesh, h, v)

	for _, e := range d.Operator.RequestLocality(d.Mesh, v) {
		if !validity.IsValid(e) {
			d.Mesh.SetPoint(v, original)
			return false
		}
	}

	d.Mesh.RemoveTag(v, h)
	return true
}

func upwardStar(mesh meshapi.Mesh, v meshapi.Entity) []meshapi.Entity {
	visited := map[meshapi.EntityKey]bool{}
	queue := mesh.Up(v)
	var out []meshapi.Entity
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		k := e.EntityKey()
		if visited[k] {
			continue
		}
		visited[k] = true
		out = append(out, e)
		queue = append(queue, mesh.Up(e)...)
	}
	return out
}

type alwaysValid struct{}

func (alwaysValid) IsValid(meshapi.Entity) bool { return true }
