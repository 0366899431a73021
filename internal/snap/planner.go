package snap

import (
	"context"
	"encoding/binary"
	"math"

	"github.com/danmuck/meshghost/internal/meshapi"
)

// pointTagSize is the byte size of the 3-double ma_snap tag value.
const pointTagSize = 24

// Planner is the snap planner (module B): it walks every vertex on this
// part's mesh, decides which ones are live snap candidates, and tags each
// one with the Cartesian position the geometry collaborator says it belongs
// at.
type Planner struct{}

// PlanReport summarizes one TagVertsToSnap call.
type PlanReport struct {
	// Local is the number of vertices this part tagged.
	Local int
	// Global is Local summed across every part via a collective reduction.
	Global int64
}

// TagVertsToSnap creates (or reuses) the ma_snap tag and walks mesh's
// vertices in dimension order. A vertex is skipped when it sits in the
// boundary layer, when its classifying model entity's dimension equals the
// mesh's own topological dimension (an interior vertex has no model surface
// to move toward), or when it is already sitting at its snap target
// (component-wise equal, so a settled vertex is never re-tagged and never
// counted). Every remaining vertex is tagged with its target position and
// counted; the local count is summed across every part via
// msg.AllReduceSum so callers can drive a collective quiescence loop.
func (Planner) TagVertsToSnap(ctx context.Context, mesh meshapi.Mesh, geom meshapi.Geometry, msg meshapi.Messaging) (meshapi.TagHandle, PlanReport, error) {
	h := mesh.CreateTag(meshapi.TagSnap, meshapi.TagTypeDouble, pointTagSize)

	local := 0
	it := mesh.Iterate(meshapi.DimVertex)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if mesh.IsBoundaryLayer(v) {
			continue
		}
		if mesh.ModelType(v) == mesh.Dimension() {
			continue
		}

		target := geom.SnapToModel(mesh.ToModel(v), mesh.Param(v))
		if target == mesh.Point(v) {
			continue
		}

		mesh.SetTag(v, h, encodePoint(target))
		local++
	}

	total, err := msg.AllReduceSum(ctx, int64(local))
	if err != nil {
		return h, PlanReport{}, err
	}
	return h, PlanReport{Local: local, Global: total}, nil
}

func encodePoint(p meshapi.Point) []byte {
	buf := make([]byte, pointTagSize)
	for i, v := range p {
		binary.BigEndian.PutUint64(buf[i*8:i*8+8], math.Float64bits(v))
	}
	return buf
}

func decodePoint(buf []byte) meshapi.Point {
	var p meshapi.Point
	for i := range p {
		p[i] = math.Float64frombits(binary.BigEndian.Uint64(buf[i*8 : i*8+8]))
	}
	return p
}
