package snap

import "github.com/danmuck/meshghost/internal/meshapi"

// Digger is the cavity pre-step the driver invokes before each retry in its
// dig-enabled phase: a mesh-modification step that opens space in the
// cavity around v to admit a subsequent snap attempt. It reports only
// whether it made topological progress, never a position; reverting v's
// point on an invalid move is the driver's job, independent of digging.
type Digger interface {
	Dig(mesh meshapi.Mesh, v meshapi.Entity) (progress bool)
}

// NoOpDigger is the reference Digger: it never touches the cavity. With it,
// the dig-enabled phase degenerates to one more quiescence round over
// whatever the first phase already settled.
type NoOpDigger struct{}

func (NoOpDigger) Dig(mesh meshapi.Mesh, v meshapi.Entity) bool { return false }
