package meshapi

import "fmt"

// Entity is an opaque handle into a collaborator-owned mesh. Implementations
// are free to back it with a pointer, an index, or anything else stable for
// the lifetime of one round; the core never interprets its bits.
type Entity interface {
	// EntityKey is a comparable identity usable as a map key. Two Entity
	// values referring to the same mesh entity must return equal keys.
	EntityKey() EntityKey
}

// EntityKey is the comparable projection of an Entity used in maps and sets
// throughout the core.
type EntityKey struct {
	Part  int
	Local uint64
}

func (k EntityKey) String() string {
	return fmt.Sprintf("%d:%d", k.Part, k.Local)
}

// Classification names the model entity a mesh entity is attached to.
type Classification struct {
	Dim int
	ID  int
}

// Point is a 3D Cartesian position.
type Point [3]float64

// Param is a parametric coordinate on a model entity; only the first Dim
// components of the classifying model entity are meaningful.
type Param [3]float64

// PeriodicRange is the parametric domain of one axis of a model entity.
type PeriodicRange struct {
	Lo, Hi   float64
	Periodic bool
}

// ModelEntity is a geometric-model entity: a dimension and, for each
// parametric axis below that dimension, a periodic range.
type ModelEntity struct {
	Dim   int
	ID    int
	Axes  [3]PeriodicRange
}

// RemoteHandle is a bare Entity built from just a key. The ghost exchanger
// uses it to address an entity on another part that it has not (and may
// never) materialize locally, such as the original of a received ghost
// copy before any further round references it.
type RemoteHandle EntityKey

func (r RemoteHandle) EntityKey() EntityKey { return EntityKey(r) }

// Dims is the set of dimensions meshghost operates on: vertex (0) through
// volume element (3).
const (
	DimVertex = 0
	DimEdge   = 1
	DimFace   = 2
	DimRegion = 3
)
