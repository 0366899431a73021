package meshmem

import "github.com/danmuck/meshghost/internal/meshapi"

// AlwaysValid never rejects a snap; it is the default Validity for meshes
// with no degeneracy concern.
type AlwaysValid struct{}

func (AlwaysValid) IsValid(e meshapi.Entity) bool { return true }

// PredicateValidity wraps a test-supplied function, letting snap-driver
// tests exercise the reject-and-dig path without a real quality metric.
type PredicateValidity struct {
	Fn func(e meshapi.Entity) bool
}

func (p PredicateValidity) IsValid(e meshapi.Entity) bool {
	if p.Fn == nil {
		return true
	}
	return p.Fn(e)
}
