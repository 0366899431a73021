package snap

import "github.com/danmuck/meshghost/internal/meshapi"

// Operator is the cavity operator collaborator (module C), the capability
// set the driver exercises once per attempt on a tagged vertex.
type Operator interface {
	// TargetDimension returns the dimension of element Apply perturbs. A
	// digger uses this to size the cavity it needs to clear before a retry
	// can succeed.
	TargetDimension(mesh meshapi.Mesh, v meshapi.Entity) int
	// ShouldApply reports whether v is still a live candidate for this
	// attempt.
	ShouldApply(mesh meshapi.Mesh, h meshapi.TagHandle, v meshapi.Entity) bool
	// RequestLocality returns the cavity Apply is about to perturb: every
	// element whose validity must be re-checked after the move.
	RequestLocality(mesh meshapi.Mesh, v meshapi.Entity) []meshapi.Entity
	// Apply moves v to the position stored under its ma_snap tag.
	Apply(mesh meshapi.Mesh, h meshapi.TagHandle, v meshapi.Entity) meshapi.Point
}

// Snapper is the direct Operator: Apply writes the tagged target straight to
// v's point and RequestLocality is v's upward star.
type Snapper struct{}

func (Snapper) TargetDimension(mesh meshapi.Mesh, v meshapi.Entity) int {
	return mesh.Dimension()
}

func (Snapper) ShouldApply(mesh meshapi.Mesh, h meshapi.TagHandle, v meshapi.Entity) bool {
	return mesh.HasTag(v, h)
}

func (Snapper) RequestLocality(mesh meshapi.Mesh, v meshapi.Entity) []meshapi.Entity {
	return upwardStar(mesh, v)
}

func (Snapper) Apply(mesh meshapi.Mesh, h meshapi.TagHandle, v meshapi.Entity) meshapi.Point {
	raw, ok := mesh.GetTag(v, h)
	meshapi.Invariant(ok, "snap: apply on vertex missing ma_snap tag")
	pt := decodePoint(raw)
	mesh.SetPoint(v, pt)
	return pt
}
