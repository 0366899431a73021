package ghost

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/danmuck/meshghost/internal/meshapi"
)

type planEntry struct {
	ent   meshapi.Entity
	dests map[int]bool
}

// Plan records, per dimension, which entities must be sent to which
// destination parts. Each entity's slot index into its dimension's entry
// slice is cached under the _parts_index_ tag so repeated Send/SendAll
// calls on the same entity are O(1) instead of a linear scan.
type Plan struct {
	mesh     meshapi.Mesh
	indexTag meshapi.TagHandle
	entries  map[int][]*planEntry
}

// NewPlan creates an empty plan against mesh, allocating the _parts_index_
// tag it uses for slot lookups.
func NewPlan(mesh meshapi.Mesh) *Plan {
	return &Plan{
		mesh:     mesh,
		indexTag: mesh.CreateTag(meshapi.TagPartsIndex, meshapi.TagTypeInt, 8),
		entries:  make(map[int][]*planEntry),
	}
}

func (p *Plan) lookup(e meshapi.Entity, dim int) *planEntry {
	raw, ok := p.mesh.GetTag(e, p.indexTag)
	if !ok {
		return nil
	}
	idx := int(binary.BigEndian.Uint64(raw))
	list := p.entries[dim]
	if idx < 0 || idx >= len(list) {
		return nil
	}
	ent := list[idx]
	if ent.ent.EntityKey() != e.EntityKey() {
		return nil
	}
	return ent
}

func (p *Plan) entryFor(e meshapi.Entity, dim int) *planEntry {
	if ent := p.lookup(e, dim); ent != nil {
		return ent
	}
	ent := &planEntry{ent: e, dests: make(map[int]bool)}
	p.entries[dim] = append(p.entries[dim], ent)
	idx := len(p.entries[dim]) - 1

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(idx))
	p.mesh.SetTag(e, p.indexTag, buf[:])
	return ent
}

// Send plans e, classified at dim, to be sent as a ghost to part to.
func (p *Plan) Send(e meshapi.Entity, dim, to int) error {
	if to == e.EntityKey().Part {
		return fmt.Errorf("%w: entity %s, dim %d", ErrSelfGhost, e.EntityKey(), dim)
	}
	p.entryFor(e, dim).dests[to] = true
	return nil
}

// SendAll plans e to every part in tos, stopping at the first error.
func (p *Plan) SendAll(e meshapi.Entity, dim int, tos []int) error {
	for _, to := range tos {
		if err := p.Send(e, dim, to); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether e has a plan entry at dim.
func (p *Plan) Has(e meshapi.Entity, dim int) bool {
	return p.lookup(e, dim) != nil
}

// Sending returns the sorted destination parts planned for e at dim, or nil
// if e has no entry.
func (p *Plan) Sending(e meshapi.Entity, dim int) []int {
	ent := p.lookup(e, dim)
	if ent == nil {
		return nil
	}
	out := make([]int, 0, len(ent.dests))
	for part := range ent.dests {
		out = append(out, part)
	}
	sort.Ints(out)
	return out
}

// Count returns the number of distinct entities planned at dim.
func (p *Plan) Count(dim int) int {
	return len(p.entries[dim])
}

// Entities returns every entity planned at dim, in allocation order.
func (p *Plan) Entities(dim int) []meshapi.Entity {
	list := p.entries[dim]
	out := make([]meshapi.Entity, len(list))
	for i, ent := range list {
		out[i] = ent.ent
	}
	return out
}

// Dims returns every dimension this plan holds at least one entry for.
func (p *Plan) Dims() []int {
	out := make([]int, 0, len(p.entries))
	for d := range p.entries {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// Summary returns the per-dimension entity count, for logging and the
// admin /ghost/plan endpoint.
func (p *Plan) Summary() map[int]int {
	out := make(map[int]int, len(p.entries))
	for dim, list := range p.entries {
		out[dim] = len(list)
	}
	return out
}

// Destroy releases the plan's tag and clears its entries. The caller must
// not use the plan after calling Destroy.
func (p *Plan) Destroy() {
	for _, list := range p.entries {
		for _, ent := range list {
			p.mesh.RemoveTag(ent.ent, p.indexTag)
		}
	}
	p.mesh.DestroyTag(p.indexTag)
	p.entries = nil
}
