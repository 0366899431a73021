package meshmem

import (
	"sort"

	"github.com/danmuck/meshghost/internal/meshapi"
)

// record is the full state meshmem keeps for one locally-resident entity,
// ghost copies included.
type record struct {
	dim   int
	class meshapi.Classification

	point meshapi.Point
	param meshapi.Param

	downward []meshapi.EntityKey
	up       []meshapi.EntityKey

	owner     int
	residence []int
	remotes   map[int]meshapi.EntityKey
	ghosts    map[int]meshapi.EntityKey

	isGhostCopy   bool
	boundaryLayer bool
}

// Mesh is the in-memory, single-part mesh database. One Mesh models one
// part's share of a distributed mesh; internal/meshmem's Simulation owns one
// Mesh per part.
type Mesh struct {
	part int
	dim  int

	next    uint64
	records map[uint64]*record
	byDim   map[int][]uint64

	tags *tagStore
}

// New creates an empty part-local mesh of topological dimension dim (the
// highest dimension of element it will hold).
func New(part, dim int) *Mesh {
	return &Mesh{
		part:    part,
		dim:     dim,
		records: make(map[uint64]*record),
		byDim:   make(map[int][]uint64),
		tags:    newTagStore(),
	}
}

func (m *Mesh) Dimension() int { return m.dim }

func (m *Mesh) rec(e meshapi.Entity) *record {
	r, ok := m.records[asEntity(e).key.Local]
	meshapi.Invariant(ok, "unknown entity %s on part %d", asEntity(e).key, m.part)
	return r
}

// CreateEntity materializes a new local entity. Downward adjacency (for
// dim>0 entities) is wired up separately via Connect, which is meshmem-only
// and not part of the meshapi.Mesh contract.
func (m *Mesh) CreateEntity(dim int, class meshapi.Classification, pt meshapi.Point, param meshapi.Param) meshapi.Entity {
	local := m.next
	m.next++
	m.records[local] = &record{
		dim:       dim,
		class:     class,
		point:     pt,
		param:     param,
		owner:     m.part,
		residence: []int{m.part},
		remotes:   make(map[int]meshapi.EntityKey),
		ghosts:    make(map[int]meshapi.EntityKey),
	}
	m.byDim[dim] = append(m.byDim[dim], local)
	return newEntity(m.part, local)
}

// Connect records that child is part of parent's downward closure and
// parent is part of child's upward closure. Test builders use this; the
// ghost exchanger does not wire adjacency for the copies it installs. It is
// not exposed through
// meshapi.Mesh because collaborators own their own adjacency structures.
func (m *Mesh) Connect(parent, child meshapi.Entity) {
	p := m.rec(parent)
	c := m.rec(child)
	ck := asEntity(child).key
	pk := asEntity(parent).key
	p.downward = append(p.downward, ck)
	c.up = append(c.up, pk)
}

func (m *Mesh) Destroy(e meshapi.Entity) {
	local := asEntity(e).key.Local
	r, ok := m.records[local]
	if !ok {
		return
	}
	ids := m.byDim[r.dim]
	for i, id := range ids {
		if id == local {
			m.byDim[r.dim] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	delete(m.records, local)
}

// --- iteration ---

type sliceIterator struct {
	part  int
	ids   []uint64
	index int
}

func (it *sliceIterator) Next() (meshapi.Entity, bool) {
	if it.index >= len(it.ids) {
		return nil, false
	}
	e := newEntity(it.part, it.ids[it.index])
	it.index++
	return e, true
}

func (m *Mesh) Iterate(dim int) meshapi.EntityIterator {
	ids := make([]uint64, len(m.byDim[dim]))
	copy(ids, m.byDim[dim])
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return &sliceIterator{part: m.part, ids: ids}
}

func (m *Mesh) Downward(e meshapi.Entity, dim int) []meshapi.Entity {
	r := m.rec(e)
	out := make([]meshapi.Entity, 0, len(r.downward))
	for _, k := range r.downward {
		if dr, ok := m.records[k.Local]; ok && k.Part == m.part && dr.dim == dim {
			out = append(out, newEntity(k.Part, k.Local))
		}
	}
	return out
}

func (m *Mesh) Up(e meshapi.Entity) []meshapi.Entity {
	r := m.rec(e)
	out := make([]meshapi.Entity, 0, len(r.up))
	for _, k := range r.up {
		out = append(out, newEntity(k.Part, k.Local))
	}
	return out
}

// Adjacent returns every other entity of dim that shares at least one
// downward entity with e.
func (m *Mesh) Adjacent(e meshapi.Entity, dim int) []meshapi.Entity {
	selfKey := asEntity(e).key
	r := m.rec(e)
	seen := make(map[meshapi.EntityKey]bool)
	var out []meshapi.Entity
	for _, childKey := range r.downward {
		child, ok := m.records[childKey.Local]
		if !ok {
			continue
		}
		for _, upKey := range child.up {
			if upKey == selfKey || seen[upKey] {
				continue
			}
			cand, ok := m.records[upKey.Local]
			if !ok || cand.dim != dim {
				continue
			}
			seen[upKey] = true
			out = append(out, newEntity(upKey.Part, upKey.Local))
		}
	}
	return out
}

// --- classification & geometry ---

func (m *Mesh) ModelType(e meshapi.Entity) int      { return m.rec(e).class.Dim }
func (m *Mesh) ModelTag(e meshapi.Entity) int       { return m.rec(e).class.ID }
func (m *Mesh) ToModel(e meshapi.Entity) meshapi.ModelEntity {
	r := m.rec(e)
	return meshapi.ModelEntity{Dim: r.class.Dim, ID: r.class.ID}
}

func (m *Mesh) Point(e meshapi.Entity) meshapi.Point { return m.rec(e).point }
func (m *Mesh) SetPoint(e meshapi.Entity, p meshapi.Point) { m.rec(e).point = p }
func (m *Mesh) Param(e meshapi.Entity) meshapi.Param { return m.rec(e).param }

func (m *Mesh) ParamOn(e meshapi.Entity, model meshapi.ModelEntity) meshapi.Param {
	return m.rec(e).param
}

func (m *Mesh) PeriodicRange(model meshapi.ModelEntity, axis int) (lo, hi float64, periodic bool) {
	if axis < 0 || axis >= 3 {
		return 0, 0, false
	}
	r := model.Axes[axis]
	return r.Lo, r.Hi, r.Periodic
}

// --- residence & ghost bookkeeping ---

func (m *Mesh) IsShared(e meshapi.Entity) bool { return len(m.rec(e).residence) > 1 }
func (m *Mesh) IsOwned(e meshapi.Entity) bool  { return m.rec(e).owner == m.part }
func (m *Mesh) IsGhost(e meshapi.Entity) bool  { return m.rec(e).isGhostCopy }

// IsGhosted reports whether e has been sent as a ghost to at least one other
// part. It reads the live ghosts map rather than the ghosted_tag, since the
// tag is sender-local bookkeeping for admin/log display and can lag a part
// that receives AddGhost before it ever calls the exchanger's ack round.
func (m *Mesh) IsGhosted(e meshapi.Entity) bool {
	return len(m.rec(e).ghosts) > 0
}

// IsBoundaryLayer reports whether e was marked as a boundary-layer vertex by
// SetBoundaryLayer. The snap planner skips these unconditionally.
func (m *Mesh) IsBoundaryLayer(e meshapi.Entity) bool {
	return m.rec(e).boundaryLayer
}

// SetBoundaryLayer marks (or unmarks) e as sitting in a boundary layer. Test
// builders and mesh generators use this; it is not part of meshapi.Mesh's
// write surface since only mesh generation decides layer membership.
func (m *Mesh) SetBoundaryLayer(e meshapi.Entity, v bool) {
	m.rec(e).boundaryLayer = v
}

func (m *Mesh) Owner(e meshapi.Entity) int { return m.rec(e).owner }

func (m *Mesh) Remotes(e meshapi.Entity) map[int]meshapi.Entity {
	r := m.rec(e)
	out := make(map[int]meshapi.Entity, len(r.remotes))
	for part, key := range r.remotes {
		out[part] = newEntity(key.Part, key.Local)
	}
	return out
}

func (m *Mesh) Ghosts(e meshapi.Entity) map[int]meshapi.Entity {
	r := m.rec(e)
	out := make(map[int]meshapi.Entity, len(r.ghosts))
	for part, key := range r.ghosts {
		out[part] = newEntity(key.Part, key.Local)
	}
	return out
}

func (m *Mesh) SetResidence(e meshapi.Entity, parts []int) {
	r := m.rec(e)
	r.residence = append(r.residence[:0], parts...)
}

func (m *Mesh) Residence(e meshapi.Entity) []int {
	r := m.rec(e)
	out := make([]int, len(r.residence))
	copy(out, r.residence)
	return out
}

// AddGhost records that part now holds remote as a ghost copy of e, and
// reciprocally (on the ghost copy's own mesh, via MarkGhostCopy) that the
// copy's remote is e.
func (m *Mesh) AddGhost(e meshapi.Entity, part int, remote meshapi.Entity) {
	r := m.rec(e)
	r.ghosts[part] = asEntity(remote).key
	found := false
	for _, p := range r.residence {
		if p == part {
			found = true
			break
		}
	}
	if !found {
		r.residence = append(r.residence, part)
	}
}

func (m *Mesh) DeleteGhost(e meshapi.Entity) {
	r := m.rec(e)
	r.ghosts = make(map[int]meshapi.EntityKey)
}

// LinkRemote records that part holds remote as the matching copy of a
// shared (not ghosted) interface entity, without altering ownership.
func (m *Mesh) LinkRemote(e meshapi.Entity, part int, remote meshapi.Entity) {
	r := m.rec(e)
	r.remotes[part] = asEntity(remote).key
}

// MarkGhostCopy flags e (created on this part to receive a remote entity's
// data) as a ghost copy owned by ownerPart, recording remote as its copy on
// ownerPart and setting its residence to {ownerPart, this part}.
func (m *Mesh) MarkGhostCopy(e meshapi.Entity, ownerPart int, remote meshapi.Entity) {
	r := m.rec(e)
	r.isGhostCopy = true
	r.owner = ownerPart
	r.remotes[ownerPart] = asEntity(remote).key
	r.residence = []int{ownerPart, m.part}
}

func (m *Mesh) Part() int { return m.part }
