package meshapi

// Tag names the core creates and destroys. These are the only tag names
// the core ever touches; collaborators must not assign them other meanings.
const (
	// TagSnap is the 3-double snap-target tag, created by the snap planner
	// and destroyed once the snap driver's two phases reach quiescence.
	TagSnap = "ma_snap"

	// TagSnapPending is the 1-int transient marker the snap driver sets on
	// every candidate at the start of each round and clears once that
	// candidate's attempt for the round is settled. Distinct from TagSnap,
	// which persists across rounds until the vertex is dropped or snapped.
	TagSnapPending = "ma_snap_pending"

	// TagGhost is the 1-int tag set on a locally-held ghost copy, valued
	// with the sending part's id.
	TagGhost = "ghost_tag"

	// TagGhosted is the 1-int tag set on a locally-resident entity that has
	// been sent out as a ghost at least once, valued with one recipient
	// part id (see the TagGhosted notes in DESIGN.md).
	TagGhosted = "ghosted_tag"

	// TagEntityToGhost is the transient per-collection-pass marker used by
	// the ghost collector to avoid re-enumerating an entity's downward
	// closure.
	TagEntityToGhost = "entity_2_ghost"

	// TagGhostCheckMark dedupes per-seed BFS visits inside the layered
	// ghost planner.
	TagGhostCheckMark = "ghost_check_mark"

	// TagPartsIndex stores the index of the slot a ghost.Plan allocated for
	// an entity in its per-dimension destination-set vector; the dimension
	// is supplied by the caller on lookup, not stored.
	TagPartsIndex = "_parts_index_"
)

// TagType names the wire type of a tag's fixed-size value.
type TagType int

const (
	TagTypeDouble TagType = iota
	TagTypeInt
)

// TagHandle identifies a created tag for subsequent Get/Set/Has calls.
type TagHandle struct {
	Name string
	Type TagType
	Size int
}

// Tags is the per-entity typed key/value contract every Mesh must satisfy.
type Tags interface {
	CreateTag(name string, kind TagType, size int) TagHandle
	SetTag(e Entity, h TagHandle, value []byte)
	GetTag(e Entity, h TagHandle) ([]byte, bool)
	HasTag(e Entity, h TagHandle) bool
	RemoveTag(e Entity, h TagHandle)
	DestroyTag(h TagHandle)
}
