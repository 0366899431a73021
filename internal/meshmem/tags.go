package meshmem

import "github.com/danmuck/meshghost/internal/meshapi"

// tagStore holds every tag value set on this part's entities, keyed by tag
// name and local id. A tag is "created" the moment CreateTag assigns it a
// handle; DestroyTag drops the whole name's value map.
type tagStore struct {
	handles map[string]meshapi.TagHandle
	values  map[string]map[uint64][]byte
}

func newTagStore() *tagStore {
	return &tagStore{
		handles: make(map[string]meshapi.TagHandle),
		values:  make(map[string]map[uint64][]byte),
	}
}

func (m *Mesh) CreateTag(name string, kind meshapi.TagType, size int) meshapi.TagHandle {
	if h, ok := m.tags.handles[name]; ok {
		return h
	}
	h := meshapi.TagHandle{Name: name, Type: kind, Size: size}
	m.tags.handles[name] = h
	m.tags.values[name] = make(map[uint64][]byte)
	return h
}

func (m *Mesh) SetTag(e meshapi.Entity, h meshapi.TagHandle, value []byte) {
	meshapi.Invariant(len(value) == h.Size, "SetTag %s: value size %d != handle size %d", h.Name, len(value), h.Size)
	vals, ok := m.tags.values[h.Name]
	meshapi.Invariant(ok, "SetTag on undeclared tag %q", h.Name)
	buf := make([]byte, len(value))
	copy(buf, value)
	vals[asEntity(e).key.Local] = buf
}

func (m *Mesh) GetTag(e meshapi.Entity, h meshapi.TagHandle) ([]byte, bool) {
	vals, ok := m.tags.values[h.Name]
	if !ok {
		return nil, false
	}
	v, ok := vals[asEntity(e).key.Local]
	return v, ok
}

func (m *Mesh) HasTag(e meshapi.Entity, h meshapi.TagHandle) bool {
	_, ok := m.GetTag(e, h)
	return ok
}

func (m *Mesh) RemoveTag(e meshapi.Entity, h meshapi.TagHandle) {
	if vals, ok := m.tags.values[h.Name]; ok {
		delete(vals, asEntity(e).key.Local)
	}
}

func (m *Mesh) DestroyTag(h meshapi.TagHandle) {
	delete(m.tags.handles, h.Name)
	delete(m.tags.values, h.Name)
}
