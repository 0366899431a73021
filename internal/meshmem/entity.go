package meshmem

import "github.com/danmuck/meshghost/internal/meshapi"

// entity is the opaque handle meshmem hands back through the meshapi.Entity
// interface. It carries no behavior; all state lives in the owning Mesh's
// record table, keyed by EntityKey.
type entity struct {
	key meshapi.EntityKey
}

func (e entity) EntityKey() meshapi.EntityKey { return e.key }

func newEntity(part int, local uint64) entity {
	return entity{key: meshapi.EntityKey{Part: part, Local: local}}
}

// asEntity adapts any meshapi.Entity to meshmem's local representation. The
// core never passes foreign-mesh entities into methods that dereference
// record state, so accepting the interface type and keying off EntityKey is
// sufficient.
func asEntity(e meshapi.Entity) entity {
	if me, ok := e.(entity); ok {
		return me
	}
	return entity{key: e.EntityKey()}
}
