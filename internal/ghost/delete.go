package ghost

import (
	"context"

	"github.com/danmuck/meshghost/internal/meshapi"
	"github.com/danmuck/meshghost/internal/wire"
)

// Delete destroys every ghost copy in ghosts and notifies each one's owner
// so the owner can clear its own remote-pointer bookkeeping via
// DeleteGhost. ghosts must be a snapshot the caller owns of ghost copies
// held on this part (entities for which Mesh.IsGhost reports true) — Delete
// walks that slice (once to notify, once to destroy) and never reads the
// mesh's own live ghost structures while deleting from them, so it never
// hits the classic iterator-invalidation bug of erasing from a container
// while walking it.
func Delete(ctx context.Context, mesh meshapi.Mesh, msg meshapi.Messaging, ghosts []meshapi.Entity) (int, error) {
	if err := msg.Begin(ctx); err != nil {
		return 0, err
	}

	for _, g := range ghosts {
		for ownerPart, ownerEntity := range mesh.Remotes(g) {
			notice := wire.EncodeDeleteNotice(ownerEntity.EntityKey().Local)
			if err := msg.Pack(ownerPart, notice); err != nil {
				return 0, err
			}
		}
	}
	if err := msg.Send(ctx); err != nil {
		return 0, err
	}

	deleted := 0
	for _, g := range ghosts {
		mesh.Destroy(g)
		deleted++
	}

	for {
		_, unpack, ok := msg.Receive(ctx)
		if !ok {
			break
		}
		var buf []byte
		if err := unpack(&buf); err != nil {
			return deleted, err
		}
		ownerLocal, err := wire.DecodeDeleteNotice(buf)
		if err != nil {
			return deleted, err
		}
		owned := meshapi.RemoteHandle{Part: msg.Rank(), Local: ownerLocal}
		mesh.DeleteGhost(owned)
	}

	return deleted, nil
}
