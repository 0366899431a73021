package ghost

import (
	"context"

	"github.com/danmuck/meshghost/internal/meshapi"
	"github.com/danmuck/meshghost/internal/wire"
)

// Collect plans every seed (at seedDim) to be sent to dests, walks each
// seed's downward closure planning every entity in it too (so a ghosted
// element arrives with the vertices and edges that bound it, each sent to
// the seed's own full destination set, not just this call's dests), and
// finally reconciles destination sets for any shared entity across the
// parts that independently planned it, so every part ends up agreeing on
// the complete set. The entity_2_ghost tag dedupes visits across seeds that
// share boundary entities, and is destroyed before Collect returns.
//
// Every part in the job must call Collect once per round: the reconcile
// pass runs one collective messaging round regardless of whether this part
// had any seeds.
func Collect(ctx context.Context, mesh meshapi.Mesh, msg meshapi.Messaging, plan *Plan, seeds []meshapi.Entity, seedDim int, dests []int) error {
	mark := mesh.CreateTag(meshapi.TagEntityToGhost, meshapi.TagTypeInt, 1)
	defer mesh.DestroyTag(mark)

	for _, seed := range seeds {
		if err := plan.SendAll(seed, seedDim, dests); err != nil {
			return err
		}
		mesh.SetTag(seed, mark, []byte{1})
		// Use the seed's own accumulated destination set, not this call's
		// dests: a seed already planned by an earlier call may carry
		// destinations beyond what this call is adding, and its whole
		// closure must follow it to every one of them.
		seedDests := plan.Sending(seed, seedDim)
		if err := collectClosure(mesh, plan, mark, seed, seedDim, seedDests); err != nil {
			return err
		}
	}

	return reconcileSharedDestinations(ctx, mesh, msg, plan, seedDim)
}

func collectClosure(mesh meshapi.Mesh, plan *Plan, mark meshapi.TagHandle, e meshapi.Entity, dim int, dests []int) error {
	if dim <= 0 {
		return nil
	}
	for _, child := range mesh.Downward(e, dim-1) {
		if !mesh.HasTag(child, mark) {
			mesh.SetTag(child, mark, []byte{1})
			if err := plan.SendAll(child, dim-1, dests); err != nil {
				return err
			}
		}
		if err := collectClosure(mesh, plan, mark, child, dim-1, dests); err != nil {
			return err
		}
	}
	return nil
}

// reconcileSharedDestinations is step 3 of the ghost collector: a shared
// entity independently ghosted by two parts to different destinations must
// ship consistently, so every part records the full union. For each
// dimension up to seedDim, every planned entity that is shared sends its
// remote copy's owner the current destination set; receivers merge the
// set into their own plan entry for the matching local entity, creating
// one if it didn't already have a plan entry.
func reconcileSharedDestinations(ctx context.Context, mesh meshapi.Mesh, msg meshapi.Messaging, plan *Plan, seedDim int) error {
	if err := msg.Begin(ctx); err != nil {
		return err
	}

	for d := 0; d <= seedDim; d++ {
		for _, e := range plan.Entities(d) {
			if !mesh.IsShared(e) {
				continue
			}
			dests := plan.Sending(e, d)
			if len(dests) == 0 {
				continue
			}
			for remotePart, remote := range mesh.Remotes(e) {
				buf := wire.EncodeGhostDests(wire.GhostDestsRecord{
					Dim:     d,
					LocalID: remote.EntityKey().Local,
					Dests:   dests,
				})
				if err := msg.Pack(remotePart, buf); err != nil {
					return err
				}
			}
		}
	}
	if err := msg.Send(ctx); err != nil {
		return err
	}

	for {
		_, unpack, ok := msg.Receive(ctx)
		if !ok {
			break
		}
		var buf []byte
		if err := unpack(&buf); err != nil {
			return err
		}
		rec, err := wire.DecodeGhostDests(buf)
		if err != nil {
			return err
		}

		local := meshapi.RemoteHandle{Part: msg.Rank(), Local: rec.LocalID}
		for _, to := range rec.Dests {
			if to == msg.Rank() {
				continue
			}
			if err := plan.Send(local, rec.Dim, to); err != nil {
				return err
			}
		}
	}
	return nil
}
