package ghost

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/danmuck/meshghost/internal/meshapi"
	"github.com/danmuck/meshghost/internal/observability"
	"github.com/danmuck/meshghost/internal/wire"
)

func encodePartID(part int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(part))
	return buf[:]
}

// ExchangeReport summarizes one Create call: how many (entity, destination)
// pairs were packed and sent, and how many ghost copies were installed
// locally from other parts.
type ExchangeReport struct {
	Sent     int
	Received int
}

// Create runs one ghost exchange at dim: pack and send every entity plan
// has queued at that dimension to its planned destinations, install every
// ghost copy this part receives in turn, then run a second round so every
// sender learns the local id its entity was given on the far side and can
// complete the bidirectional remote pointer via AddGhost.
func Create(ctx context.Context, mesh meshapi.Mesh, msg meshapi.Messaging, plan *Plan, dim int) (ExchangeReport, error) {
	start := time.Now()

	ghostTag := mesh.CreateTag(meshapi.TagGhost, meshapi.TagTypeInt, 8)
	ghostedTag := mesh.CreateTag(meshapi.TagGhosted, meshapi.TagTypeInt, 8)

	if err := msg.Begin(ctx); err != nil {
		return ExchangeReport{}, err
	}

	entities := plan.Entities(dim)
	sent := 0
	for _, e := range entities {
		already := make(map[int]bool)
		for _, p := range mesh.Residence(e) {
			already[p] = true
		}
		for p := range mesh.Ghosts(e) {
			already[p] = true
		}

		var rec *wire.EntityRecord
		for _, to := range plan.Sending(e, dim) {
			if already[to] {
				continue
			}
			if rec == nil {
				rec = &wire.EntityRecord{
					Dim:         dim,
					ModelDim:    mesh.ModelType(e),
					ModelID:     mesh.ModelTag(e),
					Point:       mesh.Point(e),
					Param:       mesh.Param(e),
					SenderLocal: e.EntityKey().Local,
				}
			}
			if err := msg.Pack(to, wire.EncodeEntityRecord(*rec)); err != nil {
				return ExchangeReport{}, err
			}
			sent++
		}
	}
	if err := msg.Send(ctx); err != nil {
		return ExchangeReport{}, err
	}

	type installedCopy struct {
		from        int
		senderLocal uint64
		local       meshapi.Entity
	}
	var installed []installedCopy

	for {
		from, unpack, ok := msg.Receive(ctx)
		if !ok {
			break
		}
		var buf []byte
		if err := unpack(&buf); err != nil {
			return ExchangeReport{}, err
		}
		rec, err := wire.DecodeEntityRecord(buf)
		if err != nil {
			return ExchangeReport{}, err
		}

		class := meshapi.Classification{Dim: rec.ModelDim, ID: rec.ModelID}
		local := mesh.CreateEntity(dim, class, rec.Point, rec.Param)
		remote := meshapi.RemoteHandle{Part: from, Local: rec.SenderLocal}
		mesh.MarkGhostCopy(local, from, remote)
		mesh.SetTag(local, ghostTag, encodePartID(from))

		installed = append(installed, installedCopy{from: from, senderLocal: rec.SenderLocal, local: local})
	}
	received := len(installed)

	if err := msg.Begin(ctx); err != nil {
		return ExchangeReport{}, err
	}
	for _, ic := range installed {
		ack := wire.EncodeAckRecord(wire.AckRecord{
			Dim:           dim,
			SenderLocal:   ic.senderLocal,
			ReceiverLocal: ic.local.EntityKey().Local,
		})
		if err := msg.Pack(ic.from, ack); err != nil {
			return ExchangeReport{}, err
		}
	}
	if err := msg.Send(ctx); err != nil {
		return ExchangeReport{}, err
	}

	sentByLocal := make(map[uint64]meshapi.Entity, len(entities))
	for _, e := range entities {
		sentByLocal[e.EntityKey().Local] = e
	}

	for {
		from, unpack, ok := msg.Receive(ctx)
		if !ok {
			break
		}
		var buf []byte
		if err := unpack(&buf); err != nil {
			return ExchangeReport{}, err
		}
		ack, err := wire.DecodeAckRecord(buf)
		if err != nil {
			return ExchangeReport{}, err
		}
		orig, ok := sentByLocal[ack.SenderLocal]
		if !ok {
			continue
		}
		mesh.AddGhost(orig, from, meshapi.RemoteHandle{Part: from, Local: ack.ReceiverLocal})
		mesh.SetTag(orig, ghostedTag, encodePartID(from))
	}

	observability.RecordGhostExchange(dim, sent, received, time.Since(start))
	return ExchangeReport{Sent: sent, Received: received}, nil
}
