package wire

import "fmt"

// Kind identifies the payload carried by one packed message.
type Kind uint8

const (
	KindEntityRecord Kind = iota + 1
	KindAck
	KindDeleteNotice
	KindGhostDests
)

// Field tags used across message kinds. Entity-record tags are used by
// entity.go, and tagDim is reused by the ghost-dests record. tagKind is not
// written by any encoder: the envelope carries its Kind as a leading byte.
const (
	tagKind uint8 = iota
	tagDim
	tagModelDim
	tagModelID
	tagPoint0
	tagPoint1
	tagPoint2
	tagParam0
	tagParam1
	tagParam2
	tagSenderLocal
	tagAckDim
	tagAckSenderLocal
	tagAckReceiverLocal
	tagDeleteOwnerLocal
	tagGhostDestsLocal
	tagGhostDestsPart
)

// Envelope wraps one message kind and its encoded payload.
type Envelope struct {
	Kind    Kind
	Payload []byte
}

// AckRecord is the reply a receiving part sends back for one installed
// ghost copy: the dimension it was ghosted at, the local id the sender
// used to refer to the original, and the local id the receiver gave the
// new copy. The original owner uses this pair to complete the bidirectional
// remote pointer (AddGhost) once the ack comes back.
type AckRecord struct {
	Dim          int
	SenderLocal  uint64
	ReceiverLocal uint64
}

// EncodeAckRecord packs rec into a self-contained envelope.
func EncodeAckRecord(rec AckRecord) []byte {
	e := NewEncoder()
	e.PutUint64(tagAckDim, uint64(rec.Dim))
	e.PutUint64(tagAckSenderLocal, rec.SenderLocal)
	e.PutUint64(tagAckReceiverLocal, rec.ReceiverLocal)
	return envelope(KindAck, e.Bytes())
}

// DecodeAckRecord reverses EncodeAckRecord.
func DecodeAckRecord(buf []byte) (AckRecord, error) {
	kind, body, err := decodeEnvelope(buf)
	if err != nil {
		return AckRecord{}, err
	}
	if kind != KindAck {
		return AckRecord{}, fmt.Errorf("wire: expected ack envelope, got kind %d", kind)
	}
	var rec AckRecord
	d := NewDecoder(body)
	for {
		f, ok, err := d.Next()
		if err != nil {
			return AckRecord{}, err
		}
		if !ok {
			break
		}
		switch f.Tag {
		case tagAckDim:
			v, err := FieldUint64(f)
			if err != nil {
				return AckRecord{}, err
			}
			rec.Dim = int(v)
		case tagAckSenderLocal:
			if rec.SenderLocal, err = FieldUint64(f); err != nil {
				return AckRecord{}, err
			}
		case tagAckReceiverLocal:
			if rec.ReceiverLocal, err = FieldUint64(f); err != nil {
				return AckRecord{}, err
			}
		}
	}
	return rec, nil
}

// EncodeDeleteNotice builds the envelope a part sends to the owner of a
// ghost copy it is about to destroy, identifying the owner's original by
// the local id the owner itself used when the copy was created.
func EncodeDeleteNotice(ownerLocal uint64) []byte {
	e := NewEncoder()
	e.PutUint64(tagDeleteOwnerLocal, ownerLocal)
	return envelope(KindDeleteNotice, e.Bytes())
}

// DecodeDeleteNotice reverses EncodeDeleteNotice.
func DecodeDeleteNotice(buf []byte) (uint64, error) {
	kind, body, err := decodeEnvelope(buf)
	if err != nil {
		return 0, err
	}
	if kind != KindDeleteNotice {
		return 0, fmt.Errorf("wire: expected delete-notice envelope, got kind %d", kind)
	}
	d := NewDecoder(body)
	for {
		f, ok, err := d.Next()
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
		if f.Tag == tagDeleteOwnerLocal {
			return FieldUint64(f)
		}
	}
	return 0, fmt.Errorf("wire: delete-notice envelope missing owner-local field")
}

// GhostDestsRecord carries one shared entity's current destination set from
// the part that just planned it to a remote part holding the matching copy,
// so both parts agree on the full set once every independent planner has
// contributed to it.
type GhostDestsRecord struct {
	Dim     int
	LocalID uint64
	Dests   []int
}

// EncodeGhostDests packs rec into a self-contained envelope. Dests is
// carried as one repeated field, one value per destination part.
func EncodeGhostDests(rec GhostDestsRecord) []byte {
	e := NewEncoder()
	e.PutUint64(tagDim, uint64(rec.Dim))
	e.PutUint64(tagGhostDestsLocal, rec.LocalID)
	for _, p := range rec.Dests {
		e.PutUint64(tagGhostDestsPart, uint64(p))
	}
	return envelope(KindGhostDests, e.Bytes())
}

// DecodeGhostDests reverses EncodeGhostDests.
func DecodeGhostDests(buf []byte) (GhostDestsRecord, error) {
	kind, body, err := decodeEnvelope(buf)
	if err != nil {
		return GhostDestsRecord{}, err
	}
	if kind != KindGhostDests {
		return GhostDestsRecord{}, fmt.Errorf("wire: expected ghost-dests envelope, got kind %d", kind)
	}
	var rec GhostDestsRecord
	d := NewDecoder(body)
	for {
		f, ok, err := d.Next()
		if err != nil {
			return GhostDestsRecord{}, err
		}
		if !ok {
			break
		}
		switch f.Tag {
		case tagDim:
			v, err := FieldUint64(f)
			if err != nil {
				return GhostDestsRecord{}, err
			}
			rec.Dim = int(v)
		case tagGhostDestsLocal:
			if rec.LocalID, err = FieldUint64(f); err != nil {
				return GhostDestsRecord{}, err
			}
		case tagGhostDestsPart:
			v, err := FieldUint64(f)
			if err != nil {
				return GhostDestsRecord{}, err
			}
			rec.Dests = append(rec.Dests, int(v))
		}
	}
	return rec, nil
}

func envelope(kind Kind, body []byte) []byte {
	out := make([]byte, 0, len(body)+1)
	out = append(out, byte(kind))
	out = append(out, body...)
	return out
}

func decodeEnvelope(buf []byte) (Kind, []byte, error) {
	if len(buf) < 1 {
		return 0, nil, fmt.Errorf("wire: empty envelope")
	}
	return Kind(buf[0]), buf[1:], nil
}
