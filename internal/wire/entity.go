package wire

import (
	"fmt"

	"github.com/danmuck/meshghost/internal/meshapi"
)

// EntityRecord is the flattened, transport-shaped description of one mesh
// entity sent as a ghost copy: its classification, geometry, and the local
// handle the sender used, so the sender can correlate a later ack or a
// second-layer seed list back to the entity it ghosted.
type EntityRecord struct {
	Dim         int
	ModelDim    int
	ModelID     int
	Point       meshapi.Point
	Param       meshapi.Param
	SenderLocal uint64
}

// EncodeEntityRecord packs rec into a self-contained envelope.
func EncodeEntityRecord(rec EntityRecord) []byte {
	e := NewEncoder()
	e.PutUint64(tagDim, uint64(rec.Dim))
	e.PutUint64(tagModelDim, uint64(rec.ModelDim))
	e.PutInt64(tagModelID, int64(rec.ModelID))
	e.PutFloat64(tagPoint0, rec.Point[0])
	e.PutFloat64(tagPoint1, rec.Point[1])
	e.PutFloat64(tagPoint2, rec.Point[2])
	e.PutFloat64(tagParam0, rec.Param[0])
	e.PutFloat64(tagParam1, rec.Param[1])
	e.PutFloat64(tagParam2, rec.Param[2])
	e.PutUint64(tagSenderLocal, rec.SenderLocal)
	return envelope(KindEntityRecord, e.Bytes())
}

// DecodeEntityRecord reverses EncodeEntityRecord.
func DecodeEntityRecord(buf []byte) (EntityRecord, error) {
	kind, body, err := decodeEnvelope(buf)
	if err != nil {
		return EntityRecord{}, err
	}
	if kind != KindEntityRecord {
		return EntityRecord{}, fmt.Errorf("wire: expected entity-record envelope, got kind %d", kind)
	}

	var rec EntityRecord
	d := NewDecoder(body)
	for {
		f, ok, err := d.Next()
		if err != nil {
			return EntityRecord{}, err
		}
		if !ok {
			break
		}
		switch f.Tag {
		case tagDim:
			v, err := FieldUint64(f)
			if err != nil {
				return EntityRecord{}, err
			}
			rec.Dim = int(v)
		case tagModelDim:
			v, err := FieldUint64(f)
			if err != nil {
				return EntityRecord{}, err
			}
			rec.ModelDim = int(v)
		case tagModelID:
			v, err := FieldInt64(f)
			if err != nil {
				return EntityRecord{}, err
			}
			rec.ModelID = int(v)
		case tagPoint0:
			if rec.Point[0], err = FieldFloat64(f); err != nil {
				return EntityRecord{}, err
			}
		case tagPoint1:
			if rec.Point[1], err = FieldFloat64(f); err != nil {
				return EntityRecord{}, err
			}
		case tagPoint2:
			if rec.Point[2], err = FieldFloat64(f); err != nil {
				return EntityRecord{}, err
			}
		case tagParam0:
			if rec.Param[0], err = FieldFloat64(f); err != nil {
				return EntityRecord{}, err
			}
		case tagParam1:
			if rec.Param[1], err = FieldFloat64(f); err != nil {
				return EntityRecord{}, err
			}
		case tagParam2:
			if rec.Param[2], err = FieldFloat64(f); err != nil {
				return EntityRecord{}, err
			}
		case tagSenderLocal:
			v, err := FieldUint64(f)
			if err != nil {
				return EntityRecord{}, err
			}
			rec.SenderLocal = v
		}
	}
	return rec, nil
}
