package wire

import (
	"encoding/binary"
	"fmt"
)

// Field is one decoded tag/length/value triple.
type Field struct {
	Tag   uint8
	Value []byte
}

// Encoder accumulates fields into a flat TLV buffer.
type Encoder struct {
	buf []byte
}

func NewEncoder() *Encoder { return &Encoder{} }

func (e *Encoder) PutBytes(tag uint8, v []byte) {
	e.buf = append(e.buf, tag)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(v)))
	e.buf = append(e.buf, lenBuf[:]...)
	e.buf = append(e.buf, v...)
}

func (e *Encoder) PutUint64(tag uint8, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.PutBytes(tag, b[:])
}

func (e *Encoder) PutInt64(tag uint8, v int64) {
	e.PutUint64(tag, uint64(v))
}

func (e *Encoder) PutFloat64(tag uint8, v float64) {
	e.PutUint64(tag, float64bits(v))
}

func (e *Encoder) Bytes() []byte { return e.buf }

// Decoder walks a TLV buffer one field at a time.
type Decoder struct {
	buf []byte
	pos int
}

func NewDecoder(buf []byte) *Decoder { return &Decoder{buf: buf} }

// Next returns the next field, or ok=false once the buffer is exhausted.
func (d *Decoder) Next() (Field, bool, error) {
	if d.pos >= len(d.buf) {
		return Field{}, false, nil
	}
	if d.pos+5 > len(d.buf) {
		return Field{}, false, fmt.Errorf("wire: truncated field header at offset %d", d.pos)
	}
	tag := d.buf[d.pos]
	length := binary.BigEndian.Uint32(d.buf[d.pos+1 : d.pos+5])
	start := d.pos + 5
	end := start + int(length)
	if end > len(d.buf) {
		return Field{}, false, fmt.Errorf("wire: truncated field value at offset %d", d.pos)
	}
	d.pos = end
	return Field{Tag: tag, Value: d.buf[start:end]}, true, nil
}

func FieldUint64(f Field) (uint64, error) {
	if len(f.Value) != 8 {
		return 0, fmt.Errorf("wire: tag %d: want 8 bytes, got %d", f.Tag, len(f.Value))
	}
	return binary.BigEndian.Uint64(f.Value), nil
}

func FieldInt64(f Field) (int64, error) {
	v, err := FieldUint64(f)
	return int64(v), err
}

func FieldFloat64(f Field) (float64, error) {
	v, err := FieldUint64(f)
	if err != nil {
		return 0, err
	}
	return float64frombits(v), nil
}
