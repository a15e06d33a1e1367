package nbt

import (
	"io"

	"github.com/bwkimmel/mcnbt/errs"
)

// Encode writes t as a fully-named root tag: kind byte, name, payload.
func Encode(w io.Writer, t Tag) error {
	if err := writeI8(w, int8(byte(t.Kind))); err != nil {
		return err
	}
	if err := writeString(w, t.Name); err != nil {
		return err
	}
	return encodePayload(w, t)
}

// encodePayload writes only t's payload, omitting the kind byte and name —
// used for compound children (after their own header) and list elements
// (whose kind is declared once by the list header and which are never
// named on the wire).
func encodePayload(w io.Writer, t Tag) error {
	switch t.Kind {
	case KindByte:
		return writeI8(w, t.Value.(int8))
	case KindShort:
		return writeI16(w, t.Value.(int16))
	case KindInt:
		return writeI32(w, t.Value.(int32))
	case KindLong:
		return writeI64(w, t.Value.(int64))
	case KindFloat:
		return writeF32(w, t.Value.(float32))
	case KindDouble:
		return writeF64(w, t.Value.(float64))
	case KindString:
		return writeString(w, t.Value.(string))
	case KindByteArray:
		v := t.Value.([]byte)
		if err := writeI32(w, int32(len(v))); err != nil {
			return err
		}
		_, err := w.Write(v)
		return writeErr(err)
	case KindIntArray:
		v := t.Value.([]int32)
		if err := writeI32(w, int32(len(v))); err != nil {
			return err
		}
		for _, e := range v {
			if err := writeI32(w, e); err != nil {
				return err
			}
		}
		return nil
	case KindLongArray:
		v := t.Value.([]int64)
		if err := writeI32(w, int32(len(v))); err != nil {
			return err
		}
		for _, e := range v {
			if err := writeI64(w, e); err != nil {
				return err
			}
		}
		return nil
	case KindList:
		return encodeList(w, t.Value.(List))
	case KindCompound:
		return encodeCompound(w, t.Value.(Compound))
	default:
		return errs.New(errs.InvalidKind, "nbt.Encode", nil)
	}
}

func encodeList(w io.Writer, l List) error {
	elemKind := l.ElemKind
	if len(l.Elems) == 0 {
		elemKind = KindEnd
	}
	if err := writeI8(w, int8(byte(elemKind))); err != nil {
		return err
	}
	if err := writeI32(w, int32(len(l.Elems))); err != nil {
		return err
	}
	for _, e := range l.Elems {
		if e.Kind != l.ElemKind {
			return errs.New(errs.SchemaViolation, "nbt.Encode", nil)
		}
		if err := encodePayload(w, e); err != nil {
			return err
		}
	}
	return nil
}

func encodeCompound(w io.Writer, c Compound) error {
	for _, child := range c.Children {
		if child.Kind == KindEnd {
			return errs.New(errs.SchemaViolation, "nbt.Encode", nil)
		}
		if err := Encode(w, child); err != nil {
			return err
		}
	}
	return writeI8(w, int8(byte(KindEnd)))
}
