package nbt

import (
	"io"

	"github.com/bwkimmel/mcnbt/errs"
)

// Decode reads one fully-named root tag from r: a kind byte, a name, and the
// payload for that kind. KindEnd as a top-level kind is rejected.
func Decode(r io.Reader) (Tag, error) {
	return decode(r, false, nil)
}

// decodePayload reads a tag whose kind is already known and whose name is
// never present on the wire (list elements).
func decodePayload(r io.Reader, kind Kind) (Tag, error) {
	k := kind
	return decode(r, true, &k)
}

// decode implements spec.md §4.C's decode entry point. When nameSuppressed is
// true the tag has no name on the wire (list elements); when kindOverride is
// non-nil its value is used instead of reading a kind byte (also used for
// list elements, whose kind is declared once by the list header).
func decode(r io.Reader, nameSuppressed bool, kindOverride *Kind) (Tag, error) {
	var kind Kind
	if kindOverride != nil {
		kind = *kindOverride
	} else {
		b, err := readI8(r)
		if err != nil {
			return Tag{}, err
		}
		kind = Kind(byte(b))
	}
	if kind == KindEnd {
		// End carries no name or payload on the wire.
		return Tag{}, errs.New(errs.Invalid, "nbt.Decode", nil)
	}

	var name string
	if !nameSuppressed {
		n, err := readString(r)
		if err != nil {
			return Tag{}, err
		}
		name = n
	}

	switch kind {
	case KindByte:
		v, err := readI8(r)
		if err != nil {
			return Tag{}, err
		}
		return Tag{Kind: kind, Name: name, Value: v}, nil
	case KindShort:
		v, err := readI16(r)
		if err != nil {
			return Tag{}, err
		}
		return Tag{Kind: kind, Name: name, Value: v}, nil
	case KindInt:
		v, err := readI32(r)
		if err != nil {
			return Tag{}, err
		}
		return Tag{Kind: kind, Name: name, Value: v}, nil
	case KindLong:
		v, err := readI64(r)
		if err != nil {
			return Tag{}, err
		}
		return Tag{Kind: kind, Name: name, Value: v}, nil
	case KindFloat:
		v, err := readF32(r)
		if err != nil {
			return Tag{}, err
		}
		return Tag{Kind: kind, Name: name, Value: v}, nil
	case KindDouble:
		v, err := readF64(r)
		if err != nil {
			return Tag{}, err
		}
		return Tag{Kind: kind, Name: name, Value: v}, nil
	case KindString:
		v, err := readString(r)
		if err != nil {
			return Tag{}, err
		}
		return Tag{Kind: kind, Name: name, Value: v}, nil
	case KindByteArray:
		n, err := readArrayLen(r)
		if err != nil {
			return Tag{}, err
		}
		buf := make([]byte, n)
		if err := readFull(r, buf); err != nil {
			return Tag{}, err
		}
		return Tag{Kind: kind, Name: name, Value: buf}, nil
	case KindIntArray:
		n, err := readArrayLen(r)
		if err != nil {
			return Tag{}, err
		}
		vals := make([]int32, n)
		for i := range vals {
			v, err := readI32(r)
			if err != nil {
				return Tag{}, err
			}
			vals[i] = v
		}
		return Tag{Kind: kind, Name: name, Value: vals}, nil
	case KindLongArray:
		n, err := readArrayLen(r)
		if err != nil {
			return Tag{}, err
		}
		vals := make([]int64, n)
		for i := range vals {
			v, err := readI64(r)
			if err != nil {
				return Tag{}, err
			}
			vals[i] = v
		}
		return Tag{Kind: kind, Name: name, Value: vals}, nil
	case KindList:
		return decodeList(r, name)
	case KindCompound:
		return decodeCompound(r, name)
	default:
		return Tag{}, errs.New(errs.InvalidKind, "nbt.Decode", nil)
	}
}

func readArrayLen(r io.Reader) (int32, error) {
	n, err := readI32(r)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errs.New(errs.Invalid, "nbt.Decode", nil)
	}
	return n, nil
}

func decodeList(r io.Reader, name string) (Tag, error) {
	elemByte, err := readI8(r)
	if err != nil {
		return Tag{}, err
	}
	elemKind := Kind(byte(elemByte))

	n, err := readI32(r)
	if err != nil {
		return Tag{}, err
	}
	if n <= 0 {
		// Some producers emit elemKind=End with n=0; tolerated per spec.md
		// §4.C and §7 (the only accepted malformation).
		return Tag{Kind: KindList, Name: name, Value: List{ElemKind: elemKind, Elems: nil}}, nil
	}

	elems := make([]Tag, n)
	for i := range elems {
		e, err := decodePayload(r, elemKind)
		if err != nil {
			return Tag{}, err
		}
		elems[i] = e
	}
	return Tag{Kind: KindList, Name: name, Value: List{ElemKind: elemKind, Elems: elems}}, nil
}

func decodeCompound(r io.Reader, name string) (Tag, error) {
	var children []Tag
	for {
		kindByte, err := readI8(r)
		if err != nil {
			return Tag{}, err
		}
		kind := Kind(byte(kindByte))
		if kind == KindEnd {
			break
		}
		child, err := decode(r, false, &kind)
		if err != nil {
			return Tag{}, err
		}
		children = append(children, child)
	}
	return Tag{Kind: KindCompound, Name: name, Value: Compound{Children: children}}, nil
}
