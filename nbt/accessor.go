package nbt

import "github.com/bwkimmel/mcnbt/errs"

func (t Tag) typeMismatch() error {
	return errs.New(errs.TypeMismatch, "nbt.Tag", nil)
}

// AsByte, AsShort, ... return the tag's payload, or errs.TypeMismatch if
// Kind does not match.
func (t Tag) AsByte() (int8, error) {
	if t.Kind != KindByte {
		return 0, t.typeMismatch()
	}
	return t.Value.(int8), nil
}

func (t Tag) AsShort() (int16, error) {
	if t.Kind != KindShort {
		return 0, t.typeMismatch()
	}
	return t.Value.(int16), nil
}

func (t Tag) AsInt() (int32, error) {
	if t.Kind != KindInt {
		return 0, t.typeMismatch()
	}
	return t.Value.(int32), nil
}

func (t Tag) AsLong() (int64, error) {
	if t.Kind != KindLong {
		return 0, t.typeMismatch()
	}
	return t.Value.(int64), nil
}

func (t Tag) AsFloat() (float32, error) {
	if t.Kind != KindFloat {
		return 0, t.typeMismatch()
	}
	return t.Value.(float32), nil
}

func (t Tag) AsDouble() (float64, error) {
	if t.Kind != KindDouble {
		return 0, t.typeMismatch()
	}
	return t.Value.(float64), nil
}

func (t Tag) AsString() (string, error) {
	if t.Kind != KindString {
		return "", t.typeMismatch()
	}
	return t.Value.(string), nil
}

func (t Tag) AsByteArray() ([]byte, error) {
	if t.Kind != KindByteArray {
		return nil, t.typeMismatch()
	}
	return t.Value.([]byte), nil
}

func (t Tag) AsIntArray() ([]int32, error) {
	if t.Kind != KindIntArray {
		return nil, t.typeMismatch()
	}
	return t.Value.([]int32), nil
}

func (t Tag) AsLongArray() ([]int64, error) {
	if t.Kind != KindLongArray {
		return nil, t.typeMismatch()
	}
	return t.Value.([]int64), nil
}

func (t Tag) AsList() (List, error) {
	if t.Kind != KindList {
		return List{}, t.typeMismatch()
	}
	return t.Value.(List), nil
}

func (t Tag) AsCompound() (Compound, error) {
	if t.Kind != KindCompound {
		return Compound{}, t.typeMismatch()
	}
	return t.Value.(Compound), nil
}

// Lookup finds a named child in a compound-kind tag, in strict mode:
// errs.KeyMissing if absent, errs.TypeMismatch if t is not a compound.
func (t Tag) Lookup(name string) (Tag, error) {
	c, err := t.AsCompound()
	if err != nil {
		return Tag{}, err
	}
	child, ok := c.Get(name)
	if !ok {
		return Tag{}, errs.New(errs.KeyMissing, "nbt.Tag.Lookup", nil)
	}
	return child, nil
}

// LookupOr is the lenient counterpart to Lookup: it returns def when name is
// absent instead of failing.
func (t Tag) LookupOr(name string, def Tag) Tag {
	c, err := t.AsCompound()
	if err != nil {
		return def
	}
	if child, ok := c.Get(name); ok {
		return child
	}
	return def
}

// Elem returns the i'th element of a list-kind tag.
func (t Tag) Elem(i int) (Tag, error) {
	l, err := t.AsList()
	if err != nil {
		return Tag{}, err
	}
	if i < 0 || i >= len(l.Elems) {
		return Tag{}, errs.New(errs.Invalid, "nbt.Tag.Elem", nil)
	}
	return l.Elems[i], nil
}
