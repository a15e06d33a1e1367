// Package nbt implements Minecraft's Named Binary Tag format: a typed,
// self-describing tree with big-endian wire encoding, plus a pretty-printer
// and typed accessors.
package nbt

// Kind is the wire tag id (spec table in spec.md §3).
type Kind byte

const (
	KindEnd       Kind = 0x00
	KindByte      Kind = 0x01
	KindShort     Kind = 0x02
	KindInt       Kind = 0x03
	KindLong      Kind = 0x04
	KindFloat     Kind = 0x05
	KindDouble    Kind = 0x06
	KindByteArray Kind = 0x07
	KindString    Kind = 0x08
	KindList      Kind = 0x09
	KindCompound  Kind = 0x0A
	KindIntArray  Kind = 0x0B
	KindLongArray Kind = 0x0C
)

func (k Kind) String() string {
	switch k {
	case KindEnd:
		return "End"
	case KindByte:
		return "Byte"
	case KindShort:
		return "Short"
	case KindInt:
		return "Int"
	case KindLong:
		return "Long"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindByteArray:
		return "ByteArray"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindCompound:
		return "Compound"
	case KindIntArray:
		return "IntArray"
	case KindLongArray:
		return "LongArray"
	default:
		return "Unknown"
	}
}

// List is the payload of a KindList tag: every element shares ElemKind and
// carries no name of its own.
type List struct {
	ElemKind Kind
	Elems    []Tag
}

// Compound is the payload of a KindCompound tag: an ordered sequence of named
// children, with no End-kind children and no duplicate-name requirement
// (lookups return the first match, per spec.md §4.C).
type Compound struct {
	Children []Tag
}

// Get returns the first child named name and true, or the zero Tag and false.
func (c *Compound) Get(name string) (Tag, bool) {
	for _, ch := range c.Children {
		if ch.Name == name {
			return ch, true
		}
	}
	return Tag{}, false
}

// Contains reports whether exactly one child is named name.
func (c *Compound) Contains(name string) bool {
	n := 0
	for _, ch := range c.Children {
		if ch.Name == name {
			n++
		}
	}
	return n == 1
}

// Append adds a child tag, preserving insertion order.
func (c *Compound) Append(t Tag) {
	c.Children = append(c.Children, t)
}

// Tag is one node of an NBT tree. Value's concrete type is determined by
// Kind:
//
//	KindByte                int8
//	KindShort               int16
//	KindInt                 int32
//	KindLong                int64
//	KindFloat               float32
//	KindDouble              float64
//	KindByteArray           []byte
//	KindString              string
//	KindList                List
//	KindCompound            Compound
//	KindIntArray            []int32
//	KindLongArray           []int64
//
// Trees are acyclic and unshared: a Compound owns its Children, a List owns
// its Elems. DeepCopy produces a tree with no aliasing to the source.
type Tag struct {
	Kind  Kind
	Name  string
	Value any
}

// Byte, Short, Int, ... construct unnamed tags of the given kind. Name them
// with the Named method when inserting into a Compound.
func Byte(v int8) Tag      { return Tag{Kind: KindByte, Value: v} }
func Short(v int16) Tag    { return Tag{Kind: KindShort, Value: v} }
func Int(v int32) Tag      { return Tag{Kind: KindInt, Value: v} }
func Long(v int64) Tag     { return Tag{Kind: KindLong, Value: v} }
func Float(v float32) Tag  { return Tag{Kind: KindFloat, Value: v} }
func Double(v float64) Tag { return Tag{Kind: KindDouble, Value: v} }
func ByteArray(v []byte) Tag {
	return Tag{Kind: KindByteArray, Value: v}
}
func String(v string) Tag { return Tag{Kind: KindString, Value: v} }
func IntArray(v []int32) Tag {
	return Tag{Kind: KindIntArray, Value: v}
}
func LongArray(v []int64) Tag {
	return Tag{Kind: KindLongArray, Value: v}
}
func NewList(elemKind Kind, elems []Tag) Tag {
	return Tag{Kind: KindList, Value: List{ElemKind: elemKind, Elems: elems}}
}
func NewCompound(children []Tag) Tag {
	return Tag{Kind: KindCompound, Value: Compound{Children: children}}
}

// Named returns a copy of t with Name set, for inserting into a compound.
func (t Tag) Named(name string) Tag {
	t.Name = name
	return t
}

// DeepCopy returns a tree with no aliasing to t: new slices/compounds for
// every container, independent of t's backing arrays.
func (t Tag) DeepCopy() Tag {
	switch t.Kind {
	case KindByteArray:
		v := t.Value.([]byte)
		cp := make([]byte, len(v))
		copy(cp, v)
		t.Value = cp
	case KindIntArray:
		v := t.Value.([]int32)
		cp := make([]int32, len(v))
		copy(cp, v)
		t.Value = cp
	case KindLongArray:
		v := t.Value.([]int64)
		cp := make([]int64, len(v))
		copy(cp, v)
		t.Value = cp
	case KindList:
		v := t.Value.(List)
		elems := make([]Tag, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = e.DeepCopy()
		}
		t.Value = List{ElemKind: v.ElemKind, Elems: elems}
	case KindCompound:
		v := t.Value.(Compound)
		children := make([]Tag, len(v.Children))
		for i, c := range v.Children {
			children[i] = c.DeepCopy()
		}
		t.Value = Compound{Children: children}
	}
	return t
}
