package nbt

import (
	"fmt"
	"strconv"
	"strings"
)

// Pretty renders t in the canonical human-readable form used by spec.md §4.C:
// scalars get a kind-suffix letter, strings are double-quoted, compounds use
// "{ name: value, ... }", lists/arrays use "[ value, ... ]", indented by one
// tab per depth.
func Pretty(t Tag) string {
	var b strings.Builder
	writePretty(&b, t, 0, true)
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteByte('\t')
	}
}

func writePretty(b *strings.Builder, t Tag, depth int, withName bool) {
	if withName && t.Name != "" {
		fmt.Fprintf(b, "%s: ", t.Name)
	}
	switch t.Kind {
	case KindByte:
		fmt.Fprintf(b, "%db", t.Value.(int8))
	case KindShort:
		fmt.Fprintf(b, "%ds", t.Value.(int16))
	case KindInt:
		fmt.Fprintf(b, "%di", t.Value.(int32))
	case KindLong:
		fmt.Fprintf(b, "%dl", t.Value.(int64))
	case KindFloat:
		fmt.Fprintf(b, "%sf", strconv.FormatFloat(float64(t.Value.(float32)), 'g', -1, 32))
	case KindDouble:
		fmt.Fprintf(b, "%sd", strconv.FormatFloat(t.Value.(float64), 'g', -1, 64))
	case KindString:
		fmt.Fprintf(b, "%q", t.Value.(string))
	case KindByteArray:
		v := t.Value.([]byte)
		b.WriteString("[ ")
		for i, e := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%db", int8(e))
		}
		b.WriteString(" ]")
	case KindIntArray:
		v := t.Value.([]int32)
		b.WriteString("[ ")
		for i, e := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%di", e)
		}
		b.WriteString(" ]")
	case KindLongArray:
		v := t.Value.([]int64)
		b.WriteString("[ ")
		for i, e := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%dl", e)
		}
		b.WriteString(" ]")
	case KindList:
		l := t.Value.(List)
		if len(l.Elems) == 0 {
			b.WriteString("[ ]")
			return
		}
		b.WriteString("[\n")
		for _, e := range l.Elems {
			indent(b, depth+1)
			writePretty(b, e, depth+1, false)
			b.WriteString(",\n")
		}
		indent(b, depth)
		b.WriteString("]")
	case KindCompound:
		c := t.Value.(Compound)
		if len(c.Children) == 0 {
			b.WriteString("{ }")
			return
		}
		b.WriteString("{\n")
		for _, child := range c.Children {
			indent(b, depth+1)
			writePretty(b, child, depth+1, true)
			b.WriteString(",\n")
		}
		indent(b, depth)
		b.WriteString("}")
	default:
		b.WriteString("<end>")
	}
}
