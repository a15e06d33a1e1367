package nbt

import "testing"

func TestDeepCopyDoesNotAlias(t *testing.T) {
	orig := NewCompound([]Tag{
		ByteArray([]byte{1, 2, 3}).Named("ba"),
		NewList(KindInt, []Tag{Int(1), Int(2)}).Named("l"),
	})

	cp := orig.DeepCopy()

	origC, _ := orig.AsCompound()
	cpC, _ := cp.AsCompound()

	ba, _ := origC.Children[0].AsByteArray()
	ba[0] = 99

	cpBa, _ := cpC.Children[0].AsByteArray()
	if cpBa[0] == 99 {
		t.Fatalf("DeepCopy aliased byte array")
	}

	origList, _ := origC.Children[1].AsList()
	origList.Elems[0] = Int(42)
	cpList, _ := cpC.Children[1].AsList()
	v, _ := cpList.Elems[0].AsInt()
	if v == 42 {
		t.Fatalf("DeepCopy aliased list elements")
	}
}

func TestCompoundContains(t *testing.T) {
	c := Compound{Children: []Tag{Int(1).Named("a")}}
	if !c.Contains("a") {
		t.Fatalf("Contains(a) = false")
	}
	if c.Contains("b") {
		t.Fatalf("Contains(b) = true")
	}
}
