package nbt

import (
	"strings"
	"testing"
)

func TestPrettyScalarSuffixes(t *testing.T) {
	cases := []struct {
		tag  Tag
		want string
	}{
		{Byte(5), "5b"},
		{Short(5), "5s"},
		{Int(5), "5i"},
		{Long(5), "5l"},
		{String("hi"), `"hi"`},
	}
	for _, c := range cases {
		if got := Pretty(c.tag); got != c.want {
			t.Errorf("Pretty(%v) = %q, want %q", c.tag, got, c.want)
		}
	}
}

func TestPrettyCompound(t *testing.T) {
	tag := NewCompound([]Tag{
		Int(1).Named("a"),
		String("b").Named("s"),
	}).Named("root")

	got := Pretty(tag)
	if !strings.HasPrefix(got, "root: {") {
		t.Fatalf("Pretty = %q, want prefix %q", got, "root: {")
	}
	if !strings.Contains(got, "a: 1i") {
		t.Fatalf("Pretty = %q, missing a: 1i", got)
	}
	if !strings.Contains(got, `s: "b"`) {
		t.Fatalf("Pretty = %q, missing s: \"b\"", got)
	}
}

func TestPrettyEmptyContainers(t *testing.T) {
	if got := Pretty(NewCompound(nil)); got != "{ }" {
		t.Fatalf("Pretty(empty compound) = %q", got)
	}
	if got := Pretty(NewList(KindEnd, nil)); got != "[ ]" {
		t.Fatalf("Pretty(empty list) = %q", got)
	}
}
