package nbt

import (
	"testing"

	"github.com/bwkimmel/mcnbt/errs"
)

func TestAsIntTypeMismatch(t *testing.T) {
	_, err := String("x").AsInt()
	if !errs.Is(err, errs.TypeMismatch) {
		t.Fatalf("err = %v, want TypeMismatch", err)
	}
}

func TestLookupStrictAndLenient(t *testing.T) {
	c := NewCompound([]Tag{Int(7).Named("a")})

	if _, err := c.Lookup("missing"); !errs.Is(err, errs.KeyMissing) {
		t.Fatalf("Lookup(missing) err = %v, want KeyMissing", err)
	}

	got, err := c.Lookup("a")
	if err != nil {
		t.Fatalf("Lookup(a): %v", err)
	}
	if v, _ := got.AsInt(); v != 7 {
		t.Fatalf("Lookup(a) = %d, want 7", v)
	}

	def := Int(-1)
	if got := c.LookupOr("missing", def); got.Value.(int32) != -1 {
		t.Fatalf("LookupOr(missing) = %+v", got)
	}
}

func TestElemOutOfRange(t *testing.T) {
	l := NewList(KindInt, []Tag{Int(1)})
	if _, err := l.Elem(5); !errs.Is(err, errs.Invalid) {
		t.Fatalf("Elem(5) err = %v, want Invalid", err)
	}
	got, err := l.Elem(0)
	if err != nil {
		t.Fatalf("Elem(0): %v", err)
	}
	if v, _ := got.AsInt(); v != 1 {
		t.Fatalf("Elem(0) = %d, want 1", v)
	}
}
