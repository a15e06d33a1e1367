package nbt

import (
	"bytes"
	"testing"
)

func TestGzipRoundTrip(t *testing.T) {
	tag := NewCompound([]Tag{String("hi").Named("greeting")}).Named("")

	var buf bytes.Buffer
	if err := EncodeGzip(&buf, tag); err != nil {
		t.Fatalf("EncodeGzip: %v", err)
	}
	got, err := DecodeGzip(&buf)
	if err != nil {
		t.Fatalf("DecodeGzip: %v", err)
	}
	c, _ := got.AsCompound()
	greet, _ := c.Get("greeting")
	if v, _ := greet.AsString(); v != "hi" {
		t.Fatalf("greeting = %q, want hi", v)
	}
}

func TestZlibRoundTrip(t *testing.T) {
	tag := NewCompound([]Tag{Int(42).Named("answer")}).Named("")

	var buf bytes.Buffer
	if err := EncodeZlib(&buf, tag); err != nil {
		t.Fatalf("EncodeZlib: %v", err)
	}
	got, err := DecodeZlib(&buf)
	if err != nil {
		t.Fatalf("DecodeZlib: %v", err)
	}
	c, _ := got.AsCompound()
	answer, _ := c.Get("answer")
	if v, _ := answer.AsInt(); v != 42 {
		t.Fatalf("answer = %d, want 42", v)
	}
}
