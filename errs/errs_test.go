package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("eof")
	e := New(Truncated, "nbt.Decode", cause)

	if !errors.Is(e, cause) {
		t.Fatalf("errors.Is did not see through to cause")
	}
	if got := e.Error(); got == "" {
		t.Fatalf("Error() returned empty string")
	}
}

func TestIs(t *testing.T) {
	e := New(PaletteOutOfRange, "palette.ExtractBlockIndices", nil)
	wrapped := fmt.Errorf("decode section 3: %w", e)

	if !Is(wrapped, PaletteOutOfRange) {
		t.Fatalf("Is(wrapped, PaletteOutOfRange) = false, want true")
	}
	if Is(wrapped, Truncated) {
		t.Fatalf("Is(wrapped, Truncated) = true, want false")
	}
	if Is(errors.New("plain"), Truncated) {
		t.Fatalf("Is(plain error) = true, want false")
	}
}

func TestKindString(t *testing.T) {
	if Truncated.String() != "truncated" {
		t.Fatalf("Truncated.String() = %q", Truncated.String())
	}
	if got := Kind(999).String(); got == "" {
		t.Fatalf("unknown kind produced empty string")
	}
}
