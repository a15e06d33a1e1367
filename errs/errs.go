// Package errs defines the distinguishable error kinds shared by the nbt,
// region, palette and chunkdata packages.
package errs

import "fmt"

// Kind identifies the class of failure that occurred. Callers branch on Kind
// with errors.As rather than string-matching error text.
type Kind int

const (
	// Truncated means the input ended before a complete value could be read.
	Truncated Kind = iota
	// InvalidKind means an unknown tag id was encountered on the wire.
	InvalidKind
	// Invalid means a payload was malformed (e.g. a negative array length).
	Invalid
	// InvalidScheme means a region chunk declared an unknown compression id.
	InvalidScheme
	// Unsupported means a recognized but refused compression scheme (LZ4,
	// custom) was encountered.
	Unsupported
	// PaletteOutOfRange means a packed palette index exceeded the palette size.
	PaletteOutOfRange
	// TypeMismatch means a typed accessor was called on the wrong tag kind.
	TypeMismatch
	// KeyMissing means a strict compound lookup found no child with that name.
	KeyMissing
	// SchemaViolation means a list was encoded with heterogeneous element kinds.
	SchemaViolation
	// PayloadTooLarge means a single chunk's compressed payload needs more
	// than 255 sectors to store.
	PayloadTooLarge
	// IoError wraps an underlying stream failure.
	IoError
)

func (k Kind) String() string {
	switch k {
	case Truncated:
		return "truncated"
	case InvalidKind:
		return "invalid kind"
	case Invalid:
		return "invalid"
	case InvalidScheme:
		return "invalid scheme"
	case Unsupported:
		return "unsupported"
	case PaletteOutOfRange:
		return "palette out of range"
	case TypeMismatch:
		return "type mismatch"
	case KeyMissing:
		return "key missing"
	case SchemaViolation:
		return "schema violation"
	case PayloadTooLarge:
		return "payload too large"
	case IoError:
		return "io error"
	default:
		return fmt.Sprintf("errs.Kind(%d)", int(k))
	}
}

// Error carries a Kind plus the operation that detected it and, usually, the
// underlying cause. It is modeled on stdlib errors like *os.PathError.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap allows errors.Is/errors.As to see through to the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a new *Error with the given kind, operation name, and
// (optionally nil) wrapped cause.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Is reports whether err is an *Error (possibly wrapped) of the given kind.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
