package region

import "github.com/bwkimmel/mcnbt/errs"

// Scheme identifies the per-chunk compression framing (spec.md §4.D).
type Scheme byte

const (
	SchemeGzip   Scheme = 1
	SchemeZlib   Scheme = 2
	SchemeNone   Scheme = 3
	schemeLZ4    Scheme = 4
	schemeCustom Scheme = 127
)

// validate reports whether s is a recognized, supported scheme: it returns
// errs.Unsupported for schemes that are recognized but refused (LZ4, custom)
// and errs.InvalidScheme for anything else unrecognized.
func (s Scheme) validate() error {
	switch s {
	case SchemeGzip, SchemeZlib, SchemeNone:
		return nil
	case schemeLZ4, schemeCustom:
		return errs.New(errs.Unsupported, "region.Scheme", nil)
	default:
		return errs.New(errs.InvalidScheme, "region.Scheme", nil)
	}
}
