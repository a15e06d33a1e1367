// Package compress adapts a byte stream to gzip or zlib framing. It is the
// pluggable collaborator named in spec.md §1 — the nbt and region packages
// depend only on the Codec interface, never on a specific implementation.
package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Codec wraps a stream in a particular compression framing for reading or
// writing.
type Codec interface {
	NewReader(r io.Reader) (io.ReadCloser, error)
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// Gzip is the default gzip Codec, backed by klauspost/compress/gzip (a
// drop-in, allocation-lighter alternative to compress/gzip).
var Gzip Codec = gzipCodec{}

// Zlib is the default zlib Codec, backed by klauspost/compress/zlib.
var Zlib Codec = zlibCodec{}

type gzipCodec struct{}

func (gzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (gzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, gzip.DefaultCompression)
}

type zlibCodec struct{}

func (zlibCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

func (zlibCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zlib.NewWriterLevel(w, zlib.DefaultCompression)
}

// Identity is the "none" compression scheme: a pass-through Codec.
var Identity Codec = identityCodec{}

type identityCodec struct{}

func (identityCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func (identityCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}
