package nbt

import (
	"bytes"
	"io"

	"github.com/bwkimmel/mcnbt/compress"
	"github.com/bwkimmel/mcnbt/errs"
)

// DecodeGzip decodes a tag tree framed in gzip, e.g. level.dat files.
func DecodeGzip(r io.Reader) (Tag, error) {
	return decodeCompressed(r, compress.Gzip)
}

// DecodeZlib decodes a tag tree framed in zlib, as used by Anvil chunk
// payloads with scheme=2.
func DecodeZlib(r io.Reader) (Tag, error) {
	return decodeCompressed(r, compress.Zlib)
}

func decodeCompressed(r io.Reader, codec compress.Codec) (Tag, error) {
	zr, err := codec.NewReader(r)
	if err != nil {
		return Tag{}, errs.New(errs.IoError, "nbt.Decode", err)
	}
	defer zr.Close()

	// io.ReadAll grows to exactly the produced size; unlike a fixed scratch
	// buffer, it never appends trailing garbage past the inflator's output
	// (spec.md §9's readNbtBytesZlib pitfall).
	raw, err := io.ReadAll(zr)
	if err != nil {
		return Tag{}, errs.New(errs.IoError, "nbt.Decode", err)
	}
	return Decode(bytes.NewReader(raw))
}

// EncodeGzip encodes t and frames it in gzip.
func EncodeGzip(w io.Writer, t Tag) error {
	return encodeCompressed(w, t, compress.Gzip)
}

// EncodeZlib encodes t and frames it in zlib.
func EncodeZlib(w io.Writer, t Tag) error {
	return encodeCompressed(w, t, compress.Zlib)
}

func encodeCompressed(w io.Writer, t Tag, codec compress.Codec) error {
	zw, err := codec.NewWriter(w)
	if err != nil {
		return errs.New(errs.IoError, "nbt.Encode", err)
	}
	if err := Encode(zw, t); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return errs.New(errs.IoError, "nbt.Encode", err)
	}
	return nil
}
