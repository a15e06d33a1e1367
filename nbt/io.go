package nbt

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/bwkimmel/mcnbt/errs"
)

// readFull reads exactly len(buf) bytes, translating io.EOF and
// io.ErrUnexpectedEOF into errs.Truncated the way spec.md §4.A requires.
func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return errs.New(errs.Truncated, "nbt.read", err)
	}
	return nil
}

func readI8(r io.Reader) (int8, error) {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int8(buf[0]), nil
}

func readI16(r io.Reader) (int16, error) {
	var buf [2]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

func readI32(r io.Reader) (int32, error) {
	var buf [4]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func readI64(r io.Reader) (int64, error) {
	var buf [8]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

// readF32/readF64 bit-cast through an unsigned integer of the same width
// before interpreting as a float, per spec.md §9: floats are never
// byte-swapped as floating-point values.
func readF32(r io.Reader) (float32, error) {
	bits, err := readI32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

func readF64(r io.Reader) (float64, error) {
	bits, err := readI64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}

func readString(r io.Reader) (string, error) {
	n, err := readI16(r)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, uint16(n))
	if err := readFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeErr(err error) error {
	if err == nil {
		return nil
	}
	return errs.New(errs.IoError, "nbt.write", err)
}

func writeI8(w io.Writer, v int8) error {
	_, err := w.Write([]byte{byte(v)})
	return writeErr(err)
}

func writeI16(w io.Writer, v int16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	_, err := w.Write(buf[:])
	return writeErr(err)
}

func writeI32(w io.Writer, v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return writeErr(err)
}

func writeI64(w io.Writer, v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return writeErr(err)
}

func writeF32(w io.Writer, v float32) error {
	return writeI32(w, int32(math.Float32bits(v)))
}

func writeF64(w io.Writer, v float64) error {
	return writeI64(w, int64(math.Float64bits(v)))
}

// writeString never emits a NUL terminator: the wire format is u16-length
// prefixed, not C-string style.
func writeString(w io.Writer, s string) error {
	if len(s) > 0xFFFF {
		return errs.New(errs.Invalid, "nbt.write", io.ErrShortWrite)
	}
	if err := writeI16(w, int16(uint16(len(s)))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	_, err := io.WriteString(w, s)
	return writeErr(err)
}
