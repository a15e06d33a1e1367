// Package region implements Minecraft's Anvil region-file container: a
// sector-aligned (4096-byte) file holding up to 1024 compressed NBT chunk
// payloads indexed by an 8 KiB header of locations and timestamps.
package region

import (
	"bytes"
	"encoding/binary"
	"io"
	"time"

	"github.com/bwkimmel/mcnbt/compress"
	"github.com/bwkimmel/mcnbt/errs"
	"github.com/bwkimmel/mcnbt/nbt"
)

const (
	// SectorSize is the allocation unit for a region file's data sectors.
	SectorSize = 4096
	// NumChunks is the fixed chunk-grid size (32x32) a region file covers.
	NumChunks = 1024
	// HeaderSectors is the combined size, in sectors, of the locations and
	// timestamps tables at the start of every region file.
	HeaderSectors = 2
)

// Location is a decoded entry from a region file's 8 KiB header: the sector
// offset and sector count of one chunk's data. An Offset of 0 means the slot
// is empty.
type Location struct {
	Offset uint32
	Count  uint32
}

// ParseLocation decodes one 4-byte big-endian location table entry.
func ParseLocation(entry uint32) Location {
	return Location{Offset: entry >> 8, Count: entry & 0xff}
}

// Encode packs l back into its 4-byte big-endian location table entry.
func (l Location) Encode() uint32 {
	return (l.Offset << 8) | (l.Count & 0xff)
}

// Chunk is a single slot's decoded payload. Present distinguishes an
// explicit empty/absent slot from a zero-value compound tag (spec.md §4.D.4).
type Chunk struct {
	Present bool
	Tag     nbt.Tag
}

// Region holds all 1024 decoded chunk slots plus their per-chunk write
// timestamps.
type Region struct {
	Chunks     [NumChunks]Chunk
	Timestamps [NumChunks]uint32
}

func codecFor(s Scheme) compress.Codec {
	switch s {
	case SchemeGzip:
		return compress.Gzip
	case SchemeZlib:
		return compress.Zlib
	default:
		return compress.Identity
	}
}

// Read parses a complete Anvil region file from r, per spec.md §4.D. Any
// chunk with an unrecognized or refused compression scheme fails the whole
// read: no partial Region is returned.
func Read(r io.ReadSeeker) (*Region, error) {
	const op = "region.Read"

	var locs [SectorSize]byte
	if _, err := io.ReadFull(r, locs[:]); err != nil {
		return nil, errs.New(errs.Truncated, op, err)
	}

	var ts [SectorSize]byte
	if _, err := io.ReadFull(r, ts[:]); err != nil {
		return nil, errs.New(errs.Truncated, op, err)
	}

	reg := &Region{}
	for i := 0; i < NumChunks; i++ {
		reg.Timestamps[i] = binary.BigEndian.Uint32(ts[i*4 : i*4+4])
	}

	for i := 0; i < NumChunks; i++ {
		loc := ParseLocation(binary.BigEndian.Uint32(locs[i*4 : i*4+4]))
		if loc.Offset == 0 {
			continue
		}

		if _, err := r.Seek(int64(loc.Offset)*SectorSize, io.SeekStart); err != nil {
			return nil, errs.New(errs.IoError, op, err)
		}

		var hdr [5]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return nil, errs.New(errs.Truncated, op, err)
		}
		length := binary.BigEndian.Uint32(hdr[0:4])
		if length == 0 {
			return nil, errs.New(errs.Invalid, op, nil)
		}
		scheme := Scheme(hdr[4])
		if err := scheme.validate(); err != nil {
			return nil, err
		}

		payload := make([]byte, length-1)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, errs.New(errs.Truncated, op, err)
		}

		codec := codecFor(scheme)
		zr, err := codec.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, errs.New(errs.IoError, op, err)
		}
		raw, err := io.ReadAll(zr)
		zr.Close()
		if err != nil {
			return nil, errs.New(errs.IoError, op, err)
		}

		tag, err := nbt.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		reg.Chunks[i] = Chunk{Present: true, Tag: tag}
	}

	return reg, nil
}

// WriteOptions configures Region.Write.
type WriteOptions struct {
	// Scheme selects the compression applied to every written chunk.
	// Defaults to SchemeZlib.
	Scheme Scheme
	// Timestamp, if non-nil, supplies the timestamp recorded for chunk i.
	// Defaults to the current wall-clock time for every chunk.
	Timestamp func(i int) uint32
}

// Write serializes the region's 1024 slots to w: a sector-aligned file with
// the locations/timestamps header followed by each present chunk's
// compressed payload, per spec.md §4.D. The full sector stream is built in
// memory first (so only io.Writer, not a seekable sink, is required) and the
// locations table is only ever written once it is completely known, which is
// the write path's equivalent of "never observe a partial header".
func (reg *Region) Write(w io.Writer, opts WriteOptions) error {
	const op = "region.Write"

	scheme := opts.Scheme
	if scheme == 0 {
		scheme = SchemeZlib
	}
	if err := scheme.validate(); err != nil {
		return err
	}
	codec := codecFor(scheme)

	timestamp := opts.Timestamp
	if timestamp == nil {
		now := uint32(time.Now().Unix())
		timestamp = func(int) uint32 { return now }
	}

	var locs [SectorSize]byte
	var ts [SectorSize]byte
	var data bytes.Buffer

	sector := uint32(HeaderSectors)
	for i := 0; i < NumChunks; i++ {
		c := reg.Chunks[i]
		if !c.Present {
			continue
		}

		var compressed bytes.Buffer
		zw, err := codec.NewWriter(&compressed)
		if err != nil {
			return errs.New(errs.IoError, op, err)
		}
		if err := nbt.Encode(zw, c.Tag); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return errs.New(errs.IoError, op, err)
		}

		payloadLen := uint32(compressed.Len()) + 1 // +1 for the scheme byte
		totalLen := 4 + payloadLen                 // +4 for the length field itself
		sectorCount := (totalLen + SectorSize - 1) / SectorSize
		if sectorCount > 0xFF {
			return errs.New(errs.PayloadTooLarge, op, nil)
		}

		off := i * 4
		loc := Location{Offset: sector, Count: sectorCount}
		binary.BigEndian.PutUint32(locs[off:off+4], loc.Encode())
		binary.BigEndian.PutUint32(ts[off:off+4], timestamp(i))

		var hdr [5]byte
		binary.BigEndian.PutUint32(hdr[0:4], payloadLen)
		hdr[4] = byte(scheme)
		data.Write(hdr[:])
		data.Write(compressed.Bytes())

		padded := int(sectorCount) * SectorSize
		if pad := padded - int(totalLen); pad > 0 {
			data.Write(make([]byte, pad))
		}

		sector += sectorCount
	}

	if _, err := w.Write(locs[:]); err != nil {
		return errs.New(errs.IoError, op, err)
	}
	if _, err := w.Write(ts[:]); err != nil {
		return errs.New(errs.IoError, op, err)
	}
	if _, err := w.Write(data.Bytes()); err != nil {
		return errs.New(errs.IoError, op, err)
	}
	return nil
}
