package region

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/bwkimmel/mcnbt/errs"
	"github.com/bwkimmel/mcnbt/nbt"
)

func sampleChunk(name string) nbt.Tag {
	return nbt.NewCompound([]nbt.Tag{
		nbt.String(name).Named("Status"),
	})
}

func TestWriteReadRoundTrip(t *testing.T) {
	var reg Region
	reg.Chunks[0] = Chunk{Present: true, Tag: sampleChunk("minecraft:full")}
	reg.Chunks[17] = Chunk{Present: true, Tag: sampleChunk("minecraft:full")}
	reg.Chunks[1023] = Chunk{Present: true, Tag: sampleChunk("minecraft:full")}

	var buf bytes.Buffer
	if err := reg.Write(&buf, WriteOptions{Scheme: SchemeZlib}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if buf.Len()%SectorSize != 0 {
		t.Fatalf("file length %d not a multiple of %d", buf.Len(), SectorSize)
	}

	got, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	for _, i := range []int{0, 17, 1023} {
		if !got.Chunks[i].Present {
			t.Fatalf("chunk %d not present after round trip", i)
		}
		c, _ := got.Chunks[i].Tag.AsCompound()
		status, ok := c.Get("Status")
		if !ok {
			t.Fatalf("chunk %d missing Status", i)
		}
		if v, _ := status.AsString(); v != "minecraft:full" {
			t.Fatalf("chunk %d Status = %q", i, v)
		}
	}

	absentCount := 0
	for i, c := range got.Chunks {
		if i == 0 || i == 17 || i == 1023 {
			continue
		}
		if c.Present {
			t.Fatalf("chunk %d unexpectedly present", i)
		}
		absentCount++
	}
	if absentCount != NumChunks-3 {
		t.Fatalf("absentCount = %d, want %d", absentCount, NumChunks-3)
	}
}

func TestAbsentChunkShape(t *testing.T) {
	var reg Region
	reg.Chunks[5] = Chunk{Present: true, Tag: sampleChunk("minecraft:full")}

	var buf bytes.Buffer
	if err := reg.Write(&buf, WriteOptions{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Chunks[42].Present {
		t.Fatalf("chunk 42 should be absent")
	}
	if got.Chunks[42].Tag.Kind != 0 {
		t.Fatalf("absent chunk has non-zero tag kind %v", got.Chunks[42].Tag.Kind)
	}
}

func TestRefusedSchemeFailsRead(t *testing.T) {
	var locs [SectorSize]byte
	var ts [SectorSize]byte

	binary.BigEndian.PutUint32(locs[0:4], (uint32(2)<<8)|1)

	var hdr [5]byte
	binary.BigEndian.PutUint32(hdr[0:4], 1)
	hdr[4] = 4 // LZ4, refused

	var file bytes.Buffer
	file.Write(locs[:])
	file.Write(ts[:])
	file.Write(hdr[:])
	file.Write(make([]byte, SectorSize-len(hdr)))

	_, err := Read(bytes.NewReader(file.Bytes()))
	if !errs.Is(err, errs.Unsupported) {
		t.Fatalf("err = %v, want Unsupported", err)
	}
}

func TestInvalidSchemeFailsRead(t *testing.T) {
	var locs [SectorSize]byte
	var ts [SectorSize]byte
	binary.BigEndian.PutUint32(locs[0:4], (uint32(2)<<8)|1)

	var hdr [5]byte
	binary.BigEndian.PutUint32(hdr[0:4], 1)
	hdr[4] = 9 // unknown

	var file bytes.Buffer
	file.Write(locs[:])
	file.Write(ts[:])
	file.Write(hdr[:])
	file.Write(make([]byte, SectorSize-len(hdr)))

	_, err := Read(bytes.NewReader(file.Bytes()))
	if !errs.Is(err, errs.InvalidScheme) {
		t.Fatalf("err = %v, want InvalidScheme", err)
	}
}

func TestParseLocationRoundTrip(t *testing.T) {
	cases := []Location{
		{Offset: 0, Count: 0},
		{Offset: 2, Count: 1},
		{Offset: 0xFFFFFF, Count: 0xFF},
	}
	for _, want := range cases {
		entry := want.Encode()
		got := ParseLocation(entry)
		if got != want {
			t.Fatalf("ParseLocation(%#x) = %+v, want %+v", entry, got, want)
		}
	}
}

func TestPayloadTooLargeOnWrite(t *testing.T) {
	var reg Region
	// A byte array large enough to need >255 sectors once wrapped as "none".
	big := make([]byte, 300*SectorSize)
	reg.Chunks[0] = Chunk{Present: true, Tag: nbt.NewCompound([]nbt.Tag{
		nbt.ByteArray(big).Named("filler"),
	})}

	err := reg.Write(&bytes.Buffer{}, WriteOptions{Scheme: SchemeNone})
	if !errs.Is(err, errs.PayloadTooLarge) {
		t.Fatalf("err = %v, want PayloadTooLarge", err)
	}
}
