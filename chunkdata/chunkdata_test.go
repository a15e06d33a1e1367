package chunkdata

import (
	"testing"

	"github.com/bwkimmel/mcnbt/nbt"
	"github.com/bwkimmel/mcnbt/region"
)

func blockStatesUniform(name string) nbt.Tag {
	return nbt.NewCompound([]nbt.Tag{
		nbt.NewList(nbt.KindCompound, []nbt.Tag{
			nbt.NewCompound([]nbt.Tag{
				nbt.String(name).Named("Name"),
			}),
		}).Named("palette"),
	}).Named("block_states")
}

func biomesUniform(name string) nbt.Tag {
	return nbt.NewCompound([]nbt.Tag{
		nbt.NewList(nbt.KindString, []nbt.Tag{
			nbt.String(name),
		}).Named("palette"),
	}).Named("biomes")
}

func sectionTag(y int8) nbt.Tag {
	return nbt.NewCompound([]nbt.Tag{
		nbt.Byte(y).Named("Y"),
		blockStatesUniform("minecraft:stone"),
		biomesUniform("minecraft:plains"),
	})
}

func chunkTag(status string, ys ...int8) nbt.Tag {
	sections := make([]nbt.Tag, len(ys))
	for i, y := range ys {
		sections[i] = sectionTag(y)
	}
	return nbt.NewCompound([]nbt.Tag{
		nbt.String(status).Named("Status"),
		nbt.NewList(nbt.KindCompound, sections).Named("sections"),
	})
}

func TestDecodeRegionSkipsNonFullChunks(t *testing.T) {
	var reg region.Region
	reg.Chunks[0] = region.Chunk{Present: true, Tag: chunkTag("minecraft:full", 0)}
	reg.Chunks[1] = region.Chunk{Present: true, Tag: chunkTag("minecraft:carved", 0)}
	// slot 2 left absent

	world, err := DecodeRegion(&reg, NewCaches(), Options{})
	if err != nil {
		t.Fatalf("DecodeRegion: %v", err)
	}
	if _, ok := world.Chunks[0]; !ok {
		t.Fatalf("slot 0 should be decoded")
	}
	if _, ok := world.Chunks[1]; ok {
		t.Fatalf("slot 1 (status=carved) should be skipped")
	}
	if _, ok := world.Chunks[2]; ok {
		t.Fatalf("slot 2 (absent) should be skipped")
	}
}

func TestDecodeRegionKeysSectionsByY(t *testing.T) {
	var reg region.Region
	// Sparse, non-contiguous Y values, out of order in the source list.
	reg.Chunks[0] = region.Chunk{Present: true, Tag: chunkTag("minecraft:full", 3, -1, 10)}

	world, err := DecodeRegion(&reg, NewCaches(), Options{})
	if err != nil {
		t.Fatalf("DecodeRegion: %v", err)
	}
	chunk := world.Chunks[0]
	if len(chunk.Sections) != 3 {
		t.Fatalf("len(Sections) = %d, want 3", len(chunk.Sections))
	}
	for _, y := range []int8{3, -1, 10} {
		sec, ok := chunk.Sections[y]
		if !ok {
			t.Fatalf("missing section Y=%d", y)
		}
		if sec.Y != y {
			t.Fatalf("section keyed at %d has Y=%d", y, sec.Y)
		}
	}
}

func TestDecodeRegionUniformPaletteMapsToSingleCacheEntry(t *testing.T) {
	var reg region.Region
	reg.Chunks[0] = region.Chunk{Present: true, Tag: chunkTag("minecraft:full", 0)}

	caches := NewCaches()
	world, err := DecodeRegion(&reg, caches, Options{})
	if err != nil {
		t.Fatalf("DecodeRegion: %v", err)
	}
	if caches.Blocks.Size() != 1 {
		t.Fatalf("Blocks.Size() = %d, want 1", caches.Blocks.Size())
	}
	if caches.Blocks.Entry(0).Name != "minecraft:stone" {
		t.Fatalf("Blocks.Entry(0).Name = %q, want minecraft:stone", caches.Blocks.Entry(0).Name)
	}
	sec := world.Chunks[0].Sections[0]
	for i, v := range sec.Blocks {
		if v != 0 {
			t.Fatalf("Blocks[%d] = %d, want 0", i, v)
		}
	}
}

func TestDecodeRegionDeterministicAcrossRuns(t *testing.T) {
	var reg region.Region
	for slot := 0; slot < 50; slot++ {
		reg.Chunks[slot] = region.Chunk{Present: true, Tag: chunkTag("minecraft:full", 0, 1)}
	}

	c1 := NewCaches()
	w1, err := DecodeRegion(&reg, c1, Options{})
	if err != nil {
		t.Fatalf("DecodeRegion (1): %v", err)
	}
	c2 := NewCaches()
	w2, err := DecodeRegion(&reg, c2, Options{})
	if err != nil {
		t.Fatalf("DecodeRegion (2): %v", err)
	}

	if c1.Blocks.Size() != c2.Blocks.Size() {
		t.Fatalf("cache sizes differ: %d vs %d", c1.Blocks.Size(), c2.Blocks.Size())
	}
	for slot, chunk1 := range w1.Chunks {
		chunk2, ok := w2.Chunks[slot]
		if !ok {
			t.Fatalf("slot %d missing from second run", slot)
		}
		for y, sec1 := range chunk1.Sections {
			sec2, ok := chunk2.Sections[y]
			if !ok {
				t.Fatalf("slot %d section %d missing from second run", slot, y)
			}
			if sec1.Blocks != sec2.Blocks {
				t.Fatalf("slot %d section %d blocks differ between runs", slot, y)
			}
		}
	}
}
