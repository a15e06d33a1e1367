package palette

import (
	"testing"

	"github.com/bwkimmel/mcnbt/errs"
)

func TestUniformBlockPalette(t *testing.T) {
	out, err := ExtractBlockIndices(nil, 1)
	if err != nil {
		t.Fatalf("ExtractBlockIndices: %v", err)
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %d, want 0", i, v)
		}
	}

	cache := NewBlockCache()
	entries := []BlockProperties{{Name: "minecraft:air"}}
	mapped := MapBlockIndices(out, entries, cache)
	if cache.Size() != 1 {
		t.Fatalf("cache.Size() = %d, want 1", cache.Size())
	}
	for _, v := range mapped {
		if v != 0 {
			t.Fatalf("mapped value = %d, want 0", v)
		}
	}
}

func TestPackedBlocksB5P20(t *testing.T) {
	// B=5 for P=20 (ceil(log2(20))=5, max(4,5)=5).
	// Word 0: low 5 bits = 19 (max valid index).
	word0 := uint64(19)
	data := []uint64{word0}
	// Pad with zero words so we have enough indices (perWord = 12 per word).
	for len(data) < (BlockSectionSize/12)+1 {
		data = append(data, 0)
	}

	out, err := ExtractBlockIndices(data, 20)
	if err != nil {
		t.Fatalf("ExtractBlockIndices: %v", err)
	}
	if out[0] != 19 {
		t.Fatalf("out[0] = %d, want 19", out[0])
	}
}

func TestPackedBlocksOutOfRange(t *testing.T) {
	// index 20 with palette length 20 (valid indices 0..19) must fail.
	data := []uint64{20}
	for len(data) < (BlockSectionSize/12)+1 {
		data = append(data, 0)
	}
	_, err := ExtractBlockIndices(data, 20)
	if !errs.Is(err, errs.PaletteOutOfRange) {
		t.Fatalf("err = %v, want PaletteOutOfRange", err)
	}
}

func TestBlockBitWidthFloorsAtFour(t *testing.T) {
	if got := blockBitWidth(2); got != 4 {
		t.Fatalf("blockBitWidth(2) = %d, want 4", got)
	}
	if got := blockBitWidth(20); got != 5 {
		t.Fatalf("blockBitWidth(20) = %d, want 5", got)
	}
}

func TestBiomeBitWidthHasNoFloor(t *testing.T) {
	if got := biomeBitWidth(2); got != 1 {
		t.Fatalf("biomeBitWidth(2) = %d, want 1", got)
	}
	if got := biomeBitWidth(5); got != 3 {
		t.Fatalf("biomeBitWidth(5) = %d, want 3", got)
	}
}

func TestStraddlingBiomes(t *testing.T) {
	// Palette of 5 entries -> B=3, P>=3 so straddling applies.
	// word0 = 0xAAAAAAAAAAAAAAAA is binary 101010...10, i.e. every index is
	// either 0b010=2 when aligned, but we only need the high 2 bits for the
	// 22nd extracted index's top bits and word1's low bit for its bottom bit,
	// matching spec.md's boundary scenario #5.
	word0 := uint64(0xAAAAAAAAAAAAAAAA)
	word1 := uint64(0x01)
	data := []uint64{word0, word1}
	// Need enough data for 64 indices at 3 bits = 192 bits = 3 words.
	data = append(data, 0, 0)

	out, err := ExtractBiomeIndices(data, 5)
	if err != nil {
		t.Fatalf("ExtractBiomeIndices: %v", err)
	}

	// 21 indices (63 bits) fit entirely in word0 (64 bits), consuming all 64
	// bits minus 1 leftover bit. The 22nd index (0-indexed: index 21) is
	// built from word0's top 1 bit plus word1's low 2 bits.
	top1 := (word0 >> 63) & 1
	low2 := word1 & 0x3
	want := int((low2 << 1) | top1)
	if out[21] != want {
		t.Fatalf("out[21] = %d, want %d", out[21], want)
	}
}

func TestBiomeNonStraddlingWhenBLessThanThree(t *testing.T) {
	// P=2 -> B=1, 64 indices per word exactly, no waste.
	data := []uint64{0x5555555555555555} // alternating 0,1,0,1,...
	out, err := ExtractBiomeIndices(data, 2)
	if err != nil {
		t.Fatalf("ExtractBiomeIndices: %v", err)
	}
	if out[0] != 1 || out[1] != 0 {
		t.Fatalf("out[:2] = %v, want [1 0]", out[:2])
	}
}

func TestExtractTruncated(t *testing.T) {
	_, err := ExtractBlockIndices(nil, 20)
	if !errs.Is(err, errs.Truncated) {
		t.Fatalf("err = %v, want Truncated", err)
	}
}

func TestOutputLengthsFixed(t *testing.T) {
	blocks, err := ExtractBlockIndices(make([]uint64, 1024), 2)
	if err != nil {
		t.Fatalf("ExtractBlockIndices: %v", err)
	}
	if len(blocks) != BlockSectionSize {
		t.Fatalf("len(blocks) = %d, want %d", len(blocks), BlockSectionSize)
	}

	biomes, err := ExtractBiomeIndices(make([]uint64, 16), 4)
	if err != nil {
		t.Fatalf("ExtractBiomeIndices: %v", err)
	}
	if len(biomes) != BiomeSectionSize {
		t.Fatalf("len(biomes) = %d, want %d", len(biomes), BiomeSectionSize)
	}
}
