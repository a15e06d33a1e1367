package palette

import (
	"math/bits"

	"github.com/bwkimmel/mcnbt/errs"
)

// BlockSectionSize and BiomeSectionSize are the fixed output lengths of a
// section's block and biome paletted containers (spec.md §4.E).
const (
	BlockSectionSize = 4096
	BiomeSectionSize = 64
)

// ceilLog2 returns the smallest n such that 1<<n >= p, for p >= 1. Computed
// via an explicit bit-length shift rather than pow(2, ...) per spec.md §9's
// "get_mask built via pow is fragile" note.
func ceilLog2(p int) int {
	if p <= 1 {
		return 0
	}
	return bits.Len(uint(p - 1))
}

// blockBitWidth implements spec.md §4.E: B = max(4, ceil(log2(P))).
func blockBitWidth(paletteLen int) int {
	b := ceilLog2(paletteLen)
	if b < 4 {
		return 4
	}
	return b
}

// biomeBitWidth implements spec.md §4.E: B = ceil(log2(P)), no floor.
func biomeBitWidth(paletteLen int) int {
	return ceilLog2(paletteLen)
}

// ExtractBlockIndices bit-unpacks a block_states paletted container's data
// words into BlockSectionSize raw palette-relative indices. When
// paletteLen==1 the container is uniform and data may be empty.
//
// Indices are packed least-significant-bit first, non-straddling: each u64
// word holds floor(64/B) indices, any leftover bits are discarded before
// moving to the next word (spec.md §4.E "Blocks packing").
func ExtractBlockIndices(data []uint64, paletteLen int) ([BlockSectionSize]int, error) {
	var out [BlockSectionSize]int
	if paletteLen == 1 {
		return out, nil
	}
	b := blockBitWidth(paletteLen)
	raw, err := extractNonStraddling(data, BlockSectionSize, b)
	if err != nil {
		return out, err
	}
	if err := validateRange(raw, paletteLen); err != nil {
		return out, err
	}
	copy(out[:], raw)
	return out, nil
}

// ExtractBiomeIndices bit-unpacks a biomes paletted container's data words
// into BiomeSectionSize raw palette-relative indices. When paletteLen==1 the
// container is uniform and data may be empty.
//
// For paletteLen < 3 (B<=1) biomes use the same non-straddling scheme as
// blocks; for paletteLen >= 3 indices may straddle u64 word boundaries
// (spec.md §4.E "Biomes packing").
func ExtractBiomeIndices(data []uint64, paletteLen int) ([BiomeSectionSize]int, error) {
	var out [BiomeSectionSize]int
	if paletteLen == 1 {
		return out, nil
	}
	b := biomeBitWidth(paletteLen)

	var raw []int
	var err error
	if paletteLen < 3 {
		raw, err = extractNonStraddling(data, BiomeSectionSize, b)
	} else {
		raw, err = extractStraddling(data, BiomeSectionSize, b)
	}
	if err != nil {
		return out, err
	}
	if err := validateRange(raw, paletteLen); err != nil {
		return out, err
	}
	copy(out[:], raw)
	return out, nil
}

// MapBlockIndices maps raw palette-relative indices to cache indices, in
// order, inserting each referenced entry into cache at most once. Splitting
// extraction (pure, parallelizable) from mapping (shared-cache, sequential)
// is what lets chunkdata.DecodeRegion parallelize bit-unpacking while
// keeping cache-index assignment deterministic (spec.md §5).
func MapBlockIndices(raw [BlockSectionSize]int, entries []BlockProperties, cache *BlockCache) [BlockSectionSize]int {
	var out [BlockSectionSize]int
	var resolved map[int]int
	if len(entries) > 1 {
		resolved = make(map[int]int, len(entries))
	}
	for i, k := range raw {
		if resolved == nil {
			out[i] = cache.InsertOrLookup(entries[0])
			continue
		}
		if v, ok := resolved[k]; ok {
			out[i] = v
			continue
		}
		v := cache.InsertOrLookup(entries[k])
		resolved[k] = v
		out[i] = v
	}
	return out
}

// MapBiomeIndices is the biome analogue of MapBlockIndices.
func MapBiomeIndices(raw [BiomeSectionSize]int, entries []string, cache *BiomeCache) [BiomeSectionSize]int {
	var out [BiomeSectionSize]int
	var resolved map[int]int
	if len(entries) > 1 {
		resolved = make(map[int]int, len(entries))
	}
	for i, k := range raw {
		if resolved == nil {
			out[i] = cache.InsertOrLookup(entries[0])
			continue
		}
		if v, ok := resolved[k]; ok {
			out[i] = v
			continue
		}
		v := cache.InsertOrLookup(entries[k])
		resolved[k] = v
		out[i] = v
	}
	return out
}

func validateRange(indices []int, paletteLen int) error {
	for _, k := range indices {
		if k >= paletteLen {
			return errs.New(errs.PaletteOutOfRange, "palette.Extract", nil)
		}
	}
	return nil
}

// extractNonStraddling reads n indices of width b bits from data, each
// word contributing floor(64/b) indices; a word's leftover low bits (fewer
// than b) are discarded rather than combined with the next word.
func extractNonStraddling(data []uint64, n, b int) ([]int, error) {
	out := make([]int, 0, n)
	mask := uint64(1)<<uint(b) - 1
	perWord := 64 / b

	for _, word := range data {
		w := word
		for i := 0; i < perWord; i++ {
			if len(out) == n {
				return out, nil
			}
			out = append(out, int(w&mask))
			w >>= uint(b)
		}
		if len(out) == n {
			return out, nil
		}
	}
	return nil, errs.New(errs.Truncated, "palette.extractNonStraddling", nil)
}

// extractStraddling reads n indices of width b bits from a continuous
// LSB-first bitstream spanning data's words, allowing an index to span two
// adjacent words.
func extractStraddling(data []uint64, n, b int) ([]int, error) {
	out := make([]int, 0, n)
	mask := uint64(1)<<uint(b) - 1

	wordIdx := 0
	bitPos := 0 // bits already consumed from data[wordIdx]

	for len(out) < n {
		if wordIdx >= len(data) {
			return nil, errs.New(errs.Truncated, "palette.extractStraddling", nil)
		}
		word := data[wordIdx]
		remaining := 64 - bitPos

		if remaining >= b {
			idx := (word >> uint(bitPos)) & mask
			out = append(out, int(idx))
			bitPos += b
			if bitPos == 64 {
				bitPos = 0
				wordIdx++
			}
			continue
		}

		// Straddle: take the low `remaining` bits from this word, then the
		// next `b-remaining` bits from the low end of the following word.
		low := (word >> uint(bitPos)) & (uint64(1)<<uint(remaining) - 1)
		needed := b - remaining
		wordIdx++
		if wordIdx >= len(data) {
			return nil, errs.New(errs.Truncated, "palette.extractStraddling", nil)
		}
		next := data[wordIdx]
		high := next & (uint64(1)<<uint(needed) - 1)
		idx := (high << uint(remaining)) | low
		out = append(out, int(idx))
		bitPos = needed
	}
	return out, nil
}
