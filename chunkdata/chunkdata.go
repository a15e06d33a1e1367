// Package chunkdata decodes a region's chunk NBT trees into paletted block
// and biome sections, bridging the nbt, region and palette packages (spec.md
// §4.F). It is the only package in this module allowed to know about the
// Minecraft chunk NBT schema (sections, block_states, biomes).
package chunkdata

import (
	"github.com/bwkimmel/mcnbt/errs"
	"github.com/bwkimmel/mcnbt/nbt"
	"github.com/bwkimmel/mcnbt/palette"
	"github.com/bwkimmel/mcnbt/region"
	"golang.org/x/sync/errgroup"
)

// fullStatuses enumerates the chunk generation statuses treated as complete.
// Anything else, including an absent chunk, decodes to an empty slot rather
// than an error (spec.md §4.F edge case).
var fullStatuses = map[string]bool{
	"minecraft:full": true,
	"full":           true,
}

// Section is one vertical 16-block slice of a chunk, with its block and
// biome indices resolved against the region-wide caches.
type Section struct {
	Y      int8
	Blocks [palette.BlockSectionSize]int
	Biomes [palette.BiomeSectionSize]int
}

// Chunk is a decoded chunk: its sections keyed by Y, so a sparse or
// non-contiguous section list (e.g. after world trimming) never collides
// under a reused loop index (spec.md §9 known issue, resolved here by
// keying on the actual Y tag rather than position in the section list).
type Chunk struct {
	Sections map[int8]Section
}

// World is the decode result for an entire region: one Chunk per present,
// fully-generated slot, indexed by its region-local slot number (0..1023).
type World struct {
	Chunks map[int]Chunk
}

// Caches holds the two region-wide deduplicating palettes that every
// section's indices are resolved against. Caller-owned so a caller decoding
// multiple regions of the same world can choose to share or reset them.
type Caches struct {
	Blocks *palette.BlockCache
	Biomes *palette.BiomeCache
}

// NewCaches returns a pair of empty caches.
func NewCaches() *Caches {
	return &Caches{Blocks: palette.NewBlockCache(), Biomes: palette.NewBiomeCache()}
}

// Options configures DecodeRegion.
type Options struct {
	// Statuses, if non-nil, overrides fullStatuses as the set of chunk
	// Status values treated as fully generated.
	Statuses map[string]bool
}

// sectionExtraction is the parallel, cache-free output of one section's
// bit-unpacking pass: raw palette-relative indices plus the palette entries
// they index into, ready for the sequential mapping pass.
type sectionExtraction struct {
	y            int8
	blockRaw     [palette.BlockSectionSize]int
	blockEntries []palette.BlockProperties
	biomeRaw     [palette.BiomeSectionSize]int
	biomeEntries []string
}

type chunkExtraction struct {
	slot     int
	sections []sectionExtraction
}

// DecodeRegion decodes every fully-generated chunk in reg into a World.
// Per-chunk bit-unpacking runs concurrently across slots via errgroup;
// cache-index assignment is a single deterministic pass afterward, in slot
// then section order, so two runs over the same region always produce the
// same cache contents (spec.md §5).
func DecodeRegion(reg *region.Region, caches *Caches, opts Options) (*World, error) {
	statuses := opts.Statuses
	if statuses == nil {
		statuses = fullStatuses
	}

	extractions := make([]*chunkExtraction, region.NumChunks)

	g := new(errgroup.Group)
	for slot := 0; slot < region.NumChunks; slot++ {
		slot := slot
		c := reg.Chunks[slot]
		if !c.Present {
			continue
		}
		g.Go(func() error {
			ex, ok, err := extractChunk(c.Tag, statuses)
			if err != nil {
				return errs.New(errs.Invalid, "chunkdata.DecodeRegion", err)
			}
			if !ok {
				return nil
			}
			extractions[slot] = &chunkExtraction{slot: slot, sections: ex}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	world := &World{Chunks: make(map[int]Chunk)}
	for slot := 0; slot < region.NumChunks; slot++ {
		ex := extractions[slot]
		if ex == nil {
			continue
		}
		chunk := Chunk{Sections: make(map[int8]Section, len(ex.sections))}
		for _, se := range ex.sections {
			chunk.Sections[se.y] = Section{
				Y:      se.y,
				Blocks: palette.MapBlockIndices(se.blockRaw, se.blockEntries, caches.Blocks),
				Biomes: palette.MapBiomeIndices(se.biomeRaw, se.biomeEntries, caches.Biomes),
			}
		}
		world.Chunks[slot] = chunk
	}
	return world, nil
}

// extractChunk runs the pure, cache-free bit-unpacking pass over one chunk's
// sections. It returns ok=false for an absent or non-full chunk rather than
// an error, matching spec.md's "treat as empty" edge case.
func extractChunk(tag nbt.Tag, statuses map[string]bool) ([]sectionExtraction, bool, error) {
	status, err := tag.Lookup("Status")
	if err != nil {
		return nil, false, nil
	}
	statusStr, err := status.AsString()
	if err != nil || !statuses[statusStr] {
		return nil, false, nil
	}

	sectionsTag, err := tag.Lookup("sections")
	if err != nil {
		return nil, true, nil
	}
	list, err := sectionsTag.AsList()
	if err != nil {
		return nil, true, nil
	}

	out := make([]sectionExtraction, 0, len(list.Elems))
	for _, sec := range list.Elems {
		se, ok, err := extractSection(sec)
		if err != nil {
			return nil, false, err
		}
		if ok {
			out = append(out, se)
		}
	}
	return out, true, nil
}

func extractSection(sec nbt.Tag) (sectionExtraction, bool, error) {
	yTag, err := sec.Lookup("Y")
	if err != nil {
		return sectionExtraction{}, false, nil
	}
	y, err := yTag.AsByte()
	if err != nil {
		return sectionExtraction{}, false, err
	}
	se := sectionExtraction{y: y}

	if bs, err := sec.Lookup("block_states"); err == nil {
		entries, rawData, err := parseBlockStates(bs)
		if err != nil {
			return sectionExtraction{}, false, err
		}
		paletteLen := len(entries)
		if paletteLen == 0 {
			paletteLen = 1
		}
		raw, err := palette.ExtractBlockIndices(rawData, paletteLen)
		if err != nil {
			return sectionExtraction{}, false, err
		}
		se.blockRaw = raw
		se.blockEntries = entries
	} else {
		se.blockEntries = []palette.BlockProperties{{Name: "minecraft:air"}}
	}

	if biomes, err := sec.Lookup("biomes"); err == nil {
		entries, rawData, err := parseBiomes(biomes)
		if err != nil {
			return sectionExtraction{}, false, err
		}
		paletteLen := len(entries)
		if paletteLen == 0 {
			paletteLen = 1
		}
		raw, err := palette.ExtractBiomeIndices(rawData, paletteLen)
		if err != nil {
			return sectionExtraction{}, false, err
		}
		se.biomeRaw = raw
		se.biomeEntries = entries
	} else {
		se.biomeEntries = []string{"minecraft:plains"}
	}

	return se, true, nil
}

// parseBlockStates reads a block_states compound's palette (List[Compound])
// and, when present, its packed data (LongArray).
func parseBlockStates(bs nbt.Tag) ([]palette.BlockProperties, []uint64, error) {
	paletteTag, err := bs.Lookup("palette")
	if err != nil {
		return nil, nil, err
	}
	list, err := paletteTag.AsList()
	if err != nil {
		return nil, nil, err
	}

	entries := make([]palette.BlockProperties, 0, len(list.Elems))
	for _, elem := range list.Elems {
		c, err := elem.AsCompound()
		if err != nil {
			return nil, nil, err
		}
		nameTag, ok := c.Get("Name")
		if !ok {
			return nil, nil, errs.New(errs.SchemaViolation, "chunkdata.parseBlockStates", nil)
		}
		name, err := nameTag.AsString()
		if err != nil {
			return nil, nil, err
		}
		bp := palette.BlockProperties{Name: name}
		if propsTag, ok := c.Get("Properties"); ok {
			props, err := propsTag.AsCompound()
			if err != nil {
				return nil, nil, err
			}
			for _, child := range props.Children {
				v, err := child.AsString()
				if err != nil {
					return nil, nil, err
				}
				bp.Properties = append(bp.Properties, palette.KV{Key: child.Name, Value: v})
			}
		}
		entries = append(entries, bp)
	}

	var words []uint64
	if dataTag, err := bs.Lookup("data"); err == nil {
		longs, err := dataTag.AsLongArray()
		if err != nil {
			return nil, nil, err
		}
		words = int64sToUint64s(longs)
	}
	return entries, words, nil
}

// parseBiomes reads a biomes compound's palette (List[String]) and, when
// present, its packed data (LongArray).
func parseBiomes(biomes nbt.Tag) ([]string, []uint64, error) {
	paletteTag, err := biomes.Lookup("palette")
	if err != nil {
		return nil, nil, err
	}
	list, err := paletteTag.AsList()
	if err != nil {
		return nil, nil, err
	}

	entries := make([]string, 0, len(list.Elems))
	for _, elem := range list.Elems {
		name, err := elem.AsString()
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, name)
	}

	var words []uint64
	if dataTag, err := biomes.Lookup("data"); err == nil {
		longs, err := dataTag.AsLongArray()
		if err != nil {
			return nil, nil, err
		}
		words = int64sToUint64s(longs)
	}
	return entries, words, nil
}

func int64sToUint64s(in []int64) []uint64 {
	out := make([]uint64, len(in))
	for i, v := range in {
		out[i] = uint64(v)
	}
	return out
}
