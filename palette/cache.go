// Package palette decodes the paletted-container bit-packing used by Anvil
// chunk sections (block_states and biomes) and maintains the per-region
// deduplicating caches their decoded indices point into.
package palette

import "strings"

// KV is one block-state property key/value pair, order-preserving as they
// appear in the source NBT compound.
type KV struct {
	Key, Value string
}

// BlockProperties identifies a block state: its registry name plus its
// ordered state properties (e.g. facing=north, waterlogged=true).
type BlockProperties struct {
	Name       string
	Properties []KV
}

func (b BlockProperties) key() string {
	var sb strings.Builder
	sb.WriteString(b.Name)
	for _, kv := range b.Properties {
		sb.WriteByte(';')
		sb.WriteString(kv.Key)
		sb.WriteByte('=')
		sb.WriteString(kv.Value)
	}
	return sb.String()
}

// BlockCache is an append-only ordered set of BlockProperties with
// region lifetime. Indices are 0-based and never change once assigned,
// per spec.md §3 and the 0-based resolution of the known source issue in §9.
type BlockCache struct {
	entries []BlockProperties
	index   map[string]int
}

// NewBlockCache returns an empty BlockCache.
func NewBlockCache() *BlockCache {
	return &BlockCache{index: make(map[string]int)}
}

// InsertOrLookup returns the 0-based index of b, inserting it if not already
// present.
func (c *BlockCache) InsertOrLookup(b BlockProperties) int {
	k := b.key()
	if i, ok := c.index[k]; ok {
		return i
	}
	i := len(c.entries)
	c.entries = append(c.entries, b)
	c.index[k] = i
	return i
}

// Size returns the number of distinct entries inserted so far.
func (c *BlockCache) Size() int { return len(c.entries) }

// Entry returns the BlockProperties stored at index i.
func (c *BlockCache) Entry(i int) BlockProperties { return c.entries[i] }

// BiomeCache is the biome analogue of BlockCache: an append-only ordered set
// of biome name strings.
type BiomeCache struct {
	entries []string
	index   map[string]int
}

// NewBiomeCache returns an empty BiomeCache.
func NewBiomeCache() *BiomeCache {
	return &BiomeCache{index: make(map[string]int)}
}

// InsertOrLookup returns the 0-based index of name, inserting it if not
// already present.
func (c *BiomeCache) InsertOrLookup(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	i := len(c.entries)
	c.entries = append(c.entries, name)
	c.index[name] = i
	return i
}

// Size returns the number of distinct entries inserted so far.
func (c *BiomeCache) Size() int { return len(c.entries) }

// Entry returns the biome name stored at index i.
func (c *BiomeCache) Entry(i int) string { return c.entries[i] }
