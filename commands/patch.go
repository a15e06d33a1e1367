package commands

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/bwkimmel/mcnbt/log"
	"github.com/bwkimmel/mcnbt/nbt"
	"github.com/bwkimmel/mcnbt/region"
)

var dirRE = regexp.MustCompile(`^([^/\[]+)(?:\[(\d+)\])?$`)

// Patch implements the patch command.
type Patch struct {
	strings     string
	world       string
	csv         *csv.Reader
	chunk       *loadedChunk
	skipConfirm bool

	// shouldCompact indicates whether any chunks required resizing or relocating.
	// If so, notify the user that they should compact the world.
	shouldCompact bool
}

type loadedChunk struct {
	dim, x, z int
	tag       nbt.Tag
	updates   int
}

func (*Patch) Name() string {
	return "patch"
}

func (*Patch) Synopsis() string {
	return "Patch strings into a Minecraft world."
}

func (*Patch) Usage() string {
	return `patch -strings <csv_file> <world>
Patch strings into a Minecraft world.

WARNING: This command will modify your world in-place. You should make a backup
of your world before proceeding.

Patch strings from a CSV file into a Minecraft world located in the directory
<world>. This should be the directory containing level.dat. The CSV file should
have the same columns as generated by the "extract" command.

`
}

func (p *Patch) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.strings, "strings", "", "The CSV file to read strings from (required).")
	f.BoolVar(&p.skipConfirm, "skip_confirmation", false, "Do not ask for confirmation before proceeding.")
}

func (p *Patch) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		log.Error("<world> is required.")
		return subcommands.ExitUsageError
	}
	if f.NArg() > 1 {
		log.Error("Extra positional arguments found.")
		return subcommands.ExitUsageError
	}
	p.world = f.Arg(0)
	if p.strings == "" {
		log.Error("--strings is required.")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(p.strings)
	if err != nil {
		log.Errorf("Cannot open strings file: %v", err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	if !p.skipConfirm {
		confirm()
	}
	p.csv = csv.NewReader(file)
	p.csv.FieldsPerRecord = -1 // Don't check the number of fields.
	if err := p.run(); err != nil {
		log.Errorf("Patch: %v", err)
		return subcommands.ExitFailure
	}
	if p.shouldCompact {
		log.Info("Some chunks were resized or relocated. It is recommended to compact the world.")
	}
	return subcommands.ExitSuccess
}

// field returns the nth string in an array, or "" if index is beyond the bounds
// of the array.
func field(rec []string, index int) string {
	if len(rec) <= index {
		return ""
	}
	return rec[index]
}

// patchString replaces the string at the specified NBT path in the currently
// loaded chunk with a new value.
func (p *Patch) patchString(path, value string) error {
	// current always points at a Tag slot inside a slice owned by an
	// ancestor container (Compound.Children or List.Elems), so writing
	// through it mutates the tree in place without any write-back step.
	current := &p.chunk.tag
	parts := strings.Split(path, "/")
	for i, part := range parts {
		component := dirRE.FindStringSubmatch(part)
		if component == nil {
			return fmt.Errorf("cannot parse nbt_path")
		}
		c, err := current.AsCompound()
		if err != nil {
			return fmt.Errorf("%s is not a TAG_Compound", strings.Join(parts[:i], "/"))
		}
		idx := -1
		for j := range c.Children {
			if c.Children[j].Name == component[1] {
				idx = j
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("cannot find %s", strings.Join(append(parts[:i], component[1]), "/"))
		}
		current = &c.Children[idx]

		if len(component) < 3 || component[2] == "" { // No array index.
			continue
		}
		index, err := strconv.Atoi(component[2])
		if err != nil {
			return fmt.Errorf("invalid index in nbt_path: %v", err)
		}
		l, err := current.AsList()
		if err != nil {
			return fmt.Errorf("%s is not a TAG_List", strings.Join(append(parts[:i], component[1]), "/"))
		}
		if index < 0 || index >= len(l.Elems) {
			return fmt.Errorf("index %d out of bounds; %s has length %d", index, strings.Join(append(parts[:i], component[1]), "/"), len(l.Elems))
		}
		current = &l.Elems[index]
	}

	oldValue, err := current.AsString()
	if err != nil {
		return fmt.Errorf("%s is not a TAG_String", path)
	}
	if oldValue == value {
		return nil
	}
	p.chunk.updates++
	*current = nbt.String(value).Named(current.Name)
	return nil
}

// run patches the Minecraft world.
func (p *Patch) run() error {
	line := 0
	for {
		line++
		rec, err := p.csv.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if line == 1 && field(rec, 0) == "dimension" {
			continue // Skip header row if present.
		}
		ok := true
		warn := func(msg string, args ...interface{}) {
			args = append([]interface{}{line}, args...)
			log.Warnf("Line %d: "+msg, args...)
			ok = false
		}
		dim, err := strconv.Atoi(field(rec, 0))
		if err != nil {
			warn("invalid dimension: %v", err)
		}
		x, err := strconv.Atoi(field(rec, 1))
		if err != nil {
			warn("invalid chunk_x: %v", err)
		}
		z, err := strconv.Atoi(field(rec, 2))
		if err != nil {
			warn("invalid chunk_z: %v", err)
		}
		path := field(rec, 3)
		if path == "" {
			warn("missing nbt_path")
		}
		if !ok {
			continue
		}
		if err := p.loadChunk(dim, x, z); err != nil {
			return err
		}
		if err := p.patchString(path, field(rec, 4)); err != nil {
			return fmt.Errorf("line %d, dimension %d, chunk (%d, %d): %v", line, dim, x, z, err)
		}
	}
	return p.saveChunk()
}

// dimensionPath returns the directory containing the region files for the
// specified dimension.
func (p *Patch) dimensionPath(dim int) (string, error) {
	switch dim {
	case 0:
		return filepath.Join(p.world, "region"), nil
	case 1:
		return filepath.Join(p.world, "DIM1", "region"), nil
	case -1:
		return filepath.Join(p.world, "DIM-1", "region"), nil
	default:
		return "", fmt.Errorf("invalid dimension: %d", dim)
	}
}

// regionPath returns the path to the file containing the data for the specified
// region.
func (p *Patch) regionPath(dim, rx, rz int) (string, error) {
	dimPath, err := p.dimensionPath(dim)
	if err != nil {
		return "", err
	}
	return filepath.Join(dimPath, fmt.Sprintf("r.%d.%d.mca", rx, rz)), nil
}

// chunkPos returns the region x-z coordinates, and chunk offset x-z
// coordinates within the region.
func chunkPos(x, z int) (rx, rz, dx, dz int) {
	rx, rz = x/32, z/32
	dx, dz = x%32, z%32
	if dx < 0 {
		rx--
		dx += 32
	}
	if dz < 0 {
		rz--
		dz += 32
	}
	return rx, rz, dx, dz
}

// loadChunk loads the specified chunk. If the specified chunk is already
// loaded, no action is taken. If it is not, the currently-loaded chunk (if
// there is one) is saved to disk and the new chunk is loaded.
func (p *Patch) loadChunk(dim, x, z int) error {
	if p.chunk != nil && p.chunk.dim == dim && p.chunk.x == x && p.chunk.z == z {
		return nil
	}
	if err := p.saveChunk(); err != nil {
		return err
	}
	rx, rz, dx, dz := chunkPos(x, z)
	regPath, err := p.regionPath(dim, rx, rz)
	if err != nil {
		return err
	}
	log.Debugf("Loading dimension %d, chunk (%d, %d) from %q.", dim, x, z, regPath)
	f, err := os.Open(regPath)
	if err != nil {
		return fmt.Errorf("cannot open region file %q for reading: %v", regPath, err)
	}
	defer f.Close()
	reg, err := region.Read(f)
	if err != nil {
		return fmt.Errorf("cannot read region file %q: %v", regPath, err)
	}
	slot := dz*32 + dx
	c := reg.Chunks[slot]
	if !c.Present {
		return fmt.Errorf("chunk (%d, %d) is not present in %q", x, z, regPath)
	}
	p.chunk = &loadedChunk{dim: dim, x: x, z: z, tag: c.Tag}
	return nil
}

// saveChunk saves the currently-loaded chunk to disk if there is a chunk
// that is loaded and if it is dirty. Because the region package rewrites the
// whole file on every write, a dirty chunk forces the entire owning region
// file to be re-read and rewritten (spec.md's core Write only ever produces
// a complete file; in-place resizing is out of scope).
func (p *Patch) saveChunk() (err error) {
	if p.chunk == nil || p.chunk.updates == 0 {
		return nil
	}
	dim, x, z := p.chunk.dim, p.chunk.x, p.chunk.z
	rx, rz, dx, dz := chunkPos(x, z)
	regPath, err := p.regionPath(dim, rx, rz)
	if err != nil {
		return err
	}
	log.Debugf("Saving dimension %d, chunk (%d, %d) to %q with %d updates.", dim, x, z, regPath, p.chunk.updates)
	defer func() {
		if err != nil {
			err = fmt.Errorf("saving chunk (%d, %d) to %q: %v", x, z, regPath, err)
		}
	}()

	f, err := os.OpenFile(regPath, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("cannot open region file for reading: %v", err)
	}
	reg, err := region.Read(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("cannot read region file: %v", err)
	}

	slot := dz*32 + dx
	reg.Chunks[slot] = region.Chunk{Present: true, Tag: p.chunk.tag}

	out, err := os.Create(regPath)
	if err != nil {
		return fmt.Errorf("cannot open region file for writing: %v", err)
	}
	defer out.Close()
	if err := reg.Write(out, region.WriteOptions{Scheme: region.SchemeZlib}); err != nil {
		return fmt.Errorf("cannot write region file: %v", err)
	}

	p.shouldCompact = true
	return nil
}
