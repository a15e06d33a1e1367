package commands

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/bwkimmel/mcnbt/nbt"
	"github.com/bwkimmel/mcnbt/region"
)

var (
	// outputFilters defines the predicates used for filtering NBT data from the
	// emitted results.
	outputFilters = map[string]func(k, v string) bool{
		"all":       func(_, _ string) bool { return true },
		"user_text": containsUserText,
	}

	pagesRE = regexp.MustCompile(`.*/pages\[\d+\]$`)
	signRE  = regexp.MustCompile(`.*/text\d+$`)
)

// Extract implements the extract command.
type Extract struct {
	world  string
	filter string
	invert bool
	header bool
	output string
	csv    *csv.Writer
	keep   func(k, v string) bool
}

// validOutputFilters returns a comma-separated list of valid output filter
// names for usage documentation.
func validOutputFilters() string {
	var names []string
	for k := range outputFilters {
		names = append(names, k)
	}
	return strings.Join(names, ", ")
}

// clean canonicalizes a string for comparisons by trimming whitespace and
// converting it to lowercase.
func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsUserText determines if an NBT entry likely contains user-generated
// text. This includes sign text, book contents & titles, renamed items, etc.,
// but excludes entries with empty values (empty strings, null JSON objects,
// signs with empty text).
func containsUserText(k, v string) bool {
	v = clean(v)
	if v == "" {
		return false
	}
	if v == "null" {
		return false
	}
	if v == `{"text":""}` {
		return false
	}

	k = clean(k)
	if strings.HasSuffix(k, "/display/name") {
		return true
	}
	if strings.HasSuffix(k, "/customname") {
		return true
	}
	if strings.HasSuffix(k, "/title") {
		return true
	}
	if pagesRE.MatchString(k) {
		return true
	}
	if signRE.MatchString(k) {
		return true
	}
	return false
}

// join combines two segments of an NBT path.
func join(a, b string) string {
	if len(b) == 0 {
		return a
	}
	if b[0] == '[' {
		return a + b
	}
	return a + "/" + b
}

// findStrings enumerates the strings within a decoded NBT tag, calling cb
// with the path and value of each KindString tag found. Containers are
// walked in their stored order: a Compound's children in declaration order,
// a List's elements by index.
func findStrings(t nbt.Tag, cb func(path, value string)) {
	switch t.Kind {
	case nbt.KindString:
		v, _ := t.AsString()
		cb("", v)
	case nbt.KindCompound:
		c, _ := t.AsCompound()
		for _, child := range c.Children {
			findStrings(child, func(path, value string) {
				cb(join(child.Name, path), value)
			})
		}
	case nbt.KindList:
		l, _ := t.AsList()
		for i, elem := range l.Elems {
			findStrings(elem, func(path, value string) {
				cb(join(fmt.Sprintf("[%d]", i), path), value)
			})
		}
	}
}

// readWorld processes the Minecraft world contained in the specified path.
// The path should point to the directory containing level.dat.
func (e *Extract) readWorld(path string) error {
	if err := e.readDimension(0, filepath.Join(path, "region")); err != nil {
		return err
	}
	if err := e.readDimension(-1, filepath.Join(path, "DIM-1", "region")); err != nil {
		return err
	}
	if err := e.readDimension(1, filepath.Join(path, "DIM1", "region")); err != nil {
		return err
	}
	return nil
}

// readDimension processes every region file in a dimension's region
// directory. Dim indicates which dimension is being processed: 0 for
// overworld, -1 for nether, 1 for the end.
func (e *Extract) readDimension(dim int, path string) error {
	dir, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot read contents of directory %q: %v", path, err)
	}

	for _, entry := range dir {
		if !strings.HasSuffix(entry.Name(), ".mca") {
			continue
		}
		var x, z int
		path := filepath.Join(path, entry.Name())
		if _, err := fmt.Sscanf(entry.Name(), "r.%d.%d.mca", &x, &z); err != nil {
			return fmt.Errorf("invalid region file name %q", path)
		}
		if err := e.readRegion(dim, x, z, path); err != nil {
			return fmt.Errorf("region file %q: %v", path, err)
		}
	}
	return nil
}

// readRegion processes a single region file, emitting one CSV row per
// matched string found in each present, decodable chunk.
func (e *Extract) readRegion(dim, x, z int, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open region file: %v", err)
	}
	defer f.Close()

	reg, err := region.Read(f)
	if err != nil {
		return fmt.Errorf("cannot read region data: %v", err)
	}

	for i, c := range reg.Chunks {
		if !c.Present {
			continue
		}
		dx, dz := i%32, i/32
		findStrings(c.Tag, func(path, value string) {
			if !e.keep(path, value) {
				return
			}
			e.csv.Write([]string{
				strconv.Itoa(dim),
				strconv.Itoa(x*32 + dx),
				strconv.Itoa(z*32 + dz),
				path,
				value,
			})
		})
		e.csv.Flush()
		if err := e.csv.Error(); err != nil {
			return fmt.Errorf("cannot write output: %v", err)
		}
	}
	return nil
}

func (*Extract) Name() string {
	return "extract"
}

func (*Extract) Synopsis() string {
	return "Extract strings from a Minecraft world."
}

func (*Extract) Usage() string {
	return `extract [<flags>...] <world>
Extract strings from a Minecraft world.

Extract strings from the Minecraft world located in the directory <world>.
This should be the directory containing level.dat. The strings will be output
in CSV format with the following columns:

  dimension - The dimension in which the string is located (0=overworld,
              -1=nether, 1=the end).
  chunk_x   - The x-coordinate of the chunk containing the string.
  chunk_z   - The z-coordinate of the chunk containing the string.
  nbt_path  - The path within the NBT data tree where the string is located.
  value     - The string.

`
}

func (e *Extract) SetFlags(f *flag.FlagSet) {
	f.StringVar(&e.filter, "filter", "all", fmt.Sprintf("Only include entries matching a filter (one of: %s)", validOutputFilters()))
	f.BoolVar(&e.invert, "invert", false, "Output entries *not* matching the filter")
	f.BoolVar(&e.header, "header", true, "Include header row in the output")
	f.StringVar(&e.output, "output", "", "File to write results to (if empty, results are written to stdout)")
}

func (e *Extract) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "<world> is required.")
		return subcommands.ExitUsageError
	}
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Extra positional arguments found.")
		return subcommands.ExitUsageError
	}
	e.world = f.Arg(0)
	of, ok := outputFilters[e.filter]
	if !ok {
		fmt.Fprintf(os.Stderr, "Invalid filter (%q), must be one of %s.\n", e.filter, validOutputFilters())
		return subcommands.ExitUsageError
	}
	if e.invert {
		orig := of
		of = func(k, v string) bool {
			return !orig(k, v)
		}
	}
	w := os.Stdout
	if e.output != "" {
		out, err := os.Create(e.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open file %q for writing: %v\n", e.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}
	e.csv = csv.NewWriter(w)
	e.keep = of
	if e.header {
		e.csv.Write([]string{"dimension", "chunk_x", "chunk_z", "nbt_path", "value"})
	}
	if err := e.readWorld(e.world); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot read world: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
