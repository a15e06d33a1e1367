package commands

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bwkimmel/mcnbt/nbt"
)

// Pretty implements the pretty command.
type Pretty struct{}

func (*Pretty) Name() string {
	return "pretty"
}

func (*Pretty) Synopsis() string {
	return "Pretty-print a single NBT file."
}

func (*Pretty) Usage() string {
	return `pretty <file>
Pretty-print a single NBT file.

Decodes <file> as an NBT tree and prints it in a human-readable indented
form. The file's compression, if any, is auto-detected: gzip, zlib, or
uncompressed.

`
}

func (*Pretty) SetFlags(*flag.FlagSet) {}

func (*Pretty) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one <file> is required.")
		return subcommands.ExitUsageError
	}
	raw, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read file: %v\n", err)
		return subcommands.ExitFailure
	}
	tag, err := decodeSniffed(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot decode NBT data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(nbt.Pretty(tag))
	return subcommands.ExitSuccess
}

// decodeSniffed decodes raw as an NBT tree, auto-detecting gzip or zlib
// framing from its leading magic bytes before falling back to uncompressed.
func decodeSniffed(raw []byte) (nbt.Tag, error) {
	switch {
	case len(raw) >= 2 && raw[0] == 0x1f && raw[1] == 0x8b:
		return nbt.DecodeGzip(bytes.NewReader(raw))
	case len(raw) >= 2 && raw[0] == 0x78:
		return nbt.DecodeZlib(bytes.NewReader(raw))
	default:
		return nbt.Decode(bytes.NewReader(raw))
	}
}
