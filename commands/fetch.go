package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	getter "github.com/hashicorp/go-getter"
)

// Fetch implements the fetch command.
type Fetch struct {
	dest string
}

func (*Fetch) Name() string {
	return "fetch"
}

func (*Fetch) Synopsis() string {
	return "Download a world directory before operating on it."
}

func (*Fetch) Usage() string {
	return `fetch [<flags>...] <source>
Download a world directory before operating on it.

<source> is any address understood by go-getter (local path, git URL,
HTTP(S) archive URL, S3/GCS bucket, etc.). The world is placed at -dest
so that extract, patch, and compact can be run against it afterward.

`
}

func (f *Fetch) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.dest, "dest", "", "Directory to download the world into (required).")
}

func (f *Fetch) Execute(_ context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one <source> is required.")
		return subcommands.ExitUsageError
	}
	if f.dest == "" {
		fmt.Fprintln(os.Stderr, "-dest is required.")
		return subcommands.ExitUsageError
	}
	src := fs.Arg(0)
	if err := getter.Get(f.dest, src); err != nil {
		fmt.Fprintf(os.Stderr, "cannot fetch %q: %v\n", src, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
