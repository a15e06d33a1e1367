// mcstrings is a tool for extracting and patching strings in a Minecraft
// world's region files.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/bwkimmel/mcnbt/commands"
	"github.com/bwkimmel/mcnbt/log"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&commands.Extract{}, "")
	subcommands.Register(&commands.Patch{}, "")
	subcommands.Register(&commands.Compact{}, "")
	subcommands.Register(&commands.Pretty{}, "")
	subcommands.Register(&commands.Fetch{}, "")

	debug := flag.Bool("debug", false, "Enable debug logging.")
	flag.Parse()
	if *debug {
		log.SetMinLevel(log.DebugLevel)
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}
