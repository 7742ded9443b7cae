// Command portfolioctl manages holdings on a running portfolio server over gRPC.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&createCmd{}, "holdings")
	commander.Register(&listCmd{}, "holdings")
	commander.Register(&getCmd{}, "holdings")
	commander.Register(&updateCmd{}, "holdings")
	commander.Register(&deleteCmd{}, "holdings")
	commander.Register(&summaryCmd{}, "portfolio")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
