package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/greeter/cmd/greeter/commands"
)

const (
	cmdName = "greeter"

	shortDesc = "The Greeter Command Line Interface (CLI)."
	longDesc  = `The Greeter Command Line Interface (CLI).

Greeter is a minimal demonstration module used to validate build and release
tooling. It resolves its own version from embedded build metadata, exposes a
single greeting function, and provides a check command which fails when a
build is missing release version metadata.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
