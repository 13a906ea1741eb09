// Package main runs one guarded division from the command line and prints
// its transcript to stdout.
package main

import (
	"os"

	"github.com/pkordes/guarddiv/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
