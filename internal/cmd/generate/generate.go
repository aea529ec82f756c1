// Package generate provides code generation subcommands.
package generate

import (
	"fmt"
	"os"

	"github.com/kasane-go/kasane/internal/cmd/generate/types"
)

// Run executes the generate subcommand.
func Run(args []string) error {
	if len(args) < 1 {
		PrintHelp()
		return fmt.Errorf("missing subcommand")
	}

	subcmd := args[0]
	subargs := args[1:]

	switch subcmd {
	case "types":
		return types.Run(subargs)
	case "help", "-h", "--help":
		PrintHelp()
		return nil
	default:
		PrintHelp()
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}
}

// PrintHelp prints help for the generate command.
func PrintHelp() {
	fmt.Fprintln(os.Stderr, `kasane generate - Code generation commands

Usage:
  go tool kasane generate <subcommand> [arguments]

Subcommands:
  types       Generate Go struct types from a default configuration document

Use "go tool kasane generate <subcommand> -h" for more information.`)
}
