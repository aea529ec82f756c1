// Package main provides the kasane CLI tool.
//
// Usage:
//
//	go tool kasane <command> [arguments]
//
// Commands:
//
//	generate    Code generation commands
//	help        Show help for a command
//	version     Show version information
package main

import (
	"fmt"
	"os"

	"github.com/kasane-go/kasane/internal/cmd/generate"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "generate":
		if err := generate.Run(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			printUsage()
			os.Exit(2)
		}
	case "help":
		if len(args) > 0 {
			printCommandHelp(args[0])
		} else {
			printUsage()
		}
	case "version":
		fmt.Printf("kasane version %s\n", version)
	case "-h", "--help":
		printUsage()
	case "-v", "--version":
		fmt.Printf("kasane version %s\n", version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Println(`kasane - Merged-defaults configuration tool

Usage:
  go tool kasane <command> [arguments]

Commands:
  generate    Code generation commands
  help        Show help for a command
  version     Show version information

Use "go tool kasane help <command>" for more information about a command.`)
}

func printCommandHelp(cmd string) {
	switch cmd {
	case "generate":
		generate.PrintHelp()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		os.Exit(2)
	}
}
