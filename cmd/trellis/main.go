package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/trellis/cmd/trellis/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = commands.Init(args)
	case "layout":
		err = commands.Layout(args)
	case "view":
		err = commands.View(args)
	case "theme":
		err = commands.Theme(args)
	case "version", "-v", "--version":
		fmt.Printf("trellis version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`trellis - retained control tree toolkit

Usage: trellis <command> [options]

Commands:
  init            Create trellis.toml, main.json and theme.toml
  layout          Lay out a window document and print the control tree
  view            Open a window document in the terminal inspector
  theme           Print the resolved theme properties
  version         Print version information
  help            Show this help message

Examples:
  trellis init                         Start a new project in the current directory
  trellis layout main.json             Lay out at the terminal size
  trellis layout -w 800 -h 600 -paint main.json
  trellis view main.json               Click, scroll and type into the window
  trellis theme -o dark.toml dark.json Convert a theme file

Configuration:
  Commands read trellis.toml from the current directory (or -config).
  A document path on the command line overrides its window setting.`)
}
