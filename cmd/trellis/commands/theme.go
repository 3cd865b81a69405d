package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/trellis"
	"github.com/agiangrant/trellis/theme"
)

// Theme implements the 'trellis theme' command
func Theme(args []string) error {
	return printTheme(os.Stdout, args)
}

func printTheme(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("theme", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "Path to trellis.toml")
	output := fs.String("o", "", "Write the resolved theme to this JSON or TOML file")
	fs.Parse(args)

	path := fs.Arg(0)
	if path == "" {
		config, err := trellis.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		path = config.Theme
	}

	t := theme.New()
	if path != "" {
		if err := t.LoadFile(path); err != nil {
			return err
		}
	}

	props := theme.All()
	sort.Slice(props, func(i, j int) bool { return props[i].String() < props[j].String() })
	width := 0
	for _, p := range props {
		width = max(width, len(p.String()))
	}
	for _, p := range props {
		v := t.Get(p)
		swatch := "  "
		if p.Kind() == theme.KindColor {
			swatch = lipgloss.NewStyle().Background(lipgloss.Color(v.Color().Hex()[:7])).Render("  ")
		}
		fmt.Fprintf(out, "%-*s %s %-6s %s\n", width, p.String(), swatch, p.Kind(), v)
	}

	if *output != "" {
		if err := t.Save(*output); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", *output)
	}
	return nil
}
