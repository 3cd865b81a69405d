package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agiangrant/trellis/internal/termdraw"
	"github.com/agiangrant/trellis/retained"
)

// Layout implements the 'trellis layout' command
func Layout(args []string) error {
	return layout(os.Stdout, args)
}

func layout(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("layout", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "Path to trellis.toml")
	width := fs.Float64("w", 0, "Window width in pixels (default: terminal width)")
	height := fs.Float64("h", 0, "Window height in pixels (default: terminal height)")
	paint := fs.Bool("paint", false, "Print the painted window after the tree")
	fs.Parse(args)

	if *width <= 0 || *height <= 0 {
		cols, rows := terminalSize()
		*width = float64(cols) * float64(termdraw.DefaultCell.X)
		*height = float64(rows) * float64(termdraw.DefaultCell.Y)
	}
	canvas := canvasFor(float32(*width), float32(*height))

	app, w, err := openWindow(*configPath, fs.Arg(0), canvas)
	if err != nil {
		return err
	}
	app.Tick()

	printTree(out, w.Root(), 0)
	if popup := w.Popup().Container(); popup != nil {
		fmt.Fprintln(out, "popup:")
		printTree(out, popup, 1)
	}
	if *paint {
		fmt.Fprintln(out, canvas.Render())
	}
	return nil
}

func printTree(out io.Writer, c retained.Control, depth int) {
	fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), describe(c))
	comp, ok := c.(retained.Composite)
	if !ok {
		return
	}
	for _, child := range comp.ContainerBase().Controls() {
		printTree(out, child, depth+1)
	}
}
