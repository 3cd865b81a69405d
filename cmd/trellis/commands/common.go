package commands

import (
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/agiangrant/trellis"
	"github.com/agiangrant/trellis/internal/termdraw"
	"github.com/agiangrant/trellis/retained"
)

const defaultConfigPath = "trellis.toml"

var (
	typeStyle   = lipgloss.NewStyle().Bold(true)
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#56b6c2"))
	boundsStyle = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Reverse(true)
)

// terminalSize returns the size of stdout in cells, or 80x24 when stdout
// is not a terminal.
func terminalSize() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return 80, 24
	}
	return cols, rows
}

// canvasFor returns a canvas covering width x height pixels.
func canvasFor(width, height float32) *termdraw.Canvas {
	cell := termdraw.DefaultCell
	cols := int(math.Ceil(float64(width / cell.X)))
	rows := int(math.Ceil(float64(height / cell.Y)))
	return termdraw.New(cols, rows, cell)
}

// openWindow loads the config and the window document into an application
// whose text is measured in canvas cells. Every repaint clears the canvas.
func openWindow(configPath, docPath string, canvas *termdraw.Canvas) (*trellis.Application, *retained.Window, error) {
	config, err := trellis.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	if docPath != "" {
		config.Window = docPath
	}
	if config.Window == "" {
		return nil, nil, fmt.Errorf("no window document: pass a path or set window in %s", configPath)
	}

	app, err := trellis.NewApplication(config, trellis.WithFonts(canvas))
	if err != nil {
		return nil, nil, err
	}
	app.SetPainter(func(*retained.Window) retained.Painter {
		canvas.Clear()
		return canvas
	})

	w := app.Windows()[0]
	w.SetSize(canvas.PixelSize())
	return app, w, nil
}

// describe renders one control as "Type #id (x, y) WxH".
func describe(c retained.Control) string {
	n := c.Base()
	s := typeStyle.Render(c.TypeName())
	if id := n.ID(); id != "" {
		s += " " + idStyle.Render("#"+id)
	}
	size := n.Size()
	return s + " " + boundsStyle.Render(fmt.Sprintf("%s %gx%g", n.AbsolutePosition(), size.X, size.Y))
}

// describeShort is describe without the bounds, for the status line.
func describeShort(c retained.Control) string {
	if c == nil {
		return "-"
	}
	if id := c.Base().ID(); id != "" {
		return c.TypeName() + "#" + id
	}
	return c.TypeName()
}
