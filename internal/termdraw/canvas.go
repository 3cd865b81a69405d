// Package termdraw paints control trees into a grid of terminal cells.
// Pixel coordinates map onto cells of a fixed pixel size; a cell belongs to
// a shape when its center lies inside it.
package termdraw

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/agiangrant/trellis/font"
	"github.com/agiangrant/trellis/geom"
	"github.com/agiangrant/trellis/retained"
	"github.com/agiangrant/trellis/theme"
)

// DefaultCell is the pixel size of one terminal cell.
var DefaultCell = geom.Vec(8, 16)

// Cell is one terminal cell. Ch holds a grapheme cluster; the cell to the
// right of a double-width cluster is a continuation with an empty Ch.
type Cell struct {
	Ch    string
	FG    theme.Color
	BG    theme.Color
	HasFG bool
	HasBG bool

	wide bool
	cont bool
}

type styleKey struct {
	fg, bg       theme.Color
	hasFG, hasBG bool
}

// Canvas is a retained.Painter over a grid of cells.
type Canvas struct {
	cols, rows int
	cell       geom.Vector2
	cells      []Cell
	clips      []geom.Rect
	styles     map[styleKey]lipgloss.Style
}

var _ retained.Painter = (*Canvas)(nil)

// New returns a blank canvas of cols by rows cells. A zero cell size uses
// DefaultCell.
func New(cols, rows int, cell geom.Vector2) *Canvas {
	if cell.X <= 0 || cell.Y <= 0 {
		cell = DefaultCell
	}
	c := &Canvas{cell: cell, styles: make(map[styleKey]lipgloss.Style)}
	c.Resize(cols, rows)
	return c
}

func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }
func (c *Canvas) CellSize() geom.Vector2 { return c.cell }

// PixelSize returns the canvas extent in pixels.
func (c *Canvas) PixelSize() geom.Vector2 {
	return geom.Vec(float32(c.cols)*c.cell.X, float32(c.rows)*c.cell.Y)
}

// Resize reallocates the grid and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.cells = make([]Cell, c.cols*c.rows)
	c.Clear()
}

// Clear blanks every cell and drops the clip stack.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Ch: " "}
	}
	c.clips = c.clips[:0]
}

// At returns the cell at col, row. Out of range positions yield a zero cell.
func (c *Canvas) At(col, row int) Cell {
	if !c.inside(col, row) {
		return Cell{}
	}
	return c.cells[row*c.cols+col]
}

// CellToPixel returns the pixel at the center of a cell.
func (c *Canvas) CellToPixel(col, row int) geom.Vector2 {
	return geom.Vec((float32(col)+0.5)*c.cell.X, (float32(row)+0.5)*c.cell.Y)
}

// PixelToCell returns the cell holding p.
func (c *Canvas) PixelToCell(p geom.Vector2) (col, row int) {
	return int(math.Floor(float64(p.X / c.cell.X))), int(math.Floor(float64(p.Y / c.cell.Y)))
}

// Face makes the canvas a font.Provider: every face measures in cells.
func (c *Canvas) Face(path string, size float32) font.Face {
	return font.NewCellFace(c.cell.X, c.cell.Y)
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.cols && row < c.rows
}

// visible reports whether the cell is on the canvas and its center lies in
// the active clip.
func (c *Canvas) visible(col, row int) bool {
	if !c.inside(col, row) {
		return false
	}
	if len(c.clips) == 0 {
		return true
	}
	clip := c.clips[len(c.clips)-1]
	center := c.CellToPixel(col, row)
	return center.X >= clip.Min.X && center.X < clip.Max.X &&
		center.Y >= clip.Min.Y && center.Y < clip.Max.Y
}

// span returns the half-open range of cells whose centers lie in
// [lo, hi) along one axis.
func span(lo, hi, size float32) (int, int) {
	return int(math.Ceil(float64(lo/size - 0.5))), int(math.Ceil(float64(hi/size - 0.5)))
}

func (c *Canvas) set(col, row int, ch string, fg theme.Color, hasFG bool) {
	i := row*c.cols + col
	cell := &c.cells[i]
	if cell.wide && col+1 < c.cols {
		c.cells[i+1] = Cell{Ch: " ", BG: c.cells[i+1].BG, HasBG: c.cells[i+1].HasBG}
	}
	if cell.cont && col > 0 {
		prev := &c.cells[i-1]
		prev.Ch, prev.wide = " ", false
	}
	cell.Ch, cell.wide, cell.cont = ch, false, false
	if hasFG {
		cell.FG, cell.HasFG = fg, true
	}
}

// ============================================================================
// Painter
// ============================================================================

// Rectangle fills the covered cells with blanks on a background of col.
// Fully transparent colors draw nothing.
func (c *Canvas) Rectangle(r geom.Rect, col theme.Color) {
	if col.A == 0 {
		return
	}
	x0, x1 := span(r.Min.X, r.Max.X, c.cell.X)
	y0, y1 := span(r.Min.Y, r.Max.Y, c.cell.Y)
	for row := y0; row < y1; row++ {
		for x := x0; x < x1; x++ {
			if !c.visible(x, row) {
				continue
			}
			c.set(x, row, " ", theme.Color{}, false)
			cell := &c.cells[row*c.cols+x]
			cell.BG, cell.HasBG = col, true
		}
	}
}

// RectangleOutline draws a box around the covered cells.
func (c *Canvas) RectangleOutline(r geom.Rect, col theme.Color, thickness float32) {
	if col.A == 0 {
		return
	}
	x0, x1 := span(r.Min.X, r.Max.X, c.cell.X)
	y0, y1 := span(r.Min.Y, r.Max.Y, c.cell.Y)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	border := lipgloss.NormalBorder()
	put := func(x, y int, ch string) {
		if c.visible(x, y) {
			c.set(x, y, ch, col, true)
		}
	}
	for x := x0; x < x1; x++ {
		put(x, y0, border.Top)
		put(x, y1-1, border.Bottom)
	}
	for y := y0; y < y1; y++ {
		put(x0, y, border.Left)
		put(x1-1, y, border.Right)
	}
	put(x0, y0, border.TopLeft)
	put(x1-1, y0, border.TopRight)
	put(x0, y1-1, border.BottomLeft)
	put(x1-1, y1-1, border.BottomRight)
}

// Line draws box-drawing runes for axis-aligned lines and dots otherwise.
func (c *Canvas) Line(from, to geom.Vector2, col theme.Color, thickness float32) {
	if col.A == 0 {
		return
	}
	border := lipgloss.NormalBorder()
	fc, fr := c.PixelToCell(from)
	tc, tr := c.PixelToCell(to)
	steep := math.Abs(float64(to.Y-from.Y)) > math.Abs(float64(to.X-from.X))
	switch {
	case fc == tc && steep:
		for y := min(fr, tr); y <= max(fr, tr); y++ {
			if c.visible(fc, y) {
				c.set(fc, y, border.Left, col, true)
			}
		}
	case fr == tr:
		for x := min(fc, tc); x <= max(fc, tc); x++ {
			if c.visible(x, fr) {
				c.set(x, fr, border.Top, col, true)
			}
		}
	case fc == tc:
		for y := min(fr, tr); y <= max(fr, tr); y++ {
			if c.visible(fc, y) {
				c.set(fc, y, border.Left, col, true)
			}
		}
	default:
		steps := max(abs(tc-fc), abs(tr-fr))
		for i := 0; i <= steps; i++ {
			t := float32(i) / float32(steps)
			p := geom.Vec(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
			x, y := c.PixelToCell(p)
			if c.visible(x, y) {
				c.set(x, y, "·", col, true)
			}
		}
	}
}

// Text writes grapheme clusters from the cell nearest pos, one row per
// line. Double-width clusters take two cells and are dropped when the
// second cell is hidden.
func (c *Canvas) Text(face font.Face, pos geom.Vector2, text string, col theme.Color) {
	startCol := int(math.Round(float64(pos.X / c.cell.X)))
	row := int(math.Round(float64(pos.Y / c.cell.Y)))
	for _, line := range strings.Split(text, "\n") {
		x := startCol
		g := uniseg.NewGraphemes(line)
		for g.Next() {
			cluster := g.Str()
			w := runewidth.StringWidth(cluster)
			if w == 0 {
				continue
			}
			if c.visible(x, row) && (w == 1 || c.visible(x+1, row)) {
				c.set(x, row, cluster, col, true)
				if w == 2 {
					c.set(x+1, row, "", col, true)
					c.cells[row*c.cols+x].wide = true
					c.cells[row*c.cols+x+1].cont = true
				}
			}
			x += w
		}
		row++
	}
}

// PushClip narrows the clip to the intersection with the current one.
func (c *Canvas) PushClip(r geom.Rect) {
	if len(c.clips) > 0 {
		r = c.clips[len(c.clips)-1].Intersection(r)
	}
	c.clips = append(c.clips, r)
}

func (c *Canvas) PopClip() {
	if len(c.clips) > 0 {
		c.clips = c.clips[:len(c.clips)-1]
	}
}

// Draw replays a recorded draw list.
func (c *Canvas) Draw(dl *retained.DrawList) {
	for _, cmd := range dl.Commands {
		switch cmd.Kind {
		case retained.CommandRectangle:
			c.Rectangle(cmd.Rect, cmd.Color)
		case retained.CommandOutline:
			c.RectangleOutline(cmd.Rect, cmd.Color, cmd.Thickness)
		case retained.CommandLine:
			c.Line(cmd.From, cmd.To, cmd.Color, cmd.Thickness)
		case retained.CommandText:
			c.Text(cmd.Face, cmd.From, cmd.Text, cmd.Color)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ============================================================================
// Output
// ============================================================================

// Plain returns the characters only, one line per row.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range c.cells[row*c.cols : (row+1)*c.cols] {
			b.WriteString(cell.Ch)
		}
	}
	return b.String()
}

// Render returns the canvas with colors, grouping runs of equally styled
// cells into one lipgloss render each.
func (c *Canvas) Render() string {
	lines := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var b, run strings.Builder
		var key styleKey
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(c.style(key).Render(run.String()))
				run.Reset()
			}
		}
		for i, cell := range c.cells[row*c.cols : (row+1)*c.cols] {
			k := styleKey{fg: cell.FG, bg: cell.BG, hasFG: cell.HasFG, hasBG: cell.HasBG}
			if i > 0 && k != key {
				flush()
			}
			key = k
			run.WriteString(cell.Ch)
		}
		flush()
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) style(k styleKey) lipgloss.Style {
	if s, ok := c.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if k.hasFG {
		s = s.Foreground(lipgloss.Color(opaque(k.fg).Hex()))
	}
	if k.hasBG {
		s = s.Background(lipgloss.Color(opaque(k.bg).Hex()))
	}
	c.styles[k] = s
	return s
}

func opaque(col theme.Color) theme.Color {
	col.A = 255
	return col
}
