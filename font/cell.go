package font

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/agiangrant/trellis/geom"
)

// CellFace measures text in terminal cells, scaled to pixels by Cell.
// East Asian wide runes count as two cells.
type CellFace struct {
	Cell geom.Vector2
}

// NewCellFace returns a face where one cell is w by h pixels.
func NewCellFace(w, h float32) CellFace {
	return CellFace{Cell: geom.Vec(w, h)}
}

// Measure returns the widest line times the cell width and the line count
// times the cell height.
func (c CellFace) Measure(text string) geom.Vector2 {
	lines := strings.Split(text, "\n")
	cols := 0
	for _, line := range lines {
		cols = max(cols, runewidth.StringWidth(line))
	}
	return geom.Vec(float32(cols)*c.Cell.X, float32(len(lines))*c.Cell.Y)
}

// Size returns the cell height.
func (c CellFace) Size() float32 {
	return c.Cell.Y
}

// Columns returns the cell width of s.
func Columns(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most cols cells, appending tail when it cuts.
func Truncate(s string, cols int, tail string) string {
	return runewidth.Truncate(s, cols, tail)
}

// Wrap breaks text into lines no wider than width using Unicode line
// breaking opportunities. A segment wider than width gets a line of its own.
func Wrap(face Face, text string, width float32) []string {
	var lines []string
	var line strings.Builder
	rest := text
	state := -1
	for len(rest) > 0 {
		var segment string
		var mustBreak bool
		segment, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)

		candidate := line.String() + segment
		if line.Len() > 0 && face.Measure(strings.TrimRight(candidate, " \n")).X > width {
			lines = append(lines, strings.TrimRight(line.String(), " "))
			line.Reset()
		}
		line.WriteString(segment)

		if mustBreak {
			lines = append(lines, strings.TrimRight(line.String(), " \r\n"))
			line.Reset()
		}
	}
	if line.Len() > 0 {
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return lines
}
