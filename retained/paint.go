package retained

import (
	"github.com/agiangrant/trellis/font"
	"github.com/agiangrant/trellis/geom"
	"github.com/agiangrant/trellis/theme"
)

// Painter receives draw calls in absolute window coordinates. Rendering
// backends implement it; the tree only describes what to draw.
type Painter interface {
	Rectangle(r geom.Rect, c theme.Color)
	RectangleOutline(r geom.Rect, c theme.Color, thickness float32)
	Line(from, to geom.Vector2, c theme.Color, thickness float32)
	Text(face font.Face, pos geom.Vector2, text string, c theme.Color)
	PushClip(r geom.Rect)
	PopClip()
}

// CommandKind tags a recorded draw call.
type CommandKind uint8

const (
	CommandRectangle CommandKind = iota
	CommandOutline
	CommandLine
	CommandText
)

func (k CommandKind) String() string {
	switch k {
	case CommandOutline:
		return "Outline"
	case CommandLine:
		return "Line"
	case CommandText:
		return "Text"
	}
	return "Rectangle"
}

// Command is one recorded draw call. Rect holds the clipped bounds for
// rectangles and the measured text bounds for text.
type Command struct {
	Kind      CommandKind
	Rect      geom.Rect
	From, To  geom.Vector2
	Color     theme.Color
	Thickness float32
	Text      string
	Face      font.Face
}

// DrawList is a Painter that records commands, dropping anything fully
// outside the active clip.
type DrawList struct {
	Commands []Command
	clips    []geom.Rect
}

// Reset empties the list for the next frame.
func (d *DrawList) Reset() {
	d.Commands = d.Commands[:0]
	d.clips = d.clips[:0]
}

// Clip returns the active clip rectangle.
func (d *DrawList) Clip() (geom.Rect, bool) {
	if len(d.clips) == 0 {
		return geom.Rect{}, false
	}
	return d.clips[len(d.clips)-1], true
}

// IsClipped reports whether r lies entirely outside the active clip.
func (d *DrawList) IsClipped(r geom.Rect) bool {
	clip, ok := d.Clip()
	return ok && !clip.Intersects(r)
}

func (d *DrawList) clipped(r geom.Rect) geom.Rect {
	if clip, ok := d.Clip(); ok {
		return clip.Intersection(r)
	}
	return r
}

func (d *DrawList) Rectangle(r geom.Rect, c theme.Color) {
	if d.IsClipped(r) {
		return
	}
	d.Commands = append(d.Commands, Command{Kind: CommandRectangle, Rect: d.clipped(r), Color: c})
}

func (d *DrawList) RectangleOutline(r geom.Rect, c theme.Color, thickness float32) {
	if d.IsClipped(r) {
		return
	}
	d.Commands = append(d.Commands, Command{Kind: CommandOutline, Rect: d.clipped(r), Color: c, Thickness: thickness})
}

func (d *DrawList) Line(from, to geom.Vector2, c theme.Color, thickness float32) {
	bounds := geom.Rect{Min: from.Min(to), Max: from.Max(to)}
	if d.IsClipped(bounds) {
		return
	}
	d.Commands = append(d.Commands, Command{Kind: CommandLine, From: from, To: to, Color: c, Thickness: thickness})
}

func (d *DrawList) Text(face font.Face, pos geom.Vector2, text string, c theme.Color) {
	if text == "" || face == nil {
		return
	}
	bounds := geom.RectFrom(pos, face.Measure(text))
	if d.IsClipped(bounds) {
		return
	}
	d.Commands = append(d.Commands, Command{Kind: CommandText, Rect: bounds, From: pos, Color: c, Text: text, Face: face})
}

// PushClip narrows the clip to the intersection with the current one.
func (d *DrawList) PushClip(r geom.Rect) {
	d.clips = append(d.clips, d.clipped(r))
}

func (d *DrawList) PopClip() {
	if len(d.clips) > 0 {
		d.clips = d.clips[:len(d.clips)-1]
	}
}

// Texts returns the strings of every text command in draw order.
func (d *DrawList) Texts() []string {
	var out []string
	for _, cmd := range d.Commands {
		if cmd.Kind == CommandText {
			out = append(out, cmd.Text)
		}
	}
	return out
}
