package retained

import (
	"testing"
	"time"

	"github.com/agiangrant/trellis/font"
	"github.com/agiangrant/trellis/geom"
)

// cellFonts measures every string in 8x16 cells.
type cellFonts struct{}

func (cellFonts) Face(path string, size float32) font.Face { return font.NewCellFace(8, 16) }

func newTestWindow(t *testing.T, width, height float32) (*Window, *ManualClock) {
	t.Helper()
	clock := NewManualClock(time.Unix(1_700_000_000, 0))
	w := NewWindow(WindowConfig{
		Title:  t.Name(),
		Width:  width,
		Height: height,
		Fonts:  cellFonts{},
		Clock:  clock,
	})
	return w, clock
}

// recorder is a leaf that records the hooks the window calls on it.
type recorder struct {
	Node

	handles bool
	keys    bool
	events  []string
	resized int
	updates int
}

func newRecorder(w *Window, size geom.Vector2) *recorder {
	p := &recorder{}
	p.init(p, w)
	p.SetSize(size)
	p.resized = 0
	return p
}

func (p *recorder) TypeName() string { return "Recorder" }

func (p *recorder) record(e string) { p.events = append(p.events, e) }

func (p *recorder) reset() { p.events = nil }

func (p *recorder) Update()                      { p.updates++ }
func (p *recorder) OnResized()                   { p.resized++ }
func (p *recorder) OnMouseEnter()                { p.record("enter") }
func (p *recorder) OnMouseLeave()                { p.record("leave") }
func (p *recorder) OnMouseMove(pos geom.Vector2) { p.record("move") }
func (p *recorder) OnMouseWheel(d geom.Vector2)  { p.record("wheel") }
func (p *recorder) OnFocused()                   { p.record("focus") }
func (p *recorder) OnUnfocused()                 { p.record("unfocus") }
func (p *recorder) OnText(r rune)                { p.record("text:" + string(r)) }

func (p *recorder) OnMousePressed(pos geom.Vector2, button MouseButton, count ClickCount) bool {
	p.record("press")
	return p.handles
}

func (p *recorder) OnMouseReleased(pos geom.Vector2, button MouseButton) { p.record("release") }

func (p *recorder) OnKeyPressed(key Key) bool {
	p.record("key:" + key.String())
	if p.keys {
		return true
	}
	return p.Node.OnKeyPressed(key)
}

// keySink is a container that consumes every key.
type keySink struct {
	Container

	got []Key
}

func newKeySink(w *Window) *keySink {
	k := &keySink{}
	k.initContainer(k, w)
	return k
}

func (k *keySink) OnKeyPressed(key Key) bool {
	k.got = append(k.got, key)
	return true
}

// invalidations records what reaches a callback.
type invalidations struct {
	types []InvalidateType
	from  []Control
}

func (r *invalidations) fn(focus Control, t InvalidateType) {
	r.types = append(r.types, t)
	r.from = append(r.from, focus)
}

func (r *invalidations) reset() {
	r.types, r.from = nil, nil
}

func (r *invalidations) count(t InvalidateType) int {
	n := 0
	for _, got := range r.types {
		if got == t {
			n++
		}
	}
	return n
}
