package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/trellis/geom"
)

func TestTextSize(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	tests := []struct {
		name string
		text string
		want geom.Vector2
	}{
		{"single line", "hello", geom.Vec(40, 16)},
		{"two lines", "hi\nthere", geom.Vec(40, 32)},
		{"empty keeps a line", "", geom.Vec(0, 16)},
		{"wide runes", "日本", geom.Vec(32, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewText(w, tt.text).Size())
		})
	}
}

func TestTextWrapsToParentWidth(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	c := NewContainer(w)
	c.SetSize(geom.Vec(80, 100))
	txt := NewText(w, "hello world again")
	c.AddControl(txt)

	txt.SetWrap(true)

	assert.Equal(t, []string{"hello", "world", "again"}, txt.Lines())
	assert.Equal(t, geom.Vec(40, 48), txt.Size())
	assert.False(t, txt.IsFixedSize())
}

func TestTextButtonSize(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	b := NewTextButton(w, "OK")
	// Label plus 12x6 padding on each side.
	assert.Equal(t, geom.Vec(16+24, 16+12), b.Size())

	b.SetLabel("Cancel")
	assert.Equal(t, geom.Vec(48+24, 28), b.Size())
}

func TestButtonClick(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	b := NewButton(w)
	b.SetSize(geom.Vec(50, 50))
	w.Body().AddControl(b)
	w.Update()
	var log []string
	b.SetOnPressed(func(*Button) { log = append(log, "pressed") })
	b.SetOnReleased(func(*Button) { log = append(log, "released") })
	b.SetOnClicked(func(*Button) { log = append(log, "clicked") })

	w.OnMouseMove(geom.Vec(10, 10))
	assert.Equal(t, ButtonHovered, b.State())
	w.OnMousePressed(geom.Vec(10, 10), MouseButtonLeft, ClickSingle)
	assert.True(t, b.IsPressed())
	w.OnMouseReleased(geom.Vec(10, 10), MouseButtonLeft)
	assert.Equal(t, []string{"pressed", "released", "clicked"}, log)
	assert.Equal(t, ButtonHovered, b.State())

	log = nil
	w.OnMousePressed(geom.Vec(10, 10), MouseButtonLeft, ClickSingle)
	w.OnMouseMove(geom.Vec(200, 200))
	assert.True(t, b.IsPressed(), "leaving keeps the press")
	w.OnMouseReleased(geom.Vec(200, 200), MouseButtonLeft)
	assert.Equal(t, []string{"pressed", "released"}, log, "no click outside")
	assert.Equal(t, ButtonNone, b.State())
}

func TestDisabledButtonIgnoresPress(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	b := NewButton(w)
	b.SetSize(geom.Vec(50, 50))
	b.SetDisabled(true)
	w.Body().AddControl(b)
	w.Update()

	w.OnMouseMove(geom.Vec(10, 10))
	w.OnMousePressed(geom.Vec(10, 10), MouseButtonLeft, ClickSingle)

	assert.False(t, b.IsPressed())
	assert.Nil(t, w.Focus())
}

func TestSeparatorOrientation(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	s := NewSeparator(w, Horizontal)
	assert.Equal(t, ExpandWidth, s.Expand())
	assert.Equal(t, float32(SeparatorSize), s.Size().Y)

	s.SetOrientation(Vertical)
	assert.Equal(t, ExpandHeight, s.Expand())
	assert.Equal(t, float32(SeparatorSize), s.Size().X)

	var dl DrawList
	s.SetSize(geom.Vec(SeparatorSize, 100))
	s.OnPaint(&dl)
	require.Len(t, dl.Commands, 1)
	assert.Equal(t, CommandLine, dl.Commands[0].Kind)
	assert.Equal(t, geom.Vec(8, 8), dl.Commands[0].From)
	assert.Equal(t, geom.Vec(8, 92), dl.Commands[0].To)
}
