package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/trellis/geom"
)

func newPopupContainer(w *Window, pos geom.Vector2) (*Container, *recorder) {
	c := NewContainer(w)
	c.SetPosition(pos)
	c.SetSize(geom.Vec(100, 100))
	p := newRecorder(w, geom.Vec(100, 100))
	p.handles = true
	c.AddControl(p)
	return c, p
}

func TestPopupStateMachine(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	menu, _ := newPopupContainer(w, geom.Vector2{})
	closed := 0
	onClose := func(*Window, Composite) { closed++ }

	w.SetPopup(menu, onClose, false)
	require.Equal(t, PopupOpening, w.Popup().State())

	w.ClosePopup()
	assert.Equal(t, PopupOpening, w.Popup().State(), "closing while opening is ignored")

	w.SetPopup(menu, onClose, false)
	assert.Equal(t, PopupOpening, w.Popup().State())
	assert.Zero(t, closed, "reopening the same container is a no-op")

	w.Update()
	assert.Equal(t, PopupOpened, w.Popup().State())

	w.ClosePopup()
	assert.Equal(t, PopupNone, w.Popup().State())
	assert.False(t, w.Popup().IsOpen())
	assert.Equal(t, 1, closed)

	w.ClosePopup()
	assert.Equal(t, 1, closed, "closing nothing is a no-op")
}

func TestPopupOpenReplacesPrevious(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	a, _ := newPopupContainer(w, geom.Vector2{})
	b, _ := newPopupContainer(w, geom.Vec(200, 0))
	var closed []Composite

	w.SetPopup(a, func(_ *Window, c Composite) { closed = append(closed, c) }, false)
	w.SetPopup(b, nil, true)

	assert.Equal(t, []Composite{a}, closed, "the replaced popup's callback runs even while opening")
	assert.Equal(t, Composite(b), w.Popup().Container())
	assert.True(t, w.Popup().IsModal())
	assert.Equal(t, PopupOpening, w.Popup().State())
}

func TestModalPopupBlocksTree(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	below := newRecorder(w, geom.Vec(50, 50))
	w.Body().AddControl(below)
	pop, inside := newPopupContainer(w, geom.Vec(300, 300))

	w.SetPopup(pop, nil, true)
	w.Update()

	w.OnMouseMove(geom.Vec(10, 10))
	assert.Nil(t, w.Hovered(), "a modal popup hides the tree")
	w.OnMouseMove(geom.Vec(350, 350))
	assert.Equal(t, Control(inside), w.Hovered())

	w.ClosePopup()
	w.SetPopup(pop, nil, false)
	w.Update()

	w.OnMouseMove(geom.Vec(10, 10))
	assert.Equal(t, Control(below), w.Hovered(), "a non-modal miss falls through")
	w.OnMouseMove(geom.Vec(350, 350))
	assert.Equal(t, Control(inside), w.Hovered())
}

func TestFocusOutsidePopupClosesIt(t *testing.T) {
	tests := []struct {
		name    string
		handles bool
	}{
		{"handled press elsewhere", true},
		{"unhandled press elsewhere", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWindow(t, 640, 480)
			below := newRecorder(w, geom.Vec(50, 50))
			below.handles = tt.handles
			w.Body().AddControl(below)
			pop, _ := newPopupContainer(w, geom.Vec(300, 300))
			w.SetPopup(pop, nil, false)
			w.Update()

			w.OnMouseMove(geom.Vec(10, 10))
			w.OnMousePressed(geom.Vec(10, 10), MouseButtonLeft, ClickSingle)

			assert.False(t, w.Popup().IsOpen())
		})
	}
}

func TestPressInsidePopupKeepsIt(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	pop, inside := newPopupContainer(w, geom.Vec(300, 300))
	w.SetPopup(pop, nil, false)
	w.Update()

	w.OnMouseMove(geom.Vec(350, 350))
	w.OnMousePressed(geom.Vec(350, 350), MouseButtonLeft, ClickSingle)

	assert.True(t, w.Popup().IsOpen())
	assert.Equal(t, Control(inside), w.Focus())

	w.ClosePopup()
	assert.Nil(t, w.Focus(), "closing drops focus inside the popup")
	assert.Equal(t, "unfocus", inside.events[len(inside.events)-1])
}

func TestPopupOpeningSurvivesItsOwnPress(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	opener := newRecorder(w, geom.Vec(50, 50))
	w.Body().AddControl(opener)
	w.Update()
	pop, _ := newPopupContainer(w, geom.Vec(300, 300))

	w.OnMouseMove(geom.Vec(10, 10))
	// The press that opens the popup lands outside it and must not close it.
	w.SetPopup(pop, nil, false)
	w.OnMousePressed(geom.Vec(10, 10), MouseButtonLeft, ClickSingle)
	assert.True(t, w.Popup().IsOpen())

	w.Update()
	w.OnMousePressed(geom.Vec(10, 10), MouseButtonLeft, ClickSingle)
	assert.False(t, w.Popup().IsOpen())
}
