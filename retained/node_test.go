package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
	"github.com/agiangrant/trellis/theme"
)

func TestSetPositionFloorsAndInvalidatesOnChange(t *testing.T) {
	p := newRecorder(nil, geom.Vec(10, 10))
	var rec invalidations
	p.SetOnInvalidate(rec.fn)

	p.SetPosition(geom.Vec(3.7, 4.2))
	assert.Equal(t, geom.Vec(3, 4), p.Position())
	assert.Equal(t, geom.Vec(10, 10), p.Size(), "moving keeps the size")
	assert.Equal(t, 1, rec.count(InvalidateLayout))

	p.SetPosition(geom.Vec(3.9, 4.9))
	assert.Equal(t, 1, rec.count(InvalidateLayout), "same floored position is not a change")
}

func TestSetSize(t *testing.T) {
	p := newRecorder(nil, geom.Vector2{})
	var rec invalidations
	p.SetOnInvalidate(rec.fn)

	p.SetSize(geom.Vec(20.9, 5.5))
	assert.Equal(t, geom.Vec(20, 5), p.Size())
	assert.Equal(t, 1, p.resized)
	assert.Equal(t, 1, rec.count(InvalidateLayout))
	assert.Equal(t, Control(p), rec.from[0])

	p.SetSize(geom.Vec(20, 5))
	assert.Equal(t, 1, p.resized, "unchanged size is a no-op")
	assert.Len(t, rec.types, 1)
}

func TestSetExpandIgnoredWhenFixedSize(t *testing.T) {
	text := NewText(nil, "fixed")
	text.SetExpand(ExpandBoth)
	assert.Equal(t, ExpandNone, text.Expand())

	text.SetWrap(true)
	text.SetExpand(ExpandWidth)
	assert.Equal(t, ExpandWidth, text.Expand())
}

func TestContainsIsInclusive(t *testing.T) {
	c := NewContainer(nil)
	c.SetPosition(geom.Vec(100, 0))
	p := newRecorder(nil, geom.Vec(20, 20))
	p.SetPosition(geom.Vec(10, 10))
	c.AddControl(p)

	tests := []struct {
		name string
		pos  geom.Vector2
		want bool
	}{
		{"top left corner", geom.Vec(110, 10), true},
		{"bottom right corner", geom.Vec(130, 30), true},
		{"inside", geom.Vec(120, 20), true},
		{"right of", geom.Vec(131, 30), false},
		{"ignores parent offset", geom.Vec(15, 15), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Contains(tt.pos))
		})
	}
}

func TestPropertyOverride(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	p := newRecorder(w, geom.Vector2{})

	assert.Equal(t, float32(15), p.Property(theme.ScrollBarSize).Float())

	p.SetProperty(theme.ScrollBarSize, theme.Float(20))
	assert.Equal(t, float32(20), p.Property(theme.ScrollBarSize).Float())

	p.SetProperty(theme.ScrollBarSize, theme.Variant{})
	assert.Equal(t, float32(20), p.Property(theme.ScrollBarSize).Float(), "null override is ignored")

	p.ClearProperty(theme.ScrollBarSize)
	assert.Equal(t, float32(15), p.Property(theme.ScrollBarSize).Float())
}

func TestFullID(t *testing.T) {
	outer := NewContainer(nil)
	outer.SetID("panel")
	middle := NewContainer(nil)
	outer.AddControl(middle)
	p := newRecorder(nil, geom.Vector2{})
	p.SetID("ok")
	middle.AddControl(p)

	assert.Equal(t, "panel.ok", p.FullID())
	assert.Equal(t, "panel", middle.FullID())
}

func TestInvalidationFollowsLastParent(t *testing.T) {
	var first, second invalidations
	a := NewContainer(nil)
	a.SetOnInvalidate(first.fn)
	b := NewContainer(nil)
	b.SetOnInvalidate(second.fn)

	p := newRecorder(nil, geom.Vec(5, 5))
	a.AddControl(p)
	b.AddControl(p)
	require.False(t, a.HasControl(p))
	require.Equal(t, Composite(b), p.Parent())

	first.reset()
	second.reset()
	p.SetSize(geom.Vec(6, 6))

	assert.Empty(t, first.types)
	assert.Equal(t, []InvalidateType{InvalidateLayout}, second.types)
	assert.Equal(t, Control(p), second.from[0])
}

func TestNodeLoadSave(t *testing.T) {
	p := newRecorder(nil, geom.Vector2{})
	v, err := doc.ParseJSON([]byte(`{"ID": "recorder", "Size": [30, 40], "Expand": "Width", "Unknown": 1}`))
	require.NoError(t, err)

	p.OnLoad(v)
	assert.Equal(t, "recorder", p.ID())
	assert.Equal(t, geom.Vec(30, 40), p.Size())
	assert.Equal(t, ExpandWidth, p.Expand())

	out := doc.NewObject()
	p.OnSave(out)
	assert.Equal(t, "Recorder", out.Get("Type").Str(""))
	assert.Equal(t, "recorder", out.Get("ID").Str(""))
	assert.Equal(t, "Width", out.Get("Expand").Str(""))
	assert.Equal(t, []float32{30, 40}, out.Get("Size").FloatSlice())
}
