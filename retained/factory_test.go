package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/trellis/geom"
)

func TestCreateControl(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	tests := []struct {
		typeName string
		want     string
	}{
		{"Container", "Container"},
		{"VerticalContainer", "VerticalContainer"},
		{"HorizontalContainer", "HorizontalContainer"},
		{"Splitter", "Splitter"},
		{"ScrollableView", "ScrollableViewControl"},
		{"Table", "Table"},
		{"TextButton", "TextButton"},
	}
	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			c := CreateControl(tt.typeName, w)
			require.NotNil(t, c)
			assert.Equal(t, tt.want, c.TypeName())
			assert.Equal(t, w, c.Base().Window())
		})
	}

	assert.Nil(t, CreateControl("Bogus", w))
}

func TestRegisterControl(t *testing.T) {
	RegisterControl("Recorder", func(w *Window) Control { return newRecorder(w, geom.Vec(1, 1)) })
	t.Cleanup(func() {
		registryMu.Lock()
		delete(registry, "Recorder")
		registryMu.Unlock()
	})

	assert.Contains(t, ControlTypes(), "Recorder")
	assert.IsType(t, &recorder{}, CreateControl("Recorder", nil))
}

func TestControlTypesSorted(t *testing.T) {
	types := ControlTypes()
	assert.IsIncreasing(t, types)
	assert.Contains(t, types, "Panel")
}

func TestControlListDuplicateReplaces(t *testing.T) {
	list := NewControlList()
	a := newRecorder(nil, geom.Vector2{})
	a.SetID("x")
	b := newRecorder(nil, geom.Vector2{})
	b.SetID("x")
	anonymous := newRecorder(nil, geom.Vector2{})

	list.Add(a)
	list.Add(b)
	list.Add(anonymous)
	list.Add(nil)

	assert.Equal(t, 1, list.Len())
	assert.Equal(t, Control(b), list.Get("x"))
	assert.True(t, list.Contains("x"))
	assert.False(t, list.Contains(""))
}

func TestControlListZeroValue(t *testing.T) {
	var list ControlList
	assert.Nil(t, list.Get("missing"))
	_, ok := Lookup[*recorder](&list, "missing")
	assert.False(t, ok)

	p := newRecorder(nil, geom.Vector2{})
	p.SetID("p")
	list.Add(p)
	got, ok := Lookup[*recorder](&list, "p")
	require.True(t, ok)
	assert.Same(t, p, got)
}
