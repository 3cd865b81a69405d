package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectSetPositionKeepsSize(t *testing.T) {
	r := RectFrom(Vec(1, 2), Vec(10, 20))
	r.SetPosition(Vec(5.9, -0.5))
	assert.Equal(t, Vec(5, -1), r.Min)
	assert.Equal(t, Vec(10, 20), r.Size())
}

func TestRectSetSizeFloorsFarEdge(t *testing.T) {
	r := RectFrom(Vec(3, 3), Vector2{})
	r.SetSize(Vec(10.7, 4.2))
	assert.Equal(t, Vec(13, 7), r.Max)
	assert.Equal(t, float32(10), r.Width())
	assert.Equal(t, float32(4), r.Height())
}

func TestRectContains(t *testing.T) {
	r := RectFrom(Vec(0, 0), Vec(10, 10))
	tests := []struct {
		name string
		p    Vector2
		want bool
	}{
		{"min corner", Vec(0, 0), true},
		{"max corner", Vec(10, 10), true},
		{"center", Vec(5, 5), true},
		{"left", Vec(-0.1, 5), false},
		{"below", Vec(5, 10.5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRectIntersection(t *testing.T) {
	a := RectFrom(Vec(0, 0), Vec(10, 10))
	b := RectFrom(Vec(5, 5), Vec(10, 10))
	c := RectFrom(Vec(20, 20), Vec(5, 5))

	assert.True(t, a.Intersects(b))
	assert.Equal(t, RectFrom(Vec(5, 5), Vec(5, 5)), a.Intersection(b))
	assert.False(t, a.Intersects(c))
	assert.Equal(t, Vector2{}, a.Intersection(c).Size())
}

func TestRectExpandAndMove(t *testing.T) {
	r := RectFrom(Vec(10, 10), Vec(10, 10))
	grown := r.Expand(Rect{Min: Vec(1, 2), Max: Vec(3, 4)})
	assert.Equal(t, Rect{Min: Vec(9, 8), Max: Vec(23, 24)}, grown)
	assert.Equal(t, RectFrom(Vec(15, 5), Vec(10, 10)), r.Move(Vec(5, -5)))
}

func TestVectorHelpers(t *testing.T) {
	v := Vec(3, -4)
	assert.Equal(t, Vec(-3, 4), v.Neg())
	assert.Equal(t, Vec(6, -8), v.Scale(2))
	assert.Equal(t, Vec(3, 0), v.Clamp(Vector2{}, Vec(10, 10)))
	assert.Equal(t, Vec(3, -4), v.Max(Vec(1, -5)))
	assert.Equal(t, Vec(-2, -1), Vec(-1.5, -0.5).Floor())
	assert.True(t, Vector2{}.IsZero())
	assert.Equal(t, "(3, -4)", v.String())
}
