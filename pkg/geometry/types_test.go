package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint2D_Distance(t *testing.T) {
	a := NewPoint2D(0, 0)
	b := NewPoint2D(3, 4)
	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, 5.0, b.Distance(a))
	assert.Zero(t, a.Distance(a))
}

func TestCircle_Diameter(t *testing.T) {
	c := Circle{Center: NewPoint2D(10, 10), Radius: 7.5}
	assert.Equal(t, 15.0, c.Diameter())
}

func TestRect_ContainsAndCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	assert.True(t, r.Contains(NewPoint2D(25, 40)))
	assert.True(t, r.Contains(NewPoint2D(10, 20))) // edges are inside
	assert.False(t, r.Contains(NewPoint2D(41, 40)))

	assert.Equal(t, NewPoint2D(25, 40), r.Center())
}

func TestBoundingRect(t *testing.T) {
	points := []Point2D{{X: 3, Y: 8}, {X: -1, Y: 2}, {X: 5, Y: 4}}

	r := BoundingRect(points)
	assert.Equal(t, Rect{X: -1, Y: 2, Width: 6, Height: 6}, r)

	assert.Equal(t, Rect{}, BoundingRect(nil))
}
