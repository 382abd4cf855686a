package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"in range", Point{3, 7}, Point{3, 7}},
		{"x past right edge", Point{10, 4}, Point{0, 4}},
		{"x past left edge", Point{-1, 4}, Point{9, 4}},
		{"y past bottom edge", Point{4, 10}, Point{4, 0}},
		{"y past top edge", Point{4, -1}, Point{4, 9}},
		{"corner", Point{-1, 10}, Point{9, 0}},
		{"origin", Point{0, 0}, Point{0, 0}},
		{"far corner", Point{9, 9}, Point{9, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, InBounds(got))
		})
	}
}

func TestWrapAllCoordinates(t *testing.T) {
	for v := 0; v < BoardSize; v++ {
		assert.Equal(t, Point{0, v}, Wrap(Point{BoardSize, v}))
		assert.Equal(t, Point{BoardSize - 1, v}, Wrap(Point{-1, v}))
		assert.Equal(t, Point{v, v}, Wrap(Point{v, v}))
	}
}

func TestDirectionDelta(t *testing.T) {
	assert.Equal(t, Point{0, -1}, North.Delta())
	assert.Equal(t, Point{1, 0}, East.Delta())
	assert.Equal(t, Point{0, 1}, South.Delta())
	assert.Equal(t, Point{-1, 0}, West.Delta())
	assert.Equal(t, Point{}, Direction(42).Delta())
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{North, East, South, West} {
		assert.Equal(t, Point{}, d.Delta().Add(d.Opposite().Delta()), d.String())
		assert.Equal(t, d, d.Opposite().Opposite())
	}
}
