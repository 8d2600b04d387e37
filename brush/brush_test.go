package brush

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidCount(b *Brush) int {
	n := 0
	for dy := 0; dy < b.H; dy++ {
		for dx := 0; dx < b.W; dx++ {
			if b.Solid(dx, dy) {
				n++
			}
		}
	}
	return n
}

func TestSquare(t *testing.T) {
	b := New(Square, 3, 1)
	assert.Equal(t, 3, b.W)
	assert.Equal(t, 3, b.H)
	assert.Equal(t, 9, solidCount(b))
	assert.Equal(t, float32(0), b.Get(3, 0))
	assert.False(t, b.Solid(-1, 0))
}

func TestCircle(t *testing.T) {
	b := New(Circle, 4, 1)
	assert.Equal(t, 12, solidCount(b))
	assert.False(t, b.Solid(0, 0), "corners fall outside the circle")
	assert.True(t, b.Solid(1, 1))

	one := New(Circle, 1, 1)
	assert.Equal(t, 1, solidCount(one))
}

func TestWeakBrushIsNotSolid(t *testing.T) {
	b := New(Square, 2, 0.4)
	assert.Equal(t, float32(0.4), b.Get(0, 0))
	assert.Zero(t, solidCount(b))
}

func TestNewClamps(t *testing.T) {
	b := New(Square, 0, 3)
	assert.Equal(t, 1, b.Size)
	assert.Equal(t, float32(1), b.Strength)
}

func TestBottomLeft(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		cx, cy float64
		x0, y0 int
	}{
		{"odd centred", 3, 5.5, 5.5, 4, 4},
		{"odd anywhere in tile", 3, 5.1, 5.9, 4, 4},
		{"single", 1, 2.2, 7.8, 2, 7},
		{"even rounds to corner", 2, 5.6, 5.4, 5, 4},
		{"negative", 3, -0.5, -0.5, -2, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(Square, tt.size, 1)
			b.SetCentre(tt.cx, tt.cy)
			x0, y0 := b.BottomLeft()
			assert.Equal(t, tt.x0, x0)
			assert.Equal(t, tt.y0, y0)
		})
	}
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape("Square")
	require.NoError(t, err)
	assert.Equal(t, Square, s)

	s, err = ParseShape("")
	require.NoError(t, err)
	assert.Equal(t, Circle, s)

	_, err = ParseShape("hexagon")
	assert.Error(t, err)
	assert.Equal(t, "circle", Circle.String())
}
