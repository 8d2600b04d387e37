package brush

import (
	"fmt"
	"math"
	"strings"

	"github.com/kevinxiao27/terrain-delta/util"
	"github.com/pkg/errors"
)

type Shape int

const (
	Circle Shape = iota
	Square
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(name) {
	case "circle", "":
		return Circle, nil
	case "square":
		return Square, nil
	}
	return 0, errors.Errorf("brush: unknown shape %q", name)
}

// Brush is a W x H grid of weights centred on a point in tile space.
type Brush struct {
	Shape    Shape
	Size     int
	Strength float32

	W, H   int
	data   []float32
	cx, cy float64
}

func New(shape Shape, size int, strength float32) *Brush {
	size = util.Max(size, 1)
	strength = util.Clamp(strength, 0, 1)
	b := &Brush{
		Shape:    shape,
		Size:     size,
		Strength: strength,
		W:        size,
		H:        size,
		data:     make([]float32, size*size),
	}

	r := float64(size) / 2
	for dy := 0; dy < b.H; dy++ {
		for dx := 0; dx < b.W; dx++ {
			w := strength
			if shape == Circle {
				fx := float64(dx) + 0.5 - r
				fy := float64(dy) + 0.5 - r
				if fx*fx+fy*fy > r*r {
					w = 0
				}
			}
			b.data[dy*b.W+dx] = w
		}
	}
	return b
}

// Get returns the weight at brush-local (dx, dy); zero outside the brush.
func (b *Brush) Get(dx, dy int) float32 {
	if dx < 0 || dy < 0 || dx >= b.W || dy >= b.H {
		return 0
	}
	return b.data[dy*b.W+dx]
}

func (b *Brush) Solid(dx, dy int) bool {
	return b.Get(dx, dy) > 0.5
}

func (b *Brush) SetCentre(x, y float64) {
	b.cx, b.cy = x, y
}

// BottomLeft returns the tile under brush-local (0, 0). Odd sizes centre on
// the tile containing the centre point, even sizes on the nearest corner.
func (b *Brush) BottomLeft() (int, int) {
	cx, cy := b.cx, b.cy
	if b.W%2 == 0 {
		cx += 0.5
	}
	if b.H%2 == 0 {
		cy += 0.5
	}
	return int(math.Floor(cx)) - b.W/2, int(math.Floor(cy)) - b.H/2
}
