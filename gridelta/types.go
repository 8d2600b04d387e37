package gridelta

import (
	"fmt"

	"github.com/kevinxiao27/terrain-delta/util"
)

type Coord struct {
	X, Y int
}

// Cell is the record kept for one coordinate. Old is read from the store
// the first time the coordinate is written and never changes afterwards.
type Cell[T any] struct {
	Coord
	Old T
	New T
}

// Store is the authoritative grid a delta reads originals from and writes
// values to. Coordinates passed to it have been bounds-checked by the caller.
type Store[T any] interface {
	ReadCell(x, y int) T
	WriteCell(x, y int, v T)
}

// StoreFuncs adapts a read/write closure pair to Store.
type StoreFuncs[T any] struct {
	Read  func(x, y int) T
	Write func(x, y int, v T)
}

func (s StoreFuncs[T]) ReadCell(x, y int) T {
	return s.Read(x, y)
}

func (s StoreFuncs[T]) WriteCell(x, y int, v T) {
	s.Write(x, y, v)
}

type State int

const (
	Applied  State = iota // store holds the New values
	Reverted              // store holds the Old values
	Absorbed              // records were folded into another delta
)

func (s State) String() string {
	switch s {
	case Applied:
		return "applied"
	case Reverted:
		return "reverted"
	case Absorbed:
		return "absorbed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Rect is a half-open rectangle [X0,X1) x [Y0,Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}

func (r Rect) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		X0: util.Min(r.X0, o.X0),
		Y0: util.Min(r.Y0, o.Y0),
		X1: util.Max(r.X1, o.X1),
		Y1: util.Max(r.Y1, o.Y1),
	}
}

// Intersect returns the overlap of r and o, empty if they are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		X0: util.Max(r.X0, o.X0),
		Y0: util.Max(r.Y0, o.Y0),
		X1: util.Min(r.X1, o.X1),
		Y1: util.Min(r.Y1, o.Y1),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}
