package gridelta

import (
	"cmp"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/kevinxiao27/terrain-delta/util"
	"github.com/sanity-io/litter"
)

// Delta is an undo log of sparse writes already applied to a Store.
// It is not safe for concurrent use.
type Delta[T any] struct {
	store Store[T]
	cells map[Coord]*Cell[T]
	state State
}

func New[T any](store Store[T]) *Delta[T] {
	return &Delta[T]{
		store: store,
		cells: make(map[Coord]*Cell[T]),
		state: Applied,
	}
}

// Set writes v to the store at (x, y) and records the edit. The value the
// store held before this delta first touched (x, y) is kept as Old.
// Set is only meaningful while the delta is Applied.
func (d *Delta[T]) Set(x, y int, v T) {
	c := Coord{x, y}
	cell, ok := d.cells[c]
	if !ok {
		cell = &Cell[T]{Coord: c, Old: d.store.ReadCell(x, y)}
		d.cells[c] = cell
	}
	cell.New = v
	d.store.WriteCell(x, y, v)
}

// Undo restores the Old value of every recorded cell.
func (d *Delta[T]) Undo() error {
	if err := d.expect(Applied, ErrNotApplied); err != nil {
		return err
	}
	d.writeAll(true)
	d.state = Reverted
	return nil
}

// Redo writes the New value of every recorded cell again.
func (d *Delta[T]) Redo() error {
	if err := d.expect(Reverted, ErrNotReverted); err != nil {
		return err
	}
	d.writeAll(false)
	d.state = Applied
	return nil
}

// OverlayWith folds other into d so that d undoes and redoes the combined
// edit. The store is not touched: other's writes must already be applied.
// Afterwards other is Absorbed and must be discarded.
func (d *Delta[T]) OverlayWith(other *Delta[T]) error {
	if other == d {
		return ErrSelfOverlay
	}
	if err := d.expect(Applied, ErrNotApplied); err != nil {
		return err
	}
	if err := other.expect(Applied, ErrNotApplied); err != nil {
		return err
	}

	for c, oc := range other.cells {
		if cell, ok := d.cells[c]; ok {
			cell.New = oc.New
			continue
		}
		cp := *oc
		d.cells[c] = &cp
	}

	other.cells = make(map[Coord]*Cell[T])
	other.state = Absorbed
	return nil
}

func (d *Delta[T]) expect(want State, err error) error {
	if d.state == Absorbed {
		return ErrAbsorbed
	}
	if d.state != want {
		return err
	}
	return nil
}

func (d *Delta[T]) writeAll(old bool) {
	for _, cell := range d.cells {
		d.store.WriteCell(cell.X, cell.Y, util.Choose(old, cell.Old, cell.New))
	}
}

func (d *Delta[T]) State() State {
	return d.state
}

func (d *Delta[T]) Len() int {
	return len(d.cells)
}

func (d *Delta[T]) Cell(x, y int) (Cell[T], bool) {
	cell, ok := d.cells[Coord{x, y}]
	if !ok {
		return Cell[T]{}, false
	}
	return *cell, true
}

// Cells returns copies of the records ordered by row, then column.
func (d *Delta[T]) Cells() []Cell[T] {
	out := make([]Cell[T], 0, len(d.cells))
	for _, cell := range d.cells {
		out = append(out, *cell)
	}
	slices.SortFunc(out, func(a, b Cell[T]) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	return out
}

func (d *Delta[T]) Touched() mapset.Set[Coord] {
	set := mapset.NewThreadUnsafeSetWithSize[Coord](len(d.cells))
	for c := range d.cells {
		set.Add(c)
	}
	return set
}

// Bounds returns the smallest rectangle holding every recorded coordinate.
func (d *Delta[T]) Bounds() (Rect, bool) {
	var r Rect
	for c := range d.cells {
		r = r.Union(Rect{c.X, c.Y, c.X + 1, c.Y + 1})
	}
	return r, !r.Empty()
}

// Dump renders the records for debugging.
func (d *Delta[T]) Dump() string {
	opts := litter.Options{
		HidePrivateFields: false,
		Compact:           false,
		StripPackageNames: true,
	}
	return opts.Sdump(struct {
		State string
		Cells []Cell[T]
	}{d.state.String(), d.Cells()})
}
