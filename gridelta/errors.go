package gridelta

import "errors"

var (
	ErrNotApplied  = errors.New("gridelta: delta is not applied")
	ErrNotReverted = errors.New("gridelta: delta is not reverted")
	ErrAbsorbed    = errors.New("gridelta: delta was absorbed by an overlay")
	ErrSelfOverlay = errors.New("gridelta: cannot overlay a delta with itself")
)
