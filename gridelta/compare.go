package gridelta

type Comparison struct {
	AOnly []Coord
	BOnly []Coord
	Both  []Coord
}

// Compare splits the coordinates touched by a and b. Slices are unordered.
func Compare[T any](a, b *Delta[T]) Comparison {
	aSet := a.Touched()
	bSet := b.Touched()

	return Comparison{
		AOnly: aSet.Difference(bSet).ToSlice(),
		BOnly: bSet.Difference(aSet).ToSlice(),
		Both:  aSet.Intersect(bSet).ToSlice(),
	}
}
