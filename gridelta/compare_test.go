package gridelta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	store := newMapStore()
	a := New[int](store)
	a.Set(0, 0, 1)
	a.Set(1, 0, 1)
	b := New[int](store)
	b.Set(1, 0, 2)
	b.Set(2, 0, 2)

	cmp := Compare(a, b)
	assert.ElementsMatch(t, []Coord{{0, 0}}, cmp.AOnly)
	assert.ElementsMatch(t, []Coord{{2, 0}}, cmp.BOnly)
	assert.ElementsMatch(t, []Coord{{1, 0}}, cmp.Both)

	c := New[int](store)
	c.Set(7, 7, 1)
	assert.Empty(t, Compare(a, c).Both)
	assert.Empty(t, Compare(a, New[int](store)).Both)
}

func TestRect(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Rect
		union Rect
		inter Rect
	}{
		{"disjoint", Rect{0, 0, 2, 2}, Rect{5, 5, 6, 6}, Rect{0, 0, 6, 6}, Rect{}},
		{"overlap", Rect{0, 0, 4, 4}, Rect{2, 1, 6, 3}, Rect{0, 0, 6, 4}, Rect{2, 1, 4, 3}},
		{"empty left", Rect{}, Rect{1, 1, 2, 2}, Rect{1, 1, 2, 2}, Rect{}},
		{"empty right", Rect{-3, -3, 0, 0}, Rect{}, Rect{-3, -3, 0, 0}, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.union, tt.a.Union(tt.b))
			assert.Equal(t, tt.inter, tt.a.Intersect(tt.b))
		})
	}

	r := Rect{0, 0, 2, 3}
	assert.True(t, r.Contains(1, 2))
	assert.False(t, r.Contains(2, 2))
	assert.False(t, r.Contains(-1, 0))
}
