package util

import "golang.org/x/exp/constraints"

func Choose[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

func Min[T constraints.Ordered](a, b T) T {
	return Choose(a < b, a, b)
}

func Max[T constraints.Ordered](a, b T) T {
	return Choose(a > b, a, b)
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}

// Filter keeps the elements fn accepts, preserving order.
func Filter[T any](ts []T, fn func(T) bool) []T {
	kept := make([]T, 0, len(ts))
	for _, t := range ts {
		if fn(t) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Reduce folds ts into acc starting from base.
func Reduce[T, V any](ts []T, acc func(t T, v V) V, base V) V {
	for _, t := range ts {
		base = acc(t, base)
	}
	return base
}
