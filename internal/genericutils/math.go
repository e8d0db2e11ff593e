package genericutils

import "golang.org/x/exp/constraints"

// Clamp limits v to the closed range [lo, hi]. When hi < lo, lo wins.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
