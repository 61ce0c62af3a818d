package util

import "cmp"

// InRange reports whether lo <= v <= hi.
func InRange[T cmp.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}
