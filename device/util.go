package device

import "golang.org/x/exp/constraints"

// zdefault returns Default if got is the zero value, got otherwise.
// Lifted from the teacher's glgl.zdefault, used here for the same
// zero-value-means-default convention Config's fields follow.
func zdefault[T constraints.Integer](got, Default T) T {
	if got == 0 {
		return Default
	}
	return got
}
