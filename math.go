package flownoise

import "golang.org/x/exp/constraints"

// Min returns the smallest of the given values.
func Min[T constraints.Ordered](first T, rest ...T) T {
	acc := first

	for _, v := range rest {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest of the given values.
func Max[T constraints.Ordered](first T, rest ...T) T {
	acc := first

	for _, v := range rest {
		if v > acc {
			acc = v
		}
	}
	return acc
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Min(Max(v, lo), hi)
}

// Remap linearly maps v from the range [inMin, inMax] onto [outMin, outMax].
// Values outside the input range are extrapolated, not clamped.
func Remap[T constraints.Float](v, inMin, inMax, outMin, outMax T) T {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}
