package push

// Number covers the built-in numeric types.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sum adds up every element of p. An empty producer sums to zero.
func Sum[T Number](p Producer[T]) T {
	return Fold(p, T(0), func(total, v T) T {
		return total + v
	})
}

// Min returns the smallest element of p, or false if p is empty.
func Min[T Number](p Producer[T]) (T, bool) {
	var min T
	first := true
	ForEach(p, func(v T) {
		if first || v < min {
			min = v
			first = false
		}
	})
	if first {
		var zero T
		return zero, false
	}
	return min, true
}

// Max returns the largest element of p, or false if p is empty.
func Max[T Number](p Producer[T]) (T, bool) {
	var max T
	first := true
	ForEach(p, func(v T) {
		if first || v > max {
			max = v
			first = false
		}
	})
	if first {
		var zero T
		return zero, false
	}
	return max, true
}
