package numeral

// Integer is the set of integer types the codec can encode from and decode
// into: every fixed-width and platform-width signed or unsigned integer,
// including named types whose underlying type is one of them.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// fromUint64 converts v into T, reporting whether v is exactly
// representable in T.
func fromUint64[T Integer](v uint64) (T, bool) {
	t := T(v)
	if t < 0 || uint64(t) != v {
		return 0, false
	}

	return t, true
}

// addChecked returns a+b, reporting whether the sum stayed within T's range.
func addChecked[T Integer](a, b T) (T, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}

	return sum, true
}

// subChecked returns a-b, reporting whether the difference stayed within
// T's range. For unsigned T any result below zero is out of range.
func subChecked[T Integer](a, b T) (T, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}

	return diff, true
}
