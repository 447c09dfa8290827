package common

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Last returns the last element of the slice and true, or the zero value and false if empty.
func Last[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[len(s)-1], true
}

// At returns s[i], or the zero value when i is out of range.
func At[S ~[]E, E any](s S, i int) E {
	if i < 0 || i >= len(s) {
		var zero E
		return zero
	}

	return s[i]
}

// FirstNonZero returns the first element that is not the zero value.
func FirstNonZero[S ~[]E, E comparable](s S) (E, bool) {
	var zero E
	for _, v := range s {
		if v != zero {
			return v, true
		}
	}

	return zero, false
}
