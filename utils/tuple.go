package utils

// Last returns the last element of s, or the zero value when s is empty.
func Last[Slice ~[]T, T any](s Slice) (last T) {
	if len(s) == 0 {
		return
	}

	return s[len(s)-1]
}
