package utils

// Second discards the first of two values, lifting a two-result call
// into an expression position.
func Second[T any](_ any, t T) T { return t }

// Unpack2 splits a slice into its first two elements; elements the slice
// does not have stay zero-valued.
func Unpack2[Slice ~[]T, T any](s Slice) (first, second T) {
	if len(s) > 0 {
		first = s[0]
	}
	if len(s) > 1 {
		second = s[1]
	}
	return
}
