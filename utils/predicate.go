// Package utils holds the small generic helpers shared across the
// module: range guards for numeric narrowing and tuple conveniences for
// multi-result expressions.
package utils

// number covers the kinds the conversion layer range-checks before
// narrowing.
type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange reports whether value lies within [min, max], both ends
// inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}
