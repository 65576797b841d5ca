package util

// Map returns f applied to every element of slice, in order.
func Map[T any, R any](slice []T, f func(T) R) []R {
	result := make([]R, 0, len(slice))
	for _, v := range slice {
		result = append(result, f(v))
	}
	return result
}

// Filter returns the elements of slice for which keep reports true. The
// result is never nil so callers can range or len it without checks.
func Filter[T any](slice []T, keep func(T) bool) []T {
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}
