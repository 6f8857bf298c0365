package util

// Ptr returns a pointer to the given value.
// This is a generic helper for creating pointers to literals.
func Ptr[T any](v T) *T {
	return &v
}

// First returns a pointer to the first element, or nil for an empty slice.
func First[T any](values []T) *T {
	if len(values) == 0 {
		return nil
	}
	return Ptr(values[0])
}
