package utils

// Value dereferences v, yielding the zero value for nil. Used for the
// optional wire fields (refresh_token, expires_in) modeled as pointers.
func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
