package helpers

// Ptr returns a pointer to the provided value.
func Ptr[T any](val T) *T {
	return &val
}

// PtrNonEmpty returns a pointer to val, or nil when val is the empty string.
// Used when mapping upstream fields that should surface as JSON null rather
// than "".
func PtrNonEmpty(val string) *string {
	if val == "" {
		return nil
	}
	return &val
}

// Value returns the dereferenced value or the zero value if nil.
func Value[T any](val *T) T {
	if val == nil {
		var zero T
		return zero
	}
	return *val
}

// ValueOr returns the dereferenced value or the provided default if nil.
func ValueOr[T any](val *T, fallback T) T {
	if val == nil {
		return fallback
	}
	return *val
}
