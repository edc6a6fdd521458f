package common

// Coalesce returns the first argument that is not the zero value of T.
// Used for layered defaults such as per-frame, per-script and package-wide settings.
// If every argument is zero, the zero value is returned.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
