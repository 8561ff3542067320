package ptr

func Of[T any](v T) *T {
	return &v
}

// OrNil returns nil for the zero value
func OrNil[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
