package dynarray

// Test bridge: exposes the spare region buf[Len():Cap()] so the external
// tests can check that vacated slots are zeroed.

// SpareSlots returns the slots past the live elements.
func SpareSlots[T any](v *Vector[T]) []T { return v.buf[v.size:] }
