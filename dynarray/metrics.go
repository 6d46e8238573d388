package dynarray

// VectorMetrics is a snapshot of storage statistics.
type VectorMetrics struct {
	Size           int     // live elements
	Capacity       int     // allocated slots
	Utilization    float64 // Size / Capacity (0 when Capacity is 0)
	Reallocations  int     // buffer replacements since construction
	ElementsCopied int     // elements moved by those reallocations
}

// Utilization returns Len()/Cap(), or 0 for a zero-capacity vector.
func (v *Vector[T]) Utilization() float64 {
	if len(v.buf) == 0 {
		return 0
	}

	return float64(v.size) / float64(len(v.buf))
}

// Metrics returns a snapshot of the vector's storage statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:           v.size,
		Capacity:       len(v.buf),
		Utilization:    v.Utilization(),
		Reallocations:  v.reallocs,
		ElementsCopied: v.copied,
	}
}
