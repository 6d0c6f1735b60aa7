// Package scoring blends skill overlap, semantic similarity, and an
// experience signal into a single weighted score per candidate.
package scoring

import "fmt"

// DimensionError indicates two embedding vectors of different lengths.
type DimensionError struct {
	Left  int
	Right int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: %d vs %d", e.Left, e.Right)
}

// MethodError indicates an unknown similarity method name.
type MethodError struct {
	Method string
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("unknown similarity method: %q", e.Method)
}

// WeightsError indicates a malformed weight set.
type WeightsError struct {
	Message string
}

func (e *WeightsError) Error() string {
	return fmt.Sprintf("invalid scoring weights: %s", e.Message)
}
