package scoring

import "math"

// Similarity method names accepted by Similarity.
const (
	MethodCosine    = "cosine"
	MethodDot       = "dot"
	MethodEuclidean = "euclidean"
)

// Similarity computes the similarity of two equal-length vectors using the
// named method. Cosine lies in [-1, 1], dot is unbounded, and euclidean is
// distance converted to a (0, 1] similarity. Mismatched lengths and
// unknown method names are invalid arguments.
func Similarity(a, b []float64, method string) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionError{Left: len(a), Right: len(b)}
	}

	switch method {
	case MethodCosine:
		return cosine(a, b), nil
	case MethodDot:
		return dot(a, b), nil
	case MethodEuclidean:
		distance := 0.0
		for i := range a {
			d := a[i] - b[i]
			distance += d * d
		}
		return 1.0 / (1.0 + math.Sqrt(distance)), nil
	default:
		return 0, &MethodError{Method: method}
	}
}

// SemanticSimilarityScore rescales the cosine similarity of two embeddings
// from [-1, 1] to [0, 1]. A zero-magnitude vector has no defined direction
// and scores 0. Mismatched dimensionality is an invalid argument.
func SemanticSimilarityScore(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionError{Left: len(a), Right: len(b)}
	}
	c := cosine(a, b)
	if c == 0 && (magnitude(a) == 0 || magnitude(b) == 0) {
		return 0, nil
	}
	return (c + 1) / 2, nil
}

func cosine(a, b []float64) float64 {
	normA := magnitude(a)
	normB := magnitude(b)
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot(a, b) / (normA * normB)
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func magnitude(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
