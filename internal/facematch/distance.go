package facematch

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// EuclideanDistance returns the L2 distance between two embeddings.
// Embeddings of different or zero length are infinitely far apart.
func EuclideanDistance(a, b Embedding) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.Inf(1)
	}
	return floats.Distance(a, b, 2)
}

// Normalize returns e scaled to unit L2 length. Zero vectors are returned as a copy.
// On unit vectors L2 distance d and cosine distance c relate by d² = 2c.
func Normalize(e Embedding) Embedding {
	out := make(Embedding, len(e))
	copy(out, e)
	if n := floats.Norm(out, 2); n > 0 {
		floats.Scale(1/n, out)
	}
	return out
}
