package utils

import (
	"math"

	"outfit-recommender/models"
)

// Normalize returns a unit-length copy of v and false when v has zero length
func Normalize(v []float32) ([]float32, bool) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, false
	}

	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out, true
}

// Dot returns the dot product of two vectors of equal length
func Dot(a, b []float32) float64 {
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}

// MatVec multiplies a row-major rows x dim matrix by v. For unit-norm rows and a
// unit-norm v the result is the cosine similarity of every row.
func MatVec(matrix []float32, dim int, v []float32) []float64 {
	if dim == 0 {
		return nil
	}
	rows := len(matrix) / dim
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = Dot(matrix[i*dim:(i+1)*dim], v)
	}
	return out
}

// ColorDistance is the Euclidean distance between two colors in RGB space
func ColorDistance(a, b models.Color) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// MeanColor returns the per-channel mean of colors. colors must not be empty.
func MeanColor(colors []models.Color) models.Color {
	var mean models.Color
	for _, c := range colors {
		for i := range c {
			mean[i] += c[i]
		}
	}
	n := float64(len(colors))
	for i := range mean {
		mean[i] /= n
	}
	return mean
}

// HarmonyScore maps a color distance to (0, 1]; closer colors score higher
func HarmonyScore(distance float64) float64 {
	return 1 / (1 + distance)
}

// ArgMax returns the index of the largest score; ties go to the first occurrence
func ArgMax(scores []float64) int {
	best := -1
	for i, s := range scores {
		if best < 0 || s > scores[best] {
			best = i
		}
	}
	return best
}
