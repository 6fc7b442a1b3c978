package stats

import "math"

// VectorEQ reports exact element-wise equality.
func VectorEQ(v1, v2 []float64) bool {
	if v2 == nil || len(v1) != len(v2) {
		return false
	}
	for i := range v1 {
		if v1[i] != v2[i] {
			return false
		}
	}
	return true
}

// VectorApproxEQ reports element-wise equality within an absolute tolerance.
func VectorApproxEQ(v1, v2 []float64, tol float64) bool {
	if v2 == nil || len(v1) != len(v2) {
		return false
	}
	for i := range v1 {
		if math.Abs(v1[i]-v2[i]) > tol {
			return false
		}
	}
	return true
}

// VectorScaled returns v scaled by c.
func VectorScaled(v []float64, c float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = c * x
	}
	return out
}

// VectorMap returns f applied element-wise to v.
func VectorMap(v []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = f(x)
	}
	return out
}
