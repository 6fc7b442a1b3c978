package gen

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"blocksynth/internal/model"
)

// GramTolerance bounds the absolute deviation of the base's Gram matrix from
// the identity.
const GramTolerance = 1e-10

// OrthonormalBase draws blockNum pairwise-orthonormal signal rows of length
// sampleNum, distributed uniformly over the orthogonal group: a Gaussian
// matrix is QR-factorized and the Q columns are sign-corrected by the R
// diagonal before the first blockNum rows are taken. For log associations the
// rows are made element-wise non-negative so downstream logarithms stay
// defined.
func OrthonormalBase(rng *rand.Rand, sampleNum, blockNum int, assoc model.Association) ([][]float64, error) {
	if blockNum > sampleNum {
		return nil, &ValidationError{
			Field:  "blocks",
			Reason: fmt.Sprintf("must not exceed samples (%d)", sampleNum),
		}
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	raw := mat.NewDense(sampleNum, sampleNum, nil)
	for i := 0; i < sampleNum; i++ {
		for j := 0; j < sampleNum; j++ {
			raw.Set(i, j, normal.Rand())
		}
	}

	var qr mat.QR
	qr.Factorize(raw)
	var q, r mat.Dense
	qr.QTo(&q)
	qr.RTo(&r)

	// Row k of the sampled orthogonal matrix is column k of Q scaled by the
	// sign of R[k][k]; without the correction QR's sign convention skews the
	// sample away from Haar-uniform.
	base := mat.NewDense(blockNum, sampleNum, nil)
	for k := 0; k < blockNum; k++ {
		sign := 1.0
		if r.At(k, k) < 0 {
			sign = -1.0
		}
		for s := 0; s < sampleNum; s++ {
			base.Set(k, s, sign*q.At(s, k))
		}
	}

	if dev := gramDeviation(base); dev > GramTolerance {
		return nil, &NumericInvariantError{Check: "base gram matrix is identity", Deviation: dev}
	}

	rows := make([][]float64, blockNum)
	for k := 0; k < blockNum; k++ {
		row := make([]float64, sampleNum)
		for s := 0; s < sampleNum; s++ {
			v := base.At(k, s)
			if assoc == model.AssociationLog {
				v = math.Abs(v)
			}
			row[s] = v
		}
		rows[k] = row
	}
	return rows, nil
}

// gramDeviation returns the largest absolute entry of base*baseᵀ - I.
func gramDeviation(base *mat.Dense) float64 {
	n, _ := base.Dims()
	var gram mat.Dense
	gram.Mul(base, base.T())

	maxDev := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if dev := math.Abs(gram.At(i, j) - want); dev > maxDev {
				maxDev = dev
			}
		}
	}
	return maxDev
}
