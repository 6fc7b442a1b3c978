package gen

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"blocksynth/internal/model"
)

// shape couples an association form with its Y-side transform. The transform
// receives the per-block correlation sign and one base value.
type shape struct {
	transform func(sign, v float64) float64
}

var shapes = map[model.Association]shape{
	model.AssociationLine: {
		transform: func(sign, v float64) float64 { return sign * v },
	},
	model.AssociationParabola: {
		transform: func(sign, v float64) float64 { return sign * v * v },
	},
	model.AssociationLog: {
		transform: func(_, v float64) float64 { return math.Log(v) },
	},
}

// resolveShape fails fast for recognized-but-unimplemented associations so no
// undefined data is ever emitted.
func resolveShape(assoc model.Association) (shape, error) {
	s, ok := shapes[assoc]
	if !ok {
		return shape{}, &UnsupportedAssociationError{Association: assoc}
	}
	return s, nil
}

// synthesizer derives block feature rows from base rows, applying
// between-block noise (one scalar draw per block side), the shape transform,
// and within-block noise (one draw per feature per sample).
type synthesizer struct {
	rng     *rand.Rand
	params  model.Parameters
	shape   shape
	within  distuv.Normal
	between distuv.Normal
}

func newSynthesizer(rng *rand.Rand, params model.Parameters, sh shape) *synthesizer {
	return &synthesizer{
		rng:     rng,
		params:  params,
		shape:   sh,
		within:  distuv.Normal{Mu: 0, Sigma: params.NoiseWithinStd, Src: rng},
		between: distuv.Normal{Mu: 0, Sigma: params.NoiseBetweenStd, Src: rng},
	}
}

// fillBlock writes the X and Y rows of one block in place.
func (s *synthesizer) fillBlock(baseRow []float64, xFeatures, yFeatures []int, x, y [][]float64) {
	sampleNum := len(baseRow)

	deltaX := s.between.Rand()
	baseX := make([]float64, sampleNum)
	for i, v := range baseRow {
		baseX[i] = v + s.params.NoiseBetween*deltaX
	}
	for _, f := range xFeatures {
		row := make([]float64, sampleNum)
		for i, v := range baseX {
			row[i] = v + s.params.NoiseWithin*s.within.Rand()
		}
		x[f] = row
	}

	// One sign per block, skewed toward positive correlation.
	sign := 1.0
	if s.rng.Float64() < 0.4 {
		sign = -1.0
	}

	deltaY := s.between.Rand()
	baseY := make([]float64, sampleNum)
	for i, v := range baseRow {
		shifted := v + s.params.NoiseBetween*deltaY
		if s.params.Association == model.AssociationLog {
			shifted = math.Abs(shifted)
		}
		baseY[i] = shifted
	}
	for _, f := range yFeatures {
		row := make([]float64, sampleNum)
		for i, v := range baseY {
			row[i] = s.shape.transform(sign, v) + s.params.NoiseWithin*s.within.Rand()
		}
		y[f] = row
	}
}
