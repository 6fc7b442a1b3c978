package gen

import (
	"context"
	"errors"

	"golang.org/x/exp/rand"

	"blocksynth/internal/model"
)

// Generator produces one paired dataset from Parameters. Every random draw
// (block assignment, orthogonal sampling, noise, sign selection) consumes
// from Rand, so a fixed seed reproduces the dataset bit for bit.
type Generator struct {
	Params model.Parameters
	Rand   *rand.Rand
}

// Run executes the full pipeline: shape resolution, feature partitioning,
// orthonormal base, per-block synthesis, ground-truth matrix.
func (g *Generator) Run(ctx context.Context) (*model.Dataset, error) {
	if g.Rand == nil {
		return nil, errors.New("gen: rand source is required")
	}
	params, err := Normalize(g.Params)
	if err != nil {
		return nil, err
	}
	sh, err := resolveShape(params.Association)
	if err != nil {
		return nil, err
	}

	xBlocks := PartitionFeatures(g.Rand, params.XFeatures, params.Blocks)
	yBlocks := PartitionFeatures(g.Rand, params.YFeatures, params.Blocks)

	base, err := OrthonormalBase(g.Rand, params.Samples, params.Blocks, params.Association)
	if err != nil {
		return nil, err
	}

	x := make([][]float64, params.XFeatures)
	y := make([][]float64, params.YFeatures)
	syn := newSynthesizer(g.Rand, params, sh)
	for k := 0; k < params.Blocks; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		syn.fillBlock(base[k], xBlocks[k], yBlocks[k], x, y)
	}

	a := BuildAssociationMatrix(xBlocks, yBlocks, params.XFeatures, params.YFeatures)

	return &model.Dataset{
		Params:  params,
		X:       x,
		Y:       y,
		A:       a,
		Base:    base,
		XBlocks: xBlocks,
		YBlocks: yBlocks,
	}, nil
}
