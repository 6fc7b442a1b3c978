package gen

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"golang.org/x/exp/rand"

	"blocksynth/internal/model"
	"blocksynth/internal/stats"
)

func runGenerator(t *testing.T, params model.Parameters, seed uint64) *model.Dataset {
	t.Helper()
	g := &Generator{Params: params, Rand: rand.New(rand.NewSource(seed))}
	ds, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return ds
}

func TestGeneratorShapes(t *testing.T) {
	params := model.Parameters{
		Samples:      15,
		XFeatures:    8,
		YFeatures:    11,
		Blocks:       3,
		Association:  model.AssociationLine,
		NoiseWithin:  0.25,
		NoiseBetween: 0.25,
	}
	ds := runGenerator(t, params, 1)

	if len(ds.X) != 8 {
		t.Fatalf("expected 8 X rows, got %d", len(ds.X))
	}
	if len(ds.Y) != 11 {
		t.Fatalf("expected 11 Y rows, got %d", len(ds.Y))
	}
	for i, row := range ds.X {
		if len(row) != 15 {
			t.Fatalf("X row %d: expected 15 samples, got %d", i, len(row))
		}
	}
	for j, row := range ds.Y {
		if len(row) != 15 {
			t.Fatalf("Y row %d: expected 15 samples, got %d", j, len(row))
		}
	}
	if len(ds.A) != 8 || len(ds.A[0]) != 11 {
		t.Fatalf("expected 8x11 association matrix, got %dx%d", len(ds.A), len(ds.A[0]))
	}
	if len(ds.Base) != 3 {
		t.Fatalf("expected 3 base rows, got %d", len(ds.Base))
	}
}

func TestGeneratorZeroNoiseLineScenario(t *testing.T) {
	params := model.Parameters{
		Samples:     6,
		XFeatures:   4,
		YFeatures:   4,
		Blocks:      2,
		Association: model.AssociationLine,
	}
	ds := runGenerator(t, params, 12)

	for k := range ds.Base {
		// With zero between-block noise every X feature equals the block's
		// base row exactly.
		for _, f := range ds.XBlocks[k] {
			if !stats.VectorEQ(ds.X[f], ds.Base[k]) {
				t.Fatalf("block %d: X feature %d differs from base row", k, f)
			}
		}
		// Every Y feature equals plus or minus the base row, one sign per
		// block.
		yFeats := ds.YBlocks[k]
		if len(yFeats) == 0 {
			continue
		}
		first := ds.Y[yFeats[0]]
		plus := stats.VectorEQ(first, ds.Base[k])
		minus := stats.VectorEQ(first, stats.VectorScaled(ds.Base[k], -1))
		if !plus && !minus {
			t.Fatalf("block %d: Y feature %d is neither +base nor -base", k, yFeats[0])
		}
		for _, f := range yFeats[1:] {
			if !stats.VectorEQ(ds.Y[f], first) {
				t.Fatalf("block %d: Y feature %d differs from its block's sign choice", k, f)
			}
		}
	}
}

func TestGeneratorZeroNoiseParabola(t *testing.T) {
	params := model.Parameters{
		Samples:     10,
		XFeatures:   6,
		YFeatures:   6,
		Blocks:      2,
		Association: model.AssociationParabola,
	}
	ds := runGenerator(t, params, 4)

	for k := range ds.Base {
		squared := stats.VectorMap(ds.Base[k], func(v float64) float64 { return v * v })
		for _, f := range ds.YBlocks[k] {
			plus := stats.VectorEQ(ds.Y[f], squared)
			minus := stats.VectorEQ(ds.Y[f], stats.VectorScaled(squared, -1))
			if !plus && !minus {
				t.Fatalf("block %d: Y feature %d is not ±base²", k, f)
			}
		}
	}
}

func TestGeneratorZeroNoiseLog(t *testing.T) {
	params := model.Parameters{
		Samples:     12,
		XFeatures:   5,
		YFeatures:   5,
		Blocks:      2,
		Association: model.AssociationLog,
	}
	ds := runGenerator(t, params, 8)

	for k := range ds.Base {
		for s, v := range ds.Base[k] {
			if v < 0 {
				t.Fatalf("block %d: base[%d] = %g, expected non-negative for log", k, s, v)
			}
		}
		logged := stats.VectorMap(ds.Base[k], math.Log)
		for _, f := range ds.YBlocks[k] {
			if !stats.VectorEQ(ds.Y[f], logged) {
				t.Fatalf("block %d: Y feature %d is not ln(base)", k, f)
			}
		}
	}
}

func TestGeneratorRejectsUnimplementedAssociations(t *testing.T) {
	for _, assoc := range []model.Association{model.AssociationMixed, model.AssociationSine, model.AssociationStep} {
		params := model.Parameters{
			Samples:     10,
			XFeatures:   4,
			YFeatures:   4,
			Blocks:      2,
			Association: assoc,
		}
		g := &Generator{Params: params, Rand: rand.New(rand.NewSource(1))}
		_, err := g.Run(context.Background())
		var uerr *UnsupportedAssociationError
		if !errors.As(err, &uerr) {
			t.Fatalf("association %q: expected UnsupportedAssociationError, got %v", assoc, err)
		}
		if uerr.Association != assoc {
			t.Fatalf("expected error to carry %q, got %q", assoc, uerr.Association)
		}
	}
}

func TestGeneratorDeterministicUnderSeed(t *testing.T) {
	params := model.Parameters{
		Samples:      20,
		XFeatures:    12,
		YFeatures:    9,
		Blocks:       4,
		Association:  model.AssociationLine,
		NoiseWithin:  0.5,
		NoiseBetween: 0.3,
	}
	first := runGenerator(t, params, 77)
	second := runGenerator(t, params, 77)

	if !reflect.DeepEqual(first.X, second.X) {
		t.Fatal("X differs between identically seeded runs")
	}
	if !reflect.DeepEqual(first.Y, second.Y) {
		t.Fatal("Y differs between identically seeded runs")
	}
	if !reflect.DeepEqual(first.A, second.A) {
		t.Fatal("A differs between identically seeded runs")
	}
}

func TestGeneratorRequiresRandSource(t *testing.T) {
	g := &Generator{Params: model.Parameters{Samples: 5, XFeatures: 2, YFeatures: 2, Blocks: 1}}
	if _, err := g.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing rand source")
	}
}

func TestGeneratorHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &Generator{
		Params: model.Parameters{Samples: 10, XFeatures: 6, YFeatures: 6, Blocks: 3},
		Rand:   rand.New(rand.NewSource(1)),
	}
	if _, err := g.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
