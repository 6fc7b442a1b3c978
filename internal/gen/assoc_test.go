package gen

import (
	"context"
	"testing"

	"golang.org/x/exp/rand"

	"blocksynth/internal/model"
)

func TestBuildAssociationMatrixMarksCartesianProducts(t *testing.T) {
	xBlocks := [][]int{{0, 1}, {2}, {3, 4}}
	yBlocks := [][]int{{0}, {1, 2}, {}}

	a := BuildAssociationMatrix(xBlocks, yBlocks, 5, 3)

	want := map[[2]int]bool{
		{0, 0}: true, {1, 0}: true, // block 0: {0,1} x {0}
		{2, 1}: true, {2, 2}: true, // block 1: {2} x {1,2}
		// block 2 has no Y features, contributes nothing
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 3; j++ {
			expected := 0
			if want[[2]int{i, j}] {
				expected = 1
			}
			if a[i][j] != expected {
				t.Fatalf("A[%d][%d] = %d, want %d", i, j, a[i][j], expected)
			}
		}
	}
}

func TestGeneratedAssociationMatrixMatchesPartitions(t *testing.T) {
	g := &Generator{
		Params: model.Parameters{
			Samples:     6,
			XFeatures:   4,
			YFeatures:   4,
			Blocks:      2,
			Association: model.AssociationLine,
		},
		Rand: rand.New(rand.NewSource(12)),
	}
	ds, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	blockOfX := make(map[int]int)
	for k, indices := range ds.XBlocks {
		for _, i := range indices {
			blockOfX[i] = k
		}
	}
	blockOfY := make(map[int]int)
	for k, indices := range ds.YBlocks {
		for _, j := range indices {
			blockOfY[j] = k
		}
	}

	ones := 0
	for i := range ds.A {
		for j := range ds.A[i] {
			expected := 0
			if blockOfX[i] == blockOfY[j] {
				expected = 1
			}
			if ds.A[i][j] != expected {
				t.Fatalf("A[%d][%d] = %d, want %d", i, j, ds.A[i][j], expected)
			}
			ones += ds.A[i][j]
		}
	}

	// The count of ones is exactly the sum over blocks of |X_k| * |Y_k|.
	wantOnes := 0
	for k := range ds.XBlocks {
		wantOnes += len(ds.XBlocks[k]) * len(ds.YBlocks[k])
	}
	if ones != wantOnes {
		t.Fatalf("expected %d ones in A, got %d", wantOnes, ones)
	}
}
