package gen

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestPartitionFeaturesCoversEveryIndexOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	blocks := PartitionFeatures(rng, 100, 7)

	if len(blocks) != 7 {
		t.Fatalf("expected 7 blocks, got %d", len(blocks))
	}
	seen := make([]int, 100)
	total := 0
	for _, indices := range blocks {
		for _, idx := range indices {
			if idx < 0 || idx >= 100 {
				t.Fatalf("index %d out of range", idx)
			}
			seen[idx]++
			total++
		}
	}
	if total != 100 {
		t.Fatalf("expected 100 assigned indices, got %d", total)
	}
	for idx, count := range seen {
		if count != 1 {
			t.Fatalf("index %d assigned %d times", idx, count)
		}
	}
}

func TestPartitionFeaturesContiguousRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	blocks := PartitionFeatures(rng, 40, 4)

	next := 0
	for b, indices := range blocks {
		for i, idx := range indices {
			if idx != next {
				t.Fatalf("block %d position %d: expected contiguous index %d, got %d", b, i, next, idx)
			}
			next++
		}
	}
	if next != 40 {
		t.Fatalf("expected ranges to cover 40 indices, covered %d", next)
	}
}

func TestPartitionFeaturesSizesSumToFeatureNum(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	blocks := PartitionFeatures(rng, 57, 5)
	sum := 0
	for _, size := range BlockSizes(blocks) {
		sum += size
	}
	if sum != 57 {
		t.Fatalf("expected block sizes to sum to 57, got %d", sum)
	}
}

func TestPartitionFeaturesSingleBlock(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	blocks := PartitionFeatures(rng, 6, 1)
	if len(blocks) != 1 || len(blocks[0]) != 6 {
		t.Fatalf("expected one block with all 6 features, got %v", blocks)
	}
}

func TestPartitionFeaturesToleratesEmptyBlocks(t *testing.T) {
	// More blocks than features forces at least two empty blocks; the
	// partition invariant must still hold.
	rng := rand.New(rand.NewSource(9))
	blocks := PartitionFeatures(rng, 3, 5)

	total := 0
	empty := 0
	for _, indices := range blocks {
		total += len(indices)
		if len(indices) == 0 {
			empty++
		}
	}
	if total != 3 {
		t.Fatalf("expected 3 assigned indices, got %d", total)
	}
	if empty < 2 {
		t.Fatalf("expected at least 2 empty blocks, got %d", empty)
	}
}

func TestPartitionFeaturesDeterministicUnderSeed(t *testing.T) {
	first := PartitionFeatures(rand.New(rand.NewSource(42)), 80, 6)
	second := PartitionFeatures(rand.New(rand.NewSource(42)), 80, 6)

	if len(first) != len(second) {
		t.Fatalf("block counts differ: %d vs %d", len(first), len(second))
	}
	for b := range first {
		if len(first[b]) != len(second[b]) {
			t.Fatalf("block %d sizes differ: %d vs %d", b, len(first[b]), len(second[b]))
		}
		for i := range first[b] {
			if first[b][i] != second[b][i] {
				t.Fatalf("block %d index %d differs: %d vs %d", b, i, first[b][i], second[b][i])
			}
		}
	}
}
