package gen

import "golang.org/x/exp/rand"

// PartitionFeatures assigns featureNum feature indices to blockNum blocks.
//
// Sizes are drawn first (one uniform block pick per feature), then contiguous
// index ranges are handed out in block-id order. Features do not keep their
// individual draws; only the size profile is random. Blocks may come out
// empty.
func PartitionFeatures(rng *rand.Rand, featureNum, blockNum int) [][]int {
	sizes := make([]int, blockNum)
	for i := 0; i < featureNum; i++ {
		sizes[rng.Intn(blockNum)]++
	}

	blocks := make([][]int, blockNum)
	next := 0
	for b, size := range sizes {
		indices := make([]int, size)
		for i := range indices {
			indices[i] = next
			next++
		}
		blocks[b] = indices
	}
	return blocks
}

// BlockSizes reports the per-block feature counts of a partition.
func BlockSizes(blocks [][]int) []int {
	sizes := make([]int, len(blocks))
	for b, indices := range blocks {
		sizes[b] = len(indices)
	}
	return sizes
}
