package gen

// BuildAssociationMatrix derives the ground-truth matrix from the two block
// partitions: entry [i][j] is 1 exactly when X feature i and Y feature j sit
// in the same block index.
func BuildAssociationMatrix(xBlocks, yBlocks [][]int, xFeatureNum, yFeatureNum int) [][]int {
	a := make([][]int, xFeatureNum)
	for i := range a {
		a[i] = make([]int, yFeatureNum)
	}
	for k := range xBlocks {
		for _, xi := range xBlocks[k] {
			for _, yj := range yBlocks[k] {
				a[xi][yj] = 1
			}
		}
	}
	return a
}
