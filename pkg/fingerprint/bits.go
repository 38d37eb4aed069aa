package fingerprint

import "gonum.org/v1/gonum/mat"

// DeriveBits turns a [frames][bands] energy matrix into a
// [frames][bands-1] fingerprint. For frame i >= 1 and band j:
//
//	bit = (E[i][j] - E[i][j+1]) - (E[i-1][j] - E[i-1][j-1]) > 0
//
// Frame 0 has no predecessor and stays zero. The lower neighbour of band 0
// is resolved by policy.
func DeriveBits(energy mat.Matrix, policy BoundaryPolicy) *BinaryMatrix {
	frames, bands := energy.Dims()
	fp := newBinaryMatrix(frames, max(bands-1, 0))
	for i := 1; i < frames; i++ {
		for j := 0; j < fp.cols; j++ {
			cur := energy.At(i, j) - energy.At(i, j+1)
			prev := energy.At(i-1, j) - lowerNeighbour(energy, i-1, j, policy)
			if cur-prev > 0 {
				fp.set(i, j)
			}
		}
	}
	return fp
}

func lowerNeighbour(energy mat.Matrix, i, j int, policy BoundaryPolicy) float64 {
	if j > 0 {
		return energy.At(i, j-1)
	}
	if policy == BoundaryWrap {
		_, bands := energy.Dims()
		return energy.At(i, bands-1)
	}
	return 0
}
