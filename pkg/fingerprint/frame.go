package fingerprint

// NumFrames returns how many full frames of the given length fit into n
// samples when advancing by hop. The trailing partial frame is dropped.
func NumFrames(n, length, hop int) int {
	if length <= 0 || hop <= 0 || n < length {
		return 0
	}
	return 1 + (n-length)/hop
}

// Frame splits samples into overlapping frames of the given length, each
// starting hop samples after the previous one. Frames are copies and never
// alias samples.
func Frame(samples []float64, length, hop int) [][]float64 {
	frames := make([][]float64, NumFrames(len(samples), length, hop))
	for i := range frames {
		start := i * hop
		f := make([]float64, length)
		copy(f, samples[start:start+length])
		frames[i] = f
	}
	return frames
}
