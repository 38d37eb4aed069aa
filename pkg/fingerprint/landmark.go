package fingerprint

// Landmarks marks the maximum of every height×width tile of mag, indexed
// [row][col]. Tiles on the bottom and right edges may be smaller. Each tile
// yields exactly one bit; ties go to the first cell in row-major order, so a
// silent tile marks its top-left cell.
func Landmarks(mag [][]float64, height, width int) *BinaryMatrix {
	rows := len(mag)
	cols := 0
	if rows > 0 {
		cols = len(mag[0])
	}
	fp := newBinaryMatrix(rows, cols)
	if height <= 0 || width <= 0 {
		return fp
	}

	for top := 0; top < rows; top += height {
		bottom := min(top+height, rows)
		for left := 0; left < cols; left += width {
			right := min(left+width, cols)
			bi, bj := top, left
			best := mag[top][left]
			for i := top; i < bottom; i++ {
				for j := left; j < right; j++ {
					if mag[i][j] > best {
						best, bi, bj = mag[i][j], i, j
					}
				}
			}
			fp.set(bi, bj)
		}
	}
	return fp
}

// ExtractLandmarks computes the landmark fingerprint of samples. The result
// has FFTPoints/2+1 rows (frequency bins) and one column per frame.
func ExtractLandmarks(samples []float64, sampleRate int, cfg LandmarkConfig) (*BinaryMatrix, error) {
	if err := cfg.Validate(sampleRate); err != nil {
		return nil, err
	}

	spec, err := STFT(cfg.prepare(samples), STFTParams{
		FFTPoints:    cfg.FFTPoints,
		WindowLength: cfg.WindowLength,
		Hop:          cfg.Hop(),
		Window:       cfg.windowType(),
	})
	if err != nil {
		return nil, err
	}
	return Landmarks(Magnitude(spec), cfg.Height, cfg.Width), nil
}
