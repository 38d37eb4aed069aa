package fingerprint

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

// STFTParams describes a short-time Fourier analysis.
type STFTParams struct {
	FFTPoints    int
	WindowLength int
	Hop          int
	Window       WindowType
}

// analyzer transforms windowed frames with a reusable FFT plan. It is not
// safe for concurrent use and is never shared between calls.
type analyzer struct {
	fft    *fourier.FFT
	window []float64
	buf    []float64
}

func newAnalyzer(nfft int, window []float64) *analyzer {
	return &analyzer{
		fft:    fourier.NewFFT(nfft),
		window: window,
		buf:    make([]float64, nfft),
	}
}

// transform windows frame, zero-pads or truncates it to the FFT size and
// returns the nfft/2+1 non-negative frequency coefficients. If dst is not
// nil it must have length nfft/2+1.
func (a *analyzer) transform(dst []complex128, frame []float64) []complex128 {
	clear(a.buf)
	n := copy(a.buf, frame)
	for i := 0; i < n && i < len(a.window); i++ {
		a.buf[i] *= a.window[i]
	}
	return a.fft.Coefficients(dst, a.buf)
}

// Spectrum returns the nfft/2+1 non-negative frequency bins of the DFT of
// frame, zero-padded or truncated to nfft points. No window is applied.
func Spectrum(frame []float64, nfft int) []complex128 {
	return newAnalyzer(nfft, nil).transform(nil, frame)
}

// PowerSpectra returns |X|^2 / nfft for bins 0..nfft/2 of every frame after
// applying the analysis window w. The result has one row per frame. It is
// nil when frames is empty.
func PowerSpectra(frames [][]float64, nfft int, w WindowType) (*mat.Dense, error) {
	if nfft <= 0 {
		return nil, invalidf("fft_points must be positive, got %d", nfft)
	}
	if len(frames) == 0 {
		return nil, nil
	}
	win, err := Window(w, len(frames[0]))
	if err != nil {
		return nil, err
	}

	bins := nfft/2 + 1
	a := newAnalyzer(nfft, win)
	coeffs := make([]complex128, bins)
	power := mat.NewDense(len(frames), bins, nil)
	row := make([]float64, bins)
	for i, f := range frames {
		a.transform(coeffs, f)
		for k, c := range coeffs {
			re, im := real(c), imag(c)
			row[k] = (re*re + im*im) / float64(nfft)
		}
		power.SetRow(i, row)
	}
	return power, nil
}

// STFT computes the complex short-time Fourier transform of samples. The
// result is indexed [bin][frame] with FFTPoints/2+1 bins; frames follow
// the same framing as Frame.
func STFT(samples []float64, p STFTParams) ([][]complex128, error) {
	switch {
	case p.WindowLength <= 0:
		return nil, invalidf("window_length must be positive, got %d", p.WindowLength)
	case p.FFTPoints < p.WindowLength:
		return nil, invalidf("fft_points (%d) must be >= window_length (%d)", p.FFTPoints, p.WindowLength)
	case p.Hop <= 0:
		return nil, invalidf("hop must be positive, got %d", p.Hop)
	}
	win, err := Window(p.Window, p.WindowLength)
	if err != nil {
		return nil, err
	}

	frames := Frame(samples, p.WindowLength, p.Hop)
	bins := p.FFTPoints/2 + 1
	spec := make([][]complex128, bins)
	for k := range spec {
		spec[k] = make([]complex128, len(frames))
	}

	a := newAnalyzer(p.FFTPoints, win)
	coeffs := make([]complex128, bins)
	for t, f := range frames {
		a.transform(coeffs, f)
		for k, c := range coeffs {
			spec[k][t] = c
		}
	}
	return spec, nil
}

// Magnitude returns |x| element-wise.
func Magnitude(spec [][]complex128) [][]float64 {
	mag := make([][]float64, len(spec))
	for i, row := range spec {
		mag[i] = make([]float64, len(row))
		for j, c := range row {
			mag[i][j] = cmplx.Abs(c)
		}
	}
	return mag
}
