package wavefeat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chaosmark/wavelet"
)

// momentsPerBand is the fixed feature block width per subband.
const momentsPerBand = 6

// Extract decomposes signal at the given level and concatenates the
// six-moment block of every subband, coarsest approximation first.
// The result has length 6·(level+1).
//
// Errors: ErrEmptySignal, ErrNilDecomposer, ErrLevel, ErrSubbandCount;
// decomposer failures are wrapped.
//
// Complexity: O(len(signal)) per level, plus decomposer cost.
func Extract(signal []float64, dec wavelet.Decomposer, level int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if dec == nil {
		return nil, ErrNilDecomposer
	}
	if level < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrLevel, level)
	}

	subbands, err := dec.Decompose(signal, level)
	if err != nil {
		return nil, fmt.Errorf("wavefeat: decompose: %w", err)
	}
	if len(subbands) != level+1 {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSubbandCount, len(subbands), level+1)
	}

	features := make([]float64, 0, momentsPerBand*(level+1))
	for _, band := range subbands {
		mean, std, lo, hi, skew, kurt := Moments(band)
		features = append(features, mean, std, lo, hi, skew, kurt)
	}

	return features, nil
}

// Moments computes the six fingerprint statistics of one subband in
// fixed order: mean, population standard deviation, minimum, maximum,
// skewness (m3/σ³) and excess kurtosis (m4/σ⁴ − 3).
//
// A zero-variance band reports skewness and kurtosis 0; an empty band
// reports all zeros. Single deterministic pass for the extrema plus two
// accumulation passes for the moments.
//
// Complexity: O(len(band)).
func Moments(band []float64) (mean, std, lo, hi, skew, kurt float64) {
	n := len(band)
	if n == 0 {
		return 0, 0, 0, 0, 0, 0
	}

	lo, hi = band[0], band[0]
	var sum float64
	for _, v := range band {
		sum += v
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	invN := 1.0 / float64(n)
	mean = sum * invN

	var m2, m3, m4 float64
	for _, v := range band {
		d := v - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	m2 *= invN
	m3 *= invN
	m4 *= invN

	std = math.Sqrt(m2)
	if m2 > 0 {
		skew = m3 / (std * m2)  // m3 / σ³
		kurt = m4/(m2*m2) - 3.0 // m4 / σ⁴ − 3
	}

	return mean, std, lo, hi, skew, kurt
}
