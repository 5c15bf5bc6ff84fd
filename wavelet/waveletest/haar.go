// Package waveletest provides a minimal 1-D Haar lifting transform
// implementing the wavelet.Decomposer / wavelet.Reconstructor contract.
//
// It exists so tests and runnable examples can exercise subband
// consumers without a numerics dependency. It is deliberately simple:
// odd-length approximation bands are padded by repeating the final
// sample, so Reconstruct is only an exact inverse when every level has
// even length (e.g. power-of-two inputs). Do not use it as a production
// DWT.
package waveletest

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptySignal indicates an empty decomposition input.
	ErrEmptySignal = errors.New("waveletest: signal must be non-empty")
	// ErrLevel indicates a decomposition level below 1.
	ErrLevel = errors.New("waveletest: level must be at least 1")
	// ErrSubbands indicates a malformed subband layout for Reconstruct.
	ErrSubbands = errors.New("waveletest: malformed subband layout")
)

// Haar is a stateless orthonormal Haar transform.
type Haar struct{}

// Decompose splits signal into level+1 subbands: the coarsest
// approximation first, then detail bands coarse→fine.
func (Haar) Decompose(signal []float64, level int) ([][]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if level < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrLevel, level)
	}

	approx := append([]float64(nil), signal...)
	details := make([][]float64, 0, level)
	for l := 0; l < level; l++ {
		if len(approx)%2 == 1 {
			approx = append(approx, approx[len(approx)-1])
		}
		half := len(approx) / 2
		a := make([]float64, half)
		d := make([]float64, half)
		for i := 0; i < half; i++ {
			s0, s1 := approx[2*i], approx[2*i+1]
			a[i] = (s0 + s1) / math.Sqrt2
			d[i] = (s0 - s1) / math.Sqrt2
		}
		details = append(details, d)
		approx = a
	}

	out := make([][]float64, 0, level+1)
	out = append(out, approx)
	for i := level - 1; i >= 0; i-- {
		out = append(out, details[i])
	}

	return out, nil
}

// Reconstruct inverts Decompose for even-length levels.
func (Haar) Reconstruct(subbands [][]float64) ([]float64, error) {
	if len(subbands) < 2 {
		return nil, fmt.Errorf("%w: need approximation plus at least one detail band", ErrSubbands)
	}

	approx := append([]float64(nil), subbands[0]...)
	for i := 1; i < len(subbands); i++ {
		d := subbands[i]
		if len(d) != len(approx) {
			return nil, fmt.Errorf("%w: band %d has %d samples, want %d",
				ErrSubbands, i, len(d), len(approx))
		}
		next := make([]float64, 2*len(approx))
		for j := range approx {
			next[2*j] = (approx[j] + d[j]) / math.Sqrt2
			next[2*j+1] = (approx[j] - d[j]) / math.Sqrt2
		}
		approx = next
	}

	return approx, nil
}
