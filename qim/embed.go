package qim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chaosmark/bitcodec"
	"github.com/katalvlaran/chaosmark/carrier"
	"github.com/katalvlaran/chaosmark/wavelet"
)

// Quarter-bin offsets: a +1 carrier sample centers the coefficient in
// the upper quarter of its bin, a −1 sample in the lower quarter.
const (
	upperOffset = 0.75
	lowerOffset = 0.25
)

// EmbedSubband quantizes one subband against the carrier generated from
// vector. For each coefficient c at position i:
//
//	bin = ⌊c/step⌋
//	watermarked = bin·step + 0.75·step   if carrier[i] == +1
//	watermarked = bin·step + 0.25·step   otherwise
//
// The watermarked value always stays inside [bin·step, bin·step+step).
// Use this entrypoint when you own the DWT plumbing; Embed wraps it with
// decomposition and band selection.
//
// Errors: ErrInvalidStep when step ≤ 0; carrier errors propagated
// (notably carrier.ErrEmptyVector).
//
// Complexity: O(len(subband)).
func EmbedSubband(subband []float64, vector []bitcodec.Bit, step float64) ([]Coefficient, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidStep, step)
	}

	wave, err := carrier.Generate(vector, len(subband))
	if err != nil {
		return nil, err
	}
	samples := wave.Window(0, len(subband))

	table := make([]Coefficient, len(subband))
	for i, c := range subband {
		base := math.Floor(c/step) * step
		offset := lowerOffset * step
		if samples[i] == 1 {
			offset = upperOffset * step
		}
		table[i] = Coefficient{Original: c, Watermarked: base + offset}
	}

	return table, nil
}

// Embed runs the embedding pipeline over a batch of host signals:
// decompose each at opts.Level, select subband opts.Band, and quantize
// it against the carrier tiled from vector. Output tables correspond
// positionally to the input batch.
//
// Reconstruction is the caller's job: substitute Watermarked values into
// the full coefficient set and invoke the external inverse transform.
//
// Errors: ErrInvalidStep, ErrNilDecomposer, ErrEmptyBatch, ErrBandIndex;
// decomposer and carrier errors are wrapped with the batch position.
//
// Complexity: O(Σ len(selected subband)) plus decomposer cost.
func Embed(batch [][]float64, vector []bitcodec.Bit, dec wavelet.Decomposer, opts Options) ([][]Coefficient, error) {
	if opts.Step <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidStep, opts.Step)
	}
	if dec == nil {
		return nil, ErrNilDecomposer
	}
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}

	tables := make([][]Coefficient, len(batch))
	for s, signal := range batch {
		subbands, err := dec.Decompose(signal, opts.Level)
		if err != nil {
			return nil, fmt.Errorf("qim: decompose signal %d: %w", s, err)
		}
		if opts.Band < 0 || opts.Band >= len(subbands) {
			return nil, fmt.Errorf("%w: band %d of %d subbands", ErrBandIndex, opts.Band, len(subbands))
		}

		table, err := EmbedSubband(subbands[opts.Band], vector, opts.Step)
		if err != nil {
			return nil, fmt.Errorf("qim: embed signal %d: %w", s, err)
		}
		tables[s] = table
	}

	return tables, nil
}

// Detect classifies each coefficient of a watermarked subband back into
// a carrier bit: 1 when the coefficient sits in the upper half of its
// quantization bin (mod(c, step) ≥ 0.5·step), else 0.
//
// Extension — the historical scheme defines no decode path; Detect is
// the natural inverse of EmbedSubband's rule, exact on unmodified
// watermarked values and correct up to a perturbation margin of step/4.
//
// Errors: ErrInvalidStep when step ≤ 0.
//
// Complexity: O(len(subband)).
func Detect(subband []float64, step float64) ([]bitcodec.Bit, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidStep, step)
	}

	bits := make([]bitcodec.Bit, len(subband))
	for i, c := range subband {
		frac := c - math.Floor(c/step)*step // folded into [0, step)
		if frac >= 0.5*step {
			bits[i] = 1
		}
	}

	return bits, nil
}
