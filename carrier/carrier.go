package carrier

import (
	"fmt"

	"github.com/katalvlaran/chaosmark/bitcodec"
)

// Carrier sample levels for 1-bits and 0-bits.
const (
	highLevel = +1.0
	lowLevel  = -1.0
)

// Generate expands vector into a ±1 square wave covering at least maxX
// positions.
//
// Algorithm:
//  1. Let n = len(vector). cycles = maxX/n + 1.
//  2. For cycle c in [0, cycles) and index i in [0, n), emit the sample
//     at position i + n·c: +1 if vector[i] == 1, else −1.
//  3. Append one final sample repeating the last emitted value, so the
//     wave extends flat past maxX (coverage guarantee for callers that
//     read position maxX−1 after truncation at any alignment).
//
// A bit value of 1 maps to +1; any other value maps to −1.
//
// Errors:
//   - ErrEmptyVector if n == 0.
//   - ErrNegativeLength if maxX < 0.
//
// Complexity: O(maxX + n).
func Generate(vector []bitcodec.Bit, maxX int) (Signal, error) {
	n := len(vector)
	if n == 0 {
		return Signal{}, ErrEmptyVector
	}
	if maxX < 0 {
		return Signal{}, fmt.Errorf("%w: %d", ErrNegativeLength, maxX)
	}

	cycles := maxX/n + 1
	values := make([]float64, 0, cycles*n+1)
	for c := 0; c < cycles; c++ {
		for i := 0; i < n; i++ {
			if vector[i] == 1 {
				values = append(values, highLevel)
			} else {
				values = append(values, lowLevel)
			}
		}
	}

	// Flat extension: one trailing sample repeating the final value.
	values = append(values, values[len(values)-1])

	return Signal{Values: values}, nil
}
