// Package carrier expands a short bit pattern into a periodic ±1
// square-wave carrier of arbitrary target length.
//
// What:
//
//   - Generate repeats a bit vector cyclically, emitting +1 for a 1-bit
//     and −1 for a 0-bit, until at least maxX positions exist, then
//     appends one flat padding sample repeating the final value.
//
// Why:
//
//   - QIM embedding (package qim) needs one carrier sample per wavelet
//     coefficient; the payload is usually much shorter than the subband,
//     so the pattern is tiled across it.
//
// Contract:
//
//   - The produced signal always has at least maxX addressable positions
//     [0, maxX); callers index it positionally, never by timestamp.
//   - The carrier is periodic with period len(vector) up to the final
//     padding sample: Values[k] == Values[k%n] for every tiled position.
//   - Deterministic given (vector, maxX); no randomness involved.
//
// Complexity: O(maxX + len(vector)) time and memory.
//
// Errors:
//
//   - ErrEmptyVector: the bit pattern is empty.
//   - ErrNegativeLength: maxX is negative.
package carrier
