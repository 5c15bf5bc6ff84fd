// Package qim embeds a binary carrier into wavelet coefficients by
// quantization-index modulation (QIM).
//
// What:
//
//   - EmbedSubband quantizes each coefficient c into bin = ⌊c/step⌋ and
//     re-centers it at bin·step + 0.75·step when the carrier sample is
//     +1, or bin·step + 0.25·step when it is −1. Every coefficient lands
//     in the upper or lower quarter-center of its own bin, encoding one
//     carrier bit.
//   - Embed runs the full pipeline per signal in a batch: decompose via
//     the caller's wavelet.Decomposer, select one subband (by default
//     the mid-frequency detail band), tile the payload into a carrier,
//     and produce a per-coefficient {Original, Watermarked} table.
//   - Detect is the inverse classifier, provided as an extension for
//     callers that also read marks back (see below).
//
// Why:
//
//   - QIM survives small perturbations up to a margin of step/4 around
//     each embedded value, and the original coefficients travel in the
//     output table so the caller can substitute watermarked values into
//     the full coefficient set and run the external inverse transform.
//     This package never reconstructs.
//
// Detect — extension, not part of the original embedding design:
//
//	The historical scheme defines embedding only. Detect classifies
//	each coefficient by folding it into its bin and comparing against
//	the bin midpoint: bit = 1 iff mod(c, step) ≥ 0.5·step. On an
//	unmodified watermarked subband this recovers the carrier exactly.
//
// Determinism: pure functions of (inputs, options); no hidden defaults —
// wavelet basis and level travel in Options, never in package state.
//
// Complexity: O(Σ len(subband)) over the batch, plus decomposer cost.
//
// Errors:
//
//   - ErrInvalidStep: quantization step ≤ 0.
//   - ErrEmptyBatch: no signals supplied to Embed.
//   - ErrNilDecomposer: Embed called without a transform.
//   - ErrBandIndex: selected subband outside the decomposition.
package qim
