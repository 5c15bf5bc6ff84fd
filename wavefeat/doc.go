// Package wavefeat condenses wavelet subbands into fixed-length
// statistical fingerprint vectors.
//
// What:
//
//   - Extract decomposes a signal into level+1 subbands through the
//     caller's wavelet.Decomposer and computes, per subband and in fixed
//     order: mean, standard deviation, minimum, maximum, skewness,
//     kurtosis. Subband blocks are concatenated coarsest-first into a
//     flat vector of length 6·(level+1).
//   - Moments is the per-subband kernel, exported for callers composing
//     custom fingerprints.
//
// Why:
//
//   - Downstream verification compares signals by these fingerprints
//     instead of raw samples; six moments per frequency scale capture
//     shape and spread at a fixed, classifier-friendly width.
//
// Definitions:
//
//   - Standard deviation uses population moments (divide by n).
//   - Skewness is m3/σ³, kurtosis is excess kurtosis m4/σ⁴ − 3, both
//     over population moments.
//   - Degenerate subbands (σ = 0, including single-sample bands) report
//     skewness and kurtosis 0 rather than NaN, keeping vectors finite.
//
// Pure and deterministic; no side effects; single fixed-order pass per
// subband.
//
// Errors:
//
//   - ErrEmptySignal: empty input signal.
//   - ErrNilDecomposer: no transform supplied.
//   - ErrLevel: decomposition level below 1.
//   - ErrSubbandCount: decomposer broke the level+1 layout contract.
package wavefeat
