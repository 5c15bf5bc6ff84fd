// Package wavelet declares the external discrete-wavelet-transform
// contract consumed by the embedding (qim) and fingerprinting (wavefeat)
// packages.
//
// chaosmark deliberately does NOT ship a DWT: the transform — wavelet
// basis, boundary-extension mode, numeric precision — is the caller's
// choice, supplied as a Decomposer (and, for reconstruction after
// embedding, a Reconstructor). Any library with standard orthogonal or
// biorthogonal wavelet semantics fits behind these two interfaces.
//
// Subband ordering contract:
//
//	Decompose(signal, level) returns exactly level+1 subbands:
//	index 0 is the coarsest approximation band, followed by detail
//	bands from coarse to fine. Reconstruct consumes the same layout.
//
// The wavelet/waveletest subpackage provides a minimal Haar lifting
// transform for tests and examples only; it is not production DWT code.
package wavelet
