// Package chaosmark is a small, deterministic watermarking kernel:
// chaotic pixel scrambling plus wavelet-domain payload embedding,
// built entirely from pure value-semantics operations.
//
// 🚀 What is chaosmark?
//
//	A compact library that brings together:
//		• Payload plumbing: text ↔ bit vectors, XOR masking (bitcodec)
//		• Carrier synthesis: periodic ±1 square waves from bit patterns (carrier)
//		• Chaotic scrambling: logistic-map permutations over pixel buffers (scramble)
//		• Seed material: timestamp corpora & SHA-256 fingerprints (dateseed)
//		• QIM embedding: quantization-index modulation in DWT subbands (qim)
//		• Subband fingerprints: fixed-order statistical feature vectors (wavefeat)
//		• Key persistence: YAML-encoded permutation records (keystore)
//
// ✨ Why choose chaosmark?
//
//   - Deterministic — same inputs ⇒ identical outputs, on every platform
//   - Pure values — no hidden state, no ambient defaults, no logging
//   - Explicit errors — sentinel errors only, never panics on bad input
//   - Bring your own DWT — the transform is an interface (wavelet), not a bundled codec
//
// The wavelet transform itself is deliberately out of scope: every operation
// that touches subbands consumes a wavelet.Decomposer supplied by the caller.
// chaosmark makes no confidentiality claims — the chaotic permutation is a
// reversible shuffle keyed by (r, x0), not an encryption scheme.
//
// All operations are safe for concurrent use from multiple goroutines: no
// package holds mutable shared state. The one exception callers must manage
// is *math/rand.Rand (not goroutine-safe) passed into dateseed.Timestamps.
//
// Under the hood, everything is organized in flat subpackages:
//
//	bitcodec/ — text↔bit codec and XOR combination
//	carrier/  — square-wave carrier expansion
//	scramble/ — logistic-map permutation cipher (gather/scatter pair)
//	dateseed/ — timestamp generation & SHA-256 seed derivation
//	wavelet/  — external DWT contract (interfaces only)
//	qim/      — quantization-index-modulation embedder & detector
//	wavefeat/ — per-subband statistical feature extraction
//	keystore/ — persisted permutation records (YAML)
//
// Quick sketch:
//
//	text ──bitcodec──▶ bits ──carrier──▶ ±1 wave ──qim──▶ marked subband
//	image ──scramble.Encrypt(p)──▶ ciphertext ──scramble.Decrypt(p)──▶ image
//
// See examples/ for runnable end-to-end scenarios.
package chaosmark
