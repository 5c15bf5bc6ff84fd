// Package dateseed produces deterministic seed and verification material
// from timestamp strings.
//
// What:
//
//   - Timestamps generates n independent "YYYY/MM/DD HH:MM:SS" strings
//     from a caller-supplied RNG.
//   - HashToVector maps any string to its 32-byte SHA-256 digest, used as
//     keying or verification material downstream.
//
// Why:
//
//   - A timestamp is cheap, human-readable provenance for a watermark
//     key; its hash is a fixed-width fingerprint that can mask payload
//     bits (bitcodec.XOR) or seed other derivations.
//
// Determinism policy (shared across the module):
//
//   - No time-based or global RNG sources. Callers pass a seeded
//     *math/rand.Rand; a nil RNG falls back to a fixed default seed so
//     results stay reproducible. *rand.Rand is not goroutine-safe — use
//     one per goroutine.
//
// Field ranges:
//
//	year ∈ [1995,2025], month ∈ [1,12], day ∈ [1, days-in-month] with
//	February fixed at 28 (no leap years), hour ∈ [0,23], minute and
//	second ∈ [0,59]. All fields zero-padded to two digits (four for the
//	year).
//
// Errors:
//
//   - ErrCount: requested timestamp count below 1.
package dateseed
