// Package scramble implements a deterministic, invertible pixel-permutation
// cipher driven by the logistic-map recurrence.
//
// What:
//
//   - DerivePermutation iterates x ← r·x·(1−x) over h·w steps and returns
//     the index order that sorts the iterates ascending (an argsort).
//   - Encrypt applies the permutation as a gather over the row-major
//     flattened image: out[i] = in[p[i]].
//   - Decrypt reverses it as a scatter into a zero-initialized buffer:
//     out[p[i]] = in[i].
//   - Validate is an opt-in bijectivity check for callers that want a
//     hard precondition instead of the documented hazard below.
//
// Why:
//
//   - A signature stamp can be shuffled into visual noise before being
//     embedded or transmitted, and restored exactly by whoever holds the
//     permutation. The permutation is the key; it must be persisted (see
//     keystore) because it is not derivable from the ciphertext.
//
// ⚠ Not encryption:
//
//	The chaotic shuffle rearranges pixels; it offers no confidentiality
//	against cryptanalysis. Treat it as keyed obfuscation only.
//
// ⚠ Bijectivity hazard (documented, by contract):
//
//	Decrypt checks only that every index is inside [0, h·w). If the
//	permutation contains duplicate indices, some output positions are
//	silently overwritten and the skipped ones stay zero — no error is
//	raised. Call Validate first when the permutation's provenance is
//	untrusted.
//
// Chaotic-parameter domain:
//
//	r and x0 must keep the recurrence inside (0,1) for every iterate;
//	this is the caller's responsibility and is not validated. DefaultR
//	and DefaultX0 are known-good values.
//
// Round-trip contract:
//
//	Decrypt(Encrypt(img, p), p) == img for every true permutation p
//	of [0, h·w).
//
// Complexity:
//
//   - DerivePermutation: O(h·w · log(h·w)) time, O(h·w) memory.
//   - Encrypt / Decrypt:  O(h·w) time and memory.
//
// Errors:
//
//   - ErrDimension: h or w below 1.
//   - ErrEmptyImage / ErrRaggedImage: malformed pixel matrix.
//   - ErrPermutationSize: permutation length ≠ h·w.
//   - ErrIndexRange: permutation entry outside [0, h·w).
//   - ErrNotBijective: duplicate entry found by Validate.
package scramble
