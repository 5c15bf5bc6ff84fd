// Package bitcodec converts text payloads to and from bit vectors and
// combines equal-length vectors with XOR.
//
// What:
//
//   - Encode maps each character to its 8-bit code point, big-endian bit
//     order within the byte; total length is 8 × character count.
//   - Decode partitions a bit vector into consecutive 8-bit groups and
//     maps each group back to a character.
//   - XOR combines two equal-length vectors element-wise, producing a
//     fresh vector (inputs are never mutated).
//
// Why:
//
//   - Watermark payloads travel as flat {0,1} sequences; text is the
//     human-facing form. XOR masking lets a payload be whitened with a
//     keystream (see dateseed) before embedding.
//
// Contract:
//
//   - Only single-byte code points (runes < 256) are encodable; wider
//     runes fail fast with ErrCodePoint rather than being truncated.
//   - Vectors produced here are never modified afterwards by this package.
//
// Complexity: all operations are O(n) in the bit count, single pass.
//
// Errors:
//
//   - ErrCodePoint: a rune ≥ 256 was passed to Encode.
//   - ErrBitLength: Decode input length is not a multiple of 8.
//   - ErrBitValue: a vector element is outside {0,1}.
//   - ErrLengthMismatch: XOR inputs differ in length.
package bitcodec
