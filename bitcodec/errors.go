package bitcodec

import "errors"

var (
	// ErrCodePoint indicates a rune outside the single-byte range [0,256).
	ErrCodePoint = errors.New("bitcodec: code point outside single-byte range")
	// ErrBitLength indicates a bit count that is not a multiple of 8.
	ErrBitLength = errors.New("bitcodec: bit count must be a multiple of 8")
	// ErrBitValue indicates a vector element outside {0,1}.
	ErrBitValue = errors.New("bitcodec: bit value must be 0 or 1")
	// ErrLengthMismatch indicates XOR inputs of differing lengths.
	ErrLengthMismatch = errors.New("bitcodec: vectors must have equal length")
)
