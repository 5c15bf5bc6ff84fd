package bitcodec

import (
	"fmt"
	"strings"
)

// Bit is a single payload bit. Valid values are 0 and 1.
type Bit = byte

// bitsPerChar is the fixed width of one encoded character.
const bitsPerChar = 8

// maxCodePoint is the exclusive upper bound on encodable runes.
const maxCodePoint = 256

// Encode maps text to a bit vector, 8 bits per character, big-endian bit
// order within each byte. The result length is 8 × len([]rune(text)).
//
// Returns ErrCodePoint for any rune ≥ 256; multi-byte text is rejected,
// never truncated.
//
// Complexity: O(len(text)).
func Encode(text string) ([]Bit, error) {
	bits := make([]Bit, 0, len(text)*bitsPerChar)
	for _, r := range text {
		if r >= maxCodePoint {
			return nil, fmt.Errorf("%w: %q (U+%04X)", ErrCodePoint, r, r)
		}
		for shift := bitsPerChar - 1; shift >= 0; shift-- {
			bits = append(bits, Bit(r>>shift)&1)
		}
	}

	return bits, nil
}

// Decode is the inverse of Encode: consecutive 8-bit groups become
// characters. Returns ErrBitLength when len(bits) is not a multiple of 8
// and ErrBitValue when an element is outside {0,1}.
//
// Complexity: O(len(bits)).
func Decode(bits []Bit) (string, error) {
	if len(bits)%bitsPerChar != 0 {
		return "", fmt.Errorf("%w: got %d bits", ErrBitLength, len(bits))
	}

	var sb strings.Builder
	sb.Grow(len(bits) / bitsPerChar)
	for i := 0; i < len(bits); i += bitsPerChar {
		var code rune
		for j := 0; j < bitsPerChar; j++ {
			b := bits[i+j]
			if b > 1 {
				return "", fmt.Errorf("%w: got %d at index %d", ErrBitValue, b, i+j)
			}
			code = code<<1 | rune(b)
		}
		sb.WriteRune(code)
	}

	return sb.String(), nil
}

// XOR combines a and b element-wise into a fresh vector.
// Returns ErrLengthMismatch when lengths differ and ErrBitValue when an
// element of either input is outside {0,1}.
//
// XOR is an involution: XOR(XOR(a,b), b) == a.
//
// Complexity: O(len(a)).
func XOR(a, b []Bit) ([]Bit, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	out := make([]Bit, len(a))
	for i := range a {
		if a[i] > 1 || b[i] > 1 {
			return nil, fmt.Errorf("%w: at index %d", ErrBitValue, i)
		}
		out[i] = a[i] ^ b[i]
	}

	return out, nil
}
