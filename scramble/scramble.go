package scramble

import (
	"fmt"
	"sort"
)

// DerivePermutation runs the logistic recurrence x ← r·x·(1−x) for h·w
// steps starting from x0 and returns the permutation of indices that
// sorts the iterates ascending.
//
// The seed x0 itself is consumed, not emitted: the first collected value
// is the first iterate. Ties (numerically unlikely) keep their original
// relative order — the sort is stable.
//
// The caller owns chaotic stability: r and x0 must keep every iterate in
// (0,1). DefaultR and DefaultX0 are known-good. Only h,w ≥ 1 is checked.
//
// Complexity: O(h·w · log(h·w)).
func DerivePermutation(h, w int, r, x0 float64) (Permutation, error) {
	if h < 1 || w < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimension, h, w)
	}

	size := h * w
	iterates := make([]float64, size)
	x := x0
	for k := 0; k < size; k++ {
		x = r * x * (1 - x)
		iterates[k] = x
	}

	p := make(Permutation, size)
	for i := range p {
		p[i] = i
	}
	sort.SliceStable(p, func(i, j int) bool { return iterates[p[i]] < iterates[p[j]] })

	return p, nil
}

// Encrypt shuffles img with p as a gather: the flattened output at i
// takes the flattened input at p[i].
//
// Errors: ErrEmptyImage / ErrRaggedImage on a malformed matrix,
// ErrPermutationSize when len(p) ≠ h·w, ErrIndexRange when an entry
// falls outside [0, h·w).
//
// Complexity: O(h·w).
func Encrypt(img Image, p Permutation) (Image, error) {
	h, w, err := dims(img)
	if err != nil {
		return nil, err
	}
	size := h * w
	if len(p) != size {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPermutationSize, len(p), size)
	}

	flat := flatten(img, h, w)
	out := make([]uint8, size)
	for i, idx := range p {
		if idx < 0 || idx >= size {
			return nil, fmt.Errorf("%w: p[%d]=%d, size %d", ErrIndexRange, i, idx, size)
		}
		out[i] = flat[idx]
	}

	return reshape(out, h, w), nil
}

// Decrypt reverses Encrypt with the same permutation, as a scatter into
// a zero-initialized buffer: the flattened output at p[i] takes the
// flattened ciphertext at i.
//
// Decrypt validates only the index bound, NOT bijectivity: a permutation
// with duplicate entries silently overwrites some positions and leaves
// the unreferenced ones zero. See the package documentation; use
// Validate when that hazard is unacceptable.
//
// Complexity: O(h·w).
func Decrypt(ciphertext Image, p Permutation) (Image, error) {
	h, w, err := dims(ciphertext)
	if err != nil {
		return nil, err
	}
	size := h * w
	if len(p) != size {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPermutationSize, len(p), size)
	}

	flat := flatten(ciphertext, h, w)
	out := make([]uint8, size) // zero-filled; duplicates leave holes at zero
	for i, idx := range p {
		if idx < 0 || idx >= size {
			return nil, fmt.Errorf("%w: p[%d]=%d, size %d", ErrIndexRange, i, idx, size)
		}
		out[idx] = flat[i]
	}

	return reshape(out, h, w), nil
}

// Validate reports whether p is a true bijection on [0, size).
// It is the opt-in precondition for Decrypt's documented hazard.
//
// Errors: ErrPermutationSize, ErrIndexRange, ErrNotBijective.
//
// Complexity: O(size).
func Validate(p Permutation, size int) error {
	if len(p) != size {
		return fmt.Errorf("%w: got %d, want %d", ErrPermutationSize, len(p), size)
	}

	seen := make([]bool, size)
	for i, idx := range p {
		if idx < 0 || idx >= size {
			return fmt.Errorf("%w: p[%d]=%d, size %d", ErrIndexRange, i, idx, size)
		}
		if seen[idx] {
			return fmt.Errorf("%w: index %d appears more than once", ErrNotBijective, idx)
		}
		seen[idx] = true
	}

	return nil
}
