package scramble

import "errors"

var (
	// ErrDimension indicates image dimensions below 1×1.
	ErrDimension = errors.New("scramble: dimensions must be at least 1x1")
	// ErrEmptyImage indicates an image with no rows or no columns.
	ErrEmptyImage = errors.New("scramble: image must have at least one row and one column")
	// ErrRaggedImage indicates rows of differing lengths.
	ErrRaggedImage = errors.New("scramble: all image rows must have the same length")
	// ErrPermutationSize indicates a permutation whose length is not h·w.
	ErrPermutationSize = errors.New("scramble: permutation length must equal image size")
	// ErrIndexRange indicates a permutation entry outside [0, h·w).
	ErrIndexRange = errors.New("scramble: permutation index out of range")
	// ErrNotBijective indicates duplicate permutation entries (Validate only).
	ErrNotBijective = errors.New("scramble: permutation contains duplicate indices")
)
