package carrier

import "errors"

var (
	// ErrEmptyVector indicates an empty seed bit pattern.
	ErrEmptyVector = errors.New("carrier: bit vector must be non-empty")
	// ErrNegativeLength indicates a negative target length.
	ErrNegativeLength = errors.New("carrier: target length must be non-negative")
)
