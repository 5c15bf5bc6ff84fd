package qim

import "errors"

var (
	// ErrInvalidStep indicates a quantization step ≤ 0.
	ErrInvalidStep = errors.New("qim: quantization step must be positive")
	// ErrEmptyBatch indicates Embed received no signals.
	ErrEmptyBatch = errors.New("qim: signal batch must be non-empty")
	// ErrNilDecomposer indicates Embed received no wavelet transform.
	ErrNilDecomposer = errors.New("qim: decomposer must not be nil")
	// ErrBandIndex indicates a subband index outside the decomposition.
	ErrBandIndex = errors.New("qim: subband index out of range")
)
