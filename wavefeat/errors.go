package wavefeat

import "errors"

var (
	// ErrEmptySignal indicates an empty input signal.
	ErrEmptySignal = errors.New("wavefeat: signal must be non-empty")
	// ErrNilDecomposer indicates a missing wavelet transform.
	ErrNilDecomposer = errors.New("wavefeat: decomposer must not be nil")
	// ErrLevel indicates a decomposition level below 1.
	ErrLevel = errors.New("wavefeat: level must be at least 1")
	// ErrSubbandCount indicates a decomposer that returned a layout other
	// than level+1 subbands.
	ErrSubbandCount = errors.New("wavefeat: decomposer returned unexpected subband count")
)
