package wavelet

// Decomposer is the forward transform: it splits a signal into level+1
// subbands, coarsest approximation first, then details coarse→fine.
//
// Implementations must be deterministic and must not retain or mutate
// the input slice.
type Decomposer interface {
	Decompose(signal []float64, level int) ([][]float64, error)
}

// Reconstructor is the inverse transform: it assembles a signal from
// subbands in the Decomposer layout. Required by callers that substitute
// watermarked coefficients back into a full coefficient set; the kernel
// itself never reconstructs.
type Reconstructor interface {
	Reconstruct(subbands [][]float64) ([]float64, error)
}
