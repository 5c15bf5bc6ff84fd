// Package qim defines the option and record types for QIM embedding.
package qim

// Coefficient pairs one subband coefficient with its watermarked
// replacement, so callers can substitute values back into the full
// coefficient set before inverse transformation.
type Coefficient struct {
	// Original is the untouched subband coefficient.
	Original float64
	// Watermarked is the quantized replacement carrying one carrier bit.
	Watermarked float64
}

// Options configures Embed.
//
// Fields:
//   - Level — decomposition depth passed to the Decomposer (level+1 subbands).
//   - Band  — index of the subband receiving the mark. The default, 2,
//     is the mid-frequency detail band of a 3-level decomposition: a
//     design choice balancing imperceptibility (not the coarse band)
//     against fragility (not the finest band).
//   - Step  — quantization step; the embedding margin is Step/4.
type Options struct {
	Level int
	Band  int
	Step  float64
}

// Default embedding parameters.
const (
	// DefaultLevel is the canonical 3-level decomposition.
	DefaultLevel = 3
	// DefaultBand selects the mid-frequency detail band.
	DefaultBand = 2
	// DefaultStep is a unit quantization step.
	DefaultStep = 1.0
)

// DefaultOptions returns the canonical configuration: 3-level
// decomposition, mid-frequency band, unit step.
func DefaultOptions() Options {
	return Options{Level: DefaultLevel, Band: DefaultBand, Step: DefaultStep}
}
