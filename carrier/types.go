// Package carrier defines the Signal value produced by Generate.
package carrier

// Signal is a generated ±1 square-wave carrier. Values are indexed
// positionally; the slice is not mutated by this package after creation.
type Signal struct {
	// Values holds the carrier samples, each exactly +1 or −1.
	Values []float64
}

// Len returns the number of addressable positions.
func (s Signal) Len() int { return len(s.Values) }

// At returns the sample at position i. The caller guarantees 0 ≤ i < Len().
func (s Signal) At(i int) float64 { return s.Values[i] }

// Window returns the half-open sample range [lo, hi). The caller
// guarantees 0 ≤ lo ≤ hi ≤ Len(). The returned slice aliases the carrier;
// treat it as read-only.
func (s Signal) Window(lo, hi int) []float64 { return s.Values[lo:hi] }
