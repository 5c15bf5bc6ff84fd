package waveletest_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chaosmark/wavelet"
	"github.com/katalvlaran/chaosmark/wavelet/waveletest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check: Haar satisfies both sides of the DWT contract.
var (
	_ wavelet.Decomposer    = waveletest.Haar{}
	_ wavelet.Reconstructor = waveletest.Haar{}
)

// TestHaar_SubbandLayout verifies the level+1 count and coarse→fine sizes.
func TestHaar_SubbandLayout(t *testing.T) {
	signal := make([]float64, 64)
	for i := range signal {
		signal[i] = float64(i)
	}

	subbands, err := waveletest.Haar{}.Decompose(signal, 3)
	require.NoError(t, err)
	require.Len(t, subbands, 4)

	assert.Len(t, subbands[0], 8, "approximation at level 3")
	assert.Len(t, subbands[1], 8, "coarsest detail")
	assert.Len(t, subbands[2], 16, "mid detail")
	assert.Len(t, subbands[3], 32, "finest detail")
}

// TestHaar_RoundTrip verifies Reconstruct(Decompose(x)) == x for
// power-of-two lengths.
func TestHaar_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	signal := make([]float64, 128)
	for i := range signal {
		signal[i] = rng.NormFloat64()
	}

	subbands, err := waveletest.Haar{}.Decompose(signal, 3)
	require.NoError(t, err)

	back, err := waveletest.Haar{}.Reconstruct(subbands)
	require.NoError(t, err)
	require.Len(t, back, len(signal))
	for i := range signal {
		assert.InDelta(t, signal[i], back[i], 1e-9, "sample %d", i)
	}
}

// TestHaar_Validation covers the decompose preconditions.
func TestHaar_Validation(t *testing.T) {
	_, err := waveletest.Haar{}.Decompose(nil, 3)
	assert.ErrorIs(t, err, waveletest.ErrEmptySignal)

	_, err = waveletest.Haar{}.Decompose([]float64{1, 2}, 0)
	assert.ErrorIs(t, err, waveletest.ErrLevel)

	_, err = waveletest.Haar{}.Reconstruct([][]float64{{1}})
	assert.ErrorIs(t, err, waveletest.ErrSubbands)
}
