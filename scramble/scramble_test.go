package scramble_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chaosmark/scramble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDerivePermutation_Bijection verifies the argsort always yields a
// true permutation of [0, h·w).
func TestDerivePermutation_Bijection(t *testing.T) {
	p, err := scramble.DerivePermutation(16, 16, scramble.DefaultR, scramble.DefaultX0)
	require.NoError(t, err)
	require.Len(t, p, 256)
	assert.NoError(t, scramble.Validate(p, 256))
}

// TestDerivePermutation_Deterministic verifies identical parameters give
// identical permutations.
func TestDerivePermutation_Deterministic(t *testing.T) {
	a, err := scramble.DerivePermutation(8, 8, scramble.DefaultR, scramble.DefaultX0)
	require.NoError(t, err)
	b, err := scramble.DerivePermutation(8, 8, scramble.DefaultR, scramble.DefaultX0)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestDerivePermutation_SeedSensitivity verifies a tiny change in x0
// produces a different order (chaotic sensitivity).
func TestDerivePermutation_SeedSensitivity(t *testing.T) {
	a, err := scramble.DerivePermutation(8, 8, scramble.DefaultR, 0.4)
	require.NoError(t, err)
	b, err := scramble.DerivePermutation(8, 8, scramble.DefaultR, 0.4000001)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// TestDerivePermutation_BadDimensions verifies the h,w ≥ 1 precondition.
func TestDerivePermutation_BadDimensions(t *testing.T) {
	_, err := scramble.DerivePermutation(0, 4, scramble.DefaultR, scramble.DefaultX0)
	assert.ErrorIs(t, err, scramble.ErrDimension)

	_, err = scramble.DerivePermutation(4, -1, scramble.DefaultR, scramble.DefaultX0)
	assert.ErrorIs(t, err, scramble.ErrDimension)
}

// TestEncrypt_KnownVector checks the concrete 2×2 scenario:
// [[1,2],[3,4]] gathered through [3,1,0,2] becomes [[4,2],[1,3]].
func TestEncrypt_KnownVector(t *testing.T) {
	img := scramble.Image{{1, 2}, {3, 4}}
	p := scramble.Permutation{3, 1, 0, 2}

	ct, err := scramble.Encrypt(img, p)
	require.NoError(t, err)
	assert.Equal(t, scramble.Image{{4, 2}, {1, 3}}, ct)

	back, err := scramble.Decrypt(ct, p)
	require.NoError(t, err)
	assert.Equal(t, img, back)
}

// TestRoundTrip_Random verifies Decrypt(Encrypt(I,p),p) == I for random
// images under a derived chaotic permutation.
func TestRoundTrip_Random(t *testing.T) {
	const h, w = 13, 7
	rng := rand.New(rand.NewSource(42))

	img := make(scramble.Image, h)
	for i := range img {
		img[i] = make([]uint8, w)
		for j := range img[i] {
			img[i][j] = uint8(rng.Intn(256))
		}
	}

	p, err := scramble.DerivePermutation(h, w, scramble.DefaultR, 0.37)
	require.NoError(t, err)

	ct, err := scramble.Encrypt(img, p)
	require.NoError(t, err)
	assert.NotEqual(t, img, ct, "a chaotic permutation should actually move pixels")

	back, err := scramble.Decrypt(ct, p)
	require.NoError(t, err)
	assert.Equal(t, img, back)
}

// TestDecrypt_DuplicateIndexHazard demonstrates the documented corruption:
// a duplicate index leaves at least one position zero-filled, silently.
func TestDecrypt_DuplicateIndexHazard(t *testing.T) {
	ct := scramble.Image{{10, 20}, {30, 40}}
	dup := scramble.Permutation{0, 0, 2, 3} // index 1 never written

	out, err := scramble.Decrypt(ct, dup)
	require.NoError(t, err, "duplicates are NOT an error, by contract")

	// out[0] overwritten last by ct[1]=20; out[1] stays zero.
	assert.Equal(t, scramble.Image{{20, 0}, {30, 40}}, out)
	assert.ErrorIs(t, scramble.Validate(dup, 4), scramble.ErrNotBijective,
		"Validate is the opt-in guard for this hazard")
}

// TestDecrypt_IndexRange verifies the one bound Decrypt does enforce.
func TestDecrypt_IndexRange(t *testing.T) {
	ct := scramble.Image{{1, 2}, {3, 4}}

	_, err := scramble.Decrypt(ct, scramble.Permutation{0, 1, 2, 4})
	assert.ErrorIs(t, err, scramble.ErrIndexRange)

	_, err = scramble.Decrypt(ct, scramble.Permutation{0, 1, 2, -1})
	assert.ErrorIs(t, err, scramble.ErrIndexRange)
}

// TestEncrypt_Validation covers the malformed-input errors.
func TestEncrypt_Validation(t *testing.T) {
	p := scramble.Permutation{0, 1, 2, 3}

	_, err := scramble.Encrypt(scramble.Image{}, p)
	assert.ErrorIs(t, err, scramble.ErrEmptyImage)

	_, err = scramble.Encrypt(scramble.Image{{1, 2}, {3}}, p)
	assert.ErrorIs(t, err, scramble.ErrRaggedImage)

	_, err = scramble.Encrypt(scramble.Image{{1, 2}, {3, 4}}, scramble.Permutation{0, 1})
	assert.ErrorIs(t, err, scramble.ErrPermutationSize)

	_, err = scramble.Encrypt(scramble.Image{{1, 2}, {3, 4}}, scramble.Permutation{0, 1, 2, 9})
	assert.ErrorIs(t, err, scramble.ErrIndexRange)
}

// TestEncrypt_InputUntouched verifies value semantics: the source image
// is never mutated.
func TestEncrypt_InputUntouched(t *testing.T) {
	img := scramble.Image{{1, 2}, {3, 4}}
	_, err := scramble.Encrypt(img, scramble.Permutation{3, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, scramble.Image{{1, 2}, {3, 4}}, img)
}

// TestValidate covers size and range failures alongside the happy path.
func TestValidate(t *testing.T) {
	assert.NoError(t, scramble.Validate(scramble.Permutation{2, 0, 1}, 3))
	assert.ErrorIs(t, scramble.Validate(scramble.Permutation{0, 1}, 3), scramble.ErrPermutationSize)
	assert.ErrorIs(t, scramble.Validate(scramble.Permutation{0, 1, 3}, 3), scramble.ErrIndexRange)
	assert.ErrorIs(t, scramble.Validate(scramble.Permutation{0, 1, 1}, 3), scramble.ErrNotBijective)
}
