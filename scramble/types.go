// Package scramble defines the value types shared by the cipher operations.
package scramble

// Image is a rectangular h×w matrix of 8-bit samples, row-major.
// Operations never mutate their input image.
type Image [][]uint8

// Permutation is an index order over a flattened h·w pixel buffer.
// It is the cipher key: not derivable from ciphertext, so it must be
// persisted alongside it (see package keystore).
type Permutation []int

// Known-good logistic-map parameters. The recurrence stays chaotic and
// bounded in (0,1) for r close to 4 with any x0 strictly inside (0,1).
const (
	// DefaultR is the canonical chaotic growth rate.
	DefaultR = 3.99
	// DefaultX0 is the canonical initial condition.
	DefaultX0 = 0.5
)

// dims returns (h, w) after validating that img is non-empty and
// rectangular.
func dims(img Image) (int, int, error) {
	h := len(img)
	if h == 0 || len(img[0]) == 0 {
		return 0, 0, ErrEmptyImage
	}
	w := len(img[0])
	for i := 1; i < h; i++ {
		if len(img[i]) != w {
			return 0, 0, ErrRaggedImage
		}
	}

	return h, w, nil
}

// flatten copies img row-major into a fresh length-h·w buffer.
func flatten(img Image, h, w int) []uint8 {
	flat := make([]uint8, 0, h*w)
	for i := 0; i < h; i++ {
		flat = append(flat, img[i]...)
	}

	return flat
}

// reshape cuts flat back into an h×w Image. One backing allocation.
func reshape(flat []uint8, h, w int) Image {
	out := make(Image, h)
	for i := 0; i < h; i++ {
		out[i] = flat[i*w : (i+1)*w : (i+1)*w]
	}

	return out
}
