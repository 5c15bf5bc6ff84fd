package dateseed

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/rand"
)

// Seed is a 32-byte SHA-256 fingerprint of a string.
type Seed = [32]byte

// ErrCount indicates a timestamp count below 1.
var ErrCount = errors.New("dateseed: count must be at least 1")

// Timestamp field bounds.
const (
	minYear = 1995
	maxYear = 2025
	hours   = 24
	minutes = 60
	seconds = 60
)

// defaultSeed is the fixed seed used when callers pass a nil RNG.
// Arbitrary but stable, for reproducible defaults.
const defaultSeed int64 = 1

// daysInMonth fixes February at 28; leap years are deliberately ignored.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Timestamps generates n timestamp strings of the form
// "YYYY/MM/DD HH:MM:SS", each field drawn uniformly from its documented
// range. Deterministic given the supplied RNG; nil rng uses defaultSeed.
//
// Returns ErrCount when n < 1.
//
// Complexity: O(n).
func Timestamps(n int, rng *rand.Rand) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrCount, n)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		year := minYear + rng.Intn(maxYear-minYear+1)
		month := 1 + rng.Intn(len(daysInMonth))
		day := 1 + rng.Intn(daysInMonth[month-1])
		hour := rng.Intn(hours)
		minute := rng.Intn(minutes)
		second := rng.Intn(seconds)
		out[i] = fmt.Sprintf("%04d/%02d/%02d %02d:%02d:%02d",
			year, month, day, hour, minute, second)
	}

	return out, nil
}

// HashToVector returns the SHA-256 digest of the UTF-8 encoding of text.
// Pure function; collision resistance inherited from SHA-256.
func HashToVector(text string) Seed {
	return sha256.Sum256([]byte(text))
}
