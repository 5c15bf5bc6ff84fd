package keystore

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chaosmark/scramble"
)

// ErrNotFound indicates a missing record identifier.
var ErrNotFound = errors.New("keystore: record not found")

// Record couples the original payload text with the permutation that
// scrambled its signature image.
type Record struct {
	// Original is the payload text the signature was built from.
	Original string `yaml:"original"`
	// Permutation is the cipher key, length h·w of the scrambled image.
	Permutation scramble.Permutation `yaml:"permutation,flow"`
}

// Store is an id → Record table. Create with New or UnmarshalStore.
type Store map[string]Record

// New returns an empty ready-to-use store.
func New() Store { return Store{} }

// Put inserts or replaces the record under id. The permutation is copied
// so later caller-side mutation cannot corrupt the stored key.
func (s Store) Put(id, original string, p scramble.Permutation) {
	key := make(scramble.Permutation, len(p))
	copy(key, p)
	s[id] = Record{Original: original, Permutation: key}
}

// Get returns the record under id, or ErrNotFound.
func (s Store) Get(id string) (Record, error) {
	rec, ok := s[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	return rec, nil
}

// Marshal encodes the store as YAML.
func (s Store) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("keystore: marshal: %w", err)
	}

	return data, nil
}

// UnmarshalStore decodes a YAML document produced by Marshal. An empty
// document yields an empty, usable store.
func UnmarshalStore(data []byte) (Store, error) {
	var s Store
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("keystore: unmarshal: %w", err)
	}
	if s == nil {
		s = Store{}
	}

	return s, nil
}
