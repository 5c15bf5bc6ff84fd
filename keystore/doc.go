// Package keystore persists permutation records between scrambling and
// unscrambling sessions.
//
// What:
//
//   - A Record maps an identifier to the original payload text and the
//     permutation used to scramble its signature image.
//   - A Store is an in-memory id → Record table with YAML marshalling,
//     so records can be written to and read from whatever medium the
//     caller owns (file, object store, wire).
//
// Why:
//
//   - The permutation is the cipher key and is NOT derivable from the
//     ciphertext (scramble package); whoever wants to decrypt later must
//     hold it. This is the only entity in the module that outlives a
//     process.
//
// The store itself performs no I/O — callers own all file and network
// access. A Store is a plain map and is not safe for concurrent
// mutation; guard it externally when shared.
//
// Errors:
//
//   - ErrNotFound: no record under the requested identifier.
package keystore
