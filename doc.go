// Package scrypt implements the scrypt key derivation function as defined
// in Colin Percival's paper "Stronger Key Derivation via Sequential
// Memory-Hard Functions" (http://www.tarsnap.com/scrypt/scrypt.pdf).
//
// # Architecture
//
// Key composes four primitives, each in its own file:
//
//   - salsa8 ([salsa.go])      — the Salsa20/8 block permutation.
//   - blockMix ([blockmix.go]) — one scrypt mixing pass over 128·r bytes.
//   - romix ([romix.go])       — the memory-hard ROMix/SMix construction.
//   - pbkdf2SHA256 ([pbkdf2.go]) — the outer PBKDF2-HMAC-SHA256 wrapping.
//
// [CheckParams] and [CheckMemory] (component guards, [params.go]) run
// before any allocation, so a caller driving Key from untrusted parameters
// — e.g. parameters parsed out of a stored hash string — cannot be made to
// allocate an unbounded amount of memory.
//
// This package has no knowledge of text hash formats; see the sibling
// "hashing" package for the self-describing envelope codec and the
// Encode/Compare/IsValid API built on top of Key.
package scrypt
