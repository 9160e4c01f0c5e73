// Package hashing provides a self-describing password hash envelope and a
// small Encode/Compare/IsValid API on top of scrypt.
//
// # Architecture
//
// [Hasher] is the central type: an immutable, validated set of scrypt cost
// parameters. Construct one with [New] (validated against the parameter
// guard) or [NewDefault] (the recommended N=16384, r=8, p=1), then call
// [Hasher.Encode] and [Hasher.Compare] for all day-to-day operations.
// [IsValid] is a package-level function — checking an envelope's shape
// needs no configured Hasher.
//
// # Quick start
//
//	h := hashing.NewDefault()
//	envelope, err := h.Encode("my-secret-password")
//	ok, err := h.Compare("my-secret-password", envelope) // true
//
// # Envelope format
//
// Encode always produces the current format (v2):
//
//	$s2$<N>$<r>$<p>$<base64-salt>$<base64-derived-key>
//
// Two deprecated formats, v1 and v0, are accepted by Compare and IsValid for
// backwards compatibility with hashes produced by earlier deployments, but
// are never produced by Encode:
//
//	$s1$<hex N<<16|r<<8|p>$<base64-salt>$<base64-derived-key>
//	$s0$<hex e<<16|r<<8|p>$<base64-salt>$<base64-derived-key>  (N = 2^e)
//
// All parameters are self-contained in the string, so no external
// configuration is needed to verify a previously produced hash — changing
// a Hasher's cost parameters (N, r, p) only affects newly produced hashes.
//
// # Security defaults
//
// NewDefault uses N=16384, r=8, p=1, which allocates roughly 16 MiB for the
// ROMix table and completes in tens of milliseconds on contemporary
// hardware. Options.MaxMemory additionally bounds how much memory
// Encode/Compare are willing to allocate for any (N, r) pair, including
// parameters parsed out of an untrusted stored envelope.
package hashing
