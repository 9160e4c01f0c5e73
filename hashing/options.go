package hashing

// Default scrypt cost parameters: recommended for interactive logins as
// of 2009, per Percival. Increase N as memory latency and CPU parallelism
// grow.
const (
	// DefaultN is the default CPU/memory cost parameter.
	DefaultN uint64 = 16384
	// DefaultR is the default block size factor.
	DefaultR uint64 = 8
	// DefaultP is the default parallelization factor.
	DefaultP uint64 = 1
	// DefaultMaxMemory is the default ceiling on the ROMix table V, in
	// bytes. At the defaults above, V itself is 128*8*16384 = 16 MiB; the
	// ceiling leaves headroom for verifying hashes produced with somewhat
	// larger parameters than the Hasher's own.
	DefaultMaxMemory uint64 = 64 << 20 // 64 MiB
)

// Options configures a [Hasher]'s scrypt cost parameters.
//
// All three cost parameters are written into every v2 envelope a Hasher
// produces, so a Hasher built with different cost parameters only affects
// newly produced envelopes — previously produced ones remain verifiable by
// any Hasher as long as they satisfy the parameter guard and their (N, r)
// fits that Hasher's MaxMemory, because Compare re-derives using the
// parameters parsed out of the envelope itself, not the Hasher's.
type Options struct {
	// N is the CPU/memory cost parameter. Must be a power of two >= 2.
	N uint64
	// R is the block size factor. Must be >= 1.
	R uint64
	// P is the parallelization factor. Must be >= 1.
	P uint64
	// MaxMemory caps the bytes Encode/Compare are willing to allocate for
	// the ROMix table V, for any (N, r) pair — including ones parsed from
	// an envelope handed to Compare. Zero means unlimited.
	MaxMemory uint64
}

// DefaultOptions returns Options with the recommended defaults:
// N=16384, r=8, p=1, MaxMemory=64 MiB.
func DefaultOptions() Options {
	return Options{N: DefaultN, R: DefaultR, P: DefaultP, MaxMemory: DefaultMaxMemory}
}
