package scrypt

import (
	"runtime"
	"sync"
)

// KeyLen is the derived-key length the hashing package's envelope codec
// always requests. scrypt itself supports arbitrary key lengths (see [Key]).
const KeyLen = 32

// Key derives a keyLen-byte key from password and salt using scrypt with
// cost parameters (N, r, p). N must be a power of two >= 2;
// r and p must be >= 1; and the triple must satisfy the overflow bounds
// checked by [CheckParams]. maxMemory, if non-zero, caps the size of the
// internal ROMix table V; exceeding it returns [ErrMemoryLimitExceeded]
// instead of allocating.
//
// The recommended parameters for interactive logins as of 2009 are
// N=16384, r=8, p=1; increase N as memory latency and CPU parallelism grow.
func Key(password, salt []byte, n, r, p, keyLen int, maxMemory uint64) ([]byte, error) {
	if err := CheckParams(n, r, p, true); err != nil {
		return nil, err
	}
	return key(password, salt, n, r, p, keyLen, maxMemory)
}

// KeyNoPow2 is [Key] without the power-of-two guard, for the legacy v0
// envelope format whose stored N field is an exponent and so cannot fail
// that check by construction. It still applies every other overflow bound
// [CheckParams] checks.
func KeyNoPow2(password, salt []byte, n, r, p, keyLen int, maxMemory uint64) ([]byte, error) {
	if err := CheckParams(n, r, p, false); err != nil {
		return nil, err
	}
	return key(password, salt, n, r, p, keyLen, maxMemory)
}

// key runs the already-validated scrypt pipeline:
//
//	B <- PBKDF2-HMAC-SHA256(P, S, 1, 128rp)
//	for i in [0, p): B[i] <- ROMix(B[i], N, r)
//	DK <- PBKDF2-HMAC-SHA256(P, B, 1, keyLen)
//
// The p ROMix invocations are independent and are dispatched across a
// bounded worker pool when p > 1; each worker owns its own V/XY scratch
// and writes to a disjoint slice of B, so no further synchronisation is
// required beyond the final join.
func key(password, salt []byte, n, r, p, keyLen int, maxMemory uint64) ([]byte, error) {
	if err := CheckMemory(n, r, maxMemory); err != nil {
		return nil, err
	}

	b := pbkdf2SHA256(password, salt, 1, p*128*r)

	switch {
	case p == 1:
		v := make([]byte, 128*r*n)
		xy := make([]byte, 256*r)
		romix(b, r, n, v, xy)
		zero(v)
		zero(xy)
	default:
		workers := runtime.GOMAXPROCS(0)
		if workers > p {
			workers = p
		}
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		for i := 0; i < p; i++ {
			sem <- struct{}{}
			wg.Add(1)
			go func(block []byte) {
				defer wg.Done()
				defer func() { <-sem }()
				v := make([]byte, 128*r*n)
				xy := make([]byte, 256*r)
				romix(block, r, n, v, xy)
				zero(v)
				zero(xy)
			}(b[i*128*r : (i+1)*128*r])
		}
		wg.Wait()
	}

	dk := pbkdf2SHA256(password, b, 1, keyLen)
	zero(b)
	return dk, nil
}

// zero overwrites b with zeros. Best-effort memory hygiene for transient
// buffers that held password-derived material.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
