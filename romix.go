package scrypt

import "encoding/binary"

// romix implements scrypt's ROMix/SMix construction in place over the
// 128·r-byte block b. v is the memory-hard table
// (128·r·n bytes); xy is BlockMix scratch (256·r bytes, two 128·r-byte
// regions).
//
// Fill phase: v[i] <- X, X <- blockMix(X), for i in [0, n).
// Mix phase:  j <- Integerify(X) mod n, X <- blockMix(X XOR v[j]), n times.
// "mod n" is computed as a mask on n-1, which equals mod n only when n is a
// power of two. Key enforces that through CheckParams; KeyNoPow2 skips the
// check, and its v0 envelope caller passes n = 2^e.
func romix(b []byte, r, n int, v, xy []byte) {
	x := xy[:128*r]
	y := xy[128*r : 256*r]

	copy(x, b)

	for i := 0; i < n; i++ {
		copy(v[i*128*r:(i+1)*128*r], x)
		blockMix(x, y, r)
	}

	mask := uint64(n - 1)
	for i := 0; i < n; i++ {
		j := int(integerify(x, r) & mask)
		xorBlock(x, v[j*128*r:(j+1)*128*r])
		blockMix(x, y, r)
	}

	copy(b, x)
}

// integerify reads the first two little-endian 32-bit words of x's last
// 64-byte sub-block (index 2r-1) and returns them as a little-endian
// 64-bit integer.
func integerify(x []byte, r int) uint64 {
	return binary.LittleEndian.Uint64(x[(2*r-1)*64:])
}
