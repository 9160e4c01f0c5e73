package scrypt

// blockMix implements scrypt's BlockMix construction over a 128·r-byte
// region b, in place. y is scratch of the same size as b.
//
// X starts as the last 64-byte sub-block of b; each of the 2r sub-blocks is
// XORed into X and run through salsa8; the results are written to b with
// even indices first, then odd indices, interleaving the two halves of the
// permutation.
func blockMix(b, y []byte, r int) {
	var x [64]byte
	copy(x[:], b[(2*r-1)*64:2*r*64])

	for i := 0; i < 2*r; i++ {
		xorBlock(x[:], b[i*64:(i+1)*64])
		salsa8(&x)
		copy(y[i*64:(i+1)*64], x[:])
	}

	for i := 0; i < r; i++ {
		copy(b[i*64:(i+1)*64], y[(2*i)*64:(2*i+1)*64])
	}
	for i := 0; i < r; i++ {
		copy(b[(r+i)*64:(r+i+1)*64], y[(2*i+1)*64:(2*i+2)*64])
	}
}

// xorBlock XORs src into dst in place. len(dst) must equal len(src).
func xorBlock(dst, src []byte) {
	for i, v := range src {
		dst[i] ^= v
	}
}
