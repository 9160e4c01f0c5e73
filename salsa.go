package scrypt

import "encoding/binary"

// salsa8 applies the Salsa20/8 core permutation to the 64-byte block b in
// place. b is decoded as sixteen little-endian 32-bit words,
// run through four column/row double-rounds (eight rounds total) of the
// Salsa20 quarter-round function, then each resulting word is added back
// (mod 2^32) into the corresponding input word.
//
// This is BlockMix's inner hash, not a stream cipher: the construction is
// unkeyed and operates on a single 64-byte block with no counter or nonce.
// It has no data-dependent branches or table lookups, so it runs in
// constant time per block.
func salsa8(b *[64]byte) {
	var in, x [16]uint32
	for i := range in {
		in[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	x = in

	for i := 0; i < 4; i++ {
		// Columns: (0,4,8,12) (1,5,9,13) (2,6,10,14) (3,7,11,15).
		x[4] ^= rotl32(x[0]+x[12], 7)
		x[8] ^= rotl32(x[4]+x[0], 9)
		x[12] ^= rotl32(x[8]+x[4], 13)
		x[0] ^= rotl32(x[12]+x[8], 18)

		x[9] ^= rotl32(x[5]+x[1], 7)
		x[13] ^= rotl32(x[9]+x[5], 9)
		x[1] ^= rotl32(x[13]+x[9], 13)
		x[5] ^= rotl32(x[1]+x[13], 18)

		x[14] ^= rotl32(x[10]+x[6], 7)
		x[2] ^= rotl32(x[14]+x[10], 9)
		x[6] ^= rotl32(x[2]+x[14], 13)
		x[10] ^= rotl32(x[6]+x[2], 18)

		x[3] ^= rotl32(x[15]+x[11], 7)
		x[7] ^= rotl32(x[3]+x[15], 9)
		x[11] ^= rotl32(x[7]+x[3], 13)
		x[15] ^= rotl32(x[11]+x[7], 18)

		// Rows: (0,1,2,3) (4,5,6,7) (8,9,10,11) (12,13,14,15).
		x[1] ^= rotl32(x[0]+x[3], 7)
		x[2] ^= rotl32(x[1]+x[0], 9)
		x[3] ^= rotl32(x[2]+x[1], 13)
		x[0] ^= rotl32(x[3]+x[2], 18)

		x[6] ^= rotl32(x[5]+x[4], 7)
		x[7] ^= rotl32(x[6]+x[5], 9)
		x[4] ^= rotl32(x[7]+x[6], 13)
		x[5] ^= rotl32(x[4]+x[7], 18)

		x[11] ^= rotl32(x[10]+x[9], 7)
		x[8] ^= rotl32(x[11]+x[10], 9)
		x[9] ^= rotl32(x[8]+x[11], 13)
		x[10] ^= rotl32(x[9]+x[8], 18)

		x[12] ^= rotl32(x[15]+x[14], 7)
		x[13] ^= rotl32(x[12]+x[15], 9)
		x[14] ^= rotl32(x[13]+x[12], 13)
		x[15] ^= rotl32(x[14]+x[13], 18)
	}

	for i := range in {
		binary.LittleEndian.PutUint32(b[i*4:], in[i]+x[i])
	}
}

// rotl32 rotates v left by n bits within a 32-bit word.
func rotl32(v uint32, n uint) uint32 {
	return v<<n | v>>(32-n)
}
