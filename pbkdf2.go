package scrypt

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
)

// pbkdf2SHA256 derives a keyLen-byte key from password and salt using
// PBKDF2 (RFC 2898) with HMAC-SHA256 as the pseudorandom function and iter
// iterations per block.
//
// In the scrypt driver this always runs with iter == 1, which collapses
// U_1 = HMAC(P, S || BE32(i)) into the entire block — T_i == U_1, a single
// HMAC per 32-byte output block — but the general c-iteration form is kept
// so the function matches RFC 2898 exactly rather than a special case of it.
func pbkdf2SHA256(password, salt []byte, iter, keyLen int) []byte {
	prf := hmac.New(sha256.New, password)
	hashLen := prf.Size()
	numBlocks := (keyLen + hashLen - 1) / hashLen

	var be32 [4]byte
	dk := make([]byte, 0, numBlocks*hashLen)
	u := make([]byte, hashLen)

	for block := 1; block <= numBlocks; block++ {
		prf.Reset()
		prf.Write(salt)
		binary.BigEndian.PutUint32(be32[:], uint32(block))
		prf.Write(be32[:])
		t := prf.Sum(nil)

		copy(u, t)
		for n := 2; n <= iter; n++ {
			prf.Reset()
			prf.Write(u)
			u = prf.Sum(u[:0])
			for i, v := range u {
				t[i] ^= v
			}
		}

		dk = append(dk, t...)
	}
	return dk[:keyLen]
}
