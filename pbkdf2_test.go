package scrypt

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// TestPbkdf2SHA256_RFC7914Vector checks pbkdf2SHA256 against the
// PBKDF2-HMAC-SHA256 test vector from RFC 7914 §11: P="passwd", S="salt",
// c=1, dkLen=64.
func TestPbkdf2SHA256_RFC7914Vector(t *testing.T) {
	got := pbkdf2SHA256([]byte("passwd"), []byte("salt"), 1, 64)
	want, err := hex.DecodeString(
		"55ac046e56e3089fec1691c22544b605" +
			"f94185216dde0465e68b9d57c20dacbc" +
			"49ca9cccf179b645991664b39d77ef31" +
			"7c71b845b1e30bd509112041d3a19783")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("pbkdf2SHA256 = %x, want %x", got, want)
	}
}

func TestPbkdf2SHA256_LengthIsExact(t *testing.T) {
	for _, n := range []int{1, 16, 32, 33, 64, 100} {
		dk := pbkdf2SHA256([]byte("pw"), []byte("salt"), 1, n)
		if len(dk) != n {
			t.Errorf("keyLen=%d: got %d bytes", n, len(dk))
		}
	}
}

func TestPbkdf2SHA256_IterationsChangeOutput(t *testing.T) {
	a := pbkdf2SHA256([]byte("pw"), []byte("salt"), 1, 32)
	b := pbkdf2SHA256([]byte("pw"), []byte("salt"), 2, 32)
	if bytes.Equal(a, b) {
		t.Error("c=1 and c=2 produced the same output")
	}
}
