package hashing

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/viniciuschiele/scrypt"
)

// saltLen is the number of random bytes drawn for every new envelope.
// 32 bytes matches scrypt.KeyLen and comfortably exceeds the 16-byte
// minimum recommended by Percival's scrypt paper.
const saltLen = 32

// Hasher derives and verifies password hash envelopes using a fixed set of
// scrypt cost parameters. A Hasher is immutable after construction and
// safe for concurrent use by multiple goroutines.
type Hasher struct {
	opts Options
}

// New returns a Hasher configured with opts, after validating opts' cost
// parameters against the parameter guard. Most callers should prefer
// [NewDefault] unless they have a specific reason to tune N, r, p, or
// MaxMemory.
func New(opts Options) (*Hasher, error) {
	if err := scrypt.CheckParams(int(opts.N), int(opts.R), int(opts.P), true); err != nil {
		return nil, err
	}
	return &Hasher{opts: opts}, nil
}

// NewDefault returns a Hasher configured with [DefaultOptions]. It never
// fails: the defaults always satisfy the parameter guard.
func NewDefault() *Hasher {
	h, err := New(DefaultOptions())
	if err != nil {
		panic("hashing: default options failed validation: " + err.Error())
	}
	return h
}

// Encode derives a new scrypt hash for password using h's parameters and a
// freshly generated random salt, and returns it as a v2 envelope string.
// It returns [ErrEmptyPassword] if password is empty.
func (h *Hasher) Encode(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("hashing: generating salt: %w", err)
	}
	dk, err := scrypt.Key([]byte(password), salt, int(h.opts.N), int(h.opts.R), int(h.opts.P), scrypt.KeyLen, h.opts.MaxMemory)
	if err != nil {
		return "", err
	}
	e := &envelope{ver: v2, n: h.opts.N, r: h.opts.R, p: h.opts.P, salt: salt, dk: dk}
	return formatEnvelope(e), nil
}

// Compare reports whether password matches the password that produced
// envelope. It returns [ErrEmptyPassword] if password is empty,
// [ErrInvalidEnvelope] if envelope cannot be parsed, and [ErrInvalidParams]
// if its embedded parameters fail the parameter guard.
//
// The comparison is performed in constant time over the re-emitted
// envelope strings — not just the raw derived keys — so that it also
// compares cost parameters and salt without a data-dependent branch.
func (h *Hasher) Compare(password, envelopeStr string) (bool, error) {
	if password == "" {
		return false, ErrEmptyPassword
	}
	e, err := parseEnvelope(envelopeStr)
	if err != nil {
		return false, err
	}
	n := int(e.actualN())
	r, p := int(e.r), int(e.p)

	var dk []byte
	if e.ver == v0 {
		dk, err = scrypt.KeyNoPow2([]byte(password), e.salt, n, r, p, len(e.dk), h.opts.MaxMemory)
	} else {
		dk, err = scrypt.Key([]byte(password), e.salt, n, r, p, len(e.dk), h.opts.MaxMemory)
	}
	if err != nil {
		return false, err
	}

	got := &envelope{ver: e.ver, n: e.n, r: e.r, p: e.p, salt: e.salt, dk: dk}
	return constantTimeEqual([]byte(formatEnvelope(e)), []byte(formatEnvelope(got))), nil
}

// constantTimeEqual reports whether a and b hold the same bytes, visiting
// every position up to the longer of the two lengths without an early
// return — so the number of byte comparisons performed depends only on
// len(a) and len(b), never on where a and b first differ. Unlike
// crypto/subtle.ConstantTimeCompare, mismatched lengths do not short
// circuit: the longer slice is still walked in full before the length
// check is applied.
func constantTimeEqual(a, b []byte) bool {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	var diff byte
	for i := 0; i < n; i++ {
		var x, y byte
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		diff |= x ^ y
	}
	return diff == 0 && len(a) == len(b)
}
