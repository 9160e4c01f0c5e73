package hashing

import (
	"errors"

	"github.com/viniciuschiele/scrypt"
)

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := h.Compare(password, envelope)
//	if errors.Is(err, hashing.ErrInvalidEnvelope) {
//	    // the stored hash is corrupt, not just a wrong password
//	}
var (
	// ErrEmptyPassword is returned when Encode or Compare is called with an
	// empty password.
	ErrEmptyPassword = errors.New("hashing: password must not be empty")

	// ErrInvalidEnvelope is returned when an envelope string could not be
	// parsed — wrong shape, unrecognised version, or a field that fails to
	// decode.
	ErrInvalidEnvelope = errors.New("hashing: malformed or unrecognised envelope")

	// ErrInvalidParams is returned when the (N, r, p) triple — whether
	// supplied to [New] or parsed out of an envelope passed to
	// [Hasher.Compare] — fails the parameter guard. Re-exported from
	// [scrypt.ErrInvalidParams] so callers need not import the scrypt
	// package to use errors.Is.
	ErrInvalidParams = scrypt.ErrInvalidParams

	// ErrOutOfMemory is returned when the ROMix table V implied by (N, r)
	// exceeds the configured [Options.MaxMemory]. Re-exported from
	// [scrypt.ErrMemoryLimitExceeded].
	ErrOutOfMemory = scrypt.ErrMemoryLimitExceeded
)
