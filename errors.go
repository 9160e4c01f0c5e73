package scrypt

import "errors"

// Sentinel errors returned by this package. Use [errors.Is] for comparisons.
var (
	// ErrInvalidParams is returned when (N, r, p) fails the overflow or
	// power-of-two guard in [CheckParams].
	ErrInvalidParams = errors.New("scrypt: invalid parameters")

	// ErrMemoryLimitExceeded is returned by [CheckMemory] (and therefore by
	// [Key] / [KeyNoPow2]) when (N, r) would require more bytes for the
	// ROMix table V than the caller's configured ceiling allows, checked
	// before any allocation is attempted.
	ErrMemoryLimitExceeded = errors.New("scrypt: parameters exceed configured memory limit")
)
