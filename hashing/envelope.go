package hashing

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// version tags the three coexisting envelope formats this package can
// parse: the current decimal-field layout and two legacy packed-hex
// layouts kept only for backwards compatibility.
type version int

const (
	v0 version = 0
	v1 version = 1
	v2 version = 2
)

// envelope is the parsed form of a $sX$…$ hash string.
//
// n is the raw stored N-field: for v1 and v2 this is N itself, but for v0
// it is the exponent e (actual N = 2^e) — see [envelope.actualN]. This lets
// [formatEnvelope] re-emit a parsed envelope byte-for-byte in its original
// version's layout.
type envelope struct {
	ver  version
	n    uint64
	r    uint64
	p    uint64
	salt []byte
	dk   []byte
}

// actualN returns the real scrypt N for e, decoding the v0 exponent form.
// For v0, a stored exponent >= 64 yields 0 (Go's shift-by-width-or-more
// rule for unsigned operands), which then fails the parameter guard
// cleanly instead of overflowing or panicking.
func (e *envelope) actualN() uint64 {
	if e.ver == v0 {
		if e.n >= 64 {
			return 0
		}
		return 1 << e.n
	}
	return e.n
}

// IsValid reports whether envelope is structurally well-formed: a
// recognised version tag followed by the field count that version
// requires. It never panics and does not verify that the fields decode —
// that is [Hasher.Compare]'s job.
func IsValid(envelope string) bool {
	parts, tag, ok := splitTagged(envelope)
	if !ok {
		return false
	}
	switch tag {
	case '2':
		return len(parts) == 7
	case '0', '1':
		return len(parts) == 5
	default:
		return false
	}
}

// splitTagged splits s on "$" and extracts its version tag ("0", "1", or
// "2"), enforcing the two structural checks common to every format: the
// string starts with "$" (so splitting yields a leading empty field) and
// the second field has length 2 and begins with 's'.
func splitTagged(s string) (parts []string, tag byte, ok bool) {
	if len(s) == 0 || s[0] != '$' {
		return nil, 0, false
	}
	parts = strings.Split(s, "$")
	if len(parts) < 2 || parts[0] != "" {
		return nil, 0, false
	}
	head := parts[1]
	if len(head) != 2 || head[0] != 's' {
		return nil, 0, false
	}
	return parts, head[1], true
}

// parseEnvelope parses s into its tagged variant. It returns
// [ErrInvalidEnvelope] for any structural or decoding failure; it does not
// apply the parameter guard — callers must do that themselves before
// deriving a key from the result.
func parseEnvelope(s string) (*envelope, error) {
	parts, tag, ok := splitTagged(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEnvelope, s)
	}
	switch tag {
	case '2':
		if len(parts) != 7 {
			return nil, fmt.Errorf("%w: v2 requires 7 fields, got %d", ErrInvalidEnvelope, len(parts))
		}
		return parseV2(parts)
	case '1':
		if len(parts) != 5 {
			return nil, fmt.Errorf("%w: v1 requires 5 fields, got %d", ErrInvalidEnvelope, len(parts))
		}
		return parseHexPacked(parts, v1)
	case '0':
		if len(parts) != 5 {
			return nil, fmt.Errorf("%w: v0 requires 5 fields, got %d", ErrInvalidEnvelope, len(parts))
		}
		return parseHexPacked(parts, v0)
	default:
		return nil, fmt.Errorf("%w: unrecognised version tag %q", ErrInvalidEnvelope, tag)
	}
}

// parseV2 parses parts = ["", "s2", N, r, p, b64salt, b64dk].
func parseV2(parts []string) (*envelope, error) {
	n, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad N %q: %v", ErrInvalidEnvelope, parts[2], err)
	}
	r, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad r %q: %v", ErrInvalidEnvelope, parts[3], err)
	}
	p, err := strconv.ParseUint(parts[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad p %q: %v", ErrInvalidEnvelope, parts[4], err)
	}
	salt, dk, err := decodeSaltAndDK(parts[5], parts[6])
	if err != nil {
		return nil, err
	}
	return &envelope{ver: v2, n: n, r: r, p: p, salt: salt, dk: dk}, nil
}

// parseHexPacked parses parts = ["", "sX", hexpacked, b64salt, b64dk],
// where hexpacked is lowercase hex of (field<<16 | r<<8 | p) and field is
// N for v1 or the exponent e for v0.
func parseHexPacked(parts []string, ver version) (*envelope, error) {
	raw := parts[2]
	if raw == "" || len(raw) > 8 {
		return nil, fmt.Errorf("%w: packed config %q must be 1-8 hex digits", ErrInvalidEnvelope, raw)
	}
	packed, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: bad packed config %q: %v", ErrInvalidEnvelope, raw, err)
	}
	n := (packed >> 16) & 0xffff
	r := (packed >> 8) & 0xff
	p := packed & 0xff

	salt, dk, err := decodeSaltAndDK(parts[3], parts[4])
	if err != nil {
		return nil, err
	}
	return &envelope{ver: ver, n: n, r: r, p: p, salt: salt, dk: dk}, nil
}

func decodeSaltAndDK(b64salt, b64dk string) (salt, dk []byte, err error) {
	salt, err = base64.StdEncoding.DecodeString(b64salt)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad salt base64: %v", ErrInvalidEnvelope, err)
	}
	dk, err = base64.StdEncoding.DecodeString(b64dk)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad derived-key base64: %v", ErrInvalidEnvelope, err)
	}
	return salt, dk, nil
}

// formatEnvelope re-emits e in its own version's layout. Given a v2
// envelope this is Encode's output format; given a v0/v1 envelope this
// reproduces the legacy packed-hex layout byte-for-byte when e's fields are
// unchanged, so parsing and re-formatting an envelope is idempotent.
func formatEnvelope(e *envelope) string {
	b64salt := base64.StdEncoding.EncodeToString(e.salt)
	b64dk := base64.StdEncoding.EncodeToString(e.dk)
	if e.ver == v2 {
		return fmt.Sprintf("$s2$%d$%d$%d$%s$%s", e.n, e.r, e.p, b64salt, b64dk)
	}
	packed := e.n<<16 | e.r<<8 | e.p
	return fmt.Sprintf("$s%d$%x$%s$%s", int(e.ver), packed, b64salt, b64dk)
}
