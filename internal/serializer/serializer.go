// Package serializer implements the compact three-segment JWT wire
// form: header_b64 "." payload_b64 "." signature_b64. It never trusts
// segment contents beyond base64url + UTF-8 decoding — JSON
// interpretation and everything downstream belongs to the caller.
package serializer

import (
	"errors"
	"fmt"

	"github.com/wraithlock/jwt/internal/base64url"
)

// ErrMalformed is returned for any structural, base64, or byte-length
// failure while decoding a compact token. Callers translate it to
// jwt.ErrMalformedToken.
var ErrMalformed = errors.New("serializer: malformed compact token")

// ErrTooLarge is returned when the raw token exceeds the caller's size
// cap. Checked before any parsing occurs.
var ErrTooLarge = errors.New("serializer: token exceeds maximum size")

// Compact holds the decoded pieces of a parsed compact token. HeaderRaw
// and PayloadRaw are the exact decoded bytes from the wire — never
// re-marshaled — and SigningInput is the verbatim encoded text a
// Validator passes to a SignatureProvider byte-for-byte.
type Compact struct {
	HeaderB64    string
	PayloadB64   string
	SignatureB64 string

	HeaderRaw    []byte
	PayloadRaw   []byte
	Signature    []byte
	SigningInput []byte // ASCII bytes of HeaderB64 + "." + PayloadB64
}

// CanRead is a pure structural pre-check: no allocation of parsed
// state, just a size and shape check.
func CanRead(raw string, maxTokenSizeBytes int) bool {
	if len(raw)*2 > maxTokenSizeBytes {
		return false
	}
	return matchesCompactShape(raw)
}

// matchesCompactShape checks ^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*$
// without building a regexp: a hand-rolled single-pass scan over the
// raw string.
func matchesCompactShape(s string) bool {
	first, second, ok := splitTwoDots(s)
	if !ok {
		return false
	}
	part1, part2, part3 := s[:first], s[first+1:second], s[second+1:]
	return len(part1) > 0 && base64url.IsValid(part1) &&
		len(part2) > 0 && base64url.IsValid(part2) &&
		base64url.IsValid(part3)
}

// splitTwoDots finds the index of exactly two '.' separators. Returns
// ok=false if there are not exactly two.
func splitTwoDots(s string) (first, second int, ok bool) {
	first, second = -1, -1
	for i := 0; i < len(s); i++ {
		if s[i] != '.' {
			continue
		}
		switch {
		case first == -1:
			first = i
		case second == -1:
			second = i
		default:
			return 0, 0, false // a third dot
		}
	}
	if first == -1 || second == -1 {
		return 0, 0, false
	}
	return first, second, true
}

// Decode splits raw into its three segments and base64url-decodes the
// first two. It never JSON-parses — that is the caller's job — and it
// preserves SigningInput verbatim for signature verification.
func Decode(raw string, maxTokenSizeBytes int) (*Compact, error) {
	if len(raw) > maxTokenSizeBytes {
		return nil, ErrTooLarge
	}

	first, second, ok := splitTwoDots(raw)
	if !ok {
		return nil, fmt.Errorf("%w: expected exactly two '.' separators", ErrMalformed)
	}

	headerB64, payloadB64, sigB64 := raw[:first], raw[first+1:second], raw[second+1:]
	if headerB64 == "" || payloadB64 == "" {
		return nil, fmt.Errorf("%w: header and payload segments must be non-empty", ErrMalformed)
	}

	headerRaw, err := base64url.Decode(headerB64)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformed, err)
	}
	payloadRaw, err := base64url.Decode(payloadB64)
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %v", ErrMalformed, err)
	}

	var sig []byte
	if sigB64 != "" {
		sig, err = base64url.Decode(sigB64)
		if err != nil {
			return nil, fmt.Errorf("%w: signature: %v", ErrMalformed, err)
		}
		if len(sig) == 0 {
			// A non-empty encoded segment that decodes to zero bytes is
			// not a legitimate "unsigned" token — it's corrupt input.
			return nil, fmt.Errorf("%w: signature segment decoded to zero bytes", ErrMalformed)
		}
	}

	return &Compact{
		HeaderB64:    headerB64,
		PayloadB64:   payloadB64,
		SignatureB64: sigB64,
		HeaderRaw:    headerRaw,
		PayloadRaw:   payloadRaw,
		Signature:    sig,
		SigningInput: []byte(headerB64 + "." + payloadB64),
	}, nil
}

// Encode assembles the compact form from already-serialized header and
// payload JSON bytes plus a signature produced over the signing input.
// Canonicalization is the caller's responsibility: this function
// performs no re-sorting or re-marshaling.
func Encode(headerJSON, payloadJSON []byte, sign func(signingInput []byte) ([]byte, error)) (string, error) {
	headerB64 := base64url.Encode(headerJSON)
	payloadB64 := base64url.Encode(payloadJSON)
	signingInput := []byte(headerB64 + "." + payloadB64)

	var sigB64 string
	if sign != nil {
		sig, err := sign(signingInput)
		if err != nil {
			return "", fmt.Errorf("serializer: sign: %w", err)
		}
		sigB64 = base64url.Encode(sig)
	}

	return headerB64 + "." + payloadB64 + "." + sigB64, nil
}
