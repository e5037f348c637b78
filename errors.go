package jwt

import (
	"errors"
	"fmt"

	"github.com/wraithlock/jwt/internal/serializer"
)

// Category sentinels for the error taxonomy. Callers
// branch on these with errors.Is; SigningKeyNotFound is the one
// category a caller should treat as "refresh your key set and retry"
// rather than "reject the request" (see ValidationFailure).
var (
	ErrArgumentMissing      = errors.New("jwt: required argument missing")
	ErrTokenTooLarge        = errors.New("jwt: token exceeds maximum size")
	ErrMalformedToken       = errors.New("jwt: malformed token")
	ErrUnsupportedAlgorithm = errors.New("jwt: unsupported algorithm for the given key")
	ErrSignatureRequired    = errors.New("jwt: unsigned token rejected by policy")
	ErrInvalidSignature     = errors.New("jwt: signature verification failed")
	ErrSigningKeyNotFound   = errors.New("jwt: no candidate key verified the signature, but a kid matched")
	ErrNoExpiration         = errors.New("jwt: token has no expiration claim")
	ErrNotYetValid          = errors.New("jwt: token is not yet valid")
	ErrExpired              = errors.New("jwt: token has expired")
	ErrInvalidAudience      = errors.New("jwt: audience not accepted")
	ErrInvalidIssuer        = errors.New("jwt: issuer not accepted")
	ErrInvalidActor         = errors.New("jwt: nested actor token failed validation")
	ErrActorDepthExceeded   = errors.New("jwt: actor nesting exceeds the configured depth")
	ErrInvalidSigningKey    = errors.New("jwt: signing key rejected by key policy")
)

// ValidationFailure is the concrete error type Validate returns for a
// failure of its own checks. It always wraps exactly one of the
// category sentinels above so errors.Is(err, jwt.ErrExpired) works,
// while Detail carries human-readable diagnostics that never include
// key bytes. An error returned by a caller-supplied IssuerValidator,
// AudienceValidator or LifetimeValidator is passed on as is; it is not
// wrapped in a ValidationFailure or tagged with a category.
type ValidationFailure struct {
	Category error
	Detail   string
	Cause    error
}

func (f *ValidationFailure) Error() string {
	if f.Detail == "" {
		return f.Category.Error()
	}
	return fmt.Sprintf("%s: %s", f.Category, f.Detail)
}

func (f *ValidationFailure) Unwrap() []error {
	if f.Cause != nil {
		return []error{f.Category, f.Cause}
	}
	return []error{f.Category}
}

func fail(category error, detail string) *ValidationFailure {
	return &ValidationFailure{Category: category, Detail: detail}
}

func failWith(category error, detail string, cause error) *ValidationFailure {
	return &ValidationFailure{Category: category, Detail: detail, Cause: cause}
}

// translateSerializerErr maps a serializer-layer failure onto the
// package's own taxonomy; both ReadToken and the Validator's parse
// step go through it.
func translateSerializerErr(err error) error {
	switch {
	case errors.Is(err, serializer.ErrTooLarge):
		return failWith(ErrTokenTooLarge, "raw token exceeds the configured maximum size", err)
	case errors.Is(err, serializer.ErrMalformed):
		return failWith(ErrMalformedToken, err.Error(), err)
	default:
		return failWith(ErrMalformedToken, err.Error(), err)
	}
}
