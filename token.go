package jwt

import (
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/wraithlock/jwt/internal/base64url"
	"github.com/wraithlock/jwt/internal/serializer"
	"github.com/wraithlock/jwt/internal/signing"
)

// Internal algorithm identifiers, re-exported from internal/signing so
// callers never need to import that package directly.
const (
	AlgHS256 = signing.AlgHMACSHA256
	AlgHS384 = signing.AlgHMACSHA384
	AlgHS512 = signing.AlgHMACSHA512
	AlgRS256 = signing.AlgRSASHA256
	AlgRS384 = signing.AlgRSASHA384
	AlgRS512 = signing.AlgRSASHA512
)

// SigningCredentials pairs a key with the internal algorithm name used
// to sign with it.
type SigningCredentials struct {
	Key       SecurityKey
	Algorithm string
}

// Jwt is a parsed or freshly built compact JWT: header, payload, and
// the exact bytes a SignatureProvider was (or will be) run over.
type Jwt struct {
	Header  *Header
	Payload Claims

	// Raw is the full compact string. Always non-empty once a Jwt has
	// been parsed or built; WriteToken returns it verbatim rather than
	// re-serializing, so a token round-trips byte-for-byte.
	Raw string

	SigningInput []byte
	Signature    []byte

	// SigningKey is bound during validation once a candidate key
	// verifies the signature; nil otherwise.
	SigningKey SecurityKey

	// validatedIssuer is the issuer string step 6 of Validate resolved,
	// carried forward into the claims-identity build in step 9.
	validatedIssuer string
}

// HasSignature reports whether the token carries a non-empty
// signature segment.
func (t *Jwt) HasSignature() bool { return len(t.Signature) > 0 }

// CanRead reports whether raw has the shape of a compact JWT and twice
// its length does not exceed the default size cap. It never inspects
// JSON contents.
func CanRead(raw string) bool {
	return serializer.CanRead(raw, DefaultMaxTokenSizeBytes)
}

// ReadToken performs structural decoding only — no signature
// verification, no policy checks. Use Validate for anything that
// crosses a trust boundary.
func ReadToken(raw string) (*Jwt, error) {
	compact, err := serializer.Decode(raw, DefaultMaxTokenSizeBytes)
	if err != nil {
		return nil, translateSerializerErr(err)
	}

	var header Header
	if err := json.Unmarshal(compact.HeaderRaw, &header); err != nil {
		return nil, fail(ErrMalformedToken, "header: "+err.Error())
	}

	var claims Claims
	if err := json.Unmarshal(compact.PayloadRaw, &claims); err != nil {
		return nil, fail(ErrMalformedToken, "payload: "+err.Error())
	}
	if claims == nil {
		claims = Claims{}
	}

	return &Jwt{
		Header:       &header,
		Payload:      claims,
		Raw:          raw,
		SigningInput: compact.SigningInput,
		Signature:    compact.Signature,
	}, nil
}

// WriteToken returns t's compact form. If t.Raw is already populated
// (the common case — every ReadToken and CreateToken result carries
// one) it is returned verbatim; otherwise the header and payload are
// re-serialized around the existing signature bytes without re-signing.
func WriteToken(t *Jwt) (string, error) {
	if t == nil {
		return "", fail(ErrArgumentMissing, "token is required")
	}
	if t.Raw != "" {
		return t.Raw, nil
	}

	headerJSON, err := json.Marshal(t.Header)
	if err != nil {
		return "", fail(ErrMalformedToken, "header: "+err.Error())
	}
	payloadJSON, err := json.Marshal(t.Payload)
	if err != nil {
		return "", fail(ErrMalformedToken, "payload: "+err.Error())
	}

	sigB64 := ""
	if len(t.Signature) > 0 {
		sigB64 = base64url.Encode(t.Signature)
	}
	return base64url.Encode(headerJSON) + "." + base64url.Encode(payloadJSON) + "." + sigB64, nil
}

// Actor describes the delegated identity to embed as a subject's
// "actort" claim when building a token.
type Actor struct {
	// BootstrapContext is either a raw compact string or a *Jwt to
	// derive the actor value from. Nil means "mint a fresh unsigned
	// token from Claims".
	BootstrapContext any
	Claims           Claims
}

// TokenDescriptor is the Token Builder's input.
type TokenDescriptor struct {
	Issuer   string
	Audience []string
	Claims   Claims

	// NotBefore and ExpiresAt default to now and now+DefaultTokenLifetime.
	NotBefore *NumericDate
	ExpiresAt *NumericDate

	// SigningCredentials is nil for an unsigned ("none") token.
	SigningCredentials *SigningCredentials

	Actor *Actor

	Crypto *CryptoConfig
	Clock  func() time.Time
}

// CreateToken assembles a header and payload from desc, signs them if
// SigningCredentials is set, and returns the resulting Jwt. The
// caller's Claims map is never mutated — the payload is built from a
// fresh copy.
func CreateToken(desc *TokenDescriptor) (*Jwt, error) {
	if desc == nil {
		return nil, fail(ErrArgumentMissing, "token descriptor is required")
	}

	crypto := desc.Crypto
	if crypto == nil {
		crypto = NewDefaultCryptoConfig()
	}
	clock := desc.Clock
	if clock == nil {
		clock = time.Now
	}
	now := NewNumericDate(clock())

	header := &Header{Typ: "JWT", Alg: "none"}
	factory := signing.NewFactory()
	var signFn func([]byte) ([]byte, error)

	if sc := desc.SigningCredentials; sc != nil {
		if sc.Key == nil {
			return nil, fail(ErrArgumentMissing, "signing credentials require a key")
		}
		header.Alg = crypto.Algorithms.ToWire(sc.Algorithm)
		if kid := sc.Key.KeyID(); kid != "" {
			header.Kid = kid
		}
		provider, ok := factory.Get(sc.Key.Material(), sc.Algorithm, signing.IntentSign)
		if !ok {
			return nil, fail(ErrUnsupportedAlgorithm, "no signer for the given key and algorithm")
		}
		signFn = func(signingInput []byte) ([]byte, error) {
			defer factory.Release(provider)
			return provider.Sign(signingInput)
		}
	}

	payload := Claims{}
	for k, v := range desc.Claims {
		payload[k] = v
	}
	if desc.Issuer != "" {
		payload.Set(claimIssuer, desc.Issuer)
	}
	if len(desc.Audience) > 0 {
		payload.SetAudience(desc.Audience)
	}

	notBefore := now
	if desc.NotBefore != nil {
		notBefore = *desc.NotBefore
	}
	expiresAt := NewNumericDate(clock().Add(DefaultTokenLifetime))
	if desc.ExpiresAt != nil {
		expiresAt = *desc.ExpiresAt
	}
	payload.SetNotBefore(notBefore)
	payload.SetExpiresAt(expiresAt)
	payload.SetIssuedAt(now)
	if _, ok := payload.ID(); !ok {
		payload.Set(claimID, uuid.NewString())
	}

	if desc.Actor != nil {
		actorValue, err := resolveActorValue(desc.Actor, crypto, clock)
		if err != nil {
			return nil, err
		}
		if actorValue != "" {
			payload.Set(claimActor, actorValue)
		}
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return nil, fail(ErrMalformedToken, "header: "+err.Error())
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fail(ErrMalformedToken, "payload: "+err.Error())
	}

	raw, err := serializer.Encode(headerJSON, payloadJSON, signFn)
	if err != nil {
		return nil, failWith(ErrUnsupportedAlgorithm, "signing failed", err)
	}

	firstDot := strings.IndexByte(raw, '.')
	lastDot := strings.LastIndexByte(raw, '.')
	headerB64, payloadB64, sigB64 := raw[:firstDot], raw[firstDot+1:lastDot], raw[lastDot+1:]
	var sigBytes []byte
	if sigB64 != "" {
		sigBytes, _ = base64url.Decode(sigB64)
	}

	return &Jwt{
		Header:       header,
		Payload:      payload,
		Raw:          raw,
		SigningInput: []byte(headerB64 + "." + payloadB64),
		Signature:    sigBytes,
	}, nil
}

// resolveActorValue implements the actor-value construction rules: use
// a verbatim string bootstrap context, else the raw (or re-serialized)
// form of a *Jwt bootstrap context, else mint a fresh unsigned token
// from the actor's own claims.
func resolveActorValue(actor *Actor, crypto *CryptoConfig, clock func() time.Time) (string, error) {
	switch bc := actor.BootstrapContext.(type) {
	case string:
		if bc != "" {
			return bc, nil
		}
	case *Jwt:
		if bc != nil {
			return WriteToken(bc)
		}
	}

	fresh, err := CreateToken(&TokenDescriptor{Claims: actor.Claims, Crypto: crypto, Clock: clock})
	if err != nil {
		return "", err
	}
	return fresh.Raw, nil
}
