package jwt

import (
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // x5t is a SHA-1 thumbprint by RFC 7515 definition
	"crypto/sha256"
	"crypto/x509"

	"github.com/wraithlock/jwt/internal/base64url"
	"github.com/wraithlock/jwt/internal/security"
)

// KeyHints are the header-carried key identifiers a candidate
// SecurityKey is matched against under the kid-matching rule.
type KeyHints struct {
	Kid     string
	X5t     string // base64url SHA-1 thumbprint
	X5tS256 string // base64url SHA-256 thumbprint
}

// Empty reports whether the header carried no key hints at all, in
// which case no candidate can "match" and every key is unmatched.
func (h KeyHints) Empty() bool {
	return h.Kid == "" && h.X5t == "" && h.X5tS256 == ""
}

// SecurityKey is the capability every key kind implements: enough to
// be handed to the Provider Factory and to participate in kid
// matching, factored behind a small interface so new key kinds can
// join kid matching without touching the Validator.
type SecurityKey interface {
	// Material is the raw crypto value handed to the SignatureProvider
	// (a []byte for symmetric keys, *rsa.PrivateKey/*rsa.PublicKey for
	// RSA keys) — opaque to everything except internal/signing.
	Material() any
	// Matches reports whether hints identify this key.
	Matches(hints KeyHints) bool
	// KeyID returns the key's own identifier, if any, used both for
	// matching and for stamping an outgoing header's "kid".
	KeyID() string
}

// SymmetricKey wraps HMAC key bytes. The library clones the caller's
// slice on construction — it never stores an aliased reference to
// caller-owned key bytes — and holds the copy via SecureBytes.
type SymmetricKey struct {
	bytes *security.SecureBytes
	kid   string
}

// NewSymmetricKey clones key into an owned buffer. key must be
// non-empty: a symmetric key must carry at least one byte.
func NewSymmetricKey(key []byte, kid string) (*SymmetricKey, error) {
	if len(key) == 0 {
		return nil, fail(ErrArgumentMissing, "symmetric key must contain at least one byte")
	}
	return &SymmetricKey{bytes: security.NewSecureBytesFromSlice(key), kid: kid}, nil
}

func (k *SymmetricKey) Material() any { return k.bytes.Bytes() }
func (k *SymmetricKey) KeyID() string { return k.kid }

// Matches extends kid matching to symmetric keys: an equal,
// non-empty kid is a match. The default kid-matching rule only
// covers X.509 keys explicitly; this extension lets HMAC keys
// participate in the same key-rollover signal as certificate-backed
// keys.
func (k *SymmetricKey) Matches(hints KeyHints) bool {
	return k.kid != "" && hints.Kid == k.kid
}

// Destroy zeroes the key's owned buffer.
func (k *SymmetricKey) Destroy() { k.bytes.Destroy() }

// RsaKey wraps an RSA public and/or private key pair.
type RsaKey struct {
	Public  *rsa.PublicKey
	Private *rsa.PrivateKey
	kid     string
}

// NewRsaKey builds an RsaKey from a public key, a private key, or
// both. At least one must be non-nil.
func NewRsaKey(public *rsa.PublicKey, private *rsa.PrivateKey, kid string) (*RsaKey, error) {
	if public == nil && private == nil {
		return nil, fail(ErrArgumentMissing, "RSA key requires a public or private component")
	}
	if public == nil {
		public = &private.PublicKey
	}
	return &RsaKey{Public: public, Private: private, kid: kid}, nil
}

func (k *RsaKey) Material() any {
	if k.Private != nil {
		return k.Private
	}
	return k.Public
}

func (k *RsaKey) KeyID() string { return k.kid }

func (k *RsaKey) Matches(hints KeyHints) bool {
	return k.kid != "" && hints.Kid == k.kid
}

// X509Key wraps an X.509 certificate carrying an RSA public key. It
// implements the richer kid-matching rule: match by kid, or by
// either thumbprint clause the certificate supports.
type X509Key struct {
	Certificate *x509.Certificate
	Private     *rsa.PrivateKey // set only when this key can sign
	kid         string

	x5t     string
	x5tS256 string
}

// NewX509Key derives the SHA-1 and SHA-256 thumbprints from cert once,
// up front, so Matches never re-hashes on the hot path.
func NewX509Key(cert *x509.Certificate, private *rsa.PrivateKey, kid string) (*X509Key, error) {
	if cert == nil {
		return nil, fail(ErrArgumentMissing, "X.509 key requires a certificate")
	}
	sum1 := sha1.Sum(cert.Raw) //nolint:gosec // thumbprint algorithm mandated by RFC 7515 x5t
	sum256 := sha256.Sum256(cert.Raw)
	return &X509Key{
		Certificate: cert,
		Private:     private,
		kid:         kid,
		x5t:         base64url.Encode(sum1[:]),
		x5tS256:     base64url.Encode(sum256[:]),
	}, nil
}

func (k *X509Key) Material() any {
	if k.Private != nil {
		return k.Private
	}
	pub, ok := k.Certificate.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil
	}
	return pub
}

func (k *X509Key) KeyID() string { return k.kid }

// Matches implements "matching any of the clause types the certificate
// supports": kid, x5t (SHA-1), or x5t#S256 (SHA-256).
func (k *X509Key) Matches(hints KeyHints) bool {
	if k.kid != "" && hints.Kid == k.kid {
		return true
	}
	if hints.X5t != "" && hints.X5t == k.x5t {
		return true
	}
	if hints.X5tS256 != "" && hints.X5tS256 == k.x5tS256 {
		return true
	}
	return false
}
