// Package signing implements RSA-PKCS1-v1.5 and HMAC signing and
// verification over the SHA-2 family. The Validator and Token Builder
// never touch crypto/hmac or crypto/rsa directly — they go through a
// Factory, keeping the signature primitive swappable behind a small
// capability interface.
package signing

import "crypto"

// Intent distinguishes why a Provider is being requested; some key
// material (e.g. an RSA public key alone) supports Verify but not Sign.
type Intent int

const (
	IntentVerify Intent = iota
	IntentSign
)

// Provider signs or verifies the exact signing-input bytes handed to
// it. It is scoped to a single sign-or-verify call.
type Provider interface {
	// Sign returns the raw (non-base64) signature bytes.
	Sign(signingInput []byte) ([]byte, error)
	// Verify returns nil iff signature is valid for signingInput.
	Verify(signingInput, signature []byte) error
}

// releaser is implemented by providers that hold key material needing
// an explicit zero on release.
type releaser interface {
	release()
}

// Internal algorithm identifiers: stable, implementation-defined
// strings that an AlgorithmMap translates the wire-facing "alg" header
// value to and from.
const (
	AlgHMACSHA256 = "hmac-sha256-uri"
	AlgHMACSHA384 = "hmac-sha384-uri"
	AlgHMACSHA512 = "hmac-sha512-uri"
	AlgRSASHA256  = "rsa-sha256-uri"
	AlgRSASHA384  = "rsa-sha384-uri"
	AlgRSASHA512  = "rsa-sha512-uri"
)

// Factory resolves (key, internal algorithm name, intent) into a
// Provider. The factory itself is safe for concurrent use; individual
// Provider values are scoped to one Sign or Verify call.
type Factory struct{}

// NewFactory returns a ready-to-use Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Get returns a Provider bound to key for the given internal algorithm
// name, or ok=false if the (key, alg) combination is unsupported —
// the caller treats that as UnsupportedAlgorithm.
func (f *Factory) Get(key any, alg string, intent Intent) (p Provider, ok bool) {
	switch alg {
	case AlgHMACSHA256:
		return newHMACProvider(key, crypto.SHA256)
	case AlgHMACSHA384:
		return newHMACProvider(key, crypto.SHA384)
	case AlgHMACSHA512:
		return newHMACProvider(key, crypto.SHA512)
	case AlgRSASHA256:
		return newRSAProvider(key, crypto.SHA256, intent)
	case AlgRSASHA384:
		return newRSAProvider(key, crypto.SHA384, intent)
	case AlgRSASHA512:
		return newRSAProvider(key, crypto.SHA512, intent)
	default:
		return nil, false
	}
}

// Release returns a Provider borrowed from Get, zeroing the key copy
// an HMAC provider owns; RSA providers reference the caller's key and
// own no copy, so nothing is zeroed for them. Safe to call on every
// exit path, including after a failed Sign/Verify.
func (f *Factory) Release(p Provider) {
	if r, ok := p.(releaser); ok {
		r.release()
	}
}
