package signing

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
)

type rsaProvider struct {
	public  *rsa.PublicKey
	private *rsa.PrivateKey
	hasher  crypto.Hash
}

// newRSAProvider accepts *rsa.PrivateKey (sign or verify) or
// *rsa.PublicKey (verify only).
func newRSAProvider(key any, hasher crypto.Hash, intent Intent) (Provider, bool) {
	if !hasher.Available() {
		return nil, false
	}
	switch k := key.(type) {
	case *rsa.PrivateKey:
		return &rsaProvider{public: &k.PublicKey, private: k, hasher: hasher}, true
	case *rsa.PublicKey:
		if intent == IntentSign {
			return nil, false
		}
		return &rsaProvider{public: k, hasher: hasher}, true
	default:
		return nil, false
	}
}

func (r *rsaProvider) Sign(signingInput []byte) ([]byte, error) {
	if r.private == nil {
		return nil, errNoPrivateKey
	}
	h := r.hasher.New()
	h.Write(signingInput)
	return rsa.SignPKCS1v15(rand.Reader, r.private, r.hasher, h.Sum(nil))
}

func (r *rsaProvider) Verify(signingInput, signature []byte) error {
	h := r.hasher.New()
	h.Write(signingInput)
	return rsa.VerifyPKCS1v15(r.public, r.hasher, h.Sum(nil), signature)
}

var errNoPrivateKey = rsaError("rsa: provider has no private key to sign with")

type rsaError string

func (e rsaError) Error() string { return string(e) }
