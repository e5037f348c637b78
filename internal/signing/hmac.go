package signing

import (
	"crypto"
	"crypto/hmac"
	"fmt"

	"github.com/wraithlock/jwt/internal/security"
)

type hmacProvider struct {
	key    *security.SecureBytes
	hasher crypto.Hash
}

// newHMACProvider accepts []byte or string key material. It never
// retains the caller's backing array — it clones into a SecureBytes
// immediately.
func newHMACProvider(key any, hasher crypto.Hash) (Provider, bool) {
	var raw []byte
	switch k := key.(type) {
	case []byte:
		raw = k
	case string:
		raw = []byte(k)
	default:
		return nil, false
	}
	if len(raw) == 0 {
		return nil, false
	}
	if !hasher.Available() {
		return nil, false
	}
	return &hmacProvider{key: security.NewSecureBytesFromSlice(raw), hasher: hasher}, true
}

func (h *hmacProvider) Sign(signingInput []byte) ([]byte, error) {
	keyBytes := h.key.Bytes()
	defer security.ZeroBytes(keyBytes)

	mac := hmac.New(h.hasher.New, keyBytes)
	mac.Write(signingInput)
	return mac.Sum(nil), nil
}

func (h *hmacProvider) Verify(signingInput, signature []byte) error {
	expected, err := h.Sign(signingInput)
	if err != nil {
		return err
	}
	defer security.ZeroBytes(expected)

	if !security.Compare(signature, expected) {
		return fmt.Errorf("hmac: signature mismatch")
	}
	return nil
}

func (h *hmacProvider) release() {
	h.key.Destroy()
}
