package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"math/big"
	"testing"
	"time"
)

func TestSymmetricKeyMatchesByKid(t *testing.T) {
	key, err := NewSymmetricKey([]byte("secret-key-bytes"), "v1")
	if err != nil {
		t.Fatalf("NewSymmetricKey: %v", err)
	}
	if !key.Matches(KeyHints{Kid: "v1"}) {
		t.Fatal("expected matching kid to match")
	}
	if key.Matches(KeyHints{Kid: "v2"}) {
		t.Fatal("expected mismatched kid not to match")
	}
}

func TestNewSymmetricKeyRejectsEmpty(t *testing.T) {
	if _, err := NewSymmetricKey(nil, ""); err == nil {
		t.Fatal("expected an empty key to be rejected")
	}
}

func TestRsaKeyRequiresAComponent(t *testing.T) {
	if _, err := NewRsaKey(nil, nil, ""); err == nil {
		t.Fatal("expected NewRsaKey to require a public or private component")
	}
}

func TestX509KeyMatchesByThumbprint(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &priv.PublicKey, priv)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}

	key, err := NewX509Key(cert, priv, "")
	if err != nil {
		t.Fatalf("NewX509Key: %v", err)
	}

	hints := KeyHints{X5t: key.x5t}
	if !key.Matches(hints) {
		t.Fatal("expected x5t thumbprint match")
	}
	if key.Matches(KeyHints{X5t: "wrong"}) {
		t.Fatal("expected mismatched thumbprint not to match")
	}
}
