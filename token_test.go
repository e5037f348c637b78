package jwt

import (
	"strings"
	"testing"
	"time"
)

func fixedHMACKey() []byte { return make([]byte, 32) }

func TestCreateTokenRoundTrip(t *testing.T) {
	key, err := NewSymmetricKey(fixedHMACKey(), "")
	if err != nil {
		t.Fatalf("NewSymmetricKey: %v", err)
	}

	tok, err := CreateToken(&TokenDescriptor{
		Issuer:   "https://issuer",
		Audience: []string{"api"},
		SigningCredentials: &SigningCredentials{
			Key:       key,
			Algorithm: AlgHS256,
		},
	})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if !strings.Contains(tok.Raw, ".") {
		t.Fatalf("expected compact form, got %q", tok.Raw)
	}
	if tok.Header.Alg != "HS256" {
		t.Fatalf("expected alg HS256, got %q", tok.Header.Alg)
	}

	parsed, err := ReadToken(tok.Raw)
	if err != nil {
		t.Fatalf("ReadToken: %v", err)
	}
	if iss, _ := parsed.Payload.Issuer(); iss != "https://issuer" {
		t.Fatalf("expected issuer to round-trip, got %q", iss)
	}
}

func TestWriteTokenReturnsStoredRaw(t *testing.T) {
	tok := &Jwt{Raw: "a.b.c"}
	out, err := WriteToken(tok)
	if err != nil {
		t.Fatalf("WriteToken: %v", err)
	}
	if out != "a.b.c" {
		t.Fatalf("expected verbatim Raw, got %q", out)
	}
}

func TestCreateTokenUnsigned(t *testing.T) {
	tok, err := CreateToken(&TokenDescriptor{Issuer: "iss"})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if tok.Header.Alg != "none" {
		t.Fatalf("expected alg none, got %q", tok.Header.Alg)
	}
	if tok.HasSignature() {
		t.Fatal("expected no signature segment")
	}
}

func TestCreateTokenDefaultLifetime(t *testing.T) {
	fixedNow := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tok, err := CreateToken(&TokenDescriptor{
		Clock: func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	exp, ok := tok.Payload.ExpiresAt()
	if !ok {
		t.Fatal("expected exp claim")
	}
	wantExp := fixedNow.Add(DefaultTokenLifetime)
	if !exp.Time.Equal(wantExp) {
		t.Fatalf("expected exp %v, got %v", wantExp, exp.Time)
	}
}

func TestCanRead(t *testing.T) {
	if !CanRead("aGVsbG8.d29ybGQ.") {
		t.Fatal("expected valid compact shape to be readable")
	}
	if CanRead("not-a-token") {
		t.Fatal("expected malformed shape to be rejected")
	}
}

func TestCreateTokenActorFreshUnsigned(t *testing.T) {
	tok, err := CreateToken(&TokenDescriptor{
		Issuer: "iss",
		Actor: &Actor{
			Claims: Claims{"sub": "delegate"},
		},
	})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	actorRaw, ok := tok.Payload.Actor()
	if !ok || actorRaw == "" {
		t.Fatal("expected actort claim to be populated")
	}
	actorTok, err := ReadToken(actorRaw)
	if err != nil {
		t.Fatalf("ReadToken(actort): %v", err)
	}
	if sub, _ := actorTok.Payload.Subject(); sub != "delegate" {
		t.Fatalf("expected nested subject, got %q", sub)
	}
}

func TestCreateTokenActorBootstrapString(t *testing.T) {
	tok, err := CreateToken(&TokenDescriptor{
		Actor: &Actor{BootstrapContext: "raw.actor.token"},
	})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if actorRaw, _ := tok.Payload.Actor(); actorRaw != "raw.actor.token" {
		t.Fatalf("expected verbatim bootstrap string, got %q", actorRaw)
	}
}
