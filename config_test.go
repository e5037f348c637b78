package jwt

import "testing"

func TestNewValidationParametersDefaults(t *testing.T) {
	p := NewValidationParameters()
	if !p.RequireSignedTokens {
		t.Error("expected RequireSignedTokens to default true")
	}
	if !p.ValidateLifetime {
		t.Error("expected ValidateLifetime to default true")
	}
	if !p.ValidateAudience {
		t.Error("expected ValidateAudience to default true")
	}
	if p.ClockSkew != DefaultClockSkew {
		t.Errorf("expected clock skew %v, got %v", DefaultClockSkew, p.ClockSkew)
	}
	if p.MaxTokenSizeBytes != DefaultMaxTokenSizeBytes {
		t.Errorf("expected max token size %d, got %d", DefaultMaxTokenSizeBytes, p.MaxTokenSizeBytes)
	}
}

func TestCryptoConfigCloneIsIndependent(t *testing.T) {
	c := NewDefaultCryptoConfig()
	clone := c.Clone()
	clone.InboundClaimTypeMap["sub"] = "subject"
	if _, ok := c.InboundClaimTypeMap["sub"]; ok {
		t.Fatal("expected clone mutation not to leak into the original")
	}
}
