package jwt

// Claims is a typed view over the JWT payload JSON: a
// generic map so non-reserved claims stay opaque to the Validator,
// with accessors for the reserved members it does understand.
type Claims map[string]any

// reserved claim names, RFC 7519 §4.1.
const (
	claimIssuer    = "iss"
	claimSubject   = "sub"
	claimAudience  = "aud"
	claimExpires   = "exp"
	claimNotBefore = "nbf"
	claimIssuedAt  = "iat"
	claimID        = "jti"
	claimActor     = "actort"
)

// Get returns a non-reserved (or reserved) claim value verbatim.
func (c Claims) Get(name string) (any, bool) {
	v, ok := c[name]
	return v, ok
}

// Set assigns a claim value, reserved or otherwise.
func (c Claims) Set(name string, value any) {
	c[name] = value
}

// Issuer returns the "iss" claim.
func (c Claims) Issuer() (string, bool) {
	return stringClaim(c, claimIssuer)
}

// Subject returns the "sub" claim.
func (c Claims) Subject() (string, bool) {
	return stringClaim(c, claimSubject)
}

// Audience returns the "aud" claim normalized to a set, whether the
// wire form was a single string or a JSON array.
func (c Claims) Audience() ([]string, bool) {
	v, ok := c[claimAudience]
	if !ok {
		return nil, false
	}
	switch aud := v.(type) {
	case string:
		if aud == "" {
			return nil, false
		}
		return []string{aud}, true
	case []string:
		return aud, len(aud) > 0
	case []any:
		out := make([]string, 0, len(aud))
		for _, a := range aud {
			if s, ok := a.(string); ok {
				out = append(out, s)
			}
		}
		return out, len(out) > 0
	default:
		return nil, false
	}
}

// ExpiresAt returns the "exp" claim.
func (c Claims) ExpiresAt() (NumericDate, bool) {
	return numericClaim(c, claimExpires)
}

// NotBefore returns the "nbf" claim.
func (c Claims) NotBefore() (NumericDate, bool) {
	return numericClaim(c, claimNotBefore)
}

// IssuedAt returns the "iat" claim.
func (c Claims) IssuedAt() (NumericDate, bool) {
	return numericClaim(c, claimIssuedAt)
}

// ID returns the "jti" claim.
func (c Claims) ID() (string, bool) {
	return stringClaim(c, claimID)
}

// Actor returns the "actort" claim: a nested compact JWT representing
// delegated identity.
func (c Claims) Actor() (string, bool) {
	return stringClaim(c, claimActor)
}

// SetAudience normalizes aud to a single JSON string when it holds
// exactly one value, or a JSON array otherwise — RFC 7519 §4.1.3's
// "SHOULD... single string" recommendation.
func (c Claims) SetAudience(aud []string) {
	switch len(aud) {
	case 0:
		delete(c, claimAudience)
	case 1:
		c[claimAudience] = aud[0]
	default:
		c[claimAudience] = aud
	}
}

// SetExpiresAt sets "exp" as an integer NumericDate.
func (c Claims) SetExpiresAt(d NumericDate) { c[claimExpires] = d.Unix() }

// SetNotBefore sets "nbf" as an integer NumericDate.
func (c Claims) SetNotBefore(d NumericDate) { c[claimNotBefore] = d.Unix() }

// SetIssuedAt sets "iat" as an integer NumericDate.
func (c Claims) SetIssuedAt(d NumericDate) { c[claimIssuedAt] = d.Unix() }

func stringClaim(c Claims, name string) (string, bool) {
	v, ok := c[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func numericClaim(c Claims, name string) (NumericDate, bool) {
	v, ok := c[name]
	if !ok {
		return NumericDate{}, false
	}
	return numericDateFromClaim(v)
}
