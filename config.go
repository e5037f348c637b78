package jwt

import (
	"crypto/x509"
	"iter"
	"time"
)

// DefaultMaxTokenSizeBytes is the pre-acceptance size cap enforced
// before any parsing occurs.
const DefaultMaxTokenSizeBytes = 262144

// DefaultTokenLifetime is the Token Builder's default validity window
// when the caller supplies no explicit expiry.
const DefaultTokenLifetime = 60 * time.Minute

// DefaultClockSkew is the symmetric tolerance applied to nbf/exp
// comparisons.
const DefaultClockSkew = 5 * time.Minute

// ActorClaimType is the well-known claims-identity type that carries a
// nested actor identity.
const ActorClaimType = "actor"

// CryptoConfig bundles the algorithm map and claims-identity type maps
// a Validator or Token Builder reads. It is a plain value passed into
// (or cloned into) each call, with a process default for convenience,
// rather than a mutable package-level singleton.
type CryptoConfig struct {
	Algorithms *AlgorithmMap

	// InboundClaimTypeMap renames a payload claim's short name to a
	// longer claims-identity type when building a ClaimsPrincipal.
	// Entries absent from the map pass the claim through unchanged.
	InboundClaimTypeMap map[string]string

	// InboundClaimFilter lists claim types the identity adapter drops
	// entirely rather than attaching to the principal.
	InboundClaimFilter map[string]struct{}
}

// NewDefaultCryptoConfig returns the default AlgorithmMap and claim
// maps. The only seeded rename is the reserved payload claim name
// (claimActor, "actort") to the well-known claims-identity type
// ActorClaimType, so a nested actor claim is recognized by
// buildClaimsPrincipal without any caller configuration; every other
// claim passes through unchanged.
func NewDefaultCryptoConfig() *CryptoConfig {
	return &CryptoConfig{
		Algorithms: NewAlgorithmMap(),
		InboundClaimTypeMap: map[string]string{
			claimActor: ActorClaimType,
		},
		InboundClaimFilter: map[string]struct{}{},
	}
}

// Clone returns an independent copy so a single call's overrides never
// leak into the process default.
func (c *CryptoConfig) Clone() *CryptoConfig {
	clone := &CryptoConfig{
		Algorithms:          c.Algorithms.Clone(),
		InboundClaimTypeMap: make(map[string]string, len(c.InboundClaimTypeMap)),
		InboundClaimFilter:  make(map[string]struct{}, len(c.InboundClaimFilter)),
	}
	for k, v := range c.InboundClaimTypeMap {
		clone.InboundClaimTypeMap[k] = v
	}
	for k := range c.InboundClaimFilter {
		clone.InboundClaimFilter[k] = struct{}{}
	}
	return clone
}

// ValidationParameters is the policy record driving the Validator
// pipeline. Behavior is composed by overriding the function-valued
// fields, not by subclassing a base handler.
type ValidationParameters struct {
	// Issuer policy.
	ValidIssuers    map[string]struct{}
	IssuerValidator func(issuer string, token *Jwt, params *ValidationParameters) (string, error)

	// Audience policy.
	ValidAudiences    map[string]struct{}
	ValidateAudience  bool
	AudienceValidator func(audiences []string, token *Jwt, params *ValidationParameters) error

	// Candidate key sources for signature verification, consulted in
	// this order: IssuerSigningKeyRetriever, then IssuerSigningKey,
	// then IssuerSigningKeys.
	IssuerSigningKey          SecurityKey
	IssuerSigningKeys         []SecurityKey
	IssuerSigningKeyRetriever func(rawToken string) iter.Seq[SecurityKey]

	// Lifetime policy.
	ValidateLifetime      bool
	ClockSkew             time.Duration
	RequireExpirationTime bool
	LifetimeValidator     func(nbf, exp *NumericDate, token *Jwt, params *ValidationParameters) error

	RequireSignedTokens bool

	// Actor (delegation) policy.
	ValidateActor bool
	MaxActorDepth int

	// Signing-key acceptance policy, run after a signature has already
	// verified — e.g. rejecting keys backed by an expired certificate.
	ValidateIssuerSigningKey bool
	CertificateValidator     func(cert *x509.Certificate) error

	// Claims-identity adapter.
	NameClaimType          string
	RoleClaimType          string
	NameClaimTypeRetriever func(token *Jwt) string
	RoleClaimTypeRetriever func(token *Jwt) string
	SaveSigninToken        bool
	AuthenticationType     string

	MaxTokenSizeBytes int

	Crypto *CryptoConfig
	Logger Logger

	// Clock lets tests fix "now" deterministically; nil means
	// time.Now.
	Clock func() time.Time
}

// NewValidationParameters returns the library defaults:
// RequireSignedTokens=true, ValidateLifetime=true,
// ValidateAudience=true, a 5-minute ClockSkew, and a 256KiB token
// size cap.
func NewValidationParameters() *ValidationParameters {
	return &ValidationParameters{
		ValidIssuers:        map[string]struct{}{},
		ValidAudiences:      map[string]struct{}{},
		ValidateAudience:    true,
		ValidateLifetime:    true,
		ClockSkew:           DefaultClockSkew,
		RequireSignedTokens: true,
		MaxActorDepth:       1,
		MaxTokenSizeBytes:   DefaultMaxTokenSizeBytes,
		AuthenticationType:  "JWT",
		Crypto:              NewDefaultCryptoConfig(),
		Logger:              nopLogger{},
		Clock:               time.Now,
	}
}

func (p *ValidationParameters) now() time.Time {
	if p.Clock != nil {
		return p.Clock()
	}
	return time.Now()
}

func (p *ValidationParameters) logger() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return nopLogger{}
}

func (p *ValidationParameters) crypto() *CryptoConfig {
	if p.Crypto != nil {
		return p.Crypto
	}
	return NewDefaultCryptoConfig()
}

func (p *ValidationParameters) maxTokenSize() int {
	if p.MaxTokenSizeBytes > 0 {
		return p.MaxTokenSizeBytes
	}
	return DefaultMaxTokenSizeBytes
}
