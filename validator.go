package jwt

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/wraithlock/jwt/internal/serializer"
	"github.com/wraithlock/jwt/internal/signing"
)

// Validate runs the full verification pipeline against rawToken:
// structural checks, signature verification against params' candidate
// keys, lifetime, audience, issuer, actor recursion, and signing-key
// policy, in that fixed order. Earlier failures mask later ones —
// callers must not reorder or parallelize these checks.
func Validate(rawToken string, params *ValidationParameters) (*Jwt, *ClaimsPrincipal, error) {
	if params == nil {
		params = NewValidationParameters()
	}
	token, err := validateAtDepth(rawToken, params, 0)
	if err != nil {
		return nil, nil, err
	}
	principal, err := buildClaimsPrincipal(token, params, token.validatedIssuer, 0)
	if err != nil {
		return nil, nil, err
	}
	return token, principal, nil
}

func validateAtDepth(rawToken string, params *ValidationParameters, depth int) (*Jwt, error) {
	// 1. Pre-checks.
	if strings.TrimSpace(rawToken) == "" {
		return nil, fail(ErrArgumentMissing, "token is required")
	}
	maxSize := params.maxTokenSize()
	if len(rawToken) > maxSize {
		return nil, fail(ErrTokenTooLarge, "raw token exceeds the configured maximum size")
	}
	if !serializer.CanRead(rawToken, maxSize) {
		return nil, fail(ErrMalformedToken, "token does not match the compact three-segment shape")
	}

	// 2. Parse.
	compact, err := serializer.Decode(rawToken, maxSize)
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
	token := &Jwt{
		Header:       &header,
		Payload:      claims,
		Raw:          rawToken,
		SigningInput: compact.SigningInput,
		Signature:    compact.Signature,
	}

	// 3. Signature verification.
	if err := verifySignature(token, params); err != nil {
		return nil, err
	}

	// 4. Lifetime.
	if params.ValidateLifetime {
		if err := checkLifetime(token, params); err != nil {
			return nil, err
		}
	}

	// 5. Audience.
	if params.ValidateAudience {
		if err := checkAudience(token, params); err != nil {
			return nil, err
		}
	}

	// 6. Issuer.
	validatedIssuer, err := checkIssuer(token, params)
	if err != nil {
		return nil, err
	}
	token.validatedIssuer = validatedIssuer

	// 7. Actor.
	if params.ValidateActor {
		if actorRaw, ok := token.Payload.Actor(); ok && actorRaw != "" {
			maxDepth := params.MaxActorDepth
			if maxDepth <= 0 {
				maxDepth = 1
			}
			if depth+1 > maxDepth {
				return nil, fail(ErrActorDepthExceeded, "nested actor tokens exceed the configured depth")
			}
			if _, err := validateAtDepth(actorRaw, params, depth+1); err != nil {
				return nil, failWith(ErrInvalidActor, "nested actor token failed validation", err)
			}
		}
	}

	// 8. Signing-key policy.
	if params.ValidateIssuerSigningKey && token.SigningKey != nil {
		if x5, ok := token.SigningKey.(*X509Key); ok && params.CertificateValidator != nil {
			if err := params.CertificateValidator(x5.Certificate); err != nil {
				return nil, failWith(ErrInvalidSigningKey, "certificate rejected by policy", err)
			}
		}
	}

	return token, nil
}

func verifySignature(token *Jwt, params *ValidationParameters) error {
	alg := params.crypto().Algorithms.ToInternal(token.Header.Alg)

	if !token.HasSignature() {
		if params.RequireSignedTokens {
			return fail(ErrSignatureRequired, "unsigned token rejected by policy")
		}
		return nil
	}

	hints := token.Header.Hints()
	var matched, unmatched []SecurityKey
	classify := func(k SecurityKey) {
		if k == nil {
			return
		}
		if !hints.Empty() && k.Matches(hints) {
			matched = append(matched, k)
		} else {
			unmatched = append(unmatched, k)
		}
	}

	if params.IssuerSigningKeyRetriever != nil {
		for k := range params.IssuerSigningKeyRetriever(token.Raw) {
			classify(k)
		}
	}
	if params.IssuerSigningKey != nil {
		classify(params.IssuerSigningKey)
	}
	for _, k := range params.IssuerSigningKeys {
		classify(k)
	}

	factory := signing.NewFactory()
	var diagnostics []string
	var firstCause error
	log := params.logger()

	tryKey := func(k SecurityKey) bool {
		provider, ok := factory.Get(k.Material(), alg, signing.IntentVerify)
		if !ok {
			log.Warnf("jwt: kid=%q: unsupported algorithm %q", k.KeyID(), token.Header.Alg)
			diagnostics = append(diagnostics, fmt.Sprintf("kid=%q: unsupported algorithm %q", k.KeyID(), token.Header.Alg))
			return false
		}
		verifyErr := provider.Verify(token.SigningInput, token.Signature)
		factory.Release(provider)
		if verifyErr != nil {
			if firstCause == nil {
				firstCause = verifyErr
			}
			log.Debugf("jwt: kid=%q: signature verify failed: %v", k.KeyID(), verifyErr)
			diagnostics = append(diagnostics, fmt.Sprintf("kid=%q: %v", k.KeyID(), verifyErr))
			return false
		}
		token.SigningKey = k
		return true
	}

	for _, k := range matched {
		if tryKey(k) {
			return nil
		}
	}
	for _, k := range unmatched {
		if tryKey(k) {
			return nil
		}
	}

	diag := strings.Join(diagnostics, "; ")
	if len(matched) > 0 {
		log.Errorf("jwt: signing key not found among %d matched candidate(s): %s", len(matched), diag)
		return failWith(ErrSigningKeyNotFound, diag, firstCause)
	}
	log.Errorf("jwt: invalid signature against %d candidate(s): %s", len(matched)+len(unmatched), diag)
	return failWith(ErrInvalidSignature, diag, firstCause)
}

func checkLifetime(token *Jwt, params *ValidationParameters) error {
	exp, hasExp := token.Payload.ExpiresAt()
	nbf, hasNbf := token.Payload.NotBefore()

	if params.LifetimeValidator != nil {
		var expPtr, nbfPtr *NumericDate
		if hasExp {
			expPtr = &exp
		}
		if hasNbf {
			nbfPtr = &nbf
		}
		return params.LifetimeValidator(nbfPtr, expPtr, token, params)
	}

	if params.RequireExpirationTime && !hasExp {
		return fail(ErrNoExpiration, "token has no expiration claim")
	}

	now := params.now()
	skew := params.ClockSkew

	if hasNbf && nbf.Time.After(now.Add(skew)) {
		return fail(ErrNotYetValid, "token is not yet valid")
	}
	if hasExp && !now.Add(-skew).Before(exp.Time) {
		return fail(ErrExpired, "token has expired")
	}
	return nil
}

func checkAudience(token *Jwt, params *ValidationParameters) error {
	audience, ok := token.Payload.Audience()

	if params.AudienceValidator != nil {
		return params.AudienceValidator(audience, token, params)
	}

	if !ok {
		return fail(ErrInvalidAudience, "token carries no audience")
	}
	for _, a := range audience {
		if _, in := params.ValidAudiences[a]; in {
			return nil
		}
	}
	return fail(ErrInvalidAudience, "audience not accepted")
}

func checkIssuer(token *Jwt, params *ValidationParameters) (string, error) {
	issuer, _ := token.Payload.Issuer()

	if params.IssuerValidator != nil {
		validated, err := params.IssuerValidator(issuer, token, params)
		if err != nil {
			return "", err
		}
		return validated, nil
	}

	if issuer == "" {
		return "", fail(ErrInvalidIssuer, "token carries no issuer")
	}
	if _, in := params.ValidIssuers[issuer]; !in {
		return "", fail(ErrInvalidIssuer, "issuer not accepted")
	}
	return issuer, nil
}
