package jwt

import "fmt"

// Claim is one attached member of a ClaimsIdentity.
type Claim struct {
	Type  string
	Value string

	// OriginalType is the payload's own claim name, recorded when
	// InboundClaimTypeMap renamed it. Equal to Type when unmapped.
	OriginalType string

	Issuer         string
	OriginalIssuer string
}

// ClaimsIdentity is the validated result attached to a ClaimsPrincipal.
type ClaimsIdentity struct {
	AuthenticationType string
	NameClaimType      string
	RoleClaimType      string
	Claims             []Claim

	// Actor holds at most one nested delegated identity, built from
	// the payload's "actort" claim.
	Actor *ClaimsIdentity

	// BootstrapContext is the raw compact token, attached when the
	// caller asked to save it.
	BootstrapContext string
}

// Name returns the value of the claim whose type is NameClaimType, or
// "" if absent.
func (id *ClaimsIdentity) Name() string {
	return id.claimValue(id.NameClaimType)
}

// Roles returns the values of every claim whose type is RoleClaimType.
func (id *ClaimsIdentity) Roles() []string {
	var roles []string
	for _, c := range id.Claims {
		if c.Type == id.RoleClaimType {
			roles = append(roles, c.Value)
		}
	}
	return roles
}

func (id *ClaimsIdentity) claimValue(claimType string) string {
	if claimType == "" {
		return ""
	}
	for _, c := range id.Claims {
		if c.Type == claimType {
			return c.Value
		}
	}
	return ""
}

// ClaimsPrincipal wraps the identity a validated token maps to.
type ClaimsPrincipal struct {
	Identity *ClaimsIdentity
}

// buildClaimsPrincipal maps a validated token's payload onto a
// ClaimsPrincipal, attaching at most one claim of the "actor" type per
// identity as a nested identity; a nested actor token's own actor
// claim is followed the same way.
func buildClaimsPrincipal(token *Jwt, params *ValidationParameters, validatedIssuer string, depth int) (*ClaimsPrincipal, error) {
	nameClaimType := params.NameClaimType
	if params.NameClaimTypeRetriever != nil {
		nameClaimType = params.NameClaimTypeRetriever(token)
	}
	roleClaimType := params.RoleClaimType
	if params.RoleClaimTypeRetriever != nil {
		roleClaimType = params.RoleClaimTypeRetriever(token)
	}

	identity := &ClaimsIdentity{
		AuthenticationType: params.AuthenticationType,
		NameClaimType:      nameClaimType,
		RoleClaimType:      roleClaimType,
	}

	crypto := params.crypto()
	actorAttached := false

	for name, value := range token.Payload {
		if _, filtered := crypto.InboundClaimFilter[name]; filtered {
			continue
		}

		claimType := name
		if mapped, ok := crypto.InboundClaimTypeMap[name]; ok {
			claimType = mapped
		}

		if claimType == ActorClaimType && !actorAttached {
			if s, ok := value.(string); ok && s != "" {
				if nested, err := ReadToken(s); err == nil {
					if actorPrincipal, err := buildClaimsPrincipal(nested, params, validatedIssuer, depth+1); err == nil {
						identity.Actor = actorPrincipal.Identity
						actorAttached = true
						continue
					}
				}
			}
		}

		identity.Claims = append(identity.Claims, Claim{
			Type:           claimType,
			Value:          fmt.Sprint(value),
			OriginalType:   name,
			Issuer:         validatedIssuer,
			OriginalIssuer: validatedIssuer,
		})
	}

	if params.SaveSigninToken {
		raw := token.Raw
		if raw == "" {
			raw, _ = WriteToken(token)
		}
		identity.BootstrapContext = raw
	}

	return &ClaimsPrincipal{Identity: identity}, nil
}
