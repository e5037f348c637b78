// Package jwt implements JSON Web Token creation and validation per
// RFC 7519, using JWS compact serialization (RFC 7515) and the
// HMAC-SHA2 and RSA-PKCS1v1.5 algorithms from RFC 7518.
//
// Build a token with CreateToken and a TokenDescriptor. Validate one
// with Validate, which runs structural parsing, signature
// verification against one or more candidate SecurityKeys, lifetime
// and audience/issuer checks, optional nested actor-token validation,
// and returns a ClaimsPrincipal alongside the parsed Jwt.
//
// Keys are modeled as the SecurityKey interface, with SymmetricKey,
// RsaKey, and X509Key implementations covering HS* and RS*
// algorithms. Wire-name to internal-name algorithm translation goes
// through an AlgorithmMap on CryptoConfig, so callers can register
// non-standard algorithm names without touching the validation
// pipeline.
package jwt
