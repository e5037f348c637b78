package jwt

import (
	"github.com/wraithlock/jwt/internal/signing"
)

// AlgorithmMap translates between the wire-facing "alg" header value
// and the internal name a Provider Factory understands. It is a plain
// value, not a process-wide mutable singleton, so it can be passed
// into (or cloned into) each handler instance with a process default
// for convenience.
type AlgorithmMap struct {
	inbound  map[string]string // wire -> internal
	outbound map[string]string // internal -> wire
}

// NewAlgorithmMap returns the default bidirectional mapping: RS256 ↔
// rsa-sha256-uri and HS256 ↔ hmac-sha256-uri (plus the 384/512
// variants).
func NewAlgorithmMap() *AlgorithmMap {
	m := &AlgorithmMap{
		inbound:  make(map[string]string, 8),
		outbound: make(map[string]string, 8),
	}
	pairs := []struct{ wire, internal string }{
		{"HS256", signing.AlgHMACSHA256},
		{"HS384", signing.AlgHMACSHA384},
		{"HS512", signing.AlgHMACSHA512},
		{"RS256", signing.AlgRSASHA256},
		{"RS384", signing.AlgRSASHA384},
		{"RS512", signing.AlgRSASHA512},
	}
	for _, p := range pairs {
		m.inbound[p.wire] = p.internal
		m.outbound[p.internal] = p.wire
	}
	return m
}

// Clone returns an independent copy, letting a caller add custom
// entries without mutating the process default.
func (m *AlgorithmMap) Clone() *AlgorithmMap {
	c := &AlgorithmMap{
		inbound:  make(map[string]string, len(m.inbound)),
		outbound: make(map[string]string, len(m.outbound)),
	}
	for k, v := range m.inbound {
		c.inbound[k] = v
	}
	for k, v := range m.outbound {
		c.outbound[k] = v
	}
	return c
}

// AddInbound registers (or overrides) a wire-name -> internal-name
// mapping used when parsing an incoming token's "alg" header.
func (m *AlgorithmMap) AddInbound(wire, internal string) {
	m.inbound[wire] = internal
}

// AddOutbound registers (or overrides) an internal-name -> wire-name
// mapping used when a Token Builder writes the "alg" header. Note this
// assigns to the outbound map, not the inbound one — the two are easy
// to swap by mistake since both take a pair of algorithm names.
func (m *AlgorithmMap) AddOutbound(internal, wire string) {
	m.outbound[internal] = wire
}

// ToInternal resolves a wire "alg" value to the Provider Factory's
// internal name. Lookups that miss fall through to the raw name
// unchanged.
func (m *AlgorithmMap) ToInternal(wire string) string {
	if internal, ok := m.inbound[wire]; ok {
		return internal
	}
	return wire
}

// ToWire resolves an internal algorithm name to the wire "alg" value.
// Lookups that miss fall through to the raw name unchanged.
func (m *AlgorithmMap) ToWire(internal string) string {
	if wire, ok := m.outbound[internal]; ok {
		return wire
	}
	return internal
}
