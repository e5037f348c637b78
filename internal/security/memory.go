// Package security holds the small set of memory-hygiene primitives the
// core needs to honor the "no aliased key bytes" invariant: owned copies
// of caller key material, zeroed on release, compared in constant time.
package security

import (
	"runtime"
	"sync"
)

// SecureBytes owns a private copy of key material and zeroes it on Destroy.
type SecureBytes struct {
	data []byte
	mu   sync.Mutex
}

// NewSecureBytesFromSlice clones data into a new owned buffer. The caller's
// slice is never retained.
func NewSecureBytesFromSlice(data []byte) *SecureBytes {
	secure := &SecureBytes{data: make([]byte, len(data))}
	copy(secure.data, data)
	runtime.SetFinalizer(secure, (*SecureBytes).destroy)
	return secure
}

// Bytes returns a copy of the underlying material; the caller cannot
// observe or mutate the internal buffer through the returned slice.
func (s *SecureBytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}

// Len reports the number of owned bytes.
func (s *SecureBytes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Destroy zeroes the owned buffer. Safe to call more than once.
func (s *SecureBytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroy()
	runtime.SetFinalizer(s, nil)
}

func (s *SecureBytes) destroy() {
	if s.data != nil {
		ZeroBytes(s.data)
		s.data = nil
	}
}

// ZeroBytes overwrites data with zeroes and prevents the compiler from
// eliding the write as dead code.
func ZeroBytes(data []byte) {
	if len(data) == 0 {
		return
	}
	for i := range data {
		data[i] = 0
	}
	runtime.KeepAlive(data)
}

// Compare performs a constant-time comparison of two byte slices,
// returning true iff they are equal in both length and content.
func Compare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var result byte
	for i := range a {
		result |= a[i] ^ b[i]
	}
	return result == 0
}
