package base64url

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0x00},
		[]byte("hello world"),
		bytes.Repeat([]byte{0xFF}, 257),
	}
	for _, c := range cases {
		got, err := Decode(Encode(c))
		if err != nil {
			t.Fatalf("Decode(Encode(%v)) error: %v", c, err)
		}
		if !bytes.Equal(got, c) && !(len(got) == 0 && len(c) == 0) {
			t.Errorf("round trip mismatch: got %v, want %v", got, c)
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		b := make([]byte, r.Intn(300))
		r.Read(b)
		got, err := Decode(Encode(b))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, b) {
			t.Errorf("round trip mismatch for length %d", len(b))
		}
	}
}

func TestDecodeRejectsInvalidAlphabet(t *testing.T) {
	invalid := []string{"a+b", "a/b", "a=", "abc def", "héllo"}
	for _, s := range invalid {
		if _, err := Decode(s); err == nil {
			t.Errorf("Decode(%q) expected error, got nil", s)
		}
	}
}

func TestIsValidEmpty(t *testing.T) {
	if !IsValid("") {
		t.Error("empty string should be a valid (zero-length) segment")
	}
}
