package security

import "testing"

func TestSecureBytesOwnsCopy(t *testing.T) {
	src := []byte("supersecretkeymaterial")
	sb := NewSecureBytesFromSlice(src)

	src[0] = 'X'
	if sb.Bytes()[0] == 'X' {
		t.Fatal("SecureBytes aliased the caller's slice")
	}

	out := sb.Bytes()
	out[0] = 'Y'
	if sb.Bytes()[0] == 'Y' {
		t.Fatal("Bytes() leaked a mutable alias to the internal buffer")
	}
}

func TestSecureBytesDestroy(t *testing.T) {
	sb := NewSecureBytesFromSlice([]byte("k"))
	sb.Destroy()
	if sb.Len() != 0 {
		t.Fatalf("expected len 0 after Destroy, got %d", sb.Len())
	}
	sb.Destroy() // must not panic
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b []byte
		want bool
	}{
		{[]byte("abc"), []byte("abc"), true},
		{[]byte("abc"), []byte("abd"), false},
		{[]byte("abc"), []byte("ab"), false},
		{nil, nil, true},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("Compare(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
