package jwt

import "testing"

func TestAlgorithmMapDefaults(t *testing.T) {
	m := NewAlgorithmMap()
	if m.ToInternal("HS256") != AlgHS256 {
		t.Fatalf("expected HS256 to map to %q, got %q", AlgHS256, m.ToInternal("HS256"))
	}
	if m.ToWire(AlgHS256) != "HS256" {
		t.Fatalf("expected %q to map to HS256, got %q", AlgHS256, m.ToWire(AlgHS256))
	}
}

func TestAlgorithmMapFallsThroughOnMiss(t *testing.T) {
	m := NewAlgorithmMap()
	if m.ToInternal("unknown") != "unknown" {
		t.Fatal("expected an unknown wire name to fall through unchanged")
	}
	if m.ToWire("unknown") != "unknown" {
		t.Fatal("expected an unknown internal name to fall through unchanged")
	}
}

func TestAlgorithmMapAddOutboundDoesNotTouchInbound(t *testing.T) {
	m := NewAlgorithmMap()
	m.AddOutbound(AlgHS256, "foo")
	if m.ToWire(AlgHS256) != "foo" {
		t.Fatalf("expected outbound override to take effect, got %q", m.ToWire(AlgHS256))
	}
	if m.ToInternal("HS256") != AlgHS256 {
		t.Fatal("expected AddOutbound to leave the inbound map untouched")
	}
}

func TestAlgorithmMapCloneIsIndependent(t *testing.T) {
	m := NewAlgorithmMap()
	clone := m.Clone()
	clone.AddOutbound(AlgHS256, "bar")
	if m.ToWire(AlgHS256) == "bar" {
		t.Fatal("expected clone mutations not to leak into the original")
	}
}
