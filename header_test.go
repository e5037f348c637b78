package jwt

import (
	json "github.com/goccy/go-json"
	"testing"
)

func TestHeaderMarshalOmitsEmptyFields(t *testing.T) {
	h := &Header{Alg: "HS256", Typ: "JWT"}
	out, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"alg":"HS256","typ":"JWT"}` {
		t.Fatalf("unexpected header JSON: %s", out)
	}
}

func TestHeaderRoundTripPreservesExtraOrder(t *testing.T) {
	raw := []byte(`{"alg":"HS256","zeta":1,"alpha":2,"kid":"k1"}`)
	var h Header
	if err := json.Unmarshal(raw, &h); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if h.Alg != "HS256" || h.Kid != "k1" {
		t.Fatalf("expected known fields to be extracted, got %+v", h)
	}
	if len(h.Extra) != 2 || h.Extra[0].Key != "zeta" || h.Extra[1].Key != "alpha" {
		t.Fatalf("expected Extra to preserve source order, got %+v", h.Extra)
	}

	out, err := json.Marshal(&h)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"alg":"HS256","kid":"k1","zeta":1,"alpha":2}`
	if string(out) != want {
		t.Fatalf("expected %s, got %s", want, out)
	}
}

func TestHeaderHints(t *testing.T) {
	h := &Header{Kid: "k1", X5t: "t1", X5tS256: "t2"}
	hints := h.Hints()
	if hints.Kid != "k1" || hints.X5t != "t1" || hints.X5tS256 != "t2" {
		t.Fatalf("unexpected hints: %+v", hints)
	}
	if (&Header{}).Hints().Empty() != true {
		t.Fatal("expected an empty header to yield empty hints")
	}
}
