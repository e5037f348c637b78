package jwt

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// KV is an ordered header or claim member. Extra (non-reserved) header
// members are stored as a KV slice rather than a map so a freshly
// built header serializes in exactly the order the caller supplied —
// canonicalization preserves caller-chosen key order (no re-sorting)
// so that external signers produce matching output.
type KV struct {
	Key   string
	Value any
}

// Header is a typed view over the JWT header JSON.
// Unknown members round-trip through Extra in their original order.
type Header struct {
	Alg     string
	Typ     string
	Kid     string
	X5t     string
	X5tS256 string
	Jku     string
	X5u     string
	Extra   []KV
}

// MarshalJSON writes the known fields first, in the fixed order below,
// followed by Extra in the order it was populated. Known fields with
// empty values are omitted.
func (h *Header) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true

	write := func(key string, value string) error {
		if value == "" {
			return nil
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&buf, "%q:", key)
		enc, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(enc)
		return nil
	}

	fields := []struct {
		key   string
		value string
	}{
		{"alg", h.Alg},
		{"typ", h.Typ},
		{"kid", h.Kid},
		{"x5t", h.X5t},
		{"x5t#S256", h.X5tS256},
		{"jku", h.Jku},
		{"x5u", h.X5u},
	}
	for _, f := range fields {
		if err := write(f.key, f.value); err != nil {
			return nil, err
		}
	}

	for _, kv := range h.Extra {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&buf, "%q:", kv.Key)
		enc, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(enc)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts any JSON object, extracting the reserved
// members into their typed fields and preserving everything else in
// Extra, in the order encountered (Go's json.Decoder token stream
// preserves source order; goccy/go-json follows the same contract).
func (h *Header) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("header: expected a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		switch key {
		case "alg":
			_ = json.Unmarshal(raw, &h.Alg)
		case "typ":
			_ = json.Unmarshal(raw, &h.Typ)
		case "kid":
			_ = json.Unmarshal(raw, &h.Kid)
		case "x5t":
			_ = json.Unmarshal(raw, &h.X5t)
		case "x5t#S256":
			_ = json.Unmarshal(raw, &h.X5tS256)
		case "jku":
			_ = json.Unmarshal(raw, &h.Jku)
		case "x5u":
			_ = json.Unmarshal(raw, &h.X5u)
		default:
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			h.Extra = append(h.Extra, KV{Key: key, Value: v})
		}
	}
	return nil
}

// Hints extracts the KeyHints a candidate SecurityKey is matched
// against.
func (h *Header) Hints() KeyHints {
	return KeyHints{Kid: h.Kid, X5t: h.X5t, X5tS256: h.X5tS256}
}
