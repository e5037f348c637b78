package jwt

import (
	"time"
)

// NumericDate is RFC 7519's integer-seconds-since-epoch time
// representation. Fractional values are accepted on
// input and truncated; only whole seconds are ever produced on output.
type NumericDate struct {
	time.Time
}

// NewNumericDate wraps t, truncated to whole seconds.
func NewNumericDate(t time.Time) NumericDate {
	return NumericDate{Time: t.Truncate(time.Second)}
}

// Unix returns the value as it belongs on the wire: whole seconds
// since the epoch.
func (d NumericDate) Unix() int64 {
	return d.Time.Unix()
}

// numericDateFromClaim interprets a decoded JSON claim value — always
// a float64 once it has passed through a generic JSON unmarshal — as a
// NumericDate. Both integer and fractional numbers are accepted on
// input.
func numericDateFromClaim(v any) (NumericDate, bool) {
	switch n := v.(type) {
	case float64:
		return NewNumericDate(time.Unix(int64(n), 0).UTC()), true
	case int64:
		return NewNumericDate(time.Unix(n, 0).UTC()), true
	case int:
		return NewNumericDate(time.Unix(int64(n), 0).UTC()), true
	default:
		return NumericDate{}, false
	}
}
