// Package codec converts between wire representations and typed field values.
package codec

import (
	"errors"
	"math"
	"strings"
	"time"
)

// ErrTimestamp is returned (wrapped) when a value cannot be read as a timestamp.
var ErrTimestamp = errors.New("codec: invalid timestamp")

// Layouts accepted by Timestamp, tried in order. Zone-less layouts are read as UTC.
var defaultLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// TimestampCodec converts between strings / unix seconds and time.Time.
type TimestampCodec struct {
	layouts []string
}

// Timestamp returns the codec used for timestamp fields: RFC3339 with or
// without a zone, minute precision (2006-01-02T15:04), or a bare date.
func Timestamp() TimestampCodec { return TimestampCodec{layouts: defaultLayouts} }

// WithLayouts returns a codec that tries only the given layouts.
func WithLayouts(layouts ...string) TimestampCodec {
	return TimestampCodec{layouts: append([]string(nil), layouts...)}
}

// Decode parses s using the first matching layout.
func (c TimestampCodec) Decode(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrTimestamp
	}
	for _, layout := range c.layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrTimestamp
}

// DecodeUnix converts unix seconds (fractions allowed) to a UTC time.
func (c TimestampCodec) DecodeUnix(sec float64) (time.Time, error) {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return time.Time{}, ErrTimestamp
	}
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC(), nil
}

// Encode renders t canonically: UTC, RFC3339 with trailing zeros trimmed.
func (c TimestampCodec) Encode(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
