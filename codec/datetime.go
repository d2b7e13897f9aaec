package codec

import (
	"time"

	"github.com/pkg/errors"
)

// DateTime is an XML dateTime or date value. The raw lexical form is
// kept alongside the parsed time so re-serialized values round-trip
// byte-identically, which matters when echoing transfer and poll
// message timestamps back to the registry.
type DateTime struct {
	Raw  string
	Time time.Time
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDateTime parses an RFC 3339 / XML dateTime or date lexical
// value.
func ParseDateTime(s string) (DateTime, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTime{Raw: s, Time: t}, nil
		}
	}
	return DateTime{}, errors.Errorf("invalid dateTime value %q", s)
}

// String returns the value in its original lexical form when one is
// known, otherwise the RFC 3339 rendering of the parsed time.
func (d DateTime) String() string {
	if d.Raw != "" {
		return d.Raw
	}
	if !d.Time.IsZero() {
		return d.Time.Format(time.RFC3339)
	}
	return ""
}

// IsZero reports whether the value is unset.
func (d DateTime) IsZero() bool { return d.Raw == "" && d.Time.IsZero() }

// ParseBool parses a schema boolean. Both the numeric and the literal
// token forms are accepted on decode.
func ParseBool(s string) (bool, error) {
	switch s {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, errors.Errorf("invalid boolean value %q", s)
}

// FormatBool canonicalizes a boolean to the numeric token form used on
// encode.
func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
