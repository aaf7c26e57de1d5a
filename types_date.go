package splitex

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DatetimeFormat is the canonical timestamp format used everywhere in the
// snapshot and import/export formats.
const DatetimeFormat = time.RFC3339

// readDateFormat is the permissive date-only format accepted on import.
const readDateFormat = "2006-1-2"

// Datetime is a point in time with canonical RFC3339 rendering.
type Datetime struct {
	t time.Time
}

// Now returns the current instant, truncated to the second so that the
// canonical rendering round-trips exactly.
func Now() Datetime {
	return Datetime{t: time.Now().UTC().Truncate(time.Second)}
}

// NewDatetime returns a Datetime for the given time.
func NewDatetime(t time.Time) Datetime { return Datetime{t: t.Truncate(time.Second)} }

// ParseDatetime parses a timestamp. It accepts the canonical RFC3339 form
// and, leniently, a date-only form which is normalized to midnight UTC.
func ParseDatetime(s string) (Datetime, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DatetimeFormat, s); err == nil {
		return Datetime{t: t}, nil
	}
	if t, err := time.Parse(readDateFormat, s); err == nil {
		return Datetime{t: t.UTC()}, nil
	}
	return Datetime{}, fmt.Errorf("invalid timestamp %q", s)
}

// Time returns the underlying time.Time.
func (d Datetime) Time() time.Time { return d.t }

// String formats the timestamp in RFC3339.
func (d Datetime) String() string { return d.t.Format(DatetimeFormat) }

// DayString formats just the calendar day, for report headings.
func (d Datetime) DayString() string { return d.t.Format("2006-01-02") }

func (d Datetime) IsZero() bool           { return d.t.IsZero() }
func (d Datetime) Before(o Datetime) bool { return d.t.Before(o.t) }
func (d Datetime) After(o Datetime) bool  { return d.t.After(o.t) }
func (d Datetime) Equal(o Datetime) bool  { return d.t.Equal(o.t) }

// MarshalJSON writes the canonical RFC3339 form.
func (d Datetime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads a timestamp, accepting the same lenient forms as
// ParseDatetime.
func (d *Datetime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDatetime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
