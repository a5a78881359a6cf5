package stockdesk

import (
	"encoding/json"
	"fmt"
	"time"
)

// WireFormat is the timezone-less timestamp layout the backend uses for
// every recorded_at value. The wall-clock time is transmitted verbatim,
// no offset is ever applied.
const WireFormat = "2006-01-02 15:04:05"

// pickerFormat is the layout produced by the date/time picker field of
// the console, without seconds.
const pickerFormat = "2006-01-02T15:04"

// Timestamp is a timezone-less wall-clock instant.
//
// It marshals to and from the backend wire format "YYYY-MM-DD HH:MM:SS"
// with zero-padded two-digit components.
type Timestamp struct {
	t time.Time
}

// NewTimestamp builds a Timestamp from individual local wall-clock
// components.
func NewTimestamp(year int, month time.Month, day, hour, min, sec int) Timestamp {
	return Timestamp{t: time.Date(year, month, day, hour, min, sec, 0, time.UTC)}
}

// ParseTimestamp parses s in the wire format. It also accepts the
// picker form "YYYY-MM-DDTHH:MM" (with optional seconds) so that values
// typed in the console forms round-trip without a separate type.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range []string{WireFormat, pickerFormat, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{t: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q: want %q", s, "YYYY-MM-DD HH:MM:SS")
}

// String returns the wire representation.
func (ts Timestamp) String() string { return ts.t.Format(WireFormat) }

// Picker returns the representation used to pre-populate a date/time
// field when editing.
func (ts Timestamp) Picker() string { return ts.t.Format(pickerFormat) }

func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Before reports whether ts is strictly before u.
func (ts Timestamp) Before(u Timestamp) bool { return ts.t.Before(u.t) }

// Compare returns -1, 0 or 1 comparing ts to u chronologically.
func (ts Timestamp) Compare(u Timestamp) int { return ts.t.Compare(u.t) }

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
