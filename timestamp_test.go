package stockdesk

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampWireFormat(t *testing.T) {
	testCases := []struct {
		name string
		ts   Timestamp
		want string
	}{
		{"All components padded", NewTimestamp(2025, time.August, 29, 14, 51, 12), "2025-08-29 14:51:12"},
		{"Single digit components", NewTimestamp(2025, time.January, 2, 3, 4, 5), "2025-01-02 03:04:05"},
		{"Midnight", NewTimestamp(2024, time.December, 31, 0, 0, 0), "2024-12-31 00:00:00"},
		{"End of day", NewTimestamp(2024, time.February, 29, 23, 59, 59), "2024-02-29 23:59:59"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ts.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		name      string
		in        string
		want      string
		expectErr bool
	}{
		{"Wire format", "2025-08-29 14:51:12", "2025-08-29 14:51:12", false},
		{"Picker format without seconds", "2025-08-29T14:51", "2025-08-29 14:51:00", false},
		{"Picker format with seconds", "2025-08-29T14:51:12", "2025-08-29 14:51:12", false},
		{"Empty", "", "", true},
		{"Date only", "2025-08-29", "", true},
		{"Garbage", "yesterday", "", true},
		{"Unpadded month", "2025-8-29 14:51:12", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := ParseTimestamp(tc.in)
			if (err != nil) != tc.expectErr {
				t.Fatalf("ParseTimestamp(%q) error = %v, want error: %v", tc.in, err, tc.expectErr)
			}
			if err == nil && ts.String() != tc.want {
				t.Errorf("ParseTimestamp(%q).String() = %q, want %q", tc.in, ts.String(), tc.want)
			}
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	// The wire representation must survive parse/format unchanged.
	for _, s := range []string{
		"2025-08-29 14:51:12",
		"2000-01-01 00:00:00",
		"1999-12-31 23:59:59",
	} {
		ts, err := ParseTimestamp(s)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", s, err)
		}
		if ts.String() != s {
			t.Errorf("round trip of %q yielded %q", s, ts.String())
		}
	}
}

func TestTimestampJSON(t *testing.T) {
	ts := NewTimestamp(2025, time.August, 29, 14, 51, 12)
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2025-08-29 14:51:12"` {
		t.Errorf("Marshal = %s", data)
	}

	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Compare(ts) != 0 {
		t.Errorf("round trip mismatch: %v != %v", back, ts)
	}

	if err := json.Unmarshal([]byte(`"not a date"`), &back); err == nil {
		t.Error("expected error for invalid timestamp")
	}
}

func TestTimestampCompare(t *testing.T) {
	early := NewTimestamp(2025, time.January, 1, 0, 0, 0)
	late := NewTimestamp(2025, time.June, 1, 0, 0, 0)

	if !early.Before(late) {
		t.Error("early should be before late")
	}
	if late.Before(early) {
		t.Error("late should not be before early")
	}
	if early.Compare(late) != -1 || late.Compare(early) != 1 || early.Compare(early) != 0 {
		t.Error("Compare ordering is wrong")
	}
}
