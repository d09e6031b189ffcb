package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Time is a timestamp that marshals to RFC3339 but accepts either an
// RFC3339 string or a numeric epoch (seconds, possibly fractional) when
// unmarshaling. Stored documents produced by older tooling used both
// representations; loaders normalize here so ordering works everywhere.
type Time struct {
	time.Time
}

// Now returns the current time as a domain Time.
func Now() Time {
	return Time{time.Now().UTC()}
}

// MarshalJSON encodes the timestamp as an RFC3339 string.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts an RFC3339(-Nano) string or a numeric epoch.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, s)
		}
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", s, err)
		}
		t.Time = parsed
		return nil
	}

	var epoch float64
	if err := json.Unmarshal(data, &epoch); err != nil {
		return fmt.Errorf("timestamp is neither string nor number: %s", data)
	}
	sec, frac := math.Modf(epoch)
	t.Time = time.Unix(int64(sec), int64(frac*1e9)).UTC()
	return nil
}

// String returns the RFC3339 rendering used in reports.
func (t Time) String() string {
	return t.Format(time.RFC3339Nano)
}
