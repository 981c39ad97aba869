package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// naiveLayout is an ISO 8601 timestamp without a zone offset, as written by
// backends that store naive datetimes. Such values are read as UTC.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is a time.Time that also decodes zone-less ISO timestamps.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.ParseInLocation(naiveLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
