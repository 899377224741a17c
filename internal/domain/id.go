package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RecordID is a stable record identifier. The JSON documents use either
// numbers (1) or strings ("pydis"); both decode to the same textual form.
type RecordID string

func (id *RecordID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("domain: record id: %w", err)
		}
		*id = RecordID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("domain: record id: %w", err)
	}
	*id = RecordID(n.String())
	return nil
}

// MarshalJSON writes integer-looking ids back as numbers.
func (id RecordID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id RecordID) String() string { return string(id) }
