package cupi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Total is the "@total" field CUPI puts on collection responses. The
// appliance serializes it as a JSON string ("@total": "2"); some
// releases emit a bare number. Both forms decode.
type Total int

func (t *Total) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode @total: %w", err)
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("failed to parse @total %q: %w", s, err)
		}
		*t = Total(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("failed to decode @total: %w", err)
	}
	*t = Total(n)
	return nil
}

// memberList holds the members of a CUPI collection. When a collection
// has exactly one member the appliance drops the array and inlines the
// member as a bare object, so both shapes must decode to a slice.
type memberList[T any] []T

func (m *memberList[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = nil
		return nil
	}

	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*m = items
		return nil
	}

	var single T
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*m = memberList[T]{single}
	return nil
}
