// Package timex provides a time.Duration wrapper with friendlier JSON
// handling for config files.
package timex

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration accepts both JSON string forms ("3s", "1m30s") and plain integer
// nanoseconds, and always marshals back to the string form.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("invalid duration: %s", data)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
