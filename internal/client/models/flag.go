package models

import (
	"fmt"
	"strings"
)

// Flag is a boolean that tolerates the two encodings the API uses for
// truth values: JSON booleans and 0/1 numbers.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true", "1":
		*f = true
	case "false", "0", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag value: %s", data)
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}
