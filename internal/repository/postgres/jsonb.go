package postgres

import (
	"encoding/json"
	"fmt"
)

// jsonbValue marshals v for writing into a JSONB column.
func jsonbValue(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return b, nil
}

// jsonbScan unmarshals a JSONB column into dst. An empty source leaves dst
// untouched.
func jsonbScan(src []byte, dst any) error {
	if len(src) == 0 {
		return nil
	}
	if err := json.Unmarshal(src, dst); err != nil {
		return fmt.Errorf("unmarshal jsonb: %w", err)
	}
	return nil
}
