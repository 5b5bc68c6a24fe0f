package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the
// given layout. Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a SQLite storage value:
// SQL NULL for nil, the formatted string otherwise.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

func nullableIntToValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableIntFromColumn(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// encodeTimes serializes an ordered time list as a JSON array of RFC3339
// strings for a TEXT column.
func encodeTimes(ts []time.Time) (string, error) {
	strs := make([]string, len(ts))
	for i, t := range ts {
		strs[i] = t.Format(time.RFC3339)
	}
	data, err := json.Marshal(strs)
	if err != nil {
		return "", fmt.Errorf("encoding time list: %w", err)
	}
	return string(data), nil
}

func decodeTimes(data string) ([]time.Time, error) {
	if data == "" {
		return nil, nil
	}
	var strs []string
	if err := json.Unmarshal([]byte(data), &strs); err != nil {
		return nil, fmt.Errorf("decoding time list: %w", err)
	}
	if len(strs) == 0 {
		return nil, nil
	}
	ts := make([]time.Time, len(strs))
	for i, s := range strs {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("decoding time list entry %d: %w", i, err)
		}
		ts[i] = t
	}
	return ts, nil
}

func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding json column: %w", err)
	}
	return string(data), nil
}

func decodeStrings(data string) ([]string, error) {
	if data == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil, fmt.Errorf("decoding string list: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
