package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", d.String())

	_, err = ParseDate("02-06-2025")
	assert.Error(t, err)

	_, err = ParseDate("2025-13-40")
	assert.Error(t, err)
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2025, time.February, 28)

	assert.Equal(t, "2025-03-01", d.AddDays(1).String())
	assert.Equal(t, "2025-02-21", d.AddDays(-7).String())
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Due Date `json:"due"`
	}

	out, err := json.Marshal(payload{Due: NewDate(2025, time.June, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2025-06-02"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2025-06-02"}`), &in))
	assert.Equal(t, NewDate(2025, time.June, 2), in.Due)

	assert.Error(t, json.Unmarshal([]byte(`{"due":"junk"}`), &in))
}

func TestDateScan(t *testing.T) {
	var d Date

	// DATE columns arrive as time.Time from pgx, as strings from sqlmock.
	require.NoError(t, d.Scan(time.Date(2025, time.June, 2, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2025-06-02", d.String())

	require.NoError(t, d.Scan("2025-07-15"))
	assert.Equal(t, "2025-07-15", d.String())

	require.NoError(t, d.Scan([]byte("2025-08-01")))
	assert.Equal(t, "2025-08-01", d.String())

	assert.Error(t, d.Scan(42))
}
