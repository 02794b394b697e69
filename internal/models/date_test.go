package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.June, 1)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01"`, string(out))

	var back Date
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateUnmarshalRejectsOtherLayouts(t *testing.T) {
	for _, raw := range []string{`"01-06-2025"`, `"2025/06/01"`, `"2025-06-01T00:00:00Z"`, `"yesterday"`} {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(raw), &d), raw)
	}
}

func TestDateUnmarshalNullIsNoop(t *testing.T) {
	d := NewDate(2025, time.June, 1)
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.Equal(NewDate(2025, time.June, 1).Time))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, d.Equal(NewDate(2025, time.June, 1).Time))

	require.NoError(t, d.Scan("2025-07-15"))
	assert.True(t, d.Equal(NewDate(2025, time.July, 15).Time))

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateOfTruncatesTimeOfDay(t *testing.T) {
	stamp := time.Date(2025, time.June, 1, 23, 59, 59, 0, time.UTC)
	assert.True(t, DateOf(stamp).Equal(NewDate(2025, time.June, 1).Time))
}

func TestDaysUntil(t *testing.T) {
	start := NewDate(2025, time.June, 1)

	assert.Equal(t, int64(0), start.DaysUntil(start))
	assert.Equal(t, int64(30), start.DaysUntil(NewDate(2025, time.July, 1)))
	assert.Equal(t, int64(90), start.DaysUntil(DateOf(start.AddDate(0, 0, 90))))
	assert.Equal(t, int64(-1), start.DaysUntil(NewDate(2025, time.May, 31)))
}
