package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2023-02-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2023, time.February, 15), date)
	assert.Equal(t, "2023-02-15", date.String())

	_, err = ParseDate("2023-02-30")
	assert.Error(t, err)

	_, err = ParseDate("15/02/2023")
	assert.Error(t, err)
}

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	moment := time.Date(2023, time.April, 3, 23, 59, 0, 0, time.FixedZone("UTC-5", -5*3600))
	assert.Equal(t, NewDate(2023, time.April, 3), DateOf(moment))
}

func TestDate_Covers(t *testing.T) {
	start := NewDate(2023, time.January, 10)
	final := NewDate(2023, time.January, 20)

	assert.True(t, start.Covers(start, final))
	assert.True(t, final.Covers(start, final))
	assert.True(t, NewDate(2023, time.January, 15).Covers(start, final))
	assert.False(t, NewDate(2023, time.January, 9).Covers(start, final))
	assert.False(t, NewDate(2023, time.January, 21).Covers(start, final))
}

func TestDate_JSON(t *testing.T) {
	payload := struct {
		Start Date `json:"start"`
		Final Date `json:"final"`
	}{Start: NewDate(2023, time.March, 1)}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2023-03-01","final":null}`, string(data))

	var decoded struct {
		Start Date `json:"start"`
		Final Date `json:"final"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Start.Equal(payload.Start))
	assert.True(t, decoded.Final.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"start":"March 1st"}`), &decoded))
}

func TestDate_Scan(t *testing.T) {
	var date Date
	require.NoError(t, date.Scan(time.Date(2023, time.May, 4, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, NewDate(2023, time.May, 4), date)
}

func TestAssignment_Overlaps(t *testing.T) {
	assignment := Assignment{
		StartDate: NewDate(2023, time.February, 1),
		FinalDate: NewDate(2023, time.February, 28),
	}

	tests := []struct {
		name     string
		start    Date
		final    Date
		expected bool
	}{
		{"window ends on first day", NewDate(2023, time.January, 1), NewDate(2023, time.February, 1), true},
		{"window starts on last day", NewDate(2023, time.February, 28), NewDate(2023, time.March, 31), true},
		{"window inside", NewDate(2023, time.February, 10), NewDate(2023, time.February, 11), true},
		{"window before", NewDate(2023, time.January, 1), NewDate(2023, time.January, 31), false},
		{"window after", NewDate(2023, time.March, 1), NewDate(2023, time.March, 31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, assignment.Overlaps(tt.start, tt.final))
		})
	}

	assert.True(t, assignment.Covers(NewDate(2023, time.February, 28)))
	assert.False(t, assignment.Covers(NewDate(2023, time.March, 1)))
}
