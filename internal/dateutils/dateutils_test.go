package dateutils

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    civil.Date
		expectError bool
	}{
		{name: "iso date", input: "2023-05-15", expected: civil.Date{Year: 2023, Month: time.May, Day: 15}},
		{name: "surrounding whitespace", input: "  2024-02-29\n", expected: civil.Date{Year: 2024, Month: time.February, Day: 29}},
		{name: "european format rejected", input: "15.05.2023", expectError: true},
		{name: "month out of range", input: "2023-13-01", expectError: true},
		{name: "not a leap year", input: "2023-02-29", expectError: true},
		{name: "date with time rejected", input: "2023-05-15T10:00:00", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISODate(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedOffset int
		expectError    bool
	}{
		{name: "positive offset", input: "2023-05-15T10:30:00+02:00", expectedOffset: 2 * 3600},
		{name: "zulu", input: "2023-05-15T08:30:00Z", expectedOffset: 0},
		{name: "negative offset with fraction", input: "2023-05-15T03:30:00.123-05:00", expectedOffset: -5 * 3600},
		{name: "missing offset", input: "2023-05-15T10:30:00", expectError: true},
		{name: "date only", input: "2023-05-15", expectError: true},
		{name: "garbage", input: "yesterday", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, offset := got.Zone()
			assert.Equal(t, tt.expectedOffset, offset)
		})
	}
}

func TestParseTimestamp_PreservesInstantAndOffset(t *testing.T) {
	got, err := ParseTimestamp("2023-05-15T10:30:00+02:00")
	require.NoError(t, err)

	assert.True(t, got.Equal(time.Date(2023, 5, 15, 8, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2023-05-15T10:30:00+02:00", FormatTimestamp(got))
}

func TestLayoutFromPattern(t *testing.T) {
	assert.Equal(t, "02.01.2006", LayoutFromPattern("DD.MM.YYYY"))
	assert.Equal(t, "2006-01-02", LayoutFromPattern("YYYY-MM-DD"))
	assert.Equal(t, "01/02/2006", LayoutFromPattern("MM/DD/YYYY"))
	assert.Equal(t, "02.01.2006", LayoutFromPattern("02.01.2006"))
	assert.Equal(t, DateLayoutISO, LayoutFromPattern(""))
}

func TestFormatDate(t *testing.T) {
	d := civil.Date{Year: 2023, Month: time.May, Day: 5}

	assert.Equal(t, "2023-05-05", FormatDate(d, ""))
	assert.Equal(t, "05.05.2023", FormatDate(d, LayoutFromPattern("DD.MM.YYYY")))
	assert.Equal(t, "05/05/2023", FormatDate(d, "01/02/2006"))
}
