package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestYearOf tests year extraction from MM/DD/YYYY date strings
func TestYearOf(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedYear int
		expectedOK   bool
	}{
		{
			name:         "Standard date",
			input:        "12/31/2030",
			expectedYear: 2030,
			expectedOK:   true,
		},
		{
			name:         "First of year",
			input:        "01/01/2025",
			expectedYear: 2025,
			expectedOK:   true,
		},
		{
			name:         "Single digit month and day",
			input:        "1/1/2025",
			expectedYear: 2025,
			expectedOK:   true,
		},
		{
			name:       "Empty string",
			input:      "",
			expectedOK: false,
		},
		{
			name:       "Whitespace only",
			input:      "   ",
			expectedOK: false,
		},
		{
			name:       "ISO format is rejected",
			input:      "2030-12-31",
			expectedOK: false,
		},
		{
			name:       "Garbage",
			input:      "not-a-date",
			expectedOK: false,
		},
		{
			name:       "Month out of range",
			input:      "13/01/2025",
			expectedOK: false,
		},
		{
			name:         "Surrounding whitespace tolerated",
			input:        " 06/15/2027 ",
			expectedYear: 2027,
			expectedOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, ok := YearOf(tt.input)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedYear, year)
			}
		})
	}
}

func TestParse(t *testing.T) {
	d, ok := Parse("06/15/2027")
	assert.True(t, ok)
	assert.Equal(t, 2027, d.Year())
	assert.Equal(t, 6, int(d.Month()))
	assert.Equal(t, 15, d.Day())

	_, ok = Parse("06-15-2027")
	assert.False(t, ok)
}
