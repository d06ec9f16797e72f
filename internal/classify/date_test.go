package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		raw        string
		expected   string
		expectedOK bool
	}{
		{
			name:       "full timestamp with timezone suffix",
			raw:        "20240115120000[0:GMT]",
			expected:   "2024-01-15",
			expectedOK: true,
		},
		{
			name:       "bare date",
			raw:        "20240229",
			expected:   "2024-02-29",
			expectedOK: true,
		},
		{
			name:       "garbage falls back to processing date",
			raw:        "BADDATE1",
			expected:   "2024-03-15",
			expectedOK: false,
		},
		{
			name:       "too short",
			raw:        "2024",
			expected:   "2024-03-15",
			expectedOK: false,
		},
		{
			name:       "month out of range",
			raw:        "20241301120000",
			expected:   "2024-03-15",
			expectedOK: false,
		},
		{
			name:       "empty",
			raw:        "",
			expected:   "2024-03-15",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := NormalizeDate(tt.raw, now)
			assert.Equal(t, tt.expected, date)
			assert.Equal(t, tt.expectedOK, ok)
		})
	}
}

func TestNormalizeDateIgnoresTimeOfDay(t *testing.T) {
	// The date portion is taken verbatim; no timezone conversion happens even
	// when the suffix names a far-away zone.
	date, ok := NormalizeDate("20240115235959[-12:XXX]", time.Now())
	assert.True(t, ok)
	assert.Equal(t, "2024-01-15", date)
}
