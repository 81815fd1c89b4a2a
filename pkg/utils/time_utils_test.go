package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTripDate(t *testing.T) {
	parsed, err := ParseTripDate("2026-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseTripDate("01/05/2026")
	assert.Error(t, err)
}

func TestFormatTripDate(t *testing.T) {
	assert.Equal(t, "", FormatTripDate(time.Time{}))
	assert.Equal(t, "2026-05-01", FormatTripDate(time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)))
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "whole nights",
			start: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC),
			want:  8,
		},
		{
			name:  "clock time ignored",
			start: time.Date(2026, 5, 1, 23, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 5, 2, 1, 0, 0, 0, time.UTC),
			want:  1,
		},
		{
			name:  "same day",
			start: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "end before start floors at zero",
			start: time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightsBetween(tt.start, tt.end))
		})
	}
}
