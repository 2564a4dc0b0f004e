package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateDropsTimeOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Bangkok")
	require.NoError(t, err)

	in := time.Date(2024, 6, 10, 23, 45, 12, 99, loc)
	got := NormalizeDate(in)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestNightsBetween(t *testing.T) {
	for _, tc := range []struct {
		arrival, departure string
		nights             int
	}{
		{"2024-06-10", "2024-06-12", 2},
		{"2024-06-10", "2024-06-11", 1},
		{"2024-06-10", "2024-06-10", 0},
		{"2024-06-12", "2024-06-10", -2},
	} {
		a, err := ParseDate(tc.arrival)
		require.NoError(t, err)
		d, err := ParseDate(tc.departure)
		require.NoError(t, err)
		assert.Equal(t, tc.nights, NightsBetween(a, d), "%s -> %s", tc.arrival, tc.departure)
	}
}

func TestEachNightExcludesDeparture(t *testing.T) {
	a, _ := ParseDate("2024-06-10")
	d, _ := ParseDate("2024-06-13")

	var nights []string
	err := EachNight(a, d, func(night time.Time) error {
		nights = append(nights, night.Format("2006-01-02"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-10", "2024-06-11", "2024-06-12"}, nights)
}

func TestParseDateAcceptsRFC3339(t *testing.T) {
	got, err := ParseDate("2024-06-10T15:04:05+07:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("June 10")
	assert.Error(t, err)
}
