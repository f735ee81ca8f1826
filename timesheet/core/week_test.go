package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMondayOf(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		rome = time.FixedZone("CET", 3600)
	}

	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{name: "Monday itself", date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), expected: "2024-06-03"},
		{name: "Wednesday afternoon", date: time.Date(2024, 6, 5, 15, 30, 0, 0, time.UTC), expected: "2024-06-03"},
		{name: "Sunday late", date: time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC), expected: "2024-06-03"},
		{name: "Across month", date: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), expected: "2024-02-26"},
		{name: "Across year", date: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), expected: "2024-12-30"},
		{name: "Local midnight is not shifted", date: time.Date(2024, 6, 10, 0, 30, 0, 0, rome), expected: "2024-06-10"},
		{name: "DST change week", date: time.Date(2024, 3, 31, 12, 0, 0, 0, rome), expected: "2024-03-25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday := MondayOf(tt.date)
			assert.Equal(t, tt.expected, DateKey(monday))
			assert.Equal(t, time.Monday, monday.Weekday())
			assert.Equal(t, tt.date.Location(), monday.Location())
		})
	}
}

func TestMondayOfContainsDate(t *testing.T) {
	start := time.Date(2023, 12, 20, 13, 0, 0, 0, time.Local)
	for i := 0; i < 400; i++ {
		d := start.Add(time.Duration(i) * 17 * time.Hour)
		monday := MondayOf(d)

		assert.Equal(t, time.Monday, monday.Weekday())
		assert.False(t, monday.After(d), "monday %s after %s", monday, d)
		assert.True(t, monday.After(d.AddDate(0, 0, -7)), "monday %s too early for %s", monday, d)
		assert.True(t, WeekDays(monday).Contains(DateKey(d)))
	}
}

func TestWeekDays(t *testing.T) {
	monday := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	week := WeekDays(monday)

	assert.Len(t, week, 7)
	assert.Equal(t, [7]string{
		"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04", "2025-01-05",
	}, week.Keys())
	for i := 1; i < len(week); i++ {
		assert.True(t, week[i].After(week[i-1]))
		assert.Equal(t, 0, week[i].Hour())
	}
	assert.Equal(t, time.Sunday, week.Sunday().Weekday())
	assert.Equal(t, "2025-01-06", DateKey(week.Next().Monday()))
	assert.Equal(t, "2024-12-23", DateKey(week.Previous().Monday()))
	assert.Equal(t, 2, week.Index("2025-01-01"))
	assert.Equal(t, -1, week.Index("2025-01-06"))
}

func TestDateKeyUsesLocalComponents(t *testing.T) {
	tz := time.FixedZone("UTC+10", 10*60*60)
	midnight := time.Date(2024, 6, 4, 0, 0, 0, 0, tz)

	// in UTC this instant is still June 3rd
	assert.Equal(t, "2024-06-03", midnight.UTC().Format(DateLayout))
	assert.Equal(t, "2024-06-04", DateKey(midnight))
}

func TestNormalizeDateKey(t *testing.T) {
	tz := time.FixedZone("UTC+2", 2*60*60)

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "Date key", raw: "2024-06-04", expected: "2024-06-04"},
		{name: "UTC timestamp of local midnight", raw: "2024-06-03T22:00:00.000Z", expected: "2024-06-04"},
		{name: "Timestamp with offset", raw: "2024-06-04T09:00:00+02:00", expected: "2024-06-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NormalizeDateKey(tt.raw, tz)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}

	_, err := NormalizeDateKey("yesterday", tz)
	assert.Error(t, err)
}

func TestIsWeekendKey(t *testing.T) {
	assert.True(t, IsWeekendKey("2024-06-08"))
	assert.True(t, IsWeekendKey("2024-06-09"))
	assert.False(t, IsWeekendKey("2024-06-07"))
	assert.False(t, IsWeekendKey("not-a-date"))
}

func TestHours(t *testing.T) {
	assert.Equal(t, 0.3, SumHours(0.1, 0.2))
	assert.Equal(t, 8.0, SumHours(0.5, 0.5, 0.5, 0.5, 2, 4))
	assert.Equal(t, 1.5, SumHours(1.5, 0, -0))

	assert.NoError(t, CheckHours(0))
	assert.NoError(t, CheckHours(7.5))
	assert.ErrorIs(t, CheckHours(-1), ErrInvalidHours)
	assert.ErrorIs(t, CheckHours(1.25), ErrInvalidHours)
	assert.NoError(t, CheckHours(MaxHoursPerCell))
	assert.ErrorIs(t, CheckHours(24.5), ErrInvalidHours)
	assert.ErrorIs(t, CheckHours(1e19), ErrInvalidHours)

	// huge values saturate instead of wrapping negative
	assert.Greater(t, FromHours(1e19), Centihours(0))
	assert.Less(t, FromHours(-1e19), Centihours(0))
	assert.Equal(t, Centihours(0), FromHours(math.NaN()))
}
