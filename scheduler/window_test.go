package scheduler

import (
	"testing"
	"time"

	"github.com/agendafacil/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindow(t *testing.T) {
	// 2025-10-01 is a Wednesday
	date := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	hours := []models.WorkingHours{
		{DayOfWeek: models.Monday, OpenTime: "08:00", CloseTime: "17:00"},
		{DayOfWeek: models.Wednesday, OpenTime: "09:00", CloseTime: "18:00"},
	}

	window, open, err := ResolveWindow(date, hours)
	require.NoError(t, err)
	require.True(t, open)
	assert.Equal(t, time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC), window.Open)
	assert.Equal(t, time.Date(2025, 10, 1, 18, 0, 0, 0, time.UTC), window.Close)
}

func TestResolveWindow_ClosedDay(t *testing.T) {
	// Sunday, no entry
	date := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	hours := []models.WorkingHours{
		{DayOfWeek: models.Wednesday, OpenTime: "09:00", CloseTime: "18:00"},
	}

	_, open, err := ResolveWindow(date, hours)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestResolveWindow_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	date := time.Date(2025, 10, 1, 0, 0, 0, 0, loc)
	hours := []models.WorkingHours{
		{DayOfWeek: models.Wednesday, OpenTime: "09:00", CloseTime: "18:00"},
	}

	window, open, err := ResolveWindow(date, hours)
	require.NoError(t, err)
	require.True(t, open)
	assert.Equal(t, loc, window.Open.Location())
	assert.Equal(t, 9, window.Open.Hour())
}

func TestResolveWindow_BadClockFormat(t *testing.T) {
	date := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	hours := []models.WorkingHours{
		{DayOfWeek: models.Wednesday, OpenTime: "9am", CloseTime: "18:00"},
	}

	_, _, err := ResolveWindow(date, hours)
	assert.Error(t, err)
}

func TestWindowContains(t *testing.T) {
	w := Window{Open: at(9, 0), Close: at(18, 0)}

	assert.True(t, w.Contains(at(9, 0), at(10, 0)))
	assert.True(t, w.Contains(at(17, 0), at(18, 0)))
	assert.False(t, w.Contains(at(8, 30), at(9, 30)))
	assert.False(t, w.Contains(at(17, 30), at(18, 30)))
}
