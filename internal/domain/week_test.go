package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 30, 0, 0, time.UTC)
}

func TestWeekStart_MidWeek(t *testing.T) {
	// Wednesday Sep 2 2026 anchors to Monday Aug 31.
	monday := WeekStart(date(2026, time.September, 2))

	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, 31, monday.Day())
	assert.Equal(t, time.August, monday.Month())
}

func TestWeekStart_MondayAnchorsToItself(t *testing.T) {
	monday := WeekStart(date(2026, time.August, 31))

	assert.Equal(t, 31, monday.Day())
	assert.Equal(t, time.August, monday.Month())
}

func TestWeekStart_SundayAnchorsSixDaysBack(t *testing.T) {
	// Sunday Sep 6 2026 belongs to the week of Monday Aug 31.
	monday := WeekStart(date(2026, time.September, 6))

	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, 31, monday.Day())
	assert.Equal(t, time.August, monday.Month())
}

func TestWeekSheetName_Format(t *testing.T) {
	assert.Equal(t, "Week of Aug 31", WeekSheetName(date(2026, time.September, 2)))
	assert.Equal(t, "Week of Sep 7", WeekSheetName(date(2026, time.September, 7)))
}

func TestWeekSheetName_UnpaddedDay(t *testing.T) {
	// Monday Nov 2 2026: single-digit day stays unpadded.
	assert.Equal(t, "Week of Nov 2", WeekSheetName(date(2026, time.November, 4)))
}

func TestWeekSheetName_IdempotentWithinWeek(t *testing.T) {
	// Every day of the Monday-to-Sunday span yields the same label.
	monday := date(2026, time.August, 31)
	want := WeekSheetName(monday)

	for i := 0; i < 7; i++ {
		got := WeekSheetName(monday.AddDate(0, 0, i))
		assert.Equal(t, want, got, "day offset %d", i)
	}

	// The following Monday starts a new label.
	assert.NotEqual(t, want, WeekSheetName(monday.AddDate(0, 0, 7)))
}

func TestWeekSheetName_SundayMatchesPrecedingMonday(t *testing.T) {
	sunday := date(2026, time.September, 6)
	monday := date(2026, time.August, 31)

	assert.Equal(t, WeekSheetName(monday), WeekSheetName(sunday))
}

func TestWeekStart_Midnight(t *testing.T) {
	monday := WeekStart(date(2026, time.September, 2))

	assert.Equal(t, 0, monday.Hour())
	assert.Equal(t, 0, monday.Minute())
}
