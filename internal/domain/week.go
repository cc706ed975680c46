package domain

import (
	"fmt"
	"time"
)

var monthAbbrev = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// WeekStart returns the Monday that starts the week containing t, at
// midnight in t's location. Sundays anchor to the Monday six days prior.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// WeekSheetName returns the ledger tab label for the week containing t,
// e.g. "Week of Sep 1". Every date in the same Monday-to-Sunday span
// maps to the same label.
func WeekSheetName(t time.Time) string {
	monday := WeekStart(t)
	return fmt.Sprintf("Week of %s %d", monthAbbrev[monday.Month()-1], monday.Day())
}
