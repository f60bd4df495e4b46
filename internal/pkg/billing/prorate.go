package billing

import (
	"time"
)

// Prorate counts how many calendar days of (year, month) fall on the
// configured weekdays, and how many of those remain after removing the
// inclusive pause window. No rate math happens here; the assembler scales
// the rate from these counts.
func Prorate(daysOfWeek []int, pause *PauseWindow, year, month int) Proration {
	var p Proration
	if len(daysOfWeek) == 0 {
		return p
	}

	match := [7]bool{}
	for _, d := range daysOfWeek {
		if d >= 0 && d <= 6 {
			match[d] = true
		}
	}

	last := daysInMonth(year, month)
	for day := 1; day <= last; day++ {
		wd := int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday())
		if !match[wd] {
			continue
		}
		p.ScheduledDays++
		if pause != nil && day >= pause.StartDay && day <= pause.EndDay {
			continue
		}
		p.ActiveDays++
	}

	p.IsProRated = p.ActiveDays < p.ScheduledDays
	return p
}

func daysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
