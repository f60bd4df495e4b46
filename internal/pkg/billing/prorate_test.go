package billing

import "testing"

var weekdaysMonFri = []int{1, 2, 3, 4, 5}

func TestProrateFullMonth(t *testing.T) {
	t.Parallel()

	// March 2021: 31 days, starts on a Monday, 23 Mon-Fri days.
	p := Prorate(weekdaysMonFri, nil, 2021, 3)
	if p.ScheduledDays != 23 {
		t.Fatalf("expected 23 scheduled days, got %d", p.ScheduledDays)
	}
	if p.ActiveDays != 23 {
		t.Fatalf("expected 23 active days, got %d", p.ActiveDays)
	}
	if p.IsProRated {
		t.Fatalf("full month must not be pro-rated")
	}
}

func TestProrateMidMonthPauseWindow(t *testing.T) {
	t.Parallel()

	// Pause March 16-27 2021 covers 9 weekdays.
	p := Prorate(weekdaysMonFri, &PauseWindow{StartDay: 16, EndDay: 27}, 2021, 3)
	if p.ScheduledDays != 23 {
		t.Fatalf("expected 23 scheduled days, got %d", p.ScheduledDays)
	}
	if p.ActiveDays != 14 {
		t.Fatalf("expected 14 active days, got %d", p.ActiveDays)
	}
	if !p.IsProRated {
		t.Fatalf("expected IsProRated=true")
	}
}

func TestProrateWholeMonthPause(t *testing.T) {
	t.Parallel()

	p := Prorate(weekdaysMonFri, &PauseWindow{StartDay: 1, EndDay: 31}, 2021, 3)
	if p.ScheduledDays != 23 {
		t.Fatalf("expected 23 scheduled days, got %d", p.ScheduledDays)
	}
	if p.ActiveDays != 0 {
		t.Fatalf("expected 0 active days, got %d", p.ActiveDays)
	}
	if !p.IsProRated {
		t.Fatalf("expected IsProRated=true")
	}
}

func TestProrateEmptyWeekdaySet(t *testing.T) {
	t.Parallel()

	p := Prorate(nil, nil, 2021, 3)
	if p.ScheduledDays != 0 || p.ActiveDays != 0 || p.IsProRated {
		t.Fatalf("expected empty proration, got %+v", p)
	}
}

func TestProratePauseOnNonServiceDaysChangesNothing(t *testing.T) {
	t.Parallel()

	// March 20-21 2021 is a weekend; Mon-Fri schedule is untouched.
	p := Prorate(weekdaysMonFri, &PauseWindow{StartDay: 20, EndDay: 21}, 2021, 3)
	if p.ActiveDays != p.ScheduledDays {
		t.Fatalf("weekend pause must not reduce active days: %+v", p)
	}
	if p.IsProRated {
		t.Fatalf("expected IsProRated=false")
	}
}

func TestProrateLeapFebruary(t *testing.T) {
	t.Parallel()

	// February 2024 has 29 days; Thursdays fall on 1, 8, 15, 22 and the
	// leap day 29.
	p := Prorate([]int{4}, nil, 2024, 2)
	if p.ScheduledDays != 5 {
		t.Fatalf("expected 5 Thursdays in Feb 2024, got %d", p.ScheduledDays)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year, month, want int
	}{
		{2021, 3, 31},
		{2021, 4, 30},
		{2021, 2, 28},
		{2024, 2, 29},
		{2021, 12, 31},
	}
	for _, tt := range tests {
		if got := daysInMonth(tt.year, tt.month); got != tt.want {
			t.Fatalf("daysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
