package billing

import (
	"errors"
	"testing"

	"github.com/brightops/BrightOps/app/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }

func testProfile() *models.FacilityProfile {
	return &models.FacilityProfile{
		ID:                      1,
		UUID:                    "fac-1",
		ClientID:                1,
		LocationName:            "Harbor Office Park",
		DefaultMonthlyRateCents: 30000,
		RateType:                models.RateTypeFlatMonthly,
		TaxBehavior:             models.TaxBehaviorInheritClient,
		Status:                  models.FacilityStatusActive,
		NormalDaysOfWeek:        "1,2,3,4,5",
		NormalFrequencyPerWeek:  5,
	}
}

func TestResolveWithoutOverrideInheritsProfile(t *testing.T) {
	t.Parallel()

	cfg, err := Resolve(testProfile(), nil, 2021, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Status != models.FacilityStatusActive {
		t.Fatalf("expected active status, got %q", cfg.Status)
	}
	if cfg.RateCents != 30000 {
		t.Fatalf("expected rate 30000, got %d", cfg.RateCents)
	}
	if cfg.Frequency != 5 {
		t.Fatalf("expected frequency 5, got %d", cfg.Frequency)
	}
	if len(cfg.DaysOfWeek) != 5 || cfg.DaysOfWeek[0] != 1 || cfg.DaysOfWeek[4] != 5 {
		t.Fatalf("unexpected weekday set: %v", cfg.DaysOfWeek)
	}
	if cfg.IsOverridden {
		t.Fatalf("expected IsOverridden=false without override")
	}
}

func TestResolveOverrideFieldsWinWhenPresent(t *testing.T) {
	t.Parallel()

	o := &models.MonthlyOverride{
		FacilityProfileID:  1,
		Year:               2021,
		Month:              3,
		OverrideRateCents:  int64Ptr(45000),
		OverrideFrequency:  intPtr(3),
		OverrideDaysOfWeek: "1,3,5",
	}
	cfg, err := Resolve(testProfile(), o, 2021, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RateCents != 45000 {
		t.Fatalf("expected overridden rate 45000, got %d", cfg.RateCents)
	}
	if cfg.Frequency != 3 {
		t.Fatalf("expected overridden frequency 3, got %d", cfg.Frequency)
	}
	if len(cfg.DaysOfWeek) != 3 {
		t.Fatalf("expected overridden weekday set, got %v", cfg.DaysOfWeek)
	}
	if !cfg.IsOverridden {
		t.Fatalf("expected IsOverridden=true")
	}
}

// A blank form input coerced to 0 must not wipe out the profile rate. Only
// an explicitly paused override may carry a real zero.
func TestResolveZeroRateFallsBackToProfile(t *testing.T) {
	t.Parallel()

	o := &models.MonthlyOverride{
		FacilityProfileID: 1,
		Year:              2021,
		Month:             3,
		OverrideRateCents: int64Ptr(0),
		OverrideFrequency: intPtr(0),
	}
	cfg, err := Resolve(testProfile(), o, 2021, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RateCents != 30000 {
		t.Fatalf("zero override rate must inherit profile rate, got %d", cfg.RateCents)
	}
	if cfg.Frequency != 5 {
		t.Fatalf("zero override frequency must inherit profile frequency, got %d", cfg.Frequency)
	}
}

func TestResolveZeroRateKeptWhenOverridePaused(t *testing.T) {
	t.Parallel()

	o := &models.MonthlyOverride{
		FacilityProfileID: 1,
		Year:              2021,
		Month:             3,
		OverrideStatus:    strPtr(models.OverrideStatusPaused),
		OverrideRateCents: int64Ptr(0),
	}
	cfg, err := Resolve(testProfile(), o, 2021, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Status != models.FacilityStatusPaused {
		t.Fatalf("expected paused status, got %q", cfg.Status)
	}
	if cfg.RateCents != 0 {
		t.Fatalf("paused override may carry zero rate, got %d", cfg.RateCents)
	}
}

func TestResolveTerminalProfileStatusWins(t *testing.T) {
	t.Parallel()

	for _, status := range []string{models.FacilityStatusClosed, models.FacilityStatusPendingApproval} {
		p := testProfile()
		p.Status = status
		o := &models.MonthlyOverride{
			FacilityProfileID: 1,
			Year:              2021,
			Month:             3,
			OverrideStatus:    strPtr(models.OverrideStatusActive),
		}
		cfg, err := Resolve(p, o, 2021, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Status != status {
			t.Fatalf("terminal status %q must not be overridden, got %q", status, cfg.Status)
		}
	}
}

func TestResolveOverrideStatusWinsOverNonTerminalProfile(t *testing.T) {
	t.Parallel()

	p := testProfile()
	p.Status = models.FacilityStatusPaused
	o := &models.MonthlyOverride{
		FacilityProfileID: 1,
		Year:              2021,
		Month:             3,
		OverrideStatus:    strPtr(models.OverrideStatusActive),
	}
	cfg, err := Resolve(p, o, 2021, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Status != models.FacilityStatusActive {
		t.Fatalf("expected override to reactivate paused profile, got %q", cfg.Status)
	}
}

func TestResolveCancelledOverrideClosesMonth(t *testing.T) {
	t.Parallel()

	o := &models.MonthlyOverride{
		FacilityProfileID: 1,
		Year:              2021,
		Month:             3,
		OverrideStatus:    strPtr(models.OverrideStatusCancelled),
	}
	cfg, err := Resolve(testProfile(), o, 2021, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Status != models.FacilityStatusClosed {
		t.Fatalf("expected cancelled month to resolve closed, got %q", cfg.Status)
	}
}

func TestResolvePauseWindowPassedThrough(t *testing.T) {
	t.Parallel()

	o := &models.MonthlyOverride{
		FacilityProfileID: 1,
		Year:              2021,
		Month:             3,
		PauseStartDay:     intPtr(16),
		PauseEndDay:       intPtr(27),
	}
	cfg, err := Resolve(testProfile(), o, 2021, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PauseWindow == nil || cfg.PauseWindow.StartDay != 16 || cfg.PauseWindow.EndDay != 27 {
		t.Fatalf("expected pause window 16-27, got %+v", cfg.PauseWindow)
	}
	if cfg.Status != models.FacilityStatusActive {
		t.Fatalf("pause window must keep facility billable, got %q", cfg.Status)
	}
}

func TestResolveRejectsInvalidPauseRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start *int
		end   *int
	}{
		{name: "only start", start: intPtr(10)},
		{name: "only end", end: intPtr(20)},
		{name: "inverted", start: intPtr(20), end: intPtr(10)},
	}
	for _, tt := range tests {
		o := &models.MonthlyOverride{
			FacilityProfileID: 1,
			Year:              2021,
			Month:             3,
			PauseStartDay:     tt.start,
			PauseEndDay:       tt.end,
		}
		_, err := Resolve(testProfile(), o, 2021, 3)
		if !errors.Is(err, ErrInvalidPauseRange) {
			t.Fatalf("%s: expected ErrInvalidPauseRange, got %v", tt.name, err)
		}
	}
}

func TestResolveRejectsOverrideForDifferentMonth(t *testing.T) {
	t.Parallel()

	o := &models.MonthlyOverride{FacilityProfileID: 1, Year: 2021, Month: 4}
	if _, err := Resolve(testProfile(), o, 2021, 3); err == nil {
		t.Fatalf("expected error for override belonging to another month")
	}
}
