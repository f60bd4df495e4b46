package billing

import (
	"fmt"

	"github.com/brightops/BrightOps/app/models"
	"github.com/brightops/BrightOps/internal/pkg/money"
)

// Resolve merges a facility profile with an optional single-month override
// into the effective configuration for (year, month). Each override field
// wins only when present; absence inherits from the profile.
//
// Rate and frequency carry a zero-as-absent rule: an override value of
// exactly 0 is treated as "not set" unless the override's status is
// explicitly paused. A deliberate $0 month is expressed via status, never
// via a bare zero rate. Blank admin form inputs used to arrive here as 0,
// and this rule keeps those from wiping out the profile rate; do not relax
// it to allow true $0 overrides.
func Resolve(profile *models.FacilityProfile, override *models.MonthlyOverride, year, month int) (EffectiveConfig, error) {
	if profile == nil {
		return EffectiveConfig{}, fmt.Errorf("resolve: %w: nil facility profile", ErrNotFound)
	}
	if month < 1 || month > 12 {
		return EffectiveConfig{}, fmt.Errorf("resolve: invalid month %d", month)
	}

	cfg := EffectiveConfig{
		Status:      profile.Status,
		RateCents:   money.Cents(profile.DefaultMonthlyRateCents),
		Frequency:   profile.NormalFrequencyPerWeek,
		DaysOfWeek:  profile.Weekdays(),
		TaxBehavior: profile.TaxBehavior,
	}

	if override == nil {
		return cfg, nil
	}
	if override.Year != year || override.Month != month {
		return EffectiveConfig{}, fmt.Errorf("resolve: override is for %d-%02d, not %d-%02d",
			override.Year, override.Month, year, month)
	}

	// Overrides are validated before storage; a broken range here means the
	// stored data is corrupt, so fail instead of guessing.
	if err := models.ValidatePauseRange(override.PauseStartDay, override.PauseEndDay); err != nil {
		return EffectiveConfig{}, fmt.Errorf("resolve facility %d for %d-%02d: %w: %v",
			profile.ID, year, month, ErrInvalidPauseRange, err)
	}

	cfg.IsOverridden = true

	overridePaused := override.OverrideStatus != nil && *override.OverrideStatus == models.OverrideStatusPaused

	// Closed and pending-approval profiles are terminal for the month; no
	// override can make them billable.
	if !models.IsTerminalStatus(profile.Status) && override.OverrideStatus != nil {
		cfg.Status = effectiveOverrideStatus(*override.OverrideStatus)
	}

	if override.OverrideRateCents != nil && (*override.OverrideRateCents != 0 || overridePaused) {
		cfg.RateCents = money.Cents(*override.OverrideRateCents)
	}
	if override.OverrideFrequency != nil && (*override.OverrideFrequency != 0 || overridePaused) {
		cfg.Frequency = *override.OverrideFrequency
	}
	if days := override.Weekdays(); len(days) > 0 {
		cfg.DaysOfWeek = days
	}
	if override.PauseStartDay != nil && override.PauseEndDay != nil {
		cfg.PauseWindow = &PauseWindow{StartDay: *override.PauseStartDay, EndDay: *override.PauseEndDay}
	}

	return cfg, nil
}

// effectiveOverrideStatus maps an override status onto the effective
// status vocabulary. A cancelled month behaves like a closed facility for
// that month only.
func effectiveOverrideStatus(overrideStatus string) string {
	switch overrideStatus {
	case models.OverrideStatusActive:
		return models.FacilityStatusActive
	case models.OverrideStatusPaused:
		return models.FacilityStatusPaused
	case models.OverrideStatusCancelled:
		return models.FacilityStatusClosed
	default:
		return overrideStatus
	}
}
