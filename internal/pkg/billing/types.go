package billing

import (
	"github.com/brightops/BrightOps/internal/pkg/money"
)

// PauseWindow is an inclusive day-of-month range during which service is
// suspended without changing the facility's billable status.
type PauseWindow struct {
	StartDay int `json:"start_day"`
	EndDay   int `json:"end_day"`
}

// EffectiveConfig is the resolved (profile + override) configuration used
// to bill one facility for one month. It is derived on every request and
// never persisted.
type EffectiveConfig struct {
	Status       string       `json:"status"`
	RateCents    money.Cents  `json:"rate_cents"`
	Frequency    int          `json:"frequency"`
	DaysOfWeek   []int        `json:"days_of_week"`
	TaxBehavior  string       `json:"tax_behavior"`
	PauseWindow  *PauseWindow `json:"pause_window,omitempty"`
	IsOverridden bool         `json:"is_overridden"`
}

// Proration holds the active-vs-scheduled day counts for one month.
type Proration struct {
	ScheduledDays int  `json:"scheduled_days"`
	ActiveDays    int  `json:"active_days"`
	IsProRated    bool `json:"is_pro_rated"`
}

// TaxResult is the computed tax for a single line.
type TaxResult struct {
	// Mode is the resolved tax mode (pre_tax or tax_included) after
	// inherit_client has been replaced by the client default.
	Mode           string      `json:"mode"`
	LineItemTax    money.Cents `json:"line_item_tax_cents"`
	LineItemTotal  money.Cents `json:"line_item_total_cents"`
	TaxRateApplied int64       `json:"tax_rate_basis_points"`
}

// LineItem is one facility's computed charge row within a BillingPreview.
type LineItem struct {
	FacilityProfileID   uint        `json:"facility_profile_id"`
	FacilityUUID        string      `json:"facility_uuid"`
	LocationName        string      `json:"location_name"`
	Category            string      `json:"category,omitempty"`
	EffectiveStatus     string      `json:"effective_status"`
	EffectiveRateCents  money.Cents `json:"effective_rate_cents"`
	EffectiveRate       string      `json:"effective_rate"`
	EffectiveFrequency  int         `json:"effective_frequency"`
	EffectiveDaysOfWeek []int       `json:"effective_days_of_week"`
	TaxMode             string      `json:"tax_mode"`
	IncludedInTotal     bool        `json:"included_in_total"`
	IsOverridden        bool        `json:"is_overridden"`
	IsSeasonallyPaused  bool        `json:"is_seasonally_paused"`
	IsProRated          bool        `json:"is_pro_rated"`
	ActiveDays          int         `json:"active_days"`
	ScheduledDays       int         `json:"scheduled_days"`
	LineItemTaxCents    money.Cents `json:"line_item_tax_cents"`
	LineItemTotalCents  money.Cents `json:"line_item_total_cents"`
}

// Explanation groups the human-readable reasons behind a preview's totals:
// which facilities were excluded for which reason, which months carry an
// override, and how the total moved against the prior month.
type Explanation struct {
	SeasonallyPaused []string `json:"seasonally_paused,omitempty"`
	Paused           []string `json:"paused,omitempty"`
	PendingApproval  []string `json:"pending_approval,omitempty"`
	Closed           []string `json:"closed,omitempty"`
	Overridden       []string `json:"overridden,omitempty"`
	DeltaNarrative   string   `json:"delta_narrative,omitempty"`
}

// BillingPreview is the fully assembled charge preview for one
// client-month. Derived on every request from the latest stored state.
type BillingPreview struct {
	ClientID            uint         `json:"client_id"`
	ClientUUID          string       `json:"client_uuid"`
	Year                int          `json:"year"`
	Month               int          `json:"month"`
	LineItems           []LineItem   `json:"line_items"`
	SubtotalCents       money.Cents  `json:"subtotal_cents"`
	TaxRateBasisPoints  int64        `json:"tax_rate_basis_points"`
	TaxAmountCents      money.Cents  `json:"tax_amount_cents"`
	TotalCents          money.Cents  `json:"total_cents"`
	ActiveFacilityCount int          `json:"active_facility_count"`
	TotalFacilityCount  int          `json:"total_facility_count"`
	PreviousMonthTotal  *money.Cents `json:"previous_month_total_cents,omitempty"`
	DeltaCents          *money.Cents `json:"delta_cents,omitempty"`
	Explanation         Explanation  `json:"explanation"`
}

// Change classifications for a month-over-month facility diff.
const (
	ChangeAdded     = "added"
	ChangeRemoved   = "removed"
	ChangeChanged   = "changed"
	ChangeUnchanged = "unchanged"
)

// FacilityDelta compares one facility across two resolved months.
// HasCurrent/HasPrevious distinguish a true zero amount from "facility not
// present that month" (rendered as a dash by display layers).
type FacilityDelta struct {
	FacilityProfileID  uint        `json:"facility_profile_id"`
	FacilityUUID       string      `json:"facility_uuid"`
	LocationName       string      `json:"location_name"`
	ChangeType         string      `json:"change_type"`
	HasCurrent         bool        `json:"has_current"`
	HasPrevious        bool        `json:"has_previous"`
	CurrentStatus      string      `json:"current_status,omitempty"`
	PreviousStatus     string      `json:"previous_status,omitempty"`
	CurrentTotalCents  money.Cents `json:"current_total_cents"`
	PreviousTotalCents money.Cents `json:"previous_total_cents"`
	TotalDeltaCents    money.Cents `json:"total_delta_cents"`
	SubtotalDeltaCents money.Cents `json:"subtotal_delta_cents"`
	TaxDeltaCents      money.Cents `json:"tax_delta_cents"`
}

// DeltaReport is the month-over-month diff of two BillingPreviews.
type DeltaReport struct {
	ClientID           uint            `json:"client_id"`
	ClientUUID         string          `json:"client_uuid"`
	CurrentYear        int             `json:"current_year"`
	CurrentMonth       int             `json:"current_month"`
	PreviousYear       int             `json:"previous_year"`
	PreviousMonth      int             `json:"previous_month"`
	Facilities         []FacilityDelta `json:"facilities"`
	TotalDeltaCents    money.Cents     `json:"total_delta_cents"`
	SubtotalDeltaCents money.Cents     `json:"subtotal_delta_cents"`
	TaxDeltaCents      money.Cents     `json:"tax_delta_cents"`
	AddedCount         int             `json:"added_count"`
	RemovedCount       int             `json:"removed_count"`
	ChangedCount       int             `json:"changed_count"`
	UnchangedCount     int             `json:"unchanged_count"`
}

// ScheduleEntry is one facility slot on the weekly calendar.
type ScheduleEntry struct {
	FacilityProfileID uint   `json:"facility_profile_id"`
	FacilityUUID      string `json:"facility_uuid"`
	LocationName      string `json:"location_name"`
	Frequency         int    `json:"frequency"`
}

// WeekSchedule maps weekday indices (0 = Sunday) to the facilities
// serviced on that weekday.
type WeekSchedule map[int][]ScheduleEntry
