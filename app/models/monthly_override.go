package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	OverrideStatusActive    = "active"
	OverrideStatusPaused    = "paused"
	OverrideStatusCancelled = "cancelled"
)

// MonthlyOverride is a single-month exception layered on top of a
// FacilityProfile. Every field is optional; a nil pointer (or empty
// days-of-week set) means "inherit from the profile". At most one override
// exists per (facility, year, month) and overrides are only ever created
// by explicit admin action.
type MonthlyOverride struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	FacilityProfileID  uint      `gorm:"not null;index:ux_monthly_overrides_facility_month,unique,priority:1" json:"facility_profile_id"`
	Year               int       `gorm:"not null;index:ux_monthly_overrides_facility_month,unique,priority:2" json:"year" validate:"gte=2000,lte=2100"`
	Month              int       `gorm:"not null;index:ux_monthly_overrides_facility_month,unique,priority:3" json:"month" validate:"gte=1,lte=12"`
	OverrideStatus     *string   `gorm:"type:varchar(20);default:null" json:"override_status,omitempty" validate:"omitempty,oneof=active paused cancelled"`
	OverrideRateCents  *int64    `gorm:"default:null" json:"override_rate_cents,omitempty" validate:"omitempty,gte=0"`
	OverrideFrequency  *int      `gorm:"default:null" json:"override_frequency,omitempty" validate:"omitempty,gte=0,lte=7"`
	OverrideDaysOfWeek string    `gorm:"type:varchar(20);not null;default:''" json:"override_days_of_week"`
	PauseStartDay      *int      `gorm:"default:null" json:"pause_start_day,omitempty" validate:"omitempty,gte=1,lte=31"`
	PauseEndDay        *int      `gorm:"default:null" json:"pause_end_day,omitempty" validate:"omitempty,gte=1,lte=31"`
	OverrideNotes      string    `gorm:"type:text" json:"override_notes"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

var (
	// ErrHalfOpenPauseRange flags an override where only one side of the
	// pause window is set.
	ErrHalfOpenPauseRange = errors.New("pause window requires both start and end day")
	// ErrInvertedPauseRange flags an override whose pause window ends
	// before it starts.
	ErrInvertedPauseRange = errors.New("pause window start day must not be after end day")
)

// Validate checks field constraints including the pause-window cross-field
// rules: both-or-neither, start <= end.
func (o *MonthlyOverride) Validate() error {
	v := validator.New()

	if err := v.Struct(o); err != nil {
		return err
	}
	if err := ValidatePauseRange(o.PauseStartDay, o.PauseEndDay); err != nil {
		return err
	}
	if _, err := ParseWeekdaySet(o.OverrideDaysOfWeek); err != nil {
		return err
	}
	return nil
}

// ValidatePauseRange enforces the both-or-neither and start<=end rules for
// a pause window. Day bounds are covered by struct tags.
func ValidatePauseRange(start, end *int) error {
	if (start == nil) != (end == nil) {
		return ErrHalfOpenPauseRange
	}
	if start != nil && *start > *end {
		return ErrInvertedPauseRange
	}
	return nil
}

// Weekdays returns the override's service-day set, nil when inheriting.
func (o *MonthlyOverride) Weekdays() []int {
	days, err := ParseWeekdaySet(o.OverrideDaysOfWeek)
	if err != nil {
		return nil
	}
	return days
}
