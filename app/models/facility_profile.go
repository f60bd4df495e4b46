package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FacilityStatusActive          = "active"
	FacilityStatusPaused          = "paused"
	FacilityStatusSeasonalPaused  = "seasonal_paused"
	FacilityStatusPendingApproval = "pending_approval"
	FacilityStatusClosed          = "closed"
)

const (
	RateTypeFlatMonthly = "flat_monthly"
	RateTypeDerived     = "derived"
)

const (
	TaxBehaviorInheritClient = "inherit_client"
	TaxBehaviorTaxIncluded   = "tax_included"
	TaxBehaviorPreTax        = "pre_tax"
)

// FacilityProfile is the durable recurring billing and schedule
// configuration for one serviced location of a client. Monthly exceptions
// are layered on top via MonthlyOverride; edits here affect every month
// that has no override of its own.
type FacilityProfile struct {
	ID                      uint           `gorm:"primaryKey" json:"id"`
	UUID                    string         `gorm:"type:char(36);uniqueIndex;not null" json:"uuid"`
	ClientID                uint           `gorm:"not null;index" json:"client_id"`
	LocationName            string         `gorm:"type:varchar(200);not null" json:"location_name" validate:"required,min=2,max=200"`
	Category                string         `gorm:"type:varchar(100);default:null" json:"category" validate:"max=100"`
	DefaultMonthlyRateCents int64          `gorm:"not null;default:0" json:"default_monthly_rate_cents" validate:"gte=0"`
	RateType                string         `gorm:"type:varchar(20);not null;default:'flat_monthly'" json:"rate_type" validate:"oneof=flat_monthly derived"`
	TaxBehavior             string         `gorm:"type:varchar(20);not null;default:'inherit_client'" json:"tax_behavior" validate:"oneof=inherit_client tax_included pre_tax"`
	Status                  string         `gorm:"type:varchar(20);not null;default:'active';index" json:"status" validate:"oneof=active paused seasonal_paused pending_approval closed"`
	GoLiveDate              *time.Time     `gorm:"type:date;default:null" json:"go_live_date,omitempty"`
	NormalDaysOfWeek        string         `gorm:"type:varchar(20);not null;default:''" json:"normal_days_of_week"`
	NormalFrequencyPerWeek  int            `gorm:"not null;default:0" json:"normal_frequency_per_week" validate:"gte=0,lte=7"`
	ScopeOfWorkNotes        string         `gorm:"type:text" json:"scope_of_work_notes"`
	CreatedAt               time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt               gorm.DeletedAt `gorm:"index" json:"-"`
}

func (f *FacilityProfile) BeforeCreate(tx *gorm.DB) error {
	if f.UUID == "" {
		f.UUID = uuid.New().String()
	}
	return nil
}

// Validate checks field constraints. The frequency/days-of-week consistency
// is deliberately not enforced here; it is a form-level concern.
func (f *FacilityProfile) Validate() error {
	v := validator.New()

	if err := v.Struct(f); err != nil {
		return err
	}
	if _, err := ParseWeekdaySet(f.NormalDaysOfWeek); err != nil {
		return err
	}
	return nil
}

// Weekdays returns the configured service days as sorted weekday indices.
func (f *FacilityProfile) Weekdays() []int {
	days, err := ParseWeekdaySet(f.NormalDaysOfWeek)
	if err != nil {
		return nil
	}
	return days
}

// ParseWeekdaySet parses a CSV of weekday indices ("1,3,5") into a sorted,
// de-duplicated slice. The empty string is a valid empty set.
func ParseWeekdaySet(csv string) ([]int, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil, nil
	}
	seen := make(map[int]struct{})
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid weekday %q in set %q", part, csv)
		}
		seen[d] = struct{}{}
	}
	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days, nil
}

// FormatWeekdaySet is the inverse of ParseWeekdaySet.
func FormatWeekdaySet(days []int) string {
	sorted := make([]int, len(days))
	copy(sorted, days)
	sort.Ints(sorted)
	parts := make([]string, 0, len(sorted))
	for _, d := range sorted {
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ",")
}

// IsTerminalStatus reports whether a profile status makes the facility
// unbillable regardless of any monthly override.
func IsTerminalStatus(status string) bool {
	return status == FacilityStatusClosed || status == FacilityStatusPendingApproval
}
