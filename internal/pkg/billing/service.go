package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightops/BrightOps/app/models"
	"gorm.io/gorm"
)

// Service runs billing resolution for a client's facilities. All reads
// happen up front per request; the computation itself is pure and
// side-effect free. The tax rate and the month under preview are always
// passed in explicitly, never read from ambient state.
type Service struct {
	repo Repository
}

// NewService creates a billing service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a billing service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// PreviewMonth assembles the billing preview for one client-month. The
// prior month is assembled alongside so the preview carries its
// previous-month total and delta narrative.
func (s *Service) PreviewMonth(ctx context.Context, clientUUID string, year, month int) (*BillingPreview, error) {
	_ = ctx
	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}

	client, profiles, err := s.loadClient(clientUUID)
	if err != nil {
		return nil, err
	}

	prevYear, prevMonth := previousMonth(year, month)
	previous, err := s.assembleMonth(client, profiles, prevYear, prevMonth, nil)
	if err != nil {
		return nil, err
	}

	return s.assembleMonth(client, profiles, year, month, previous)
}

// MonthDelta assembles (year, month) and its predecessor independently and
// diffs them.
func (s *Service) MonthDelta(ctx context.Context, clientUUID string, year, month int) (*DeltaReport, error) {
	_ = ctx
	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}

	client, profiles, err := s.loadClient(clientUUID)
	if err != nil {
		return nil, err
	}

	prevYear, prevMonth := previousMonth(year, month)
	previous, err := s.assembleMonth(client, profiles, prevYear, prevMonth, nil)
	if err != nil {
		return nil, err
	}
	current, err := s.assembleMonth(client, profiles, year, month, nil)
	if err != nil {
		return nil, err
	}

	return Diff(current, previous)
}

// WeekSchedule resolves one client-month and projects it onto the weekly
// calendar.
func (s *Service) WeekSchedule(ctx context.Context, clientUUID string, year, month int) (WeekSchedule, error) {
	_ = ctx
	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}

	client, profiles, err := s.loadClient(clientUUID)
	if err != nil {
		return nil, err
	}
	preview, err := s.assembleMonth(client, profiles, year, month, nil)
	if err != nil {
		return nil, err
	}
	return ProjectWeekSchedule(preview.LineItems), nil
}

// SetFacilityStatus is the permanent activate/pause toggle. It mutates the
// profile status and therefore affects every month without an override of
// its own; a single-month exception goes through the override operations
// instead. The two paths stay separate on purpose.
func (s *Service) SetFacilityStatus(ctx context.Context, facilityUUID, status string) (*models.FacilityProfile, error) {
	_ = ctx
	switch status {
	case models.FacilityStatusActive, models.FacilityStatusPaused,
		models.FacilityStatusSeasonalPaused, models.FacilityStatusPendingApproval,
		models.FacilityStatusClosed:
	default:
		return nil, fmt.Errorf("invalid facility status %q", status)
	}

	profile, err := s.facilityByUUID(facilityUUID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFacilityStatus(profile.ID, status); err != nil {
		return nil, err
	}
	profile.Status = status
	return profile, nil
}

// CreateOverride stores a new single-month override. At most one override
// exists per (facility, year, month); a second create is rejected.
func (s *Service) CreateOverride(ctx context.Context, facilityUUID string, o *models.MonthlyOverride) (*models.MonthlyOverride, error) {
	_ = ctx
	profile, err := s.facilityByUUID(facilityUUID)
	if err != nil {
		return nil, err
	}
	o.FacilityProfileID = profile.ID

	if err := o.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetOverride(profile.ID, o.Year, o.Month); err == nil {
		return nil, fmt.Errorf("facility %s %d-%02d: %w", facilityUUID, o.Year, o.Month, ErrDuplicateOverride)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.repo.CreateOverride(o); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateOverride replaces the stored override for (facility, year, month).
// Storage is last-writer-wins; callers should re-fetch before editing.
func (s *Service) UpdateOverride(ctx context.Context, facilityUUID string, year, month int, update *models.MonthlyOverride) (*models.MonthlyOverride, error) {
	_ = ctx
	profile, err := s.facilityByUUID(facilityUUID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetOverride(profile.ID, year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("override for facility %s %d-%02d: %w", facilityUUID, year, month, ErrNotFound)
		}
		return nil, err
	}

	existing.OverrideStatus = update.OverrideStatus
	existing.OverrideRateCents = update.OverrideRateCents
	existing.OverrideFrequency = update.OverrideFrequency
	existing.OverrideDaysOfWeek = update.OverrideDaysOfWeek
	existing.PauseStartDay = update.PauseStartDay
	existing.PauseEndDay = update.PauseEndDay
	existing.OverrideNotes = update.OverrideNotes

	if err := existing.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.SaveOverride(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteOverride removes the override for (facility, year, month), letting
// the month fall back to the profile configuration.
func (s *Service) DeleteOverride(ctx context.Context, facilityUUID string, year, month int) error {
	_ = ctx
	profile, err := s.facilityByUUID(facilityUUID)
	if err != nil {
		return err
	}
	if _, err := s.repo.GetOverride(profile.ID, year, month); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("override for facility %s %d-%02d: %w", facilityUUID, year, month, ErrNotFound)
		}
		return err
	}
	return s.repo.DeleteOverride(profile.ID, year, month)
}

func (s *Service) loadClient(clientUUID string) (*models.Client, []models.FacilityProfile, error) {
	client, err := s.repo.GetClientByUUID(clientUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("client %s: %w", clientUUID, ErrNotFound)
		}
		return nil, nil, err
	}
	profiles, err := s.repo.ListFacilityProfilesByClient(client.ID)
	if err != nil {
		return nil, nil, err
	}
	return client, profiles, nil
}

func (s *Service) facilityByUUID(facilityUUID string) (*models.FacilityProfile, error) {
	profile, err := s.repo.GetFacilityProfileByUUID(facilityUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("facility %s: %w", facilityUUID, ErrNotFound)
		}
		return nil, err
	}
	return profile, nil
}

func (s *Service) assembleMonth(client *models.Client, profiles []models.FacilityProfile, year, month int, previous *BillingPreview) (*BillingPreview, error) {
	overrides, err := s.repo.ListOverridesForClientMonth(client.ID, year, month)
	if err != nil {
		return nil, err
	}
	byFacility := make(map[uint]*models.MonthlyOverride, len(overrides))
	for i := range overrides {
		byFacility[overrides[i].FacilityProfileID] = &overrides[i]
	}

	return Assemble(AssembleInput{
		Client:              client,
		Year:                year,
		Month:               month,
		Profiles:            profiles,
		OverridesByFacility: byFacility,
		Previous:            previous,
	})
}

func validateYearMonth(year, month int) error {
	if year < 2000 || year > 2100 {
		return fmt.Errorf("invalid year %d", year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month %d", month)
	}
	return nil
}

func previousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}
