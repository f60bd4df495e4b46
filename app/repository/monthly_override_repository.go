package repository

import (
	"github.com/brightops/BrightOps/app/models"
	"gorm.io/gorm"
)

// monthlyOverrideRepository implements the MonthlyOverrideRepository interface
type monthlyOverrideRepository struct {
	db *gorm.DB
}

// NewMonthlyOverrideRepository creates a new monthly override repository instance
func NewMonthlyOverrideRepository(db *gorm.DB) MonthlyOverrideRepository {
	return &monthlyOverrideRepository{db: db}
}

func (r *monthlyOverrideRepository) Create(override *models.MonthlyOverride) error {
	return r.db.Create(override).Error
}

func (r *monthlyOverrideRepository) Get(facilityProfileID uint, year, month int) (*models.MonthlyOverride, error) {
	var override models.MonthlyOverride
	err := r.db.
		Where("facility_profile_id = ? AND year = ? AND month = ?", facilityProfileID, year, month).
		First(&override).Error
	if err != nil {
		return nil, err
	}
	return &override, nil
}

func (r *monthlyOverrideRepository) ListByFacility(facilityProfileID uint) ([]models.MonthlyOverride, error) {
	var overrides []models.MonthlyOverride
	err := r.db.
		Where("facility_profile_id = ?", facilityProfileID).
		Order("year ASC, month ASC").
		Find(&overrides).Error
	return overrides, err
}

func (r *monthlyOverrideRepository) ListByClientMonth(clientID uint, year, month int) ([]models.MonthlyOverride, error) {
	var overrides []models.MonthlyOverride
	err := r.db.
		Joins("JOIN facility_profiles ON facility_profiles.id = monthly_overrides.facility_profile_id").
		Where("facility_profiles.client_id = ? AND monthly_overrides.year = ? AND monthly_overrides.month = ?",
			clientID, year, month).
		Find(&overrides).Error
	return overrides, err
}

func (r *monthlyOverrideRepository) Update(override *models.MonthlyOverride) error {
	return r.db.Save(override).Error
}

func (r *monthlyOverrideRepository) Delete(facilityProfileID uint, year, month int) error {
	return r.db.
		Where("facility_profile_id = ? AND year = ? AND month = ?", facilityProfileID, year, month).
		Delete(&models.MonthlyOverride{}).Error
}
