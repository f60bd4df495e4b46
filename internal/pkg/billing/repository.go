package billing

import (
	"github.com/brightops/BrightOps/app/models"
	"gorm.io/gorm"
)

// Repository provides DB operations used by the billing service.
type Repository interface {
	GetClientByUUID(uuid string) (*models.Client, error)
	GetFacilityProfileByUUID(uuid string) (*models.FacilityProfile, error)
	ListFacilityProfilesByClient(clientID uint) ([]models.FacilityProfile, error)
	ListOverridesForClientMonth(clientID uint, year, month int) ([]models.MonthlyOverride, error)
	GetOverride(facilityProfileID uint, year, month int) (*models.MonthlyOverride, error)
	CreateOverride(o *models.MonthlyOverride) error
	SaveOverride(o *models.MonthlyOverride) error
	DeleteOverride(facilityProfileID uint, year, month int) error
	UpdateFacilityStatus(facilityProfileID uint, status string) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a billing repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetClientByUUID(uuid string) (*models.Client, error) {
	var client models.Client
	if err := r.db.Where("uuid = ?", uuid).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *gormRepository) GetFacilityProfileByUUID(uuid string) (*models.FacilityProfile, error) {
	var profile models.FacilityProfile
	if err := r.db.Where("uuid = ?", uuid).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *gormRepository) ListFacilityProfilesByClient(clientID uint) ([]models.FacilityProfile, error) {
	var profiles []models.FacilityProfile
	err := r.db.Where("client_id = ?", clientID).Order("id ASC").Find(&profiles).Error
	return profiles, err
}

func (r *gormRepository) ListOverridesForClientMonth(clientID uint, year, month int) ([]models.MonthlyOverride, error) {
	var overrides []models.MonthlyOverride
	err := r.db.
		Joins("JOIN facility_profiles ON facility_profiles.id = monthly_overrides.facility_profile_id").
		Where("facility_profiles.client_id = ? AND monthly_overrides.year = ? AND monthly_overrides.month = ?",
			clientID, year, month).
		Find(&overrides).Error
	return overrides, err
}

func (r *gormRepository) GetOverride(facilityProfileID uint, year, month int) (*models.MonthlyOverride, error) {
	var o models.MonthlyOverride
	err := r.db.
		Where("facility_profile_id = ? AND year = ? AND month = ?", facilityProfileID, year, month).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *gormRepository) CreateOverride(o *models.MonthlyOverride) error {
	return r.db.Create(o).Error
}

func (r *gormRepository) SaveOverride(o *models.MonthlyOverride) error {
	return r.db.Save(o).Error
}

func (r *gormRepository) DeleteOverride(facilityProfileID uint, year, month int) error {
	return r.db.
		Where("facility_profile_id = ? AND year = ? AND month = ?", facilityProfileID, year, month).
		Delete(&models.MonthlyOverride{}).Error
}

func (r *gormRepository) UpdateFacilityStatus(facilityProfileID uint, status string) error {
	return r.db.Model(&models.FacilityProfile{}).
		Where("id = ?", facilityProfileID).
		Update("status", status).Error
}
