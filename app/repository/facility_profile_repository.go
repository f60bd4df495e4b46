package repository

import (
	"github.com/brightops/BrightOps/app/models"
	"gorm.io/gorm"
)

// facilityProfileRepository implements the FacilityProfileRepository interface
type facilityProfileRepository struct {
	db *gorm.DB
}

// NewFacilityProfileRepository creates a new facility profile repository instance
func NewFacilityProfileRepository(db *gorm.DB) FacilityProfileRepository {
	return &facilityProfileRepository{db: db}
}

func (r *facilityProfileRepository) Create(profile *models.FacilityProfile) error {
	return r.db.Create(profile).Error
}

func (r *facilityProfileRepository) GetByID(id uint) (*models.FacilityProfile, error) {
	var profile models.FacilityProfile
	err := r.db.First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *facilityProfileRepository) GetByUUID(uuid string) (*models.FacilityProfile, error) {
	var profile models.FacilityProfile
	err := r.db.Where("uuid = ?", uuid).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *facilityProfileRepository) GetByClientID(clientID uint) ([]models.FacilityProfile, error) {
	var profiles []models.FacilityProfile
	err := r.db.Where("client_id = ?", clientID).Order("id ASC").Find(&profiles).Error
	return profiles, err
}

func (r *facilityProfileRepository) Update(profile *models.FacilityProfile) error {
	return r.db.Save(profile).Error
}

func (r *facilityProfileRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.FacilityProfile{}).Where("id = ?", id).Update("status", status).Error
}

func (r *facilityProfileRepository) Delete(id uint) error {
	return r.db.Delete(&models.FacilityProfile{}, id).Error
}

func (r *facilityProfileRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.FacilityProfile{}).Count(&count).Error
	return count, err
}

func (r *facilityProfileRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.FacilityProfile{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
