package repository

import (
	"github.com/brightops/BrightOps/app/models"
	"gorm.io/gorm"
)

// ClientRepository defines the interface for client-related database operations
type ClientRepository interface {
	Create(client *models.Client) error
	GetByID(id uint) (*models.Client, error)
	GetByUUID(uuid string) (*models.Client, error)
	List(offset, limit int) ([]models.Client, error)
	ListActive() ([]models.Client, error)
	Update(client *models.Client) error
	Delete(id uint) error
	Count() (int64, error)
}

// FacilityProfileRepository defines the interface for facility-related database operations
type FacilityProfileRepository interface {
	Create(profile *models.FacilityProfile) error
	GetByID(id uint) (*models.FacilityProfile, error)
	GetByUUID(uuid string) (*models.FacilityProfile, error)
	GetByClientID(clientID uint) ([]models.FacilityProfile, error)
	Update(profile *models.FacilityProfile) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
}

// MonthlyOverrideRepository defines the interface for override-related database operations
type MonthlyOverrideRepository interface {
	Create(override *models.MonthlyOverride) error
	Get(facilityProfileID uint, year, month int) (*models.MonthlyOverride, error)
	ListByFacility(facilityProfileID uint) ([]models.MonthlyOverride, error)
	ListByClientMonth(clientID uint, year, month int) ([]models.MonthlyOverride, error)
	Update(override *models.MonthlyOverride) error
	Delete(facilityProfileID uint, year, month int) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Client          ClientRepository
	FacilityProfile FacilityProfileRepository
	MonthlyOverride MonthlyOverrideRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Client:          NewClientRepository(db),
		FacilityProfile: NewFacilityProfileRepository(db),
		MonthlyOverride: NewMonthlyOverrideRepository(db),
	}
}
