package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brightops/BrightOps/app/models"
	"github.com/brightops/BrightOps/app/repository"
	"github.com/brightops/BrightOps/internal/pkg/billing"
	"github.com/brightops/BrightOps/internal/pkg/database"
	"github.com/brightops/BrightOps/internal/pkg/money"
)

type facilityRequest struct {
	LocationName           string `json:"location_name"`
	Category               string `json:"category"`
	DefaultMonthlyRate     string `json:"default_monthly_rate"`
	RateType               string `json:"rate_type"`
	TaxBehavior            string `json:"tax_behavior"`
	Status                 string `json:"status"`
	GoLiveDate             string `json:"go_live_date"`
	NormalDaysOfWeek       []int  `json:"normal_days_of_week"`
	NormalFrequencyPerWeek int    `json:"normal_frequency_per_week"`
	ScopeOfWorkNotes       string `json:"scope_of_work_notes"`
}

// HandleListFacilities returns all facility profiles of a client.
func HandleListFacilities(c *fiber.Ctx) error {
	repos := repository.GetGlobalFactory()
	client, err := repos.GetClientRepository().GetByUUID(c.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "not_found", "Client not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load client")
	}

	facilities, err := repos.GetFacilityProfileRepository().GetByClientID(client.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load facilities")
	}
	return c.JSON(fiber.Map{"client": client.UUID, "facilities": facilities})
}

// HandleCreateFacility onboards a new facility for a client.
func HandleCreateFacility(c *fiber.Ctx) error {
	repos := repository.GetGlobalFactory()
	client, err := repos.GetClientRepository().GetByUUID(c.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "not_found", "Client not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load client")
	}

	var req facilityRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	profile := &models.FacilityProfile{
		ClientID:               client.ID,
		LocationName:           req.LocationName,
		Category:               req.Category,
		RateType:               req.RateType,
		TaxBehavior:            req.TaxBehavior,
		Status:                 req.Status,
		NormalDaysOfWeek:       models.FormatWeekdaySet(req.NormalDaysOfWeek),
		NormalFrequencyPerWeek: req.NormalFrequencyPerWeek,
		ScopeOfWorkNotes:       req.ScopeOfWorkNotes,
	}
	if profile.RateType == "" {
		profile.RateType = models.RateTypeFlatMonthly
	}
	if profile.TaxBehavior == "" {
		profile.TaxBehavior = models.TaxBehaviorInheritClient
	}
	if profile.Status == "" {
		profile.Status = models.FacilityStatusPendingApproval
	}
	if req.DefaultMonthlyRate != "" {
		rate, err := money.Parse(req.DefaultMonthlyRate)
		if err != nil || rate < 0 {
			return errorResponse(c, fiber.StatusUnprocessableEntity, "validation_failed", "invalid default_monthly_rate")
		}
		profile.DefaultMonthlyRateCents = int64(rate)
	}
	if req.GoLiveDate != "" {
		d, err := time.Parse("2006-01-02", req.GoLiveDate)
		if err != nil {
			return errorResponse(c, fiber.StatusUnprocessableEntity, "validation_failed", "invalid go_live_date")
		}
		profile.GoLiveDate = &d
	}

	if err := profile.Validate(); err != nil {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}
	if err := repos.GetFacilityProfileRepository().Create(profile); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create facility")
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// HandleUpdateFacility applies an admin edit to a facility profile.
func HandleUpdateFacility(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetFacilityProfileRepository()
	profile, err := repo.GetByUUID(c.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "not_found", "Facility not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load facility")
	}

	var req facilityRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	if req.LocationName != "" {
		profile.LocationName = req.LocationName
	}
	if req.Category != "" {
		profile.Category = req.Category
	}
	if req.RateType != "" {
		profile.RateType = req.RateType
	}
	if req.TaxBehavior != "" {
		profile.TaxBehavior = req.TaxBehavior
	}
	if req.Status != "" {
		profile.Status = req.Status
	}
	if len(req.NormalDaysOfWeek) > 0 {
		profile.NormalDaysOfWeek = models.FormatWeekdaySet(req.NormalDaysOfWeek)
	}
	if req.NormalFrequencyPerWeek > 0 {
		profile.NormalFrequencyPerWeek = req.NormalFrequencyPerWeek
	}
	if req.ScopeOfWorkNotes != "" {
		profile.ScopeOfWorkNotes = req.ScopeOfWorkNotes
	}
	if req.DefaultMonthlyRate != "" {
		rate, err := money.Parse(req.DefaultMonthlyRate)
		if err != nil || rate < 0 {
			return errorResponse(c, fiber.StatusUnprocessableEntity, "validation_failed", "invalid default_monthly_rate")
		}
		profile.DefaultMonthlyRateCents = int64(rate)
	}

	if err := profile.Validate(); err != nil {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}
	if err := repo.Update(profile); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update facility")
	}
	return c.JSON(profile)
}

// HandleSetFacilityStatus is the permanent activate/pause toggle. Unlike a
// monthly override it changes the stored profile and therefore every month
// that has no override of its own.
func HandleSetFacilityStatus(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	profile, err := svc.SetFacilityStatus(c.Context(), c.Params("uuid"), req.Status)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "not_found", "Facility not found")
		}
		return errorResponse(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}
	return c.JSON(profile)
}
