package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/brightops/BrightOps/app/models"
	"github.com/brightops/BrightOps/internal/pkg/billing"
	"github.com/brightops/BrightOps/internal/pkg/database"
	"github.com/brightops/BrightOps/internal/pkg/money"
)

type overrideRequest struct {
	Year               int    `json:"year"`
	Month              int    `json:"month"`
	OverrideStatus     string `json:"override_status"`
	OverrideRate       string `json:"override_rate"`
	OverrideFrequency  *int   `json:"override_frequency"`
	OverrideDaysOfWeek []int  `json:"override_days_of_week"`
	PauseStartDay      *int   `json:"pause_start_day"`
	PauseEndDay        *int   `json:"pause_end_day"`
	OverrideNotes      string `json:"override_notes"`
}

func (req *overrideRequest) toModel() (*models.MonthlyOverride, error) {
	o := &models.MonthlyOverride{
		Year:               req.Year,
		Month:              req.Month,
		OverrideFrequency:  req.OverrideFrequency,
		OverrideDaysOfWeek: models.FormatWeekdaySet(req.OverrideDaysOfWeek),
		PauseStartDay:      req.PauseStartDay,
		PauseEndDay:        req.PauseEndDay,
		OverrideNotes:      req.OverrideNotes,
	}
	if req.OverrideStatus != "" {
		status := req.OverrideStatus
		o.OverrideStatus = &status
	}
	if req.OverrideRate != "" {
		rate, err := money.Parse(req.OverrideRate)
		if err != nil || rate < 0 {
			return nil, errors.New("invalid override_rate")
		}
		cents := int64(rate)
		o.OverrideRateCents = &cents
	}
	return o, nil
}

// HandleCreateOverride stores a new single-month exception for a facility.
func HandleCreateOverride(c *fiber.Ctx) error {
	var req overrideRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	o, err := req.toModel()
	if err != nil {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	created, err := svc.CreateOverride(c.Context(), c.Params("uuid"), o)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrNotFound):
			return errorResponse(c, fiber.StatusNotFound, "not_found", "Facility not found")
		case errors.Is(err, billing.ErrDuplicateOverride):
			return errorResponse(c, fiber.StatusConflict, "duplicate_override", err.Error())
		default:
			return errorResponse(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateOverride replaces the stored override for one month.
func HandleUpdateOverride(c *fiber.Ctx) error {
	year, err := pathInt(c, "year")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "invalid year")
	}
	month, err := pathInt(c, "month")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "invalid month")
	}

	var req overrideRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	req.Year, req.Month = year, month
	o, err := req.toModel()
	if err != nil {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	updated, err := svc.UpdateOverride(c.Context(), c.Params("uuid"), year, month, o)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "not_found", "Override not found")
		}
		return errorResponse(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}
	return c.JSON(updated)
}

// HandleDeleteOverride removes a month's exception, restoring the profile
// configuration for that month.
func HandleDeleteOverride(c *fiber.Ctx) error {
	year, err := pathInt(c, "year")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "invalid year")
	}
	month, err := pathInt(c, "month")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "invalid month")
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	if err := svc.DeleteOverride(c.Context(), c.Params("uuid"), year, month); err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "not_found", "Override not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete override")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
