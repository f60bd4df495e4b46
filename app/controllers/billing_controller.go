package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/brightops/BrightOps/internal/pkg/billing"
	"github.com/brightops/BrightOps/internal/pkg/database"
	"github.com/brightops/BrightOps/internal/pkg/metrics/counter"
	"github.com/brightops/BrightOps/internal/pkg/statistics"
)

// HandleBillingPreview assembles the billing preview of one client-month.
// The preview is recomputed on every request so it always reflects the
// latest stored profiles and overrides.
func HandleBillingPreview(c *fiber.Ctx) error {
	year, month, err := resolveYearMonth(c, time.Now())
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	preview, err := svc.PreviewMonth(c.Context(), c.Params("uuid"), year, month)
	if err != nil {
		return billingError(c, err)
	}
	if err := counter.AddPreview(preview.ClientID); err != nil {
		log.Printf("failed to record preview counter for client %d: %v", preview.ClientID, err)
	}
	return c.JSON(preview)
}

// HandleBillingDelta diffs one client-month against its predecessor.
func HandleBillingDelta(c *fiber.Ctx) error {
	year, month, err := resolveYearMonth(c, time.Now())
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	report, err := svc.MonthDelta(c.Context(), c.Params("uuid"), year, month)
	if err != nil {
		return billingError(c, err)
	}
	if err := counter.AddDelta(report.ClientID); err != nil {
		log.Printf("failed to record delta counter for client %d: %v", report.ClientID, err)
	}
	return c.JSON(report)
}

// HandleWeekSchedule returns the weekday-to-facilities calendar view of a
// resolved client-month.
func HandleWeekSchedule(c *fiber.Ctx) error {
	year, month, err := resolveYearMonth(c, time.Now())
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	schedule, err := svc.WeekSchedule(c.Context(), c.Params("uuid"), year, month)
	if err != nil {
		return billingError(c, err)
	}
	return c.JSON(fiber.Map{"year": year, "month": month, "schedule": schedule})
}

// HandleDashboardStats returns cached dashboard statistics.
func HandleDashboardStats(c *fiber.Ctx) error {
	statistics.UpdateCacheIfNeeded()
	return c.JSON(statistics.GetDashboardData())
}

func billingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, billing.ErrNotFound):
		return errorResponse(c, fiber.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, billing.ErrInvalidPauseRange):
		// Stored override data failed the integrity check; surface it
		// instead of guessing at intent.
		return errorResponse(c, fiber.StatusUnprocessableEntity, "invalid_pause_range", err.Error())
	default:
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", err.Error())
	}
}
