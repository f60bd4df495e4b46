package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func errorResponse(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": code, "message": message})
}

// resolveYearMonth reads year/month query params, falling back to the
// supplied current date. The engine itself never touches the clock; the
// caller's "now" enters exactly here.
func resolveYearMonth(c *fiber.Ctx, now time.Time) (int, int, error) {
	year := now.Year()
	month := int(now.Month())

	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid year")
		}
		year = parsed
	}
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid month")
		}
		month = parsed
	}
	return year, month, nil
}

func pathInt(c *fiber.Ctx, name string) (int, error) {
	v, err := strconv.Atoi(c.Params(name))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}
