package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brightops/BrightOps/app/models"
	"github.com/brightops/BrightOps/app/repository"
)

type clientRequest struct {
	Name               string `json:"name"`
	ContactEmail       string `json:"contact_email"`
	TaxRateBasisPoints int64  `json:"tax_rate_basis_points"`
	DefaultTaxMode     string `json:"default_tax_mode"`
}

// HandleListClients returns all clients, paginated.
func HandleListClients(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	repo := repository.GetGlobalFactory().GetClientRepository()
	clients, err := repo.List(offset, limit)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load clients")
	}
	total, err := repo.Count()
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to count clients")
	}

	return c.JSON(fiber.Map{"clients": clients, "total": total, "offset": offset, "limit": limit})
}

// HandleGetClient returns one client by UUID.
func HandleGetClient(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetClientRepository()
	client, err := repo.GetByUUID(c.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "not_found", "Client not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load client")
	}
	return c.JSON(client)
}

// HandleCreateClient creates a new client relationship.
func HandleCreateClient(c *fiber.Ctx) error {
	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	client := &models.Client{
		Name:               req.Name,
		ContactEmail:       req.ContactEmail,
		TaxRateBasisPoints: req.TaxRateBasisPoints,
		DefaultTaxMode:     req.DefaultTaxMode,
		Active:             true,
	}
	if client.DefaultTaxMode == "" {
		client.DefaultTaxMode = models.TaxModePreTax
	}
	if err := client.Validate(); err != nil {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	repo := repository.GetGlobalFactory().GetClientRepository()
	if err := repo.Create(client); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create client")
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// HandleUpdateClient updates a client's billing settings.
func HandleUpdateClient(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetClientRepository()
	client, err := repo.GetByUUID(c.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "not_found", "Client not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load client")
	}

	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if req.Name != "" {
		client.Name = req.Name
	}
	if req.ContactEmail != "" {
		client.ContactEmail = req.ContactEmail
	}
	if req.DefaultTaxMode != "" {
		client.DefaultTaxMode = req.DefaultTaxMode
	}
	if req.TaxRateBasisPoints > 0 {
		client.TaxRateBasisPoints = req.TaxRateBasisPoints
	}
	if err := client.Validate(); err != nil {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}
	if err := repo.Update(client); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update client")
	}
	return c.JSON(client)
}
