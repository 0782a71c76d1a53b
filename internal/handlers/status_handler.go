package handlers

import (
	"github.com/dineatlas/directory-backend/internal/apperr"
	"github.com/dineatlas/directory-backend/internal/dto"
	"github.com/dineatlas/directory-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type StatusHandler struct {
	service *services.StatusService
}

func NewStatusHandler(service *services.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

// Create handles POST /api/status
func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var req dto.StatusCheckCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	check, err := h.service.Create(c.Context(), req.ClientName)
	if err != nil {
		return err
	}
	return c.JSON(check)
}

// List handles GET /api/status. The response is a bare array.
func (h *StatusHandler) List(c *fiber.Ctx) error {
	checks, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(checks)
}
