package handlers

import (
	"fmt"

	"github.com/dineatlas/directory-backend/internal/apperr"
	"github.com/dineatlas/directory-backend/internal/dto"
	"github.com/dineatlas/directory-backend/internal/middleware"
	"github.com/dineatlas/directory-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	service *services.ProfileService
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Create handles POST /api/user/profile (replace-or-insert).
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var req dto.UserProfileCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	profile, err := h.service.Upsert(c.Context(), middleware.IdentityFrom(c), req)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// Get handles GET /api/user/profile, auto-provisioning on first read.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.service.GetOrProvision(c.Context(), middleware.IdentityFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// Update handles PUT /api/user/profile (partial merge).
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req dto.UserProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	profile, err := h.service.Update(c.Context(), middleware.IdentityFrom(c), req)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// Delete handles DELETE /api/user/profile.
func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), middleware.IdentityFrom(c)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Profile deleted successfully"})
}

// Protected handles GET /api/protected, an identity echo used to
// smoke-test the auth gate.
func (h *ProfileHandler) Protected(c *fiber.Ctx) error {
	ident := middleware.IdentityFrom(c)
	name := ident.Name
	if name == "" {
		name = ident.Email
	}
	return c.JSON(dto.ProtectedResponse{
		Message: fmt.Sprintf("Hello %s!", name),
		UID:     ident.UID,
		Email:   ident.Email,
	})
}
