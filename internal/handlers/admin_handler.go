package handlers

import (
	"github.com/dineatlas/directory-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	service *services.AdminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Restaurants handles GET /api/admin/restaurants
func (h *AdminHandler) Restaurants(c *fiber.Ctx) error {
	resp, err := h.service.ListRestaurantsWithStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DatabaseStats handles GET /api/admin/database-stats
func (h *AdminHandler) DatabaseStats(c *fiber.Ctx) error {
	resp, err := h.service.DatabaseStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteRestaurant handles DELETE /api/admin/restaurants/:id
func (h *AdminHandler) DeleteRestaurant(c *fiber.Ctx) error {
	resp, err := h.service.DeleteRestaurant(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Collection handles GET /api/admin/collections/:name
func (h *AdminHandler) Collection(c *fiber.Ctx) error {
	resp, err := h.service.DumpCollection(c.Context(), c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
