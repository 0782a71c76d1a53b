package handlers

import (
	"github.com/dineatlas/directory-backend/internal/apperr"
	"github.com/dineatlas/directory-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RestaurantHandler struct {
	service *services.RestaurantService
}

func NewRestaurantHandler(service *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

// Create handles POST /api/restaurants. The body is parsed as a plain
// map so the field table is the single place that knows the payload
// shape.
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return apperr.Validation("invalid request body")
	}

	resp, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// List handles GET /api/restaurants?sortBy=&order=
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	resp, err := h.service.List(c.Context(), c.Query("sortBy"), c.Query("order"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetByKey handles GET /api/restaurants/:key
func (h *RestaurantHandler) GetByKey(c *fiber.Ctx) error {
	doc, err := h.service.GetByKey(c.Context(), c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(doc)
}
