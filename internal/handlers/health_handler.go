package handlers

import (
	"time"

	"github.com/dineatlas/directory-backend/internal/docstore"
	"github.com/dineatlas/directory-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store docstore.Store
}

func NewHealthHandler(store docstore.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Root handles GET /api/
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "Hello World"})
}

// Check handles GET /api/health
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	database := h.store.Backend() + ": ok"
	if err := h.store.Ping(c.Context()); err != nil {
		database = h.store.Backend() + ": unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "healthy",
		Database:  database,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
