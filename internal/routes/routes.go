package routes

import (
	"time"

	"github.com/dineatlas/directory-backend/internal/handlers"
	"github.com/dineatlas/directory-backend/internal/identity"
	"github.com/dineatlas/directory-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Status     *handlers.StatusHandler
	Profile    *handlers.ProfileHandler
	Restaurant *handlers.RestaurantHandler
	Admin      *handlers.AdminHandler
}

func Setup(app *fiber.App, h Handlers, verifier identity.Verifier) {
	api := app.Group("/api")

	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api.Get("/", h.Health.Root)
	api.Get("/health", h.Health.Check)

	api.Post("/status", h.Status.Create)
	api.Get("/status", h.Status.List)

	requireAuth := middleware.RequireAuth(verifier)

	profile := api.Group("/user/profile", requireAuth)
	profile.Post("/", h.Profile.Create)
	profile.Get("/", h.Profile.Get)
	profile.Put("/", h.Profile.Update)
	profile.Delete("/", h.Profile.Delete)

	api.Get("/protected", requireAuth, h.Profile.Protected)

	api.Post("/restaurants", h.Restaurant.Create)
	api.Get("/restaurants", h.Restaurant.List)
	api.Get("/restaurants/:key", h.Restaurant.GetByKey)

	// Admin routes are intentionally open; access control is handled
	// at the network layer for the internal deployment.
	admin := api.Group("/admin")
	admin.Get("/restaurants", h.Admin.Restaurants)
	admin.Get("/database-stats", h.Admin.DatabaseStats)
	admin.Get("/collections/:name", h.Admin.Collection)
	admin.Delete("/restaurants/:id", h.Admin.DeleteRestaurant)
}
