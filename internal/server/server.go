package server

import (
	"errors"
	"log/slog"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/dineatlas/directory-backend/internal/apperr"
	"github.com/dineatlas/directory-backend/internal/config"
	"github.com/dineatlas/directory-backend/internal/docstore"
	"github.com/dineatlas/directory-backend/internal/dto"
	"github.com/dineatlas/directory-backend/internal/handlers"
	"github.com/dineatlas/directory-backend/internal/identity"
	"github.com/dineatlas/directory-backend/internal/middleware"
	"github.com/dineatlas/directory-backend/internal/routes"
	"github.com/dineatlas/directory-backend/internal/services"
)

// New assembles the Fiber application with all services and handlers
// wired against the given store and verifier. Keeping assembly apart
// from main lets tests drive the full HTTP surface in-process.
func New(cfg *config.Config, store docstore.Store, verifier identity.Verifier) *fiber.App {
	statusService := services.NewStatusService(store)
	profileService := services.NewProfileService(store)
	restaurantService := services.NewRestaurantService(store, cfg.OperatorName)
	adminService := services.NewAdminService(store)

	app := fiber.New(fiber.Config{
		AppName:      "directory-backend",
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{Repanic: true}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: `{"time":"${time}","status":${status},"latency":"${latency}","method":"${method}","path":"${path}","request_id":"${locals:requestid}"}` + "\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(securityHeaders)

	routes.Setup(app, routes.Handlers{
		Health:     handlers.NewHealthHandler(store),
		Status:     handlers.NewStatusHandler(statusService),
		Profile:    handlers.NewProfileHandler(profileService),
		Restaurant: handlers.NewRestaurantHandler(restaurantService),
		Admin:      handlers.NewAdminHandler(adminService),
	}, verifier)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	if e := apperr.As(err); e != nil {
		status = e.Status()
		message = e.Error()
	} else {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		}
	}

	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed",
			"error", err.Error(),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"request_id", c.Locals("requestid"),
		)
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func securityHeaders(c *fiber.Ctx) error {
	c.Set("X-Content-Type-Options", "nosniff")
	c.Set("X-Frame-Options", "DENY")
	c.Set("X-XSS-Protection", "1; mode=block")
	return c.Next()
}
