package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/salon-pay/salon_pay/internal/checkout"
	"github.com/salon-pay/salon_pay/internal/config"
	"github.com/salon-pay/salon_pay/internal/middleware"
	"github.com/salon-pay/salon_pay/internal/preference"
	"github.com/salon-pay/salon_pay/internal/rates"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Rates  *rates.Service
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Outside dev the backing stores are not optional, even though main
	// also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}
	if d.Rates == nil {
		return fmt.Errorf("rates service is required")
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	RegisterHealthRoutes(app, d)

	var prefRepo preference.Repository
	if d.DB != nil {
		prefRepo = preference.NewPostgresRepository(d.DB)
	} else {
		prefRepo = preference.NewMemoryRepository()
	}
	prefSvc := preference.NewService(prefRepo, d.Cfg.BaseCurrency)
	prefHandler := preference.NewHandler(prefSvc)

	checkoutSvc := checkout.NewService(d.Rates, nil)
	checkoutHandler := checkout.NewHandler(checkoutSvc)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	validateLimiter := middleware.ValidateRateLimit(d.Cache, d.Cfg.ValidateRateLimit)
	RegisterCheckoutRoutes(api, checkoutHandler, validateLimiter)
	RegisterPreferenceRoutes(api, prefHandler)

	return nil
}
