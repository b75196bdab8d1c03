package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salon-pay/salon_pay/internal/preference"
)

// RegisterPreferenceRoutes wires the per-client display currency endpoints.
func RegisterPreferenceRoutes(r fiber.Router, h *preference.Handler) {
	r.Get("/clients/:clientId/currency", h.Get)
	r.Put("/clients/:clientId/currency", h.Set)
}
