package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salon-pay/salon_pay/internal/checkout"
)

// RegisterCheckoutRoutes wires card validation and pricing endpoints.
func RegisterCheckoutRoutes(r fiber.Router, h *checkout.Handler, validateLimiter fiber.Handler) {
	r.Post("/cards/validate", validateLimiter, h.ValidateCard)
	r.Get("/quote", h.Quote)
}
