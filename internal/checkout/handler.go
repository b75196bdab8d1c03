package checkout

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the card validation and pricing endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a checkout handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ValidateCard checks a candidate card. A well-formed request always gets a
// 200 with the structured result; only malformed JSON is an HTTP error.
func (h *Handler) ValidateCard(c *fiber.Ctx) error {
	var req ValidateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	return c.Status(http.StatusOK).JSON(h.service.ValidateCard(req))
}

// Quote prices a base-currency amount in the requested display currency.
func (h *Handler) Quote(c *fiber.Ctx) error {
	amountParam := c.Query("amount")
	if amountParam == "" {
		return fiber.NewError(http.StatusBadRequest, "amount query parameter is required")
	}
	amount, err := strconv.ParseFloat(amountParam, 64)
	if err != nil || amount < 0 {
		return fiber.NewError(http.StatusBadRequest, "amount must be a non-negative number")
	}

	code := strings.ToUpper(strings.TrimSpace(c.Query("currency")))
	if code == "" {
		return fiber.NewError(http.StatusBadRequest, "currency query parameter is required")
	}

	return c.JSON(h.service.Quote(amount, code))
}
