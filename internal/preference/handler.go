package preference

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes HTTP endpoints for the display-currency preference.
type Handler struct {
	service *Service
}

// NewHandler constructs a preference handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SetRequest carries the currency code chosen by the client.
type SetRequest struct {
	CurrencyCode string `json:"currency_code"`
}

// Response describes the resolved currency for a client.
type Response struct {
	CurrencyCode string `json:"currency_code"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// Get resolves the stored (or default) display currency for a client.
func (h *Handler) Get(c *fiber.Ctx) error {
	cur, err := h.service.Get(c.UserContext(), c.Params("clientId"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(Response{CurrencyCode: cur.Code, Symbol: cur.Symbol, Name: cur.Name})
}

// Set stores a new display currency for a client.
func (h *Handler) Set(c *fiber.Ctx) error {
	var req SetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	cur, err := h.service.Set(c.UserContext(), c.Params("clientId"), req.CurrencyCode)
	if err != nil {
		if errors.Is(err, ErrUnknownCurrency) {
			return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(Response{CurrencyCode: cur.Code, Symbol: cur.Symbol, Name: cur.Name})
}
