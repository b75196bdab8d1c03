package checkout

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupHandlerApp(t *testing.T) *fiber.App {
	t.Helper()
	handler := NewHandler(newTestService(t))

	app := fiber.New()
	app.Post("/cards/validate", handler.ValidateCard)
	app.Get("/quote", handler.Quote)
	return app
}

func TestValidateCardEndpointReturnsStructuredResult(t *testing.T) {
	app := setupHandlerApp(t)

	body := `{"card_number":"4242424242424241","expiry":"07/26","cvv":"12","holder_name":"Cher"}`
	req := httptest.NewRequest(fiber.MethodPost, "/cards/validate", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("validation failures must be 200 with a result body, got %d", resp.StatusCode)
	}

	var payload ValidateCardResponse
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Valid {
		t.Fatal("expected invalid card")
	}
	if payload.CardType != "visa" {
		t.Fatalf("card type = %s, want visa", payload.CardType)
	}
	if len(payload.Errors) != 4 {
		t.Fatalf("expected 4 errors, got %v", payload.Errors)
	}
}

func TestValidateCardEndpointRejectsMalformedBody(t *testing.T) {
	app := setupHandlerApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/cards/validate", strings.NewReader("{not json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestQuoteEndpoint(t *testing.T) {
	app := setupHandlerApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/quote?amount=100&currency=usd", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload QuoteResponse
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.CurrencyCode != "USD" {
		t.Fatalf("currency = %s, want USD", payload.CurrencyCode)
	}
	if payload.Formatted != "$27" {
		t.Fatalf("formatted = %q, want $27", payload.Formatted)
	}
}

func TestQuoteEndpointValidatesParams(t *testing.T) {
	app := setupHandlerApp(t)

	for _, path := range []string{
		"/quote",
		"/quote?amount=abc&currency=USD",
		"/quote?amount=-5&currency=USD",
		"/quote?amount=100",
	} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		if err != nil {
			t.Fatalf("app.Test %s: %v", path, err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, resp.StatusCode)
		}
	}
}
