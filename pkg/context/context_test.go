package context

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestGetRequestID(t *testing.T) {
	t.Parallel()

	if got := GetRequestID(context.Background()); got != "unknown" {
		t.Errorf("GetRequestID() = %q, want unknown", got)
	}
	if got := GetRequestID(WithRequestID(context.Background(), "01J")); got != "01J" {
		t.Errorf("GetRequestID() = %q", got)
	}
}

func TestFromFiberCtx(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	var requestID string
	app.Get("/", func(c *fiber.Ctx) error {
		requestID = GetRequestID(FromFiberCtx(c))
		return nil
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderRequestID, "from-header")
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}
	if requestID != "from-header" {
		t.Errorf("request id = %q, want from-header", requestID)
	}
}
