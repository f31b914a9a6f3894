package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/pkg/errors"
)

func newErrorHandlerApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler(zap.NewNop()),
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "boom")
	})
	return app
}

func TestCustomErrorHandler_RoutingNotFoundCode(t *testing.T) {
	app := newErrorHandlerApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/no/such/route", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestCustomErrorHandler_MethodNotAllowedCode(t *testing.T) {
	app := newErrorHandlerApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "METHOD_NOT_ALLOWED", body["code"])
}

func TestCustomErrorHandler_ServerErrorCode(t *testing.T) {
	app := newErrorHandlerApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, errors.ErrInternalServer.Code, body["code"])
}
