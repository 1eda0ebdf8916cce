package http

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunbird-energy/sunbird/internal/service"
)

func TestReportWindow(t *testing.T) {
	start, end, err := reportWindow("2025-05-01", "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), end)

	start, end, err = reportWindow("", "")
	require.NoError(t, err)
	assert.InDelta(t, 30*24.0, end.Sub(start).Hours(), 1)

	_, _, err = reportWindow("May first", "2025-06-01")
	assert.Error(t, err)

	_, _, err = reportWindow("2025-06-01", "2025-05-01")
	assert.Error(t, err)
}

func TestStubRoutesRespond(t *testing.T) {
	app := fiber.New()
	Register(app, &service.Services{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/devices", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "coming soon")
}
