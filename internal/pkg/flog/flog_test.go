package flog_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/matchstats/internal/pkg/flog"
)

func TestRequestLoggerChain(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	app := fiber.New()
	app.Use(flog.NewHandlerMiddleware(logger))
	app.Use(flog.RequestIDHandler("request_id", "X-Request-ID"))
	app.Use(flog.MethodHandler("method"))
	app.Use(flog.URLHandler("url"))
	app.Get("/teams/1", func(c *fiber.Ctx) error {
		_, ok := flog.IDFromFiberCtx(c)
		assert.True(t, ok)
		flog.FromFiberCtx(c).Info().Msg("handled")
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/teams/1", nil))
	require.NoError(t, err)

	id := resp.Header.Get("X-Request-ID")
	assert.NotEmpty(t, id)
	assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
	assert.Contains(t, buf.String(), `"method":"GET"`)
	assert.Contains(t, buf.String(), `"url":"/teams/1"`)
}
