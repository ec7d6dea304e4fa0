package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CountsByRoutePattern(t *testing.T) {
	app := fiber.New()
	app.Use(New())
	app.Put("/rooms/:id/ping", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	before := testutil.ToFloat64(requestsTotal.WithLabelValues("PUT", "/rooms/:id/ping", "200"))
	for _, id := range []string{"1", "2"} {
		_, err := app.Test(httptest.NewRequest("PUT", "/rooms/"+id+"/ping", nil))
		require.NoError(t, err)
	}

	after := testutil.ToFloat64(requestsTotal.WithLabelValues("PUT", "/rooms/:id/ping", "200"))
	assert.Equal(t, before+2, after)
}
