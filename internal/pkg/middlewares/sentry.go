package middlewares

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"exusiai.dev/matchstats/internal/constant"
)

// EnrichSentry tags the request hub with the request id and opens a transaction
// continuing any incoming sentry-trace. Probes sending X-Slim are not traced.
func EnrichSentry() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if c.Get(constant.SlimHeaderKey) != "" {
			return c.Next()
		}

		if hub := fibersentry.GetHubFromContext(c); hub != nil {
			if id, ok := c.Locals(constant.ContextKeyRequestID).(string); ok {
				hub.Scope().SetTag("request_id", id)
			}
		}

		var r http.Request
		if err := fasthttpadaptor.ConvertRequest(c.Context(), &r, true); err != nil {
			return err
		}
		span := sentry.StartSpan(c.UserContext(), "http.server",
			sentry.ContinueFromRequest(&r),
			sentry.TransactionName(c.Method()+" "+c.Path()),
		)
		defer span.Finish()

		c.SetUserContext(span.Context())
		return c.Next()
	}
}
