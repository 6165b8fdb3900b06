package httpserver

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/helmet/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"exusiai.dev/matchstats/internal/app/appconfig"
	"exusiai.dev/matchstats/internal/constant"
	"exusiai.dev/matchstats/internal/pkg/bininfo"
	"exusiai.dev/matchstats/internal/pkg/fiberstore"
	"exusiai.dev/matchstats/internal/pkg/middlewares"
	"exusiai.dev/matchstats/internal/pkg/observability"
)

var registerPromOnce sync.Once

const limiterKeyPrefix = "matchstats|limiter"

// Create builds the fiber app. rdb backs the rate limiter and may be nil in DevMode.
func Create(conf *appconfig.Config, tp trace.TracerProvider, rdb *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Match Statistics Backend",
		ServerHeader: fmt.Sprintf("matchstats/%s", bininfo.Version),
		// reports over a long history may take a while on a cold cache
		ReadTimeout:    time.Second * 20,
		WriteTimeout:   time.Second * 30,
		ReadBufferSize: 8192,
		// allow possibility for graceful shutdown, otherwise app#Shutdown() will block forever
		IdleTimeout:             conf.HTTPServerShutdownTimeout,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          conf.TrustedProxies,
		ErrorHandler:            ErrorHandler,
		Immutable:               true,
		JSONEncoder:             json.Marshal,
		JSONDecoder:             json.Unmarshal,
	})

	app.Use(favicon.New())
	app.Use(fibersentry.New(fibersentry.Config{
		Repanic: true,
		Timeout: time.Second * 5,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET, OPTIONS",
		AllowHeaders:  "Content-Type, Accept-Language, X-Requested-With, sentry-trace, traceparent",
		ExposeHeaders: "Content-Type, " + constant.RequestIDHeader,
	}))
	middlewares.Logger(app)
	// the logger middleware injects RequestID into the context,
	// and we need an extra middleware to extract it and repopulate it into ctx.Locals
	app.Use(middlewares.RequestID())

	app.Use(helmet.New(helmet.Config{
		HSTSMaxAge:         31356000,
		HSTSPreloadEnabled: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		PermissionPolicy:   "interest-cohort=()",
	}))
	app.Use(middlewares.InjectI18n())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Msgf("panic: %v\n%s\n", e, buf)
		},
	}))
	registerPromOnce.Do(func() {
		fiberprom := fiberprometheus.New(observability.ServiceName)
		fiberprom.RegisterAt(app, "/metrics")
		app.Use(fiberprom.Middleware)
	})

	if conf.TracingEnabled {
		app.Use(otelfiber.Middleware(
			otelfiber.WithTracerProvider(tp),
			otelfiber.WithServerName(observability.ServiceName),
		))
	}

	if conf.DevMode {
		log.Info().Msg("Running in DEV mode")
		app.Use(pprof.New())
	} else {
		app.Use(middlewares.EnrichSentry())
		if conf.RateLimitMax > 0 && rdb != nil {
			log.Info().
				Int("max", conf.RateLimitMax).
				Dur("window", conf.RateLimitWindow).
				Msg("enabling rate limiter for report requests")
			app.Use(limiter.New(limiter.Config{
				Next: func(c *fiber.Ctx) bool {
					return !strings.HasPrefix(c.Path(), "/api/v1/")
				},
				LimitReached: func(c *fiber.Ctx) error {
					return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
						"code":    "TOO_MANY_REQUESTS",
						"message": "Your client is sending requests too frequently. Reports are cached and refreshed when new matches are ingested, so they should not be requested too frequently.",
					})
				},
				Max:        conf.RateLimitMax,
				Expiration: conf.RateLimitWindow,
				Storage:    fiberstore.NewRedis(rdb, limiterKeyPrefix),
			}))
		}
	}

	return app
}
