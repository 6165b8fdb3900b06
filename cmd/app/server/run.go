package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/fx"

	"exusiai.dev/matchstats/internal/app"
	"exusiai.dev/matchstats/internal/app/appconfig"
	"exusiai.dev/matchstats/internal/app/appcontext"
)

func Run() {
	app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(run, runDevOps)).Run()
}

func run(serviceApp *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			log.Info().
				Str("evt.name", "server.listen").
				Str("address", conf.ServiceAddress).
				Msg("serving requests")

			go func() {
				if err := serviceApp.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if conf.DevMode {
				return nil
			}
			return serviceApp.Shutdown()
		},
	})
}

// runDevOps serves the prometheus registry on DevOpsAddress, away from public traffic.
func runDevOps(conf *appconfig.Config, lc fx.Lifecycle) {
	if conf.DevOpsAddress == "" {
		return
	}

	srv := &fasthttp.Server{
		Name:    "matchstats-devops",
		Handler: fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.DevOpsAddress)
			if err != nil {
				return err
			}

			go func() {
				if err := srv.Serve(ln); err != nil {
					log.Error().Err(err).Msg("devops server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown()
		},
	})
}
