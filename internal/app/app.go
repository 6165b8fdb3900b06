package app

import (
	"time"

	"go.uber.org/fx"

	"exusiai.dev/matchstats/internal/app/appconfig"
	"exusiai.dev/matchstats/internal/app/appcontext"
	"exusiai.dev/matchstats/internal/controller"
	"exusiai.dev/matchstats/internal/infra"
	"exusiai.dev/matchstats/internal/model/cache"
	"exusiai.dev/matchstats/internal/pkg/logger"
	"exusiai.dev/matchstats/internal/repo"
	"exusiai.dev/matchstats/internal/server"
	"exusiai.dev/matchstats/internal/service"
	"exusiai.dev/matchstats/internal/workers/ingestwkr"
	"exusiai.dev/matchstats/internal/workers/warmwkr"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(),
		Sources(),

		// Services
		service.Module(),

		// Global Singleton Inits: Keep those before controllers to ensure they are initialized
		// before controllers are registered as controllers are also fx#Invoke functions which
		// are called in the order of their registration.
		fx.Invoke(infra.SentryInit),
		fx.Invoke(cache.Initialize),

		// Controllers
		controller.Module(),

		// Workers
		fx.Invoke(warmwkr.Start),
		fx.Invoke(ingestwkr.Start),

		// fx Extra Options
		fx.StartTimeout(1 * time.Minute),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

// Sources exposes the Postgres repositories as the lookups services depend on.
func Sources() fx.Option {
	return fx.Provide(
		func(r *repo.Match) service.MatchSource { return r },
		func(r *repo.Team) service.TeamDirectory { return r },
		func(r *repo.Player) service.PlayerDirectory { return r },
	)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
