package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"exusiai.dev/matchstats/cmd/app/report"
	"exusiai.dev/matchstats/cmd/app/server"
	"exusiai.dev/matchstats/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "msbackend",
		Description: "Match statistics backend: team and player reports aggregated from recorded matches. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS for ingest notifications and Redis as report cache.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			report.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
