package report

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"exusiai.dev/matchstats/internal/app/appconfig"
	"exusiai.dev/matchstats/internal/app/appcontext"
	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/repo"
	"exusiai.dev/matchstats/internal/service"
)

// reports are computed once per invocation, the TTL only matters to the in-process caches
const cliReportTTL = time.Minute

type services struct {
	team   *service.TeamStats
	player *service.PlayerStats
	dir    *service.Directory
}

func load(c *cli.Context) (*services, error) {
	snap, err := repo.OpenSnapshot(c.Path("snapshot"))
	if err != nil {
		return nil, err
	}
	conf := &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{ReportCacheTTL: cliReportTTL},
		AppContext: appcontext.Declare(appcontext.EnvCLI),
	}
	dir := service.NewDirectory(snap, snap)
	return &services{
		team:   service.NewTeamStats(conf, snap, dir),
		player: service.NewPlayerStats(conf, snap, snap),
		dir:    dir,
	}, nil
}

func sideFlag(c *cli.Context) (model.Side, error) {
	switch c.String("side") {
	case "":
		return model.SideUnspecified, nil
	case "red":
		return model.SideRed, nil
	case "blue":
		return model.SideBlue, nil
	default:
		return model.SideUnspecified, errors.Errorf("unknown side %q, expected red or blue", c.String("side"))
	}
}

var commonFlags = []cli.Flag{
	&cli.PathFlag{
		Name:     "snapshot",
		Aliases:  []string{"s"},
		Usage:    "match snapshot `FILE` to report on",
		Required: true,
		EnvVars:  []string{"MATCHSTATS_SNAPSHOT"},
	},
	&cli.IntFlag{
		Name:     "id",
		Usage:    "team or player id",
		Required: true,
	},
	&cli.StringFlag{
		Name:  "side",
		Usage: "only count matches played on `SIDE` (red or blue)",
	},
	&cli.IntFlag{
		Name:  "versus",
		Usage: "only count matches against this team or player",
	},
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "print reports computed from a match snapshot",
		Subcommands: []*cli.Command{
			{
				Name:  "team",
				Usage: "print the overview, champions and recent matches of a team",
				Flags: append(commonFlags,
					&cli.IntFlag{
						Name:  "page-size",
						Usage: "number of matches listed",
						Value: 10,
					},
				),
				Action: func(c *cli.Context) error {
					s, err := load(c)
					if err != nil {
						return err
					}
					side, err := sideFlag(c)
					if err != nil {
						return err
					}
					base := model.TeamQueryBase{TeamSide: side, VersusTeamID: c.Int("versus")}
					return teamReport(c.Context, s, c.Int("id"), base, c.Int("page-size"))
				},
			},
			{
				Name:  "player",
				Usage: "print the averaged stats and champion pool of a player",
				Flags: commonFlags,
				Action: func(c *cli.Context) error {
					s, err := load(c)
					if err != nil {
						return err
					}
					side, err := sideFlag(c)
					if err != nil {
						return err
					}
					q := model.PlayerStatsQuery{TeamSide: side, VersusPlayerID: c.Int("versus")}
					return playerReport(c.Context, s, c.Int("id"), q)
				},
			},
		},
	}
}

func teamReport(ctx context.Context, s *services, teamID int, base model.TeamQueryBase, pageSize int) error {
	team, err := s.dir.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	overall, err := s.team.Overall(ctx, teamID, &model.TeamStatsQuery{TeamQueryBase: base})
	if err != nil {
		return errors.Wrap(err, "team overall")
	}
	champions, err := s.team.Champions(ctx, teamID, &model.TeamChampionsQuery{TeamQueryBase: base})
	if err != nil {
		return errors.Wrap(err, "team champions")
	}
	history, err := s.team.History(ctx, teamID, &model.TeamMatchHistoryQuery{TeamQueryBase: base, PageSize: pageSize})
	if err != nil {
		return errors.Wrap(err, "team history")
	}

	w := os.Stdout
	printHeading(w, team.Name)
	if err := printTeamOverall(w, &overall.PrimaryOverallStats); err != nil {
		return err
	}
	if err := printTeamChampions(w, champions); err != nil {
		return err
	}
	return printTeamHistory(w, history)
}

func playerReport(ctx context.Context, s *services, playerID int, q model.PlayerStatsQuery) error {
	player, err := s.dir.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	stats, err := s.player.Stats(ctx, playerID, &q)
	if err != nil {
		return errors.Wrap(err, "player stats")
	}
	champions, err := s.player.Champions(ctx, playerID, &q)
	if err != nil {
		return errors.Wrap(err, "player champions")
	}

	w := os.Stdout
	printHeading(w, player.Name)
	if err := printPlayerStats(w, stats); err != nil {
		return err
	}
	return printPlayerChampions(w, champions)
}
