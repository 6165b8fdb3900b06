package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/pkg/cachectrl"
	"exusiai.dev/matchstats/internal/server/svr"
	"exusiai.dev/matchstats/internal/service"
	"exusiai.dev/matchstats/internal/util/rekuest"
)

type Team struct {
	fx.In

	TeamStatsService *service.TeamStats
	DirectoryService *service.Directory
}

func RegisterTeam(v1 *svr.V1, c Team) {
	v1.Get("/teams/:teamId", c.GetTeam)
	v1.Get("/teams/:teamId/stats", c.GetOverallStats)
	v1.Get("/teams/:teamId/wards", c.GetWards)
	v1.Get("/teams/:teamId/champions", c.GetChampions)
	v1.Get("/teams/:teamId/history", c.GetMatchHistory)
}

func (c *Team) GetTeam(ctx *fiber.Ctx) error {
	teamID, err := rekuest.ValidID(ctx, "teamId")
	if err != nil {
		return err
	}

	team, err := c.DirectoryService.GetTeam(ctx.UserContext(), teamID)
	if err != nil {
		return err
	}

	return ctx.JSON(team)
}

func (c *Team) GetOverallStats(ctx *fiber.Ctx) error {
	teamID, err := rekuest.ValidID(ctx, "teamId")
	if err != nil {
		return err
	}
	var query model.TeamStatsQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	stats, err := c.TeamStatsService.Overall(ctx.UserContext(), teamID, &query)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, reportMaxAge)
	return ctx.JSON(stats)
}

func (c *Team) GetWards(ctx *fiber.Ctx) error {
	teamID, err := rekuest.ValidID(ctx, "teamId")
	if err != nil {
		return err
	}
	var query model.TeamWardQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	wards, err := c.TeamStatsService.Wards(ctx.UserContext(), teamID, &query)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, reportMaxAge)
	return ctx.JSON(wards)
}

func (c *Team) GetChampions(ctx *fiber.Ctx) error {
	teamID, err := rekuest.ValidID(ctx, "teamId")
	if err != nil {
		return err
	}
	var query model.TeamChampionsQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	champions, err := c.TeamStatsService.Champions(ctx.UserContext(), teamID, &query)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, reportMaxAge)
	return ctx.JSON(champions)
}

func (c *Team) GetMatchHistory(ctx *fiber.Ctx) error {
	teamID, err := rekuest.ValidID(ctx, "teamId")
	if err != nil {
		return err
	}
	var query model.TeamMatchHistoryQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	history, err := c.TeamStatsService.History(ctx.UserContext(), teamID, &query)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, reportMaxAge)
	return ctx.JSON(history)
}
