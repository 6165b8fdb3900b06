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

type Player struct {
	fx.In

	PlayerStatsService *service.PlayerStats
	DirectoryService   *service.Directory
}

func RegisterPlayer(v1 *svr.V1, c Player) {
	v1.Get("/players/:playerId", c.GetPlayer)
	v1.Get("/players/:playerId/stats", c.GetStats)
	v1.Get("/players/:playerId/wards", c.GetWards)
	v1.Get("/players/:playerId/champions", c.GetChampions)
}

func (c *Player) GetPlayer(ctx *fiber.Ctx) error {
	playerID, err := rekuest.ValidID(ctx, "playerId")
	if err != nil {
		return err
	}

	player, err := c.DirectoryService.GetPlayer(ctx.UserContext(), playerID)
	if err != nil {
		return err
	}

	return ctx.JSON(player)
}

func (c *Player) GetStats(ctx *fiber.Ctx) error {
	playerID, err := rekuest.ValidID(ctx, "playerId")
	if err != nil {
		return err
	}
	var query model.PlayerStatsQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	stats, err := c.PlayerStatsService.Stats(ctx.UserContext(), playerID, &query)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, reportMaxAge)
	return ctx.JSON(stats)
}

func (c *Player) GetWards(ctx *fiber.Ctx) error {
	playerID, err := rekuest.ValidID(ctx, "playerId")
	if err != nil {
		return err
	}
	var query model.PlayerWardQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	wards, err := c.PlayerStatsService.Wards(ctx.UserContext(), playerID, &query)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, reportMaxAge)
	return ctx.JSON(wards)
}

func (c *Player) GetChampions(ctx *fiber.Ctx) error {
	playerID, err := rekuest.ValidID(ctx, "playerId")
	if err != nil {
		return err
	}
	var query model.PlayerStatsQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	champions, err := c.PlayerStatsService.Champions(ctx.UserContext(), playerID, &query)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, reportMaxAge)
	return ctx.JSON(champions)
}
