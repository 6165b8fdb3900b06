package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/matchstats/internal/server/svr"
	"exusiai.dev/matchstats/internal/service"
	"exusiai.dev/matchstats/internal/util/rekuest"
)

type Region struct {
	fx.In

	DirectoryService *service.Directory
}

func RegisterRegion(v1 *svr.V1, c Region) {
	v1.Get("/regions/:regionId/teams", c.GetTeams)
}

// GetTeams lists the active teams of a region by name.
func (c *Region) GetTeams(ctx *fiber.Ctx) error {
	regionID, err := rekuest.ValidID(ctx, "regionId")
	if err != nil {
		return err
	}

	teams, err := c.DirectoryService.GetRegionTeams(ctx.UserContext(), regionID)
	if err != nil {
		return err
	}

	return ctx.JSON(teams)
}
