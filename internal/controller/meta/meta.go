package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	modelcache "exusiai.dev/matchstats/internal/model/cache"
	"exusiai.dev/matchstats/internal/pkg/bininfo"
	"exusiai.dev/matchstats/internal/pkg/cachectrl"
	"exusiai.dev/matchstats/internal/pkg/apierr"
	"exusiai.dev/matchstats/internal/server/svr"
	"exusiai.dev/matchstats/internal/service"
)

type Meta struct {
	fx.In

	HealthService      *service.Health
	InvalidatorService *service.Invalidator
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)

	meta.Post("/purge", c.PurgeAll)
	meta.Post("/purge/:name", c.Purge)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

func (c *Meta) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		return apierr.ErrUnavailable.Msg("%s", err)
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(fiber.Map{
		"status": "ok",
	})
}

func (c *Meta) PurgeAll(ctx *fiber.Ctx) error {
	if err := c.InvalidatorService.Flush(); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// Purge flushes one cache by its registered name, e.g. "teamNames".
func (c *Meta) Purge(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	_, set := modelcache.SetMap[name]
	_, singular := modelcache.SingularFlusherMap[name]
	if !set && !singular {
		return apierr.ErrNotFound.Msg("no cache named %q", name)
	}
	if err := modelcache.Delete(name); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
