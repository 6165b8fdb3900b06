package v1

import (
	"time"

	"go.uber.org/fx"
)

// reportMaxAge is how long clients may reuse a report response. Kept short as ingested
// matches change reports before their server side TTL runs out.
const reportMaxAge = time.Minute

func Module() fx.Option {
	return fx.Module("controller.v1", fx.Invoke(
		RegisterTeam,
		RegisterPlayer,
		RegisterRegion,
	))
}
