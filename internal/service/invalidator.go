package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"exusiai.dev/matchstats/internal/model"
	modelcache "exusiai.dev/matchstats/internal/model/cache"
	"exusiai.dev/matchstats/internal/pkg/apierr"
)

// Invalidator drops cached reports that a newly stored match makes stale.
type Invalidator struct{}

func NewInvalidator() *Invalidator {
	return &Invalidator{}
}

func (s *Invalidator) MatchIngested(ctx context.Context, ev *model.MatchIngestedEvent) error {
	if ev.MatchID == 0 {
		return apierr.ErrInvalidReq.Msg("ingest event without matchId")
	}
	teams := ev.TeamIDs()

	log.Info().
		Str("evt.name", "service.invalidator.ingested").
		Int("matchId", ev.MatchID).
		Ints("teams", teams).
		Msg("invalidating reports for ingested match")

	// a new team may have shown up
	if err := modelcache.TeamNames.Delete(); err != nil {
		return err
	}
	return modelcache.InvalidateTeams(ctx, teams...)
}

// Flush drops every cached report.
func (s *Invalidator) Flush() error {
	for name := range modelcache.SetMap {
		if err := modelcache.Delete(name); err != nil {
			return err
		}
	}
	for name := range modelcache.SingularFlusherMap {
		if err := modelcache.Delete(name); err != nil {
			return err
		}
	}
	return nil
}
