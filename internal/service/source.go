package service

import (
	"context"

	"exusiai.dev/matchstats/internal/model"
)

// MatchSource fetches the bounded, most-recent-first match list a filter selects.
type MatchSource interface {
	FindMatches(ctx context.Context, f *model.MatchFilter) ([]*model.MatchRecord, error)
}

type TeamDirectory interface {
	GetTeams(ctx context.Context) ([]*model.Team, error)
	GetTeamByID(ctx context.Context, id int) (*model.Team, error)
	GetTeamsByRegion(ctx context.Context, regionID int) ([]*model.Team, error)
}

type PlayerDirectory interface {
	GetPlayerByID(ctx context.Context, id int) (*model.Player, error)
	// GetParticipations lists a player's participations oldest first, optionally
	// restricted to one champion.
	GetParticipations(ctx context.Context, playerID, championID int) ([]*model.MatchParticipation, error)
}
