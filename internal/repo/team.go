package repo

import (
	"context"

	"github.com/uptrace/bun"

	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/repo/selector"
)

type Team struct {
	sel selector.S[model.Team]
}

func NewTeam(db *bun.DB) *Team {
	return &Team{
		sel: selector.New[model.Team](db),
	}
}

func (r *Team) GetTeams(ctx context.Context) ([]*model.Team, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("t.team_id ASC")
	})
}

func (r *Team) GetTeamByID(ctx context.Context, id int) (*model.Team, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("t.team_id = ?", id)
	})
}

func (r *Team) GetTeamsByRegion(ctx context.Context, regionID int) ([]*model.Team, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("t.region_id = ?", regionID).Where("t.is_active").Order("t.name ASC")
	})
}
