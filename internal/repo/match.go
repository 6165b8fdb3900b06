package repo

import (
	"context"

	"github.com/uptrace/bun"

	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/repo/selector"
)

type Match struct {
	db  *bun.DB
	sel selector.S[model.MatchRecord]
}

func NewMatch(db *bun.DB) *Match {
	return &Match{
		db:  db,
		sel: selector.New[model.MatchRecord](db),
	}
}

// FindMatches returns the matches satisfying f, most recent first, at most f.Limit of them.
func (r *Match) FindMatches(ctx context.Context, f *model.MatchFilter) ([]*model.MatchRecord, error) {
	if f.MatchIDs != nil && len(f.MatchIDs) == 0 {
		return []*model.MatchRecord{}, nil
	}

	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return findQuery(q, f)
	})
}

// findQuery applies f to q. Matches starting at the same time stay in ingest order,
// the order a snapshot lists them in.
func findQuery(q *bun.SelectQuery, f *model.MatchFilter) *bun.SelectQuery {
	q = applyFilter(q, f)
	q = q.OrderExpr("m.start_time DESC, m.match_id ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	return q
}

func (r *Match) GetMatchByID(ctx context.Context, id int) (*model.MatchRecord, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("m.match_id = ?", id)
	})
}

func applyFilter(q *bun.SelectQuery, f *model.MatchFilter) *bun.SelectQuery {
	if f.Start != nil {
		q = q.Where("m.start_time >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("m.start_time <= ?", *f.End)
	}
	if len(f.Types) > 0 {
		q = q.Where("m.type IN (?)", bun.In(f.Types))
	}
	if f.PatchID != 0 {
		q = q.Where("m.patch_id = ?", f.PatchID)
	}
	if f.RegionID != 0 {
		q = q.Where("m.region_id = ?", f.RegionID)
	}
	if f.MatchIDs != nil {
		q = q.Where("m.match_id IN (?)", bun.In(f.MatchIDs))
	}
	if f.TeamID == 0 {
		return q
	}

	switch f.Side {
	case model.SideRed:
		q = q.Where("m.red_team_id = ?", f.TeamID)
		if f.VersusTeamID != 0 {
			q = q.Where("m.blue_team_id = ?", f.VersusTeamID)
		}
	case model.SideBlue:
		q = q.Where("m.blue_team_id = ?", f.TeamID)
		if f.VersusTeamID != 0 {
			q = q.Where("m.red_team_id = ?", f.VersusTeamID)
		}
	default:
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			if f.VersusTeamID == 0 {
				return q.Where("m.red_team_id = ?", f.TeamID).WhereOr("m.blue_team_id = ?", f.TeamID)
			}
			return q.
				WhereGroup(" OR ", func(q *bun.SelectQuery) *bun.SelectQuery {
					return q.Where("m.red_team_id = ?", f.TeamID).Where("m.blue_team_id = ?", f.VersusTeamID)
				}).
				WhereGroup(" OR ", func(q *bun.SelectQuery) *bun.SelectQuery {
					return q.Where("m.blue_team_id = ?", f.TeamID).Where("m.red_team_id = ?", f.VersusTeamID)
				})
		})
	}
	return q
}
