package repo

import (
	"context"

	"github.com/uptrace/bun"

	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/repo/selector"
)

type Player struct {
	sel   selector.S[model.Player]
	mpsel selector.S[model.MatchParticipation]
}

func NewPlayer(db *bun.DB) *Player {
	return &Player{
		sel:   selector.New[model.Player](db),
		mpsel: selector.New[model.MatchParticipation](db),
	}
}

func (r *Player) GetPlayerByID(ctx context.Context, id int) (*model.Player, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("p.player_id = ?", id)
	})
}

// GetParticipations lists the matches playerID took part in, oldest first. A non-zero
// championID keeps only the matches played on that champion.
func (r *Player) GetParticipations(ctx context.Context, playerID, championID int) ([]*model.MatchParticipation, error) {
	return r.mpsel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Join("JOIN matches AS m ON m.match_id = mp.match_id").
			Where("mp.player_id = ?", playerID)
		if championID != 0 {
			q = q.Where("mp.champion_id = ?", championID)
		}
		return q.Order("m.start_time ASC", "mp.match_id ASC")
	})
}
