package service

import (
	"context"

	"github.com/samber/lo"

	"exusiai.dev/matchstats/internal/app/appconfig"
	"exusiai.dev/matchstats/internal/core/history"
	"exusiai.dev/matchstats/internal/core/playeragg"
	"exusiai.dev/matchstats/internal/core/statavg"
	"exusiai.dev/matchstats/internal/core/wardclust"
	"exusiai.dev/matchstats/internal/model"
	modelcache "exusiai.dev/matchstats/internal/model/cache"
	"exusiai.dev/matchstats/internal/pkg/apierr"
)

type PlayerStats struct {
	Config  *appconfig.Config
	Matches MatchSource
	Players PlayerDirectory
}

func NewPlayerStats(conf *appconfig.Config, matches MatchSource, players PlayerDirectory) *PlayerStats {
	return &PlayerStats{
		Config:  conf,
		Matches: matches,
		Players: players,
	}
}

// playerScope is the resolved history of one player report.
type playerScope struct {
	player  *model.Player
	role    model.Role
	matches []*model.MatchRecord
	// sides holds the side the player took in each match, keyed by match id
	sides map[int]model.Side
}

// perspectives sees every match from the side the player took in it.
func (p *playerScope) perspectives() []statavg.Perspective {
	return statavg.ForSide(p.matches, func(m *model.MatchRecord) (model.Side, bool) {
		side, ok := p.sides[m.MatchID]
		return side, ok && side.Valid()
	})
}

func matchIDs(parts []*model.MatchParticipation) []int {
	return lo.Map(parts, func(mp *model.MatchParticipation, _ int) int { return mp.MatchID })
}

// latest returns the most recent participation. parts are oldest first.
func latest(parts []*model.MatchParticipation) (*model.MatchParticipation, bool) {
	if len(parts) == 0 {
		return nil, false
	}
	return parts[len(parts)-1], true
}

// resolve finds the matches a player report covers: the player's participations,
// optionally shared with the compared player, filtered by q. Only a versus player
// ties the report to a team: the player's current one, met by the versus player's.
func (s *PlayerStats) resolve(ctx context.Context, playerID int, q *model.PlayerStatsQuery) (*playerScope, error) {
	if q.VersusPlayerID != 0 && q.VersusPlayerID == playerID {
		return nil, apierr.ErrInvalidReq.Msg("versusPlayerId must differ from the player being reported")
	}
	if q.CompareToPlayerID != 0 && q.CompareToPlayerID == playerID {
		return nil, apierr.ErrInvalidReq.Msg("compareToPlayerId must differ from the player being reported")
	}
	if q.TeamSide != model.SideUnspecified && !q.TeamSide.Valid() {
		return nil, apierr.ErrInvalidReq.Msg("teamSide must be 1 (red) or 2 (blue), got %d", q.TeamSide)
	}

	player, err := s.Players.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	parts, err := s.Players.GetParticipations(ctx, playerID, q.ChampionID)
	if err != nil {
		return nil, err
	}

	scope := &playerScope{player: player}
	last, ok := latest(parts)
	if ok {
		scope.role = last.Role
	}
	if q.TeamSide != model.SideUnspecified {
		parts = lo.Filter(parts, func(mp *model.MatchParticipation, _ int) bool {
			return mp.TeamSide == q.TeamSide
		})
	}
	scope.sides = lo.Associate(parts, func(mp *model.MatchParticipation) (int, model.Side) {
		return mp.MatchID, mp.TeamSide
	})
	ids := matchIDs(parts)

	if q.CompareToPlayerID != 0 {
		other, err := s.Players.GetParticipations(ctx, q.CompareToPlayerID, 0)
		if err != nil {
			return nil, err
		}
		ids = lo.Intersect(ids, matchIDs(other))
	}

	var teamID, versusTeamID int
	if q.VersusPlayerID != 0 {
		versus, err := s.Players.GetParticipations(ctx, q.VersusPlayerID, 0)
		if err != nil {
			return nil, err
		}
		versusLast, versusOK := latest(versus)
		if !ok || !versusOK || !last.TeamID.Valid || !versusLast.TeamID.Valid {
			// teams that cannot be told apart can never be met
			return scope, nil
		}
		teamID = int(last.TeamID.Int64)
		versusTeamID = int(versusLast.TeamID.Int64)
	}

	f, err := history.ForPlayer(teamID, ids, versusTeamID, q)
	if err != nil {
		return nil, err
	}
	scope.matches, err = s.Matches.FindMatches(ctx, f)
	if err != nil {
		return nil, err
	}
	return scope, nil
}

// Stats averages the player's role over the resolved matches. When a versus or
// compared player is given, the secondary report averages the opponents of the same
// matches.
//
// Cache: playerStats#playerId|query:{playerId}:{hash}, ReportCacheTTL
func (s *PlayerStats) Stats(ctx context.Context, playerID int, q *model.PlayerStatsQuery) (*model.PlayerComparableStats, error) {
	return cachedReport(ctx, modelcache.PlayerStats, "player_stats", reportKey(playerID, q), s.Config.ReportCacheTTL,
		func(ctx context.Context) (*model.PlayerComparableStats, error) {
			scope, err := s.resolve(ctx, playerID, q)
			if err != nil {
				return nil, err
			}
			observeMatches("player_stats", len(scope.matches))

			ps := scope.perspectives()
			out := &model.PlayerComparableStats{
				PrimaryPlayerStats: statavg.Average(scope.role, ps),
			}
			if q.CompareToPlayerID != 0 || q.VersusPlayerID != 0 {
				secondary := statavg.Average(scope.role, statavg.Swap(ps))
				out.SecondaryPlayerStats = &secondary
			}
			return out, nil
		})
}

// Cache: playerWards#playerId|query:{playerId}:{hash}, ReportCacheTTL
func (s *PlayerStats) Wards(ctx context.Context, playerID int, q *model.PlayerWardQuery) (*model.WardResponse, error) {
	if err := validateWardWindow(&q.WardOptions); err != nil {
		return nil, err
	}

	return cachedReport(ctx, modelcache.PlayerWards, "player_wards", reportKey(playerID, q), s.Config.ReportCacheTTL,
		func(ctx context.Context) (*model.WardResponse, error) {
			scope, err := s.resolve(ctx, playerID, &q.PlayerStatsQuery)
			if err != nil {
				return nil, err
			}
			observeMatches("player_wards", len(scope.matches))

			resp := wardclust.ForPlayer(scope.player.WardName(), scope.matches, wardclust.Options{WardOptions: q.WardOptions})
			return &resp, nil
		})
}

// Champions reports every (champion, role) the player played within q, regardless of
// the team they played for.
//
// Cache: playerChampions#playerId|query:{playerId}:{hash}, ReportCacheTTL
func (s *PlayerStats) Champions(ctx context.Context, playerID int, q *model.PlayerStatsQuery) ([]model.PlayerChampionStats, error) {
	if q.VersusPlayerID != 0 && q.VersusPlayerID == playerID {
		return nil, apierr.ErrInvalidReq.Msg("versusPlayerId must differ from the player being reported")
	}

	stats, err := cachedReport(ctx, modelcache.PlayerChampions, "player_champions", reportKey(playerID, q), s.Config.ReportCacheTTL,
		func(ctx context.Context) (*[]model.PlayerChampionStats, error) {
			if _, err := s.Players.GetPlayerByID(ctx, playerID); err != nil {
				return nil, err
			}
			parts, err := s.Players.GetParticipations(ctx, playerID, q.ChampionID)
			if err != nil {
				return nil, err
			}
			if q.TeamSide != model.SideUnspecified {
				parts = lo.Filter(parts, func(mp *model.MatchParticipation, _ int) bool {
					return mp.TeamSide == q.TeamSide
				})
			}
			if q.VersusPlayerID != 0 {
				versus, err := s.Players.GetParticipations(ctx, q.VersusPlayerID, 0)
				if err != nil {
					return nil, err
				}
				versusSide := lo.Associate(versus, func(mp *model.MatchParticipation) (int, model.Side) {
					return mp.MatchID, mp.TeamSide
				})
				parts = lo.Filter(parts, func(mp *model.MatchParticipation, _ int) bool {
					side, ok := versusSide[mp.MatchID]
					return ok && side == mp.TeamSide.Opposite()
				})
			}

			matches, err := s.Matches.FindMatches(ctx, history.ForPlayerChampions(matchIDs(parts), q))
			if err != nil {
				return nil, err
			}
			observeMatches("player_champions", len(matches))

			byMatch := lo.KeyBy(parts, func(mp *model.MatchParticipation) int { return mp.MatchID })
			apps := make([]playeragg.Appearance, 0, len(matches))
			for _, m := range matches {
				mp, ok := byMatch[m.MatchID]
				if !ok {
					continue
				}
				apps = append(apps, playeragg.Appearance{Match: m, Side: mp.TeamSide, SummonerID: mp.SummonerID})
			}

			stats := playeragg.ChampionStats(apps)
			return &stats, nil
		})
	if err != nil {
		return nil, err
	}
	return *stats, nil
}
