package pickban

import (
	"sort"

	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/util"
)

type matchup struct {
	championID int
	matches    int
	wins       int
}

func (m *matchup) winRate() float64 {
	return util.Percent(float64(m.wins), float64(m.matches))
}

type championEntry struct {
	championID    int
	role          model.Role
	wins          int
	matches       int
	bannedBy      int
	bannedAgainst int
	matchups      []*matchup
}

func (e *championEntry) record(won bool, against int, hasOpponent bool) {
	e.matches++
	if won {
		e.wins++
	}
	if !hasOpponent {
		return
	}
	for _, mu := range e.matchups {
		if mu.championID == against {
			mu.matches++
			if won {
				mu.wins++
			}
			return
		}
	}
	mu := &matchup{championID: against, matches: 1}
	if won {
		mu.wins = 1
	}
	e.matchups = append(e.matchups, mu)
}

type championKey struct {
	championID int
	role       model.Role
}

func accepts(q *model.TeamChampionsQuery, p *model.PlayerMatchInfo) bool {
	if q == nil {
		return true
	}
	if q.Role != model.RoleUnknown && q.Role != p.Role {
		return false
	}
	if q.ChampionID != 0 && q.ChampionID != p.ChampionID {
		return false
	}
	return true
}

// ChampionStats reports every (champion, role) teamID played with its win, pick and
// ban rates and its worst matchups against the same-role enemy champion.
func ChampionStats(teamID int, matches []*model.MatchRecord, q *model.TeamChampionsQuery) []model.TeamChampionStats {
	var (
		entries            []*championEntry
		index              = make(map[championKey]*championEntry)
		totalBannedBy      int
		totalBannedAgainst int
	)

	for _, m := range matches {
		v, ok := m.ViewOf(teamID)
		if !ok || v.Mine == nil {
			continue
		}
		totalBannedBy += len(v.Mine.BannedChampionIDs)
		if v.Enemy != nil {
			totalBannedAgainst += len(v.Enemy.BannedChampionIDs)
		}

		for i := range v.Mine.Players {
			p := &v.Mine.Players[i]
			key := championKey{championID: p.ChampionID, role: p.Role}
			e, ok := index[key]
			if !ok {
				if !accepts(q, p) {
					continue
				}
				e = &championEntry{championID: p.ChampionID, role: p.Role}
				index[key] = e
				entries = append(entries, e)
			}

			if v.Mine.Bans(p.ChampionID) {
				e.bannedBy++
			}
			if v.Enemy.Bans(p.ChampionID) {
				e.bannedAgainst++
			}
			opponent, hasOpponent := v.Enemy.PlayerByRole(p.Role)
			against := 0
			if hasOpponent {
				against = opponent.ChampionID
			}
			e.record(v.Won, against, hasOpponent)
		}
	}

	out := make([]model.TeamChampionStats, len(entries))
	for i, e := range entries {
		out[i] = model.TeamChampionStats{
			RoleID:            e.role,
			ChampionID:        e.championID,
			WinRate:           util.Round1Percent(float64(e.wins), float64(e.matches)),
			BannedByRate:      util.Round1Percent(float64(e.bannedBy), float64(totalBannedBy)),
			BannedAgainstRate: util.Round1Percent(float64(e.bannedAgainst), float64(totalBannedAgainst)),
			PickRate:          util.Round1Percent(float64(e.matches), float64(len(matches))),
			Matchups:          worstMatchups(e.matchups),
			MatchesCount:      e.matches,
		}
	}

	if q != nil && q.SortBy == model.SortByPickRate {
		sort.SliceStable(out, func(i, j int) bool {
			if q.SortOrder == model.SortAscending {
				return out[i].PickRate < out[j].PickRate
			}
			return out[i].PickRate > out[j].PickRate
		})
	}
	return out
}

// worstMatchups keeps the TopMatchups matchups with the lowest win rate.
func worstMatchups(mus []*matchup) []model.MatchupStats {
	sorted := append([]*matchup(nil), mus...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].winRate() < sorted[j].winRate()
	})
	if len(sorted) > TopMatchups {
		sorted = sorted[:TopMatchups]
	}
	out := make([]model.MatchupStats, len(sorted))
	for i, mu := range sorted {
		out[i] = model.MatchupStats{
			ChampionID: mu.championID,
			WinRate:    util.RoundFloat64(mu.winRate(), 1),
		}
	}
	return out
}
