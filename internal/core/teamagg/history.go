package teamagg

import (
	"sort"

	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/util"
)

// DefaultPageSize applies when a match history query names no page size.
const DefaultPageSize = 20

// MatchSummary is the per match summary of one side's telemetry.
type MatchSummary struct {
	SoloKills            float64
	IsolatedDeaths       float64
	GoldDiffPre15        float64
	GoldDiffPost15       float64
	CSDiffPre15          float64
	CSDiffPost15         float64
	DragonSecuredPercent float64
	BaronSecuredPercent  float64
}

// Summarize totals the players of info. Players without stats add nothing.
func Summarize(info *model.TeamMatchInfo) MatchSummary {
	var (
		out              MatchSummary
		goldTotal, csAll float64
	)
	if info == nil {
		return out
	}

	for i := range info.Players {
		p := &info.Players[i]
		if p.Stats == nil {
			continue
		}
		general := p.General()
		laning := p.Laning()

		out.SoloKills += general.AvgSoloKillCount.Total.Float64
		out.IsolatedDeaths += general.AvgIsolatedDeathCount.Total.Float64
		out.GoldDiffPre15 += laning.AvgGoldDifferenceCount.Min15
		out.CSDiffPre15 += laning.AvgCreepScoreDifferenceCount.Min15
		goldTotal += general.AvgGoldCount
		csAll += laning.AvgCreepScoreDifferenceCount.Total.Float64
	}
	out.GoldDiffPost15 = goldTotal - out.GoldDiffPre15
	out.CSDiffPost15 = csAll - out.CSDiffPre15

	objectives := &info.Stats.Objectives
	dragons := objectives.Dragons.Total()
	out.DragonSecuredPercent = util.Percent(float64(dragons.KilledCount), float64(dragons.TotalCount))
	if b := objectives.Baron; b != nil {
		out.BaronSecuredPercent = util.Percent(float64(b.KilledCount), float64(b.TotalCount))
	}
	return out
}

func (s *MatchSummary) metric(by model.MatchHistorySort) float64 {
	switch by {
	case model.SortBySoloKills:
		return s.SoloKills
	case model.SortByIsolatedDeaths:
		return s.IsolatedDeaths
	case model.SortByGoldDiffPre15:
		return s.GoldDiffPre15
	case model.SortByGoldDiffPost15:
		return s.GoldDiffPost15
	case model.SortByCSDiffPre15:
		return s.CSDiffPre15
	case model.SortByCSDiffPost15:
		return s.CSDiffPost15
	case model.SortByDragonsSecuredPercent:
		return s.DragonSecuredPercent
	case model.SortByBaronSecuredPercent:
		return s.BaronSecuredPercent
	default:
		return 0
	}
}

type historyRow struct {
	stats   model.TeamMatchHistoryStats
	summary MatchSummary
}

// MatchHistory lists the matches of teamID one row each, optionally restricted to
// victories, sorted and paginated. Matches are expected most recent first; that order
// is kept when no sort is requested. names resolves enemy team names.
func MatchHistory(teamID int, matches []*model.MatchRecord, names map[int]string, q *model.TeamMatchHistoryQuery) model.QueryResult[model.TeamMatchHistoryStats] {
	var rows []historyRow
	for _, m := range matches {
		v, ok := m.ViewOf(teamID)
		if !ok {
			continue
		}
		if q.VictoryOnly && !v.Won {
			continue
		}

		summary := Summarize(v.Mine)
		enemyID := int(m.TeamIDOn(v.Side.Opposite()).Int64)
		rows = append(rows, historyRow{
			summary: summary,
			stats: model.TeamMatchHistoryStats{
				GameID:               m.MatchID,
				GameUID:              m.UID,
				GameTeamSide:         v.Side,
				EnemyTeamID:          enemyID,
				EnemyTeamName:        names[enemyID],
				SoloKillsCount:       summary.SoloKills,
				IsoDeathsCount:       summary.IsolatedDeaths,
				GoldDiffPre15:        summary.GoldDiffPre15,
				GoldDiffPost15:       summary.GoldDiffPost15,
				CSDiffPre15:          summary.CSDiffPre15,
				CSDiffPost15:         summary.CSDiffPost15,
				DragonSecuredPercent: summary.DragonSecuredPercent,
				BaronSecuredPercent:  summary.BaronSecuredPercent,
				GameDurationSeconds:  m.Duration().Seconds(),
				GameType:             m.Type,
				GameStartTime:        m.StartTime,
				GamePatch:            m.PatchID,
			},
		})
	}

	if q.SortBy != 0 {
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i].summary.metric(q.SortBy), rows[j].summary.metric(q.SortBy)
			if q.SortOrder == model.SortAscending {
				return a < b
			}
			return a > b
		})
	}

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	from := q.Page * pageSize
	if from > len(rows) {
		from = len(rows)
	}
	to := from + pageSize
	if to > len(rows) {
		to = len(rows)
	}

	items := make([]model.TeamMatchHistoryStats, 0, to-from)
	for _, r := range rows[from:to] {
		items = append(items, r.stats)
	}
	return model.QueryResult[model.TeamMatchHistoryStats]{
		Items:    items,
		Total:    len(rows),
		Page:     q.Page,
		PageSize: pageSize,
	}
}
