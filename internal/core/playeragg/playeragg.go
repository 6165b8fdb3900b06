// Package playeragg reduces a player's matches into per champion stats.
package playeragg

import (
	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/util"
)

// Appearance is one match a player took part in.
type Appearance struct {
	Match      *model.MatchRecord
	Side       model.Side
	SummonerID string
}

// player finds the participant the appearance refers to.
func (a *Appearance) player() (*model.PlayerMatchInfo, *model.TeamMatchInfo, bool) {
	info := a.Match.Info(a.Side)
	if info == nil {
		return nil, nil, false
	}
	for i := range info.Players {
		if info.Players[i].SummonerIdentity.ID == a.SummonerID {
			return &info.Players[i], info, true
		}
	}
	return nil, nil, false
}

type championKey struct {
	championID int
	role       model.Role
}

// early keeps the checkpoints every match reaches.
func early(p model.PeriodStat) model.PeriodStat {
	return model.PeriodStat{Min10: p.Min10, Min15: p.Min15}
}

func single(a *Appearance) (model.PlayerChampionStats, bool) {
	p, team, ok := a.player()
	if !ok {
		return model.PlayerChampionStats{}, false
	}

	var teamDamage float64
	for i := range team.Players {
		teamDamage += team.Players[i].General().AvgTotalDamage
	}

	general := p.General()
	out := model.PlayerChampionStats{
		ChampionID:        p.ChampionID,
		Role:              p.Role,
		GameCount:         1,
		AvgKillCount:      general.AvgKillCount,
		AvgDeathCount:     general.AvgDeathCount,
		AvgAssistCount:    general.AvgAssistCount,
		AvgForwardPercent: early(general.AvgForwardPercent),
		AvgDmgPercent:     util.Percent(general.AvgTotalDamage, teamDamage),
		AvgGPM:            util.SafeDiv(general.AvgGoldCount, a.Match.Duration().Minutes()),
	}
	if a.Match.Won(a.Side) {
		out.WinGameCount = 1
	}
	// junglers and supports have no lane opponent to diff against
	switch p.Role {
	case model.RoleTop, model.RoleMiddle, model.RoleBottom:
		laning := p.Laning()
		out.AvgCreepScoreDifferenceCount = early(laning.AvgCreepScoreDifferenceCount)
		out.AvgGoldDifferenceCount = early(laning.AvgGoldDifferenceCount)
	}
	return out, true
}

func add(a, b model.PlayerChampionStats) model.PlayerChampionStats {
	a.GameCount += b.GameCount
	a.WinGameCount += b.WinGameCount
	a.AvgKillCount += b.AvgKillCount
	a.AvgDeathCount += b.AvgDeathCount
	a.AvgAssistCount += b.AvgAssistCount
	a.AvgForwardPercent = a.AvgForwardPercent.Add(b.AvgForwardPercent)
	a.AvgDmgPercent += b.AvgDmgPercent
	a.AvgGPM += b.AvgGPM
	a.AvgCreepScoreDifferenceCount = a.AvgCreepScoreDifferenceCount.Add(b.AvgCreepScoreDifferenceCount)
	a.AvgGoldDifferenceCount = a.AvgGoldDifferenceCount.Add(b.AvgGoldDifferenceCount)
	return a
}

func average(s model.PlayerChampionStats) model.PlayerChampionStats {
	n := float64(s.GameCount)
	s.AvgKillCount = model.Div(s.AvgKillCount, n)
	s.AvgDeathCount = model.Div(s.AvgDeathCount, n)
	s.AvgAssistCount = model.Div(s.AvgAssistCount, n)
	s.AvgForwardPercent = early(s.AvgForwardPercent.Div(n))
	s.AvgDmgPercent = model.Div(s.AvgDmgPercent, n)
	s.AvgGPM = model.Div(s.AvgGPM, n)
	s.AvgCreepScoreDifferenceCount = early(s.AvgCreepScoreDifferenceCount.Div(n))
	s.AvgGoldDifferenceCount = early(s.AvgGoldDifferenceCount.Div(n))
	return s
}

// ChampionStats averages the appearances per (champion, role), in the order each
// pair was first played. Appearances whose participant cannot be found are skipped.
func ChampionStats(apps []Appearance) []model.PlayerChampionStats {
	var order []championKey
	sums := make(map[championKey]model.PlayerChampionStats)

	for i := range apps {
		s, ok := single(&apps[i])
		if !ok {
			continue
		}
		key := championKey{championID: s.ChampionID, role: s.Role}
		acc, seen := sums[key]
		if !seen {
			order = append(order, key)
			sums[key] = s
			continue
		}
		sums[key] = add(acc, s)
	}

	out := make([]model.PlayerChampionStats, len(order))
	for i, k := range order {
		out[i] = average(sums[k])
	}
	return out
}
