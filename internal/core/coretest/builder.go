// Package coretest builds match records for reducer tests.
package coretest

import (
	"strconv"
	"time"

	"gopkg.in/guregu/null.v3"

	"exusiai.dev/matchstats/internal/model"
)

var Epoch = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

type MatchBuilder struct {
	m *model.MatchRecord
}

// Match starts a competitive match between red and blue. Matches with a higher id
// start later.
func Match(id, red, blue int) *MatchBuilder {
	start := Epoch.Add(time.Duration(id) * time.Hour)
	return &MatchBuilder{m: &model.MatchRecord{
		MatchID:      id,
		UID:          "match-" + strconv.Itoa(id),
		Type:         model.MatchTypeCompetitive,
		RedTeamID:    null.IntFrom(int64(red)),
		BlueTeamID:   null.IntFrom(int64(blue)),
		StartTime:    start,
		EndTime:      start.Add(30 * time.Minute),
		RedTeamInfo:  &model.TeamMatchInfo{},
		BlueTeamInfo: &model.TeamMatchInfo{},
	}}
}

func (b *MatchBuilder) Winner(s model.Side) *MatchBuilder {
	b.m.WinnerSide = s
	return b
}

func (b *MatchBuilder) Duration(d time.Duration) *MatchBuilder {
	b.m.EndTime = b.m.StartTime.Add(d)
	return b
}

// Player appends a participant to side s.
func (b *MatchBuilder) Player(s model.Side, role model.Role, champion int, stats model.RoleStats) *MatchBuilder {
	info := b.m.Info(s)
	info.Players = append(info.Players, model.PlayerMatchInfo{
		SummonerIdentity: model.SummonerIdentity{Name: s.String() + "-" + role.String()},
		ChampionID:       champion,
		Role:             role,
		Stats:            stats,
	})
	return b
}

func (b *MatchBuilder) Bans(s model.Side, champions ...int) *MatchBuilder {
	b.m.Info(s).BannedChampionIDs = champions
	return b
}

// Team exposes the telemetry of side s for direct edits.
func (b *MatchBuilder) Team(s model.Side, edit func(*model.TeamMatchInfo)) *MatchBuilder {
	edit(b.m.Info(s))
	return b
}

func (b *MatchBuilder) Wards(events ...model.WardEvent) *MatchBuilder {
	if b.m.WardsInfo == nil {
		b.m.WardsInfo = &model.WardInfo{}
	}
	b.m.WardsInfo.Events = append(b.m.WardsInfo.Events, events...)
	return b
}

func (b *MatchBuilder) Build() *model.MatchRecord {
	return b.m
}

// Period is a PeriodStat with every checkpoint present.
func Period(min10, min15, min20, min30, total float64) model.PeriodStat {
	return model.PeriodStat{
		Min10: min10,
		Min15: min15,
		Min20: null.FloatFrom(min20),
		Min30: null.FloatFrom(min30),
		Total: null.FloatFrom(total),
	}
}

// Top returns top lane stats with the given creep score and gold laning values.
func Top(cs, gold model.PeriodStat) *model.TopStats {
	return &model.TopStats{Laning: model.LaningStats{
		AvgCreepScoreDifferenceCount: cs,
		AvgGoldDifferenceCount:       gold,
	}}
}

// FullRoster fills both sides with one player per role, all with empty stat branches.
func (b *MatchBuilder) FullRoster() *MatchBuilder {
	for _, s := range []model.Side{model.SideRed, model.SideBlue} {
		b.Player(s, model.RoleTop, 0, &model.TopStats{})
		b.Player(s, model.RoleJungler, 0, &model.JunglerStats{})
		b.Player(s, model.RoleMiddle, 0, &model.MiddleStats{})
		b.Player(s, model.RoleBottom, 0, &model.BottomStats{})
		b.Player(s, model.RoleSupport, 0, &model.SupportStats{})
	}
	return b
}
