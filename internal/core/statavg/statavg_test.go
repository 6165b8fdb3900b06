package statavg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/matchstats/internal/core/coretest"
	"exusiai.dev/matchstats/internal/model"
)

func topMatch(id int, mineGold15, enemyGold15 float64) *model.MatchRecord {
	return coretest.Match(id, 1, 2).
		Player(model.SideRed, model.RoleTop, 1, coretest.Top(model.PeriodStat{}, model.PeriodStat{Min15: mineGold15})).
		Player(model.SideBlue, model.RoleTop, 2, coretest.Top(model.PeriodStat{}, model.PeriodStat{Min15: enemyGold15})).
		Build()
}

func TestAverageOfDifferentials(t *testing.T) {
	matches := []*model.MatchRecord{
		topMatch(1, 180, 100),
		topMatch(2, 40, 100),
		topMatch(3, 270, 100),
	}

	got := Average(model.RoleTop, ForTeam(1, matches))
	require.NotNil(t, got.Top)
	assert.InDelta(t, 63.3333, got.Top.Laning.AvgGoldDifferenceCount.Min15, 1e-4)
	assert.Nil(t, got.Middle)
}

func TestAverageZeroMatches(t *testing.T) {
	got := Average(model.RoleSupport, ForTeam(1, nil))
	require.NotNil(t, got.Support)
	assert.Equal(t, 0.0, got.Support.Laning.AvgGoldDifferenceCount.Min10)
	assert.True(t, got.Support.Vision.SweeperEfficiency.Total.Valid)
	assert.Equal(t, 0.0, got.Support.Vision.SweeperEfficiency.Total.Float64)
	assert.Empty(t, got.Support.SupportItems)
}

func TestAverageIsPure(t *testing.T) {
	matches := []*model.MatchRecord{
		topMatch(1, 180, 100),
		topMatch(2, 41.7, 100),
	}
	ps := ForTeam(1, matches)

	first := Average(model.RoleTop, ps)
	second := Average(model.RoleTop, ps)
	assert.Equal(t, first, second)

	top, _ := matches[0].RedTeamInfo.Players[0].Top()
	assert.Equal(t, 180.0, top.Laning.AvgGoldDifferenceCount.Min15, "inputs are not mutated")
}

func TestEndToEndCreepDiff(t *testing.T) {
	mk := func(id int, cs float64) *model.MatchRecord {
		return coretest.Match(id, 7, 8).
			Player(model.SideRed, model.RoleTop, 1, coretest.Top(model.PeriodStat{Min10: cs}, model.PeriodStat{})).
			Player(model.SideBlue, model.RoleTop, 2, coretest.Top(model.PeriodStat{}, model.PeriodStat{})).
			Build()
	}
	ps := ForTeam(7, []*model.MatchRecord{mk(1, 12), mk(2, -4)})

	got := Average(model.RoleTop, ps)
	assert.Len(t, ps, 2)
	assert.Equal(t, 4.0, got.Top.Laning.AvgCreepScoreDifferenceCount.Min10)
}

func TestMissingRoleContributesZero(t *testing.T) {
	withTop := topMatch(1, 200, 100)
	withoutTop := coretest.Match(2, 1, 2).
		Player(model.SideRed, model.RoleMiddle, 3, &model.MiddleStats{}).
		Build()

	got := Average(model.RoleTop, ForTeam(1, []*model.MatchRecord{withTop, withoutTop}))
	assert.Equal(t, 50.0, got.Top.Laning.AvgGoldDifferenceCount.Min15)
}

func TestDirectLeavesAreNotDifferential(t *testing.T) {
	m := coretest.Match(1, 1, 2).
		Player(model.SideRed, model.RoleMiddle, 1, &model.MiddleStats{
			General: model.GeneralStats{AvgKillCount: 6},
			TeamFightDamage: model.TeamFightDamage{
				Team: model.DamageShare{MiddlePercent: 30},
			},
		}).
		Player(model.SideBlue, model.RoleMiddle, 2, &model.MiddleStats{
			General: model.GeneralStats{AvgKillCount: 2},
		}).
		Build()

	got := Average(model.RoleMiddle, ForTeam(1, []*model.MatchRecord{m}))
	assert.Equal(t, 6.0, got.Middle.General.AvgKillCount)
	assert.Equal(t, 30.0, got.Middle.TeamFightDamage.Team.MiddlePercent)

	swapped := Average(model.RoleMiddle, Swap(ForTeam(1, []*model.MatchRecord{m})))
	assert.Equal(t, 2.0, swapped.Middle.General.AvgKillCount)
}

func TestJunglerPortionsAndCounters(t *testing.T) {
	jungler := func(camps, gank float64) *model.JunglerStats {
		return &model.JunglerStats{
			Jungling: model.JunglingStats{
				AvgCampsTakenCount: model.PortionStat{Min10: model.PortionItem{Count: camps, Total: 10}},
			},
			LaneInteraction: model.JunglerLaneInteraction{
				GankAttemptCount: model.LaneCounter{Top: gank},
			},
		}
	}
	matches := []*model.MatchRecord{
		coretest.Match(1, 1, 2).
			Player(model.SideRed, model.RoleJungler, 1, jungler(6, 2)).
			Player(model.SideBlue, model.RoleJungler, 2, jungler(0, 0)).
			Build(),
		coretest.Match(2, 2, 1).
			Player(model.SideRed, model.RoleJungler, 1, jungler(0, 0)).
			Player(model.SideBlue, model.RoleJungler, 2, jungler(8, 4)).
			Build(),
	}

	got := Average(model.RoleJungler, ForTeam(1, matches))
	assert.Equal(t, 7.0, got.Jungler.Jungling.AvgCampsTakenCount.Min10.Count)
	assert.Equal(t, 10.0, got.Jungler.Jungling.AvgCampsTakenCount.Min10.Total)
	assert.Equal(t, 3.0, got.Jungler.LaneInteraction.GankAttemptCount.Top)
}

func TestSupportItemsFromMostRecentMatch(t *testing.T) {
	support := func(item int) *model.SupportStats {
		s := &model.SupportStats{}
		if item != 0 {
			s.SupportItems = []model.SupportItemStats{{ItemID: item}}
		}
		return s
	}
	// lists reach the engine most recent first
	matches := []*model.MatchRecord{
		coretest.Match(3, 1, 2).Player(model.SideRed, model.RoleSupport, 1, support(0)).Player(model.SideBlue, model.RoleSupport, 2, support(0)).Build(),
		coretest.Match(2, 1, 2).Player(model.SideRed, model.RoleSupport, 1, support(3853)).Player(model.SideBlue, model.RoleSupport, 2, support(0)).Build(),
		coretest.Match(1, 1, 2).Player(model.SideRed, model.RoleSupport, 1, support(3855)).Player(model.SideBlue, model.RoleSupport, 2, support(0)).Build(),
	}

	got := Average(model.RoleSupport, ForTeam(1, matches))
	require.Len(t, got.Support.SupportItems, 1)
	assert.Equal(t, 3853, got.Support.SupportItems[0].ItemID)
}
