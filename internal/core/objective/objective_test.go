package objective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/matchstats/internal/core/coretest"
	"exusiai.dev/matchstats/internal/model"
)

func teamStats(id int, winner model.Side, stats model.TeamStats) *model.MatchRecord {
	return coretest.Match(id, 1, 2).Winner(winner).Team(model.SideRed, func(info *model.TeamMatchInfo) {
		info.Stats = stats
	}).Build()
}

func TestFirstObjectives(t *testing.T) {
	matches := []*model.MatchRecord{
		teamStats(1, model.SideRed, model.TeamStats{Objectives: model.ObjectiveStats{
			FirstDragon: &model.ObjectiveEvent{IsSuccess: true, Time: 400},
			FirstHerald: &model.ObjectiveEvent{IsSuccess: false, Time: 500},
		}}),
		teamStats(2, model.SideRed, model.TeamStats{Objectives: model.ObjectiveStats{
			FirstDragon: &model.ObjectiveEvent{IsSuccess: true, Time: 600},
		}}),
		teamStats(3, model.SideRed, model.TeamStats{}),
	}

	got := FirstObjectives(1, matches)
	assert.Equal(t, model.ObjectiveSuccessInfo{SuccessPercent: 67, AverageTime: 500}, got.FirstDragon)
	assert.Equal(t, model.ObjectiveSuccessInfo{}, got.FirstHerald)
	assert.Equal(t, model.ObjectiveSuccessInfo{}, got.FirstBaron)
}

func TestElementalDragons(t *testing.T) {
	dragons := func(cloudTotal, cloudKilled int) model.TeamStats {
		return model.TeamStats{Objectives: model.ObjectiveStats{Dragons: &model.DragonCounts{
			Cloud: model.ObjectiveCount{TotalCount: cloudTotal, KilledCount: cloudKilled},
		}}}
	}
	matches := []*model.MatchRecord{
		teamStats(1, model.SideRed, dragons(2, 2)),
		teamStats(2, model.SideBlue, dragons(1, 1)),
		teamStats(3, model.SideBlue, dragons(1, 0)),
	}

	got := ElementalDragons(1, matches)
	assert.Equal(t, model.ElementalDragonInfo{
		TotalDragonCount:       4,
		TotalKilledDragonCount: 3,
		SecurePercent:          75,
		WinPercent:             50,
	}, got.CloudDragonInfo)
	assert.Equal(t, model.ElementalDragonInfo{}, got.OceanDragonInfo, "no dragons means zero percentages")
}

func TestLaneInteraction(t *testing.T) {
	ganks := model.TeamStats{LaneInteraction: model.LaneInteractionStats{
		TopGankInfo:    model.GankInfo{TotalCount: 3, SuccessCount: 1},
		BottomGankInfo: model.GankInfo{TotalCount: 1},
	}}
	got := LaneInteraction(1, []*model.MatchRecord{teamStats(1, 0, ganks), teamStats(2, 0, ganks)})
	assert.Equal(t, model.GankInfo{TotalCount: 6, SuccessCount: 2}, got.TopGankInfo)
	assert.Equal(t, model.GankInfo{TotalCount: 2}, got.BottomGankInfo)
	assert.Equal(t, model.GankInfo{}, got.MiddleGankInfo)
}

func TestTurretPlates(t *testing.T) {
	plates := func(top, bottom model.TurretPlates) model.TeamStats {
		return model.TeamStats{TowerPlates: model.TowerPlates{TopTurret: top, BottomTurret: bottom}}
	}
	matches := []*model.MatchRecord{
		teamStats(1, 0, plates(
			model.TurretPlates{TopRoleTaken: 3, JunglerRoleTaken: 1},
			model.TurretPlates{BottomRoleTaken: 2, SupportRoleTaken: 2},
		)),
		teamStats(2, 0, plates(
			model.TurretPlates{TopRoleTaken: 1, JunglerRoleTaken: 3},
			model.TurretPlates{BottomRoleTaken: 4},
		)),
	}

	got := TurretPlates(1, matches)
	assert.Equal(t, 4.0, got.TopTurretPlates)
	assert.Equal(t, 4.0, got.BottomTurretPlates)
	assert.Equal(t, 0.0, got.MiddleTurretPlates)
	assert.Equal(t, 8.0, AveragePlates(&got))

	require.Len(t, got.TopTurretDamageInfo, 5)
	assert.Equal(t, []model.TurretPlateTakenByRole{
		{RoleID: model.RoleTop, Percent: 50},
		{RoleID: model.RoleMiddle, Percent: 0},
		{RoleID: model.RoleBottom, Percent: 0},
		{RoleID: model.RoleJungler, Percent: 50},
		{RoleID: model.RoleSupport, Percent: 0},
	}, got.TopTurretDamageInfo)
	assert.Equal(t, 75.0, got.BottomTurretDamageInfo[2].Percent, "bottom turret reports its own takers")
	assert.Equal(t, 25.0, got.BottomTurretDamageInfo[4].Percent)
	assert.Equal(t, 0.0, got.MiddleTurretDamageInfo[0].Percent)
}

func TestLaningInfo(t *testing.T) {
	m := coretest.Match(1, 1, 2).
		Player(model.SideRed, model.RoleTop, 1, &model.TopStats{
			General: model.TopGeneralStats{GeneralStats: model.GeneralStats{
				AvgIsolatedDeathCount: model.PeriodStat{Total: null.FloatFrom(2)},
			}},
			Laning: model.LaningStats{AvgCreepScoreDifferenceCount: coretest.Period(10, 12, 20, 30, 40)},
			Vision: model.ControlWardVision{AvgControlWardsBoughtCount: coretest.Period(1, 2, 3, 4, 5)},
		}).
		Player(model.SideRed, model.RoleJungler, 2, &model.JunglerStats{
			AvgControlWardsBoughtCount: model.PeriodStat{Min10: 2, Min15: 4},
		}).
		Player(model.SideRed, model.RoleSupport, 3, &model.SupportStats{
			Vision: model.SupportVision{AvgControlWardsPerMinCount: coretest.Period(0.5, 1, 1.5, 2, 3)},
		}).
		Build()
	empty := coretest.Match(2, 1, 2).Build()

	got := LaningInfo(1, []*model.MatchRecord{m, empty})
	assert.Equal(t, 5.0, got.CSDifferenceAt10.TopInfo)
	assert.Equal(t, 10.0, got.CSDifferenceAt20.TopInfo)
	assert.Equal(t, 1.0, got.AverageIsolatedDeaths.TopInfo)
	assert.Equal(t, 2.0, got.AverageControlWardAt30.TopInfo)
	assert.Equal(t, 1.0, got.AverageControlWardAt10.JngInfo)
	assert.Equal(t, 0.0, got.AverageControlWardAt20.JngInfo)
	assert.Equal(t, 0.75, got.AverageControlWardAt20.SupportInfo)
	assert.Equal(t, 0.0, got.CSDifferenceAt10.MidInfo)
}

func TestEmptyMatchList(t *testing.T) {
	assert.Equal(t, model.FirstObjectivesInfo{}, FirstObjectives(1, nil))
	assert.Equal(t, model.LaningInfo{}, LaningInfo(1, nil))

	plates := TurretPlates(1, nil)
	assert.Equal(t, 0.0, AveragePlates(&plates))
	for _, s := range plates.TopTurretDamageInfo {
		assert.Equal(t, 0.0, s.Percent)
	}
}
