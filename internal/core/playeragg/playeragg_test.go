package playeragg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/matchstats/internal/core/coretest"
	"exusiai.dev/matchstats/internal/model"
)

func appearance(id int, champion int, role model.Role, won bool, stats model.RoleStats) Appearance {
	winner := model.SideRed
	if won {
		winner = model.SideBlue
	}
	m := coretest.Match(id, 1, 2).Winner(winner).Duration(20*time.Minute).
		Player(model.SideBlue, role, champion, stats).
		Player(model.SideBlue, model.RoleSupport, 40, &model.SupportStats{
			General: model.SupportGeneralStats{GeneralStats: model.GeneralStats{AvgTotalDamage: 3000}},
		}).
		Build()
	m.BlueTeamInfo.Players[0].SummonerIdentity.ID = "faker"
	return Appearance{Match: m, Side: model.SideBlue, SummonerID: "faker"}
}

func middle(kills, damage, gold, cs10 float64) *model.MiddleStats {
	return &model.MiddleStats{
		General: model.GeneralStats{
			AvgKillCount:      kills,
			AvgTotalDamage:    damage,
			AvgGoldCount:      gold,
			AvgForwardPercent: coretest.Period(10, 20, 30, 40, 50),
		},
		Laning: model.LaningStats{AvgCreepScoreDifferenceCount: model.PeriodStat{Min10: cs10, Total: null.FloatFrom(99)}},
	}
}

func TestChampionStatsAverages(t *testing.T) {
	apps := []Appearance{
		appearance(1, 7, model.RoleMiddle, true, middle(4, 9000, 8000, 10)),
		appearance(2, 7, model.RoleMiddle, false, middle(2, 1000, 12000, -4)),
		appearance(3, 3, model.RoleMiddle, true, middle(0, 0, 0, 0)),
	}

	got := ChampionStats(apps)
	require.Len(t, got, 2)

	s := got[0]
	assert.Equal(t, 7, s.ChampionID)
	assert.Equal(t, model.RoleMiddle, s.Role)
	assert.Equal(t, 2, s.GameCount)
	assert.Equal(t, 1, s.WinGameCount)
	assert.Equal(t, 3.0, s.AvgKillCount)
	assert.Equal(t, 500.0, s.AvgGPM)
	assert.Equal(t, 3.0, s.AvgCreepScoreDifferenceCount.Min10)
	assert.Equal(t, 0.0, s.AvgCreepScoreDifferenceCount.Total.Float64, "only early checkpoints are kept")
	assert.Equal(t, model.PeriodStat{Min10: 10, Min15: 20}, s.AvgForwardPercent)
	// 9000 of 12000 and 1000 of 4000
	assert.Equal(t, 50.0, s.AvgDmgPercent)

	assert.Equal(t, 3, got[1].ChampionID)
	assert.Equal(t, 0.0, got[1].AvgDmgPercent)
}

func TestChampionStatsJunglerHasNoLaneDiff(t *testing.T) {
	apps := []Appearance{
		appearance(1, 64, model.RoleJungler, true, &model.JunglerStats{
			Laning: model.LaningStats{AvgGoldDifferenceCount: model.PeriodStat{Min10: 300}},
		}),
	}

	got := ChampionStats(apps)
	require.Len(t, got, 1)
	assert.Equal(t, model.PeriodStat{}, got[0].AvgGoldDifferenceCount)
}

func TestChampionStatsSkipsUnknownSummoner(t *testing.T) {
	a := appearance(1, 7, model.RoleMiddle, true, middle(1, 1, 1, 1))
	a.SummonerID = "someone-else"

	assert.Empty(t, ChampionStats([]Appearance{a}))
	assert.Empty(t, ChampionStats(nil))
}
