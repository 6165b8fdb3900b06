package wardclust

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/matchstats/internal/core/coretest"
	"exusiai.dev/matchstats/internal/model"
)

func ward(x, z float64) model.WardEvent {
	return model.WardEvent{
		SummonerName:      "Keria",
		Type:              model.WardTypeControl,
		TeamSide:          model.SideRed,
		Role:              model.RoleSupport,
		TimeOffsetSeconds: 100,
		Coordinates:       model.Coordinates{X: x, Z: z},
	}
}

func TestClusterFourPlusOne(t *testing.T) {
	samples := []model.WardEvent{
		ward(1000, 1000),
		ward(1200, 1100),
		ward(1100, 900),
		ward(900, 1200),
		ward(9000, 9000),
	}

	got := Cluster(samples, 3)
	require.Len(t, got, 2)
	assert.Equal(t, 80.0, got[0].Percent)
	assert.Equal(t, 1050.0, got[0].WardEvent.Coordinates.X)
	assert.Equal(t, 1050.0, got[0].WardEvent.Coordinates.Z)
	assert.Equal(t, 20.0, got[1].Percent)
	assert.Equal(t, 9000.0, got[1].WardEvent.Coordinates.X)

	one := Cluster(samples, 1)
	require.Len(t, one, 1)
	assert.Equal(t, 80.0, one[0].Percent)
}

func TestClusterEmpty(t *testing.T) {
	got := Cluster(nil, 3)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestClusterTieKeepsEncounterOrder(t *testing.T) {
	samples := []model.WardEvent{ward(0, 0), ward(5000, 5000), ward(10000, 10000)}
	got := Cluster(samples, 2)
	require.Len(t, got, 2)
	assert.Equal(t, 0.0, got[0].WardEvent.Coordinates.X)
	assert.Equal(t, 5000.0, got[1].WardEvent.Coordinates.X)
}

func TestForTeamKeepsOwnSideFirstWardPerRole(t *testing.T) {
	top := func(x float64, sec float64) model.WardEvent {
		w := ward(x, 0)
		w.Role = model.RoleTop
		w.TimeOffsetSeconds = sec
		return w
	}
	enemy := top(50000, 10)
	enemy.TeamSide = model.SideBlue

	m1 := coretest.Match(1, 1, 2).Duration(25*time.Minute).Wards(enemy, top(100, 20), top(20000, 30)).Build()
	m2 := coretest.Match(2, 1, 2).Duration(35*time.Minute).Wards(top(300, 40)).Build()

	got := ForTeam(1, []*model.MatchRecord{m1, m2}, Options{})
	assert.Equal(t, 35*60.0, got.MaxGameLength)
	assert.Len(t, got.MostCommonWards, 3, "enemy ward excluded")
	require.Len(t, got.FirstWards, 1, "roles without samples emit nothing")
	assert.Equal(t, 100.0, got.FirstWards[0].Percent)
	assert.Equal(t, 200.0, got.FirstWards[0].WardEvent.Coordinates.X)
	assert.Equal(t, 30.0, got.FirstWards[0].WardEvent.TimeOffsetSeconds)
}

func TestOptionsFilters(t *testing.T) {
	early := ward(0, 0)
	early.TimeOffsetSeconds = 30
	late := ward(0, 0)
	late.TimeOffsetSeconds = 600
	stealth := ward(0, 0)
	stealth.Type = model.WardTypeOther

	m := coretest.Match(1, 1, 2).Wards(early, late, stealth).Build()
	start, end := 60.0, 900.0

	got := ForPlayer("Keria", []*model.MatchRecord{m}, Options{
		WardOptions: model.WardOptions{
			WardQueryType: model.WardQueryMostCommon,
			StartTime:     &start,
			EndTime:       &end,
			WardType:      model.WardTypeControl,
		},
	})
	require.Len(t, got.MostCommonWards, 1)
	assert.Equal(t, 600.0, got.MostCommonWards[0].WardEvent.TimeOffsetSeconds)
	assert.Empty(t, got.FirstWards)

	onlyStart := ForPlayer("Keria", []*model.MatchRecord{m}, Options{
		WardOptions: model.WardOptions{WardQueryType: model.WardQueryMostCommon, StartTime: &start},
	})
	assert.Len(t, onlyStart.MostCommonWards, 3, "a half-open time range is ignored")
}

func TestForPlayerFirstWardPerMatch(t *testing.T) {
	other := ward(0, 0)
	other.SummonerName = "Someone"

	var matches []*model.MatchRecord
	for i := 1; i <= 4; i++ {
		matches = append(matches, coretest.Match(i, 1, 2).Wards(other, ward(1000, 1000), ward(30000, 30000)).Build())
	}

	got := ForPlayer("Keria", matches, Options{WardOptions: model.WardOptions{WardQueryType: model.WardQueryFirstWard}})
	assert.Empty(t, got.MostCommonWards)
	require.Len(t, got.FirstWards, 1, "identical centroids collapse into one")
	assert.Equal(t, 100.0, got.FirstWards[0].Percent)
}

func TestMostCommonCap(t *testing.T) {
	events := make([]model.WardEvent, MaxMostCommon+10)
	for i := range events {
		events[i] = ward(float64(i), 0)
	}
	m := coretest.Match(1, 1, 2).Wards(events...).Build()

	got := ForPlayer("Keria", []*model.MatchRecord{m}, Options{WardOptions: model.WardOptions{WardQueryType: model.WardQueryMostCommon}})
	assert.Len(t, got.MostCommonWards, MaxMostCommon)
}
