package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/matchstats/internal/app/appconfig"
	"exusiai.dev/matchstats/internal/core/coretest"
	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/pkg/apierr"
	"exusiai.dev/matchstats/internal/repo"
)

const (
	teamA = 1
	teamB = 2
	teamC = 3

	playerTop = 10
)

// fixture builds 20 matches of A against B, A on red in odd matches, plus 5 of B against C.
func fixture() *repo.Snapshot {
	var matches []*model.MatchRecord
	for id := 1; id <= 20; id++ {
		red, blue := teamA, teamB
		if id%2 == 0 {
			red, blue = teamB, teamA
		}
		winner := model.SideRed
		if id%4 == 0 {
			winner = model.SideBlue
		}
		matches = append(matches, coretest.Match(id, red, blue).FullRoster().Winner(winner).Build())
	}
	for id := 21; id <= 25; id++ {
		matches = append(matches, coretest.Match(id, teamB, teamC).FullRoster().Winner(model.SideRed).Build())
	}

	return repo.NewSnapshot(&model.Snapshot{
		Teams: []*model.Team{
			{TeamID: teamA, Name: "Alpha", IsActive: true},
			{TeamID: teamB, Name: "Bravo", IsActive: true},
			{TeamID: teamC, Name: "Charlie", IsActive: true},
		},
		Players: []*model.Player{
			{PlayerID: playerTop, Name: "Top", SummonerName: "red-top"},
		},
		Matches: matches,
	})
}

func newServices() (*TeamStats, *PlayerStats) {
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{ReportCacheTTL: time.Minute}}
	src := fixture()
	return NewTeamStats(conf, src, NewDirectory(src, src)), NewPlayerStats(conf, src, src)
}

func TestTeamOverall(t *testing.T) {
	teams, _ := newServices()
	ctx := context.Background()

	type testCase struct {
		name      string
		query     model.TeamStatsQuery
		primary   int
		secondary int
		err       error
	}
	testCases := []testCase{
		{name: "default limit", query: model.TeamStatsQuery{}, primary: 15, secondary: -1},
		{name: "red side only", query: model.TeamStatsQuery{TeamQueryBase: model.TeamQueryBase{TeamSide: model.SideRed}}, primary: 10, secondary: -1},
		{name: "explicit limit", query: model.TeamStatsQuery{TeamQueryBase: model.TeamQueryBase{MaxItemCount: 4}}, primary: 4, secondary: -1},
		{name: "last n", query: model.TeamStatsQuery{CompareToLastNMatchCount: 5}, primary: 5, secondary: 15},
		{name: "versus", query: model.TeamStatsQuery{TeamQueryBase: model.TeamQueryBase{VersusTeamID: teamB}}, primary: 15, secondary: 15},
		{name: "compare to team", query: model.TeamStatsQuery{CompareToTeamID: teamC}, primary: 15, secondary: 5},
		{name: "compare to self", query: model.TeamStatsQuery{CompareToTeamID: teamA}, err: apierr.ErrInvalidReq},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := teams.Overall(ctx, teamA, &tc.query)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.primary, got.PrimaryOverallStats.GameCount)
			if tc.secondary < 0 {
				assert.Nil(t, got.SecondaryOverallStats)
				return
			}
			require.NotNil(t, got.SecondaryOverallStats)
			assert.Equal(t, tc.secondary, got.SecondaryOverallStats.GameCount)
		})
	}
}

func TestTeamWardsRejectsInvertedWindow(t *testing.T) {
	teams, _ := newServices()
	start, end := 600.0, 300.0

	_, err := teams.Wards(context.Background(), teamA, &model.TeamWardQuery{
		WardOptions: model.WardOptions{StartTime: &start, EndTime: &end},
	})
	assert.ErrorIs(t, err, apierr.ErrInvalidReq)
}

func TestTeamChampionsNeverNil(t *testing.T) {
	teams, _ := newServices()

	got, err := teams.Champions(context.Background(), 99, &model.TeamChampionsQuery{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTeamHistory(t *testing.T) {
	teams, _ := newServices()

	got, err := teams.History(context.Background(), teamB, &model.TeamMatchHistoryQuery{PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 25, got.Total)
	require.Len(t, got.Items, 10)
	assert.Equal(t, 25, got.Items[0].GameID, "most recent first")
	assert.Equal(t, "Charlie", got.Items[0].EnemyTeamName)
}

func TestPlayerStats(t *testing.T) {
	_, players := newServices()
	ctx := context.Background()

	got, err := players.Stats(ctx, playerTop, &model.PlayerStatsQuery{})
	require.NoError(t, err)
	assert.NotNil(t, got.PrimaryPlayerStats.Top)
	assert.Nil(t, got.PrimaryPlayerStats.Support)
	assert.Nil(t, got.SecondaryPlayerStats)

	_, err = players.Stats(ctx, 404, &model.PlayerStatsQuery{})
	assert.ErrorIs(t, err, apierr.ErrNotFound)

	_, err = players.Stats(ctx, playerTop, &model.PlayerStatsQuery{VersusPlayerID: playerTop})
	assert.ErrorIs(t, err, apierr.ErrInvalidReq)
}

func TestPlayerStatsFollowsPlayerAcrossTeams(t *testing.T) {
	topMatch := func(id, red, blue int, mineCS, enemyCS float64) *model.MatchRecord {
		return coretest.Match(id, red, blue).
			Player(model.SideRed, model.RoleTop, 0, coretest.Top(model.PeriodStat{Min10: mineCS}, model.PeriodStat{})).
			Player(model.SideBlue, model.RoleTop, 0, coretest.Top(model.PeriodStat{Min10: enemyCS}, model.PeriodStat{})).
			Build()
	}
	soloQueue := topMatch(3, 0, 0, 8, 0)
	soloQueue.Type = model.MatchTypeSoloQueue
	soloQueue.RedTeamID, soloQueue.BlueTeamID = null.Int{}, null.Int{}

	// the player tops for team A in match 1 and for team C in match 2
	switched := []*model.MatchRecord{topMatch(1, teamA, teamB, 12, 0), topMatch(2, teamC, teamB, 0, 4)}

	type testCase struct {
		name    string
		matches []*model.MatchRecord
		query   model.PlayerStatsQuery
		want    float64
	}
	testCases := []testCase{
		{name: "switched teams", matches: switched, want: 4},
		{name: "soloqueue without teams", matches: append(switched, soloQueue), want: 16.0 / 3},
		{name: "side played", matches: switched, query: model.PlayerStatsQuery{TeamSide: model.SideBlue}, want: 0},
	}

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{ReportCacheTTL: time.Minute}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := repo.NewSnapshot(&model.Snapshot{
				Players: []*model.Player{{PlayerID: playerTop, Name: "Top", SummonerName: "red-top"}},
				Matches: tc.matches,
			})
			players := NewPlayerStats(conf, src, src)

			got, err := players.Stats(context.Background(), playerTop, &tc.query)
			require.NoError(t, err)
			require.NotNil(t, got.PrimaryPlayerStats.Top)
			assert.InDelta(t, tc.want, got.PrimaryPlayerStats.Top.Laning.AvgCreepScoreDifferenceCount.Min10, 1e-9)
		})
	}
}

func TestPlayerChampions(t *testing.T) {
	_, players := newServices()

	got, err := players.Champions(context.Background(), playerTop, &model.PlayerStatsQuery{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.RoleTop, got[0].Role)
}

func TestInvalidatorRequiresMatchID(t *testing.T) {
	s := NewInvalidator()
	ctx := context.Background()

	assert.ErrorIs(t, s.MatchIngested(ctx, &model.MatchIngestedEvent{}), apierr.ErrInvalidReq)
	assert.NoError(t, s.MatchIngested(ctx, &model.MatchIngestedEvent{MatchID: 1, RedTeamID: teamA}))
	assert.NoError(t, s.Flush())
}

func TestWarm(t *testing.T) {
	teams, _ := newServices()
	ctx := context.Background()

	ids, err := teams.WarmTargets(ctx, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{teamA, teamB, teamC}, ids)

	ids, err = teams.WarmTargets(ctx, []int{teamB, teamB})
	require.NoError(t, err)
	assert.Equal(t, []int{teamB}, ids)

	assert.NoError(t, teams.Warm(ctx, teamA))
}
