package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/pkg/apierr"
)

var base = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

func match(id, red, blue int, minutesAgo int) *model.MatchRecord {
	return &model.MatchRecord{
		MatchID:    id,
		Type:       model.MatchTypeCompetitive,
		RedTeamID:  null.IntFrom(int64(red)),
		BlueTeamID: null.IntFrom(int64(blue)),
		StartTime:  base.Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

func ids(ms []*model.MatchRecord) []int {
	out := make([]int, len(ms))
	for i, m := range ms {
		out[i] = m.MatchID
	}
	return out
}

func TestOrientation(t *testing.T) {
	matches := []*model.MatchRecord{
		match(1, 10, 20, 5),
		match(2, 20, 10, 4),
		match(3, 10, 30, 3),
		match(4, 30, 10, 2),
		match(5, 20, 30, 1),
	}

	type testCase struct {
		name   string
		query  model.TeamQueryBase
		expect []int
	}

	testCases := []testCase{
		{"any side", model.TeamQueryBase{}, []int{4, 3, 2, 1}},
		{"red only", model.TeamQueryBase{TeamSide: model.SideRed}, []int{3, 1}},
		{"blue only", model.TeamQueryBase{TeamSide: model.SideBlue}, []int{4, 2}},
		{"versus either orientation", model.TeamQueryBase{VersusTeamID: 20}, []int{2, 1}},
		{"versus with side", model.TeamQueryBase{VersusTeamID: 30, TeamSide: model.SideBlue}, []int{4}},
		{"versus with side red", model.TeamQueryBase{VersusTeamID: 20, TeamSide: model.SideRed}, []int{1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := ForTeam(10, &tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, ids(Select(f, matches)))
		})
	}
}

func TestInvalidFilters(t *testing.T) {
	_, err := ForTeam(10, &model.TeamQueryBase{TeamSide: 3})
	var pe *apierr.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, apierr.CodeInvalidRequest, pe.ErrorCode)

	_, err = ForTeam(10, &model.TeamQueryBase{VersusTeamID: 10})
	require.ErrorAs(t, err, &pe)

	_, err = ForTeamStats(10, &model.TeamStatsQuery{CompareToTeamID: 10})
	require.ErrorAs(t, err, &pe)
}

func TestSelectBoundsAndOrders(t *testing.T) {
	var matches []*model.MatchRecord
	for i := 1; i <= 20; i++ {
		// ids grow with recency
		matches = append(matches, match(i, 10, 20, 100-i))
	}

	f, err := ForTeam(10, &model.TeamQueryBase{})
	require.NoError(t, err)
	got := Select(f, matches)
	require.Len(t, got, DefaultLimit)
	assert.Equal(t, 20, got[0].MatchID)
	assert.Equal(t, 6, got[len(got)-1].MatchID)
	assert.Equal(t, 1, matches[0].MatchID, "input order untouched")

	f, err = ForTeamStats(10, &model.TeamStatsQuery{CompareToLastNMatchCount: 5})
	require.NoError(t, err)
	assert.Equal(t, CompareLimit, f.Limit)
	assert.Len(t, Select(f, matches), 20)
}

func TestSelectEmpty(t *testing.T) {
	f, err := ForTeam(10, &model.TeamQueryBase{})
	require.NoError(t, err)
	got := Select(f, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAllCriteriaApply(t *testing.T) {
	m := match(1, 10, 20, 0)
	m.PatchID = 1314
	m.Type = model.MatchTypeScrim

	q := model.TeamQueryBase{
		DateRange: model.DateRange{Start: base.Add(-time.Hour).UnixMilli()},
		GameType:  model.MatchTypeScrim,
		PatchID:   1314,
	}
	f, err := ForTeam(10, &q)
	require.NoError(t, err)
	assert.True(t, Matches(f, m))

	q.PatchID = 1315
	f, _ = ForTeam(10, &q)
	assert.False(t, Matches(f, m), "patch is applied together with date and type")

	q.PatchID = 1314
	q.GameType = model.MatchTypeCompetitive
	f, _ = ForTeam(10, &q)
	assert.False(t, Matches(f, m), "type is applied together with date")
}

func TestPlayerAllowList(t *testing.T) {
	matches := []*model.MatchRecord{match(1, 10, 20, 3), match(2, 10, 20, 2), match(3, 10, 20, 1)}

	f, err := ForPlayer(10, []int{1, 3}, 0, &model.PlayerStatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, ids(Select(f, matches)))

	f, err = ForPlayer(10, nil, 0, &model.PlayerStatsQuery{})
	require.NoError(t, err)
	assert.Empty(t, Select(f, matches), "no participations means no matches")

	// a player who switched from team 10 to team 30, and a soloqueue game without teams
	soloQueue := match(4, 0, 0, 0)
	soloQueue.RedTeamID, soloQueue.BlueTeamID = null.Int{}, null.Int{}
	switched := []*model.MatchRecord{match(1, 10, 20, 3), match(2, 30, 20, 2), soloQueue}

	f, err = ForPlayer(0, []int{1, 2, 4}, 0, &model.PlayerStatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 1}, ids(Select(f, switched)))
}

func TestWideAndChampionFilters(t *testing.T) {
	f, err := ForTeamWide(10, &model.TeamQueryBase{})
	require.NoError(t, err)
	assert.Equal(t, WideLimit, f.Limit)

	f, err = ForTeamWide(10, &model.TeamQueryBase{MaxItemCount: 40})
	require.NoError(t, err)
	assert.Equal(t, 40, f.Limit)

	_, err = ForTeamWide(10, &model.TeamQueryBase{VersusTeamID: 10})
	assert.ErrorIs(t, err, apierr.ErrInvalidReq)

	matches := []*model.MatchRecord{match(1, 10, 20, 3), match(2, 10, 30, 2), match(3, 30, 20, 1)}
	pf := ForPlayerChampions([]int{1, 3}, &model.PlayerStatsQuery{})
	assert.Equal(t, 0, pf.Limit)
	assert.Equal(t, []int{3, 1}, ids(Select(pf, matches)))

	assert.Empty(t, Select(ForPlayerChampions(nil, &model.PlayerStatsQuery{}), matches))
}
