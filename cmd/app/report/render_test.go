package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/matchstats/internal/model"
)

func TestChampionList(t *testing.T) {
	type testCase struct {
		name  string
		stats []model.ChampionStats
		n     int
		want  string
	}

	testCases := []testCase{
		{name: "empty", stats: nil, n: 5, want: "-"},
		{
			name:  "single",
			stats: []model.ChampionStats{{ChampionID: 17, Percent: 50}},
			n:     5,
			want:  "17 (50.0%)",
		},
		{
			name: "truncated",
			stats: []model.ChampionStats{
				{ChampionID: 1, Percent: 40},
				{ChampionID: 2, Percent: 30},
				{ChampionID: 3, Percent: 30},
			},
			n:    2,
			want: "1 (40.0%), 2 (30.0%)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, championList(tc.stats, tc.n))
		})
	}
}

func TestPrintTeamOverall(t *testing.T) {
	var buf bytes.Buffer
	err := printTeamOverall(&buf, &model.TeamOverallStats{
		GameCount:               12,
		MostPickedChampionStats: []model.ChampionStats{{ChampionID: 99, Percent: 25}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "most picked")
	assert.Contains(t, out, "99 (25.0%)")
	assert.Contains(t, out, "12")
}

func TestPrintTeamHistoryFooter(t *testing.T) {
	var buf bytes.Buffer
	err := printTeamHistory(&buf, &model.QueryResult[model.TeamMatchHistoryStats]{
		Items: []model.TeamMatchHistoryStats{{GameUID: "G-1", EnemyTeamID: 7, GameTeamSide: model.SideBlue}},
		Total: 3,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "G-1")
	assert.Contains(t, out, "blue")
	assert.Contains(t, out, "1 of 3 matches")
}

func TestPrintPlayerStatsIsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPlayerStats(&buf, &model.PlayerComparableStats{}))
	assert.Contains(t, buf.String(), `"primaryPlayerStats"`)
	assert.NotContains(t, buf.String(), "secondaryPlayerStats")
}
