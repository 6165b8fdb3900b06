package cache

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossTeamReportsAreFlushedOnIngest(t *testing.T) {
	type testCase struct {
		name      string
		crossTeam bool
	}
	testCases := []testCase{
		{name: "teamOverall#teamId|query", crossTeam: true},
		{name: "playerStats#playerId|query", crossTeam: true},
		{name: "playerWards#playerId|query", crossTeam: true},
		{name: "playerChampions#playerId|query", crossTeam: true},
		{name: "teamWards#teamId|query"},
		{name: "teamChampions#teamId|query"},
		{name: "teamHistory#teamId|query"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Contains(t, SetMap, tc.name)
			assert.Equal(t, tc.crossTeam, lo.Contains(crossTeam, tc.name))
		})
	}
	assert.Len(t, teamScoped, 3)
}

func TestInvalidateTeamsWithoutClient(t *testing.T) {
	assert.NoError(t, InvalidateTeams(context.Background(), 1, 2))
	assert.NoError(t, Delete("teamOverall#teamId|query"))
	assert.NoError(t, Delete("unknown"))
}
