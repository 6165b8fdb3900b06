package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerMatchInfoDecodesBranchByRole(t *testing.T) {
	raw := `{
		"summonerIdentity": {"id": "s1", "name": "T1 Faker", "internalName": "faker"},
		"championId": 61,
		"role": 2,
		"stats": {
			"top": {"laning": {"avgCreepScoreDifferenceCount": {"min10": 99, "min15": 99}}},
			"middle": {
				"general": {"avgKillCount": 4, "avgSoloKillCount": {"min10": 1, "min15": 2, "total": 3}},
				"laning": {"avgCreepScoreDifferenceCount": {"min10": 12, "min15": 18, "min20": 20}}
			}
		}
	}`

	var p PlayerMatchInfo
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, RoleMiddle, p.Role)
	assert.Equal(t, 61, p.ChampionID)

	mid, ok := p.Middle()
	require.True(t, ok)
	assert.Equal(t, 4.0, mid.General.AvgKillCount)
	assert.Equal(t, 12.0, mid.Laning.AvgCreepScoreDifferenceCount.Min10)
	assert.True(t, mid.Laning.AvgCreepScoreDifferenceCount.Min20.Valid)
	assert.False(t, mid.Laning.AvgCreepScoreDifferenceCount.Min30.Valid)

	_, ok = p.Top()
	assert.False(t, ok, "branches of other roles are ignored")

	assert.Equal(t, 3.0, p.General().AvgSoloKillCount.Total.ValueOrZero())
}

func TestPlayerMatchInfoWithoutStats(t *testing.T) {
	var p PlayerMatchInfo
	require.NoError(t, json.Unmarshal([]byte(`{"championId": 1, "role": 5}`), &p))

	_, ok := p.Support()
	assert.False(t, ok)
	assert.Equal(t, GeneralStats{}, p.General())
	assert.Equal(t, LaningStats{}, p.Laning())
}

func TestPlayerMatchInfoRoundTrip(t *testing.T) {
	in := PlayerMatchInfo{
		ChampionID: 412,
		Role:       RoleSupport,
		Stats: &SupportStats{
			SupportItems: []SupportItemStats{{ItemID: 3853, AvgTotalGoldDiffPre15: 120}},
		},
	}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"support":`)

	var out PlayerMatchInfo
	require.NoError(t, json.Unmarshal(b, &out))
	sup, ok := out.Support()
	require.True(t, ok)
	assert.Equal(t, 3853, sup.SupportItems[0].ItemID)
}

func TestPeriodStatDivByZero(t *testing.T) {
	p := PeriodStat{Min10: 3}.Div(0)
	assert.Equal(t, 0.0, p.Min10)
	assert.True(t, p.Total.Valid)
	assert.Equal(t, 0.0, p.Total.Float64)
}

func TestPlayerWardName(t *testing.T) {
	assert.Equal(t, "Faker", (&Player{SummonerName: "T1 Faker"}).WardName())
	assert.Equal(t, "Faker", (&Player{SummonerName: "Faker"}).WardName())
}
