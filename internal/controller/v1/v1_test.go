package v1

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/trace"

	"exusiai.dev/matchstats/internal/app/appconfig"
	"exusiai.dev/matchstats/internal/core/coretest"
	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/repo"
	"exusiai.dev/matchstats/internal/server/httpserver"
	"exusiai.dev/matchstats/internal/server/svr"
	"exusiai.dev/matchstats/internal/service"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()

	var matches []*model.MatchRecord
	for id := 1; id <= 20; id++ {
		red, blue := 1, 2
		if id%2 == 0 {
			red, blue = 2, 1
		}
		matches = append(matches, coretest.Match(id, red, blue).FullRoster().Winner(model.SideRed).Build())
	}
	src := repo.NewSnapshot(&model.Snapshot{
		Teams: []*model.Team{
			{TeamID: 1, Name: "Zulu", RegionID: 1, IsActive: true},
			{TeamID: 2, Name: "Alpha", RegionID: 1, IsActive: true},
			{TeamID: 3, Name: "Retired", RegionID: 1},
		},
		Players: []*model.Player{
			{PlayerID: 10, Name: "Top", SummonerName: "red-top"},
		},
		Matches: matches,
	})

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		DevMode:        true,
		ReportCacheTTL: time.Minute,
	}}
	directory := service.NewDirectory(src, src)

	app := httpserver.Create(conf, trace.NewNoopTracerProvider(), nil)
	v1, _ := svr.CreateEndpointGroups(app)
	RegisterTeam(v1, Team{
		TeamStatsService: service.NewTeamStats(conf, src, directory),
		DirectoryService: directory,
	})
	RegisterPlayer(v1, Player{
		PlayerStatsService: service.NewPlayerStats(conf, src, src),
		DirectoryService:   directory,
	})
	RegisterRegion(v1, Region{DirectoryService: directory})
	return app
}

func get(t *testing.T, app *fiber.App, url string) (int, gjson.Result) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, url, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, gjson.ParseBytes(body)
}

func TestRoutes(t *testing.T) {
	app := newApp(t)

	type testCase struct {
		name   string
		url    string
		status int
		check  func(t *testing.T, body gjson.Result)
	}
	testCases := []testCase{
		{
			name:   "team stats",
			url:    "/api/v1/teams/1/stats",
			status: fiber.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				assert.Equal(t, int64(15), body.Get("primaryOverallStats.gameCount").Int())
				assert.False(t, body.Get("secondaryOverallStats").Exists())
			},
		},
		{
			name:   "team stats versus",
			url:    "/api/v1/teams/1/stats?versusTeamId=2&teamSide=1",
			status: fiber.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				assert.Equal(t, int64(10), body.Get("primaryOverallStats.gameCount").Int())
				assert.Equal(t, int64(10), body.Get("secondaryOverallStats.gameCount").Int())
			},
		},
		{
			name:   "malformed team id",
			url:    "/api/v1/teams/abc/stats",
			status: fiber.StatusBadRequest,
			check: func(t *testing.T, body gjson.Result) {
				assert.Equal(t, "INVALID_REQUEST", body.Get("code").String())
			},
		},
		{
			name:   "invalid side",
			url:    "/api/v1/teams/1/stats?teamSide=3",
			status: fiber.StatusBadRequest,
			check: func(t *testing.T, body gjson.Result) {
				assert.Equal(t, "side", body.Get("violations.0.violation").String())
			},
		},
		{
			name:   "compare to self",
			url:    "/api/v1/teams/1/stats?compareToTeamId=1",
			status: fiber.StatusBadRequest,
		},
		{
			name:   "inverted ward window",
			url:    "/api/v1/teams/1/wards?startTime=600&endTime=300",
			status: fiber.StatusBadRequest,
		},
		{
			name:   "team history page",
			url:    "/api/v1/teams/2/history?pageSize=5&page=1",
			status: fiber.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				assert.Equal(t, int64(20), body.Get("total").Int())
				assert.Len(t, body.Get("items").Array(), 5)
				assert.Equal(t, "Zulu", body.Get("items.0.enemyTeamName").String())
			},
		},
		{
			name:   "team champions",
			url:    "/api/v1/teams/1/champions",
			status: fiber.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				assert.True(t, body.IsArray())
			},
		},
		{
			name:   "unknown team",
			url:    "/api/v1/teams/404",
			status: fiber.StatusNotFound,
			check: func(t *testing.T, body gjson.Result) {
				assert.Equal(t, "NOT_FOUND", body.Get("code").String())
			},
		},
		{
			name:   "player profile",
			url:    "/api/v1/players/10",
			status: fiber.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				assert.Equal(t, "red-top", body.Get("summonerName").String())
			},
		},
		{
			name:   "player champions",
			url:    "/api/v1/players/10/champions",
			status: fiber.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				assert.Len(t, body.Array(), 1)
			},
		},
		{
			name:   "player stats",
			url:    "/api/v1/players/10/stats",
			status: fiber.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				assert.True(t, body.Get("primaryPlayerStats.top").Exists())
			},
		},
		{
			name:   "region teams",
			url:    "/api/v1/regions/1/teams",
			status: fiber.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				names := body.Get("#.name").Array()
				require.Len(t, names, 2)
				assert.Equal(t, "Alpha", names[0].String())
				assert.Equal(t, "Zulu", names[1].String())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := get(t, app, tc.url)
			assert.Equal(t, tc.status, status, body.Raw)
			if tc.check != nil {
				tc.check(t, body)
			}
		})
	}
}
