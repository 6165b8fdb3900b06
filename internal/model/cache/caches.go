package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/pkg/cache"
)

type Flusher func() error

// Team reports are keyed "<teamId>:<query hash>" and player reports
// "<playerId>:<query hash>" so that they can be dropped per team.
var (
	TeamOverall   = cache.NewSet[model.TeamOverallStatsWithRelations]("teamOverall#teamId|query")
	TeamWards     = cache.NewSet[model.WardResponse]("teamWards#teamId|query")
	TeamChampions = cache.NewSet[[]model.TeamChampionStats]("teamChampions#teamId|query")
	TeamHistory   = cache.NewSet[model.QueryResult[model.TeamMatchHistoryStats]]("teamHistory#teamId|query")

	PlayerStats     = cache.NewSet[model.PlayerComparableStats]("playerStats#playerId|query")
	PlayerWards     = cache.NewSet[model.WardResponse]("playerWards#playerId|query")
	PlayerChampions = cache.NewSet[[]model.PlayerChampionStats]("playerChampions#playerId|query")

	TeamNames = cache.NewSingular[map[int]string]("teamNames")

	SetMap = map[string]Flusher{
		"teamOverall#teamId|query":       TeamOverall.Flush,
		"teamWards#teamId|query":         TeamWards.Flush,
		"teamChampions#teamId|query":     TeamChampions.Flush,
		"teamHistory#teamId|query":       TeamHistory.Flush,
		"playerStats#playerId|query":     PlayerStats.Flush,
		"playerWards#playerId|query":     PlayerWards.Flush,
		"playerChampions#playerId|query": PlayerChampions.Flush,
	}
	SingularFlusherMap = map[string]Flusher{
		"teamNames": TeamNames.Delete,
	}

	// teamScoped reports only read matches their own team played
	teamScoped = []interface {
		DeleteMatching(ctx context.Context, sub string) (int, error)
	}{TeamWards, TeamChampions, TeamHistory}

	// crossTeam reports may read matches of teams other than the one in their key:
	// team overviews compared to another team and every player report.
	crossTeam = []string{
		"teamOverall#teamId|query",
		"playerStats#playerId|query",
		"playerWards#playerId|query",
		"playerChampions#playerId|query",
	}
)

// Initialize binds the report caches to client. Without it every lookup misses and
// reports are computed on each call.
func Initialize(client *redis.Client) {
	cache.Initialize(client)
}

// Delete flushes the cache registered under name. Unknown names are ignored.
func Delete(name string) error {
	if f, ok := SingularFlusherMap[name]; ok {
		return f()
	}
	if f, ok := SetMap[name]; ok {
		return f()
	}
	return nil
}

// InvalidateTeams drops the team scoped reports of teamIDs and every report that may
// have read their matches through another id.
func InvalidateTeams(ctx context.Context, teamIDs ...int) error {
	var deleted int
	for _, id := range teamIDs {
		for _, s := range teamScoped {
			n, err := s.DeleteMatching(ctx, strconv.Itoa(id)+":")
			if err != nil {
				return err
			}
			deleted += n
		}
	}
	for _, name := range crossTeam {
		if err := SetMap[name](); err != nil {
			return err
		}
	}

	log.Debug().
		Str("evt.name", "cache.invalidate").
		Ints("teams", teamIDs).
		Int("deleted", deleted).
		Msg("invalidated team reports")
	return nil
}
