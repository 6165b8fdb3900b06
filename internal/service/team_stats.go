package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"exusiai.dev/matchstats/internal/app/appconfig"
	"exusiai.dev/matchstats/internal/core/history"
	"exusiai.dev/matchstats/internal/core/pickban"
	"exusiai.dev/matchstats/internal/core/teamagg"
	"exusiai.dev/matchstats/internal/core/wardclust"
	"exusiai.dev/matchstats/internal/model"
	modelcache "exusiai.dev/matchstats/internal/model/cache"
	"exusiai.dev/matchstats/internal/pkg/apierr"
)

type TeamStats struct {
	Config    *appconfig.Config
	Matches   MatchSource
	Directory *Directory
}

func NewTeamStats(conf *appconfig.Config, matches MatchSource, directory *Directory) *TeamStats {
	return &TeamStats{
		Config:    conf,
		Matches:   matches,
		Directory: directory,
	}
}

// Cache: teamOverall#teamId|query:{teamId}:{hash}, ReportCacheTTL
func (s *TeamStats) Overall(ctx context.Context, teamID int, q *model.TeamStatsQuery) (*model.TeamOverallStatsWithRelations, error) {
	f, err := history.ForTeamStats(teamID, q)
	if err != nil {
		return nil, err
	}

	return cachedReport(ctx, modelcache.TeamOverall, "team_overall", reportKey(teamID, q), s.Config.ReportCacheTTL,
		func(ctx context.Context) (*model.TeamOverallStatsWithRelations, error) {
			var primary, compareTo []*model.MatchRecord

			eg, ectx := errgroup.WithContext(ctx)
			eg.Go(func() (err error) {
				primary, err = s.Matches.FindMatches(ectx, f)
				return err
			})
			if q.CompareToTeamID != 0 && q.VersusTeamID == 0 && q.CompareToLastNMatchCount == 0 {
				eg.Go(func() (err error) {
					compareTo, err = s.Matches.FindMatches(ectx, history.ForCompareTeam(q.CompareToTeamID, &q.TeamQueryBase))
					return err
				})
			}
			if err := eg.Wait(); err != nil {
				return nil, err
			}
			observeMatches("team_overall", len(primary))

			stats := teamagg.Relations(teamID, q, primary, compareTo)
			return &stats, nil
		})
}

// Cache: teamWards#teamId|query:{teamId}:{hash}, ReportCacheTTL
func (s *TeamStats) Wards(ctx context.Context, teamID int, q *model.TeamWardQuery) (*model.WardResponse, error) {
	if err := validateWardWindow(&q.WardOptions); err != nil {
		return nil, err
	}
	f, err := history.ForTeam(teamID, &q.TeamQueryBase)
	if err != nil {
		return nil, err
	}

	return cachedReport(ctx, modelcache.TeamWards, "team_wards", reportKey(teamID, q), s.Config.ReportCacheTTL,
		func(ctx context.Context) (*model.WardResponse, error) {
			matches, err := s.Matches.FindMatches(ctx, f)
			if err != nil {
				return nil, err
			}
			observeMatches("team_wards", len(matches))

			resp := wardclust.ForTeam(teamID, matches, wardclust.Options{WardOptions: q.WardOptions})
			return &resp, nil
		})
}

// Cache: teamChampions#teamId|query:{teamId}:{hash}, ReportCacheTTL
func (s *TeamStats) Champions(ctx context.Context, teamID int, q *model.TeamChampionsQuery) ([]model.TeamChampionStats, error) {
	f, err := history.ForTeamWide(teamID, &q.TeamQueryBase)
	if err != nil {
		return nil, err
	}

	stats, err := cachedReport(ctx, modelcache.TeamChampions, "team_champions", reportKey(teamID, q), s.Config.ReportCacheTTL,
		func(ctx context.Context) (*[]model.TeamChampionStats, error) {
			matches, err := s.Matches.FindMatches(ctx, f)
			if err != nil {
				return nil, err
			}
			observeMatches("team_champions", len(matches))

			stats := pickban.ChampionStats(teamID, matches, q)
			if stats == nil {
				stats = []model.TeamChampionStats{}
			}
			return &stats, nil
		})
	if err != nil {
		return nil, err
	}
	return *stats, nil
}

// Cache: teamHistory#teamId|query:{teamId}:{hash}, ReportCacheTTL
func (s *TeamStats) History(ctx context.Context, teamID int, q *model.TeamMatchHistoryQuery) (*model.QueryResult[model.TeamMatchHistoryStats], error) {
	f, err := history.ForTeamWide(teamID, &q.TeamQueryBase)
	if err != nil {
		return nil, err
	}

	return cachedReport(ctx, modelcache.TeamHistory, "team_history", reportKey(teamID, q), s.Config.ReportCacheTTL,
		func(ctx context.Context) (*model.QueryResult[model.TeamMatchHistoryStats], error) {
			var (
				matches []*model.MatchRecord
				names   map[int]string
			)
			eg, ectx := errgroup.WithContext(ctx)
			eg.Go(func() (err error) {
				matches, err = s.Matches.FindMatches(ectx, f)
				return err
			})
			eg.Go(func() (err error) {
				names, err = s.Directory.TeamNames(ectx)
				return err
			})
			if err := eg.Wait(); err != nil {
				return nil, err
			}
			observeMatches("team_history", len(matches))

			result := teamagg.MatchHistory(teamID, matches, names, q)
			return &result, nil
		})
}

func validateWardWindow(o *model.WardOptions) error {
	if o.StartTime != nil && o.EndTime != nil && *o.StartTime > *o.EndTime {
		return apierr.ErrInvalidReq.Msg("startTime must not be after endTime")
	}
	return nil
}
