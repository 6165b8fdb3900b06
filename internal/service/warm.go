package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"exusiai.dev/matchstats/internal/model"
)

// WarmTargets resolves the teams whose default reports are kept warm: ids when given,
// every active team otherwise.
func (s *TeamStats) WarmTargets(ctx context.Context, ids []int) ([]int, error) {
	if len(ids) > 0 {
		return lo.Uniq(ids), nil
	}
	teams, err := s.Directory.Teams.GetTeams(ctx)
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(teams, func(t *model.Team, _ int) (int, bool) {
		return t.TeamID, t.IsActive
	}), nil
}

// Warm computes the reports a team page opens with, so that they are served from cache.
func (s *TeamStats) Warm(ctx context.Context, teamID int) error {
	if _, err := s.Overall(ctx, teamID, &model.TeamStatsQuery{}); err != nil {
		return errors.Wrapf(err, "warm overall of team %d", teamID)
	}
	if _, err := s.Champions(ctx, teamID, &model.TeamChampionsQuery{}); err != nil {
		return errors.Wrapf(err, "warm champions of team %d", teamID)
	}
	if _, err := s.History(ctx, teamID, &model.TeamMatchHistoryQuery{}); err != nil {
		return errors.Wrapf(err, "warm history of team %d", teamID)
	}
	return nil
}
