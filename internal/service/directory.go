package service

import (
	"context"
	"time"

	"github.com/ahmetb/go-linq/v3"

	"exusiai.dev/matchstats/internal/model"
	modelcache "exusiai.dev/matchstats/internal/model/cache"
)

const teamNamesTTL = time.Hour

type Directory struct {
	Teams   TeamDirectory
	Players PlayerDirectory
}

func NewDirectory(teams TeamDirectory, players PlayerDirectory) *Directory {
	return &Directory{
		Teams:   teams,
		Players: players,
	}
}

func (s *Directory) GetTeam(ctx context.Context, id int) (*model.Team, error) {
	return s.Teams.GetTeamByID(ctx, id)
}

func (s *Directory) GetRegionTeams(ctx context.Context, regionID int) ([]*model.Team, error) {
	return s.Teams.GetTeamsByRegion(ctx, regionID)
}

func (s *Directory) GetPlayer(ctx context.Context, id int) (*model.Player, error) {
	return s.Players.GetPlayerByID(ctx, id)
}

// Cache: (singular) teamNames, 1 hr
func (s *Directory) TeamNames(ctx context.Context) (map[int]string, error) {
	return modelcache.TeamNames.MutexGetSet(func() (map[int]string, error) {
		teams, err := s.Teams.GetTeams(ctx)
		if err != nil {
			return nil, err
		}
		names := make(map[int]string, len(teams))
		linq.From(teams).
			ToMapByT(&names,
				func(t *model.Team) int { return t.TeamID },
				func(t *model.Team) string { return t.Name },
			)
		return names, nil
	}, teamNamesTTL)
}
