package repo

import (
	"context"
	"io"
	"os"
	"sort"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"exusiai.dev/matchstats/internal/core/history"
	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/pkg/apierr"
)

// Snapshot serves matches and directory entries from an in-memory dump. It
// answers the same queries as Match, Team and Player.
type Snapshot struct {
	teams          []*model.Team
	teamByID       map[int]*model.Team
	playerByID     map[int]*model.Player
	matches        []*model.MatchRecord
	participations map[int][]*model.MatchParticipation
}

func OpenSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open snapshot")
	}
	defer f.Close()

	return LoadSnapshot(f)
}

func LoadSnapshot(r io.Reader) (*Snapshot, error) {
	var dump model.Snapshot
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, errors.Wrap(err, "decode snapshot")
	}
	return NewSnapshot(&dump), nil
}

func NewSnapshot(dump *model.Snapshot) *Snapshot {
	s := &Snapshot{
		teams:      dump.Teams,
		teamByID:   lo.KeyBy(dump.Teams, func(t *model.Team) int { return t.TeamID }),
		playerByID: lo.KeyBy(dump.Players, func(p *model.Player) int { return p.PlayerID }),
		matches:    dump.Matches,
	}

	participations := dump.Participations
	if len(participations) == 0 {
		participations = deriveParticipations(dump.Players, dump.Matches)
	}
	start := make(map[int]int64, len(dump.Matches))
	for _, m := range dump.Matches {
		start[m.MatchID] = m.StartTime.UnixNano()
	}
	sort.SliceStable(participations, func(i, j int) bool {
		return start[participations[i].MatchID] < start[participations[j].MatchID]
	})
	s.participations = lo.GroupBy(participations, func(mp *model.MatchParticipation) int { return mp.PlayerID })
	return s
}

func deriveParticipations(players []*model.Player, matches []*model.MatchRecord) []*model.MatchParticipation {
	bySummoner := lo.KeyBy(players, func(p *model.Player) string { return p.SummonerName })

	var out []*model.MatchParticipation
	for _, m := range matches {
		for _, side := range []model.Side{model.SideRed, model.SideBlue} {
			info := m.Info(side)
			if info == nil {
				continue
			}
			for i := range info.Players {
				mp := &info.Players[i]
				p, ok := bySummoner[mp.SummonerIdentity.Name]
				if !ok {
					continue
				}
				out = append(out, &model.MatchParticipation{
					MatchID:    m.MatchID,
					PlayerID:   p.PlayerID,
					TeamID:     m.TeamIDOn(side),
					TeamSide:   side,
					Role:       mp.Role,
					ChampionID: mp.ChampionID,
					SummonerID: mp.SummonerIdentity.ID,
				})
			}
		}
	}
	return out
}

func (s *Snapshot) FindMatches(_ context.Context, f *model.MatchFilter) ([]*model.MatchRecord, error) {
	return history.Select(f, s.matches), nil
}

func (s *Snapshot) GetMatchByID(_ context.Context, id int) (*model.MatchRecord, error) {
	m, ok := lo.Find(s.matches, func(m *model.MatchRecord) bool { return m.MatchID == id })
	if !ok {
		return nil, apierr.ErrNotFound
	}
	return m, nil
}

func (s *Snapshot) GetTeams(context.Context) ([]*model.Team, error) {
	return s.teams, nil
}

func (s *Snapshot) GetTeamByID(_ context.Context, id int) (*model.Team, error) {
	t, ok := s.teamByID[id]
	if !ok {
		return nil, apierr.ErrNotFound
	}
	return t, nil
}

func (s *Snapshot) GetPlayerByID(_ context.Context, id int) (*model.Player, error) {
	p, ok := s.playerByID[id]
	if !ok {
		return nil, apierr.ErrNotFound
	}
	return p, nil
}

func (s *Snapshot) GetParticipations(_ context.Context, playerID, championID int) ([]*model.MatchParticipation, error) {
	all := s.participations[playerID]
	if championID == 0 {
		return all, nil
	}
	return lo.Filter(all, func(mp *model.MatchParticipation, _ int) bool {
		return mp.ChampionID == championID
	}), nil
}

func (s *Snapshot) GetTeamsByRegion(_ context.Context, regionID int) ([]*model.Team, error) {
	teams := lo.Filter(s.teams, func(t *model.Team, _ int) bool {
		return t.RegionID == regionID && t.IsActive
	})
	sort.SliceStable(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}
