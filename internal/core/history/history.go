// Package history turns report queries into match filters and applies them to
// in-memory match lists.
package history

import (
	"sort"

	"github.com/samber/lo"

	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/pkg/apierr"
)

const (
	// DefaultLimit bounds every report that does not ask for a longer history.
	DefaultLimit = 15
	// CompareLimit bounds the primary list of a team report compared against its own past.
	CompareLimit = 30
	// WideLimit bounds the listing reports (champions, match history) that look past
	// the recent form of a team.
	WideLimit = 200
)

// ForTeam builds the primary filter for a team report.
func ForTeam(teamID int, q *model.TeamQueryBase) (*model.MatchFilter, error) {
	f := &model.MatchFilter{
		Start:   q.DateRange.StartTime(),
		End:     q.DateRange.EndTime(),
		PatchID: q.PatchID,
		TeamID:  teamID,
		Limit:   DefaultLimit,
	}
	if q.GameType != 0 {
		f.Types = []model.MatchType{q.GameType}
	}
	if q.MaxItemCount > 0 {
		f.Limit = q.MaxItemCount
	}
	if err := orient(f, q.TeamSide, q.VersusTeamID); err != nil {
		return nil, err
	}
	return f, nil
}

// ForTeamStats is ForTeam with the longer bound used when the report compares
// the team against its own recent history.
func ForTeamStats(teamID int, q *model.TeamStatsQuery) (*model.MatchFilter, error) {
	if q.CompareToTeamID != 0 && q.CompareToTeamID == teamID {
		return nil, apierr.ErrInvalidReq.Msg("compareToTeamId must differ from the team being reported")
	}
	f, err := ForTeam(teamID, &q.TeamQueryBase)
	if err != nil {
		return nil, err
	}
	if q.CompareToLastNMatchCount > 0 {
		f.Limit = CompareLimit
	}
	return f, nil
}

// ForTeamWide is ForTeam for listing reports: without an explicit maxItemCount it
// reaches back WideLimit matches instead of DefaultLimit.
func ForTeamWide(teamID int, q *model.TeamQueryBase) (*model.MatchFilter, error) {
	f, err := ForTeam(teamID, q)
	if err != nil {
		return nil, err
	}
	if q.MaxItemCount == 0 {
		f.Limit = WideLimit
	}
	return f, nil
}

// ForCompareTeam selects the competitive history of the team a report is compared against.
func ForCompareTeam(teamID int, q *model.TeamQueryBase) *model.MatchFilter {
	return &model.MatchFilter{
		Start:   q.DateRange.StartTime(),
		End:     q.DateRange.EndTime(),
		PatchID: q.PatchID,
		Types:   []model.MatchType{model.MatchTypeCompetitive},
		TeamID:  teamID,
		Limit:   DefaultLimit,
	}
}

// ForLastN selects the n most recent matches of a team regardless of type.
func ForLastN(teamID, n int) *model.MatchFilter {
	return &model.MatchFilter{TeamID: teamID, Limit: n}
}

// ForPlayer builds the filter of a player report once the player's participations
// have been resolved. matchIDs is the allow-list of matches the player took part in.
// teamID is zero unless the report is restricted to meeting versusTeamID, in which
// case it is the team the player is met with.
func ForPlayer(teamID int, matchIDs []int, versusTeamID int, q *model.PlayerStatsQuery) (*model.MatchFilter, error) {
	f := &model.MatchFilter{
		Start:    q.DateRange.StartTime(),
		End:      q.DateRange.EndTime(),
		PatchID:  q.PatchID,
		RegionID: q.RegionID,
		TeamID:   teamID,
		MatchIDs: matchIDs,
		Limit:    DefaultLimit,
	}
	if matchIDs == nil {
		f.MatchIDs = []int{}
	}
	if q.GameType != 0 {
		f.Types = []model.MatchType{q.GameType}
	}
	if q.CompareToLastNMatchCount > 0 {
		f.Limit = q.CompareToLastNMatchCount
	}
	if err := orient(f, q.TeamSide, versusTeamID); err != nil {
		return nil, err
	}
	return f, nil
}

// ForPlayerChampions selects every match of the allow-list satisfying the date, type,
// patch and region criteria of q, without a limit.
func ForPlayerChampions(matchIDs []int, q *model.PlayerStatsQuery) *model.MatchFilter {
	f := &model.MatchFilter{
		Start:    q.DateRange.StartTime(),
		End:      q.DateRange.EndTime(),
		PatchID:  q.PatchID,
		RegionID: q.RegionID,
		MatchIDs: matchIDs,
	}
	if matchIDs == nil {
		f.MatchIDs = []int{}
	}
	if q.GameType != 0 {
		f.Types = []model.MatchType{q.GameType}
	}
	return f
}

func orient(f *model.MatchFilter, side model.Side, versusTeamID int) error {
	if side != model.SideUnspecified && !side.Valid() {
		return apierr.ErrInvalidReq.Msg("teamSide must be 1 (red) or 2 (blue), got %d", side)
	}
	if versusTeamID != 0 && versusTeamID == f.TeamID {
		return apierr.ErrInvalidReq.Msg("versus team must differ from the focal team")
	}
	f.Side = side
	f.VersusTeamID = versusTeamID
	return nil
}

// SideOf resolves which side teamID played in m.
func SideOf(m *model.MatchRecord, teamID int) (model.Side, bool) {
	return m.SideOf(teamID)
}

// Matches reports whether m satisfies every criterion of f.
func Matches(f *model.MatchFilter, m *model.MatchRecord) bool {
	if m == nil {
		return false
	}
	if f.Start != nil && m.StartTime.Before(*f.Start) {
		return false
	}
	if f.End != nil && m.StartTime.After(*f.End) {
		return false
	}
	if len(f.Types) > 0 && !lo.Contains(f.Types, m.Type) {
		return false
	}
	if f.PatchID != 0 && m.PatchID != f.PatchID {
		return false
	}
	if f.RegionID != 0 && m.RegionID != f.RegionID {
		return false
	}
	if f.MatchIDs != nil && !lo.Contains(f.MatchIDs, m.MatchID) {
		return false
	}
	if f.TeamID == 0 {
		return true
	}

	side, ok := m.SideOf(f.TeamID)
	if !ok {
		return false
	}
	if f.Side != model.SideUnspecified && side != f.Side {
		return false
	}
	if f.VersusTeamID != 0 {
		versus := m.TeamIDOn(side.Opposite())
		if !versus.Valid || int(versus.Int64) != f.VersusTeamID {
			return false
		}
	}
	return true
}

// Select applies f to matches, orders the survivors by start time (most recent first)
// and truncates them to the filter's limit. The input slice is left untouched.
func Select(f *model.MatchFilter, matches []*model.MatchRecord) []*model.MatchRecord {
	selected := make([]*model.MatchRecord, 0, len(matches))
	for _, m := range matches {
		if Matches(f, m) {
			selected = append(selected, m)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].StartTime.After(selected[j].StartTime)
	})
	if f.Limit > 0 && len(selected) > f.Limit {
		selected = selected[:f.Limit]
	}
	return selected
}
