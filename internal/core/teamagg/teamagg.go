// Package teamagg composes the team level reports out of the individual reducers.
package teamagg

import (
	"exusiai.dev/matchstats/internal/core/objective"
	"exusiai.dev/matchstats/internal/core/pickban"
	"exusiai.dev/matchstats/internal/model"
)

// Overall builds the overview report of teamID over matches.
func Overall(teamID int, matches []*model.MatchRecord) model.TeamOverallStats {
	blind, counter := pickban.Picks(teamID, matches)
	champions := pickban.Champions(teamID, matches)
	plates := objective.TurretPlates(teamID, matches)

	return model.TeamOverallStats{
		GameCount:                      len(matches),
		BlindPicks:                     blind,
		CounterPicks:                   counter,
		MostPickedChampionStats:        champions.MostPicked,
		MostBannedByChampionStats:      champions.MostBannedBy,
		MostBannedAgainstChampionStats: champions.MostBannedAgainst,
		LoseToChampionStats:            champions.LoseTo,
		MostPickedRolesByOrder:         pickban.PickOrders(teamID, matches),
		FirstDragonData:                objective.FirstObjectives(teamID, matches),
		ElementalDragonsInfo:           objective.ElementalDragons(teamID, matches),
		LaneInteractionInfo:            objective.LaneInteraction(teamID, matches),
		AveragePlates:                  objective.AveragePlates(&plates),
		TurretPlatesTakenInfo:          plates,
		LaningInfo:                     objective.LaningInfo(teamID, matches),
	}
}

// Relations builds the overview of teamID over primary together with its secondary
// report, chosen in this order:
//   - versusTeamId: the versus team over the same matches;
//   - compareToLastNMatchCount: the team over the matches older than the most recent n,
//     with the primary restricted to those n;
//   - compareToTeamId: the compared team over compareTo.
func Relations(teamID int, q *model.TeamStatsQuery, primary, compareTo []*model.MatchRecord) model.TeamOverallStatsWithRelations {
	var out model.TeamOverallStatsWithRelations

	switch {
	case q.VersusTeamID != 0:
		out.PrimaryOverallStats = Overall(teamID, primary)
		secondary := Overall(q.VersusTeamID, primary)
		out.SecondaryOverallStats = &secondary
	case q.CompareToLastNMatchCount > 0:
		n := q.CompareToLastNMatchCount
		if n > len(primary) {
			n = len(primary)
		}
		out.PrimaryOverallStats = Overall(teamID, primary[:n])
		secondary := Overall(teamID, primary[n:])
		out.SecondaryOverallStats = &secondary
	case q.CompareToTeamID != 0:
		out.PrimaryOverallStats = Overall(teamID, primary)
		secondary := Overall(q.CompareToTeamID, compareTo)
		out.SecondaryOverallStats = &secondary
	default:
		out.PrimaryOverallStats = Overall(teamID, primary)
	}
	return out
}
