// Package objective aggregates the map objectives a team secured: first objectives,
// elemental dragons, ganks, turret plates and laning phase numbers.
//
// Every aggregate divides by the number of matches passed in. Matches the team did
// not play contribute nothing but still count.
package objective

import (
	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/util"
)

// mine yields the focal team's telemetry of every match it played.
func mine(teamID int, matches []*model.MatchRecord, fn func(v model.TeamView)) {
	for _, m := range matches {
		v, ok := m.ViewOf(teamID)
		if !ok || v.Mine == nil {
			continue
		}
		fn(v)
	}
}

type firstCounter struct {
	successes int
	time      float64
}

func (c *firstCounter) add(e *model.ObjectiveEvent) {
	if e == nil || !e.IsSuccess {
		return
	}
	c.successes++
	c.time += e.Time
}

func (c *firstCounter) info(matches int) model.ObjectiveSuccessInfo {
	return model.ObjectiveSuccessInfo{
		SuccessPercent: util.RoundPercent(float64(c.successes), float64(matches)),
		AverageTime:    util.SafeDiv(c.time, float64(c.successes)),
	}
}

// FirstObjectives reports how often teamID took the first dragon, herald and baron,
// and the average time it took them at.
func FirstObjectives(teamID int, matches []*model.MatchRecord) model.FirstObjectivesInfo {
	var dragon, herald, baron firstCounter
	mine(teamID, matches, func(v model.TeamView) {
		o := &v.Mine.Stats.Objectives
		dragon.add(o.FirstDragon)
		herald.add(o.FirstHerald)
		baron.add(o.FirstBaron)
	})

	n := len(matches)
	return model.FirstObjectivesInfo{
		FirstDragon: dragon.info(n),
		FirstHerald: herald.info(n),
		FirstBaron:  baron.info(n),
	}
}

type dragonCounter struct {
	total   int
	killed  int
	secured int
	wins    int
}

func (c *dragonCounter) add(o model.ObjectiveCount, won bool) {
	c.total += o.TotalCount
	c.killed += o.KilledCount
	if o.KilledCount > 0 {
		c.secured++
		if won {
			c.wins++
		}
	}
}

func (c *dragonCounter) info() model.ElementalDragonInfo {
	return model.ElementalDragonInfo{
		TotalDragonCount:       c.total,
		TotalKilledDragonCount: c.killed,
		SecurePercent:          util.RoundPercent(float64(c.killed), float64(c.total)),
		WinPercent:             util.RoundPercent(float64(c.wins), float64(c.secured)),
	}
}

// ElementalDragons reports, per dragon type, how many spawned and were killed by
// teamID, and how often teamID won the matches in which it killed one.
func ElementalDragons(teamID int, matches []*model.MatchRecord) model.ElementalDragonsInfo {
	var cloud, ocean, infernal, mountain dragonCounter
	mine(teamID, matches, func(v model.TeamView) {
		d := v.Mine.Stats.Objectives.Dragons
		if d == nil {
			return
		}
		cloud.add(d.Cloud, v.Won)
		ocean.add(d.Ocean, v.Won)
		infernal.add(d.Infernal, v.Won)
		mountain.add(d.Mountain, v.Won)
	})

	return model.ElementalDragonsInfo{
		CloudDragonInfo:    cloud.info(),
		InfernalDragonInfo: infernal.info(),
		MountainDragonInfo: mountain.info(),
		OceanDragonInfo:    ocean.info(),
	}
}

func addGanks(a, b model.GankInfo) model.GankInfo {
	return model.GankInfo{
		TotalCount:   a.TotalCount + b.TotalCount,
		SuccessCount: a.SuccessCount + b.SuccessCount,
	}
}

// LaneInteraction sums the ganks of teamID per lane.
func LaneInteraction(teamID int, matches []*model.MatchRecord) model.LaneInteractionStats {
	var out model.LaneInteractionStats
	mine(teamID, matches, func(v model.TeamView) {
		li := v.Mine.Stats.LaneInteraction
		out.TopGankInfo = addGanks(out.TopGankInfo, li.TopGankInfo)
		out.MiddleGankInfo = addGanks(out.MiddleGankInfo, li.MiddleGankInfo)
		out.BottomGankInfo = addGanks(out.BottomGankInfo, li.BottomGankInfo)
	})
	return out
}
