package objective

import (
	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/util"
)

type turretCounter struct {
	byRole map[model.Role]float64
	total  float64
}

func newTurretCounter() *turretCounter {
	return &turretCounter{byRole: make(map[model.Role]float64, len(model.Roles))}
}

func (c *turretCounter) add(t model.TurretPlates, matches int) {
	for _, r := range model.Roles {
		v := t.ByRole(r)
		if v == 0 {
			continue
		}
		c.byRole[r] += v / float64(matches)
		c.total += v / float64(matches)
	}
}

func (c *turretCounter) shares() []model.TurretPlateTakenByRole {
	out := make([]model.TurretPlateTakenByRole, len(model.Roles))
	for i, r := range model.Roles {
		out[i] = model.TurretPlateTakenByRole{
			RoleID:  r,
			Percent: util.RoundPercent(c.byRole[r], c.total),
		}
	}
	return out
}

// TurretPlates reports the average plates teamID took from each outer turret and the
// share of them every role took.
func TurretPlates(teamID int, matches []*model.MatchRecord) model.TurretPlatesTakenInfo {
	top, middle, bottom := newTurretCounter(), newTurretCounter(), newTurretCounter()
	mine(teamID, matches, func(v model.TeamView) {
		p := v.Mine.Stats.TowerPlates
		top.add(p.TopTurret, len(matches))
		middle.add(p.MiddleTurret, len(matches))
		bottom.add(p.BottomTurret, len(matches))
	})

	return model.TurretPlatesTakenInfo{
		TopTurretDamageInfo:    top.shares(),
		TopTurretPlates:        top.total,
		MiddleTurretDamageInfo: middle.shares(),
		MiddleTurretPlates:     middle.total,
		BottomTurretDamageInfo: bottom.shares(),
		BottomTurretPlates:     bottom.total,
	}
}

// AveragePlates is the average number of plates taken per match over all turrets.
func AveragePlates(info *model.TurretPlatesTakenInfo) float64 {
	return info.TopTurretPlates + info.MiddleTurretPlates + info.BottomTurretPlates
}
