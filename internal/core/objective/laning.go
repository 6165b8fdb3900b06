package objective

import "exusiai.dev/matchstats/internal/model"

// LaningInfo averages per role the creep score difference at 10 and 20 minutes,
// isolated deaths and control wards bought.
func LaningInfo(teamID int, matches []*model.MatchRecord) model.LaningInfo {
	var out model.LaningInfo
	n := float64(len(matches))

	mine(teamID, matches, func(v model.TeamView) {
		for i := range v.Mine.Players {
			p := &v.Mine.Players[i]
			if p.Stats == nil || !p.Role.Valid() {
				continue
			}

			cs := p.Laning().AvgCreepScoreDifferenceCount
			*out.CSDifferenceAt10.Ref(p.Role) += cs.Min10 / n
			if cs.Min20.Valid {
				*out.CSDifferenceAt20.Ref(p.Role) += cs.Min20.Float64 / n
			}
			if deaths := p.General().AvgIsolatedDeathCount.Total; deaths.Valid {
				*out.AverageIsolatedDeaths.Ref(p.Role) += deaths.Float64 / n
			}

			if wards, ok := p.ControlWards(); ok {
				*out.AverageControlWardAt10.Ref(p.Role) += wards.Min10 / n
				*out.AverageControlWardAt15.Ref(p.Role) += wards.Min15 / n
				*out.AverageControlWardAt20.Ref(p.Role) += wards.Min20.Float64 / n
				*out.AverageControlWardAt30.Ref(p.Role) += wards.Min30.Float64 / n
			}
		}
	})
	return out
}
