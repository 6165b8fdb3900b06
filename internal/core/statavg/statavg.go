// Package statavg averages per-role stat trees over a list of matches.
//
// Every leaf is summed over the matches and divided by the number of matches.
// Laning leaves are summed as the difference against the same-role opponent, so an
// averaged laning branch reads as "ahead of / behind the lane opponent by".
package statavg

import "exusiai.dev/matchstats/internal/model"

// Perspective is one match seen from one side. Mine or Enemy may be nil when the
// side could not be resolved or the telemetry is missing; such a match still counts
// towards the divisor.
type Perspective struct {
	Mine  *model.TeamMatchInfo
	Enemy *model.TeamMatchInfo
}

// ForSide builds one perspective per match using sideOf to find the focal side.
func ForSide(matches []*model.MatchRecord, sideOf func(*model.MatchRecord) (model.Side, bool)) []Perspective {
	ps := make([]Perspective, len(matches))
	for i, m := range matches {
		side, ok := sideOf(m)
		if !ok {
			continue
		}
		ps[i] = Perspective{Mine: m.Info(side), Enemy: m.Info(side.Opposite())}
	}
	return ps
}

// ForTeam builds perspectives of teamID.
func ForTeam(teamID int, matches []*model.MatchRecord) []Perspective {
	return ForSide(matches, func(m *model.MatchRecord) (model.Side, bool) {
		return m.SideOf(teamID)
	})
}

// Swap returns the opponents' perspectives of the same matches.
func Swap(ps []Perspective) []Perspective {
	out := make([]Perspective, len(ps))
	for i, p := range ps {
		out[i] = Perspective{Mine: p.Enemy, Enemy: p.Mine}
	}
	return out
}

type branch[T any] interface {
	Add(T) T
	Div(float64) T
	Against(T) T
}

func average[T branch[T]](role model.Role, ps []Perspective, pick func(*model.PlayerMatchInfo) (*T, bool)) *T {
	var acc T
	for _, p := range ps {
		minePlayer, ok := p.Mine.PlayerByRole(role)
		if !ok {
			continue
		}
		enemyPlayer, ok := p.Enemy.PlayerByRole(role)
		if !ok {
			continue
		}
		mine, ok := pick(minePlayer)
		if !ok {
			continue
		}
		enemy, ok := pick(enemyPlayer)
		if !ok {
			continue
		}
		acc = acc.Add((*mine).Against(*enemy))
	}
	out := acc.Div(float64(len(ps)))
	return &out
}

// Average returns the averaged stat tree of role over ps, with only that role's branch set.
// An unknown role yields an empty result.
func Average(role model.Role, ps []Perspective) model.PlayerStats {
	var out model.PlayerStats
	switch role {
	case model.RoleTop:
		out.Top = average(role, ps, (*model.PlayerMatchInfo).Top)
	case model.RoleMiddle:
		out.Middle = average(role, ps, (*model.PlayerMatchInfo).Middle)
	case model.RoleBottom:
		out.Bottom = average(role, ps, (*model.PlayerMatchInfo).Bottom)
	case model.RoleJungler:
		out.Jungler = average(role, ps, (*model.PlayerMatchInfo).Jungler)
	case model.RoleSupport:
		out.Support = average(role, ps, (*model.PlayerMatchInfo).Support)
	}
	return out
}
