// Package pickban tallies champion picks, bans and matchups of a team.
package pickban

import (
	"sort"

	"exusiai.dev/matchstats/internal/model"
	"exusiai.dev/matchstats/internal/util"
)

const (
	// TopChampions is how many entries each champion tally keeps.
	TopChampions = 5
	// TopMatchups is how many matchups each champion entry keeps.
	TopMatchups = 4
)

// Picks sums the blind and counter picks of teamID per role.
func Picks(teamID int, matches []*model.MatchRecord) (blind, counter []model.ChampionPickInfo) {
	blind = make([]model.ChampionPickInfo, len(model.Roles))
	counter = make([]model.ChampionPickInfo, len(model.Roles))
	for i, r := range model.Roles {
		blind[i].RoleID = r
		counter[i].RoleID = r
	}

	for _, m := range matches {
		v, ok := m.ViewOf(teamID)
		if !ok || v.Mine == nil {
			continue
		}
		for i, r := range model.Roles {
			blind[i].PicksCount += picksOf(v.Mine.BlindPicks, r)
			counter[i].PicksCount += picksOf(v.Mine.CounterPicks, r)
		}
	}
	return blind, counter
}

func picksOf(picks []model.RolePicks, r model.Role) int {
	for _, p := range picks {
		if p.RoleID == r {
			return p.PicksCount
		}
	}
	return 0
}

// tally counts int keys and remembers the order they were first seen in.
type tally struct {
	order  []int
	counts map[int]int
}

func newTally() *tally {
	return &tally{counts: make(map[int]int)}
}

func (t *tally) add(key int) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// sorted returns the keys by descending count. Ties keep encounter order.
func (t *tally) sorted() []int {
	keys := append([]int(nil), t.order...)
	sort.SliceStable(keys, func(i, j int) bool {
		return t.counts[keys[i]] > t.counts[keys[j]]
	})
	return keys
}

func (t *tally) top(n, matches int) []model.ChampionStats {
	keys := t.sorted()
	if len(keys) > n {
		keys = keys[:n]
	}
	out := make([]model.ChampionStats, len(keys))
	for i, k := range keys {
		out[i] = model.ChampionStats{
			ChampionID: k,
			Percent:    util.Percent(float64(t.counts[k]), float64(matches)),
		}
	}
	return out
}

type ChampionTallies struct {
	MostPicked        []model.ChampionStats
	MostBannedBy      []model.ChampionStats
	MostBannedAgainst []model.ChampionStats
	LoseTo            []model.ChampionStats
}

// Champions tallies the champions teamID picked and banned, the champions banned
// against it and the enemy champions of its lost matches. Percentages are per match.
func Champions(teamID int, matches []*model.MatchRecord) ChampionTallies {
	picked, bannedBy, bannedAgainst, lostTo := newTally(), newTally(), newTally(), newTally()

	for _, m := range matches {
		v, ok := m.ViewOf(teamID)
		if !ok {
			continue
		}
		if v.Mine != nil {
			for _, p := range v.Mine.Players {
				picked.add(p.ChampionID)
			}
			for _, id := range v.Mine.BannedChampionIDs {
				bannedBy.add(id)
			}
		}
		if v.Enemy != nil {
			for _, id := range v.Enemy.BannedChampionIDs {
				bannedAgainst.add(id)
			}
			if !v.Won {
				for _, p := range v.Enemy.Players {
					lostTo.add(p.ChampionID)
				}
			}
		}
	}

	n := len(matches)
	return ChampionTallies{
		MostPicked:        picked.top(TopChampions, n),
		MostBannedBy:      bannedBy.top(TopChampions, n),
		MostBannedAgainst: bannedAgainst.top(TopChampions, n),
		LoseTo:            lostTo.top(TopChampions, n),
	}
}

// KeyFromRoles packs a pick order into a decimal key, one digit per role.
func KeyFromRoles(roles []model.Role) int {
	key := 0
	for _, r := range roles {
		key = key*10 + int(r)
	}
	return key
}

// RolesFromKey reverses KeyFromRoles.
func RolesFromKey(key int) []model.Role {
	var roles []model.Role
	for ; key > 0; key /= 10 {
		roles = append(roles, model.Role(key%10))
	}
	for i, j := 0, len(roles)-1; i < j; i, j = i+1, j-1 {
		roles[i], roles[j] = roles[j], roles[i]
	}
	return roles
}

// PickOrders ranks the role orders teamID picked in, most frequent first.
func PickOrders(teamID int, matches []*model.MatchRecord) []model.MostPickedRolesByOrder {
	orders := newTally()
	for _, m := range matches {
		v, ok := m.ViewOf(teamID)
		if !ok || v.Mine == nil || len(v.Mine.PickedRolesByOrder) == 0 {
			continue
		}
		orders.add(KeyFromRoles(v.Mine.PickedRolesByOrder))
	}

	keys := orders.sorted()
	out := make([]model.MostPickedRolesByOrder, len(keys))
	for i, k := range keys {
		out[i] = model.MostPickedRolesByOrder{
			RoleOrder: RolesFromKey(k),
			Percent:   util.Percent(float64(orders.counts[k]), float64(len(matches))),
		}
	}
	return out
}
