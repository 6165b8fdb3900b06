package model

import "strconv"

// Role is the lane position a player occupies during a match.
type Role int

const (
	RoleUnknown Role = iota
	RoleTop
	RoleMiddle
	RoleBottom
	RoleJungler
	RoleSupport
)

// Roles lists the playable roles in the order reports enumerate them.
var Roles = []Role{RoleTop, RoleMiddle, RoleBottom, RoleJungler, RoleSupport}

func (r Role) Valid() bool {
	return r >= RoleTop && r <= RoleSupport
}

func (r Role) String() string {
	switch r {
	case RoleTop:
		return "top"
	case RoleMiddle:
		return "middle"
	case RoleBottom:
		return "bottom"
	case RoleJungler:
		return "jungler"
	case RoleSupport:
		return "support"
	default:
		return "unknown"
	}
}

// ParseRole accepts either the numeric value or the lowercase name of a role.
func ParseRole(s string) (Role, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		r := Role(n)
		return r, r.Valid()
	}
	for _, r := range Roles {
		if r.String() == s {
			return r, true
		}
	}
	return RoleUnknown, false
}

// Side is the map side of a team. The zero value means "unspecified" in queries.
type Side int

const (
	SideUnspecified Side = iota
	SideRed
	SideBlue
)

func (s Side) Valid() bool {
	return s == SideRed || s == SideBlue
}

func (s Side) Opposite() Side {
	switch s {
	case SideRed:
		return SideBlue
	case SideBlue:
		return SideRed
	default:
		return SideUnspecified
	}
}

func (s Side) String() string {
	switch s {
	case SideRed:
		return "red"
	case SideBlue:
		return "blue"
	default:
		return "-"
	}
}

type MatchType int

const (
	MatchTypeSoloQueue MatchType = iota + 1
	MatchTypeScrim
	MatchTypeCompetitive
)

func (t MatchType) Valid() bool {
	return t >= MatchTypeSoloQueue && t <= MatchTypeCompetitive
}

type WardType int

const (
	WardTypeControl WardType = iota + 1
	WardTypeOther
)

// WardQueryType selects which ward aggregations a ward report contains.
// The zero value requests both.
type WardQueryType int

const (
	WardQueryMostCommon WardQueryType = iota + 1
	WardQueryFirstWard
)

func (t WardQueryType) Includes(o WardQueryType) bool {
	return t == 0 || t == o
}

type SortOrder int

const (
	SortAscending SortOrder = iota + 1
	SortDescending
)

type MatchHistorySort int

const (
	SortBySoloKills MatchHistorySort = iota + 1
	SortByIsolatedDeaths
	SortByGoldDiffPre15
	SortByGoldDiffPost15
	SortByCSDiffPre15
	SortByCSDiffPost15
	SortByDragonsSecuredPercent
	SortByBaronSecuredPercent
)

type ChampionsSort int

const (
	SortByPickRate ChampionsSort = iota + 1
)
