package model

type RolePicks struct {
	RoleID     Role `json:"roleId"`
	PicksCount int  `json:"picksCount"`
}

type ObjectiveEvent struct {
	IsSuccess bool    `json:"isSuccess"`
	Time      float64 `json:"time"`
}

type ObjectiveCount struct {
	TotalCount  int `json:"totalCount"`
	KilledCount int `json:"killedCount"`
}

type DragonCounts struct {
	Cloud    ObjectiveCount `json:"cloud"`
	Ocean    ObjectiveCount `json:"ocean"`
	Infernal ObjectiveCount `json:"infernal"`
	Mountain ObjectiveCount `json:"mountain"`
}

// Total sums the four elemental dragon types.
func (d *DragonCounts) Total() ObjectiveCount {
	if d == nil {
		return ObjectiveCount{}
	}
	return ObjectiveCount{
		TotalCount:  d.Cloud.TotalCount + d.Ocean.TotalCount + d.Infernal.TotalCount + d.Mountain.TotalCount,
		KilledCount: d.Cloud.KilledCount + d.Ocean.KilledCount + d.Infernal.KilledCount + d.Mountain.KilledCount,
	}
}

type ObjectiveStats struct {
	FirstDragon *ObjectiveEvent `json:"firstDragon,omitempty"`
	FirstHerald *ObjectiveEvent `json:"firstHerald,omitempty"`
	FirstBaron  *ObjectiveEvent `json:"firstBaron,omitempty"`
	Dragons     *DragonCounts   `json:"dragons,omitempty"`
	Baron       *ObjectiveCount `json:"baron,omitempty"`
}

type GankInfo struct {
	TotalCount   int `json:"totalCount"`
	SuccessCount int `json:"successCount"`
}

type LaneInteractionStats struct {
	TopGankInfo    GankInfo `json:"topGankInfo"`
	MiddleGankInfo GankInfo `json:"middleGankInfo"`
	BottomGankInfo GankInfo `json:"bottomGankInfo"`
}

// TurretPlates counts plates of one turret taken by each role.
type TurretPlates struct {
	TopRoleTaken     float64 `json:"topRoleTaken"`
	JunglerRoleTaken float64 `json:"junglerRoleTaken"`
	MiddleRoleTaken  float64 `json:"middleRoleTaken"`
	BottomRoleTaken  float64 `json:"bottomRoleTaken"`
	SupportRoleTaken float64 `json:"supportRoleTaken"`
}

// ByRole returns the plates taken by r, indexed by the Role enumeration.
func (t TurretPlates) ByRole(r Role) float64 {
	switch r {
	case RoleTop:
		return t.TopRoleTaken
	case RoleMiddle:
		return t.MiddleRoleTaken
	case RoleBottom:
		return t.BottomRoleTaken
	case RoleJungler:
		return t.JunglerRoleTaken
	case RoleSupport:
		return t.SupportRoleTaken
	default:
		return 0
	}
}

type TowerPlates struct {
	TopTurret    TurretPlates `json:"topTurret"`
	MiddleTurret TurretPlates `json:"middleTurret"`
	BottomTurret TurretPlates `json:"bottomTurret"`
}

type TeamStats struct {
	Objectives      ObjectiveStats       `json:"objectives"`
	LaneInteraction LaneInteractionStats `json:"laneInteraction"`
	TowerPlates     TowerPlates          `json:"towerPlates"`
}

// TeamMatchInfo is one side's telemetry for a match, stored as jsonb.
type TeamMatchInfo struct {
	Players            []PlayerMatchInfo `json:"players"`
	PickedRolesByOrder []Role            `json:"pickedRolesByOrder"`
	BannedChampionIDs  []int             `json:"bannedChampionIds"`
	BlindPicks         []RolePicks       `json:"blindPicks"`
	CounterPicks       []RolePicks       `json:"counterPicks"`
	Stats              TeamStats         `json:"stats"`
}

// PlayerByRole returns the first player holding r.
func (t *TeamMatchInfo) PlayerByRole(r Role) (*PlayerMatchInfo, bool) {
	if t == nil {
		return nil, false
	}
	for i := range t.Players {
		if t.Players[i].Role == r {
			return &t.Players[i], true
		}
	}
	return nil, false
}

// Roles lists the roles of the players in roster order.
func (t *TeamMatchInfo) Roles() []Role {
	if t == nil {
		return nil
	}
	roles := make([]Role, len(t.Players))
	for i, p := range t.Players {
		roles[i] = p.Role
	}
	return roles
}

// Bans reports whether the team banned champion.
func (t *TeamMatchInfo) Bans(champion int) bool {
	if t == nil {
		return false
	}
	for _, id := range t.BannedChampionIDs {
		if id == champion {
			return true
		}
	}
	return false
}
