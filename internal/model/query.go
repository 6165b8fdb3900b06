package model

import "time"

// MatchFilter is what a match source needs to fetch a bounded, ordered match list.
// A Side of SideUnspecified with a versus team means "either orientation".
type MatchFilter struct {
	Start        *time.Time
	End          *time.Time
	Types        []MatchType
	PatchID      int
	RegionID     int
	TeamID       int
	Side         Side
	VersusTeamID int
	// MatchIDs restricts the result to an allow-list when non-nil. An empty non-nil
	// list matches nothing.
	MatchIDs []int
	Limit    int
}

type TeamQueryBase struct {
	DateRange
	GameType     MatchType `query:"gameType" json:"gameType,omitempty" validate:"omitempty,min=1,max=3"`
	PatchID      int       `query:"patchId" json:"patchId,omitempty" validate:"gte=0"`
	VersusTeamID int       `query:"versusTeamId" json:"versusTeamId,omitempty" validate:"gte=0"`
	TeamSide     Side      `query:"teamSide" json:"teamSide,omitempty" validate:"omitempty,side"`
	MaxItemCount int       `query:"maxItemCount" json:"maxItemCount,omitempty" validate:"omitempty,min=1,max=500"`
}

type TeamStatsQuery struct {
	TeamQueryBase
	CompareToTeamID          int `query:"compareToTeamId" json:"compareToTeamId,omitempty" validate:"gte=0"`
	CompareToLastNMatchCount int `query:"compareToLastNMatchCount" json:"compareToLastNMatchCount,omitempty" validate:"gte=0,lte=100"`
}

// WardOptions narrows the ward events considered by a ward report.
// StartTime and EndTime are seconds into the match and only apply when both are set.
type WardOptions struct {
	WardQueryType WardQueryType `query:"wardQueryType" json:"wardQueryType,omitempty" validate:"omitempty,min=1,max=2"`
	StartTime     *float64      `query:"startTime" json:"startTime,omitempty" validate:"omitempty,gte=0,lte=86400"`
	EndTime       *float64      `query:"endTime" json:"endTime,omitempty" validate:"omitempty,gte=0,lte=86400"`
	WardType      WardType      `query:"wardType" json:"wardType,omitempty" validate:"omitempty,min=1,max=2"`
}

type TeamWardQuery struct {
	TeamQueryBase
	WardOptions
}

type TeamChampionsQuery struct {
	TeamQueryBase
	ChampionID int           `query:"championId" json:"championId,omitempty" validate:"gte=0"`
	Role       Role          `query:"role" json:"role,omitempty" validate:"omitempty,role"`
	SortBy     ChampionsSort `query:"sortBy" json:"sortBy,omitempty" validate:"omitempty,eq=1"`
	SortOrder  SortOrder     `query:"sortOrder" json:"sortOrder,omitempty" validate:"omitempty,min=1,max=2"`
}

type TeamMatchHistoryQuery struct {
	TeamQueryBase
	VictoryOnly bool             `query:"victoryOnly" json:"victoryOnly,omitempty"`
	SortBy      MatchHistorySort `query:"sortBy" json:"sortBy,omitempty" validate:"omitempty,min=1,max=8"`
	SortOrder   SortOrder        `query:"sortOrder" json:"sortOrder,omitempty" validate:"omitempty,min=1,max=2"`
	Page        int              `query:"page" json:"page,omitempty" validate:"gte=0,lte=1000"`
	PageSize    int              `query:"pageSize" json:"pageSize,omitempty" validate:"gte=0,lte=100"`
}

type PlayerStatsQuery struct {
	DateRange
	GameType                 MatchType `query:"gameType" json:"gameType,omitempty" validate:"omitempty,min=1,max=3"`
	RegionID                 int       `query:"regionId" json:"regionId,omitempty" validate:"gte=0"`
	PatchID                  int       `query:"patchId" json:"patchId,omitempty" validate:"gte=0"`
	VersusPlayerID           int       `query:"versusPlayerId" json:"versusPlayerId,omitempty" validate:"gte=0"`
	CompareToPlayerID        int       `query:"compareToPlayerId" json:"compareToPlayerId,omitempty" validate:"gte=0"`
	CompareToLastNMatchCount int       `query:"compareToLastNMatchCount" json:"compareToLastNMatchCount,omitempty" validate:"gte=0,lte=100"`
	TeamSide                 Side      `query:"teamSide" json:"teamSide,omitempty" validate:"omitempty,side"`
	ChampionID               int       `query:"championId" json:"championId,omitempty" validate:"gte=0"`
}

type PlayerWardQuery struct {
	PlayerStatsQuery
	WardOptions
}
