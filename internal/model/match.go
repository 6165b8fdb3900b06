package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type WardEvent struct {
	SummonerName      string      `json:"summonerName"`
	Type              WardType    `json:"type"`
	TeamSide          Side        `json:"teamSide"`
	Role              Role        `json:"role"`
	TimeOffsetSeconds float64     `json:"timeOffsetSeconds"`
	Coordinates       Coordinates `json:"coordinates"`
}

type WardInfo struct {
	Events []WardEvent `json:"events"`
}

// MatchRecord is one finished match with both teams' telemetry.
type MatchRecord struct {
	bun.BaseModel `bun:"matches,alias:m"`

	MatchID      int            `bun:",pk,autoincrement" json:"id"`
	UID          string         `bun:"uid" json:"uid"`
	Type         MatchType      `bun:"type" json:"type"`
	RegionID     int            `bun:"region_id" json:"regionId"`
	PatchID      int            `bun:"patch_id" json:"patchId"`
	StartTime    time.Time      `bun:"start_time" json:"startTime"`
	EndTime      time.Time      `bun:"end_time" json:"endTime"`
	RedTeamID    null.Int       `bun:"red_team_id" json:"redTeamId"`
	BlueTeamID   null.Int       `bun:"blue_team_id" json:"blueTeamId"`
	WinnerSide   Side           `bun:"winner_team_side" json:"winnerTeamSide"`
	RedTeamInfo  *TeamMatchInfo `bun:"red_team_info,type:jsonb" json:"redTeamInfo"`
	BlueTeamInfo *TeamMatchInfo `bun:"blue_team_info,type:jsonb" json:"blueTeamInfo"`
	WardsInfo    *WardInfo      `bun:"wards_info,type:jsonb" json:"wardsInfo,omitempty"`
}

// TeamIDOn returns the directory team id that played on side s.
func (m *MatchRecord) TeamIDOn(s Side) null.Int {
	switch s {
	case SideRed:
		return m.RedTeamID
	case SideBlue:
		return m.BlueTeamID
	default:
		return null.Int{}
	}
}

// SideOf resolves which side teamID played on.
func (m *MatchRecord) SideOf(teamID int) (Side, bool) {
	switch {
	case m.RedTeamID.Valid && int(m.RedTeamID.Int64) == teamID:
		return SideRed, true
	case m.BlueTeamID.Valid && int(m.BlueTeamID.Int64) == teamID:
		return SideBlue, true
	default:
		return SideUnspecified, false
	}
}

// Info returns the telemetry of side s. It may be nil for incomplete uploads.
func (m *MatchRecord) Info(s Side) *TeamMatchInfo {
	switch s {
	case SideRed:
		return m.RedTeamInfo
	case SideBlue:
		return m.BlueTeamInfo
	default:
		return nil
	}
}

func (m *MatchRecord) Won(s Side) bool {
	return s.Valid() && m.WinnerSide == s
}

func (m *MatchRecord) Duration() time.Duration {
	if m.EndTime.Before(m.StartTime) {
		return 0
	}
	return m.EndTime.Sub(m.StartTime)
}

// TeamView is a match seen from one side.
type TeamView struct {
	Side  Side
	Mine  *TeamMatchInfo
	Enemy *TeamMatchInfo
	Won   bool
}

// ViewOf resolves the side teamID played on. ok is false when the team did not
// play the match.
func (m *MatchRecord) ViewOf(teamID int) (v TeamView, ok bool) {
	side, ok := m.SideOf(teamID)
	if !ok {
		return TeamView{}, false
	}
	return m.ViewFrom(side), true
}

func (m *MatchRecord) ViewFrom(side Side) TeamView {
	return TeamView{
		Side:  side,
		Mine:  m.Info(side),
		Enemy: m.Info(side.Opposite()),
		Won:   m.Won(side),
	}
}

// MatchParticipation links a directory player to one match.
type MatchParticipation struct {
	bun.BaseModel `bun:"match_players,alias:mp"`

	MatchID    int      `bun:"match_id,pk" json:"matchId"`
	PlayerID   int      `bun:"player_id,pk" json:"playerId"`
	TeamID     null.Int `bun:"team_id" json:"teamId"`
	TeamSide   Side     `bun:"team_side" json:"teamSide"`
	Role       Role     `bun:"role" json:"role"`
	ChampionID int      `bun:"champion_id" json:"championId"`
	SummonerID string   `bun:"summoner_id" json:"summonerId"`
}
