package model

import (
	"strings"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Team struct {
	bun.BaseModel `bun:"teams,alias:t"`

	TeamID   int         `bun:",pk,autoincrement" json:"id"`
	Name     string      `json:"name"`
	Type     MatchType   `json:"type"`
	RegionID int         `json:"regionId"`
	LogoURL  null.String `bun:"logo_url" json:"logoUrl,omitempty"`
	IsActive bool        `json:"isActive"`
}

type Player struct {
	bun.BaseModel `bun:"players,alias:p"`

	PlayerID     int         `bun:",pk,autoincrement" json:"id"`
	Name         string      `json:"name"`
	SummonerName string      `json:"summonerName"`
	PictureURL   null.String `bun:"picture_url" json:"pictureUrl,omitempty"`
}

// WardName is the in-game name recorded on ward events. Names carrying a team tag
// ("TAG Name") are matched by their second word.
func (p *Player) WardName() string {
	names := strings.Split(p.SummonerName, " ")
	if len(names) > 1 {
		return names[1]
	}
	return p.SummonerName
}
