package model

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type SummonerIdentity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	InternalName string `json:"internalName"`
}

// PlayerMatchInfo is one participant of a match. Stats holds the branch matching Role,
// or nil when the telemetry carried no stats for that role.
type PlayerMatchInfo struct {
	SummonerIdentity SummonerIdentity `json:"summonerIdentity"`
	ChampionID       int              `json:"championId"`
	Role             Role             `json:"role"`
	Stats            RoleStats        `json:"-"`
}

// playerStatsWire is the stored shape of the stat tree: an object keyed by role name.
type playerStatsWire struct {
	Top     *TopStats     `json:"top,omitempty"`
	Middle  *MiddleStats  `json:"middle,omitempty"`
	Bottom  *BottomStats  `json:"bottom,omitempty"`
	Jungler *JunglerStats `json:"jungler,omitempty"`
	Support *SupportStats `json:"support,omitempty"`
}

type playerMatchInfoWire struct {
	SummonerIdentity SummonerIdentity `json:"summonerIdentity"`
	ChampionID       int              `json:"championId"`
	Role             Role             `json:"role"`
	Stats            *playerStatsWire `json:"stats,omitempty"`
}

func (p PlayerMatchInfo) MarshalJSON() ([]byte, error) {
	w := playerMatchInfoWire{
		SummonerIdentity: p.SummonerIdentity,
		ChampionID:       p.ChampionID,
		Role:             p.Role,
	}
	if p.Stats != nil {
		w.Stats = &playerStatsWire{}
		switch s := p.Stats.(type) {
		case *TopStats:
			w.Stats.Top = s
		case *MiddleStats:
			w.Stats.Middle = s
		case *BottomStats:
			w.Stats.Bottom = s
		case *JunglerStats:
			w.Stats.Jungler = s
		case *SupportStats:
			w.Stats.Support = s
		default:
			return nil, errors.Errorf("model: unsupported role stats type %T", p.Stats)
		}
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the branch selected by role and ignores any other branch present.
func (p *PlayerMatchInfo) UnmarshalJSON(b []byte) error {
	var w playerMatchInfoWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	p.SummonerIdentity = w.SummonerIdentity
	p.ChampionID = w.ChampionID
	p.Role = w.Role
	p.Stats = nil
	if w.Stats == nil {
		return nil
	}
	switch w.Role {
	case RoleTop:
		if w.Stats.Top != nil {
			p.Stats = w.Stats.Top
		}
	case RoleMiddle:
		if w.Stats.Middle != nil {
			p.Stats = w.Stats.Middle
		}
	case RoleBottom:
		if w.Stats.Bottom != nil {
			p.Stats = w.Stats.Bottom
		}
	case RoleJungler:
		if w.Stats.Jungler != nil {
			p.Stats = w.Stats.Jungler
		}
	case RoleSupport:
		if w.Stats.Support != nil {
			p.Stats = w.Stats.Support
		}
	}
	return nil
}

func (p *PlayerMatchInfo) Top() (*TopStats, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.Stats.(*TopStats)
	return s, ok && s != nil
}

func (p *PlayerMatchInfo) Middle() (*MiddleStats, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.Stats.(*MiddleStats)
	return s, ok && s != nil
}

func (p *PlayerMatchInfo) Bottom() (*BottomStats, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.Stats.(*BottomStats)
	return s, ok && s != nil
}

func (p *PlayerMatchInfo) Jungler() (*JunglerStats, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.Stats.(*JunglerStats)
	return s, ok && s != nil
}

func (p *PlayerMatchInfo) Support() (*SupportStats, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.Stats.(*SupportStats)
	return s, ok && s != nil
}

// General returns the shared general branch, zero when no stats were recorded.
func (p *PlayerMatchInfo) General() GeneralStats {
	if p == nil || p.Stats == nil {
		return GeneralStats{}
	}
	return p.Stats.Base()
}

// Laning returns the laning branch, zero when no stats were recorded.
func (p *PlayerMatchInfo) Laning() LaningStats {
	if p == nil || p.Stats == nil {
		return LaningStats{}
	}
	return p.Stats.Lane()
}

// ControlWards returns the control ward timeline of the player's role. Supports
// report it per minute.
func (p *PlayerMatchInfo) ControlWards() (PeriodStat, bool) {
	if p == nil {
		return PeriodStat{}, false
	}
	switch s := p.Stats.(type) {
	case *TopStats:
		if s != nil {
			return s.Vision.AvgControlWardsBoughtCount, true
		}
	case *MiddleStats:
		if s != nil {
			return s.Vision.AvgControlWardsBoughtCount, true
		}
	case *BottomStats:
		if s != nil {
			return s.Vision.AvgControlWardsBoughtCount, true
		}
	case *JunglerStats:
		if s != nil {
			return s.AvgControlWardsBoughtCount, true
		}
	case *SupportStats:
		if s != nil {
			return s.Vision.AvgControlWardsPerMinCount, true
		}
	}
	return PeriodStat{}, false
}

// PlayerStats is an averaged stat tree with only the requested role's branch set.
type PlayerStats struct {
	Top     *TopStats     `json:"top,omitempty"`
	Middle  *MiddleStats  `json:"middle,omitempty"`
	Bottom  *BottomStats  `json:"bottom,omitempty"`
	Jungler *JunglerStats `json:"jungler,omitempty"`
	Support *SupportStats `json:"support,omitempty"`
}

type PlayerComparableStats struct {
	PrimaryPlayerStats   PlayerStats  `json:"primaryPlayerStats"`
	SecondaryPlayerStats *PlayerStats `json:"secondaryPlayerStats,omitempty"`
}
