package model

// RoleStats is the per-match stat tree of one player. Exactly one concrete branch type
// exists per playable role.
type RoleStats interface {
	Role() Role
	Base() GeneralStats
	Lane() LaningStats
}

type GeneralStats struct {
	AvgIsolatedDeathCount PeriodStat `json:"avgIsolatedDeathCount"`
	AvgSoloKillCount      PeriodStat `json:"avgSoloKillCount"`
	AvgForwardPercent     PeriodStat `json:"avgForwardPercent"`
	AvgKillCount          float64    `json:"avgKillCount"`
	AvgDeathCount         float64    `json:"avgDeathCount"`
	AvgAssistCount        float64    `json:"avgAssistCount"`
	AvgGoldCount          float64    `json:"avgGoldCount"`
	AvgTotalDamage        float64    `json:"avgTotalDamage"`
}

func (g GeneralStats) Add(o GeneralStats) GeneralStats {
	return GeneralStats{
		AvgIsolatedDeathCount: g.AvgIsolatedDeathCount.Add(o.AvgIsolatedDeathCount),
		AvgSoloKillCount:      g.AvgSoloKillCount.Add(o.AvgSoloKillCount),
		AvgForwardPercent:     g.AvgForwardPercent.Add(o.AvgForwardPercent),
		AvgKillCount:          g.AvgKillCount + o.AvgKillCount,
		AvgDeathCount:         g.AvgDeathCount + o.AvgDeathCount,
		AvgAssistCount:        g.AvgAssistCount + o.AvgAssistCount,
		AvgGoldCount:          g.AvgGoldCount + o.AvgGoldCount,
		AvgTotalDamage:        g.AvgTotalDamage + o.AvgTotalDamage,
	}
}

func (g GeneralStats) Div(n float64) GeneralStats {
	return GeneralStats{
		AvgIsolatedDeathCount: g.AvgIsolatedDeathCount.Div(n),
		AvgSoloKillCount:      g.AvgSoloKillCount.Div(n),
		AvgForwardPercent:     g.AvgForwardPercent.Div(n),
		AvgKillCount:          Div(g.AvgKillCount, n),
		AvgDeathCount:         Div(g.AvgDeathCount, n),
		AvgAssistCount:        Div(g.AvgAssistCount, n),
		AvgGoldCount:          Div(g.AvgGoldCount, n),
		AvgTotalDamage:        Div(g.AvgTotalDamage, n),
	}
}

// LaningStats holds metrics reported relative to the lane opponent once averaged.
type LaningStats struct {
	AvgCreepScoreDifferenceCount PeriodStat `json:"avgCreepScoreDifferenceCount"`
	AvgGoldDifferenceCount       PeriodStat `json:"avgGoldDifferenceCount"`
	AvgExpDifferenceCount        PeriodStat `json:"avgExpDifferenceCount"`
	AvgTimeSpentOutOfLaneSeconds PeriodStat `json:"avgTimeSpentOutOfLaneSeconds"`
}

func (l LaningStats) Add(o LaningStats) LaningStats {
	return LaningStats{
		AvgCreepScoreDifferenceCount: l.AvgCreepScoreDifferenceCount.Add(o.AvgCreepScoreDifferenceCount),
		AvgGoldDifferenceCount:       l.AvgGoldDifferenceCount.Add(o.AvgGoldDifferenceCount),
		AvgExpDifferenceCount:        l.AvgExpDifferenceCount.Add(o.AvgExpDifferenceCount),
		AvgTimeSpentOutOfLaneSeconds: l.AvgTimeSpentOutOfLaneSeconds.Add(o.AvgTimeSpentOutOfLaneSeconds),
	}
}

func (l LaningStats) Sub(o LaningStats) LaningStats {
	return LaningStats{
		AvgCreepScoreDifferenceCount: l.AvgCreepScoreDifferenceCount.Sub(o.AvgCreepScoreDifferenceCount),
		AvgGoldDifferenceCount:       l.AvgGoldDifferenceCount.Sub(o.AvgGoldDifferenceCount),
		AvgExpDifferenceCount:        l.AvgExpDifferenceCount.Sub(o.AvgExpDifferenceCount),
		AvgTimeSpentOutOfLaneSeconds: l.AvgTimeSpentOutOfLaneSeconds.Sub(o.AvgTimeSpentOutOfLaneSeconds),
	}
}

func (l LaningStats) Div(n float64) LaningStats {
	return LaningStats{
		AvgCreepScoreDifferenceCount: l.AvgCreepScoreDifferenceCount.Div(n),
		AvgGoldDifferenceCount:       l.AvgGoldDifferenceCount.Div(n),
		AvgExpDifferenceCount:        l.AvgExpDifferenceCount.Div(n),
		AvgTimeSpentOutOfLaneSeconds: l.AvgTimeSpentOutOfLaneSeconds.Div(n),
	}
}

type ControlWardVision struct {
	AvgControlWardsBoughtCount PeriodStat `json:"avgControlWardsBoughtCount"`
}

func (v ControlWardVision) Add(o ControlWardVision) ControlWardVision {
	return ControlWardVision{AvgControlWardsBoughtCount: v.AvgControlWardsBoughtCount.Add(o.AvgControlWardsBoughtCount)}
}

func (v ControlWardVision) Div(n float64) ControlWardVision {
	return ControlWardVision{AvgControlWardsBoughtCount: v.AvgControlWardsBoughtCount.Div(n)}
}

type TopGeneralStats struct {
	GeneralStats
	AvgGoldGeneratedWithin1mOfTeleportCount PeriodStat `json:"avgGoldGeneratedWithin1mOfTeleportCount"`
}

type TopStats struct {
	General         TopGeneralStats   `json:"general"`
	Vision          ControlWardVision `json:"vision"`
	Laning          LaningStats       `json:"laning"`
	TeamFightDamage TeamFightDamage   `json:"teamFightDamage"`
}

func (s *TopStats) Role() Role         { return RoleTop }
func (s *TopStats) Base() GeneralStats { return s.General.GeneralStats }
func (s *TopStats) Lane() LaningStats  { return s.Laning }

func (s TopStats) Add(o TopStats) TopStats {
	return TopStats{
		General: TopGeneralStats{
			GeneralStats:                            s.General.GeneralStats.Add(o.General.GeneralStats),
			AvgGoldGeneratedWithin1mOfTeleportCount: s.General.AvgGoldGeneratedWithin1mOfTeleportCount.Add(o.General.AvgGoldGeneratedWithin1mOfTeleportCount),
		},
		Vision:          s.Vision.Add(o.Vision),
		Laning:          s.Laning.Add(o.Laning),
		TeamFightDamage: s.TeamFightDamage.Add(o.TeamFightDamage),
	}
}

func (s TopStats) Div(n float64) TopStats {
	return TopStats{
		General: TopGeneralStats{
			GeneralStats:                            s.General.GeneralStats.Div(n),
			AvgGoldGeneratedWithin1mOfTeleportCount: s.General.AvgGoldGeneratedWithin1mOfTeleportCount.Div(n),
		},
		Vision:          s.Vision.Div(n),
		Laning:          s.Laning.Div(n),
		TeamFightDamage: s.TeamFightDamage.Div(n),
	}
}

// Against returns a copy whose laning branch is relative to the opponent's.
func (s TopStats) Against(enemy TopStats) TopStats {
	s.Laning = s.Laning.Sub(enemy.Laning)
	return s
}

type MiddleStats struct {
	General         GeneralStats      `json:"general"`
	Vision          ControlWardVision `json:"vision"`
	Laning          LaningStats       `json:"laning"`
	TeamFightDamage TeamFightDamage   `json:"teamFightDamage"`
}

func (s *MiddleStats) Role() Role         { return RoleMiddle }
func (s *MiddleStats) Base() GeneralStats { return s.General }
func (s *MiddleStats) Lane() LaningStats  { return s.Laning }

func (s MiddleStats) Add(o MiddleStats) MiddleStats {
	return MiddleStats{
		General:         s.General.Add(o.General),
		Vision:          s.Vision.Add(o.Vision),
		Laning:          s.Laning.Add(o.Laning),
		TeamFightDamage: s.TeamFightDamage.Add(o.TeamFightDamage),
	}
}

func (s MiddleStats) Div(n float64) MiddleStats {
	return MiddleStats{
		General:         s.General.Div(n),
		Vision:          s.Vision.Div(n),
		Laning:          s.Laning.Div(n),
		TeamFightDamage: s.TeamFightDamage.Div(n),
	}
}

func (s MiddleStats) Against(enemy MiddleStats) MiddleStats {
	s.Laning = s.Laning.Sub(enemy.Laning)
	return s
}

type BottomStats struct {
	General         GeneralStats      `json:"general"`
	Vision          ControlWardVision `json:"vision"`
	Laning          LaningStats       `json:"laning"`
	TeamFightDamage TeamFightDamage   `json:"teamFightDamage"`
}

func (s *BottomStats) Role() Role         { return RoleBottom }
func (s *BottomStats) Base() GeneralStats { return s.General }
func (s *BottomStats) Lane() LaningStats  { return s.Laning }

func (s BottomStats) Add(o BottomStats) BottomStats {
	return BottomStats{
		General:         s.General.Add(o.General),
		Vision:          s.Vision.Add(o.Vision),
		Laning:          s.Laning.Add(o.Laning),
		TeamFightDamage: s.TeamFightDamage.Add(o.TeamFightDamage),
	}
}

func (s BottomStats) Div(n float64) BottomStats {
	return BottomStats{
		General:         s.General.Div(n),
		Vision:          s.Vision.Div(n),
		Laning:          s.Laning.Div(n),
		TeamFightDamage: s.TeamFightDamage.Div(n),
	}
}

func (s BottomStats) Against(enemy BottomStats) BottomStats {
	s.Laning = s.Laning.Sub(enemy.Laning)
	return s
}
