package model

type SupportGeneralStats struct {
	GeneralStats
	AvgRoams                    PeriodStat `json:"avgRoams"`
	AvgJungleOrSupportProximity PeriodStat `json:"avgJungleOrSupportProximity"`
}

type SupportVision struct {
	AvgWardsPlacedCount        PeriodStat `json:"avgWardsPlacedCount"`
	AvgWardsRevealedCount      PeriodStat `json:"avgWardsRevealedCount"`
	SweeperEfficiency          PeriodStat `json:"sweeperEfficiency"`
	AvgControlWardsPerMinCount PeriodStat `json:"avgControlWardsPerMinCount"`
}

func (v SupportVision) Add(o SupportVision) SupportVision {
	return SupportVision{
		AvgWardsPlacedCount:        v.AvgWardsPlacedCount.Add(o.AvgWardsPlacedCount),
		AvgWardsRevealedCount:      v.AvgWardsRevealedCount.Add(o.AvgWardsRevealedCount),
		SweeperEfficiency:          v.SweeperEfficiency.Add(o.SweeperEfficiency),
		AvgControlWardsPerMinCount: v.AvgControlWardsPerMinCount.Add(o.AvgControlWardsPerMinCount),
	}
}

func (v SupportVision) Div(n float64) SupportVision {
	return SupportVision{
		AvgWardsPlacedCount:        v.AvgWardsPlacedCount.Div(n),
		AvgWardsRevealedCount:      v.AvgWardsRevealedCount.Div(n),
		SweeperEfficiency:          v.SweeperEfficiency.Div(n),
		AvgControlWardsPerMinCount: v.AvgControlWardsPerMinCount.Div(n),
	}
}

type SupportItemStats struct {
	ItemID                           int     `json:"itemId"`
	AvgGoldDiffFromItemsPre15        float64 `json:"avgGoldDiffFromItemsPre15"`
	AvgGoldDiffWithoutItemsPre15     float64 `json:"avgGoldDiffWithoutItemsPre15"`
	AvgTotalGoldDiffPre15            float64 `json:"avgTotalGoldDiffPre15"`
	AvgSuppItemCompleteTimeInSeconds float64 `json:"avgSuppItemCompleteTimeInSeconds"`
}

// MaxSupportItems bounds the support item snapshot carried by a support stat tree.
const MaxSupportItems = 4

type SupportStats struct {
	General      SupportGeneralStats `json:"general"`
	Laning       LaningStats         `json:"laning"`
	Vision       SupportVision       `json:"vision"`
	SupportItems []SupportItemStats  `json:"supportItems,omitempty"`
}

func (s *SupportStats) Role() Role         { return RoleSupport }
func (s *SupportStats) Base() GeneralStats { return s.General.GeneralStats }
func (s *SupportStats) Lane() LaningStats  { return s.Laning }

// Add sums every numeric leaf. Support items are a snapshot, not a metric: the
// receiver's items win and o's are only taken when the receiver has none.
func (s SupportStats) Add(o SupportStats) SupportStats {
	items := s.SupportItems
	if len(items) == 0 {
		items = o.SupportItems
	}
	return SupportStats{
		General: SupportGeneralStats{
			GeneralStats:                s.General.GeneralStats.Add(o.General.GeneralStats),
			AvgRoams:                    s.General.AvgRoams.Add(o.General.AvgRoams),
			AvgJungleOrSupportProximity: s.General.AvgJungleOrSupportProximity.Add(o.General.AvgJungleOrSupportProximity),
		},
		Laning:       s.Laning.Add(o.Laning),
		Vision:       s.Vision.Add(o.Vision),
		SupportItems: items,
	}
}

func (s SupportStats) Div(n float64) SupportStats {
	return SupportStats{
		General: SupportGeneralStats{
			GeneralStats:                s.General.GeneralStats.Div(n),
			AvgRoams:                    s.General.AvgRoams.Div(n),
			AvgJungleOrSupportProximity: s.General.AvgJungleOrSupportProximity.Div(n),
		},
		Laning:       s.Laning.Div(n),
		Vision:       s.Vision.Div(n),
		SupportItems: append([]SupportItemStats(nil), s.SupportItems...),
	}
}

func (s SupportStats) Against(enemy SupportStats) SupportStats {
	s.Laning = s.Laning.Sub(enemy.Laning)
	return s
}
