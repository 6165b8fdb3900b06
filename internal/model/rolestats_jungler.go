package model

type JunglingStats struct {
	AvgCampsTakenCount               PortionStat `json:"avgCampsTakenCount"`
	AvgScuttlesPercent               PortionStat `json:"avgScuttlesPercent"`
	AvgTimesRevealedCount            PeriodStat  `json:"avgTimesRevealedCount"`
	AvgDurationOfTimeRevealedSeconds PeriodStat  `json:"avgDurationOfTimeRevealedSeconds"`
}

func (j JunglingStats) Add(o JunglingStats) JunglingStats {
	return JunglingStats{
		AvgCampsTakenCount:               j.AvgCampsTakenCount.Add(o.AvgCampsTakenCount),
		AvgScuttlesPercent:               j.AvgScuttlesPercent.Add(o.AvgScuttlesPercent),
		AvgTimesRevealedCount:            j.AvgTimesRevealedCount.Add(o.AvgTimesRevealedCount),
		AvgDurationOfTimeRevealedSeconds: j.AvgDurationOfTimeRevealedSeconds.Add(o.AvgDurationOfTimeRevealedSeconds),
	}
}

func (j JunglingStats) Div(n float64) JunglingStats {
	return JunglingStats{
		AvgCampsTakenCount:               j.AvgCampsTakenCount.Div(n),
		AvgScuttlesPercent:               j.AvgScuttlesPercent.Div(n),
		AvgTimesRevealedCount:            j.AvgTimesRevealedCount.Div(n),
		AvgDurationOfTimeRevealedSeconds: j.AvgDurationOfTimeRevealedSeconds.Div(n),
	}
}

// LaneCounter is a per-lane counter used by the jungler lane interaction stats.
type LaneCounter struct {
	Top    float64 `json:"top"`
	Middle float64 `json:"middle"`
	Bottom float64 `json:"bottom"`
}

func (c LaneCounter) Add(o LaneCounter) LaneCounter {
	return LaneCounter{Top: c.Top + o.Top, Middle: c.Middle + o.Middle, Bottom: c.Bottom + o.Bottom}
}

func (c LaneCounter) Div(n float64) LaneCounter {
	return LaneCounter{Top: Div(c.Top, n), Middle: Div(c.Middle, n), Bottom: Div(c.Bottom, n)}
}

type JunglerLaneInteraction struct {
	AvgLaneProximityTimeInSecondsPre10min LaneCounter `json:"avgLaneProximityTimeInSecondsPre10min"`
	AvgLaneProximityTimeInSecondsPre15min LaneCounter `json:"avgLaneProximityTimeInSecondsPre15min"`
	GankAttemptCount                      LaneCounter `json:"gankAttemptCount"`
	GankAttemptSuccessCount               LaneCounter `json:"gankAttemptSuccessCount"`
	FirstGankCountPerLane                 LaneCounter `json:"firstGankCountPerLane"`
	FirstGankSuccessCountPerLane          LaneCounter `json:"firstGankSuccessCountPerLane"`
	SecondGankCountPerLane                LaneCounter `json:"secondGankCountPerLane"`
	SecondGankSuccessCountPerLane         LaneCounter `json:"secondGankSuccessCountPerLane"`
	ThirdGankCountPerLane                 LaneCounter `json:"thirdGankCountPerLane"`
	ThirdGankSuccessCountPerLane          LaneCounter `json:"thirdGankSuccessCountPerLane"`

	TimeSpentWithin8SecondsOfTopLanerSeconds    PeriodStat `json:"timeSpentWithin8SecondsOfTopLanerSeconds"`
	TimeSpentWithin8SecondsOfMiddleLanerSeconds PeriodStat `json:"timeSpentWithin8SecondsOfMiddleLanerSeconds"`
	TimeSpentWithin8SecondsOfBottomLanerSeconds PeriodStat `json:"timeSpentWithin8SecondsOfBottomLanerSeconds"`
	TimeSpentWithin8SecondsOfSupportSeconds     PeriodStat `json:"timeSpentWithin8SecondsOfSupportSeconds"`
}

func (l JunglerLaneInteraction) Add(o JunglerLaneInteraction) JunglerLaneInteraction {
	return JunglerLaneInteraction{
		AvgLaneProximityTimeInSecondsPre10min: l.AvgLaneProximityTimeInSecondsPre10min.Add(o.AvgLaneProximityTimeInSecondsPre10min),
		AvgLaneProximityTimeInSecondsPre15min: l.AvgLaneProximityTimeInSecondsPre15min.Add(o.AvgLaneProximityTimeInSecondsPre15min),
		GankAttemptCount:                      l.GankAttemptCount.Add(o.GankAttemptCount),
		GankAttemptSuccessCount:               l.GankAttemptSuccessCount.Add(o.GankAttemptSuccessCount),
		FirstGankCountPerLane:                 l.FirstGankCountPerLane.Add(o.FirstGankCountPerLane),
		FirstGankSuccessCountPerLane:          l.FirstGankSuccessCountPerLane.Add(o.FirstGankSuccessCountPerLane),
		SecondGankCountPerLane:                l.SecondGankCountPerLane.Add(o.SecondGankCountPerLane),
		SecondGankSuccessCountPerLane:         l.SecondGankSuccessCountPerLane.Add(o.SecondGankSuccessCountPerLane),
		ThirdGankCountPerLane:                 l.ThirdGankCountPerLane.Add(o.ThirdGankCountPerLane),
		ThirdGankSuccessCountPerLane:          l.ThirdGankSuccessCountPerLane.Add(o.ThirdGankSuccessCountPerLane),

		TimeSpentWithin8SecondsOfTopLanerSeconds:    l.TimeSpentWithin8SecondsOfTopLanerSeconds.Add(o.TimeSpentWithin8SecondsOfTopLanerSeconds),
		TimeSpentWithin8SecondsOfMiddleLanerSeconds: l.TimeSpentWithin8SecondsOfMiddleLanerSeconds.Add(o.TimeSpentWithin8SecondsOfMiddleLanerSeconds),
		TimeSpentWithin8SecondsOfBottomLanerSeconds: l.TimeSpentWithin8SecondsOfBottomLanerSeconds.Add(o.TimeSpentWithin8SecondsOfBottomLanerSeconds),
		TimeSpentWithin8SecondsOfSupportSeconds:     l.TimeSpentWithin8SecondsOfSupportSeconds.Add(o.TimeSpentWithin8SecondsOfSupportSeconds),
	}
}

func (l JunglerLaneInteraction) Div(n float64) JunglerLaneInteraction {
	return JunglerLaneInteraction{
		AvgLaneProximityTimeInSecondsPre10min: l.AvgLaneProximityTimeInSecondsPre10min.Div(n),
		AvgLaneProximityTimeInSecondsPre15min: l.AvgLaneProximityTimeInSecondsPre15min.Div(n),
		GankAttemptCount:                      l.GankAttemptCount.Div(n),
		GankAttemptSuccessCount:               l.GankAttemptSuccessCount.Div(n),
		FirstGankCountPerLane:                 l.FirstGankCountPerLane.Div(n),
		FirstGankSuccessCountPerLane:          l.FirstGankSuccessCountPerLane.Div(n),
		SecondGankCountPerLane:                l.SecondGankCountPerLane.Div(n),
		SecondGankSuccessCountPerLane:         l.SecondGankSuccessCountPerLane.Div(n),
		ThirdGankCountPerLane:                 l.ThirdGankCountPerLane.Div(n),
		ThirdGankSuccessCountPerLane:          l.ThirdGankSuccessCountPerLane.Div(n),

		TimeSpentWithin8SecondsOfTopLanerSeconds:    l.TimeSpentWithin8SecondsOfTopLanerSeconds.Div(n),
		TimeSpentWithin8SecondsOfMiddleLanerSeconds: l.TimeSpentWithin8SecondsOfMiddleLanerSeconds.Div(n),
		TimeSpentWithin8SecondsOfBottomLanerSeconds: l.TimeSpentWithin8SecondsOfBottomLanerSeconds.Div(n),
		TimeSpentWithin8SecondsOfSupportSeconds:     l.TimeSpentWithin8SecondsOfSupportSeconds.Div(n),
	}
}

type JunglerStats struct {
	General                    GeneralStats           `json:"general"`
	Laning                     LaningStats            `json:"laning"`
	Jungling                   JunglingStats          `json:"jungling"`
	AvgControlWardsBoughtCount PeriodStat             `json:"avgControlWardsBoughtCount"`
	LaneInteraction            JunglerLaneInteraction `json:"laneInteraction"`
}

func (s *JunglerStats) Role() Role         { return RoleJungler }
func (s *JunglerStats) Base() GeneralStats { return s.General }
func (s *JunglerStats) Lane() LaningStats  { return s.Laning }

func (s JunglerStats) Add(o JunglerStats) JunglerStats {
	return JunglerStats{
		General:                    s.General.Add(o.General),
		Laning:                     s.Laning.Add(o.Laning),
		Jungling:                   s.Jungling.Add(o.Jungling),
		AvgControlWardsBoughtCount: s.AvgControlWardsBoughtCount.Add(o.AvgControlWardsBoughtCount),
		LaneInteraction:            s.LaneInteraction.Add(o.LaneInteraction),
	}
}

func (s JunglerStats) Div(n float64) JunglerStats {
	return JunglerStats{
		General:                    s.General.Div(n),
		Laning:                     s.Laning.Div(n),
		Jungling:                   s.Jungling.Div(n),
		AvgControlWardsBoughtCount: s.AvgControlWardsBoughtCount.Div(n),
		LaneInteraction:            s.LaneInteraction.Div(n),
	}
}

func (s JunglerStats) Against(enemy JunglerStats) JunglerStats {
	s.Laning = s.Laning.Sub(enemy.Laning)
	return s
}
