package model

import "gopkg.in/guregu/null.v3"

// PeriodStat is a metric sampled at fixed match-time checkpoints.
// Min20, Min30 and Total are absent for short matches or metrics that do not track them.
type PeriodStat struct {
	Min10 float64    `json:"min10"`
	Min15 float64    `json:"min15"`
	Min20 null.Float `json:"min20"`
	Min30 null.Float `json:"min30"`
	Total null.Float `json:"total"`
}

// Add sums checkpoint-wise. Absent checkpoints contribute zero and the result always has
// every checkpoint present.
func (p PeriodStat) Add(o PeriodStat) PeriodStat {
	return PeriodStat{
		Min10: p.Min10 + o.Min10,
		Min15: p.Min15 + o.Min15,
		Min20: addNull(p.Min20, o.Min20),
		Min30: addNull(p.Min30, o.Min30),
		Total: addNull(p.Total, o.Total),
	}
}

func (p PeriodStat) Sub(o PeriodStat) PeriodStat {
	return PeriodStat{
		Min10: p.Min10 - o.Min10,
		Min15: p.Min15 - o.Min15,
		Min20: null.FloatFrom(p.Min20.ValueOrZero() - o.Min20.ValueOrZero()),
		Min30: null.FloatFrom(p.Min30.ValueOrZero() - o.Min30.ValueOrZero()),
		Total: null.FloatFrom(p.Total.ValueOrZero() - o.Total.ValueOrZero()),
	}
}

// Div divides every checkpoint by n. A zero n yields an all-zero stat.
func (p PeriodStat) Div(n float64) PeriodStat {
	return PeriodStat{
		Min10: Div(p.Min10, n),
		Min15: Div(p.Min15, n),
		Min20: null.FloatFrom(Div(p.Min20.ValueOrZero(), n)),
		Min30: null.FloatFrom(Div(p.Min30.ValueOrZero(), n)),
		Total: null.FloatFrom(Div(p.Total.ValueOrZero(), n)),
	}
}

func addNull(a, b null.Float) null.Float {
	return null.FloatFrom(a.ValueOrZero() + b.ValueOrZero())
}

// Div is a division guarded against a zero denominator.
func Div(v, n float64) float64 {
	if n == 0 {
		return 0
	}
	return v / n
}

type PortionItem struct {
	Count float64 `json:"count"`
	Total float64 `json:"total"`
}

func (p PortionItem) Add(o PortionItem) PortionItem {
	return PortionItem{Count: p.Count + o.Count, Total: p.Total + o.Total}
}

func (p PortionItem) Div(n float64) PortionItem {
	return PortionItem{Count: Div(p.Count, n), Total: Div(p.Total, n)}
}

// PortionStat tracks "count out of total" at the 10 and 15 minute checkpoints.
type PortionStat struct {
	Min10 PortionItem `json:"min10"`
	Min15 PortionItem `json:"min15"`
}

func (p PortionStat) Add(o PortionStat) PortionStat {
	return PortionStat{Min10: p.Min10.Add(o.Min10), Min15: p.Min15.Add(o.Min15)}
}

func (p PortionStat) Div(n float64) PortionStat {
	return PortionStat{Min10: p.Min10.Div(n), Min15: p.Min15.Div(n)}
}

// DamageShare holds per-role percentages (0-100) of a team's team-fight damage.
type DamageShare struct {
	TopPercent     float64 `json:"topPercent"`
	JunglePercent  float64 `json:"junglePercent"`
	MiddlePercent  float64 `json:"middlePercent"`
	BottomPercent  float64 `json:"bottomPercent"`
	SupportPercent float64 `json:"supportPercent"`
}

func (d DamageShare) Add(o DamageShare) DamageShare {
	return DamageShare{
		TopPercent:     d.TopPercent + o.TopPercent,
		JunglePercent:  d.JunglePercent + o.JunglePercent,
		MiddlePercent:  d.MiddlePercent + o.MiddlePercent,
		BottomPercent:  d.BottomPercent + o.BottomPercent,
		SupportPercent: d.SupportPercent + o.SupportPercent,
	}
}

func (d DamageShare) Div(n float64) DamageShare {
	return DamageShare{
		TopPercent:     Div(d.TopPercent, n),
		JunglePercent:  Div(d.JunglePercent, n),
		MiddlePercent:  Div(d.MiddlePercent, n),
		BottomPercent:  Div(d.BottomPercent, n),
		SupportPercent: Div(d.SupportPercent, n),
	}
}

type TeamFightDamage struct {
	Team  DamageShare `json:"team"`
	Enemy DamageShare `json:"enemy"`
}

func (t TeamFightDamage) Add(o TeamFightDamage) TeamFightDamage {
	return TeamFightDamage{Team: t.Team.Add(o.Team), Enemy: t.Enemy.Add(o.Enemy)}
}

func (t TeamFightDamage) Div(n float64) TeamFightDamage {
	return TeamFightDamage{Team: t.Team.Div(n), Enemy: t.Enemy.Div(n)}
}
