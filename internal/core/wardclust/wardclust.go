// Package wardclust finds ward placement hot spots.
package wardclust

import "exusiai.dev/matchstats/internal/model"

const (
	// MaxMostCommon caps the raw ward samples returned as "most common" wards.
	MaxMostCommon = 3000
	// PlayerFirstWardClusters is how many first-ward clusters a player report emits.
	PlayerFirstWardClusters = 3

	// two samples belong together when their squared map distance, in thousands of
	// map units, is below this
	clusterDistance = 4
)

// Options narrows the qualifying ward events.
type Options struct {
	model.WardOptions
	// TeamSide keeps only wards placed by this side. Zero keeps both.
	TeamSide model.Side
}

func (o *Options) accepts(w *model.WardEvent) bool {
	if o.StartTime != nil && o.EndTime != nil {
		if w.TimeOffsetSeconds < *o.StartTime || w.TimeOffsetSeconds > *o.EndTime {
			return false
		}
	}
	if o.TeamSide != model.SideUnspecified && o.TeamSide != w.TeamSide {
		return false
	}
	if o.WardType != 0 && o.WardType != w.Type {
		return false
	}
	return true
}

func newResponse() model.WardResponse {
	return model.WardResponse{
		MostCommonWards: []model.WardAggregation{},
		FirstWards:      []model.WardAggregation{},
	}
}

func trackLength(resp *model.WardResponse, m *model.MatchRecord) {
	if l := m.Duration().Seconds(); l > resp.MaxGameLength {
		resp.MaxGameLength = l
	}
}

func addMostCommon(resp *model.WardResponse, w model.WardEvent) {
	if len(resp.MostCommonWards) < MaxMostCommon {
		resp.MostCommonWards = append(resp.MostCommonWards, model.WardAggregation{WardEvent: w})
	}
}

// ForTeam aggregates the wards placed by teamID's side. First wards are the first
// qualifying ward of each role in each match, reduced to one hot spot per role.
func ForTeam(teamID int, matches []*model.MatchRecord, opts Options) model.WardResponse {
	resp := newResponse()
	firstByRole := make(map[model.Role][]model.WardEvent, len(model.Roles))

	for _, m := range matches {
		if m == nil || m.WardsInfo == nil {
			continue
		}
		trackLength(&resp, m)
		own, ok := m.SideOf(teamID)
		if !ok {
			continue
		}

		seen := make(map[model.Role]bool, len(model.Roles))
		for i := range m.WardsInfo.Events {
			w := m.WardsInfo.Events[i]
			if w.TeamSide != own || !opts.accepts(&w) {
				continue
			}
			if opts.WardQueryType.Includes(model.WardQueryMostCommon) {
				addMostCommon(&resp, w)
			}
			if opts.WardQueryType.Includes(model.WardQueryFirstWard) && w.Role.Valid() && !seen[w.Role] {
				seen[w.Role] = true
				firstByRole[w.Role] = append(firstByRole[w.Role], w)
			}
		}
	}

	if opts.WardQueryType.Includes(model.WardQueryFirstWard) {
		for _, r := range model.Roles {
			resp.FirstWards = append(resp.FirstWards, Cluster(firstByRole[r], 1)...)
		}
	}
	return resp
}

// ForPlayer aggregates the wards placed under summoner. First wards are the first
// qualifying ward of each match, reduced to the most common hot spots.
func ForPlayer(summoner string, matches []*model.MatchRecord, opts Options) model.WardResponse {
	resp := newResponse()
	var first []model.WardEvent

	for _, m := range matches {
		if m == nil || m.WardsInfo == nil {
			continue
		}
		trackLength(&resp, m)

		for i := range m.WardsInfo.Events {
			w := m.WardsInfo.Events[i]
			if w.SummonerName != summoner || !opts.accepts(&w) {
				continue
			}
			if opts.WardQueryType.Includes(model.WardQueryMostCommon) {
				addMostCommon(&resp, w)
			}
			if opts.WardQueryType.Includes(model.WardQueryFirstWard) {
				first = append(first, w)
				break
			}
		}
	}

	if opts.WardQueryType.Includes(model.WardQueryFirstWard) {
		resp.FirstWards = Cluster(first, PlayerFirstWardClusters)
	}
	return resp
}

func near(a, b *model.WardEvent) bool {
	dx := (a.Coordinates.X - b.Coordinates.X) / 1000
	dz := (a.Coordinates.Z - b.Coordinates.Z) / 1000
	return dx*dx+dz*dz < clusterDistance
}

// centroid gathers every sample near samples[i]. The representative takes its
// descriptive fields from the last member and averages position and time.
func centroid(samples []model.WardEvent, i int) model.WardAggregation {
	var (
		agg  model.WardEvent
		size int
	)
	for j := range samples {
		b := &samples[j]
		if !near(&samples[i], b) {
			continue
		}
		agg.Coordinates.X += b.Coordinates.X
		agg.Coordinates.Y += b.Coordinates.Y
		agg.Coordinates.Z += b.Coordinates.Z
		agg.TimeOffsetSeconds += b.TimeOffsetSeconds
		agg.Role = b.Role
		agg.SummonerName = b.SummonerName
		agg.TeamSide = b.TeamSide
		agg.Type = b.Type
		size++
	}
	n := float64(size)
	agg.Coordinates.X /= n
	agg.Coordinates.Y /= n
	agg.Coordinates.Z /= n
	agg.TimeOffsetSeconds /= n
	return model.WardAggregation{
		Percent:   n * 100 / float64(len(samples)),
		WardEvent: agg,
	}
}

// Cluster builds one candidate cluster around every sample and keeps up to limit of them,
// largest first. Ties keep encounter order and a candidate whose centroid equals one
// already kept at an equal or larger share is dropped.
func Cluster(samples []model.WardEvent, limit int) []model.WardAggregation {
	if len(samples) == 0 || limit <= 0 {
		return []model.WardAggregation{}
	}
	clusters := make([]model.WardAggregation, 0, limit+1)

	for i := range samples {
		candidate := centroid(samples, i)

		placed := false
		for k := range clusters {
			if clusters[k].Percent < candidate.Percent {
				clusters = append(clusters, model.WardAggregation{})
				copy(clusters[k+1:], clusters[k:])
				clusters[k] = candidate
				placed = true
				break
			}
			if sameSpot(&clusters[k].WardEvent, &candidate.WardEvent) {
				placed = true
				break
			}
		}
		if !placed && len(clusters) < limit {
			clusters = append(clusters, candidate)
		}
		if len(clusters) > limit {
			clusters = clusters[:limit]
		}
	}
	return clusters
}

func sameSpot(a, b *model.WardEvent) bool {
	return a.Coordinates.X == b.Coordinates.X && a.Coordinates.Z == b.Coordinates.Z
}
