package model

// MatchIngestedEvent is published on the ingest stream once a match is stored.
type MatchIngestedEvent struct {
	MatchID    int `json:"matchId"`
	RedTeamID  int `json:"redTeamId"`
	BlueTeamID int `json:"blueTeamId"`
}

// TeamIDs lists the known teams of the match.
func (e *MatchIngestedEvent) TeamIDs() []int {
	ids := make([]int, 0, 2)
	for _, id := range []int{e.RedTeamID, e.BlueTeamID} {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
