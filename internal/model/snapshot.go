package model

// Snapshot is a self-contained dump of the match store. Participations may be left
// out; they are then derived by matching player summoner names.
type Snapshot struct {
	Teams          []*Team               `json:"teams"`
	Players        []*Player             `json:"players"`
	Matches        []*MatchRecord        `json:"matches"`
	Participations []*MatchParticipation `json:"participations,omitempty"`
}
