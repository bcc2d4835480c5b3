package models

import "time"

type MatchStatus string

const (
	MatchScheduled MatchStatus = "SCHEDULED"
	MatchLive      MatchStatus = "LIVE"
	MatchFinished  MatchStatus = "FINISHED"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchScheduled, MatchLive, MatchFinished:
		return true
	}
	return false
}

// Match references its teams by ID. TeamA/TeamB are display labels and the
// fallback join key for fixtures that were entered by name only.
type Match struct {
	ID        string       `json:"id"`
	Time      string       `json:"time"`
	Court     string       `json:"court"`
	TeamAID   string       `json:"team_a_id,omitempty"`
	TeamBID   string       `json:"team_b_id,omitempty"`
	TeamA     string       `json:"team_a"`
	TeamB     string       `json:"team_b"`
	ScoreA    *int         `json:"score_a"`
	ScoreB    *int         `json:"score_b"`
	Status    MatchStatus  `json:"status"`
	Round     string       `json:"round,omitempty"`
	Division  Division     `json:"division,omitempty"`
	Report    *MatchReport `json:"report,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Counted is true when the match contributes to standings.
func (m Match) Counted() bool {
	return m.Status == MatchFinished && m.ScoreA != nil && m.ScoreB != nil
}

func (m Match) Clone() Match {
	c := m
	c.ScoreA = clonePtr(m.ScoreA)
	c.ScoreB = clonePtr(m.ScoreB)
	if m.Report != nil {
		r := m.Report.Clone()
		c.Report = &r
	}
	return c
}

// IntPtr is a helper for optional scores.
func IntPtr(v int) *int {
	return &v
}
