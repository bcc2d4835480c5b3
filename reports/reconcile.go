// Package reports keeps a match's aggregate score consistent with the
// per-player goal tallies recorded in its report (acta).
package reports

import (
	"errors"
	"fmt"

	"github.com/muskiz/beach-handball/models"
)

var (
	ErrPlayerNotInMatch = errors.New("player is not on either roster of this match")
	ErrUnknownStatField = errors.New("unknown player stat field")
)

type StatField string

const (
	FieldGoals       StatField = "goals"
	FieldYellowCards StatField = "yellow_cards"
	FieldRedCards    StatField = "red_cards"
)

func (f StatField) Valid() bool {
	switch f {
	case FieldGoals, FieldYellowCards, FieldRedCards:
		return true
	}
	return false
}

// NewDigitalReport seeds a zeroed stat line for every rostered player of both teams.
// Either team may be nil when the match references a team outside the registry.
func NewDigitalReport(teamA, teamB *models.Team) models.MatchReport {
	stats := make([]models.PlayerStat, 0)
	for _, team := range []*models.Team{teamA, teamB} {
		if team == nil {
			continue
		}
		for _, p := range team.Players {
			stats = append(stats, models.PlayerStat{PlayerID: p.ID})
		}
	}
	return models.MatchReport{Type: models.ReportDigital, PlayerStats: stats}
}

// Reconcile recomputes both scores from the goal tallies and marks the match
// finished. Attribution is by roster membership, so stat lines for players on
// neither roster count for nobody.
func Reconcile(m models.Match, teamA, teamB *models.Team) models.Match {
	out := m.Clone()
	scoreA, scoreB := 0, 0
	if out.Report != nil {
		for _, stat := range out.Report.PlayerStats {
			if teamA.HasPlayer(stat.PlayerID) {
				scoreA += stat.Goals
			}
			if teamB.HasPlayer(stat.PlayerID) {
				scoreB += stat.Goals
			}
		}
	}
	out.ScoreA = &scoreA
	out.ScoreB = &scoreB
	out.Status = models.MatchFinished
	return out
}

// AdjustStat adds delta to one counter of a player's stat line, never letting it
// drop below zero, then reconciles the scores. The input match is not modified.
func AdjustStat(m models.Match, teamA, teamB *models.Team, playerID string, field StatField, delta int) (models.Match, error) {
	if !field.Valid() {
		return m, fmt.Errorf("%w: %q", ErrUnknownStatField, field)
	}
	if !teamA.HasPlayer(playerID) && !teamB.HasPlayer(playerID) {
		return m, fmt.Errorf("%w: %s", ErrPlayerNotInMatch, playerID)
	}

	out := m.Clone()
	if out.Report == nil {
		r := NewDigitalReport(teamA, teamB)
		out.Report = &r
	}

	idx := -1
	for i, stat := range out.Report.PlayerStats {
		if stat.PlayerID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Roster grew after the report was opened.
		out.Report.PlayerStats = append(out.Report.PlayerStats, models.PlayerStat{PlayerID: playerID})
		idx = len(out.Report.PlayerStats) - 1
	}

	stat := &out.Report.PlayerStats[idx]
	switch field {
	case FieldGoals:
		stat.Goals = clampAdd(stat.Goals, delta)
	case FieldYellowCards:
		stat.YellowCards = clampAdd(stat.YellowCards, delta)
	case FieldRedCards:
		stat.RedCards = clampAdd(stat.RedCards, delta)
	}

	return Reconcile(out, teamA, teamB), nil
}

func clampAdd(v, delta int) int {
	if v+delta < 0 {
		return 0
	}
	return v + delta
}
