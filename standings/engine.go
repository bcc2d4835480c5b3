// Package standings folds match results into a league table.
//
// The engine is total over its input: unknown team references become
// zero-initialized rows, unfinished or incompletely scored matches are
// skipped, and nothing is ever returned as an error.
package standings

import (
	"sort"

	"github.com/muskiz/beach-handball/models"
)

const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// teamKey joins match sides to rows. Teams with an ID are keyed by it,
// name-only references by name.
type teamKey struct {
	id   string
	name string
}

type table struct {
	rows   []*models.StandingRow
	byKey  map[teamKey]*models.StandingRow
	byName map[string]teamKey
}

func newTable(capacity int) *table {
	return &table{
		rows:   make([]*models.StandingRow, 0, capacity),
		byKey:  make(map[teamKey]*models.StandingRow, capacity),
		byName: make(map[string]teamKey, capacity),
	}
}

func (t *table) add(key teamKey, row *models.StandingRow) *models.StandingRow {
	t.byKey[key] = row
	t.rows = append(t.rows, row)
	if _, ok := t.byName[row.Name]; !ok {
		t.byName[row.Name] = key
	}
	return row
}

func (t *table) register(team models.Team) {
	key := teamKey{id: team.ID}
	if team.ID == "" {
		key = teamKey{name: team.Name}
	}
	if _, exists := t.byKey[key]; exists {
		// Same key twice collapses into one row.
		return
	}
	row := &models.StandingRow{
		TeamID:   team.ID,
		Name:     team.Name,
		Division: team.Division,
	}
	if team.LogoURL != nil {
		logo := *team.LogoURL
		row.LogoURL = &logo
	}
	t.add(key, row)
}

// resolve returns the row for one side of a match, creating an orphan row on
// first encounter.
func (t *table) resolve(id, name string) *models.StandingRow {
	if id != "" {
		key := teamKey{id: id}
		if row, ok := t.byKey[key]; ok {
			return row
		}
		label := name
		if label == "" {
			label = id
		}
		return t.add(key, &models.StandingRow{TeamID: id, Name: label})
	}
	if key, ok := t.byName[name]; ok {
		return t.byKey[key]
	}
	return t.add(teamKey{name: name}, &models.StandingRow{Name: name})
}

func (t *table) sorted() []models.StandingRow {
	out := make([]models.StandingRow, len(t.rows))
	for i, row := range t.rows {
		out[i] = *row
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].GoalDifference() > out[j].GoalDifference()
	})
	return out
}

func record(a, b *models.StandingRow, scoreA, scoreB int) {
	a.Played++
	b.Played++
	a.GoalsFor += scoreA
	a.GoalsAgainst += scoreB
	b.GoalsFor += scoreB
	b.GoalsAgainst += scoreA

	switch {
	case scoreA > scoreB:
		a.Won++
		a.Points += PointsWin
		b.Lost++
		b.Points += PointsLoss
	case scoreB > scoreA:
		b.Won++
		b.Points += PointsWin
		a.Lost++
		a.Points += PointsLoss
	default:
		a.Drawn++
		b.Drawn++
		a.Points += PointsDraw
		b.Points += PointsDraw
	}
}

// Summary is Compute plus counts of what was left out of the fold.
type Summary struct {
	Rows []models.StandingRow
	// Counted finished matches with both scores.
	Counted int
	// Incomplete finished matches with a missing score.
	Incomplete int
	// Pending matches that are scheduled or live.
	Pending int
}

// Summarize builds the table and reports how many matches were skipped.
func Summarize(teams []models.Team, matches []models.Match) Summary {
	t := newTable(len(teams))
	for _, team := range teams {
		t.register(team)
	}

	sides := make([][2]*models.StandingRow, len(matches))
	for i, m := range matches {
		sides[i][0] = t.resolve(m.TeamAID, m.TeamA)
		sides[i][1] = t.resolve(m.TeamBID, m.TeamB)
	}

	var s Summary
	for i, m := range matches {
		switch {
		case m.Counted():
			record(sides[i][0], sides[i][1], *m.ScoreA, *m.ScoreB)
			s.Counted++
		case m.Status == models.MatchFinished:
			s.Incomplete++
		default:
			s.Pending++
		}
	}
	s.Rows = t.sorted()
	return s
}

// Compute returns one row per distinct team across the registry and the
// matches, ordered by points then goal difference. Ties keep discovery order:
// registry order first, then orphans in the order matches reference them.
func Compute(teams []models.Team, matches []models.Match) []models.StandingRow {
	return Summarize(teams, matches).Rows
}
