package standings

import "github.com/muskiz/beach-handball/models"

// Partition narrows the registries to one division. A match belongs to the
// division when it is tagged with it, or, when untagged, when either side is a
// registered team of that division.
func Partition(teams []models.Team, matches []models.Match, division models.Division) ([]models.Team, []models.Match) {
	ids := make(map[string]struct{})
	names := make(map[string]struct{})
	inDivision := make([]models.Team, 0, len(teams))
	for _, team := range teams {
		if team.Division != division {
			continue
		}
		inDivision = append(inDivision, team)
		if team.ID != "" {
			ids[team.ID] = struct{}{}
		}
		names[team.Name] = struct{}{}
	}

	member := func(id, name string) bool {
		if id != "" {
			_, ok := ids[id]
			return ok
		}
		_, ok := names[name]
		return ok
	}

	filtered := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		switch {
		case m.Division == division:
			filtered = append(filtered, m)
		case m.Division == "" && (member(m.TeamAID, m.TeamA) || member(m.TeamBID, m.TeamB)):
			filtered = append(filtered, m)
		}
	}
	return inDivision, filtered
}

func ComputeDivision(teams []models.Team, matches []models.Match, division models.Division) []models.StandingRow {
	t, m := Partition(teams, matches, division)
	return Compute(t, m)
}

// ComputeAll builds one table per division.
func ComputeAll(teams []models.Team, matches []models.Match) map[models.Division][]models.StandingRow {
	out := make(map[models.Division][]models.StandingRow, len(models.Divisions()))
	for _, d := range models.Divisions() {
		out[d] = ComputeDivision(teams, matches, d)
	}
	return out
}
