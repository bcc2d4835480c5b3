package models

// StandingRow - агрегированная строка турнирной таблицы. Не хранится,
// пересчитывается из реестров команд и матчей при каждом запросе.
type StandingRow struct {
	TeamID       string   `json:"team_id,omitempty"`
	Name         string   `json:"name"`
	Division     Division `json:"division,omitempty"`
	LogoURL      *string  `json:"logo_url,omitempty"`
	Played       int      `json:"played"`
	Won          int      `json:"won"`
	Drawn        int      `json:"drawn"`
	Lost         int      `json:"lost"`
	GoalsFor     int      `json:"goals_for"`
	GoalsAgainst int      `json:"goals_against"`
	Points       int      `json:"points"`
}

func (r StandingRow) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}
