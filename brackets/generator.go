package brackets

import (
	"context"
	"errors"

	"github.com/muskiz/beach-handball/models"
)

var ErrNotEnoughEntrants = errors.New("not enough teams to generate pairings (minimum 2)")

// Entrant - команда, участвующая в жеребьёвке. Порядок в срезе = посев.
type Entrant struct {
	TeamID string
	Name   string
}

type GenerateParams struct {
	Division models.Division
	Entrants []Entrant
	// Legs: 1 - один круг, 2 - два круга (только для round robin).
	Legs int
}

// Pairing - будущий матч без времени и площадки.
type Pairing struct {
	UID          string
	Round        string
	RoundNumber  int
	OrderInRound int
	Division     models.Division
	A            Entrant
	B            Entrant
}

type PairingGenerator interface {
	Generate(ctx context.Context, params GenerateParams) ([]Pairing, error)

	GetName() string
}

// EntrantsFromTeams сохраняет порядок команд.
func EntrantsFromTeams(teams []models.Team) []Entrant {
	out := make([]Entrant, len(teams))
	for i, t := range teams {
		out[i] = Entrant{TeamID: t.ID, Name: t.Name}
	}
	return out
}

// EntrantsFromStandings - посев по итоговой таблице, первая строка = первый посев.
// Строки без TeamID (имена вне реестра) в сетку не попадают.
func EntrantsFromStandings(rows []models.StandingRow) []Entrant {
	out := make([]Entrant, 0, len(rows))
	for _, r := range rows {
		if r.TeamID == "" {
			continue
		}
		out = append(out, Entrant{TeamID: r.TeamID, Name: r.Name})
	}
	return out
}
