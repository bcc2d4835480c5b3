package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muskiz/beach-handball/models"
)

func TestPartitionByDivision(t *testing.T) {
	teams := []models.Team{
		{ID: "e1", Name: "Beach Kings", Division: models.DivisionElite},
		{ID: "e2", Name: "Sand Stormers", Division: models.DivisionElite},
		{ID: "a1", Name: "Dune Kings", Division: models.DivisionAmateur},
	}
	matches := []models.Match{
		{TeamAID: "e1", TeamBID: "e2", ScoreA: models.IntPtr(1), ScoreB: models.IntPtr(0), Status: models.MatchFinished},
		{TeamA: "Dune Kings", TeamB: "Guests", ScoreA: models.IntPtr(2), ScoreB: models.IntPtr(2), Status: models.MatchFinished},
		{TeamA: "Nobody", TeamB: "Else", Division: models.DivisionElite, Status: models.MatchScheduled},
	}

	eliteTeams, eliteMatches := Partition(teams, matches, models.DivisionElite)
	assert.Len(t, eliteTeams, 2)
	assert.Len(t, eliteMatches, 2)

	amateur := ComputeDivision(teams, matches, models.DivisionAmateur)
	require.Len(t, amateur, 2)
	assert.Equal(t, "Dune Kings", amateur[0].Name)
	assert.Equal(t, "Guests", amateur[1].Name)
	assert.Equal(t, 1, amateur[1].Points)
}

func TestComputeAllCoversEveryDivision(t *testing.T) {
	all := ComputeAll([]models.Team{{ID: "j1", Name: "Kids", Division: models.DivisionJuvenile}}, nil)
	require.Len(t, all, 3)
	assert.Empty(t, all[models.DivisionElite])
	assert.Len(t, all[models.DivisionJuvenile], 1)
}
