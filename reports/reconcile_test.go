package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muskiz/beach-handball/models"
)

func fixture() (models.Match, *models.Team, *models.Team) {
	a := &models.Team{ID: "ta", Name: "Sand Stormers", Players: []models.Player{{ID: "p1"}, {ID: "p2"}}}
	b := &models.Team{ID: "tb", Name: "Dune Kings", Players: []models.Player{{ID: "p3"}}}
	m := models.Match{ID: "m1", TeamAID: "ta", TeamBID: "tb", TeamA: a.Name, TeamB: b.Name, Status: models.MatchScheduled}
	return m, a, b
}

func TestNewDigitalReportSeedsBothRosters(t *testing.T) {
	_, a, b := fixture()
	r := NewDigitalReport(a, b)

	assert.Equal(t, models.ReportDigital, r.Type)
	require.Len(t, r.PlayerStats, 3)
	assert.Equal(t, models.PlayerStat{PlayerID: "p3"}, r.PlayerStats[2])

	r = NewDigitalReport(a, nil)
	assert.Len(t, r.PlayerStats, 2)
}

func TestAdjustStatReconcilesScores(t *testing.T) {
	m, a, b := fixture()

	var err error
	m, err = AdjustStat(m, a, b, "p1", FieldGoals, 1)
	require.NoError(t, err)
	m, err = AdjustStat(m, a, b, "p2", FieldGoals, 1)
	require.NoError(t, err)
	m, err = AdjustStat(m, a, b, "p3", FieldGoals, 1)
	require.NoError(t, err)

	require.NotNil(t, m.ScoreA)
	require.NotNil(t, m.ScoreB)
	assert.Equal(t, 2, *m.ScoreA)
	assert.Equal(t, 1, *m.ScoreB)
	assert.Equal(t, models.MatchFinished, m.Status)
}

func TestAdjustStatClampsAtZero(t *testing.T) {
	m, a, b := fixture()

	m, err := AdjustStat(m, a, b, "p1", FieldYellowCards, -1)
	require.NoError(t, err)
	m, err = AdjustStat(m, a, b, "p1", FieldGoals, -1)
	require.NoError(t, err)

	stat := m.Report.PlayerStats[0]
	assert.Zero(t, stat.YellowCards)
	assert.Zero(t, stat.Goals)
	assert.Equal(t, 0, *m.ScoreA)
	// Editing any counter still finalizes the match.
	assert.Equal(t, models.MatchFinished, m.Status)
}

func TestAdjustStatCardsDoNotChangeScore(t *testing.T) {
	m, a, b := fixture()
	m, err := AdjustStat(m, a, b, "p3", FieldRedCards, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, m.Report.PlayerStats[2].RedCards)
	assert.Equal(t, 0, *m.ScoreB)
}

func TestAdjustStatDoesNotMutateInput(t *testing.T) {
	m, a, b := fixture()
	r := NewDigitalReport(a, b)
	m.Report = &r

	out, err := AdjustStat(m, a, b, "p1", FieldGoals, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Report.PlayerStats[0].Goals)
	assert.Zero(t, m.Report.PlayerStats[0].Goals)
	assert.Nil(t, m.ScoreA)
	assert.Equal(t, models.MatchScheduled, m.Status)
}

func TestAdjustStatAppendsLateRosterAddition(t *testing.T) {
	m, a, b := fixture()
	r := NewDigitalReport(a, b)
	m.Report = &r
	b.Players = append(b.Players, models.Player{ID: "p4"})

	out, err := AdjustStat(m, a, b, "p4", FieldGoals, 3)
	require.NoError(t, err)
	require.Len(t, out.Report.PlayerStats, 4)
	assert.Equal(t, 3, *out.ScoreB)
}

func TestAdjustStatRejectsUnknownInput(t *testing.T) {
	m, a, b := fixture()

	_, err := AdjustStat(m, a, b, "stranger", FieldGoals, 1)
	assert.ErrorIs(t, err, ErrPlayerNotInMatch)

	_, err = AdjustStat(m, a, b, "p1", StatField("assists"), 1)
	assert.ErrorIs(t, err, ErrUnknownStatField)
}

func TestReconcileIgnoresStatsOffRoster(t *testing.T) {
	m, a, b := fixture()
	m.Report = &models.MatchReport{
		Type: models.ReportDigital,
		PlayerStats: []models.PlayerStat{
			{PlayerID: "p1", Goals: 4},
			{PlayerID: "transferred", Goals: 9},
			{PlayerID: "p3", Goals: 2},
		},
	}

	out := Reconcile(m, a, b)
	assert.Equal(t, 4, *out.ScoreA)
	assert.Equal(t, 2, *out.ScoreB)
}

func TestReconcileWithoutReport(t *testing.T) {
	m, a, b := fixture()
	out := Reconcile(m, a, b)
	assert.Equal(t, 0, *out.ScoreA)
	assert.Equal(t, 0, *out.ScoreB)
	assert.Equal(t, models.MatchFinished, out.Status)
}
