package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/muskiz/beach-handball/brackets"
	"github.com/muskiz/beach-handball/models"
	"github.com/muskiz/beach-handball/reports"
	"github.com/muskiz/beach-handball/repositories"
	"github.com/muskiz/beach-handball/storage"
)

type CreateMatchInput struct {
	TeamAID  string          `json:"team_a_id" validate:"required"`
	TeamBID  string          `json:"team_b_id" validate:"required,nefield=TeamAID"`
	Time     string          `json:"time" validate:"omitempty,clock"`
	Court    string          `json:"court" validate:"max=40"`
	Round    string          `json:"round" validate:"max=60"`
	Division models.Division `json:"division" validate:"omitempty,division"`
}

// ScoreInput: null в любом поле снимает счёт и возвращает матч в SCHEDULED.
type ScoreInput struct {
	ScoreA *int `json:"score_a"`
	ScoreB *int `json:"score_b"`
}

type AdjustStatInput struct {
	PlayerID string `json:"player_id" validate:"required"`
	Field    string `json:"field" validate:"required,oneof=goals yellow_cards red_cards"`
	Delta    int    `json:"delta" validate:"required,min=-50,max=50"`
}

type GenerateScheduleInput struct {
	StartTime    string            `json:"start_time" validate:"required,clock"`
	EndTime      string            `json:"end_time" validate:"required,clock"`
	IntervalMins int               `json:"interval_mins" validate:"required,min=5,max=240"`
	Courts       []string          `json:"courts" validate:"required,min=1,dive,required"`
	LunchBreak   bool              `json:"lunch_break"`
	Legs         int               `json:"legs" validate:"omitempty,oneof=1 2"`
	Divisions    []models.Division `json:"divisions" validate:"omitempty,dive,division"`
}

type GenerateKnockoutInput struct {
	Division     models.Division `json:"division" validate:"required,division"`
	Size         int             `json:"size" validate:"omitempty,oneof=2 4 8 16"`
	StartTime    string          `json:"start_time" validate:"required,clock"`
	EndTime      string          `json:"end_time" validate:"required,clock"`
	IntervalMins int             `json:"interval_mins" validate:"required,min=5,max=240"`
	Courts       []string        `json:"courts" validate:"required,min=1,dive,required"`
}

type MatchService interface {
	Create(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	GetByID(ctx context.Context, id string) (*models.Match, error)
	List(ctx context.Context, filter repositories.MatchFilter) ([]models.Match, error)
	SetScore(ctx context.Context, id string, input ScoreInput) (*models.Match, error)
	SetStatus(ctx context.Context, id string, status models.MatchStatus) (*models.Match, error)
	Delete(ctx context.Context, id string) error

	GenerateSchedule(ctx context.Context, input GenerateScheduleInput) ([]models.Match, error)
	GenerateKnockout(ctx context.Context, input GenerateKnockoutInput) ([]models.Match, error)

	OpenReport(ctx context.Context, id string) (*models.Match, error)
	AdjustStat(ctx context.Context, id string, input AdjustStatInput) (*models.Match, error)
	SetObservations(ctx context.Context, id string, observations string) (*models.Match, error)
	AttachReportImage(ctx context.Context, id, contentType string, r io.Reader) (*models.Match, error)
}

type matchService struct {
	matchRepo   repositories.MatchRepository
	teamRepo    repositories.TeamRepository
	standings   StandingsService
	broadcaster Broadcaster
	uploader    storage.FileUploader
	logger      *slog.Logger

	// Все правки матча - read-modify-write над одной записью.
	mu sync.Mutex
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
	standingsService StandingsService,
	broadcaster Broadcaster,
	uploader storage.FileUploader,
	logger *slog.Logger,
) MatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &matchService{
		matchRepo:   matchRepo,
		teamRepo:    teamRepo,
		standings:   standingsService,
		broadcaster: broadcaster,
		uploader:    uploader,
		logger:      logger,
	}
}

func mapMatchRepoError(err error, matchID string) error {
	if errors.Is(err, repositories.ErrMatchNotFound) {
		return ErrMatchNotFound
	}
	return fmt.Errorf("match repository failure (id: %s): %w", matchID, err)
}

func (s *matchService) Create(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	teamA, err := s.teamRepo.GetByID(ctx, input.TeamAID)
	if err != nil {
		return nil, mapTeamRepoError(err, input.TeamAID)
	}
	teamB, err := s.teamRepo.GetByID(ctx, input.TeamBID)
	if err != nil {
		return nil, mapTeamRepoError(err, input.TeamBID)
	}
	// Матч играется внутри одной категории, иначе таблицы получат чужие строки.
	if teamA.Division != teamB.Division {
		return nil, fieldError("team_b_id", "must be in the same division as team_a_id")
	}
	division := teamA.Division
	if input.Division != "" && input.Division != division {
		return nil, fieldError("division", "must match the teams' division ("+string(division)+")")
	}

	match := &models.Match{
		Time:     input.Time,
		Court:    strings.TrimSpace(input.Court),
		TeamAID:  teamA.ID,
		TeamBID:  teamB.ID,
		TeamA:    teamA.Name,
		TeamB:    teamB.Name,
		Status:   models.MatchScheduled,
		Round:    strings.TrimSpace(input.Round),
		Division: division,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	s.changed(ctx, EventMatchUpdated, match)
	return match, nil
}

func (s *matchService) GetByID(ctx context.Context, id string) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapMatchRepoError(err, id)
	}
	return match, nil
}

func (s *matchService) List(ctx context.Context, filter repositories.MatchFilter) ([]models.Match, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMatchStatus, filter.Status)
	}
	if filter.Division != "" && !filter.Division.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDivision, filter.Division)
	}
	matches, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// update - общий read-modify-write для одного матча под мьютексом сервиса.
func (s *matchService) update(ctx context.Context, id string, mutate func(m *models.Match) error) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapMatchRepoError(err, id)
	}
	if err := mutate(match); err != nil {
		return nil, err
	}
	if err := s.matchRepo.Update(ctx, match); err != nil {
		return nil, mapMatchRepoError(err, id)
	}
	return match, nil
}

func (s *matchService) SetScore(ctx context.Context, id string, input ScoreInput) (*models.Match, error) {
	if (input.ScoreA != nil && *input.ScoreA < 0) || (input.ScoreB != nil && *input.ScoreB < 0) {
		return nil, ErrInvalidScore
	}
	match, err := s.update(ctx, id, func(m *models.Match) error {
		m.ScoreA = input.ScoreA
		m.ScoreB = input.ScoreB
		if input.ScoreA != nil && input.ScoreB != nil {
			m.Status = models.MatchFinished
		} else {
			m.Status = models.MatchScheduled
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.changed(ctx, EventMatchUpdated, match)
	return match, nil
}

func (s *matchService) SetStatus(ctx context.Context, id string, status models.MatchStatus) (*models.Match, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMatchStatus, status)
	}
	match, err := s.update(ctx, id, func(m *models.Match) error {
		m.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.changed(ctx, EventMatchUpdated, match)
	return match, nil
}

func (s *matchService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	err := s.matchRepo.Delete(ctx, id)
	s.mu.Unlock()
	if err != nil {
		return mapMatchRepoError(err, id)
	}
	s.changed(ctx, EventMatchDeleted, map[string]string{"id": id})
	return nil
}

func (s *matchService) GenerateSchedule(ctx context.Context, input GenerateScheduleInput) ([]models.Match, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	divisions := input.Divisions
	if len(divisions) == 0 {
		divisions = models.Divisions()
	}

	generator := brackets.NewRoundRobinGenerator()
	var pairings []brackets.Pairing
	for _, division := range divisions {
		teams, err := s.teamRepo.List(ctx, division)
		if err != nil {
			return nil, fmt.Errorf("failed to list teams for %s: %w", division, err)
		}
		if len(teams) < 2 {
			s.logger.InfoContext(ctx, "division skipped in schedule", slog.String("division", string(division)), slog.Int("teams", len(teams)))
			continue
		}
		divPairings, err := generator.Generate(ctx, brackets.GenerateParams{
			Division: division,
			Entrants: brackets.EntrantsFromTeams(teams),
			Legs:     input.Legs,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s pairings: %w", division, err)
		}
		pairings = append(pairings, divPairings...)
	}
	if len(pairings) == 0 {
		return nil, ErrNotEnoughTeams
	}
	// Сначала первые туры всех дивизионов, потом вторые и т.д.
	sort.SliceStable(pairings, func(i, j int) bool {
		return pairings[i].RoundNumber < pairings[j].RoundNumber
	})

	scheduled, err := s.assign(pairings, brackets.SlotConfig{
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		IntervalMins: input.IntervalMins,
		Courts:       input.Courts,
		LunchBreak:   input.LunchBreak,
	})
	if err != nil {
		return nil, err
	}

	matches := toMatches(scheduled)
	s.mu.Lock()
	err = s.matchRepo.ReplaceAll(ctx, matches)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to store generated schedule: %w", err)
	}
	s.logger.InfoContext(ctx, "schedule generated", slog.Int("matches", len(matches)))
	s.changed(ctx, EventScheduleReplaced, matches)
	return matches, nil
}

func (s *matchService) GenerateKnockout(ctx context.Context, input GenerateKnockoutInput) ([]models.Match, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	rows, err := s.standings.Division(ctx, input.Division)
	if err != nil {
		return nil, err
	}

	pairings, err := brackets.NewKnockoutGenerator(input.Size).Generate(ctx, brackets.GenerateParams{
		Division: input.Division,
		Entrants: brackets.EntrantsFromStandings(rows),
	})
	if err != nil {
		if errors.Is(err, brackets.ErrNotEnoughEntrants) {
			return nil, fmt.Errorf("%w: %w", ErrNotEnoughTeams, err)
		}
		return nil, err
	}

	scheduled, err := s.assign(pairings, brackets.SlotConfig{
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		IntervalMins: input.IntervalMins,
		Courts:       input.Courts,
	})
	if err != nil {
		return nil, err
	}

	matches := toMatches(scheduled)
	s.mu.Lock()
	for i := range matches {
		if err := s.matchRepo.Create(ctx, &matches[i]); err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("failed to store knockout match: %w", err)
		}
	}
	s.mu.Unlock()
	s.changed(ctx, EventScheduleReplaced, matches)
	return matches, nil
}

func (s *matchService) assign(pairings []brackets.Pairing, cfg brackets.SlotConfig) ([]brackets.ScheduledPairing, error) {
	scheduled, err := brackets.Assign(pairings, cfg)
	switch {
	case err == nil:
		return scheduled, nil
	case errors.Is(err, brackets.ErrInvalidSlotConfig):
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	case errors.Is(err, brackets.ErrNotEnoughSlots):
		return nil, fmt.Errorf("%w: %w", ErrNotEnoughSlots, err)
	default:
		return nil, err
	}
}

func toMatches(scheduled []brackets.ScheduledPairing) []models.Match {
	matches := make([]models.Match, len(scheduled))
	for i, sp := range scheduled {
		matches[i] = models.Match{
			Time:     sp.Time,
			Court:    sp.Court,
			TeamAID:  sp.A.TeamID,
			TeamBID:  sp.B.TeamID,
			TeamA:    sp.A.Name,
			TeamB:    sp.B.Name,
			Status:   models.MatchScheduled,
			Round:    sp.Round,
			Division: sp.Division,
		}
	}
	return matches
}

// matchTeams возвращает обе команды матча; отсутствующая в реестре команда - nil.
func (s *matchService) matchTeams(ctx context.Context, m *models.Match) (*models.Team, *models.Team, error) {
	load := func(id, name string) (*models.Team, error) {
		var (
			team *models.Team
			err  error
		)
		if id != "" {
			team, err = s.teamRepo.GetByID(ctx, id)
		} else {
			team, err = s.teamRepo.GetByName(ctx, name)
		}
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, nil
		}
		return team, err
	}
	teamA, err := load(m.TeamAID, m.TeamA)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load team A: %w", err)
	}
	teamB, err := load(m.TeamBID, m.TeamB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load team B: %w", err)
	}
	return teamA, teamB, nil
}

func (s *matchService) OpenReport(ctx context.Context, id string) (*models.Match, error) {
	created := false
	match, err := s.update(ctx, id, func(m *models.Match) error {
		if m.Report != nil {
			return nil
		}
		teamA, teamB, err := s.matchTeams(ctx, m)
		if err != nil {
			return err
		}
		r := reports.NewDigitalReport(teamA, teamB)
		m.Report = &r
		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if created {
		s.changed(ctx, EventMatchUpdated, match)
	}
	return match, nil
}

func (s *matchService) AdjustStat(ctx context.Context, id string, input AdjustStatInput) (*models.Match, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	match, err := s.update(ctx, id, func(m *models.Match) error {
		teamA, teamB, err := s.matchTeams(ctx, m)
		if err != nil {
			return err
		}
		out, err := reports.AdjustStat(*m, teamA, teamB, input.PlayerID, reports.StatField(input.Field), input.Delta)
		switch {
		case errors.Is(err, reports.ErrPlayerNotInMatch):
			return fmt.Errorf("%w: %s", ErrPlayerNotInMatch, input.PlayerID)
		case errors.Is(err, reports.ErrUnknownStatField):
			return fmt.Errorf("%w: %s", ErrInvalidStatField, input.Field)
		case err != nil:
			return err
		}
		*m = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.changed(ctx, EventMatchUpdated, match)
	return match, nil
}

func (s *matchService) SetObservations(ctx context.Context, id string, observations string) (*models.Match, error) {
	match, err := s.update(ctx, id, func(m *models.Match) error {
		if m.Report == nil {
			teamA, teamB, err := s.matchTeams(ctx, m)
			if err != nil {
				return err
			}
			r := reports.NewDigitalReport(teamA, teamB)
			m.Report = &r
		}
		m.Report.Observations = strings.TrimSpace(observations)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.changed(ctx, EventMatchUpdated, match)
	return match, nil
}

// AttachReportImage сохраняет скан бумажного протокола; отчёт становится IMAGE.
// Счёт при этом не пересчитывается: его вводят вручную.
func (s *matchService) AttachReportImage(ctx context.Context, id, contentType string, r io.Reader) (*models.Match, error) {
	ext, err := storage.ImageExtension(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFileType, err)
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	res, err := s.uploader.Upload(ctx, storage.MatchReportKey(id, ext), contentType, r)
	if err != nil {
		return nil, fmt.Errorf("failed to upload report image: %w", err)
	}

	var oldKey *string
	match, err := s.update(ctx, id, func(m *models.Match) error {
		if m.Report == nil {
			m.Report = &models.MatchReport{PlayerStats: []models.PlayerStat{}}
		}
		oldKey = m.Report.ImageKey
		m.Report.Type = models.ReportImage
		m.Report.ImageKey = &res.Key
		m.Report.ImageURL = &res.Location
		return nil
	})
	if err != nil {
		return nil, err
	}
	if oldKey != nil && *oldKey != "" && *oldKey != res.Key {
		if err := s.uploader.Delete(ctx, *oldKey); err != nil {
			s.logger.WarnContext(ctx, "failed to delete old report image", slog.String("key", *oldKey), slog.Any("error", err))
		}
	}
	s.changed(ctx, EventMatchUpdated, match)
	return match, nil
}

// changed рассылает событие по матчу и обновлённые таблицы.
func (s *matchService) changed(ctx context.Context, event string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToRoom(brackets.StandingsRoom, brackets.WebSocketMessage{
			Type:    event,
			Payload: payload,
			RoomID:  brackets.StandingsRoom,
		})
	}
	if s.standings == nil {
		return
	}
	if err := s.standings.Publish(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to publish standings", slog.Any("error", err))
	}
}
