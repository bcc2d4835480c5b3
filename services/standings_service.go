package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/muskiz/beach-handball/brackets"
	"github.com/muskiz/beach-handball/models"
	"github.com/muskiz/beach-handball/repositories"
	"github.com/muskiz/beach-handball/standings"
)

const (
	EventStandingsUpdated = "STANDINGS_UPDATED"
	EventMatchUpdated     = "MATCH_UPDATED"
	EventMatchDeleted     = "MATCH_DELETED"
	EventScheduleReplaced = "SCHEDULE_REPLACED"
)

// Broadcaster - то, что нужно сервисам от websocket-хаба.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

type StandingsService interface {
	// Division возвращает таблицу одного дивизиона.
	Division(ctx context.Context, division models.Division) ([]models.StandingRow, error)
	All(ctx context.Context) (map[models.Division][]models.StandingRow, error)
	// Publish пересчитывает таблицы и рассылает их подписчикам.
	Publish(ctx context.Context) error
}

type standingsService struct {
	teamRepo    repositories.TeamRepository
	matchRepo   repositories.MatchRepository
	broadcaster Broadcaster
	logger      *slog.Logger
}

func NewStandingsService(
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	broadcaster Broadcaster,
	logger *slog.Logger,
) StandingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &standingsService{
		teamRepo:    teamRepo,
		matchRepo:   matchRepo,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// load читает обе коллекции параллельно.
func (s *standingsService) load(ctx context.Context) ([]models.Team, []models.Match, error) {
	var (
		teams   []models.Team
		matches []models.Match
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.List(gctx, "")
		if err != nil {
			return fmt.Errorf("failed to list teams: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.List(gctx, repositories.MatchFilter{})
		if err != nil {
			return fmt.Errorf("failed to list matches: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return teams, matches, nil
}

func (s *standingsService) Division(ctx context.Context, division models.Division) ([]models.StandingRow, error) {
	if !division.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDivision, division)
	}
	teams, matches, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	divTeams, divMatches := standings.Partition(teams, matches, division)
	summary := standings.Summarize(divTeams, divMatches)
	if summary.Incomplete > 0 {
		s.logger.WarnContext(ctx, "finished matches without both scores were skipped",
			slog.String("division", string(division)),
			slog.Int("skipped", summary.Incomplete),
		)
	}
	return summary.Rows, nil
}

func (s *standingsService) All(ctx context.Context) (map[models.Division][]models.StandingRow, error) {
	teams, matches, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return standings.ComputeAll(teams, matches), nil
}

func (s *standingsService) Publish(ctx context.Context) error {
	if s.broadcaster == nil {
		return nil
	}
	all, err := s.All(ctx)
	if err != nil {
		return err
	}
	s.broadcaster.BroadcastToRoom(brackets.StandingsRoom, brackets.WebSocketMessage{
		Type:    EventStandingsUpdated,
		Payload: all,
		RoomID:  brackets.StandingsRoom,
	})
	for division, rows := range all {
		room := brackets.DivisionRoom(string(division))
		s.broadcaster.BroadcastToRoom(room, brackets.WebSocketMessage{
			Type:    EventStandingsUpdated,
			Payload: rows,
			RoomID:  room,
		})
	}
	return nil
}
