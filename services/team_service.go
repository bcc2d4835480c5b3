package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/muskiz/beach-handball/models"
	"github.com/muskiz/beach-handball/repositories"
	"github.com/muskiz/beach-handball/storage"
)

type PlayerInput struct {
	Name      string `json:"name" validate:"required,max=60"`
	Surnames  string `json:"surnames" validate:"max=100"`
	DNINumber string `json:"dni_number" validate:"max=20"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Number    int    `json:"number" validate:"min=0,max=99"`
	Position  string `json:"position" validate:"max=40"`
}

type RegisterTeamInput struct {
	Name     string          `json:"name" validate:"required,max=80"`
	City     string          `json:"city" validate:"required,max=80"`
	Division models.Division `json:"division" validate:"required,division"`
	Players  []PlayerInput   `json:"players" validate:"omitempty,dive"`
}

type UpdateTeamInput struct {
	Name *string `json:"name" validate:"omitempty,max=80"`
	City *string `json:"city" validate:"omitempty,max=80"`
}

type TeamService interface {
	Register(ctx context.Context, input RegisterTeamInput) (*models.Team, error)
	GetByID(ctx context.Context, id string) (*models.Team, error)
	List(ctx context.Context, division models.Division) ([]models.Team, error)
	Update(ctx context.Context, id string, input UpdateTeamInput) (*models.Team, error)

	AddPlayer(ctx context.Context, teamID string, input PlayerInput) (*models.Player, error)
	RemovePlayer(ctx context.Context, teamID, playerID string) error
	ImportRoster(ctx context.Context, teamID string, r io.Reader) (*RosterImportResult, error)
	RosterTemplate() []byte

	UploadLogo(ctx context.Context, teamID, contentType string, r io.Reader) (*models.Team, error)
	SubmitDocument(ctx context.Context, teamID, playerID string, docType models.DocumentType, contentType string, r io.Reader) (*models.Player, error)
	ReviewDocument(ctx context.Context, teamID, playerID string, docType models.DocumentType, approve bool) (*models.Player, error)
	MarkPaid(ctx context.Context, teamID string) (*models.Team, error)
}

type teamService struct {
	teamRepo    repositories.TeamRepository
	matchRepo   repositories.MatchRepository
	contentRepo repositories.ContentRepository
	uploader    storage.FileUploader
	notifier    Notifier
	standings   StandingsService
	fees        map[models.Division]int
	logger      *slog.Logger

	// Регистрация (проверка лимита + создание) и правки состава - read-modify-write.
	mu sync.Mutex
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	contentRepo repositories.ContentRepository,
	uploader storage.FileUploader,
	notifier Notifier,
	standingsService StandingsService,
	fees map[models.Division]int,
	logger *slog.Logger,
) TeamService {
	if logger == nil {
		logger = slog.Default()
	}
	return &teamService{
		teamRepo:    teamRepo,
		matchRepo:   matchRepo,
		contentRepo: contentRepo,
		uploader:    uploader,
		notifier:    notifier,
		standings:   standingsService,
		fees:        fees,
		logger:      logger,
	}
}

func mapTeamRepoError(err error, teamID string) error {
	switch {
	case errors.Is(err, repositories.ErrTeamNotFound):
		return ErrTeamNotFound
	case errors.Is(err, repositories.ErrTeamNameConflict):
		return ErrTeamNameConflict
	default:
		return fmt.Errorf("team repository failure (id: %s): %w", teamID, err)
	}
}

func newPlayer(input PlayerInput) models.Player {
	return models.Player{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(input.Name),
		Surnames:        strings.TrimSpace(input.Surnames),
		DNINumber:       strings.ToUpper(strings.TrimSpace(input.DNINumber)),
		BirthDate:       strings.TrimSpace(input.BirthDate),
		Number:          input.Number,
		Position:        strings.TrimSpace(input.Position),
		DNIStatus:       models.DocumentEmpty,
		InsuranceStatus: models.DocumentEmpty,
	}
}

func (s *teamService) Register(ctx context.Context, input RegisterTeamInput) (*models.Team, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.City = strings.TrimSpace(input.City)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	limits, err := s.contentRepo.GetLimits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load division limits: %w", err)
	}
	registered, err := s.teamRepo.CountByDivision(ctx, input.Division)
	if err != nil {
		return nil, fmt.Errorf("failed to count teams in %s: %w", input.Division, err)
	}
	if limit, ok := limits[input.Division]; ok && registered >= limit {
		return nil, fmt.Errorf("%w: %s (%d/%d)", ErrDivisionFull, input.Division, registered, limit)
	}

	team := &models.Team{
		Name:          input.Name,
		City:          input.City,
		Division:      input.Division,
		PaymentStatus: models.PaymentPending,
		Fee:           s.fees[input.Division],
		Players:       make([]models.Player, 0, len(input.Players)),
	}
	for _, p := range input.Players {
		team.Players = append(team.Players, newPlayer(p))
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, mapTeamRepoError(err, team.ID)
	}
	s.logger.InfoContext(ctx, "team registered", slog.String("team_id", team.ID), slog.String("division", string(team.Division)))

	if s.notifier != nil {
		notice := team.Clone()
		go func() {
			if err := s.notifier.TeamRegistered(context.WithoutCancel(ctx), notice); err != nil {
				s.logger.Error("failed to send registration notice", slog.String("team_id", notice.ID), slog.Any("error", err))
			}
		}()
	}
	s.publish(ctx)
	return team, nil
}

func (s *teamService) GetByID(ctx context.Context, id string) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapTeamRepoError(err, id)
	}
	return team, nil
}

func (s *teamService) List(ctx context.Context, division models.Division) ([]models.Team, error) {
	if division != "" && !division.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDivision, division)
	}
	teams, err := s.teamRepo.List(ctx, division)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *teamService) Update(ctx context.Context, id string, input UpdateTeamInput) (*models.Team, error) {
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, fieldError("name", "must be provided")
		}
		input.Name = &trimmed
	}
	if input.City != nil {
		trimmed := strings.TrimSpace(*input.City)
		if trimmed == "" {
			return nil, fieldError("city", "must be provided")
		}
		input.City = &trimmed
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapTeamRepoError(err, id)
	}
	renamed := input.Name != nil && *input.Name != team.Name
	if input.Name != nil {
		team.Name = *input.Name
	}
	if input.City != nil {
		team.City = *input.City
	}
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, mapTeamRepoError(err, id)
	}

	if renamed {
		// Подписи матчей следуют за новым именем; агрегация идёт по ID.
		n, err := s.matchRepo.RenameTeam(ctx, team.ID, team.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to rename team in matches: %w", err)
		}
		s.logger.InfoContext(ctx, "team renamed", slog.String("team_id", team.ID), slog.Int("matches_relabelled", n))
		s.publish(ctx)
	}
	return team, nil
}

func (s *teamService) AddPlayer(ctx context.Context, teamID string, input PlayerInput) (*models.Player, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	player := newPlayer(input)
	team.Players = append(team.Players, player)
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	return &player, nil
}

func (s *teamService) RemovePlayer(ctx context.Context, teamID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return mapTeamRepoError(err, teamID)
	}
	idx := playerIndex(team, playerID)
	if idx < 0 {
		return ErrPlayerNotFound
	}
	team.Players = append(team.Players[:idx], team.Players[idx+1:]...)
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return mapTeamRepoError(err, teamID)
	}
	return nil
}

func playerIndex(team *models.Team, playerID string) int {
	for i, p := range team.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

func (s *teamService) UploadLogo(ctx context.Context, teamID, contentType string, r io.Reader) (*models.Team, error) {
	ext, err := storage.ImageExtension(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFileType, err)
	}
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}

	res, err := s.uploader.Upload(ctx, storage.TeamLogoKey(teamID, ext), contentType, r)
	if err != nil {
		return nil, fmt.Errorf("failed to upload logo: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	oldKey := team.LogoKey
	team.LogoKey = &res.Key
	team.LogoURL = &res.Location
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	if oldKey != nil && *oldKey != "" && *oldKey != res.Key {
		if err := s.uploader.Delete(ctx, *oldKey); err != nil {
			s.logger.WarnContext(ctx, "failed to delete old logo", slog.String("key", *oldKey), slog.Any("error", err))
		}
	}
	s.publish(ctx)
	return team, nil
}

func (s *teamService) SubmitDocument(ctx context.Context, teamID, playerID string, docType models.DocumentType, contentType string, r io.Reader) (*models.Player, error) {
	if !docType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDocumentType, docType)
	}
	ext, err := storage.DocumentExtension(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFileType, err)
	}
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	if playerIndex(team, playerID) < 0 {
		return nil, ErrPlayerNotFound
	}

	res, err := s.uploader.Upload(ctx, storage.PlayerDocumentKey(teamID, playerID, string(docType), ext), contentType, r)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s document: %w", docType, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team, err = s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	idx := playerIndex(team, playerID)
	if idx < 0 {
		return nil, ErrPlayerNotFound
	}
	p := &team.Players[idx]
	switch docType {
	case models.DocumentDNI:
		p.DNIKey = &res.Key
		p.DNIStatus = models.DocumentPending
		p.Verified = false
	case models.DocumentInsurance:
		p.InsuranceKey = &res.Key
		p.InsuranceStatus = models.DocumentPending
	}
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	player := *p
	return &player, nil
}

func (s *teamService) ReviewDocument(ctx context.Context, teamID, playerID string, docType models.DocumentType, approve bool) (*models.Player, error) {
	if !docType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDocumentType, docType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	idx := playerIndex(team, playerID)
	if idx < 0 {
		return nil, ErrPlayerNotFound
	}

	status := models.DocumentRejected
	if approve {
		status = models.DocumentApproved
	}
	p := &team.Players[idx]
	switch docType {
	case models.DocumentDNI:
		if p.DNIStatus == models.DocumentEmpty {
			return nil, ErrDocumentNotSubmitted
		}
		p.DNIStatus = status
		p.Verified = approve
	case models.DocumentInsurance:
		if p.InsuranceStatus == models.DocumentEmpty {
			return nil, ErrDocumentNotSubmitted
		}
		p.InsuranceStatus = status
	}
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	player := *p
	return &player, nil
}

func (s *teamService) MarkPaid(ctx context.Context, teamID string) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	method := models.PaymentMethodManual
	team.PaymentStatus = models.PaymentPaid
	team.PaymentMethod = &method
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	return team, nil
}

func (s *teamService) publish(ctx context.Context) {
	if s.standings == nil {
		return
	}
	if err := s.standings.Publish(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to publish standings", slog.Any("error", err))
	}
}
