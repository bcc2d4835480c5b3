package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/muskiz/beach-handball/models"
)

// MatchFilter - необязательные фильтры списка матчей.
type MatchFilter struct {
	Status   models.MatchStatus
	Division models.Division
}

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id string) (*models.Match, error)
	List(ctx context.Context, filter MatchFilter) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id string) error
	// ReplaceAll заменяет весь календарь (генерация расписания).
	ReplaceAll(ctx context.Context, matches []models.Match) error
	// RenameTeam переписывает отображаемые имена во всех матчах команды.
	RenameTeam(ctx context.Context, teamID, name string) (int, error)
}

type memoryMatchRepository struct {
	mu      sync.RWMutex
	matches map[string]models.Match
	order   []string
}

func NewMemoryMatchRepository() MatchRepository {
	return &memoryMatchRepository{matches: make(map[string]models.Match)}
}

func (r *memoryMatchRepository) Create(_ context.Context, match *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(match)
}

func (r *memoryMatchRepository) insertLocked(match *models.Match) error {
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	if _, exists := r.matches[match.ID]; exists {
		return fmt.Errorf("%w: match %s", ErrDuplicateID, match.ID)
	}
	if match.Status == "" {
		match.Status = models.MatchScheduled
	}
	match.UpdatedAt = time.Now().UTC()

	r.matches[match.ID] = match.Clone()
	r.order = append(r.order, match.ID)
	return nil
}

func (r *memoryMatchRepository) GetByID(_ context.Context, id string) (*models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	c := m.Clone()
	return &c, nil
}

func (r *memoryMatchRepository) List(_ context.Context, filter MatchFilter) ([]models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Match, 0, len(r.order))
	for _, id := range r.order {
		m := r.matches[id]
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		if filter.Division != "" && m.Division != filter.Division {
			continue
		}
		result = append(result, m.Clone())
	}
	return result, nil
}

func (r *memoryMatchRepository) Update(_ context.Context, match *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.matches[match.ID]; !ok {
		return ErrMatchNotFound
	}
	match.UpdatedAt = time.Now().UTC()
	r.matches[match.ID] = match.Clone()
	return nil
}

func (r *memoryMatchRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.matches[id]; !ok {
		return ErrMatchNotFound
	}
	delete(r.matches, id)
	r.order = removeID(r.order, id)
	return nil
}

func (r *memoryMatchRepository) ReplaceAll(_ context.Context, matches []models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prevMatches, prevOrder := r.matches, r.order
	r.matches = make(map[string]models.Match, len(matches))
	r.order = make([]string, 0, len(matches))
	for i := range matches {
		if err := r.insertLocked(&matches[i]); err != nil {
			r.matches, r.order = prevMatches, prevOrder
			return err
		}
	}
	return nil
}

func (r *memoryMatchRepository) RenameTeam(_ context.Context, teamID, name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := 0
	for id, m := range r.matches {
		touched := false
		if m.TeamAID == teamID {
			m.TeamA = name
			touched = true
		}
		if m.TeamBID == teamID {
			m.TeamB = name
			touched = true
		}
		if touched {
			r.matches[id] = m
			changed++
		}
	}
	return changed, nil
}
