package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/muskiz/beach-handball/models"
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id string) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	// List возвращает команды в порядке регистрации; пустой division - все.
	List(ctx context.Context, division models.Division) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	CountByDivision(ctx context.Context, division models.Division) (int, error)
}

type memoryTeamRepository struct {
	mu     sync.RWMutex
	teams  map[string]models.Team
	byName map[string]string
	order  []string
}

func NewMemoryTeamRepository() TeamRepository {
	return &memoryTeamRepository{
		teams:  make(map[string]models.Team),
		byName: make(map[string]string),
	}
}

func (r *memoryTeamRepository) Create(_ context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	if _, exists := r.teams[team.ID]; exists {
		return fmt.Errorf("%w: team %s", ErrDuplicateID, team.ID)
	}
	key := nameKey(team.Name)
	if _, taken := r.byName[key]; taken {
		return ErrTeamNameConflict
	}
	if team.CreatedAt.IsZero() {
		team.CreatedAt = time.Now().UTC()
	}

	r.teams[team.ID] = team.Clone()
	r.byName[key] = team.ID
	r.order = append(r.order, team.ID)
	return nil
}

func (r *memoryTeamRepository) GetByID(_ context.Context, id string) (*models.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.teams[id]
	if !ok {
		return nil, ErrTeamNotFound
	}
	c := t.Clone()
	return &c, nil
}

func (r *memoryTeamRepository) GetByName(_ context.Context, name string) (*models.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[nameKey(name)]
	if !ok {
		return nil, ErrTeamNotFound
	}
	c := r.teams[id].Clone()
	return &c, nil
}

func (r *memoryTeamRepository) List(_ context.Context, division models.Division) ([]models.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Team, 0, len(r.order))
	for _, id := range r.order {
		t := r.teams[id]
		if division != "" && t.Division != division {
			continue
		}
		result = append(result, t.Clone())
	}
	return result, nil
}

func (r *memoryTeamRepository) Update(_ context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.teams[team.ID]
	if !ok {
		return ErrTeamNotFound
	}
	oldKey, newKey := nameKey(old.Name), nameKey(team.Name)
	if oldKey != newKey {
		if _, taken := r.byName[newKey]; taken {
			return ErrTeamNameConflict
		}
		delete(r.byName, oldKey)
		r.byName[newKey] = team.ID
	}

	r.teams[team.ID] = team.Clone()
	return nil
}

func (r *memoryTeamRepository) CountByDivision(_ context.Context, division models.Division) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, t := range r.teams {
		if t.Division == division {
			n++
		}
	}
	return n, nil
}
