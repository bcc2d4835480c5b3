package repositories

import (
	"context"
	"sync"

	"github.com/muskiz/beach-handball/models"
)

// ContentRepository хранит контент сайта и лимиты категорий.
type ContentRepository interface {
	GetContent(ctx context.Context) (models.SiteContent, error)
	SaveContent(ctx context.Context, content models.SiteContent) error
	GetLimits(ctx context.Context) (models.CategoryLimits, error)
	SaveLimits(ctx context.Context, limits models.CategoryLimits) error
}

type memoryContentRepository struct {
	mu      sync.RWMutex
	content models.SiteContent
	limits  models.CategoryLimits
}

func NewMemoryContentRepository(content models.SiteContent, limits models.CategoryLimits) ContentRepository {
	return &memoryContentRepository{content: content.Clone(), limits: limits.Clone()}
}

func (r *memoryContentRepository) GetContent(_ context.Context) (models.SiteContent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.content.Clone(), nil
}

func (r *memoryContentRepository) SaveContent(_ context.Context, content models.SiteContent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content = content.Clone()
	return nil
}

func (r *memoryContentRepository) GetLimits(_ context.Context) (models.CategoryLimits, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.limits.Clone(), nil
}

func (r *memoryContentRepository) SaveLimits(_ context.Context, limits models.CategoryLimits) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limits = limits.Clone()
	return nil
}
