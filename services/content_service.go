package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/muskiz/beach-handball/models"
	"github.com/muskiz/beach-handball/repositories"
)

// UpdateContentInput заменяет тексты сайта. Спонсоры и галерея
// редактируются отдельными операциями и здесь не трогаются.
type UpdateContentInput struct {
	HeroTitle     string           `json:"hero_title" validate:"required,max=120"`
	HeroSubtitle  string           `json:"hero_subtitle" validate:"max=300"`
	AboutTitle    string           `json:"about_title" validate:"max=120"`
	AboutText     string           `json:"about_text" validate:"max=5000"`
	AboutImageURL string           `json:"about_image_url" validate:"omitempty,url"`
	AboutStats    []models.Stat    `json:"about_stats" validate:"max=8"`
	Venue         models.VenueInfo `json:"venue"`
	Socials       models.Socials   `json:"socials"`
	ContactEmail  string           `json:"contact_email" validate:"omitempty,email"`
}

type SponsorInput struct {
	Name    string             `json:"name" validate:"required,max=80"`
	LogoURL string             `json:"logo_url" validate:"required,max=300"`
	Tier    models.SponsorTier `json:"tier" validate:"required,oneof=Platinum Gold Silver Collaborator"`
}

type GalleryItemInput struct {
	URL   string `json:"url" validate:"required,url"`
	Title string `json:"title" validate:"max=120"`
	Year  int    `json:"year" validate:"omitempty,min=2000,max=2100"`
}

type ContentService interface {
	Get(ctx context.Context) (models.SiteContent, error)
	Update(ctx context.Context, input UpdateContentInput) (models.SiteContent, error)

	AddSponsor(ctx context.Context, input SponsorInput) (*models.Sponsor, error)
	DeleteSponsor(ctx context.Context, id string) error
	AddGalleryItem(ctx context.Context, input GalleryItemInput) (*models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id string) error

	GetLimits(ctx context.Context) (models.CategoryLimits, error)
	UpdateLimits(ctx context.Context, limits models.CategoryLimits) (models.CategoryLimits, error)
}

type contentService struct {
	contentRepo repositories.ContentRepository
	logger      *slog.Logger
	mu          sync.Mutex
}

func NewContentService(contentRepo repositories.ContentRepository, logger *slog.Logger) ContentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &contentService{contentRepo: contentRepo, logger: logger}
}

func (s *contentService) Get(ctx context.Context) (models.SiteContent, error) {
	content, err := s.contentRepo.GetContent(ctx)
	if err != nil {
		return models.SiteContent{}, fmt.Errorf("failed to load site content: %w", err)
	}
	return content, nil
}

// edit - read-modify-write содержимого под мьютексом.
func (s *contentService) edit(ctx context.Context, mutate func(c *models.SiteContent) error) (models.SiteContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.contentRepo.GetContent(ctx)
	if err != nil {
		return models.SiteContent{}, fmt.Errorf("failed to load site content: %w", err)
	}
	if err := mutate(&content); err != nil {
		return models.SiteContent{}, err
	}
	if err := s.contentRepo.SaveContent(ctx, content); err != nil {
		return models.SiteContent{}, fmt.Errorf("failed to save site content: %w", err)
	}
	return content, nil
}

func (s *contentService) Update(ctx context.Context, input UpdateContentInput) (models.SiteContent, error) {
	if err := validateInput(input); err != nil {
		return models.SiteContent{}, err
	}
	content, err := s.edit(ctx, func(c *models.SiteContent) error {
		c.HeroTitle = strings.TrimSpace(input.HeroTitle)
		c.HeroSubtitle = strings.TrimSpace(input.HeroSubtitle)
		c.AboutTitle = strings.TrimSpace(input.AboutTitle)
		c.AboutText = input.AboutText
		c.AboutImageURL = input.AboutImageURL
		c.AboutStats = append([]models.Stat(nil), input.AboutStats...)
		c.Venue = input.Venue
		c.Venue.Features = append([]string(nil), input.Venue.Features...)
		c.Socials = input.Socials
		c.ContactEmail = strings.TrimSpace(input.ContactEmail)
		return nil
	})
	if err != nil {
		return models.SiteContent{}, err
	}
	s.logger.InfoContext(ctx, "site content updated")
	return content, nil
}

func (s *contentService) AddSponsor(ctx context.Context, input SponsorInput) (*models.Sponsor, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	sponsor := models.Sponsor{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(input.Name),
		LogoURL: input.LogoURL,
		Tier:    input.Tier,
	}
	_, err := s.edit(ctx, func(c *models.SiteContent) error {
		c.Sponsors = append(c.Sponsors, sponsor)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sponsor, nil
}

func (s *contentService) DeleteSponsor(ctx context.Context, id string) error {
	_, err := s.edit(ctx, func(c *models.SiteContent) error {
		for i, sp := range c.Sponsors {
			if sp.ID == id {
				c.Sponsors = append(c.Sponsors[:i], c.Sponsors[i+1:]...)
				return nil
			}
		}
		return ErrSponsorNotFound
	})
	return err
}

func (s *contentService) AddGalleryItem(ctx context.Context, input GalleryItemInput) (*models.GalleryItem, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	item := models.GalleryItem{
		ID:    uuid.NewString(),
		URL:   input.URL,
		Title: strings.TrimSpace(input.Title),
		Year:  input.Year,
	}
	_, err := s.edit(ctx, func(c *models.SiteContent) error {
		c.Gallery = append(c.Gallery, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *contentService) DeleteGalleryItem(ctx context.Context, id string) error {
	_, err := s.edit(ctx, func(c *models.SiteContent) error {
		for i, g := range c.Gallery {
			if g.ID == id {
				c.Gallery = append(c.Gallery[:i], c.Gallery[i+1:]...)
				return nil
			}
		}
		return ErrGalleryItemNotFound
	})
	return err
}

func (s *contentService) GetLimits(ctx context.Context) (models.CategoryLimits, error) {
	limits, err := s.contentRepo.GetLimits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load division limits: %w", err)
	}
	return limits, nil
}

// UpdateLimits сливает новые лимиты с текущими. Лимит ниже числа уже
// записанных команд допустим: новые регистрации просто закрываются.
func (s *contentService) UpdateLimits(ctx context.Context, limits models.CategoryLimits) (models.CategoryLimits, error) {
	fields := make(map[string]string)
	for d, v := range limits {
		if !d.Valid() {
			fields[string(d)] = "unknown division"
			continue
		}
		if v < 0 {
			fields[string(d)] = "must be at least 0"
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.contentRepo.GetLimits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load division limits: %w", err)
	}
	merged := current.Clone()
	for d, v := range limits {
		merged[d] = v
	}
	if err := s.contentRepo.SaveLimits(ctx, merged); err != nil {
		return nil, fmt.Errorf("failed to save division limits: %w", err)
	}
	s.logger.InfoContext(ctx, "division limits updated", slog.Any("limits", merged))
	return merged, nil
}
