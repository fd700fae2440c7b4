package services

import (
	"context"
	"errors"
	"fmt"

	"site-cms/core/database"
	"site-cms/core/reconcile"
	"site-cms/core/response"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service manages the service catalogue.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new services service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns active services matching filters, in display order.
func (s *Service) List(ctx context.Context, filters Filters) ([]Offering, error) {
	q := s.db.WithContext(ctx).Scopes(database.Active, database.Ordered)
	if filters.Category != "" {
		q = q.Where("category = ?", filters.Category)
	}
	if filters.Featured != nil {
		q = q.Where("is_featured = ?", *filters.Featured)
	}
	if filters.Popular != nil {
		q = q.Where("is_popular = ?", *filters.Popular)
	}
	if filters.OnQuote != nil {
		q = q.Where("on_quote = ?", *filters.OnQuote)
	}

	var out []Offering
	if err := q.Find(&out).Error; err != nil {
		return nil, database.Classify(err, "Failed to fetch services")
	}
	return out, nil
}

// ListAll returns every service, hidden ones included, for the admin editor.
func (s *Service) ListAll(ctx context.Context) ([]Offering, error) {
	var out []Offering
	if err := s.db.WithContext(ctx).Scopes(database.Ordered).Find(&out).Error; err != nil {
		return nil, database.Classify(err, "Failed to fetch services")
	}
	return out, nil
}

// QuoteOptions lists the active services offered on the quote form.
func (s *Service) QuoteOptions(ctx context.Context) ([]QuoteOption, error) {
	var out []QuoteOption
	err := s.db.WithContext(ctx).Model(&Offering{}).
		Select("id", "title", "slug", "category", "position").
		Scopes(database.Active, database.Ordered).
		Where("on_quote = ?", true).
		Find(&out).Error
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch quote services")
	}
	return out, nil
}

// Categories returns the distinct non-empty categories of active services, sorted.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := s.db.WithContext(ctx).Model(&Offering{}).
		Scopes(database.Active).
		Where("category IS NOT NULL AND category <> ?", "").
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch service categories")
	}
	return categories, nil
}

// GetBySlug returns one active service.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Offering, error) {
	var out Offering
	err := s.db.WithContext(ctx).Scopes(database.Active).Where("slug = ?", slug).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound(fmt.Sprintf("Service not found: %s", slug))
	}
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch service")
	}
	return &out, nil
}

// Replace swaps the whole catalogue for inputs and returns the new rows.
func (s *Service) Replace(ctx context.Context, inputs []OfferingInput) ([]Offering, error) {
	rows := make([]Offering, len(inputs))
	for i, in := range inputs {
		rows[i] = in.toModel(i)
	}

	var saved []Offering
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		saved, err = reconcile.ReplaceAll(tx, reconcile.AllRows, rows)
		return err
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, response.Conflict("Duplicate service slug", err)
	}
	if err != nil {
		s.logger.Error("Services update failed", zap.Error(err))
		return nil, database.Classify(err, "Failed to update services")
	}

	s.logger.Info("Services replaced", zap.Int("count", len(saved)))
	return saved, nil
}

// Delete removes a single service.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := reconcile.DeleteByID[Offering](s.db.WithContext(ctx), id, "Service not found")
	return database.Classify(err, "Failed to delete service")
}
