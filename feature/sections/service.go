package sections

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

// Service manages section content.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new sections service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Get returns the active content for sectionKey.
func (s *Service) Get(ctx context.Context, sectionKey string) (*Content, error) {
	var out Content
	err := s.db.WithContext(ctx).Scopes(database.Active).Where(&Content{SectionKey: sectionKey}).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound(fmt.Sprintf("Section content not found for key: %s", sectionKey))
	}
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch section content")
	}
	return &out, nil
}

// List returns every section, hidden ones included.
func (s *Service) List(ctx context.Context) ([]Content, error) {
	var out []Content
	if err := s.db.WithContext(ctx).Order("section_key ASC").Find(&out).Error; err != nil {
		return nil, database.Classify(err, "Failed to fetch section content")
	}
	return out, nil
}

// Update creates or overwrites the section addressed by req.SectionKey.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Content, error) {
	row := req.toModel()

	var created bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = reconcile.UpsertByKey(tx, "section_key", row.SectionKey, row)
		return err
	})
	if err != nil {
		s.logger.Error("Section content update failed", zap.String("section", row.SectionKey), zap.Error(err))
		return nil, database.Classify(err, "Failed to update section content")
	}

	s.logger.Info("Section content saved", zap.String("section", row.SectionKey), zap.Bool("created", created))

	var saved Content
	if err := s.db.WithContext(ctx).Where(&Content{SectionKey: row.SectionKey}).Take(&saved).Error; err != nil {
		return nil, database.Classify(err, "Failed to fetch section content")
	}
	return &saved, nil
}
