package theme

import (
	"context"
	"errors"

	"site-cms/core/database"
	"site-cms/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service manages the theme singleton.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new theme service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Get returns the theme, or nil when it has never been saved.
func (s *Service) Get(ctx context.Context) (*Config, error) {
	return Find(s.db.WithContext(ctx))
}

// Find loads the theme singleton through db. It is shared with the
// navigation read, which embeds the theme in its response.
func Find(db *gorm.DB) (*Config, error) {
	var cfg Config
	err := db.Where("id = ?", database.SingletonID).Take(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch theme")
	}
	return &cfg, nil
}

// Update writes the theme singleton, creating it on first save.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Config, error) {
	row := req.toModel()

	var created bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = reconcile.UpsertByKey(tx, "id", database.SingletonID, row)
		return err
	})
	if err != nil {
		s.logger.Error("Theme update failed", zap.Error(err))
		return nil, database.Classify(err, "Failed to update theme")
	}

	s.logger.Info("Theme saved", zap.Bool("created", created))
	return s.Get(ctx)
}
