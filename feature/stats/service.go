package stats

import (
	"context"

	"site-cms/core/database"
	"site-cms/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service manages landing-page stats.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new stats service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns the active stats in display order.
func (s *Service) List(ctx context.Context) ([]Stat, error) {
	var stats []Stat
	if err := s.db.WithContext(ctx).Scopes(database.Active, database.Ordered).Find(&stats).Error; err != nil {
		return nil, database.Classify(err, "Failed to fetch stats")
	}
	return stats, nil
}

// Replace swaps the whole stat list for inputs and returns the new rows.
func (s *Service) Replace(ctx context.Context, inputs []StatInput) ([]Stat, error) {
	rows := make([]Stat, len(inputs))
	for i, in := range inputs {
		rows[i] = in.toModel(i)
	}

	var saved []Stat
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		saved, err = reconcile.ReplaceAll(tx, reconcile.AllRows, rows)
		return err
	})
	if err != nil {
		s.logger.Error("Stats update failed", zap.Error(err))
		return nil, database.Classify(err, "Failed to update stats")
	}

	s.logger.Info("Stats replaced", zap.Int("count", len(saved)))
	return saved, nil
}

// Delete removes a single stat.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := reconcile.DeleteByID[Stat](s.db.WithContext(ctx), id, "Stat not found")
	return database.Classify(err, "Failed to delete stat")
}
