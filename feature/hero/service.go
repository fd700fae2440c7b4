package hero

import (
	"context"
	"errors"

	"site-cms/core/database"
	"site-cms/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Service manages the hero section.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new hero service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// GetPublic loads dashboards and content side by side. A failed half is
// logged and served empty so the hero still renders.
func (s *Service) GetPublic(ctx context.Context) *PublicHero {
	out := &PublicHero{HeroDashboards: []Dashboard{}}

	var g errgroup.Group
	g.Go(func() error {
		var dashboards []Dashboard
		err := s.db.WithContext(ctx).Scopes(database.Active, database.Ordered).Find(&dashboards).Error
		if err != nil {
			s.logger.Warn("Hero dashboards unavailable", zap.Error(err))
			return nil
		}
		out.HeroDashboards = dashboards
		return nil
	})
	g.Go(func() error {
		content, err := s.GetContent(ctx)
		if err != nil {
			s.logger.Warn("Hero content unavailable", zap.Error(err))
			return nil
		}
		if content != nil && content.IsActive {
			out.HeroContent = content
		}
		return nil
	})
	_ = g.Wait()

	return out
}

// GetContent returns the hero content singleton, or nil if it was never saved.
func (s *Service) GetContent(ctx context.Context) (*Content, error) {
	var content Content
	err := s.db.WithContext(ctx).Where("id = ?", database.SingletonID).Take(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch hero content")
	}
	return &content, nil
}

// ReplaceDashboards swaps every dashboard for inputs, positioned by payload order.
func (s *Service) ReplaceDashboards(ctx context.Context, inputs []DashboardInput) ([]Dashboard, error) {
	rows := make([]Dashboard, len(inputs))
	for i, in := range inputs {
		rows[i] = in.toModel(i)
	}

	var saved []Dashboard
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		saved, err = reconcile.ReplaceAll(tx, reconcile.AllRows, rows)
		return err
	})
	if err != nil {
		s.logger.Error("Hero dashboards update failed", zap.Error(err))
		return nil, database.Classify(err, "Failed to update hero dashboards")
	}

	s.logger.Info("Hero dashboards replaced", zap.Int("count", len(saved)))
	return saved, nil
}

// UpdateContent writes the hero content singleton.
func (s *Service) UpdateContent(ctx context.Context, req ContentRequest) (*Content, error) {
	row := req.toModel()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := reconcile.UpsertByKey(tx, "id", database.SingletonID, row)
		return err
	})
	if err != nil {
		s.logger.Error("Hero content update failed", zap.Error(err))
		return nil, database.Classify(err, "Failed to update hero content")
	}
	return s.GetContent(ctx)
}
