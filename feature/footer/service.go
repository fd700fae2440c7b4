package footer

import (
	"context"

	"site-cms/core/database"
	"site-cms/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Service manages the footer lists.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new footer service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

func (s *Service) query(ctx context.Context, activeOnly bool) *gorm.DB {
	q := s.db.WithContext(ctx)
	if activeOnly {
		q = q.Scopes(database.Active)
	}
	return q.Scopes(database.Ordered)
}

// GetPublic loads the active columns, contact channels and social links
// concurrently.
func (s *Service) GetPublic(ctx context.Context) (*PublicFooter, error) {
	out := &PublicFooter{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.Sections, err = s.Sections(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		out.ContactInfo, err = s.ContactInfo(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		out.SocialLinks, err = s.SocialLinks(gctx, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, database.Classify(err, "Failed to fetch footer")
	}
	return out, nil
}

// Sections returns the footer columns with their links. activeOnly hides
// inactive columns and links.
func (s *Service) Sections(ctx context.Context, activeOnly bool) ([]Section, error) {
	sections := []Section{}
	err := s.query(ctx, activeOnly).
		Preload("Links", func(db *gorm.DB) *gorm.DB {
			if activeOnly {
				db = db.Scopes(database.Active)
			}
			return db.Scopes(database.Ordered)
		}).
		Find(&sections).Error
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch footer sections")
	}
	return sections, nil
}

// ContactInfo returns the contact channels in display order.
func (s *Service) ContactInfo(ctx context.Context, activeOnly bool) ([]ContactInfo, error) {
	info := []ContactInfo{}
	if err := s.query(ctx, activeOnly).Find(&info).Error; err != nil {
		return nil, database.Classify(err, "Failed to fetch contact info")
	}
	return info, nil
}

// SocialLinks returns the social profiles in display order.
func (s *Service) SocialLinks(ctx context.Context, activeOnly bool) ([]SocialLink, error) {
	links := []SocialLink{}
	if err := s.query(ctx, activeOnly).Find(&links).Error; err != nil {
		return nil, database.Classify(err, "Failed to fetch social links")
	}
	return links, nil
}

// ReplaceSections swaps every footer column and link for inputs.
func (s *Service) ReplaceSections(ctx context.Context, inputs []SectionInput) ([]Section, error) {
	rows := make([]Section, len(inputs))
	for i, in := range inputs {
		rows[i] = in.toModel(i)
	}

	saved, err := replace(ctx, s, "footer", rows)
	if err != nil {
		return nil, database.Classify(err, "Failed to update footer")
	}
	return saved, nil
}

// ReplaceContactInfo swaps every contact channel for inputs.
func (s *Service) ReplaceContactInfo(ctx context.Context, inputs []ContactInfoInput) ([]ContactInfo, error) {
	rows := make([]ContactInfo, len(inputs))
	for i, in := range inputs {
		rows[i] = in.toModel(i)
	}

	saved, err := replace(ctx, s, "contact info", rows)
	if err != nil {
		return nil, database.Classify(err, "Failed to update contact info")
	}
	return saved, nil
}

// ReplaceSocialLinks swaps every social link for inputs.
func (s *Service) ReplaceSocialLinks(ctx context.Context, inputs []SocialLinkInput) ([]SocialLink, error) {
	rows := make([]SocialLink, len(inputs))
	for i, in := range inputs {
		rows[i] = in.toModel(i)
	}

	saved, err := replace(ctx, s, "social links", rows)
	if err != nil {
		return nil, database.Classify(err, "Failed to update social links")
	}
	return saved, nil
}

func replace[M any, PM reconcile.Entity[M]](ctx context.Context, s *Service, list string, rows []M) ([]M, error) {
	var saved []M
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		saved, err = reconcile.ReplaceAll[M, PM](tx, reconcile.AllRows, rows)
		return err
	})
	if err != nil {
		s.logger.Error("Footer update failed", zap.String("list", list), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Footer list replaced", zap.String("list", list), zap.Int("count", len(saved)))
	return saved, nil
}
