package testimonials

import (
	"context"

	"site-cms/core/database"
	"site-cms/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service manages testimonials.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new testimonials service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns active testimonials matching filters, in display order.
func (s *Service) List(ctx context.Context, filters Filters) ([]Testimonial, error) {
	q := s.db.WithContext(ctx).Scopes(database.Active, database.Ordered)
	if filters.Service != "" {
		q = q.Where("service = ?", filters.Service)
	}
	if filters.Featured != nil {
		q = q.Where("is_featured = ?", *filters.Featured)
	}
	if filters.MinRating != nil {
		q = q.Where("rating >= ?", *filters.MinRating)
	}
	if filters.Limit > 0 {
		q = q.Limit(filters.Limit)
	}

	var out []Testimonial
	if err := q.Find(&out).Error; err != nil {
		return nil, database.Classify(err, "Failed to fetch testimonials")
	}
	return out, nil
}

// Reconcile brings the stored testimonials in line with inputs, keeping the
// ids of testimonials that are still referenced.
func (s *Service) Reconcile(ctx context.Context, inputs []TestimonialInput) (reconcile.Counts, error) {
	rows := make([]*Testimonial, len(inputs))
	for i, in := range inputs {
		rows[i] = in.toModel(i)
	}

	var counts reconcile.Counts
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		counts, err = reconcile.Reconcile(tx, s.logger, "testimonial", rows)
		return err
	})
	if err != nil {
		s.logger.Error("Testimonials update failed", zap.Error(err))
		return reconcile.Counts{}, database.Classify(err, "Failed to update testimonials")
	}

	s.logger.Info("Testimonials processed",
		zap.Int("created", counts.Created),
		zap.Int("updated", counts.Updated),
		zap.Int("deleted", counts.Deleted))
	return counts, nil
}

// Delete removes a single testimonial.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := reconcile.DeleteByID[Testimonial](s.db.WithContext(ctx), id, "Testimonial not found")
	if err != nil {
		s.logger.Error("Failed to delete testimonial", zap.String("id", id), zap.Error(err))
	}
	return database.Classify(err, "Failed to delete testimonial")
}
