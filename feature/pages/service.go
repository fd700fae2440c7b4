package pages

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"site-cms/core/database"
	"site-cms/core/reconcile"
	"site-cms/core/response"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service manages page content and call-to-actions.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new pages service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// GetContent returns the content of pageKey. Unless includeHidden is set an
// inactive page is reported as missing.
func (s *Service) GetContent(ctx context.Context, pageKey string, includeHidden bool) (*Content, error) {
	q := s.db.WithContext(ctx)
	if !includeHidden {
		q = q.Scopes(database.Active)
	}

	var out Content
	err := q.Where(&Content{PageKey: pageKey}).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound(fmt.Sprintf("Page content not found for: %s", pageKey))
	}
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch page content")
	}
	return &out, nil
}

// UpdateContent creates or overwrites the page addressed by req.PageKey.
func (s *Service) UpdateContent(ctx context.Context, req ContentRequest) (*Content, error) {
	row := req.toModel()

	var created bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = reconcile.UpsertByKey(tx, "page_key", row.PageKey, row)
		return err
	})
	if err != nil {
		s.logger.Error("Page content update failed", zap.String("page", row.PageKey), zap.Error(err))
		return nil, database.Classify(err, "Failed to update page content")
	}

	s.logger.Info("Page content saved", zap.String("page", row.PageKey), zap.Bool("created", created))
	return s.GetContent(ctx, row.PageKey, true)
}

// CallToActions returns the banners of pageKey in display order.
func (s *Service) CallToActions(ctx context.Context, pageKey string, includeHidden bool) ([]CallToAction, error) {
	q := s.db.WithContext(ctx)
	if !includeHidden {
		q = q.Scopes(database.Active)
	}

	ctas := []CallToAction{}
	if err := q.Where(&CallToAction{PageKey: pageKey}).Scopes(database.Ordered).Find(&ctas).Error; err != nil {
		return nil, database.Classify(err, "Failed to fetch call-to-actions")
	}
	return ctas, nil
}

// ReplaceCallToActions replaces the banners of every page named in inputs.
// Pages absent from inputs keep their banners.
func (s *Service) ReplaceCallToActions(ctx context.Context, inputs []CallToActionInput) ([]CallToAction, error) {
	byPage := make(map[string][]CallToAction)
	for _, in := range inputs {
		key := strings.TrimSpace(in.PageKey)
		byPage[key] = append(byPage[key], in.toModel(len(byPage[key])))
	}
	return s.replacePages(ctx, byPage)
}

// ReplacePageCallToActions replaces the banners of a single page. An empty
// list removes them all. The page key of each input is ignored.
func (s *Service) ReplacePageCallToActions(ctx context.Context, pageKey string, inputs []CallToActionInput) ([]CallToAction, error) {
	pageKey = strings.TrimSpace(pageKey)
	if pageKey == "" {
		return nil, response.Validation("pageKey is required")
	}

	rows := make([]CallToAction, 0, len(inputs))
	for i, in := range inputs {
		in.PageKey = pageKey
		rows = append(rows, in.toModel(i))
	}
	return s.replacePages(ctx, map[string][]CallToAction{pageKey: rows})
}

func (s *Service) replacePages(ctx context.Context, byPage map[string][]CallToAction) ([]CallToAction, error) {
	pageKeys := make([]string, 0, len(byPage))
	for key := range byPage {
		pageKeys = append(pageKeys, key)
	}
	sort.Strings(pageKeys)

	saved := []CallToAction{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, key := range pageKeys {
			rows, err := reconcile.ReplaceAll(tx, reconcile.Where("page_key", key), byPage[key])
			if err != nil {
				return fmt.Errorf("page %s: %w", key, err)
			}
			saved = append(saved, rows...)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Call-to-actions update failed", zap.Strings("pages", pageKeys), zap.Error(err))
		return nil, database.Classify(err, "Failed to update call-to-actions")
	}

	s.logger.Info("Call-to-actions replaced", zap.Strings("pages", pageKeys), zap.Int("count", len(saved)))
	return saved, nil
}
