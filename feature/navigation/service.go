package navigation

import (
	"context"
	"errors"
	"sort"

	"site-cms/core/database"
	"site-cms/core/reconcile"
	"site-cms/core/response"
	"site-cms/core/utils"
	"site-cms/feature/theme"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service manages the site menu.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new navigation service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// GetPublic assembles the menu served to the site: active nav items in
// order, the active links of every dropdown that is switched on, and the theme.
func (s *Service) GetPublic(ctx context.Context) (*PublicNavigation, error) {
	db := s.db.WithContext(ctx)

	var items []NavItem
	err := db.Scopes(database.Active, database.Ordered).
		Preload("Dropdown").
		Preload("Dropdown.Items", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(database.Active, database.Ordered)
		}).
		Find(&items).Error
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch navigation")
	}

	out := &PublicNavigation{
		NavItems:     make([]NavItem, 0, len(items)),
		DropdownData: make(map[string]PublicDropdown),
	}
	for _, item := range items {
		if item.HasDropdown && item.Dropdown != nil {
			out.DropdownData[item.Key] = PublicDropdown{
				Title: item.Dropdown.Title,
				Items: item.Dropdown.Items,
			}
		}
		item.Dropdown = nil
		out.NavItems = append(out.NavItems, item)
	}

	if out.ThemeConfig, err = theme.Find(db); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one nav item with its dropdown, in any state.
func (s *Service) Get(ctx context.Context, id string) (*NavItem, error) {
	var item NavItem
	err := s.db.WithContext(ctx).
		Preload("Dropdown").
		Preload("Dropdown.Items", database.Ordered).
		Where("id = ?", id).
		Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("Navigation item not found")
	}
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch navigation item")
	}
	return &item, nil
}

// Replace upserts every submitted nav item by key and rewrites the dropdowns
// named in the request. Nav items left out of the request are not touched.
func (s *Service) Replace(ctx context.Context, req UpdateRequest) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Upsert nav items by business key
		for i, in := range req.NavItems {
			row := in.toModel(i)
			if _, err := reconcile.UpsertByKey(tx, "key", row.Key, row); err != nil {
				return err
			}
		}

		// 2. Rewrite each named dropdown under its owner
		keys := make([]string, 0, len(req.DropdownData))
		for key := range req.DropdownData {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if err := s.replaceDropdown(tx, key, req.DropdownData[key]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Navigation update failed", zap.Error(err))
		return database.Classify(err, "Failed to update navigation")
	}

	s.logger.Info("Navigation saved",
		zap.Int("nav_items", len(req.NavItems)),
		zap.Int("dropdowns", len(req.DropdownData)))
	return nil
}

func (s *Service) replaceDropdown(tx *gorm.DB, key string, in DropdownInput) error {
	var owner NavItem
	err := tx.Select("id").Where(&NavItem{Key: key}).Take(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("Dropdown for unknown nav item skipped", zap.String("key", key))
		return nil
	}
	if err != nil {
		return err
	}

	title := utils.StringOr(in.Title, DefaultDropdownTitle)

	var dropdown DropdownData
	err = tx.Where(&DropdownData{NavItemID: owner.ID}).Take(&dropdown).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		dropdown = DropdownData{NavItemID: owner.ID, Title: title}
		if err := tx.Create(&dropdown).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err := tx.Model(&dropdown).Update("title", title).Error; err != nil {
			return err
		}
	}

	items := make([]DropdownItem, len(in.Items))
	for i, item := range in.Items {
		items[i] = item.toModel(dropdown.ID, i)
	}
	_, err = reconcile.ReplaceAll(tx, reconcile.Where("dropdown_data_id", dropdown.ID), items)
	return err
}

// Delete removes a nav item. Its dropdown and links cascade with it.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := reconcile.DeleteByID[NavItem](s.db.WithContext(ctx), id, "Navigation item not found")
	return database.Classify(err, "Failed to delete navigation item")
}
