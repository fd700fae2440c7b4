package navigation

import (
	"site-cms/core/database"
	"site-cms/core/reconcile"
	"site-cms/core/utils"
	"site-cms/feature/theme"

	"gorm.io/datatypes"
)

// DefaultDropdownTitle is used when a dropdown is saved without a title.
const DefaultDropdownTitle = "Dropdown Title"

// NavItem is a top-level menu entry, addressed by its unique Key.
type NavItem struct {
	database.Model
	Name        string        `gorm:"size:255;not null" json:"name"`
	Key         string        `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Href        *string       `gorm:"size:512" json:"href"`
	Position    int           `gorm:"not null;index" json:"position"`
	HasDropdown bool          `gorm:"not null" json:"hasDropdown"`
	IsActive    bool          `gorm:"not null" json:"isActive"`
	Dropdown    *DropdownData `gorm:"constraint:OnDelete:CASCADE" json:"dropdown,omitempty"`
}

// DropdownData is the panel opened by a nav item. Each nav item owns at most one.
type DropdownData struct {
	database.Model
	NavItemID string         `gorm:"size:36;not null;uniqueIndex" json:"navItemId"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Items     []DropdownItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// TableName keeps "data" from being pluralised.
func (DropdownData) TableName() string {
	return "dropdown_data"
}

// DropdownItem is one link inside a dropdown panel.
type DropdownItem struct {
	database.Model
	DropdownDataID string                      `gorm:"size:36;not null;index" json:"dropdownDataId"`
	Name           string                      `gorm:"size:255;not null" json:"name"`
	Href           string                      `gorm:"size:512;not null" json:"href"`
	Description    string                      `gorm:"type:text" json:"description"`
	Features       datatypes.JSONSlice[string] `json:"features"`
	Position       int                         `gorm:"not null;index" json:"position"`
	IsActive       bool                        `gorm:"not null" json:"isActive"`
}

// NavItemInput is one nav item in an admin save. Items are matched by Key;
// ID is ignored.
type NavItemInput struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required"`
	Key         string  `json:"key" validate:"required,max=100"`
	Href        *string `json:"href"`
	Position    *int    `json:"position"`
	IsActive    *bool   `json:"isActive"`
	HasDropdown *bool   `json:"hasDropdown"`
}

// DropdownItemInput is one dropdown link in an admin save. Position is
// always taken from payload order.
type DropdownItemInput struct {
	Name        string   `json:"name" validate:"required"`
	Href        string   `json:"href" validate:"required"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"isActive"`
}

// DropdownInput is the full content of one dropdown panel.
type DropdownInput struct {
	Title string              `json:"title"`
	Items []DropdownItemInput `json:"items" validate:"dive"`
}

// UpdateRequest is the body of PUT /admin/navigation. DropdownData is keyed
// by the owning nav item's key.
type UpdateRequest struct {
	NavItems     []NavItemInput           `json:"navItems" validate:"required,dive"`
	DropdownData map[string]DropdownInput `json:"dropdownData" validate:"omitempty,dive"`
}

// PublicDropdown is a dropdown as served to the site.
type PublicDropdown struct {
	Title string         `json:"title"`
	Items []DropdownItem `json:"items"`
}

// PublicNavigation is the payload of GET /navigation.
type PublicNavigation struct {
	NavItems     []NavItem                 `json:"navItems"`
	DropdownData map[string]PublicDropdown `json:"dropdownData"`
	ThemeConfig  *theme.Config             `json:"themeConfig"`
}

func (in NavItemInput) toModel(index int) *NavItem {
	return &NavItem{
		Name:        in.Name,
		Key:         in.Key,
		Href:        utils.NilIfBlank(in.Href),
		Position:    reconcile.Position(in.Position, index),
		HasDropdown: utils.PtrOr(in.HasDropdown, false),
		IsActive:    utils.PtrOr(in.IsActive, true),
	}
}

func (in DropdownItemInput) toModel(dropdownID string, index int) DropdownItem {
	features := in.Features
	if features == nil {
		features = []string{}
	}
	return DropdownItem{
		DropdownDataID: dropdownID,
		Name:           in.Name,
		Href:           in.Href,
		Description:    in.Description,
		Features:       features,
		Position:       index + 1,
		IsActive:       utils.PtrOr(in.IsActive, true),
	}
}
