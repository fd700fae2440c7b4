package stats

import (
	"site-cms/core/database"
	"site-cms/core/reconcile"
)

// DefaultColor is applied to stats saved without a color class.
const DefaultColor = "text-primary-600"

// Stat is a headline figure shown on the landing page ("5,000+ Companies").
type Stat struct {
	database.Model
	Number   string  `gorm:"size:64;not null" json:"number"`
	Label    string  `gorm:"size:255;not null" json:"label"`
	Icon     *string `gorm:"size:255" json:"icon"`
	Color    string  `gorm:"size:64;not null" json:"color"`
	Position int     `gorm:"not null;index" json:"position"`
	IsActive bool    `gorm:"not null" json:"isActive"`
}

// StatInput is one stat in an admin save. ID is accepted and discarded.
type StatInput struct {
	ID       string  `json:"id,omitempty"`
	Number   string  `json:"number" validate:"required"`
	Label    string  `json:"label" validate:"required"`
	Icon     *string `json:"icon"`
	Color    string  `json:"color"`
	Position *int    `json:"position"`
	IsActive *bool   `json:"isActive"`
}

// UpdateRequest is the body of PUT /admin/stats.
type UpdateRequest struct {
	Stats []StatInput `json:"stats" validate:"required,dive"`
}

func (in StatInput) toModel(index int) Stat {
	color := in.Color
	if color == "" {
		color = DefaultColor
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	return Stat{
		Number:   in.Number,
		Label:    in.Label,
		Icon:     in.Icon,
		Color:    color,
		Position: reconcile.Position(in.Position, index),
		IsActive: isActive,
	}
}
