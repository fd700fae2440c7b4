package testimonials

import (
	"strings"

	"site-cms/core/database"
	"site-cms/core/reconcile"
	"site-cms/core/utils"

	"gorm.io/datatypes"
)

// DefaultRating is stored when a testimonial is saved without a rating.
const DefaultRating = 5

// Testimonial is a customer quote. Unlike other list content its id survives
// admin saves, so the front end can keep referencing it.
type Testimonial struct {
	database.Model
	Name       string                      `gorm:"size:255;not null" json:"name"`
	Role       string                      `gorm:"size:255;not null" json:"role"`
	Company    string                      `gorm:"size:255;not null" json:"company"`
	Content    string                      `gorm:"type:text;not null" json:"content"`
	Rating     int                         `gorm:"not null;index" json:"rating"`
	Avatar     string                      `gorm:"size:512;not null" json:"avatar"`
	Results    datatypes.JSONSlice[string] `json:"results"`
	Service    *string                     `gorm:"size:255;index" json:"service"`
	IsActive   bool                        `gorm:"not null" json:"isActive"`
	IsFeatured bool                        `gorm:"not null" json:"isFeatured"`
	Position   int                         `gorm:"not null;index" json:"position"`
}

// TestimonialInput is one testimonial in an admin save. An empty ID or one
// starting with "temp-" creates a new row.
type TestimonialInput struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name" validate:"required"`
	Role       string   `json:"role" validate:"required"`
	Company    string   `json:"company" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Rating     *int     `json:"rating" validate:"omitempty,min=1,max=5"`
	Avatar     string   `json:"avatar" validate:"required"`
	Results    []string `json:"results"`
	Service    *string  `json:"service"`
	IsActive   *bool    `json:"isActive"`
	IsFeatured *bool    `json:"isFeatured"`
	Position   *int     `json:"position"`
}

// UpdateRequest is the body of PUT /admin/testimonials.
type UpdateRequest struct {
	Testimonials []TestimonialInput `json:"testimonials" validate:"required,dive"`
}

// Filters narrows the public testimonial listing.
type Filters struct {
	Service   string
	Featured  *bool
	MinRating *int
	Limit     int
}

func (in TestimonialInput) toModel(index int) *Testimonial {
	t := &Testimonial{
		Name:       strings.TrimSpace(in.Name),
		Role:       strings.TrimSpace(in.Role),
		Company:    strings.TrimSpace(in.Company),
		Content:    strings.TrimSpace(in.Content),
		Rating:     utils.PtrOr(in.Rating, DefaultRating),
		Avatar:     strings.TrimSpace(in.Avatar),
		Results:    utils.CompactStrings(in.Results),
		Service:    utils.NilIfBlank(in.Service),
		IsActive:   utils.PtrOr(in.IsActive, true),
		IsFeatured: utils.PtrOr(in.IsFeatured, false),
		Position:   reconcile.Position(in.Position, index),
	}
	t.ID = in.ID
	return t
}
