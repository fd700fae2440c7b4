package sections

import (
	"strings"

	"site-cms/core/database"
	"site-cms/core/utils"
)

// Content is the title block of one landing-page section.
type Content struct {
	database.Model
	SectionKey  string  `gorm:"size:100;not null;uniqueIndex" json:"sectionKey"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Subtitle    *string `gorm:"size:512" json:"subtitle"`
	Description *string `gorm:"type:text" json:"description"`
	IsActive    bool    `gorm:"not null" json:"isActive"`
}

// TableName returns the section content table.
func (Content) TableName() string {
	return "section_contents"
}

// UpdateRequest is the body of PUT /admin/section-content.
type UpdateRequest struct {
	SectionKey  string  `json:"sectionKey" validate:"required,max=100"`
	Title       string  `json:"title" validate:"required"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

func (r UpdateRequest) toModel() *Content {
	return &Content{
		SectionKey:  strings.TrimSpace(r.SectionKey),
		Title:       r.Title,
		Subtitle:    utils.NilIfBlank(r.Subtitle),
		Description: utils.NilIfBlank(r.Description),
		IsActive:    utils.PtrOr(r.IsActive, true),
	}
}
