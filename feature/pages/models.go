package pages

import (
	"strings"

	"site-cms/core/database"
	"site-cms/core/reconcile"
	"site-cms/core/utils"

	"gorm.io/datatypes"
)

// Content is the copy of one marketing page.
type Content struct {
	database.Model
	PageKey            string            `gorm:"size:100;not null;uniqueIndex" json:"pageKey"`
	Title              string            `gorm:"size:255;not null" json:"title"`
	Subtitle           *string           `gorm:"size:512" json:"subtitle"`
	Description        *string           `gorm:"type:text" json:"description"`
	HeroTitle          *string           `gorm:"size:255" json:"heroTitle"`
	HeroSubtitle       *string           `gorm:"size:512" json:"heroSubtitle"`
	HeroDescription    *string           `gorm:"type:text" json:"heroDescription"`
	HeroImageURL       *string           `gorm:"column:hero_image_url;size:512" json:"heroImageUrl"`
	ProcessImageURL    *string           `gorm:"column:process_image_url;size:512" json:"processImageUrl"`
	ComplianceImageURL *string           `gorm:"column:compliance_image_url;size:512" json:"complianceImageUrl"`
	CtaText            *string           `gorm:"size:100" json:"ctaText"`
	CtaLink            *string           `gorm:"size:512" json:"ctaLink"`
	CtaSecondaryText   *string           `gorm:"size:100" json:"ctaSecondaryText"`
	CtaSecondaryLink   *string           `gorm:"size:512" json:"ctaSecondaryLink"`
	Keywords           *string           `gorm:"size:512" json:"keywords"`
	MetaDescription    *string           `gorm:"size:512" json:"metaDescription"`
	Metadata           datatypes.JSONMap `json:"metadata"`
	IsActive           bool              `gorm:"not null" json:"isActive"`
}

// TableName returns the page content table.
func (Content) TableName() string {
	return "page_contents"
}

// CallToAction is a banner inviting the visitor to act, shown on one page.
type CallToAction struct {
	database.Model
	PageKey       string  `gorm:"size:100;not null;index" json:"pageKey"`
	Title         string  `gorm:"size:255;not null" json:"title"`
	Description   *string `gorm:"type:text" json:"description"`
	PrimaryText   string  `gorm:"size:100;not null" json:"primaryText"`
	PrimaryLink   string  `gorm:"size:512;not null" json:"primaryLink"`
	SecondaryText *string `gorm:"size:100" json:"secondaryText"`
	SecondaryLink *string `gorm:"size:512" json:"secondaryLink"`
	BgColor       *string `gorm:"size:100" json:"bgColor"`
	TextColor     *string `gorm:"size:100" json:"textColor"`
	Position      int     `gorm:"not null;index" json:"position"`
	IsActive      bool    `gorm:"not null" json:"isActive"`
}

// ContentRequest is the body of PUT /admin/page-content.
type ContentRequest struct {
	PageKey            string         `json:"pageKey" validate:"required,max=100"`
	Title              string         `json:"title" validate:"required"`
	Subtitle           *string        `json:"subtitle"`
	Description        *string        `json:"description"`
	HeroTitle          *string        `json:"heroTitle"`
	HeroSubtitle       *string        `json:"heroSubtitle"`
	HeroDescription    *string        `json:"heroDescription"`
	HeroImageURL       *string        `json:"heroImageUrl"`
	ProcessImageURL    *string        `json:"processImageUrl"`
	ComplianceImageURL *string        `json:"complianceImageUrl"`
	CtaText            *string        `json:"ctaText"`
	CtaLink            *string        `json:"ctaLink"`
	CtaSecondaryText   *string        `json:"ctaSecondaryText"`
	CtaSecondaryLink   *string        `json:"ctaSecondaryLink"`
	Keywords           *string        `json:"keywords"`
	MetaDescription    *string        `json:"metaDescription"`
	Metadata           map[string]any `json:"metadata"`
	IsActive           *bool          `json:"isActive"`
}

// CallToActionInput is one banner in a save. ID is accepted and discarded.
type CallToActionInput struct {
	ID            string  `json:"id,omitempty"`
	PageKey       string  `json:"pageKey" validate:"required,max=100"`
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	PrimaryText   string  `json:"primaryText" validate:"required"`
	PrimaryLink   string  `json:"primaryLink" validate:"required"`
	SecondaryText *string `json:"secondaryText"`
	SecondaryLink *string `json:"secondaryLink"`
	BgColor       *string `json:"bgColor"`
	TextColor     *string `json:"textColor"`
	Position      *int    `json:"position"`
	IsActive      *bool   `json:"isActive"`
}

// CallToActionsRequest is the body of PUT /admin/call-to-actions.
type CallToActionsRequest struct {
	CTAs []CallToActionInput `json:"ctas" validate:"required,dive"`
}

// PageCallToActionsRequest is the body of PUT /admin/call-to-actions/:pageKey.
// An empty list clears the page.
type PageCallToActionsRequest struct {
	CTAs []CallToActionInput `json:"ctas" validate:"dive"`
}

func (r ContentRequest) toModel() *Content {
	return &Content{
		PageKey:            strings.TrimSpace(r.PageKey),
		Title:              r.Title,
		Subtitle:           utils.NilIfBlank(r.Subtitle),
		Description:        utils.NilIfBlank(r.Description),
		HeroTitle:          utils.NilIfBlank(r.HeroTitle),
		HeroSubtitle:       utils.NilIfBlank(r.HeroSubtitle),
		HeroDescription:    utils.NilIfBlank(r.HeroDescription),
		HeroImageURL:       utils.NilIfBlank(r.HeroImageURL),
		ProcessImageURL:    utils.NilIfBlank(r.ProcessImageURL),
		ComplianceImageURL: utils.NilIfBlank(r.ComplianceImageURL),
		CtaText:            utils.NilIfBlank(r.CtaText),
		CtaLink:            utils.NilIfBlank(r.CtaLink),
		CtaSecondaryText:   utils.NilIfBlank(r.CtaSecondaryText),
		CtaSecondaryLink:   utils.NilIfBlank(r.CtaSecondaryLink),
		Keywords:           utils.NilIfBlank(r.Keywords),
		MetaDescription:    utils.NilIfBlank(r.MetaDescription),
		Metadata:           r.Metadata,
		IsActive:           utils.PtrOr(r.IsActive, true),
	}
}

// toModel builds the row; index is the banner's place within its own page.
func (in CallToActionInput) toModel(index int) CallToAction {
	return CallToAction{
		PageKey:       strings.TrimSpace(in.PageKey),
		Title:         in.Title,
		Description:   utils.NilIfBlank(in.Description),
		PrimaryText:   in.PrimaryText,
		PrimaryLink:   in.PrimaryLink,
		SecondaryText: utils.NilIfBlank(in.SecondaryText),
		SecondaryLink: utils.NilIfBlank(in.SecondaryLink),
		BgColor:       utils.NilIfBlank(in.BgColor),
		TextColor:     utils.NilIfBlank(in.TextColor),
		Position:      reconcile.Position(in.Position, index),
		IsActive:      utils.PtrOr(in.IsActive, true),
	}
}
