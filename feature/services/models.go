package services

import (
	"site-cms/core/database"
	"site-cms/core/reconcile"
	"site-cms/core/utils"

	"gorm.io/datatypes"
)

// DefaultButtonText labels the call-to-action of a service card by default.
const DefaultButtonText = "Learn More"

// Benefit is a highlighted outcome on a service page.
type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Stat        string `json:"stat"`
	StatLabel   string `json:"statLabel"`
}

// Offering is a service the company sells. Its slug is the public address.
type Offering struct {
	database.Model
	Title              string                       `gorm:"size:255;not null" json:"title"`
	Slug               string                       `gorm:"size:191;not null;uniqueIndex" json:"slug"`
	Description        string                       `gorm:"type:text;not null" json:"description"`
	ShortDesc          *string                      `gorm:"size:512" json:"shortDesc"`
	Icon               string                       `gorm:"size:100;not null" json:"icon"`
	Color              string                       `gorm:"size:100;not null" json:"color"`
	Category           *string                      `gorm:"size:100;index" json:"category"`
	Features           datatypes.JSONSlice[string]  `json:"features"`
	Benefits           datatypes.JSONSlice[Benefit] `json:"benefits"`
	ProcessSteps       datatypes.JSON               `json:"processSteps"`
	ComplianceItems    datatypes.JSON               `json:"complianceItems"`
	ImageURL           *string                      `gorm:"column:image_url;size:512" json:"imageUrl"`
	HeroImageURL       *string                      `gorm:"column:hero_image_url;size:512" json:"heroImageUrl"`
	ProcessImageURL    *string                      `gorm:"column:process_image_url;size:512" json:"processImageUrl"`
	ComplianceImageURL *string                      `gorm:"column:compliance_image_url;size:512" json:"complianceImageUrl"`
	OnQuote            bool                         `gorm:"not null" json:"onQuote"`
	HasProcess         bool                         `gorm:"not null" json:"hasProcess"`
	HasCompliance      bool                         `gorm:"not null" json:"hasCompliance"`
	IsActive           bool                         `gorm:"not null" json:"isActive"`
	IsFeatured         bool                         `gorm:"not null" json:"isFeatured"`
	IsPopular          bool                         `gorm:"not null" json:"isPopular"`
	Position           int                          `gorm:"not null;index" json:"position"`
	Price              *string                      `gorm:"size:100" json:"price"`
	ButtonText         string                       `gorm:"size:100;not null" json:"buttonText"`
	ButtonLink         *string                      `gorm:"size:512" json:"buttonLink"`
	Metadata           datatypes.JSONMap            `json:"metadata"`
}

// TableName returns the services table.
func (Offering) TableName() string {
	return "services"
}

// QuoteOption is the slim projection used by the quote form's service picker.
type QuoteOption struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	Category *string `json:"category"`
	Position int     `json:"position"`
}

// Filters narrows the public service listing. Nil flags apply no filter.
type Filters struct {
	Category string
	Featured *bool
	Popular  *bool
	OnQuote  *bool
}

// OfferingInput is one service in an admin save. ID is accepted and discarded.
type OfferingInput struct {
	ID                 string         `json:"id,omitempty"`
	Title              string         `json:"title" validate:"required"`
	Slug               string         `json:"slug" validate:"required,max=191"`
	Description        string         `json:"description" validate:"required"`
	ShortDesc          *string        `json:"shortDesc"`
	Icon               string         `json:"icon" validate:"required"`
	Color              string         `json:"color" validate:"required"`
	Category           *string        `json:"category"`
	Features           []string       `json:"features" validate:"required"`
	Benefits           []Benefit      `json:"benefits"`
	ProcessSteps       datatypes.JSON `json:"processSteps" swaggertype:"array,object"`
	ComplianceItems    datatypes.JSON `json:"complianceItems" swaggertype:"array,object"`
	ImageURL           *string        `json:"imageUrl"`
	HeroImageURL       *string        `json:"heroImageUrl"`
	ProcessImageURL    *string        `json:"processImageUrl"`
	ComplianceImageURL *string        `json:"complianceImageUrl"`
	OnQuote            *bool          `json:"onQuote"`
	HasProcess         *bool          `json:"hasProcess"`
	HasCompliance      *bool          `json:"hasCompliance"`
	IsActive           *bool          `json:"isActive"`
	IsFeatured         *bool          `json:"isFeatured"`
	IsPopular          *bool          `json:"isPopular"`
	Position           *int           `json:"position"`
	Price              *string        `json:"price"`
	ButtonText         string         `json:"buttonText"`
	ButtonLink         *string        `json:"buttonLink"`
	Metadata           map[string]any `json:"metadata"`
}

// UpdateRequest is the body of PUT /admin/services.
type UpdateRequest struct {
	Services []OfferingInput `json:"services" validate:"required,dive"`
}

func jsonOrEmptyList(raw datatypes.JSON) datatypes.JSON {
	if len(raw) == 0 || string(raw) == "null" {
		return datatypes.JSON("[]")
	}
	return raw
}

func (in OfferingInput) toModel(index int) Offering {
	benefits := in.Benefits
	if benefits == nil {
		benefits = []Benefit{}
	}
	return Offering{
		Title:              in.Title,
		Slug:               in.Slug,
		Description:        in.Description,
		ShortDesc:          utils.NilIfBlank(in.ShortDesc),
		Icon:               in.Icon,
		Color:              in.Color,
		Category:           utils.NilIfBlank(in.Category),
		Features:           in.Features,
		Benefits:           benefits,
		ProcessSteps:       jsonOrEmptyList(in.ProcessSteps),
		ComplianceItems:    jsonOrEmptyList(in.ComplianceItems),
		ImageURL:           utils.NilIfBlank(in.ImageURL),
		HeroImageURL:       utils.NilIfBlank(in.HeroImageURL),
		ProcessImageURL:    utils.NilIfBlank(in.ProcessImageURL),
		ComplianceImageURL: utils.NilIfBlank(in.ComplianceImageURL),
		OnQuote:            utils.PtrOr(in.OnQuote, true),
		HasProcess:         utils.PtrOr(in.HasProcess, false),
		HasCompliance:      utils.PtrOr(in.HasCompliance, false),
		IsActive:           utils.PtrOr(in.IsActive, true),
		IsFeatured:         utils.PtrOr(in.IsFeatured, false),
		IsPopular:          utils.PtrOr(in.IsPopular, false),
		Position:           reconcile.Position(in.Position, index),
		Price:              utils.NilIfBlank(in.Price),
		ButtonText:         utils.StringOr(in.ButtonText, DefaultButtonText),
		ButtonLink:         utils.NilIfBlank(in.ButtonLink),
		Metadata:           in.Metadata,
	}
}
