package hero

import (
	"site-cms/core/database"
	"site-cms/core/utils"

	"gorm.io/datatypes"
)

// DashboardStat is a figure shown on a hero dashboard card.
type DashboardStat struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
	Color string `json:"color" validate:"required,oneof=primary accent"`
}

// Dashboard is one rotating card in the hero section.
type Dashboard struct {
	database.Model
	Title       string                             `gorm:"size:255;not null" json:"title"`
	Description string                             `gorm:"type:text;not null" json:"description"`
	Stats       datatypes.JSONSlice[DashboardStat] `json:"stats"`
	Features    datatypes.JSONSlice[string]        `json:"features"`
	ImageURL    *string                            `gorm:"column:image_url;size:512" json:"imageUrl"`
	Position    int                                `gorm:"not null;index" json:"position"`
	IsActive    bool                               `gorm:"not null" json:"isActive"`
}

// TableName returns the dashboards table.
func (Dashboard) TableName() string {
	return "hero_dashboards"
}

// Content is the hero copy block, stored as a singleton under database.SingletonID.
type Content struct {
	database.Model
	TrustBadge       string                      `gorm:"size:255;not null" json:"trustBadge"`
	MainHeading      string                      `gorm:"size:255;not null" json:"mainHeading"`
	SubHeading       string                      `gorm:"size:255;not null" json:"subHeading"`
	Tagline          string                      `gorm:"size:255;not null" json:"tagline"`
	Description      string                      `gorm:"type:text;not null" json:"description"`
	TrustPoints      datatypes.JSONSlice[string] `json:"trustPoints"`
	PrimaryCtaText   string                      `gorm:"size:100;not null" json:"primaryCtaText"`
	SecondaryCtaText string                      `gorm:"size:100;not null" json:"secondaryCtaText"`
	PhoneNumber      string                      `gorm:"size:50;not null" json:"phoneNumber"`
	ChatWidgetURL    string                      `gorm:"column:chat_widget_url;size:512;not null" json:"chatWidgetUrl"`
	IsActive         bool                        `gorm:"not null" json:"isActive"`
}

// TableName returns the hero content table.
func (Content) TableName() string {
	return "hero_contents"
}

// ContentDefaults holds the value of every hero field an admin save omits.
var ContentDefaults = Content{
	TrustBadge:       "Trusted by 5,000+ Companies",
	MainHeading:      "Transform Your",
	SubHeading:       "HR Operations",
	Tagline:          "with AI-Powered Solutions",
	Description:      "Streamline payroll, optimize talent management.",
	TrustPoints:      []string{"No Setup Fees", "24/7 Support", "GDPR Compliant"},
	PrimaryCtaText:   "Start Free Trial",
	SecondaryCtaText: "Schedule Demo",
	PhoneNumber:      "0733769149",
	ChatWidgetURL:    "https://rag-chat-widget.vercel.app/",
}

// DashboardInput is one dashboard card in an admin save.
type DashboardInput struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Stats       []DashboardStat `json:"stats" validate:"required,dive"`
	Features    []string        `json:"features" validate:"required"`
	ImageURL    *string         `json:"imageUrl"`
}

// DashboardsRequest is the body of PUT /admin/hero-dashboards.
type DashboardsRequest struct {
	Dashboards []DashboardInput `json:"dashboards" validate:"required,dive"`
}

// ContentRequest is the body of PUT /admin/hero-content. Blank fields fall
// back to ContentDefaults; an explicit empty trustPoints list is kept.
type ContentRequest struct {
	TrustBadge       string   `json:"trustBadge"`
	MainHeading      string   `json:"mainHeading"`
	SubHeading       string   `json:"subHeading"`
	Tagline          string   `json:"tagline"`
	Description      string   `json:"description"`
	TrustPoints      []string `json:"trustPoints"`
	PrimaryCtaText   string   `json:"primaryCtaText"`
	SecondaryCtaText string   `json:"secondaryCtaText"`
	PhoneNumber      string   `json:"phoneNumber"`
	ChatWidgetURL    string   `json:"chatWidgetUrl" validate:"omitempty,url"`
}

// PublicHero is the payload of GET /hero.
type PublicHero struct {
	HeroDashboards []Dashboard `json:"heroDashboards"`
	HeroContent    *Content    `json:"heroContent"`
}

func (in DashboardInput) toModel(index int) Dashboard {
	return Dashboard{
		Title:       in.Title,
		Description: in.Description,
		Stats:       in.Stats,
		Features:    in.Features,
		ImageURL:    utils.NilIfBlank(in.ImageURL),
		Position:    index + 1,
		IsActive:    true,
	}
}

func (r ContentRequest) toModel() *Content {
	d := ContentDefaults
	trustPoints := r.TrustPoints
	if trustPoints == nil {
		trustPoints = append([]string(nil), d.TrustPoints...)
	}
	c := &Content{
		TrustBadge:       utils.StringOr(r.TrustBadge, d.TrustBadge),
		MainHeading:      utils.StringOr(r.MainHeading, d.MainHeading),
		SubHeading:       utils.StringOr(r.SubHeading, d.SubHeading),
		Tagline:          utils.StringOr(r.Tagline, d.Tagline),
		Description:      utils.StringOr(r.Description, d.Description),
		TrustPoints:      trustPoints,
		PrimaryCtaText:   utils.StringOr(r.PrimaryCtaText, d.PrimaryCtaText),
		SecondaryCtaText: utils.StringOr(r.SecondaryCtaText, d.SecondaryCtaText),
		PhoneNumber:      utils.StringOr(r.PhoneNumber, d.PhoneNumber),
		ChatWidgetURL:    utils.StringOr(r.ChatWidgetURL, d.ChatWidgetURL),
		IsActive:         true,
	}
	c.ID = database.SingletonID
	return c
}
