package footer

import (
	"site-cms/core/database"
	"site-cms/core/reconcile"
	"site-cms/core/utils"
)

// Section is a titled column of footer links.
type Section struct {
	database.Model
	Title    string `gorm:"size:255;not null" json:"title"`
	Position int    `gorm:"not null;index" json:"position"`
	IsActive bool   `gorm:"not null" json:"isActive"`
	Links    []Link `gorm:"foreignKey:FooterSectionID;constraint:OnDelete:CASCADE" json:"links"`
}

// TableName returns the footer sections table.
func (Section) TableName() string {
	return "footer_sections"
}

// Link is one entry in a footer column.
type Link struct {
	database.Model
	FooterSectionID string `gorm:"size:36;not null;index" json:"footerSectionId"`
	Name            string `gorm:"size:255;not null" json:"name"`
	Href            string `gorm:"size:512;not null" json:"href"`
	Position        int    `gorm:"not null;index" json:"position"`
	IsActive        bool   `gorm:"not null" json:"isActive"`
}

// TableName returns the footer links table.
func (Link) TableName() string {
	return "footer_links"
}

// ContactInfo is a contact channel such as a phone number or address.
type ContactInfo struct {
	database.Model
	Type     string  `gorm:"size:50;not null" json:"type"`
	Label    string  `gorm:"size:255;not null" json:"label"`
	Value    string  `gorm:"size:512;not null" json:"value"`
	Icon     *string `gorm:"size:100" json:"icon"`
	Position int     `gorm:"not null;index" json:"position"`
	IsActive bool    `gorm:"not null" json:"isActive"`
}

// TableName returns the contact info table.
func (ContactInfo) TableName() string {
	return "contact_info"
}

// SocialLink is a social network profile.
type SocialLink struct {
	database.Model
	Name     string `gorm:"size:100;not null" json:"name"`
	Icon     string `gorm:"size:100;not null" json:"icon"`
	Href     string `gorm:"size:512;not null" json:"href"`
	Position int    `gorm:"not null;index" json:"position"`
	IsActive bool   `gorm:"not null" json:"isActive"`
}

// PublicFooter is the body of GET /footer.
type PublicFooter struct {
	Sections    []Section     `json:"sections"`
	ContactInfo []ContactInfo `json:"contactInfo"`
	SocialLinks []SocialLink  `json:"socialLinks"`
}

// LinkInput is one link in a footer save.
type LinkInput struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Href     string `json:"href" validate:"required"`
	Position *int   `json:"position"`
	IsActive *bool  `json:"isActive"`
}

// SectionInput is one footer column in a save, links included.
type SectionInput struct {
	ID       string      `json:"id,omitempty"`
	Title    string      `json:"title" validate:"required"`
	Position *int        `json:"position"`
	IsActive *bool       `json:"isActive"`
	Links    []LinkInput `json:"links" validate:"dive"`
}

// ContactInfoInput is one contact channel in a save.
type ContactInfoInput struct {
	ID       string  `json:"id,omitempty"`
	Type     string  `json:"type" validate:"required"`
	Label    string  `json:"label" validate:"required"`
	Value    string  `json:"value" validate:"required"`
	Icon     *string `json:"icon"`
	Position *int    `json:"position"`
	IsActive *bool   `json:"isActive"`
}

// SocialLinkInput is one social profile in a save.
type SocialLinkInput struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Icon     string `json:"icon" validate:"required"`
	Href     string `json:"href" validate:"required"`
	Position *int   `json:"position"`
	IsActive *bool  `json:"isActive"`
}

// SectionsRequest is the body of PUT /admin/footer.
type SectionsRequest struct {
	Sections []SectionInput `json:"sections" validate:"required,dive"`
}

// ContactInfoRequest is the body of PUT /admin/contact-info.
type ContactInfoRequest struct {
	ContactInfo []ContactInfoInput `json:"contactInfo" validate:"required,dive"`
}

// SocialLinksRequest is the body of PUT /admin/social-links.
type SocialLinksRequest struct {
	SocialLinks []SocialLinkInput `json:"socialLinks" validate:"required,dive"`
}

func (in SectionInput) toModel(index int) Section {
	links := make([]Link, len(in.Links))
	for i, l := range in.Links {
		links[i] = Link{
			Name:     l.Name,
			Href:     l.Href,
			Position: reconcile.Position(l.Position, i),
			IsActive: utils.PtrOr(l.IsActive, true),
		}
	}
	return Section{
		Title:    in.Title,
		Position: reconcile.Position(in.Position, index),
		IsActive: utils.PtrOr(in.IsActive, true),
		Links:    links,
	}
}

func (in ContactInfoInput) toModel(index int) ContactInfo {
	return ContactInfo{
		Type:     in.Type,
		Label:    in.Label,
		Value:    in.Value,
		Icon:     utils.NilIfBlank(in.Icon),
		Position: reconcile.Position(in.Position, index),
		IsActive: utils.PtrOr(in.IsActive, true),
	}
}

func (in SocialLinkInput) toModel(index int) SocialLink {
	return SocialLink{
		Name:     in.Name,
		Icon:     in.Icon,
		Href:     in.Href,
		Position: reconcile.Position(in.Position, index),
		IsActive: utils.PtrOr(in.IsActive, true),
	}
}
