package theme

import (
	"site-cms/core/database"
	"site-cms/core/utils"
)

// Config is the site's single theme row, stored under database.SingletonID.
type Config struct {
	database.Model
	PrimaryColor string  `gorm:"size:7;not null" json:"primaryColor"`
	AccentColor  string  `gorm:"size:7;not null" json:"accentColor"`
	CompanyName  string  `gorm:"size:255;not null" json:"companyName"`
	LogoURL      *string `gorm:"column:logo_url;size:512" json:"logoUrl"`
	IsActive     bool    `gorm:"not null" json:"isActive"`
}

// TableName keeps the table name stable regardless of the Go type name.
func (Config) TableName() string {
	return "theme_configs"
}

// Defaults fills fields an admin save leaves out.
var Defaults = Config{
	PrimaryColor: "#3b82f6",
	AccentColor:  "#f97316",
	CompanyName:  "Fortune Technologies",
}

// UpdateRequest is the body of PUT /admin/theme.
type UpdateRequest struct {
	PrimaryColor string  `json:"primaryColor" validate:"required,hexcolor,len=7"`
	AccentColor  string  `json:"accentColor" validate:"required,hexcolor,len=7"`
	CompanyName  string  `json:"companyName"`
	LogoURL      *string `json:"logoUrl"`
}

func (r UpdateRequest) toModel() *Config {
	c := &Config{
		PrimaryColor: r.PrimaryColor,
		AccentColor:  r.AccentColor,
		CompanyName:  utils.StringOr(r.CompanyName, Defaults.CompanyName),
		LogoURL:      utils.NilIfBlank(r.LogoURL),
		IsActive:     true,
	}
	c.ID = database.SingletonID
	return c
}
