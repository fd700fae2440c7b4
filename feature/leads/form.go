package leads

import (
	"site-cms/core/database"
	"site-cms/core/utils"

	"gorm.io/datatypes"
)

// FormField is one input on the consultation form.
type FormField struct {
	Name        string `json:"name" validate:"required"`
	Label       string `json:"label" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required"`
	Position    int    `json:"position"`
}

// ServiceOption is one entry of the form's service picker.
type ServiceOption struct {
	Value string `json:"value" validate:"required"`
	Label string `json:"label" validate:"required"`
}

// FormConfig configures the consultation form. It is stored as a singleton
// under database.SingletonID.
type FormConfig struct {
	database.Model
	FormTitle      string                             `gorm:"size:255;not null" json:"formTitle"`
	FormSubtitle   string                             `gorm:"size:512;not null" json:"formSubtitle"`
	Fields         datatypes.JSONSlice[FormField]     `json:"fields"`
	Services       datatypes.JSONSlice[ServiceOption] `json:"services"`
	SubmitText     string                             `gorm:"size:100;not null" json:"submitText"`
	SuccessMessage string                             `gorm:"size:512;not null" json:"successMessage"`
	IsActive       bool                               `gorm:"not null" json:"isActive"`
}

// TableName returns the consultation form table.
func (FormConfig) TableName() string {
	return "consultation_form_configs"
}

// FormDefaults is served until an admin saves the form, and fills every field
// a save omits.
var FormDefaults = FormConfig{
	FormTitle:    "Get a Free Consultation",
	FormSubtitle: "Tell us about your needs and we'll get back to you within 24 hours.",
	Fields: []FormField{
		{Name: "fullName", Label: "Full Name", Type: "text", Required: true, Position: 1},
		{Name: "email", Label: "Email", Type: "email", Required: true, Position: 2},
		{Name: "phone", Label: "Phone", Type: "tel", Position: 3},
		{Name: "company", Label: "Company", Type: "text", Position: 4},
		{Name: "service", Label: "Service", Type: "select", Position: 5},
		{Name: "details", Label: "Project Details", Type: "textarea", Position: 6},
	},
	Services:       []ServiceOption{},
	SubmitText:     "Request Consultation",
	SuccessMessage: ContactThanks,
	IsActive:       true,
}

// FormRequest is the body of PUT /admin/consultation-form.
type FormRequest struct {
	FormTitle      string          `json:"formTitle"`
	FormSubtitle   string          `json:"formSubtitle"`
	Fields         []FormField     `json:"fields" validate:"omitempty,dive"`
	Services       []ServiceOption `json:"services" validate:"omitempty,dive"`
	SubmitText     string          `json:"submitText"`
	SuccessMessage string          `json:"successMessage"`
	IsActive       *bool           `json:"isActive"`
}

func (r FormRequest) toModel() *FormConfig {
	fields := FormDefaults.Fields
	if r.Fields != nil {
		fields = make([]FormField, len(r.Fields))
		for i, f := range r.Fields {
			if f.Position == 0 {
				f.Position = i + 1
			}
			fields[i] = f
		}
	}
	services := FormDefaults.Services
	if r.Services != nil {
		services = r.Services
	}
	return &FormConfig{
		Model:          database.Model{ID: database.SingletonID},
		FormTitle:      utils.StringOr(r.FormTitle, FormDefaults.FormTitle),
		FormSubtitle:   utils.StringOr(r.FormSubtitle, FormDefaults.FormSubtitle),
		Fields:         fields,
		Services:       services,
		SubmitText:     utils.StringOr(r.SubmitText, FormDefaults.SubmitText),
		SuccessMessage: utils.StringOr(r.SuccessMessage, FormDefaults.SuccessMessage),
		IsActive:       utils.PtrOr(r.IsActive, true),
	}
}
