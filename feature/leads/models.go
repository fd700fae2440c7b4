package leads

import (
	"strings"
	"time"

	"site-cms/core/database"
	"site-cms/core/utils"

	"gorm.io/datatypes"
)

// Lead types.
const (
	TypeConsultation = "consultation"
	TypeContact      = "contact"
)

// Lead statuses.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
)

// Statuses lists every status a lead may hold.
var Statuses = []string{StatusNew, StatusInProgress, StatusClosed}

// Default sources recorded when a submission does not name one.
const (
	DefaultConsultationSource = "consultation-form"
	DefaultContactSource      = "contact-form"
)

// ContactThanks is returned to a visitor after a contact-form submission.
const ContactThanks = "Thank you! We'll contact you within 24 hours."

// Lead is a visitor's request to be contacted.
type Lead struct {
	database.Model
	LeadType        string            `gorm:"size:32;not null;index" json:"leadType"`
	FullName        string            `gorm:"size:100;not null" json:"fullName"`
	Email           string            `gorm:"size:255;not null;index" json:"email"`
	Phone           *string           `gorm:"size:20" json:"phone"`
	Company         *string           `gorm:"size:100" json:"company"`
	ServiceInterest *string           `gorm:"size:100" json:"serviceInterest"`
	ProjectDetails  *string           `gorm:"type:text" json:"projectDetails"`
	Status          string            `gorm:"size:32;not null;index" json:"status"`
	Source          string            `gorm:"size:100;not null" json:"source"`
	Metadata        datatypes.JSONMap `json:"metadata"`
}

// Receipt acknowledges a stored submission.
type Receipt struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Filters narrows the admin lead listing. Empty fields apply no filter.
type Filters struct {
	LeadType string
	Status   string
}

// ConsultationRequest is the body of POST /consultation.
type ConsultationRequest struct {
	FullName string  `json:"fullName" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Company  *string `json:"company" validate:"omitempty,max=100"`
	Service  *string `json:"service" validate:"omitempty,max=100"`
	Details  *string `json:"details" validate:"omitempty,max=1000"`
	Source   string  `json:"source"`
}

// ContactRequest is the body of POST /contact.
type ContactRequest struct {
	Name     string         `json:"name" validate:"required"`
	Email    string         `json:"email" validate:"required,email"`
	Phone    string         `json:"phone" validate:"required"`
	Company  *string        `json:"company"`
	Service  string         `json:"service" validate:"required"`
	Message  string         `json:"message" validate:"required"`
	Source   string         `json:"source"`
	Metadata map[string]any `json:"metadata"`
}

// StatusRequest is the body of PATCH /admin/leads/:id/status.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return utils.NilIfBlank(&t)
}

func (r ConsultationRequest) toModel() *Lead {
	return &Lead{
		LeadType:        TypeConsultation,
		FullName:        strings.TrimSpace(r.FullName),
		Email:           normalizeEmail(r.Email),
		Phone:           trimmed(r.Phone),
		Company:         trimmed(r.Company),
		ServiceInterest: trimmed(r.Service),
		ProjectDetails:  trimmed(r.Details),
		Status:          StatusNew,
		Source:          utils.StringOr(strings.TrimSpace(r.Source), DefaultConsultationSource),
	}
}

func (r ContactRequest) toModel() *Lead {
	phone := strings.TrimSpace(r.Phone)
	service := strings.TrimSpace(r.Service)
	message := strings.TrimSpace(r.Message)
	return &Lead{
		LeadType:        TypeContact,
		FullName:        strings.TrimSpace(r.Name),
		Email:           normalizeEmail(r.Email),
		Phone:           &phone,
		Company:         trimmed(r.Company),
		ServiceInterest: &service,
		ProjectDetails:  &message,
		Status:          StatusNew,
		Source:          utils.StringOr(strings.TrimSpace(r.Source), DefaultContactSource),
		Metadata:        r.Metadata,
	}
}
