package leads

import (
	"context"
	"errors"

	"site-cms/core/database"
	"site-cms/core/reconcile"
	"site-cms/core/response"
	"site-cms/core/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service stores and manages leads.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new leads service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// SubmitConsultation records a consultation request with status new.
func (s *Service) SubmitConsultation(ctx context.Context, req ConsultationRequest) (*Receipt, error) {
	return s.insert(ctx, req.toModel())
}

// SubmitContact records a contact-form message with status new.
func (s *Service) SubmitContact(ctx context.Context, req ContactRequest) (*Receipt, error) {
	return s.insert(ctx, req.toModel())
}

func (s *Service) insert(ctx context.Context, lead *Lead) (*Receipt, error) {
	if err := s.db.WithContext(ctx).Create(lead).Error; err != nil {
		s.logger.Error("Lead insert failed", zap.String("type", lead.LeadType), zap.Error(err))
		return nil, database.Classify(err, "Failed to submit request")
	}

	s.logger.Info("Lead received",
		zap.String("id", lead.ID),
		zap.String("type", lead.LeadType),
		zap.String("source", lead.Source),
	)
	return &Receipt{ID: lead.ID, SubmittedAt: lead.CreatedAt}, nil
}

// List returns leads matching filters, newest first.
func (s *Service) List(ctx context.Context, filters Filters) ([]Lead, error) {
	q := s.db.WithContext(ctx)
	if filters.LeadType != "" {
		q = q.Where("lead_type = ?", filters.LeadType)
	}
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}

	leads := []Lead{}
	if err := q.Order("created_at DESC").Order("id DESC").Find(&leads).Error; err != nil {
		return nil, database.Classify(err, "Failed to fetch leads")
	}
	return leads, nil
}

// UpdateStatus moves a lead to status, which must be one of Statuses.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	if err := validation.OneOf("status", status, Statuses...); err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Model(&Lead{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return database.Classify(res.Error, "Failed to update status")
	}
	if res.RowsAffected == 0 {
		return response.NotFound("Lead not found")
	}

	s.logger.Info("Lead status changed", zap.String("id", id), zap.String("status", status))
	return nil
}

// Delete removes a lead.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := reconcile.DeleteByID[Lead](s.db.WithContext(ctx), id, "Lead not found")
	return database.Classify(err, "Failed to delete lead")
}

// GetForm returns the consultation form, or FormDefaults before the first save.
func (s *Service) GetForm(ctx context.Context) (*FormConfig, error) {
	var cfg FormConfig
	err := s.db.WithContext(ctx).Where("id = ?", database.SingletonID).Take(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := FormDefaults
		defaults.ID = database.SingletonID
		return &defaults, nil
	}
	if err != nil {
		return nil, database.Classify(err, "Failed to fetch consultation form")
	}
	return &cfg, nil
}

// UpdateForm writes the consultation form singleton.
func (s *Service) UpdateForm(ctx context.Context, req FormRequest) (*FormConfig, error) {
	row := req.toModel()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := reconcile.UpsertByKey(tx, "id", database.SingletonID, row)
		return err
	})
	if err != nil {
		s.logger.Error("Consultation form update failed", zap.Error(err))
		return nil, database.Classify(err, "Failed to update consultation form")
	}
	return s.GetForm(ctx)
}
