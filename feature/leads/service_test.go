package leads

import (
	"context"
	"testing"

	"site-cms/core/database"
	"site-cms/core/database/testdb"
	"site-cms/core/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *Service {
	return NewService(testdb.New(t, &Lead{}, &FormConfig{}), zap.NewNop())
}

func TestService_SubmitConsultation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	details := "  Need payroll for 40 staff  "

	receipt, err := svc.SubmitConsultation(ctx, ConsultationRequest{
		FullName: " Jane Doe ",
		Email:    "Jane@Example.COM",
		Details:  &details,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
	assert.False(t, receipt.SubmittedAt.IsZero())

	var lead Lead
	require.NoError(t, svc.db.Where("id = ?", receipt.ID).Take(&lead).Error)
	assert.Equal(t, TypeConsultation, lead.LeadType)
	assert.Equal(t, StatusNew, lead.Status)
	assert.Equal(t, "Jane Doe", lead.FullName)
	assert.Equal(t, "jane@example.com", lead.Email)
	assert.Equal(t, DefaultConsultationSource, lead.Source)
	assert.Equal(t, "Need payroll for 40 staff", *lead.ProjectDetails)
	assert.Nil(t, lead.Phone)
}

func TestService_SubmitContact(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	receipt, err := svc.SubmitContact(ctx, ContactRequest{
		Name: "Sam", Email: " SAM@corp.io ", Phone: "555", Service: "Payroll", Message: "Call me",
	})
	require.NoError(t, err)

	leads, err := svc.List(ctx, Filters{LeadType: TypeContact})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, receipt.ID, leads[0].ID)
	assert.Equal(t, "sam@corp.io", leads[0].Email)
	assert.Equal(t, DefaultContactSource, leads[0].Source)
	assert.Equal(t, "Payroll", *leads[0].ServiceInterest)
	assert.Equal(t, "Call me", *leads[0].ProjectDetails)
}

func TestService_UpdateStatus(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	receipt, err := svc.SubmitConsultation(ctx, ConsultationRequest{FullName: "Al", Email: "al@x.io"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, receipt.ID, StatusInProgress))
	inProgress, err := svc.List(ctx, Filters{Status: StatusInProgress})
	require.NoError(t, err)
	assert.Len(t, inProgress, 1)

	err = svc.UpdateStatus(ctx, receipt.ID, "archived")
	assert.True(t, response.IsKind(err, response.KindValidation))
	assert.Equal(t, "status must be one of: new, in_progress, closed", err.Error())

	still, err := svc.List(ctx, Filters{Status: StatusInProgress})
	require.NoError(t, err)
	assert.Len(t, still, 1)

	err = svc.UpdateStatus(ctx, "missing", StatusClosed)
	assert.True(t, response.IsKind(err, response.KindNotFound))
}

func TestService_Delete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	receipt, err := svc.SubmitConsultation(ctx, ConsultationRequest{FullName: "Al", Email: "al@x.io"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, receipt.ID))
	assert.True(t, response.IsKind(svc.Delete(ctx, receipt.ID), response.KindNotFound))
}

func TestService_FormConfig(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	cfg, err := svc.GetForm(ctx)
	require.NoError(t, err)
	assert.Equal(t, FormDefaults.FormTitle, cfg.FormTitle)
	assert.Equal(t, database.SingletonID, cfg.ID)

	saved, err := svc.UpdateForm(ctx, FormRequest{
		FormTitle: "Book a call",
		Fields:    []FormField{{Name: "email", Label: "Email", Type: "email", Required: true}},
		Services:  []ServiceOption{{Value: "payroll", Label: "Payroll"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Book a call", saved.FormTitle)
	assert.Equal(t, FormDefaults.SubmitText, saved.SubmitText)
	require.Len(t, saved.Fields, 1)
	assert.Equal(t, 1, saved.Fields[0].Position)
	assert.Len(t, saved.Services, 1)

	_, err = svc.UpdateForm(ctx, FormRequest{SubmitText: "Send"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, svc.db.Model(&FormConfig{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	cfg, err = svc.GetForm(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Send", cfg.SubmitText)
	assert.Equal(t, FormDefaults.FormTitle, cfg.FormTitle)
	assert.Len(t, cfg.Fields, len(FormDefaults.Fields))
}
