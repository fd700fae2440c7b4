package services

import (
	"context"
	"testing"

	"site-cms/core/database/testdb"
	"site-cms/core/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func offering(slug string, category *string) OfferingInput {
	return OfferingInput{
		Title:       slug,
		Slug:        slug,
		Description: "About " + slug,
		Icon:        "Users",
		Color:       "blue",
		Category:    category,
		Features:    []string{"Fast"},
	}
}

func seeded(t *testing.T) *Service {
	t.Helper()
	svc := NewService(testdb.New(t, &Offering{}), zap.NewNop())

	payroll := offering("payroll", strPtr("Operations"))
	payroll.IsFeatured = boolPtr(true)
	recruitment := offering("recruitment", strPtr("Talent"))
	recruitment.IsPopular = boolPtr(true)
	recruitment.OnQuote = boolPtr(false)
	training := offering("training", strPtr("Talent"))
	draft := offering("draft", strPtr("Hidden"))
	draft.IsActive = boolPtr(false)
	blank := offering("consulting", strPtr("  "))

	_, err := svc.Replace(context.Background(), []OfferingInput{payroll, recruitment, training, draft, blank})
	require.NoError(t, err)
	return svc
}

func slugs(list []Offering) []string {
	out := make([]string, len(list))
	for i, o := range list {
		out[i] = o.Slug
	}
	return out
}

func TestService_ReplaceAppliesDefaults(t *testing.T) {
	svc := seeded(t)

	got, err := svc.GetBySlug(context.Background(), "payroll")
	require.NoError(t, err)
	assert.Equal(t, DefaultButtonText, got.ButtonText)
	assert.True(t, got.OnQuote)
	assert.False(t, got.HasProcess)
	assert.Equal(t, 1, got.Position)
	assert.JSONEq(t, `[]`, string(got.ProcessSteps))
	assert.Empty(t, got.Benefits)
}

func TestService_ListFilters(t *testing.T) {
	svc := seeded(t)
	ctx := context.Background()

	all, err := svc.List(ctx, Filters{})
	require.NoError(t, err)
	assert.Equal(t, []string{"payroll", "recruitment", "training", "consulting"}, slugs(all))

	talent, err := svc.List(ctx, Filters{Category: "Talent"})
	require.NoError(t, err)
	assert.Equal(t, []string{"recruitment", "training"}, slugs(talent))

	featured, err := svc.List(ctx, Filters{Featured: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, []string{"payroll"}, slugs(featured))

	notQuoted, err := svc.List(ctx, Filters{OnQuote: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, []string{"recruitment"}, slugs(notQuoted))

	everything, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, everything, 5)
}

func TestService_CategoriesAndQuoteOptions(t *testing.T) {
	svc := seeded(t)
	ctx := context.Background()

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Operations", "Talent"}, cats)

	opts, err := svc.QuoteOptions(ctx)
	require.NoError(t, err)
	require.Len(t, opts, 3)
	assert.Equal(t, "payroll", opts[0].Slug)
	assert.NotEmpty(t, opts[0].ID)
}

func TestService_GetBySlugHidesInactive(t *testing.T) {
	svc := seeded(t)

	_, err := svc.GetBySlug(context.Background(), "draft")
	require.Error(t, err)
	assert.True(t, response.IsKind(err, response.KindNotFound))
	assert.Equal(t, "Service not found: draft", err.Error())
}

func TestService_ReplaceDuplicateSlugKeepsCatalogue(t *testing.T) {
	svc := seeded(t)

	_, err := svc.Replace(context.Background(), []OfferingInput{offering("dup", nil), offering("dup", nil)})
	require.Error(t, err)
	assert.True(t, response.IsKind(err, response.KindConflict))

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestService_Delete(t *testing.T) {
	svc := seeded(t)
	got, err := svc.GetBySlug(context.Background(), "payroll")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), got.ID))
	assert.True(t, response.IsKind(svc.Delete(context.Background(), got.ID), response.KindNotFound))
}
