package pages

import (
	"context"
	"testing"

	"site-cms/core/database/testdb"
	"site-cms/core/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *Service {
	return NewService(testdb.New(t, &Content{}, &CallToAction{}), zap.NewNop())
}

func cta(page, title string) CallToActionInput {
	return CallToActionInput{PageKey: page, Title: title, PrimaryText: "Go", PrimaryLink: "/contact"}
}

func titles(ctas []CallToAction) []string {
	out := make([]string, len(ctas))
	for i, c := range ctas {
		out[i] = c.Title
	}
	return out
}

func TestService_ReplaceCallToActionsLeavesOtherPagesAlone(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.ReplaceCallToActions(ctx, []CallToActionInput{
		cta("payroll", "P1"), cta("recruitment", "R1"), cta("recruitment", "R2"),
	})
	require.NoError(t, err)
	before, err := svc.CallToActions(ctx, "recruitment", true)
	require.NoError(t, err)

	saved, err := svc.ReplaceCallToActions(ctx, []CallToActionInput{cta("payroll", "P2"), cta("payroll", "P3")})
	require.NoError(t, err)
	assert.Len(t, saved, 2)

	payroll, err := svc.CallToActions(ctx, "payroll", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"P2", "P3"}, titles(payroll))
	assert.Equal(t, 1, payroll[0].Position)
	assert.Equal(t, 2, payroll[1].Position)

	after, err := svc.CallToActions(ctx, "recruitment", true)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestService_ReplacePageCallToActionsEmptiesPage(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.ReplaceCallToActions(ctx, []CallToActionInput{
		cta("payroll", "P1"), cta("recruitment", "R1"), cta("recruitment", "R2"),
	})
	require.NoError(t, err)
	before, err := svc.CallToActions(ctx, "recruitment", true)
	require.NoError(t, err)

	saved, err := svc.ReplacePageCallToActions(ctx, "payroll", []CallToActionInput{})
	require.NoError(t, err)
	assert.Empty(t, saved)

	var count int64
	require.NoError(t, svc.db.Model(&CallToAction{}).Where("page_key = ?", "payroll").Count(&count).Error)
	assert.Zero(t, count)

	after, err := svc.CallToActions(ctx, "recruitment", true)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	saved, err = svc.ReplacePageCallToActions(ctx, "payroll", []CallToActionInput{cta("recruitment", "P9")})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "payroll", saved[0].PageKey)
	assert.Equal(t, 1, saved[0].Position)

	_, err = svc.ReplacePageCallToActions(ctx, " ", nil)
	assert.True(t, response.IsKind(err, response.KindValidation))
}

func TestService_CallToActionsPositionsPerPage(t *testing.T) {
	svc := newService(t)
	hidden := false
	draft := cta("about", "Hidden")
	draft.IsActive = &hidden

	saved, err := svc.ReplaceCallToActions(context.Background(), []CallToActionInput{
		cta("about", "A1"), cta("team", "T1"), draft,
	})
	require.NoError(t, err)

	positions := map[string]int{}
	for _, c := range saved {
		positions[c.Title] = c.Position
	}
	assert.Equal(t, map[string]int{"A1": 1, "Hidden": 2, "T1": 1}, positions)

	public, err := svc.CallToActions(context.Background(), "about", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, titles(public))
}

func TestService_UpdateContentUpsertsByPageKey(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	hidden := false
	hero := "Payroll made simple"

	first, err := svc.UpdateContent(ctx, ContentRequest{PageKey: "payroll", Title: "Payroll", HeroTitle: &hero, IsActive: &hidden})
	require.NoError(t, err)

	_, err = svc.GetContent(ctx, "payroll", false)
	assert.True(t, response.IsKind(err, response.KindNotFound))
	assert.Equal(t, "Page content not found for: payroll", err.Error())

	admin, err := svc.GetContent(ctx, "payroll", true)
	require.NoError(t, err)
	assert.Equal(t, "Payroll made simple", *admin.HeroTitle)

	second, err := svc.UpdateContent(ctx, ContentRequest{PageKey: "payroll", Title: "Payroll Services", Metadata: map[string]any{"layout": "wide"}})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Nil(t, second.HeroTitle)
	assert.Equal(t, "wide", second.Metadata["layout"])

	public, err := svc.GetContent(ctx, "payroll", false)
	require.NoError(t, err)
	assert.Equal(t, "Payroll Services", public.Title)
}
