package hero

import (
	"context"
	"testing"

	"site-cms/core/database"
	"site-cms/core/database/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *Service {
	return NewService(testdb.New(t, &Dashboard{}, &Content{}), zap.NewNop())
}

func TestService_ReplaceDashboardsPositionsByOrder(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	inputs := []DashboardInput{
		{Title: "Payroll", Description: "d", Stats: []DashboardStat{{Label: "Saved", Value: "40%", Color: "primary"}}, Features: []string{"Auto"}},
		{Title: "Talent", Description: "d", Stats: []DashboardStat{}, Features: []string{}},
	}
	_, err := svc.ReplaceDashboards(ctx, inputs)
	require.NoError(t, err)
	_, err = svc.ReplaceDashboards(ctx, inputs)
	require.NoError(t, err)

	hero := svc.GetPublic(ctx)
	require.Len(t, hero.HeroDashboards, 2)
	assert.Equal(t, "Payroll", hero.HeroDashboards[0].Title)
	assert.Equal(t, 1, hero.HeroDashboards[0].Position)
	assert.Equal(t, 2, hero.HeroDashboards[1].Position)
	assert.Equal(t, "40%", hero.HeroDashboards[0].Stats[0].Value)
	assert.Nil(t, hero.HeroContent)
}

func TestService_UpdateContentAppliesDefaults(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	content, err := svc.UpdateContent(ctx, ContentRequest{MainHeading: "Reinvent Your"})
	require.NoError(t, err)
	assert.Equal(t, database.SingletonID, content.ID)
	assert.Equal(t, "Reinvent Your", content.MainHeading)
	assert.Equal(t, ContentDefaults.TrustBadge, content.TrustBadge)
	assert.Equal(t, []string{"No Setup Fees", "24/7 Support", "GDPR Compliant"}, []string(content.TrustPoints))
	assert.Equal(t, "0733769149", content.PhoneNumber)

	content, err = svc.UpdateContent(ctx, ContentRequest{TrustPoints: []string{}})
	require.NoError(t, err)
	assert.Equal(t, ContentDefaults.MainHeading, content.MainHeading)
	assert.Empty(t, content.TrustPoints)

	hero := svc.GetPublic(ctx)
	require.NotNil(t, hero.HeroContent)
	assert.Empty(t, hero.HeroDashboards)

	var count int64
	svc.db.Model(&Content{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
