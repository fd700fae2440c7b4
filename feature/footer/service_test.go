package footer

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"site-cms/core/database/testdb"
	"site-cms/core/response"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *Service {
	db := testdb.New(t, &Section{}, &Link{}, &ContactInfo{}, &SocialLink{})
	return NewService(db, zap.NewNop())
}

func TestService_ReplaceSectionsWritesLinksUnderNewSections(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	hidden := false

	_, err := svc.ReplaceSections(ctx, []SectionInput{
		{Title: "Old", Links: []LinkInput{{Name: "Gone", Href: "/gone"}}},
	})
	require.NoError(t, err)

	saved, err := svc.ReplaceSections(ctx, []SectionInput{
		{ID: "stale", Title: "Company", Links: []LinkInput{
			{Name: "About", Href: "/about"},
			{Name: "Careers", Href: "/careers", IsActive: &hidden},
		}},
		{Title: "Legal", Links: []LinkInput{{Name: "Privacy", Href: "/privacy"}}},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.NotEqual(t, "stale", saved[0].ID)
	for _, l := range saved[0].Links {
		assert.Equal(t, saved[0].ID, l.FooterSectionID)
	}

	var linkCount int64
	require.NoError(t, svc.db.Model(&Link{}).Count(&linkCount).Error)
	assert.Equal(t, int64(3), linkCount)

	public, err := svc.Sections(ctx, true)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "Company", public[0].Title)
	require.Len(t, public[0].Links, 1)
	assert.Equal(t, "About", public[0].Links[0].Name)

	all, err := svc.Sections(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all[0].Links, 2)
}

func TestService_ReplaceEmptyListClearsIt(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.ReplaceSocialLinks(ctx, []SocialLinkInput{{Name: "LinkedIn", Icon: "linkedin", Href: "https://linkedin.com"}})
	require.NoError(t, err)
	saved, err := svc.ReplaceSocialLinks(ctx, []SocialLinkInput{})
	require.NoError(t, err)
	assert.Empty(t, saved)

	links, err := svc.SocialLinks(ctx, false)
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}

func TestService_GetPublic(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	pos := 5

	_, err := svc.ReplaceSections(ctx, []SectionInput{{Title: "Services", Links: []LinkInput{}}})
	require.NoError(t, err)
	_, err = svc.ReplaceContactInfo(ctx, []ContactInfoInput{
		{Type: "email", Label: "Email", Value: "hello@example.com", Position: &pos},
		{Type: "phone", Label: "Phone", Value: "+1 555 0100"},
	})
	require.NoError(t, err)

	footer, err := svc.GetPublic(ctx)
	require.NoError(t, err)
	assert.Len(t, footer.Sections, 1)
	require.Len(t, footer.ContactInfo, 2)
	assert.Equal(t, "phone", footer.ContactInfo[0].Type)
	assert.Equal(t, 5, footer.ContactInfo[1].Position)
	assert.NotNil(t, footer.SocialLinks)
	assert.Empty(t, footer.SocialLinks)
}

func TestService_GetPublicFailsWhenOneReadFails(t *testing.T) {
	db, mock := testdb.Mock(t)
	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `footer_sections`")).
		WillReturnError(errors.New("connection refused"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `contact_info`")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `social_links`")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := NewService(db, zap.NewNop())
	_, err := svc.GetPublic(context.Background())
	require.Error(t, err)
	assert.Equal(t, response.KindInternal, response.KindOf(err))
	assert.Equal(t, "Failed to fetch footer sections", err.(*response.Error).Message)
}
