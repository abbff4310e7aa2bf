package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheelstreet/internal/database"
	"wheelstreet/internal/domain"
	"wheelstreet/internal/pkg/contentcache"
	"wheelstreet/internal/repository"
)

func newTestService(t *testing.T) (*Service, *repository.SectionRepository) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	repo := repository.NewSectionRepository(db)
	return NewService(repo, contentcache.New(time.Minute)), repo
}

func seedSections(t *testing.T, svc *Service, types ...string) []domain.PageSection {
	t.Helper()

	var out []domain.PageSection
	for _, typ := range types {
		s, err := svc.CreateSection(context.Background(), &CreateSectionRequest{
			SectionType: typ,
			Title:       "Title " + typ,
		})
		require.NoError(t, err)
		out = append(out, *s)
	}
	return out
}

func TestPublicSections_EmptyStoreServesFallbackTabs(t *testing.T) {
	svc, _ := newTestService(t)

	sections := svc.PublicSections(context.Background())

	var tabIDs []string
	for _, s := range sections {
		if s.SectionType == "services" {
			for _, tab := range s.Tabs {
				tabIDs = append(tabIDs, tab.TabID)
			}
		}
	}
	assert.Equal(t, []string{"acquisition", "financing", "insurance", "ev"}, tabIDs)
}

func TestCreateSection_OrderDefaultsToMaxPlusOne(t *testing.T) {
	svc, _ := newTestService(t)

	created := seedSections(t, svc, "hero", "services", "about")

	assert.Equal(t, 1, created[0].SortOrder)
	assert.Equal(t, 2, created[1].SortOrder)
	assert.Equal(t, 3, created[2].SortOrder)
}

func TestCreateSection_DuplicateTypeRejected(t *testing.T) {
	svc, _ := newTestService(t)
	seedSections(t, svc, "hero")

	_, err := svc.CreateSection(context.Background(), &CreateSectionRequest{
		SectionType: "hero",
		Title:       "Another hero",
	})

	assert.ErrorIs(t, err, ErrSectionTypeTaken)
}

func TestMoveSection_SwapTwiceRestoresOrder(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedSections(t, svc, "hero", "services", "about")

	ctx := context.Background()
	require.NoError(t, svc.MoveSection(ctx, created[1].ID, "up"))

	sections, err := svc.ListSections(ctx)
	require.NoError(t, err)
	assert.Equal(t, "services", sections[0].SectionType)
	assert.Equal(t, "hero", sections[1].SectionType)

	require.NoError(t, svc.MoveSection(ctx, created[1].ID, "down"))

	sections, err = svc.ListSections(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hero", sections[0].SectionType)
	assert.Equal(t, "services", sections[1].SectionType)
	assert.Equal(t, "about", sections[2].SectionType)
}

func TestMoveSection_AtEdgeIsNoop(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedSections(t, svc, "hero", "services")

	ctx := context.Background()
	require.NoError(t, svc.MoveSection(ctx, created[0].ID, "up"))

	sections, err := svc.ListSections(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hero", sections[0].SectionType)
}

func TestDeleteSection_LastOneRejected(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedSections(t, svc, "hero")

	err := svc.DeleteSection(context.Background(), created[0].ID)

	assert.ErrorIs(t, err, ErrLastSection)
}

func TestDeleteSection_AllowedWithTwoRemaining(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedSections(t, svc, "hero", "services")

	ctx := context.Background()
	require.NoError(t, svc.DeleteSection(ctx, created[1].ID))

	sections, err := svc.ListSections(ctx)
	require.NoError(t, err)
	assert.Len(t, sections, 1)
}

func TestMutationInvalidatesPublicCache(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedSections(t, svc, "hero", "services")

	ctx := context.Background()

	// Prime the cache
	first := svc.PublicSections(ctx)
	require.Len(t, first, 2)

	_, err := svc.UpdateSection(ctx, created[0].ID, &UpdateSectionRequest{
		Title:  "Fresh title",
		Active: true,
	})
	require.NoError(t, err)

	second := svc.PublicSections(ctx)
	assert.Equal(t, "Fresh title", second[0].Title)
}

func TestCreateTab_DuplicateTabIDWithinSection(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedSections(t, svc, "services")

	ctx := context.Background()
	_, err := svc.CreateTab(ctx, created[0].ID, &CreateTabRequest{TabID: "financing", Title: "Financing"})
	require.NoError(t, err)

	_, err = svc.CreateTab(ctx, created[0].ID, &CreateTabRequest{TabID: "financing", Title: "Financing again"})
	assert.ErrorIs(t, err, ErrTabIDTaken)
}

func TestMoveTab_SwapAdjacent(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedSections(t, svc, "services")

	ctx := context.Background()
	a, err := svc.CreateTab(ctx, created[0].ID, &CreateTabRequest{TabID: "acquisition", Title: "Acquisition"})
	require.NoError(t, err)
	_, err = svc.CreateTab(ctx, created[0].ID, &CreateTabRequest{TabID: "financing", Title: "Financing"})
	require.NoError(t, err)

	require.NoError(t, svc.MoveTab(ctx, a.ID, "down"))

	tabs, err := svc.ListTabs(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "financing", tabs[0].TabID)
	assert.Equal(t, "acquisition", tabs[1].TabID)
}

func TestInactiveSectionHiddenButRetained(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedSections(t, svc, "hero", "services")

	ctx := context.Background()
	_, err := svc.UpdateSection(ctx, created[1].ID, &UpdateSectionRequest{
		Title:  created[1].Title,
		Active: false,
	})
	require.NoError(t, err)

	public := svc.PublicSections(ctx)
	assert.Len(t, public, 1)

	all, err := svc.ListSections(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
