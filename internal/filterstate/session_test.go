package filterstate

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogfolio/blogfolio/internal/blog"
	"github.com/blogfolio/blogfolio/internal/fetch"
	"github.com/blogfolio/blogfolio/internal/store"
)

func newTestSession(t *testing.T, location Location) *Session {
	t.Helper()
	svc := blog.NewService(store.NewSeeded(), blog.Latency{})
	fetcher := fetch.NewFetcher(svc, nil, fetch.Options{})
	return NewSession(context.Background(), fetcher, location, 4)
}

func TestSession_RestoresFromLocation(t *testing.T) {
	location := NewMemoryLocation()
	location.Replace(url.Values{"category": {"Development"}, "page": {"2"}})

	s := newTestSession(t, location)
	assert.Equal(t, State{Category: "Development", Page: 2}, s.State())
}

func TestSession_ChangeCategoryResetsPage(t *testing.T) {
	location := NewMemoryLocation()
	s := newTestSession(t, location)

	s.ChangePage(2)
	require.Equal(t, 2, s.State().Page)

	s.ChangeCategory("Design")

	assert.Equal(t, State{Category: "Design", Page: 1}, s.State())
	assert.Equal(t, url.Values{"category": {"Design"}}, location.Read(),
		"page key must disappear when back at default")
}

func TestSession_ChangePageClamps(t *testing.T) {
	location := NewMemoryLocation()
	s := newTestSession(t, location)

	// 6 posts at page size 4: two pages.
	_, err := s.Posts(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, s.Pagination().TotalPages)

	s.ChangePage(99)
	assert.Equal(t, 2, s.State().Page, "past the end clamps to the last page")

	s.ChangePage(0)
	assert.Equal(t, 1, s.State().Page)

	s.ChangePage(-3)
	assert.Equal(t, 1, s.State().Page)
}

func TestSession_DerivedPagination(t *testing.T) {
	location := NewMemoryLocation()
	s := newTestSession(t, location)
	ctx := context.Background()

	resp, err := s.Posts(ctx)
	require.NoError(t, err)
	assert.Len(t, resp.Posts, 4)

	p := s.Pagination()
	assert.Equal(t, 6, p.TotalCount)
	assert.Equal(t, 2, p.TotalPages)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)

	s.ChangePage(2)
	resp, err = s.Posts(ctx)
	require.NoError(t, err)
	assert.Len(t, resp.Posts, 2)

	p = s.Pagination()
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
}

func TestSession_LocationSync(t *testing.T) {
	location := NewMemoryLocation()
	s := newTestSession(t, location)

	s.ChangeCategory("AI/ML")
	s.ChangePage(2)
	assert.Equal(t, url.Values{"category": {"AI/ML"}, "page": {"2"}}, location.Read())

	s.ClearFilters()
	assert.Empty(t, location.Read(), "default state keeps the representation minimal")
	assert.False(t, s.HasFilters())
}

func TestSession_CategoryChangeFetchesNewKey(t *testing.T) {
	location := NewMemoryLocation()
	s := newTestSession(t, location)
	ctx := context.Background()

	resp, err := s.Posts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, resp.TotalCount)

	s.ChangeCategory("Design")
	resp, err = s.Posts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, 1, s.Pagination().TotalPages)
}
