package rpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/blogfolio/blogfolio/internal/blog"
	"github.com/blogfolio/blogfolio/internal/fetch"
	"github.com/blogfolio/blogfolio/internal/store"
)

func newTestService(t *testing.T) *BlogService {
	t.Helper()
	svc := blog.NewService(store.NewSeeded(), blog.Latency{})
	fetcher := fetch.NewFetcher(svc, nil, fetch.Options{})
	return NewBlogService(fetcher)
}

func requireRPCError(t *testing.T, err error, code int) {
	t.Helper()
	var ze *zenrpc.Error
	require.ErrorAs(t, err, &ze)
	assert.Equal(t, code, ze.Code)
}

func TestBlogService_List(t *testing.T) {
	s := newTestService(t)

	resp, err := s.List(context.Background(), PostsFilter{})
	require.NoError(t, err)
	assert.Len(t, resp.Posts, 4)
	assert.Equal(t, 6, resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, 1, resp.CurrentPage)
}

func TestBlogService_ByID(t *testing.T) {
	s := newTestService(t)

	t.Run("Found", func(t *testing.T) {
		post, err := s.ByID(context.Background(), PostByIDRequest{ID: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, post.ID)
		assert.NotEmpty(t, post.Content)
	})

	t.Run("InvalidID", func(t *testing.T) {
		_, err := s.ByID(context.Background(), PostByIDRequest{ID: 0})
		requireRPCError(t, err, 400)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := s.ByID(context.Background(), PostByIDRequest{ID: 99})
		requireRPCError(t, err, 404)
	})
}

func TestBlogService_Featured(t *testing.T) {
	s := newTestService(t)

	t.Run("DefaultLimit", func(t *testing.T) {
		posts, err := s.Featured(context.Background(), FeaturedRequest{})
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("Truncates", func(t *testing.T) {
		one := 1
		posts, err := s.Featured(context.Background(), FeaturedRequest{Limit: &one})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, 1, posts[0].ID)
	})

	t.Run("NonPositiveLimit", func(t *testing.T) {
		for _, limit := range []int{0, -1} {
			_, err := s.Featured(context.Background(), FeaturedRequest{Limit: &limit})
			requireRPCError(t, err, 400)
		}
	})
}

func TestBlogService_Categories(t *testing.T) {
	s := newTestService(t)

	categories, err := s.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"all", "AI/ML", "Design", "Development", "Data Science"}, categories)
}

func TestBlogService_Search(t *testing.T) {
	s := newTestService(t)

	t.Run("ShortQueryIsEmpty", func(t *testing.T) {
		posts, err := s.Search(context.Background(), SearchRequest{Query: "ab"})
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("Matches", func(t *testing.T) {
		posts, err := s.Search(context.Background(), SearchRequest{Query: "mlops"})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, 6, posts[0].ID)
	})
}
