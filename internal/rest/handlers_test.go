package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogfolio/blogfolio/internal/blog"
	"github.com/blogfolio/blogfolio/internal/fetch"
	"github.com/blogfolio/blogfolio/internal/store"
)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

func newTestHandler() *BlogHandler {
	svc := blog.NewService(store.NewSeeded(), blog.Latency{})
	fetcher := fetch.NewFetcher(svc, noOpLogger(), fetch.Options{})
	return NewBlogHandler(fetcher, noOpLogger())
}

func doRequest(t *testing.T, h *BlogHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := h.RegisterRoutes()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func TestBlogHandler_Posts(t *testing.T) {
	h := newTestHandler()

	t.Run("FirstPageDefaults", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/posts")
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[PostsResponse](t, rec)
		assert.Equal(t, 6, resp.TotalCount)
		assert.Equal(t, 2, resp.TotalPages)
		assert.Equal(t, 1, resp.CurrentPage)
		assert.Len(t, resp.Posts, 4)
	})

	t.Run("SecondPage", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/posts?page=2")
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[PostsResponse](t, rec)
		assert.Len(t, resp.Posts, 2)
		assert.Equal(t, 2, resp.CurrentPage)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/posts?category=Design")
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[PostsResponse](t, rec)
		assert.Equal(t, 1, resp.TotalCount)
		require.Len(t, resp.Posts, 1)
		assert.Equal(t, "The Future of Accessible Design", resp.Posts[0].Title)
	})

	t.Run("FeaturedFilter", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/posts?featured=true")
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[PostsResponse](t, rec)
		assert.Equal(t, 2, resp.TotalCount)
		for _, p := range resp.Posts {
			assert.True(t, p.Featured)
		}
	})

	t.Run("PagePastEndIsEmptyNotError", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/posts?page=9")
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[PostsResponse](t, rec)
		assert.Empty(t, resp.Posts)
		assert.Equal(t, 6, resp.TotalCount)
		assert.Equal(t, 2, resp.TotalPages)
	})

	t.Run("MalformedPageFallsBackToFirst", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/posts?page=banana&category=Design")
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[PostsResponse](t, rec)
		assert.Equal(t, 1, resp.CurrentPage)
		assert.Equal(t, 1, resp.TotalCount, "category must survive the malformed page")
	})

	t.Run("NonPositiveLimitRejected", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/posts?limit=0")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBlogHandler_PostByID(t *testing.T) {
	h := newTestHandler()

	t.Run("Found", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/posts/2")
		require.Equal(t, http.StatusOK, rec.Code)

		post := decode[Post](t, rec)
		assert.Equal(t, 2, post.ID)
		assert.Equal(t, "The Future of Accessible Design", post.Title)
		assert.Equal(t, "7 min read", post.ReadTime)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/posts/999")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		for _, target := range []string{"/api/v1/posts/abc", "/api/v1/posts/0", "/api/v1/posts/-1"} {
			rec := doRequest(t, h, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
		}
	})
}

func TestBlogHandler_Featured(t *testing.T) {
	h := newTestHandler()

	t.Run("DefaultLimit", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/featured")
		require.Equal(t, http.StatusOK, rec.Code)

		posts := decode[[]Post](t, rec)
		require.Len(t, posts, 2)
		assert.Equal(t, 1, posts[0].ID)
		assert.Equal(t, 2, posts[1].ID)
	})

	t.Run("Truncated", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/featured?limit=1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]Post](t, rec), 1)
	})

	t.Run("InvalidLimit", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/featured?limit=zero")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBlogHandler_Categories(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(t, h, "/api/v1/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	categories := decode[[]string](t, rec)
	assert.Equal(t, []string{"all", "AI/ML", "Design", "Development", "Data Science"}, categories)
}

func TestBlogHandler_Search(t *testing.T) {
	h := newTestHandler()

	t.Run("MatchesSubstring", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/search?q=accessib")
		require.Equal(t, http.StatusOK, rec.Code)

		posts := decode[[]Post](t, rec)
		require.Len(t, posts, 1)
		assert.Equal(t, "The Future of Accessible Design", posts[0].Title)
	})

	t.Run("ShortQueryIsEmptyList", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/search?q=ab")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[[]Post](t, rec))
	})
}

// failingBackend simulates a backend that is permanently down.
type failingBackend struct{}

func (failingBackend) Posts(ctx context.Context, params blog.PostsParams) (*blog.PostsResponse, error) {
	return nil, fetch.NewStatusError(500, errors.New("down"))
}
func (failingBackend) PostByID(ctx context.Context, id int) (*blog.Post, error) {
	return nil, fetch.NewStatusError(404, errors.New("missing"))
}
func (failingBackend) Featured(ctx context.Context, limit int) ([]blog.Post, error) {
	return nil, fetch.NewStatusError(500, errors.New("down"))
}
func (failingBackend) Categories(ctx context.Context) ([]string, error) {
	return nil, fetch.NewStatusError(500, errors.New("down"))
}
func (failingBackend) Search(ctx context.Context, query string) ([]blog.Post, error) {
	return nil, fetch.NewStatusError(500, errors.New("down"))
}

// instantClock skips retry backoff so the failure path settles immediately.
type instantClock struct{}

func (instantClock) Now() time.Time { return time.Now() }
func (instantClock) Sleep(ctx context.Context, d time.Duration) error {
	return ctx.Err()
}

func TestBlogHandler_ErrorMapping(t *testing.T) {
	fetcher := fetch.NewFetcher(failingBackend{}, noOpLogger(), fetch.Options{Clock: instantClock{}})
	h := NewBlogHandler(fetcher, noOpLogger())

	t.Run("ServerErrorIs500", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/categories")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decode[map[string]string](t, rec)
		assert.Equal(t, "internal error", body["error"])
	})

	t.Run("ClassifiedNotFoundIs404", func(t *testing.T) {
		rec := doRequest(t, h, "/api/v1/posts/5")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
