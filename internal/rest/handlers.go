package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/blogfolio/blogfolio/internal/blog"
	"github.com/blogfolio/blogfolio/internal/fetch"
	"github.com/blogfolio/blogfolio/internal/filterstate"
)

const defaultFeaturedLimit = 2

type postsRequest struct {
	Limit    *int  `query:"limit"`
	Featured *bool `query:"featured"`
}

type BlogHandler struct {
	fetcher *fetch.Fetcher
	log     *slog.Logger
}

func NewBlogHandler(fetcher *fetch.Fetcher, log *slog.Logger) *BlogHandler {
	return &BlogHandler{
		fetcher: fetcher,
		log:     log,
	}
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// fetchError maps a classified fetch failure onto an HTTP response.
func (h *BlogHandler) fetchError(c echo.Context, err error) error {
	switch fetch.KindOf(err) {
	case fetch.KindNotFound:
		return h.handleError(c, err, http.StatusNotFound, "not found")
	case fetch.KindClient:
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	case fetch.KindOffline:
		return h.handleError(c, err, http.StatusServiceUnavailable, "temporarily unavailable")
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}

// Posts handles GET /api/v1/posts
// @Summary Get posts
// @Description Retrieves a page of posts filtered by category and featured flag. A page past the end returns an empty list with real totals.
// @Tags posts
// @Produce json
// @Param category query string false "Category filter (default: all)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 4)"
// @Param featured query bool false "Filter by featured flag"
// @Success 200 {object} rest.PostsResponse
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *BlogHandler) Posts(c echo.Context) error {
	var req postsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	// category/page arrive as the serialized filter representation; a
	// malformed page falls back to 1 rather than failing the request.
	state := filterstate.Parse(c.Request().Context(), c.QueryParams())

	params := blog.PostsParams{
		Page:     state.Page,
		Category: state.Category,
		Featured: req.Featured,
	}
	if req.Limit != nil {
		if *req.Limit < 1 {
			return h.handleError(c, nil, http.StatusBadRequest, "limit must be positive")
		}
		params.Limit = *req.Limit
	}

	resp, err := h.fetcher.Posts(c.Request().Context(), params)
	if err != nil {
		return h.fetchError(c, err)
	}

	return c.JSON(http.StatusOK, NewPostsResponse(resp))
}

// PostByID handles GET /api/v1/posts/:id
// @Summary Get post by ID
// @Description Retrieves a single post with full content
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.Post
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/posts/{id} [get]
func (h *BlogHandler) PostByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	post, err := h.fetcher.PostByID(c.Request().Context(), id)
	if err != nil {
		return h.fetchError(c, err)
	}
	if post == nil {
		return h.handleError(c, nil, http.StatusNotFound, "post not found")
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// Featured handles GET /api/v1/featured
// @Summary Get featured posts
// @Description Retrieves featured posts in store order, truncated to limit
// @Tags posts
// @Produce json
// @Param limit query int false "Maximum number of posts (default: 2)"
// @Success 200 {array} rest.Post
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/featured [get]
func (h *BlogHandler) Featured(c echo.Context) error {
	limit := defaultFeaturedLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return h.handleError(c, err, http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	posts, err := h.fetcher.Featured(c.Request().Context(), limit)
	if err != nil {
		return h.fetchError(c, err)
	}

	return c.JSON(http.StatusOK, Map(posts, NewPost))
}

// Categories handles GET /api/v1/categories
// @Summary Get categories
// @Description Retrieves "all" followed by the distinct post categories in first-seen order
// @Tags categories
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *BlogHandler) Categories(c echo.Context) error {
	categories, err := h.fetcher.Categories(c.Request().Context())
	if err != nil {
		return h.fetchError(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}

// Search handles GET /api/v1/search
// @Summary Search posts
// @Description Case-insensitive substring search over title, excerpt and tags. Queries of up to two characters return an empty list.
// @Tags posts
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} rest.Post
// @Failure 500 {object} map[string]string
// @Router /api/v1/search [get]
func (h *BlogHandler) Search(c echo.Context) error {
	posts, err := h.fetcher.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return h.fetchError(c, err)
	}

	return c.JSON(http.StatusOK, Map(posts, NewPost))
}
