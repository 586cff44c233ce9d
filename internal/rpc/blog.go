package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/blogfolio/blogfolio/internal/blog"
	"github.com/blogfolio/blogfolio/internal/fetch"
)

//go:generate zenrpc

// BlogService provides RPC methods over the blog query pipeline.
type BlogService struct {
	zenrpc.Service
	fetcher *fetch.Fetcher
}

func NewBlogService(fetcher *fetch.Fetcher) *BlogService {
	return &BlogService{fetcher: fetcher}
}

// List retrieves a page of posts filtered by category and featured flag.
// A page past the end returns an empty list with real totals.
//
//zenrpc:page=1 page number (1-based)
//zenrpc:limit=4 items per page
//zenrpc:category optional category filter, "all" disables it
//zenrpc:featured optional featured filter
//zenrpc:return page envelope with totals
//zenrpc:500 internal server error
func (s *BlogService) List(ctx context.Context, filter PostsFilter) (*PostsResponse, error) {
	params := blog.PostsParams{Featured: filter.Featured}
	if filter.Page != nil {
		params.Page = *filter.Page
	}
	if filter.Limit != nil {
		params.Limit = *filter.Limit
	}
	if filter.Category != nil {
		params.Category = *filter.Category
	}

	resp, err := s.fetcher.Posts(ctx, params)
	if err != nil {
		return nil, err
	}

	envelope := NewPostsResponse(resp)
	return &envelope, nil
}

// ByID retrieves a single post with full content.
//
//zenrpc:id post numeric ID
//zenrpc:return post with full content
//zenrpc:400 id must be positive
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) ByID(ctx context.Context, req PostByIDRequest) (*Post, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	post, err := s.fetcher.PostByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	result := NewPost(*post)
	return &result, nil
}

// Featured retrieves featured posts in store order, truncated to limit.
//
//zenrpc:limit=2 maximum number of posts
//zenrpc:return list of featured posts
//zenrpc:400 limit must be positive
//zenrpc:500 internal server error
func (s *BlogService) Featured(ctx context.Context, req FeaturedRequest) ([]Post, error) {
	limit := 2
	if req.Limit != nil {
		if *req.Limit < 1 {
			return nil, zenrpc.NewStringError(400, "limit must be positive")
		}
		limit = *req.Limit
	}

	posts, err := s.fetcher.Featured(ctx, limit)
	if err != nil {
		return nil, err
	}

	return NewPosts(posts), nil
}

// Categories retrieves "all" followed by the distinct post categories in
// first-seen order.
//
//zenrpc:return list of category names
//zenrpc:500 internal server error
func (s *BlogService) Categories(ctx context.Context) ([]string, error) {
	return s.fetcher.Categories(ctx)
}

// Search matches the query case-insensitively against title, excerpt and
// tags. Queries of up to two characters return an empty list.
//
//zenrpc:query search string
//zenrpc:return list of matching posts
//zenrpc:500 internal server error
func (s *BlogService) Search(ctx context.Context, req SearchRequest) ([]Post, error) {
	posts, err := s.fetcher.Search(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	return NewPosts(posts), nil
}
