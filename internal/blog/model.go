package blog

import "github.com/blogfolio/blogfolio/internal/store"

// Post is the content record served by the query service.
type Post = store.Post

// CategoryAll is the pseudo-category that disables category filtering.
const CategoryAll = "all"

// Defaults applied by Posts when the corresponding param is zero.
const (
	DefaultPage  = 1
	DefaultLimit = 4
)

// PostsParams is an immutable filter request for a page of posts.
type PostsParams struct {
	Page     int
	Limit    int
	Category string
	Featured *bool
}

// Normalized fills in unset page/limit/category so equivalent requests
// compare (and cache-key) equal.
func (p PostsParams) Normalized() PostsParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Category == "" {
		p.Category = CategoryAll
	}
	return p
}

// PostsResponse is the envelope returned by paginated queries. TotalCount and
// TotalPages describe the filtered set before pagination, so a page past the
// end comes back with empty Posts but real totals.
type PostsResponse struct {
	Posts       []Post
	TotalCount  int
	TotalPages  int
	CurrentPage int
}

// HasNextPage reports whether a page follows CurrentPage.
func (r *PostsResponse) HasNextPage() bool {
	return r.CurrentPage < r.TotalPages
}

// HasPrevPage reports whether a page precedes CurrentPage.
func (r *PostsResponse) HasPrevPage() bool {
	return r.CurrentPage > 1
}
