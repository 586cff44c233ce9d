package filterstate

import (
	"context"
	"net/url"
	"sync"

	"github.com/blogfolio/blogfolio/internal/blog"
	"github.com/blogfolio/blogfolio/internal/fetch"
)

// Location is the addressable-location collaborator a session synchronizes
// with. The host environment adapts its own mechanism (a browser address
// bar, a TUI state line) behind it; tests use MemoryLocation.
type Location interface {
	Read() url.Values
	Replace(url.Values)
}

// MemoryLocation is an in-process Location.
type MemoryLocation struct {
	mu     sync.Mutex
	values url.Values
}

func NewMemoryLocation() *MemoryLocation {
	return &MemoryLocation{values: url.Values{}}
}

func (l *MemoryLocation) Read() url.Values {
	l.mu.Lock()
	defer l.mu.Unlock()

	copied := url.Values{}
	for k, vs := range l.values {
		copied[k] = append([]string(nil), vs...)
	}
	return copied
}

func (l *MemoryLocation) Replace(values url.Values) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values = values
}

// Pagination is the metadata derived from the latest envelope.
type Pagination struct {
	TotalCount  int
	TotalPages  int
	CurrentPage int
	HasNextPage bool
	HasPrevPage bool
}

// Session owns the live filter state for one view. It restores itself from
// the location on creation, writes every change back, and fetches pages
// through the data-fetching layer for whatever state it currently holds.
// Sessions are single-consumer; they are created per view and discarded with
// it.
type Session struct {
	fetcher  *fetch.Fetcher
	location Location
	pageSize int

	state      State
	totalCount int
	totalPages int
}

func NewSession(ctx context.Context, fetcher *fetch.Fetcher, location Location, pageSize int) *Session {
	if pageSize < 1 {
		pageSize = blog.DefaultLimit
	}
	return &Session{
		fetcher:  fetcher,
		location: location,
		pageSize: pageSize,
		state:    Parse(ctx, location.Read()),
	}
}

func (s *Session) State() State {
	return s.state
}

// ChangeCategory selects a category and resets the page to 1.
func (s *Session) ChangeCategory(category string) {
	s.state = State{Category: category, Page: DefaultPage}.normalized()
	s.sync()
}

// ChangePage moves to page, clamped to [1, totalPages]. Out-of-range
// requests are clamped rather than ignored, so a nonexistent page is never
// requested downstream. Before the first envelope arrives only the lower
// bound applies.
func (s *Session) ChangePage(page int) {
	if page < 1 {
		page = 1
	}
	if s.totalPages > 0 && page > s.totalPages {
		page = s.totalPages
	}
	s.state.Page = page
	s.sync()
}

// Posts fetches the page for the current state and recomputes the derived
// pagination metadata from the envelope.
func (s *Session) Posts(ctx context.Context) (*blog.PostsResponse, error) {
	resp, err := s.fetcher.Posts(ctx, blog.PostsParams{
		Page:     s.state.Page,
		Limit:    s.pageSize,
		Category: s.state.Category,
	})
	if resp != nil {
		s.totalCount = resp.TotalCount
		s.totalPages = resp.TotalPages
	}
	return resp, err
}

// Categories passes through to the data-fetching layer.
func (s *Session) Categories(ctx context.Context) ([]string, error) {
	return s.fetcher.Categories(ctx)
}

// Pagination reports the derived metadata for the current state and the
// latest envelope.
func (s *Session) Pagination() Pagination {
	return Pagination{
		TotalCount:  s.totalCount,
		TotalPages:  s.totalPages,
		CurrentPage: s.state.Page,
		HasNextPage: s.state.Page < s.totalPages,
		HasPrevPage: s.state.Page > 1,
	}
}

// HasFilters reports whether the state differs from the defaults.
func (s *Session) HasFilters() bool {
	return s.state != Default()
}

// ClearFilters resets the state to the defaults, emptying the serialized
// representation.
func (s *Session) ClearFilters() {
	s.state = Default()
	s.sync()
}

func (s *Session) sync() {
	s.location.Replace(s.state.Values())
}
