package blog

import (
	"context"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/blogfolio/blogfolio/internal/store"
)

// Latency is the simulated request latency band. A zero Latency disables the
// delay entirely, which is what tests want.
type Latency struct {
	Min time.Duration
	Max time.Duration
}

// DefaultLatency mimics a typical API round trip.
var DefaultLatency = Latency{Min: 100 * time.Millisecond, Max: 300 * time.Millisecond}

// Service answers read queries over the content store. All operations are
// pure functions of the store contents aside from the simulated latency; they
// never fail on seed data, but keep the error return so a real backend can be
// substituted without changing callers.
type Service struct {
	store   *store.Store
	latency Latency
}

func NewService(st *store.Store, latency Latency) *Service {
	return &Service{
		store:   st,
		latency: latency,
	}
}

// Posts applies the category filter, then the featured filter, then slices
// out the requested page, preserving store order throughout.
func (s *Service) Posts(ctx context.Context, params PostsParams) (*PostsResponse, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	p := params.Normalized()

	filtered := s.store.ListAll()

	if p.Category != CategoryAll {
		filtered = keep(filtered, func(post Post) bool {
			return post.Category == p.Category
		})
	}

	if p.Featured != nil {
		filtered = keep(filtered, func(post Post) bool {
			return post.Featured == *p.Featured
		})
	}

	totalCount := len(filtered)
	totalPages := int(math.Ceil(float64(totalCount) / float64(p.Limit)))

	start := (p.Page - 1) * p.Limit
	end := start + p.Limit
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	return &PostsResponse{
		Posts:       filtered[start:end],
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: p.Page,
	}, nil
}

// PostByID returns the post with the given id, or nil when no such post
// exists. Absence is a normal outcome, not an error.
func (s *Service) PostByID(ctx context.Context, id int) (*Post, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	for _, post := range s.store.ListAll() {
		if post.ID == id {
			return &post, nil
		}
	}

	return nil, nil
}

// Featured returns featured posts in store order, truncated to limit.
func (s *Service) Featured(ctx context.Context, limit int) ([]Post, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	featured := keep(s.store.ListAll(), func(post Post) bool {
		return post.Featured
	})

	if limit >= 0 && len(featured) > limit {
		featured = featured[:limit]
	}

	return featured, nil
}

// Categories returns "all" followed by the distinct categories present in
// the store, each exactly once, in first-seen order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	categories := []string{CategoryAll}
	seen := make(map[string]bool)

	for _, post := range s.store.ListAll() {
		if !seen[post.Category] {
			seen[post.Category] = true
			categories = append(categories, post.Category)
		}
	}

	return categories, nil
}

// Search matches query case-insensitively as a substring of title, excerpt
// or any tag. The match runs unconditionally; suppressing short queries is
// the caller's responsibility.
func (s *Service) Search(ctx context.Context, query string) ([]Post, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)

	return keep(s.store.ListAll(), func(post Post) bool {
		if strings.Contains(strings.ToLower(post.Title), q) {
			return true
		}
		if strings.Contains(strings.ToLower(post.Excerpt), q) {
			return true
		}
		for _, tag := range post.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	}), nil
}

// sleep simulates network latency, honoring context cancellation.
func (s *Service) sleep(ctx context.Context) error {
	d := s.latency.Min
	if jitter := s.latency.Max - s.latency.Min; jitter > 0 {
		d += rand.N(jitter)
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func keep(posts []Post, match func(Post) bool) []Post {
	result := make([]Post, 0, len(posts))
	for _, p := range posts {
		if match(p) {
			result = append(result, p)
		}
	}
	return result
}
