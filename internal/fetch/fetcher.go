package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/blogfolio/blogfolio/internal/blog"
)

// Retry policy: up to maxRetries retries with exponential backoff capped at
// backoffCap between attempts. Client-classified failures never retry.
const (
	maxRetries  = 3
	backoffBase = time.Second
	backoffCap  = 30 * time.Second
)

// Queries shorter than this resolve to an empty result without touching the
// backend.
const minSearchLength = 3

// Backend is the query surface the fetcher mediates. *blog.Service satisfies
// it; tests substitute scripted stubs.
type Backend interface {
	Posts(ctx context.Context, params blog.PostsParams) (*blog.PostsResponse, error)
	PostByID(ctx context.Context, id int) (*blog.Post, error)
	Featured(ctx context.Context, limit int) ([]blog.Post, error)
	Categories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) ([]blog.Post, error)
}

// Options tunes a Fetcher. Zero fields fall back to the wall clock, an
// always-online network and DefaultWindows.
type Options struct {
	Clock   Clock
	Network Network
	Windows *Windows
}

// Fetcher mediates between consumers and the backend, adding request keying,
// deduplication, stale-while-revalidate caching, retry with backoff and
// offline deferral. The cache is owned by the instance; there is no shared
// process-wide state, so tests can run isolated fetchers side by side.
type Fetcher struct {
	backend Backend
	clock   Clock
	network Network
	windows Windows
	log     *slog.Logger

	mu    sync.Mutex
	cache map[string]*entry
}

func NewFetcher(backend Backend, log *slog.Logger, opts Options) *Fetcher {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	clock := opts.Clock
	if clock == nil {
		clock = NewClock()
	}

	network := opts.Network
	if network == nil {
		network = NewMonitor()
	}

	windows := DefaultWindows()
	if opts.Windows != nil {
		windows = *opts.Windows
	}

	return &Fetcher{
		backend: backend,
		clock:   clock,
		network: network,
		windows: windows,
		log:     log,
		cache:   make(map[string]*entry),
	}
}

// Posts resolves a page of posts for params. A fresh cached envelope returns
// synchronously; a stale one returns immediately while a background
// revalidation runs; a miss blocks until the first fetch settles.
func (f *Fetcher) Posts(ctx context.Context, params blog.PostsParams) (*blog.PostsResponse, error) {
	return resolve(ctx, f, postsKey(params), f.windows.Posts,
		func(ctx context.Context) (*blog.PostsResponse, error) {
			return f.backend.Posts(ctx, params)
		})
}

// PostByID resolves a single post. Absence is reported as (nil, nil), the
// backend's not-found convention, and is cached like any other result.
func (f *Fetcher) PostByID(ctx context.Context, id int) (*blog.Post, error) {
	return resolve(ctx, f, postKey(id), f.windows.Post,
		func(ctx context.Context) (*blog.Post, error) {
			return f.backend.PostByID(ctx, id)
		})
}

func (f *Fetcher) Featured(ctx context.Context, limit int) ([]blog.Post, error) {
	return resolve(ctx, f, featuredKey(limit), f.windows.Featured,
		func(ctx context.Context) ([]blog.Post, error) {
			return f.backend.Featured(ctx, limit)
		})
}

func (f *Fetcher) Categories(ctx context.Context) ([]string, error) {
	return resolve(ctx, f, categoriesKey(), f.windows.Categories,
		func(ctx context.Context) ([]string, error) {
			return f.backend.Categories(ctx)
		})
}

// Search resolves a post search. Queries of up to two characters are
// suppressed: they resolve empty without a backend call.
func (f *Fetcher) Search(ctx context.Context, query string) ([]blog.Post, error) {
	if utf8.RuneCountInString(query) < minSearchLength {
		return []blog.Post{}, nil
	}
	return resolve(ctx, f, searchKey(query), f.windows.Search,
		func(ctx context.Context) ([]blog.Post, error) {
			return f.backend.Search(ctx, query)
		})
}

// State snapshots. These never trigger a fetch; they report the cache slot
// as-is so consumers can tell "still loading" from "loaded, empty" from
// "errored".

type State[T any] struct {
	Data    T
	Err     error
	Loading bool
	Stale   bool
}

func (f *Fetcher) PostsState(params blog.PostsParams) State[*blog.PostsResponse] {
	return peek[*blog.PostsResponse](f, postsKey(params))
}

func (f *Fetcher) PostState(id int) State[*blog.Post] {
	return peek[*blog.Post](f, postKey(id))
}

func (f *Fetcher) FeaturedState(limit int) State[[]blog.Post] {
	return peek[[]blog.Post](f, featuredKey(limit))
}

func (f *Fetcher) CategoriesState() State[[]string] {
	return peek[[]string](f, categoriesKey())
}

func (f *Fetcher) SearchState(query string) State[[]blog.Post] {
	return peek[[]blog.Post](f, searchKey(query))
}

// resolve drives one keyed request through the cache. Results only ever land
// in their own key's slot, so a late response for an abandoned key can never
// clobber another key's state.
func resolve[T any](ctx context.Context, f *Fetcher, key string, ttl TTL, call func(context.Context) (T, error)) (T, error) {
	var zero T

	for {
		f.mu.Lock()
		now := f.clock.Now()
		f.sweep(now)

		e := f.cache[key]
		if e == nil {
			e = &entry{ttl: ttl}
			f.cache[key] = e
		}
		e.lastUsed = now

		if e.settled {
			// A failure with no value to fall back on does not outlive its
			// freshness window: the next access retries with a blocking
			// fetch, so a recovered backend is observed directly.
			if e.err != nil && e.value == nil && !e.fresh(now) && e.inflight == nil {
				e.settled = false
			} else {
				value, _ := e.value.(T)
				err := e.err

				if !e.fresh(now) && e.inflight == nil {
					startRevalidate(ctx, f, e, key, call)
				}
				f.mu.Unlock()
				return value, err
			}
		}

		if ch := e.inflight; ch != nil {
			// Someone else is already fetching this key; share their result.
			f.mu.Unlock()
			select {
			case <-ch:
				continue
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}

		ch := make(chan struct{})
		e.inflight = ch
		f.mu.Unlock()

		value, err := doFetch(ctx, f, key, call)
		f.settle(key, ch, value, err)
		return value, err
	}
}

// startRevalidate kicks a background refresh for a stale entry. The refresh
// is detached from the caller's context: a consumer going away must not stop
// a fetch that exists for caching purposes. Caller holds f.mu.
func startRevalidate[T any](ctx context.Context, f *Fetcher, e *entry, key string, call func(context.Context) (T, error)) {
	ch := make(chan struct{})
	e.inflight = ch

	bg := context.WithoutCancel(ctx)
	go func() {
		value, err := doFetch(bg, f, key, call)
		f.settle(key, ch, value, err)
	}()
}

// doFetch runs the backend call with offline deferral and the retry policy.
// Offline waits are not retry attempts.
func doFetch[T any](ctx context.Context, f *Fetcher, key string, call func(context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		if !f.network.Online() {
			f.log.Info("fetch deferred, network offline", "key", key)
			if err := f.network.AwaitOnline(ctx); err != nil {
				return zero, &Error{Kind: KindOffline, Err: err}
			}
		}

		value, err := call(ctx)
		if err == nil {
			return value, nil
		}
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		fe := classify(err)
		if !fe.retryable() || attempt >= maxRetries {
			return zero, fe
		}

		delay := backoffDelay(attempt)
		f.log.Warn("fetch failed, retrying",
			"key", key, "attempt", attempt+1, "delay", delay, "error", err)
		if err := f.clock.Sleep(ctx, delay); err != nil {
			return zero, fe
		}
	}
}

// settle records a fetch outcome in the key's slot and releases waiters.
// Successful values replace the slot value; failures keep the last good
// value so consumers see stale content next to the error. Context
// cancellations don't settle: the slot is returned to its pre-fetch state.
func (f *Fetcher) settle(key string, ch chan struct{}, value any, err error) {
	f.mu.Lock()
	if e := f.cache[key]; e != nil && e.inflight == ch {
		e.inflight = nil

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			if !e.settled {
				delete(f.cache, key)
			}
		} else {
			e.settled = true
			e.err = err
			// Only success refreshes the freshness window. A failed fetch
			// leaves the entry stale, so the next access revalidates instead
			// of serving the cached error until the window runs out.
			if err == nil {
				e.value = value
				e.fetchedAt = f.clock.Now()
			}
		}
	}
	f.mu.Unlock()
	close(ch)
}

func peek[T any](f *Fetcher, key string) State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	e := f.cache[key]
	if e == nil {
		return State[T]{}
	}

	s := State[T]{
		Err:     e.err,
		Loading: !e.settled && e.inflight != nil,
	}
	if e.settled {
		s.Data, _ = e.value.(T)
		s.Stale = !e.fresh(f.clock.Now())
	}
	return s
}

func backoffDelay(attempt int) time.Duration {
	d := backoffBase << attempt
	if d > backoffCap || d <= 0 {
		d = backoffCap
	}
	return d
}

// Request keys. Params are normalized first so equivalent requests share a
// slot.

func postsKey(params blog.PostsParams) string {
	p := params.Normalized()
	featured := "-"
	if p.Featured != nil {
		featured = fmt.Sprintf("%t", *p.Featured)
	}
	return fmt.Sprintf("posts?page=%d&limit=%d&category=%s&featured=%s",
		p.Page, p.Limit, p.Category, featured)
}

func postKey(id int) string {
	return fmt.Sprintf("post/%d", id)
}

func featuredKey(limit int) string {
	return fmt.Sprintf("featured?limit=%d", limit)
}

func categoriesKey() string {
	return "categories"
}

func searchKey(query string) string {
	return "search?q=" + query
}
