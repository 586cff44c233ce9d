package fetch

import "time"

// TTL is a cache entry lifetime. Fresh is the staleness window: within it a
// cached value is served as-is, past it the value is still served but a
// background revalidation is triggered. GC is the retention window measured
// from last use; zero means twice the freshness window.
type TTL struct {
	Fresh time.Duration
	GC    time.Duration
}

func (t TTL) retention() time.Duration {
	if t.GC > 0 {
		return t.GC
	}
	return 2 * t.Fresh
}

// Windows holds the per-operation cache lifetimes.
type Windows struct {
	Posts      TTL
	Post       TTL
	Featured   TTL
	Categories TTL
	Search     TTL
}

// DefaultWindows mirrors the reference client behavior: post lists stay
// fresh for 5 minutes and are retained for 10, single posts for 10, featured
// for 15, categories for 30 and search results for 2.
func DefaultWindows() Windows {
	return Windows{
		Posts:      TTL{Fresh: 5 * time.Minute, GC: 10 * time.Minute},
		Post:       TTL{Fresh: 10 * time.Minute},
		Featured:   TTL{Fresh: 15 * time.Minute},
		Categories: TTL{Fresh: 30 * time.Minute},
		Search:     TTL{Fresh: 2 * time.Minute},
	}
}

// entry is one cache slot. value holds the last successful result and only
// ever changes under the fetcher mutex; err is the outcome of the most
// recent settled fetch. A non-nil inflight channel marks a running fetch,
// and is closed when it settles.
type entry struct {
	value     any
	err       error
	settled   bool
	fetchedAt time.Time
	lastUsed  time.Time
	ttl       TTL
	inflight  chan struct{}
}

func (e *entry) fresh(now time.Time) bool {
	return now.Sub(e.fetchedAt) < e.ttl.Fresh
}

// sweep lazily evicts entries unused past their retention window. Runs under
// the fetcher mutex on every cache access.
func (f *Fetcher) sweep(now time.Time) {
	for k, e := range f.cache {
		if e.inflight == nil && now.Sub(e.lastUsed) > e.ttl.retention() {
			delete(f.cache, k)
		}
	}
}
