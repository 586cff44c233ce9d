package fetch

import (
	"context"
	"sync"
)

// Network reports host connectivity. The fetcher only issues requests while
// online; offline requests wait for connectivity instead of failing.
type Network interface {
	Online() bool
	// AwaitOnline blocks until the network is online or ctx is done.
	AwaitOnline(ctx context.Context) error
}

// Monitor is a switchable Network implementation. The host environment (or a
// test) flips it with SetOnline; waiters blocked in AwaitOnline resume when
// connectivity returns.
type Monitor struct {
	mu     sync.Mutex
	online bool
	ready  chan struct{}
}

// NewMonitor returns a monitor that starts online.
func NewMonitor() *Monitor {
	m := &Monitor{online: true}
	return m
}

func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if online == m.online {
		return
	}
	m.online = online

	if online && m.ready != nil {
		close(m.ready)
		m.ready = nil
	}
}

func (m *Monitor) AwaitOnline(ctx context.Context) error {
	m.mu.Lock()
	if m.online {
		m.mu.Unlock()
		return nil
	}
	if m.ready == nil {
		m.ready = make(chan struct{})
	}
	ready := m.ready
	m.mu.Unlock()

	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
