package stream

import (
	"context"
	"sync"
)

// Manager holds the active subscription handle for each stream kind.
// Attaching a kind that is already live replaces the old subscription:
// detach first, then attach. That ordering trades a brief delivery gap for
// never having two subscriptions feeding the same list.
type Manager struct {
	mu     sync.Mutex
	active map[Kind]*Handle
}

func NewManager() *Manager {
	return &Manager{
		active: make(map[Kind]*Handle),
	}
}

// Attach starts a subscription for kind, detaching any previous one first.
// start runs on its own goroutine and must return when its context is
// cancelled. The returned handle is already registered.
func (m *Manager) Attach(ctx context.Context, kind Kind, start func(ctx context.Context, h *Handle)) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{kind: kind, cancel: cancel}
	h.alive.Store(true)

	m.mu.Lock()
	if prev, ok := m.active[kind]; ok {
		prev.detach()
	}
	m.active[kind] = h
	m.mu.Unlock()

	go start(ctx, h)
	return h
}

// Detach stops the subscription for kind. Detaching a kind that was never
// attached, or was already detached, is a no-op.
func (m *Manager) Detach(kind Kind) {
	m.mu.Lock()
	h, ok := m.active[kind]
	if ok {
		delete(m.active, kind)
	}
	m.mu.Unlock()

	if ok {
		h.detach()
	}
}

// DetachAll stops every active subscription. Used when a client connection
// goes away.
func (m *Manager) DetachAll() {
	m.mu.Lock()
	handles := make([]*Handle, 0, len(m.active))
	for kind, h := range m.active {
		handles = append(handles, h)
		delete(m.active, kind)
	}
	m.mu.Unlock()

	for _, h := range handles {
		h.detach()
	}
}

// Active reports whether kind currently has a live subscription.
func (m *Manager) Active(kind Kind) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.active[kind]
	return ok
}
