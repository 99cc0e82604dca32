package stream

import (
	"sync"
)

// Reducer owns one local list and is its only writer. Every snapshot is
// authoritative and total for its query: Apply swaps the whole list, in the
// order the snapshot came in. There is no incremental patching, so readers
// observe either the previous complete list or the new one, never a mix.
type Reducer[T any] struct {
	mu      sync.RWMutex
	items   []T
	subs    map[int]chan []T
	nextSub int
}

func NewReducer[T any]() *Reducer[T] {
	return &Reducer[T]{
		items: make([]T, 0),
		subs:  make(map[int]chan []T),
	}
}

// Apply replaces the list with the snapshot's contents. A delivery whose
// handle has since been detached is stale and gets discarded; Apply reports
// whether the snapshot was taken. A nil handle is accepted for callers that
// manage their own lifecycle.
func (r *Reducer[T]) Apply(h *Handle, snapshot []T) bool {
	if h != nil && !h.Alive() {
		return false
	}

	items := make([]T, len(snapshot))
	copy(items, snapshot)

	r.mu.Lock()
	r.items = items
	for _, sub := range r.subs {
		// Latest wins: drop the undelivered previous list if the
		// subscriber hasn't caught up.
		select {
		case <-sub:
		default:
		}
		sub <- items
	}
	r.mu.Unlock()
	return true
}

// Current returns a copy of the list as of the latest applied snapshot.
func (r *Reducer[T]) Current() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]T, len(r.items))
	copy(items, r.items)
	return items
}

// Subscribe returns a channel that receives the list after each applied
// snapshot, and a cancel function. Slow subscribers only ever see the most
// recent list.
func (r *Reducer[T]) Subscribe() (<-chan []T, func()) {
	ch := make(chan []T, 1)

	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = ch
	r.mu.Unlock()

	cancel := func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
	return ch, cancel
}
