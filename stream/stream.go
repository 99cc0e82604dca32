// Package stream keeps local in-memory lists in step with remote query
// results. A Manager owns at most one live subscription per logical stream
// kind, and a Reducer owns the list a subscription feeds. Callbacks never
// touch shared state directly; they hand complete snapshots to the reducer,
// which replaces the list wholesale.
package stream

import (
	"context"
	"sync/atomic"
)

// Kind identifies a logical subscription stream. The Manager keeps at most
// one active subscription per Kind.
type Kind string

const (
	ChatList  Kind = "chat-list"
	QuestList Kind = "quest-list"
)

// MessageThread is the stream of messages inside a single chat.
func MessageThread(chatID string) Kind {
	return Kind("message-thread/" + chatID)
}

// CharacterList is the stream of characters owned by a single user.
func CharacterList(userID string) Kind {
	return Kind("character-list/" + userID)
}

// Handle represents one attached subscription. It stays alive until its
// stream is detached or replaced. A snapshot that was already in flight when
// the handle died may still be delivered; the reducer discards it by checking
// Alive.
type Handle struct {
	kind   Kind
	cancel context.CancelFunc
	alive  atomic.Bool
}

func (h *Handle) Kind() Kind {
	return h.kind
}

func (h *Handle) Alive() bool {
	return h.alive.Load()
}

// detach flips the liveness flag and cancels the listener context. Safe to
// call any number of times.
func (h *Handle) detach() {
	if h.alive.CompareAndSwap(true, false) {
		h.cancel()
	}
}
