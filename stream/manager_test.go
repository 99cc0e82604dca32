package stream

import (
	"context"
	"testing"
	"time"
)

func startBlocking(m *Manager, kind Kind) (*Handle, <-chan struct{}) {
	stopped := make(chan struct{})
	started := make(chan struct{})
	h := m.Attach(context.Background(), kind, func(ctx context.Context, h *Handle) {
		close(started)
		<-ctx.Done()
		close(stopped)
	})
	<-started
	return h, stopped
}

func TestAttachReplacesPreviousSubscription(t *testing.T) {
	m := NewManager()

	first, firstStopped := startBlocking(m, ChatList)
	second, _ := startBlocking(m, ChatList)

	select {
	case <-firstStopped:
	case <-time.After(time.Second):
		t.Fatal("previous subscription was not detached on replacement")
	}
	if first.Alive() {
		t.Error("replaced handle still reports alive")
	}
	if !second.Alive() {
		t.Error("new handle should be alive")
	}
	if !m.Active(ChatList) {
		t.Error("kind should remain active after replacement")
	}
}

func TestDetachIsIdempotent(t *testing.T) {
	m := NewManager()

	// Never attached: a no-op, not a panic or error.
	m.Detach(QuestList)

	h, stopped := startBlocking(m, QuestList)
	m.Detach(QuestList)
	<-stopped
	if h.Alive() {
		t.Error("handle still alive after detach")
	}
	if m.Active(QuestList) {
		t.Error("kind still active after detach")
	}

	// Already detached: still a no-op.
	m.Detach(QuestList)
}

func TestIndependentKindsDoNotInterfere(t *testing.T) {
	m := NewManager()

	_, chatStopped := startBlocking(m, ChatList)
	quest, _ := startBlocking(m, QuestList)

	m.Detach(ChatList)
	<-chatStopped

	if !quest.Alive() {
		t.Error("detaching chat-list killed the quest-list subscription")
	}
	if !m.Active(QuestList) {
		t.Error("quest-list should still be active")
	}
}

func TestMessageThreadKindsArePerChat(t *testing.T) {
	m := NewManager()

	a, aStopped := startBlocking(m, MessageThread("chat-1"))
	b, _ := startBlocking(m, MessageThread("chat-2"))

	// Threads for different chats are different kinds; attaching one must not
	// replace the other.
	if !a.Alive() || !b.Alive() {
		t.Fatal("both thread subscriptions should be alive")
	}

	// Re-attaching the same thread replaces only that thread.
	startBlocking(m, MessageThread("chat-1"))
	select {
	case <-aStopped:
	case <-time.After(time.Second):
		t.Fatal("re-attaching chat-1 thread did not detach the old handle")
	}
	if !b.Alive() {
		t.Error("chat-2 thread was detached by a chat-1 re-attach")
	}
}

func TestDetachAll(t *testing.T) {
	m := NewManager()

	_, s1 := startBlocking(m, ChatList)
	_, s2 := startBlocking(m, CharacterList("user-1"))

	m.DetachAll()
	<-s1
	<-s2

	if m.Active(ChatList) || m.Active(CharacterList("user-1")) {
		t.Error("subscriptions still active after DetachAll")
	}
}
