package notify

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSubscribeReceivesChanges(t *testing.T) {
	n := New()
	defer n.Close()

	var got []Change
	n.Subscribe(func(c Change) {
		got = append(got, c)
	})

	n.NotifySet("font_size", 10, 12, "global")
	n.NotifyErase("font_size", 12, "view(3)")
	n.NotifyReload("global")

	if len(got) != 3 {
		t.Fatalf("received %d changes, want 3", len(got))
	}
	if got[0].Type != ChangeSet || got[0].Path != "font_size" || got[0].OldValue != 10 || got[0].NewValue != 12 {
		t.Errorf("unexpected set change: %+v", got[0])
	}
	if got[1].Type != ChangeErase || got[1].Target != "view(3)" {
		t.Errorf("unexpected erase change: %+v", got[1])
	}
	if got[2].Type != ChangeReload || got[2].Path != "" {
		t.Errorf("unexpected reload change: %+v", got[2])
	}
}

func TestSubscribePathFilters(t *testing.T) {
	n := New()
	defer n.Close()

	var fontChanges, tabChanges int
	n.SubscribePath("font_size", func(Change) { fontChanges++ })
	n.SubscribePath("tab_size", func(Change) { tabChanges++ })

	n.NotifySet("font_size", nil, 12, "global")
	n.NotifySet("font_size", 12, 14, "global")
	n.NotifySet("tab_size", nil, 4, "global")

	if fontChanges != 2 {
		t.Errorf("font_size observer fired %d times, want 2", fontChanges)
	}
	if tabChanges != 1 {
		t.Errorf("tab_size observer fired %d times, want 1", tabChanges)
	}
}

func TestUnsubscribe(t *testing.T) {
	n := New()
	defer n.Close()

	var count int
	sub := n.Subscribe(func(Change) { count++ })

	n.NotifySet("font_size", nil, 12, "global")
	sub.Unsubscribe()
	n.NotifySet("font_size", 12, 14, "global")

	if count != 1 {
		t.Errorf("observer fired %d times after unsubscribe, want 1", count)
	}
}

func TestObserverCanSubscribeDuringDelivery(t *testing.T) {
	n := New()
	defer n.Close()

	var nested int
	n.Subscribe(func(Change) {
		n.SubscribePath("font_size", func(Change) { nested++ })
	})

	// Must not deadlock.
	n.NotifySet("font_size", nil, 12, "global")
}

func TestAsyncDelivery(t *testing.T) {
	n := New(WithAsync(16))

	var mu sync.Mutex
	var got []Change
	n.Subscribe(func(c Change) {
		mu.Lock()
		got = append(got, c)
		mu.Unlock()
	})

	for i := 0; i < 5; i++ {
		n.NotifySet("font_size", i, i+1, "global")
	}

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		done := len(got) == 5
		mu.Unlock()
		if done {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for async delivery, got %d changes", len(got))
		case <-time.After(5 * time.Millisecond):
		}
	}

	n.Close()
}

func TestCloseIsIdempotent(t *testing.T) {
	n := New(WithAsync(4))
	n.Close()
	n.Close()

	// Notifications after close are dropped silently.
	n.NotifySet("font_size", nil, 12, "global")
}
