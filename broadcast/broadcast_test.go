package broadcast

import (
	"context"
	"testing"
	"time"

	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func receive(t *testing.T, events <-chan rbtree.Event[int], n int) []rbtree.Event[int] {
	t.Helper()
	var got []rbtree.Event[int]
	timeout := time.After(2 * time.Second)
	for len(got) < n {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed after %d events, expected %d", len(got), n)
			}
			got = append(got, ev)
		case <-timeout:
			t.Fatalf("timed out after %d events, expected %d", len(got), n)
		}
	}
	return got
}

func TestBroadcastTreeEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := New[int](ctx)
	events, err := b.Subscribe(ctx, 16)
	if err != nil {
		t.Fatalf("cannot subscribe: %v", err)
	}
	cfg := rbtree.OrderedConfig[int]()
	cfg.Observer = b.Observe
	tree, err := rbtree.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("cannot create tree: %v", err)
	}
	tree.Insert(1).Insert(2).Insert(3)
	got := receive(t, events, 4)
	want := []rbtree.Event[int]{
		{Kind: rbtree.Inserted, Key: 1},
		{Kind: rbtree.Inserted, Key: 2},
		{Kind: rbtree.Inserted, Key: 3},
		{Kind: rbtree.RotatedLeft, Key: 1},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event #%d is %v, want %v", i, got[i], want[i])
		}
	}
	tree.Delete(3)
	if got = receive(t, events, 1); got[0].Kind != rbtree.Deleted || got[0].Key != 3 {
		t.Errorf("expected delete event for 3, got %v", got[0])
	}
}

func TestCloseEndsSubscriptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	b := New[int](nil)
	events, err := b.Subscribe(context.Background(), 4)
	if err != nil {
		t.Fatalf("cannot subscribe: %v", err)
	}
	b.Close()
	select {
	case _, ok := <-events:
		if ok {
			t.Errorf("expected no events after close")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("event channel not closed after broadcaster closed")
	}
	if _, err := b.Subscribe(context.Background(), 4); err != ErrClosed {
		t.Errorf("expected ErrClosed when subscribing to closed broadcaster, got %v", err)
	}
	b.Observe(rbtree.Event[int]{Kind: rbtree.Inserted, Key: 1}) // dropped
}

func TestStalledSubscriberDoesNotBlockTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	b := New[int](nil)
	defer b.Close()
	ctx, cancel := context.WithCancel(context.Background())
	events, err := b.Subscribe(ctx, 1)
	if err != nil {
		t.Fatalf("cannot subscribe: %v", err)
	}
	cfg := rbtree.OrderedConfig[int]()
	cfg.Observer = b.Observe
	tree, err := rbtree.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("cannot create tree: %v", err)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			tree.Insert(i)
		}
		for i := 0; i < 100; i += 2 {
			tree.Delete(i)
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("tree operations blocked by a subscriber which does not read")
	}
	if tree.Len() != 50 || !tree.IsValidRedBlackTree() {
		t.Errorf("unexpected tree state after updates: %d keys", tree.Len())
	}
	cancel()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatalf("event channel not closed after subscriber context was cancelled")
		}
	}
}

func TestSubscribeWithCancelledContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	b := New[int](nil)
	defer b.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	events, err := b.Subscribe(ctx, 4)
	if err != nil {
		t.Fatalf("cannot subscribe: %v", err)
	}
	select {
	case _, ok := <-events:
		if ok {
			t.Errorf("expected no events for cancelled subscription")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("event channel of cancelled subscription not closed")
	}
}
