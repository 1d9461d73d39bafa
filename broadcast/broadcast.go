package broadcast

import (
	"context"
	"errors"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rbtree"
)

// ErrClosed is returned when subscribing to a closed broadcaster.
var ErrClosed = errors.New("broadcast: broadcaster closed")

// Broadcaster publishes tree events to subscribers.
type Broadcaster[K any] struct {
	cast *caster.Caster
}

// New creates a broadcaster. It closes down when ctx is done; ctx may be nil.
func New[K any](ctx context.Context) *Broadcaster[K] {
	return &Broadcaster[K]{cast: caster.New(ctx)}
}

// Observe publishes ev to all current subscribers. Its signature matches
// rbtree.Config.Observer.
//
// Observe never waits for subscribers. A subscriber whose buffer is full
// misses the event.
func (b *Broadcaster[K]) Observe(ev rbtree.Event[K]) {
	if !b.cast.TryPub(ev) {
		tracer().Debugf("broadcast: %s event dropped, broadcaster is closed", ev.Kind)
	}
}

// Subscribe returns a channel receiving all events published from now on.
// capacity is the channel's buffer size. The channel is closed when ctx is
// done or the broadcaster is closed.
func (b *Broadcaster[K]) Subscribe(ctx context.Context, capacity uint) (<-chan rbtree.Event[K], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if b.closed() {
		return nil, ErrClosed
	}
	// Sub hands out a closed channel if the caster shut down meanwhile
	sub, _ := b.cast.Sub(ctx, capacity)
	if b.closed() {
		return nil, ErrClosed
	}
	events := make(chan rbtree.Event[K], capacity)
	go b.relay(ctx, sub, events)
	return events, nil
}

// relay forwards messages from a caster subscription to a typed channel.
// It gives up as soon as ctx is done, even if the subscriber stopped reading.
// The caster drops the subscription itself with the next event after ctx is
// done; unsubscribing here could close sub a second time.
func (b *Broadcaster[K]) relay(ctx context.Context, sub chan interface{}, events chan<- rbtree.Event[K]) {
	defer close(events)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub:
			if !ok {
				return
			}
			ev, ok := msg.(rbtree.Event[K])
			if !ok {
				tracer().Errorf("broadcast: unexpected message of type %T", msg)
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (b *Broadcaster[K]) closed() bool {
	select {
	case <-b.cast.Done():
		return true
	default:
		return false
	}
}

// Close shuts down the broadcaster and closes all subscriber channels.
func (b *Broadcaster[K]) Close() {
	b.cast.Close()
}
