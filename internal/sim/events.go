package sim

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dantte-lp/l2sim/internal/protocol"
)

// DefaultSubscriberBuffer is the channel depth used for subscribers that
// ask for a non-positive buffer.
const DefaultSubscriberBuffer = 64

// Hub fans protocol events out to subscribers. Delivery never blocks the
// tick: a subscriber whose channel is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]chan protocol.Event
	next   uint64
	closed bool

	published atomic.Uint64
	dropped   atomic.Uint64

	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[uint64]chan protocol.Event),
		logger: logger.With(slog.String("component", "sim.events")),
	}
}

// Notify publishes ev to every subscriber. It implements
// protocol.Notifier.
func (h *Hub) Notify(ev protocol.Event) {
	h.published.Add(1)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.dropped.Add(1)
			h.logger.Warn("subscriber channel full, dropping event",
				slog.Uint64("subscriber", id),
				slog.String("device", ev.Device),
				slog.String("type", ev.Type.String()),
			)
		}
	}
}

// Subscribe registers a subscriber with the given channel depth. The
// returned cancel function unsubscribes and closes the channel; it is safe
// to call more than once.
func (h *Hub) Subscribe(buffer int) (<-chan protocol.Event, func()) {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	ch := make(chan protocol.Event, buffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := h.next
	h.next++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if c, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(c)
			}
		})
	}
}

// Subscribers returns the number of live subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Published returns the number of events passed to Notify.
func (h *Hub) Published() uint64 { return h.published.Load() }

// Dropped returns the number of per-subscriber deliveries skipped because
// the subscriber was too slow.
func (h *Hub) Dropped() uint64 { return h.dropped.Load() }

// Close closes every subscriber channel. Later subscriptions receive a
// closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
	h.closed = true
}
