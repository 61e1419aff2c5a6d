package netio

import (
	"sync"
	"time"
)

// DefaultMailboxSize is the per-protocol receive queue depth used when a
// non-positive size is requested.
const DefaultMailboxSize = 256

// Delivery is one frame handed to a receiver by the fabric.
type Delivery struct {
	// Interface is the receiving (local) interface.
	Interface string

	// Peer is the sending endpoint, "device:interface".
	Peer string

	// Time is the simulated time the frame was sent.
	Time time.Time

	// Data is the raw Ethernet frame.
	Data []byte
}

// Receiver accepts frames from the fabric. Receive must not block; it
// returns false when the frame was dropped.
type Receiver interface {
	Receive(d Delivery) bool
}

// Mailbox is a bounded FIFO of received frames. It is written by the
// fabric on behalf of any sender and drained by the owning protocol.
// When full, the newest frame is dropped.
type Mailbox struct {
	mu      sync.Mutex
	queue   []Delivery
	size    int
	dropped uint64
}

// NewMailbox creates a mailbox holding at most size frames.
func NewMailbox(size int) *Mailbox {
	if size <= 0 {
		size = DefaultMailboxSize
	}
	return &Mailbox{
		queue: make([]Delivery, 0, size),
		size:  size,
	}
}

// Receive enqueues d. It implements Receiver.
func (m *Mailbox) Receive(d Delivery) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.queue) >= m.size {
		m.dropped++
		return false
	}
	m.queue = append(m.queue, d)
	return true
}

// Drain removes and returns every queued frame in arrival order.
func (m *Mailbox) Drain() []Delivery {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.queue) == 0 {
		return nil
	}
	out := m.queue
	m.queue = make([]Delivery, 0, m.size)
	return out
}

// Len returns the number of queued frames.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Dropped returns the number of frames refused because the mailbox was full.
func (m *Mailbox) Dropped() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dropped
}

// Reset discards every queued frame.
func (m *Mailbox) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = m.queue[:0]
}
