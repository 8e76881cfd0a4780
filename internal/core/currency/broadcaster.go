package currency

import (
	"context"
	"sync"
	"time"
)

// Change is the "currencyChange" notification emitted when a user picks a new currency.
type Change struct {
	UserID string    `json:"user_id"`
	Code   string    `json:"code"`
	At     time.Time `json:"at"`
}

// Broadcaster fans currency changes out to in-process subscribers. A subscriber whose
// buffer is full misses the change; Publish never blocks.
type Broadcaster struct {
	mu     sync.RWMutex
	subs   map[int]chan Change
	nextID int
	buffer int
	closed bool
}

func NewBroadcaster(buffer int) *Broadcaster {
	if buffer < 1 {
		buffer = 1
	}
	return &Broadcaster{
		subs:   make(map[int]chan Change),
		buffer: buffer,
	}
}

// Subscribe returns a channel of changes and a cancel func that must be called to
// release it. The channel is closed on cancel or Close.
func (b *Broadcaster) Subscribe() (<-chan Change, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Change, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Publish delivers c to every subscriber with room in its buffer and returns how many
// received it.
func (b *Broadcaster) Publish(c Change) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for _, ch := range b.subs {
		select {
		case ch <- c:
			delivered++
		default:
		}
	}
	return delivered
}

// Notify lets a Broadcaster stand in wherever a change notifier is expected.
func (b *Broadcaster) Notify(_ context.Context, c Change) error {
	b.Publish(c)
	return nil
}

func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
