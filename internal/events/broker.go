// Package events fans content change notifications out to subscribers such
// as the server-sent events stream.
package events

import (
	"sync"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/models"
)

// DefaultBufferSize is the per-subscriber queue length.
const DefaultBufferSize = 16

// Broker delivers every published [models.ContentChange] to all current
// subscribers. Publish never blocks: a subscriber whose queue is full misses
// the event.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[chan models.ContentChange]struct{}
	bufferSize  int
	closed      bool
	logger      *logger.Logger
}

// NewBroker returns a broker with per-subscriber queues of bufferSize
// events. A non-positive size selects [DefaultBufferSize].
func NewBroker(bufferSize int, log *logger.Logger) *Broker {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Broker{
		subscribers: make(map[chan models.ContentChange]struct{}),
		bufferSize:  bufferSize,
		logger:      log,
	}
}

// Subscribe registers a new subscriber. The returned function unsubscribes
// and closes the channel; it is safe to call more than once.
func (b *Broker) Subscribe() (<-chan models.ContentChange, func()) {
	ch := make(chan models.ContentChange, b.bufferSize)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() { b.unsubscribe(ch) })
	}
}

func (b *Broker) unsubscribe(ch chan models.ContentChange) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

// Publish implements store.ChangeNotifier.
func (b *Broker) Publish(change models.ContentChange) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers {
		select {
		case ch <- change:
		default:
			b.logger.Warn().Str("type", string(change.Type)).Msg("subscriber queue full, change dropped")
		}
	}
}

// Subscribers returns the number of active subscribers.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close ends every subscription. Later subscriptions receive a closed channel.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, ch)
	}
}
