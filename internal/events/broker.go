package events

import "sync"

// EventMatchUpdated is emitted each time a new match record is stored.
const EventMatchUpdated = "apiResponseUpdated"

// Event is one update pushed to live subscribers. Data must be
// JSON-serializable.
type Event struct {
	Name string
	Data any
}

// Publisher is the write side of the live update channel. Services
// depend on this interface so the transport can be swapped in tests.
type Publisher interface {
	Publish(ev Event)
}

const subscriberBuffer = 16

// Broker fans events out to in-process subscribers. Slow subscribers
// have events dropped rather than blocking the publisher.
type Broker struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewBroker constructs an empty Broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber channel.
func (b *Broker) Subscribe() chan Event {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (b *Broker) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers the event to every subscriber whose buffer has room.
func (b *Broker) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

var _ Publisher = (*Broker)(nil)
