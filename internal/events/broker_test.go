package events

import "testing"

func TestBrokerFansOut(t *testing.T) {
	b := NewBroker()
	a := b.Subscribe()
	c := b.Subscribe()

	b.Publish(Event{Name: EventMatchUpdated, Data: "one"})

	for _, ch := range []chan Event{a, c} {
		select {
		case ev := <-ch:
			if ev.Name != EventMatchUpdated || ev.Data != "one" {
				t.Errorf("got %+v", ev)
			}
		default:
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestBrokerDropsWhenBufferFull(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()

	for i := 0; i < subscriberBuffer+5; i++ {
		b.Publish(Event{Name: EventMatchUpdated, Data: i})
	}

	if got := len(ch); got != subscriberBuffer {
		t.Errorf("buffered = %d, want %d", got, subscriberBuffer)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	b.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Fatal("channel still open after unsubscribe")
	}

	// Publishing after unsubscribe must not panic on the closed channel.
	b.Publish(Event{Name: EventMatchUpdated})
	b.Unsubscribe(ch)
}

func TestMultiPublisher(t *testing.T) {
	b1 := NewBroker()
	b2 := NewBroker()
	c1 := b1.Subscribe()
	c2 := b2.Subscribe()

	MultiPublisher{b1, b2}.Publish(Event{Name: EventMatchUpdated, Data: "x"})

	if len(c1) != 1 || len(c2) != 1 {
		t.Errorf("deliveries = %d, %d; want 1 each", len(c1), len(c2))
	}
}
