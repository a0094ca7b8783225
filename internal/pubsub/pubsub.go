package pubsub

import "sync"

// Broker is a minimal in-process publish/subscribe channel keyed by topic.
// Subscribers hold a cancellable handle; a slow subscriber drops messages
// instead of blocking the publisher.
type Broker[T any] struct {
	mu     sync.RWMutex
	topics map[string]map[*Subscription[T]]struct{}
}

type Subscription[T any] struct {
	C      chan T
	topic  string
	broker *Broker[T]
	once   sync.Once
}

func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{
		topics: make(map[string]map[*Subscription[T]]struct{}),
	}
}

// Subscribe registers a subscriber on the topic with the given buffer size.
func (b *Broker[T]) Subscribe(topic string, buffer int) *Subscription[T] {
	sub := &Subscription[T]{
		C:      make(chan T, buffer),
		topic:  topic,
		broker: b,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[*Subscription[T]]struct{})
		b.topics[topic] = subs
	}
	subs[sub] = struct{}{}

	return sub
}

// Publish delivers msg to every current subscriber of the topic. Delivery to
// a subscriber with a full buffer is skipped.
func (b *Broker[T]) Publish(topic string, msg T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.topics[topic] {
		select {
		case sub.C <- msg:
		default:
		}
	}
}

// Cancel removes the subscription and closes its channel. Safe to call more
// than once.
func (s *Subscription[T]) Cancel() {
	s.once.Do(func() {
		b := s.broker

		b.mu.Lock()
		defer b.mu.Unlock()

		if subs, ok := b.topics[s.topic]; ok {
			delete(subs, s)
			if len(subs) == 0 {
				delete(b.topics, s.topic)
			}
		}
		close(s.C)
	})
}
