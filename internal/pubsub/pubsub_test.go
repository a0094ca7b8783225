package pubsub

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	b := NewBroker[string]()
	sub1 := b.Subscribe("chat", 1)
	sub2 := b.Subscribe("chat", 1)
	defer sub1.Cancel()
	defer sub2.Cancel()

	b.Publish("chat", "hello")

	assert.Equal(t, "hello", <-sub1.C)
	assert.Equal(t, "hello", <-sub2.C)
}

func TestPublishIgnoresOtherTopics(t *testing.T) {
	t.Parallel()

	b := NewBroker[string]()
	sub := b.Subscribe("chat", 1)
	defer sub.Cancel()

	b.Publish("news", "ignored")

	select {
	case msg := <-sub.C:
		t.Fatalf("unexpected message: %q", msg)
	default:
	}
}

func TestFullBufferDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	b := NewBroker[int]()
	sub := b.Subscribe("chat", 1)
	defer sub.Cancel()

	b.Publish("chat", 1)
	b.Publish("chat", 2)

	assert.Equal(t, 1, <-sub.C)

	select {
	case msg := <-sub.C:
		t.Fatalf("message should have been dropped, got %d", msg)
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	t.Parallel()

	b := NewBroker[string]()
	sub := b.Subscribe("chat", 1)

	sub.Cancel()
	sub.Cancel()

	_, open := <-sub.C
	require.False(t, open)

	// Publishing after cancel must not panic on the closed channel.
	b.Publish("chat", "late")
}

func TestConcurrentPublishAndCancel(t *testing.T) {
	t.Parallel()

	b := NewBroker[int]()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		sub := b.Subscribe("chat", 4)

		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Publish("chat", j)
			}
		}()
		go func() {
			defer wg.Done()
			sub.Cancel()
		}()
	}
	wg.Wait()
}
