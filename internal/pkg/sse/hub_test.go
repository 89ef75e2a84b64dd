package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeAndPublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-1", Event{UserID: "user-1", Event: "notification", Data: "hello"})

	select {
	case event := <-ch:
		assert.Equal(t, "notification", event.Event)
		assert.Equal(t, "hello", event.Data)
	default:
		t.Fatal("expected event on subscriber channel")
	}
}

func TestPublishTargetsOnlyOneUser(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-2")
	defer cleanup2()

	hub.Publish("user-1", Event{UserID: "user-1", Event: "notification"})

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 0)
}

func TestBroadcastReachesEveryUser(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-2")
	defer cleanup2()

	hub.Broadcast(Event{Event: "announcement", Data: "maintenance window"})

	require.Len(t, ch1, 1)
	require.Len(t, ch2, 1)

	// Each copy is stamped with the receiving user's id
	assert.Equal(t, "user-1", (<-ch1).UserID)
	assert.Equal(t, "user-2", (<-ch2).UserID)
}

func TestPublishDoesNotBlockOnFullChannel(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	// Channel capacity is 10; the extra events must be dropped, not block
	for i := 0; i < 50; i++ {
		hub.Publish("user-1", Event{UserID: "user-1", Event: "notification", Data: i})
	}
}

func TestCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	assert.Equal(t, 1, hub.SubscriberCount("user-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestMultipleSubscribersSameUser(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-1")
	defer cleanup2()

	hub.Publish("user-1", Event{UserID: "user-1", Event: "notification"})

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 1)
	assert.Equal(t, 2, hub.SubscriberCount("user-1"))
}
