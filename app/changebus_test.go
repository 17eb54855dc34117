package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeBus_PublishSubscribe(t *testing.T) {
	bus := NewChangeBus(4)

	ch, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	bus.Publish(VenueChange{Type: ChangeVenueCreated, Slug: "sunset-lanes"})
	bus.Publish(VenueChange{Type: ChangeVenueDeleted, Slug: "timber-bowl"})

	first := <-ch
	assert.Equal(t, ChangeVenueCreated, first.Type)
	assert.Equal(t, uint64(1), first.ID)
	assert.False(t, first.Timestamp.IsZero())

	second := <-ch
	assert.Equal(t, ChangeVenueDeleted, second.Type)
	assert.Equal(t, uint64(2), second.ID)
}

func TestChangeBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := NewChangeBus(4)

	ch, unsubscribe := bus.Subscribe()
	unsubscribe()

	bus.Publish(VenueChange{Type: ChangeVenueCreated})

	select {
	case _, ok := <-ch:
		require.False(t, ok, "unsubscribed channel should not receive")
	default:
		// nothing delivered
	}
}

func TestChangeBus_SlowConsumerDropsMessages(t *testing.T) {
	bus := NewChangeBus(1)

	ch, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	bus.Publish(VenueChange{Type: ChangeVenueCreated})
	bus.Publish(VenueChange{Type: ChangeVenueUpdated})

	first := <-ch
	assert.Equal(t, ChangeVenueCreated, first.Type)

	select {
	case change := <-ch:
		t.Fatalf("expected second message to be dropped, got %v", change.Type)
	default:
	}
}
