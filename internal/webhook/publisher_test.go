package webhook

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	publisher := NewRedisPublisher(rdb)
	ctx := context.Background()

	first := Event{
		Type:      EventLocationUpdate,
		Entity:    EntityAmbulance,
		EntityID:  1,
		Data:      LocationData{Latitude: 55.75, Longitude: 37.61},
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	second := Event{Type: EventBedsUpdate, Entity: EntityHospital, EntityID: 2}

	require.NoError(t, publisher.Publish(ctx, first))
	require.NoError(t, publisher.Publish(ctx, second))

	items, err := mr.List(eventQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Воркер забирает справа, значит первое событие лежит в конце списка
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(items[1]), &got))
	assert.Equal(t, EventLocationUpdate, got["type"])
	assert.Equal(t, EntityAmbulance, got["entity"])
	assert.EqualValues(t, 1, got["entity_id"])
	assert.Equal(t, map[string]any{"latitude": 55.75, "longitude": 37.61}, got["data"])
	assert.Equal(t, "2024-01-01T12:00:00Z", got["timestamp"])
}

func TestRedisPublisher_PublishRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	err := NewRedisPublisher(rdb).Publish(context.Background(), Event{Type: EventStatusUpdate})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish webhook event to Redis")
}
