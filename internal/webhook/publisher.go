package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	eventQueueKey = "dispatch_events"
)

// Типы событий, которые раньше получали подключенные клиенты
const (
	EventNewEmergency   = "NEW_EMERGENCY"
	EventStatusUpdate   = "STATUS_UPDATE"
	EventLocationUpdate = "LOCATION_UPDATE"
	EventBedsUpdate     = "BEDS_UPDATE"
)

const (
	EntityAmbulance = "ambulance"
	EntityHospital  = "hospital"
	EntityVolunteer = "volunteer"
	EntityEmergency = "emergency"
)

// Event - структура для данных вебхука
type Event struct {
	Type      string    `json:"type"`
	Entity    string    `json:"entity"`
	EntityID  int64     `json:"entity_id"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationData - новые координаты машины или волонтера
type LocationData struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// StatusData - состояние вызова после смены статуса
type StatusData struct {
	Status      string `json:"status"`
	AmbulanceID *int64 `json:"ambulance_id"`
	HospitalID  *int64 `json:"hospital_id"`
}

// BedsData - свободные места в больнице
type BedsData struct {
	ICUAvailable  int `json:"icu_available"`
	BedsAvailable int `json:"beds_available"`
}

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient redis.Cmdable
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client redis.Cmdable) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
