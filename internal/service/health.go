package service

//go:generate mockgen -source=health.go -destination=mocks/health_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Pinger - зависимость, доступность которой проверяет health-check
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService проверяет, что бд и Redis доступны
type HealthService interface {
	Check(ctx context.Context) error
}

type healthService struct {
	db    Pinger
	redis redis.Cmdable
}

func NewHealthService(db Pinger, redisClient redis.Cmdable) HealthService {
	return &healthService{
		db:    db,
		redis: redisClient,
	}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("postgres is unavailable: %w", err)
	}
	if err := s.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis is unavailable: %w", err)
	}
	return nil
}
