package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/sirupsen/logrus"
)

const signatureHeader = "X-Webhook-Signature"

// Worker - структура для обработки и отправки вебхуков
type Worker struct {
	redisClient redis.Cmdable
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient redis.Cmdable, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Run обрабатывает очередь событий, пока не отменен ctx
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	defer w.logger.Info("Stopping webhook worker.")

	for {
		if ctx.Err() != nil {
			return
		}

		// BRPOP с ограниченным таймаутом, чтобы периодически проверять ctx
		result, err := w.redisClient.BRPop(ctx, w.cfg.EventPollTimeout, eventQueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
			if !sleepCtx(ctx, w.cfg.WebhookBaseDelay) {
				return
			}
			continue
		}

		// result[0] - ключ, result[1] - значение
		payload := result[1]
		var event Event
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
			continue
		}

		w.deliver(ctx, event, payload)
	}
}

func (w *Worker) deliver(ctx context.Context, event Event, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_type":      event.Type,
		"event_entity":    event.Entity,
		"event_entity_id": event.EntityID,
	})
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		retriesLeft := maxRetries - 1 - i

		status, err := w.send(ctx, rawPayload)
		switch {
		case err == nil && status >= 200 && status < 300:
			log.Info("Webhook delivered successfully.")
			return
		case err != nil:
			log.WithError(err).Warnf("Failed to send webhook for event. Retries left: %d", retriesLeft)
		default:
			log.Warnf("Webhook delivery failed with status code %d. Retries left: %d", status, retriesLeft)
		}

		if retriesLeft == 0 {
			break
		}
		if !sleepCtx(ctx, delay) {
			log.Warn("Webhook delivery interrupted by shutdown")
			return
		}
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver webhook for event after %d retries.", maxRetries)
}

func (w *Worker) send(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// sleepCtx ждет d или отмены ctx; false означает отмену
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
