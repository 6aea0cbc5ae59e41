package service

import (
	"context"
	"math"
	"time"

	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// (maxPage-1)*maxPageSize помещается в int32, поэтому OFFSET не переполняется
	maxPage = math.MaxInt32 / maxPageSize
)

// normalizePage приводит параметры пагинации к допустимым значениям
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

// publishEvent отправляет событие в очередь. Ошибка публикации не прерывает запрос.
func publishEvent(ctx context.Context, publisher webhook.Publisher, log *logrus.Entry, event webhook.Event) {
	if publisher == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_type", event.Type).Warn("Failed to publish event")
	}
}
