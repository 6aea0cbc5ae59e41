package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service/mocks"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	webhook_mocks "github.com/shenikar/emergency_dispatch/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestEmergencyService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestEmergencyService(t *testing.T) (*emergencyService, *mocks.MockEmergencyRepository, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockEmergencyRepository(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewEmergencyService(repoMock, logger, publisherMock)
	return service.(*emergencyService), repoMock, publisherMock
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCreateEmergency_DefaultsStatusAndPublishes(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()
	emergency := &models.Emergency{Description: "ДТП на трассе", Severity: "critical"}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, emergency).
		DoAndReturn(func(_ context.Context, e *models.Emergency) error {
			assert.Equal(t, models.EmergencyStatusPending, e.Status)
			e.ID = 42
			return nil
		}).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.Event) error {
			assert.Equal(t, webhook.EventNewEmergency, event.Type)
			assert.Equal(t, webhook.EntityEmergency, event.Entity)
			assert.Equal(t, int64(42), event.EntityID)
			assert.False(t, event.Timestamp.IsZero())
			return nil
		}).
		Times(1)

	// Действие
	err := service.CreateEmergency(ctx, emergency)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), emergency.ID)
	assert.Equal(t, models.EmergencyStatusPending, emergency.Status)
}

func TestCreateEmergency_KeepsProvidedStatus(t *testing.T) {
	service, repoMock, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()
	emergency := &models.Emergency{Status: "dispatched"}

	repoMock.EXPECT().Create(ctx, emergency).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	require.NoError(t, service.CreateEmergency(ctx, emergency))
	assert.Equal(t, "dispatched", emergency.Status)
}

func TestCreateEmergency_UnknownAmbulanceIsNotLookedUp(t *testing.T) {
	// Ссылки на машину и больницу не проверяются: кроме Create, репозиторий не вызывается
	service, repoMock, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()
	emergency := &models.Emergency{AmbulanceID: int64Ptr(999999), HospitalID: int64Ptr(888888)}

	repoMock.EXPECT().Create(ctx, emergency).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	require.NoError(t, service.CreateEmergency(ctx, emergency))
	assert.Equal(t, int64(999999), *emergency.AmbulanceID)
}

func TestCreateEmergency_RepositoryError(t *testing.T) {
	service, repoMock, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()
	dbError := errors.New("connection reset")

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(dbError).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := service.CreateEmergency(ctx, &models.Emergency{})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbError)
	assert.Contains(t, err.Error(), "service: could not create emergency")
}

func TestCreateEmergency_PublishErrorIsNotFatal(t *testing.T) {
	service, repoMock, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	assert.NoError(t, service.CreateEmergency(ctx, &models.Emergency{}))
}

func TestGetEmergency_Success_FromCache(t *testing.T) {
	service, repoMock, _ := newTestEmergencyService(t)
	ctx := context.Background()
	expected := &models.Emergency{ID: 7, Description: "Вызов из кеша"}

	repoMock.EXPECT().GetEmergencyFromCache(ctx, int64(7)).Return(expected, nil).Times(1)
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	emergency, err := service.GetEmergency(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, emergency)
}

func TestGetEmergency_Success_FromDB(t *testing.T) {
	service, repoMock, _ := newTestEmergencyService(t)
	ctx := context.Background()
	expected := &models.Emergency{ID: 7, Description: "Вызов из БД"}

	gomock.InOrder(
		// 1. Промах кеша
		repoMock.EXPECT().GetEmergencyFromCache(ctx, int64(7)).Return(nil, nil),
		// 2. Попадание в БД
		repoMock.EXPECT().GetByID(ctx, int64(7)).Return(expected, nil),
		// 3. Запись в кеш
		repoMock.EXPECT().SetEmergencyCache(ctx, expected).Return(nil),
	)

	emergency, err := service.GetEmergency(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, emergency)
}

func TestGetEmergency_CacheErrorFallsBackToDB(t *testing.T) {
	service, repoMock, _ := newTestEmergencyService(t)
	ctx := context.Background()
	expected := &models.Emergency{ID: 3}

	repoMock.EXPECT().GetEmergencyFromCache(ctx, int64(3)).Return(nil, errors.New("redis timeout")).Times(1)
	repoMock.EXPECT().GetByID(ctx, int64(3)).Return(expected, nil).Times(1)
	repoMock.EXPECT().SetEmergencyCache(ctx, expected).Return(errors.New("redis timeout")).Times(1)

	emergency, err := service.GetEmergency(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, expected, emergency)
}

func TestGetEmergency_NotFound(t *testing.T) {
	service, repoMock, _ := newTestEmergencyService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("emergency with id 5: %w", models.ErrNotFound)

	repoMock.EXPECT().GetEmergencyFromCache(ctx, int64(5)).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, int64(5)).Return(nil, dbError).Times(1)
	repoMock.EXPECT().SetEmergencyCache(gomock.Any(), gomock.Any()).Times(0)

	emergency, err := service.GetEmergency(ctx, 5)

	require.Error(t, err)
	assert.Nil(t, emergency)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListEmergencies_NormalizesPagination(t *testing.T) {
	service, repoMock, _ := newTestEmergencyService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx, 1, 20).Return([]*models.Emergency{{ID: 1}}, nil).Times(1)

	emergencies, err := service.ListEmergencies(ctx, 0, 500)

	require.NoError(t, err)
	assert.Len(t, emergencies, 1)
}

func TestUpdateEmergency_InvalidatesCache(t *testing.T) {
	service, repoMock, _ := newTestEmergencyService(t)
	ctx := context.Background()
	emergency := &models.Emergency{ID: 11, Status: "accepted"}

	gomock.InOrder(
		repoMock.EXPECT().Update(ctx, emergency).Return(nil),
		repoMock.EXPECT().InvalidateEmergencyCache(ctx, int64(11)).Return(nil),
	)

	assert.NoError(t, service.UpdateEmergency(ctx, emergency))
}

func TestDeleteEmergency_NotFoundSkipsInvalidation(t *testing.T) {
	service, repoMock, _ := newTestEmergencyService(t)
	ctx := context.Background()

	repoMock.EXPECT().Delete(ctx, int64(12)).Return(fmt.Errorf("emergency with id 12 for delete: %w", models.ErrNotFound)).Times(1)
	repoMock.EXPECT().InvalidateEmergencyCache(gomock.Any(), gomock.Any()).Times(0)

	err := service.DeleteEmergency(ctx, 12)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateStatus_PublishesStatusUpdate(t *testing.T) {
	service, repoMock, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()
	updated := &models.Emergency{ID: 8, Status: "en_route", AmbulanceID: int64Ptr(3)}

	repoMock.EXPECT().UpdateStatus(ctx, int64(8), "en_route", gomock.Nil()).Return(updated, nil).Times(1)
	repoMock.EXPECT().InvalidateEmergencyCache(ctx, int64(8)).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.Event) error {
			assert.Equal(t, webhook.EventStatusUpdate, event.Type)
			data, ok := event.Data.(webhook.StatusData)
			require.True(t, ok)
			assert.Equal(t, "en_route", data.Status)
			assert.Equal(t, int64(3), *data.AmbulanceID)
			return nil
		}).
		Times(1)

	emergency, err := service.UpdateStatus(ctx, 8, "en_route", nil)

	require.NoError(t, err)
	assert.Equal(t, updated, emergency)
}

func TestUpdateStatus_ArrivedAtSceneAlsoAlertsHospital(t *testing.T) {
	service, repoMock, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()
	updated := &models.Emergency{ID: 9, Status: models.EmergencyStatusArrivedAtScene}

	repoMock.EXPECT().UpdateStatus(ctx, int64(9), models.EmergencyStatusArrivedAtScene, gomock.Nil()).Return(updated, nil).Times(1)
	repoMock.EXPECT().InvalidateEmergencyCache(ctx, int64(9)).Return(nil).Times(1)

	var published []string
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.Event) error {
			published = append(published, event.Type)
			return nil
		}).
		Times(2)

	_, err := service.UpdateStatus(ctx, 9, models.EmergencyStatusArrivedAtScene, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{webhook.EventStatusUpdate, webhook.EventNewEmergency}, published)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	service, repoMock, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()

	repoMock.EXPECT().UpdateStatus(ctx, int64(404), "completed", gomock.Nil()).Return(nil, models.ErrNotFound).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateStatus(ctx, 404, "completed", nil)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAcceptEmergency_AssignsAmbulance(t *testing.T) {
	service, repoMock, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()
	ambulanceID := int64Ptr(4)
	accepted := &models.Emergency{ID: 10, Status: models.EmergencyStatusAccepted, AmbulanceID: ambulanceID}

	repoMock.EXPECT().Assign(ctx, int64(10), models.EmergencyStatusAccepted, ambulanceID).Return(accepted, nil).Times(1)
	repoMock.EXPECT().InvalidateEmergencyCache(ctx, int64(10)).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	emergency, err := service.AcceptEmergency(ctx, 10, ambulanceID)

	require.NoError(t, err)
	assert.Equal(t, models.EmergencyStatusAccepted, emergency.Status)
	assert.Equal(t, int64(4), *emergency.AmbulanceID)
}

func TestRejectEmergency_ClearsAmbulance(t *testing.T) {
	service, repoMock, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()
	rejected := &models.Emergency{ID: 10, Status: models.EmergencyStatusPending}

	repoMock.EXPECT().Assign(ctx, int64(10), models.EmergencyStatusPending, gomock.Nil()).Return(rejected, nil).Times(1)
	repoMock.EXPECT().InvalidateEmergencyCache(ctx, int64(10)).Return(errors.New("redis down")).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	emergency, err := service.RejectEmergency(ctx, 10)

	require.NoError(t, err)
	assert.Nil(t, emergency.AmbulanceID)
	assert.Equal(t, models.EmergencyStatusPending, emergency.Status)
}

func TestListAssigned(t *testing.T) {
	service, repoMock, _ := newTestEmergencyService(t)
	ctx := context.Background()

	repoMock.EXPECT().ListByAmbulance(ctx, int64(4)).Return([]*models.Emergency{{ID: 1}, {ID: 2}}, nil).Times(1)

	emergencies, err := service.ListAssigned(ctx, 4)

	require.NoError(t, err)
	assert.Len(t, emergencies, 2)
}
