package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateEmergency_Success(t *testing.T) {
	m, router := newTestHandler(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	m.emergencies.EXPECT().
		CreateEmergency(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Emergency) error {
			assert.Equal(t, "Пожар", e.Description)
			assert.Empty(t, e.Status)
			e.ID = 1
			e.Status = models.EmergencyStatusPending
			e.CreatedAt = createdAt
			e.UpdatedAt = createdAt
			return nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/emergencies", jsonBody(t, EmergencyRequest{Description: "Пожар", Severity: "high"}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{
		"id": 1,
		"description": "Пожар",
		"severity": "high",
		"latitude": 0,
		"longitude": 0,
		"ambulance_id": null,
		"hospital_id": null,
		"status": "pending",
		"created_at": "2024-05-01T10:00:00Z",
		"updated_at": "2024-05-01T10:00:00Z"
	}`, w.Body.String())
}

func TestCreateEmergency_UnknownAmbulanceSucceeds(t *testing.T) {
	m, router := newTestHandler(t)

	m.emergencies.EXPECT().
		CreateEmergency(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Emergency) error {
			require.NotNil(t, e.AmbulanceID)
			assert.Equal(t, int64(999999), *e.AmbulanceID)
			e.ID = 2
			return nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/emergencies", bytes.NewBufferString(`{"description": "x", "ambulance_id": 999999}`))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(999999), *resp.AmbulanceID)
}

func TestCreateEmergency_InternalError(t *testing.T) {
	m, router := newTestHandler(t)
	m.emergencies.EXPECT().CreateEmergency(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/emergencies", jsonBody(t, EmergencyRequest{}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, w.Body.String())
}

func TestGetEmergency(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.emergencies.EXPECT().GetEmergency(gomock.Any(), int64(3)).Return(&models.Emergency{ID: 3, Status: "accepted"}, nil).Times(1)

		w := makeRequest(router, http.MethodGet, "/api/v1/emergencies/3", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp EmergencyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "accepted", resp.Status)
	})

	t.Run("Not found", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.emergencies.EXPECT().GetEmergency(gomock.Any(), int64(3)).Return(nil, models.ErrNotFound).Times(1)

		w := makeRequest(router, http.MethodGet, "/api/v1/emergencies/3", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "emergency not found"}`, w.Body.String())
	})
}

func TestListEmergencies(t *testing.T) {
	m, router := newTestHandler(t)
	m.emergencies.EXPECT().
		ListEmergencies(gomock.Any(), 1, 50).
		Return([]*models.Emergency{{ID: 2}, {ID: 1}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/emergencies?pageSize=50", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, int64(2), resp[0].ID)
}

func TestUpdateEmergency_UsesPathID(t *testing.T) {
	m, router := newTestHandler(t)

	m.emergencies.EXPECT().
		UpdateEmergency(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Emergency) error {
			assert.Equal(t, int64(10), e.ID)
			assert.Equal(t, "completed", e.Status)
			return nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPut, "/api/v1/emergencies/10", jsonBody(t, EmergencyRequest{Status: "completed"}))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteEmergency(t *testing.T) {
	m, router := newTestHandler(t)
	m.emergencies.EXPECT().DeleteEmergency(gomock.Any(), int64(10)).Return(nil).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/emergencies/10", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateEmergencyStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		m, router := newTestHandler(t)
		ambulanceID := int64(4)
		m.emergencies.EXPECT().
			UpdateStatus(gomock.Any(), int64(10), models.EmergencyStatusArrivedAtScene, &ambulanceID).
			Return(&models.Emergency{ID: 10, Status: models.EmergencyStatusArrivedAtScene, AmbulanceID: &ambulanceID}, nil).
			Times(1)

		w := makeRequest(router, http.MethodPatch, "/api/v1/emergencies/10/status",
			bytes.NewBufferString(`{"status": "arrived_at_scene", "ambulance_id": 4}`))

		require.Equal(t, http.StatusOK, w.Code)
		var resp EmergencyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.EmergencyStatusArrivedAtScene, resp.Status)
	})

	t.Run("Not found", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.emergencies.EXPECT().
			UpdateStatus(gomock.Any(), int64(11), "completed", gomock.Nil()).
			Return(nil, models.ErrNotFound).
			Times(1)

		w := makeRequest(router, http.MethodPatch, "/api/v1/emergencies/11/status", bytes.NewBufferString(`{"status": "completed"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAcceptEmergency(t *testing.T) {
	m, router := newTestHandler(t)
	ambulanceID := int64(4)

	m.emergencies.EXPECT().
		AcceptEmergency(gomock.Any(), int64(10), &ambulanceID).
		Return(&models.Emergency{ID: 10, Status: models.EmergencyStatusAccepted, AmbulanceID: &ambulanceID}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/emergencies/10/accept", bytes.NewBufferString(`{"ambulance_id": 4}`))

	require.Equal(t, http.StatusOK, w.Code)
	var resp EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.EmergencyStatusAccepted, resp.Status)
	assert.Equal(t, int64(4), *resp.AmbulanceID)
}

func TestAcceptEmergency_EmptyBody(t *testing.T) {
	m, router := newTestHandler(t)

	m.emergencies.EXPECT().
		AcceptEmergency(gomock.Any(), int64(10), gomock.Nil()).
		Return(&models.Emergency{ID: 10, Status: models.EmergencyStatusAccepted}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/emergencies/10/accept", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.EmergencyStatusAccepted, resp.Status)
	assert.Nil(t, resp.AmbulanceID)
}

func TestAcceptEmergency_MalformedBody(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/emergencies/10/accept", bytes.NewBufferString(`{"ambulance_id":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRejectEmergency(t *testing.T) {
	m, router := newTestHandler(t)

	m.emergencies.EXPECT().
		RejectEmergency(gomock.Any(), int64(10)).
		Return(&models.Emergency{ID: 10, Status: models.EmergencyStatusPending}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/emergencies/10/reject", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.AmbulanceID)
	assert.Equal(t, models.EmergencyStatusPending, resp.Status)
}
