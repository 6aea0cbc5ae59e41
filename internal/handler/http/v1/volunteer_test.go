package v1

import (
	"net/http"
	"testing"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestVolunteerEndpoints(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.volunteers.EXPECT().
			CreateVolunteer(gomock.Any(), &models.Volunteer{Latitude: 1, Longitude: 2, Available: "yes"}).
			Return(nil).
			Times(1)

		w := makeRequest(router, http.MethodPost, "/api/v1/volunteers", jsonBody(t, VolunteerRequest{Latitude: 1, Longitude: 2, Available: "yes"}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Get", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.volunteers.EXPECT().GetVolunteer(gomock.Any(), int64(2)).Return(&models.Volunteer{ID: 2, Available: "no"}, nil).Times(1)

		w := makeRequest(router, http.MethodGet, "/api/v1/volunteers/2", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id": 2, "latitude": 0, "longitude": 0, "available": "no"}`, w.Body.String())
	})

	t.Run("List", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.volunteers.EXPECT().ListVolunteers(gomock.Any(), 3, 10).Return(nil, nil).Times(1)

		w := makeRequest(router, http.MethodGet, "/api/v1/volunteers?page=3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Update not found", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.volunteers.EXPECT().UpdateVolunteer(gomock.Any(), gomock.Any()).Return(models.ErrNotFound).Times(1)

		w := makeRequest(router, http.MethodPut, "/api/v1/volunteers/8", jsonBody(t, VolunteerRequest{}))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "volunteer not found"}`, w.Body.String())
	})

	t.Run("Delete", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.volunteers.EXPECT().DeleteVolunteer(gomock.Any(), int64(8)).Return(nil).Times(1)

		w := makeRequest(router, http.MethodDelete, "/api/v1/volunteers/8", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Update location", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.volunteers.EXPECT().UpdateLocation(gomock.Any(), int64(8), 10.5, 20.5).Return(nil).Times(1)

		w := makeRequest(router, http.MethodPut, "/api/v1/volunteers/8/location", jsonBody(t, LocationRequest{Latitude: 10.5, Longitude: 20.5}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id": 8, "latitude": 10.5, "longitude": 20.5}`, w.Body.String())
	})
}
