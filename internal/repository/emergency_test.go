package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var emergencyRowColumns = []string{
	"id", "description", "severity", "latitude", "longitude",
	"ambulance_id", "hospital_id", "status", "created_at", "updated_at",
}

func newTestEmergencyRepository(t *testing.T) (*EmergencyRepository, pgxmock.PgxPoolIface, *miniredis.Miniredis) {
	t.Helper()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	repo := NewEmergencyRepository(mockPool, rdb, time.Minute)
	return repo.(*EmergencyRepository), mockPool, mr
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestEmergencyRepository_Create(t *testing.T) {
	t.Run("Stores unknown ambulance and hospital ids as is", func(t *testing.T) {
		repo, mockPool, _ := newTestEmergencyRepository(t)
		now := time.Now()
		emergency := &models.Emergency{
			Description: "Пожар",
			Severity:    "high",
			Latitude:    55.7,
			Longitude:   37.6,
			AmbulanceID: int64Ptr(999999),
			HospitalID:  int64Ptr(888888),
			Status:      models.EmergencyStatusPending,
		}

		mockPool.ExpectQuery("INSERT INTO emergencies").
			WithArgs("Пожар", "high", 55.7, 37.6, int64Ptr(999999), int64Ptr(888888), models.EmergencyStatusPending).
			WillReturnRows(mockPool.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

		err := repo.Create(context.Background(), emergency)

		require.NoError(t, err)
		assert.Equal(t, int64(1), emergency.ID)
		assert.Equal(t, now, emergency.CreatedAt)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mockPool, _ := newTestEmergencyRepository(t)

		mockPool.ExpectQuery("INSERT INTO emergencies").
			WithArgs(
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			).
			WillReturnError(errors.New("connection refused"))

		err := repo.Create(context.Background(), &models.Emergency{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create emergency")
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestEmergencyRepository_GetByID(t *testing.T) {
	t.Run("Success with null references", func(t *testing.T) {
		repo, mockPool, _ := newTestEmergencyRepository(t)
		now := time.Now()
		var nilID *int64

		mockPool.ExpectQuery("FROM emergencies").
			WithArgs(int64(5)).
			WillReturnRows(mockPool.NewRows(emergencyRowColumns).
				AddRow(int64(5), "ДТП", "critical", 1.5, 2.5, nilID, nilID, "pending", now, now))

		emergency, err := repo.GetByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), emergency.ID)
		assert.Equal(t, "ДТП", emergency.Description)
		assert.Nil(t, emergency.AmbulanceID)
		assert.Nil(t, emergency.HospitalID)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mockPool, _ := newTestEmergencyRepository(t)

		mockPool.ExpectQuery("FROM emergencies").
			WithArgs(int64(6)).
			WillReturnError(pgx.ErrNoRows)

		emergency, err := repo.GetByID(context.Background(), 6)

		assert.Nil(t, emergency)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestEmergencyRepository_List(t *testing.T) {
	repo, mockPool, _ := newTestEmergencyRepository(t)
	now := time.Now()

	mockPool.ExpectQuery("ORDER BY created_at DESC, id DESC").
		WithArgs(10, 20).
		WillReturnRows(mockPool.NewRows(emergencyRowColumns).
			AddRow(int64(2), "b", "low", 0.0, 0.0, int64Ptr(1), (*int64)(nil), "accepted", now, now).
			AddRow(int64(1), "a", "low", 0.0, 0.0, (*int64)(nil), (*int64)(nil), "pending", now, now))

	emergencies, err := repo.List(context.Background(), 3, 10)

	require.NoError(t, err)
	require.Len(t, emergencies, 2)
	assert.Equal(t, int64(2), emergencies[0].ID)
	assert.Equal(t, int64(1), *emergencies[0].AmbulanceID)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestEmergencyRepository_ListByAmbulance(t *testing.T) {
	repo, mockPool, _ := newTestEmergencyRepository(t)

	mockPool.ExpectQuery(regexp.QuoteMeta("status IS DISTINCT FROM 'completed'")).
		WithArgs(int64(4)).
		WillReturnRows(mockPool.NewRows(emergencyRowColumns))

	emergencies, err := repo.ListByAmbulance(context.Background(), 4)

	require.NoError(t, err)
	assert.NotNil(t, emergencies)
	assert.Empty(t, emergencies)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestEmergencyRepository_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mockPool, _ := newTestEmergencyRepository(t)
		created := time.Now().Add(-time.Hour)
		updated := time.Now()
		emergency := &models.Emergency{ID: 3, Description: "d", Severity: "s", Status: "completed"}

		mockPool.ExpectQuery("UPDATE emergencies SET").
			WithArgs("d", "s", 0.0, 0.0, (*int64)(nil), (*int64)(nil), "completed", int64(3)).
			WillReturnRows(mockPool.NewRows([]string{"created_at", "updated_at"}).AddRow(created, updated))

		require.NoError(t, repo.Update(context.Background(), emergency))
		assert.Equal(t, updated, emergency.UpdatedAt)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mockPool, _ := newTestEmergencyRepository(t)

		mockPool.ExpectQuery("UPDATE emergencies SET").
			WithArgs(
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), int64(3),
			).
			WillReturnError(pgx.ErrNoRows)

		err := repo.Update(context.Background(), &models.Emergency{ID: 3})
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestEmergencyRepository_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "Success", rows: 1},
		{name: "Not found", rows: 0, wantErr: models.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockPool, _ := newTestEmergencyRepository(t)

			mockPool.ExpectExec("DELETE FROM emergencies").
				WithArgs(int64(9)).
				WillReturnResult(pgxmock.NewResult("DELETE", tc.rows))

			err := repo.Delete(context.Background(), 9)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockPool.ExpectationsWereMet())
		})
	}
}

func TestEmergencyRepository_UpdateStatus(t *testing.T) {
	t.Run("Keeps current ambulance when none given", func(t *testing.T) {
		repo, mockPool, _ := newTestEmergencyRepository(t)
		now := time.Now()

		mockPool.ExpectQuery(regexp.QuoteMeta("ambulance_id = COALESCE($2, ambulance_id)")).
			WithArgs("en_route", (*int64)(nil), int64(7)).
			WillReturnRows(mockPool.NewRows(emergencyRowColumns).
				AddRow(int64(7), "", "", 0.0, 0.0, int64Ptr(2), (*int64)(nil), "en_route", now, now))

		emergency, err := repo.UpdateStatus(context.Background(), 7, "en_route", nil)

		require.NoError(t, err)
		assert.Equal(t, "en_route", emergency.Status)
		assert.Equal(t, int64(2), *emergency.AmbulanceID)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mockPool, _ := newTestEmergencyRepository(t)

		mockPool.ExpectQuery("UPDATE emergencies SET").
			WithArgs("completed", pgxmock.AnyArg(), int64(7)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.UpdateStatus(context.Background(), 7, "completed", nil)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestEmergencyRepository_Assign(t *testing.T) {
	repo, mockPool, _ := newTestEmergencyRepository(t)
	now := time.Now()

	mockPool.ExpectQuery(regexp.QuoteMeta("ambulance_id = $2,")).
		WithArgs(models.EmergencyStatusPending, (*int64)(nil), int64(7)).
		WillReturnRows(mockPool.NewRows(emergencyRowColumns).
			AddRow(int64(7), "", "", 0.0, 0.0, (*int64)(nil), (*int64)(nil), models.EmergencyStatusPending, now, now))

	emergency, err := repo.Assign(context.Background(), 7, models.EmergencyStatusPending, nil)

	require.NoError(t, err)
	assert.Nil(t, emergency.AmbulanceID)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestEmergencyRepository_Cache(t *testing.T) {
	repo, _, mr := newTestEmergencyRepository(t)
	ctx := context.Background()

	// Промах кеша не считается ошибкой
	cached, err := repo.GetEmergencyFromCache(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, cached)

	emergency := &models.Emergency{ID: 1, Description: "Вызов", AmbulanceID: int64Ptr(3), Status: "accepted"}
	require.NoError(t, repo.SetEmergencyCache(ctx, emergency))

	assert.True(t, mr.Exists("emergency:1"))
	assert.Equal(t, time.Minute, mr.TTL("emergency:1"))

	cached, err = repo.GetEmergencyFromCache(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Вызов", cached.Description)
	assert.Equal(t, int64(3), *cached.AmbulanceID)

	require.NoError(t, repo.InvalidateEmergencyCache(ctx, 1))
	assert.False(t, mr.Exists("emergency:1"))
}

func TestEmergencyRepository_CacheCorruptedValue(t *testing.T) {
	repo, _, mr := newTestEmergencyRepository(t)

	require.NoError(t, mr.Set("emergency:2", "не json"))

	cached, err := repo.GetEmergencyFromCache(context.Background(), 2)

	require.Error(t, err)
	assert.Nil(t, cached)
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}
