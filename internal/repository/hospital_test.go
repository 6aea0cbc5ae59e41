package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hospitalRowColumns = []string{"id", "name", "latitude", "longitude", "icu_available", "beds_available"}

func newTestHospitalRepository(t *testing.T) (*HospitalRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	return NewHospitalRepository(mockPool).(*HospitalRepository), mockPool
}

func TestHospitalRepository_Create(t *testing.T) {
	repo, mockPool := newTestHospitalRepository(t)
	hospital := &models.Hospital{Name: "City", Latitude: 1, Longitude: 2, ICUAvailable: 3, BedsAvailable: 40}

	mockPool.ExpectQuery("INSERT INTO hospitals").
		WithArgs("City", 1.0, 2.0, 3, 40).
		WillReturnRows(mockPool.NewRows([]string{"id"}).AddRow(int64(12)))

	require.NoError(t, repo.Create(context.Background(), hospital))
	assert.Equal(t, int64(12), hospital.ID)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestHospitalRepository_GetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mockPool := newTestHospitalRepository(t)

		mockPool.ExpectQuery("FROM hospitals").
			WithArgs(int64(12)).
			WillReturnRows(mockPool.NewRows(hospitalRowColumns).AddRow(int64(12), "City", 1.0, 2.0, 3, 40))

		hospital, err := repo.GetByID(context.Background(), 12)

		require.NoError(t, err)
		assert.Equal(t, &models.Hospital{ID: 12, Name: "City", Latitude: 1, Longitude: 2, ICUAvailable: 3, BedsAvailable: 40}, hospital)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mockPool := newTestHospitalRepository(t)

		mockPool.ExpectQuery("FROM hospitals").
			WithArgs(int64(13)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 13)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mockPool := newTestHospitalRepository(t)
		dbError := errors.New("timeout")

		mockPool.ExpectQuery("FROM hospitals").
			WithArgs(int64(14)).
			WillReturnError(dbError)

		_, err := repo.GetByID(context.Background(), 14)
		assert.ErrorIs(t, err, dbError)
		assert.NotErrorIs(t, err, models.ErrNotFound)
	})
}

func TestHospitalRepository_List(t *testing.T) {
	repo, mockPool := newTestHospitalRepository(t)

	mockPool.ExpectQuery("FROM hospitals").
		WithArgs(20, 0).
		WillReturnRows(mockPool.NewRows(hospitalRowColumns).
			AddRow(int64(1), "A", 0.0, 0.0, 0, 0).
			AddRow(int64(2), "B", 0.0, 0.0, 1, 1))

	hospitals, err := repo.List(context.Background(), 1, 20)

	require.NoError(t, err)
	assert.Len(t, hospitals, 2)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestHospitalRepository_Update_NotFound(t *testing.T) {
	repo, mockPool := newTestHospitalRepository(t)

	mockPool.ExpectExec("UPDATE hospitals SET").
		WithArgs("X", 0.0, 0.0, 0, 0, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &models.Hospital{ID: 99, Name: "X"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestHospitalRepository_UpdateBeds(t *testing.T) {
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
			repo, mockPool := newTestHospitalRepository(t)

			// Отрицательные значения пишутся без проверки
			mockPool.ExpectExec("UPDATE hospitals SET").
				WithArgs(-1, 5, int64(12)).
				WillReturnResult(pgxmock.NewResult("UPDATE", tc.rows))

			err := repo.UpdateBeds(context.Background(), 12, -1, 5)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockPool.ExpectationsWereMet())
		})
	}
}

func TestHospitalRepository_Delete(t *testing.T) {
	repo, mockPool := newTestHospitalRepository(t)

	mockPool.ExpectExec("DELETE FROM hospitals").
		WithArgs(int64(12)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), 12))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
