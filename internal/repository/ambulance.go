package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/shenikar/emergency_dispatch/pkg/postgres"
)

type AmbulanceRepository struct {
	db postgres.DB
}

func NewAmbulanceRepository(db postgres.DB) service.AmbulanceRepository {
	return &AmbulanceRepository{db: db}
}

// Create создает запись о машине, id назначает бд
func (r *AmbulanceRepository) Create(ctx context.Context, ambulance *models.Ambulance) error {
	query := `
		INSERT INTO ambulances (latitude, longitude, status)
		VALUES ($1, $2, $3) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		ambulance.Latitude,
		ambulance.Longitude,
		ambulance.Status,
	).Scan(&ambulance.ID)
	if err != nil {
		return fmt.Errorf("failed to create ambulance: %w", err)
	}
	return nil
}

// GetByID возвращает машину по id
func (r *AmbulanceRepository) GetByID(ctx context.Context, id int64) (*models.Ambulance, error) {
	ambulance := &models.Ambulance{}
	query := `
		SELECT
			id,
			COALESCE(latitude, 0),
			COALESCE(longitude, 0),
			COALESCE(status, '')
		FROM ambulances
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ambulance.ID,
		&ambulance.Latitude,
		&ambulance.Longitude,
		&ambulance.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ambulance with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ambulance by id: %w", err)
	}
	return ambulance, nil
}

// List возвращает список машин с пагинацией
func (r *AmbulanceRepository) List(ctx context.Context, page, pageSize int) ([]*models.Ambulance, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			COALESCE(latitude, 0),
			COALESCE(longitude, 0),
			COALESCE(status, '')
		FROM ambulances
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ambulances: %w", err)
	}
	defer rows.Close()

	ambulances := make([]*models.Ambulance, 0)
	for rows.Next() {
		ambulance := &models.Ambulance{}
		if err := rows.Scan(
			&ambulance.ID,
			&ambulance.Latitude,
			&ambulance.Longitude,
			&ambulance.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ambulance row: %w", err)
		}
		ambulances = append(ambulances, ambulance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return ambulances, nil
}

func (r *AmbulanceRepository) Update(ctx context.Context, ambulance *models.Ambulance) error {
	query := `
		UPDATE ambulances SET
			latitude = $1,
			longitude = $2,
			status = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		ambulance.Latitude,
		ambulance.Longitude,
		ambulance.Status,
		ambulance.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ambulance: %w", err)
	}

	// RowsAffected() == 0 значит машины с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ambulance with id %d for update: %w", ambulance.ID, models.ErrNotFound)
	}
	return nil
}

func (r *AmbulanceRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM ambulances WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ambulance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ambulance with id %d for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// UpdateLocation обновляет только координаты машины
func (r *AmbulanceRepository) UpdateLocation(ctx context.Context, id int64, lat, lon float64) error {
	query := `
		UPDATE ambulances SET
			latitude = $1,
			longitude = $2
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, lat, lon, id)
	if err != nil {
		return fmt.Errorf("failed to update ambulance location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ambulance with id %d for location update: %w", id, models.ErrNotFound)
	}
	return nil
}
