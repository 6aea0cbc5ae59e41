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

type VolunteerRepository struct {
	db postgres.DB
}

func NewVolunteerRepository(db postgres.DB) service.VolunteerRepository {
	return &VolunteerRepository{db: db}
}

func (r *VolunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	query := `
		INSERT INTO volunteers (latitude, longitude, available)
		VALUES ($1, $2, $3) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		volunteer.Latitude,
		volunteer.Longitude,
		volunteer.Available,
	).Scan(&volunteer.ID)
	if err != nil {
		return fmt.Errorf("failed to create volunteer: %w", err)
	}
	return nil
}

func (r *VolunteerRepository) GetByID(ctx context.Context, id int64) (*models.Volunteer, error) {
	volunteer := &models.Volunteer{}
	query := `
		SELECT
			id,
			COALESCE(latitude, 0),
			COALESCE(longitude, 0),
			COALESCE(available, '')
		FROM volunteers
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&volunteer.ID,
		&volunteer.Latitude,
		&volunteer.Longitude,
		&volunteer.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("volunteer with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get volunteer by id: %w", err)
	}
	return volunteer, nil
}

// List возвращает список волонтеров с пагинацией
func (r *VolunteerRepository) List(ctx context.Context, page, pageSize int) ([]*models.Volunteer, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			COALESCE(latitude, 0),
			COALESCE(longitude, 0),
			COALESCE(available, '')
		FROM volunteers
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	defer rows.Close()

	volunteers := make([]*models.Volunteer, 0)
	for rows.Next() {
		volunteer := &models.Volunteer{}
		if err := rows.Scan(
			&volunteer.ID,
			&volunteer.Latitude,
			&volunteer.Longitude,
			&volunteer.Available,
		); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer row: %w", err)
		}
		volunteers = append(volunteers, volunteer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return volunteers, nil
}

func (r *VolunteerRepository) Update(ctx context.Context, volunteer *models.Volunteer) error {
	query := `
		UPDATE volunteers SET
			latitude = $1,
			longitude = $2,
			available = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		volunteer.Latitude,
		volunteer.Longitude,
		volunteer.Available,
		volunteer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update volunteer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("volunteer with id %d for update: %w", volunteer.ID, models.ErrNotFound)
	}
	return nil
}

func (r *VolunteerRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM volunteers WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete volunteer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("volunteer with id %d for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// UpdateLocation обновляет только координаты волонтера
func (r *VolunteerRepository) UpdateLocation(ctx context.Context, id int64, lat, lon float64) error {
	query := `
		UPDATE volunteers SET
			latitude = $1,
			longitude = $2
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, lat, lon, id)
	if err != nil {
		return fmt.Errorf("failed to update volunteer location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("volunteer with id %d for location update: %w", id, models.ErrNotFound)
	}
	return nil
}
