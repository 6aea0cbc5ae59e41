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

const hospitalColumns = `
	id,
	COALESCE(name, ''),
	COALESCE(latitude, 0),
	COALESCE(longitude, 0),
	COALESCE(icu_available, 0),
	COALESCE(beds_available, 0)`

type HospitalRepository struct {
	db postgres.DB
}

func NewHospitalRepository(db postgres.DB) service.HospitalRepository {
	return &HospitalRepository{db: db}
}

func scanHospital(row pgx.Row) (*models.Hospital, error) {
	hospital := &models.Hospital{}
	err := row.Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Latitude,
		&hospital.Longitude,
		&hospital.ICUAvailable,
		&hospital.BedsAvailable,
	)
	return hospital, err
}

// Create создает новую запись о больнице в бд
func (r *HospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	query := `
		INSERT INTO hospitals (name, latitude, longitude, icu_available, beds_available)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		hospital.Name,
		hospital.Latitude,
		hospital.Longitude,
		hospital.ICUAvailable,
		hospital.BedsAvailable,
	).Scan(&hospital.ID)
	if err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}
	return nil
}

// GetByID возвращает больницу по id
func (r *HospitalRepository) GetByID(ctx context.Context, id int64) (*models.Hospital, error) {
	query := `SELECT` + hospitalColumns + `
		FROM hospitals
		WHERE id = $1;
	`
	hospital, err := scanHospital(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("hospital with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get hospital by id: %w", err)
	}
	return hospital, nil
}

// List возвращает список больниц с пагинацией
func (r *HospitalRepository) List(ctx context.Context, page, pageSize int) ([]*models.Hospital, error) {
	offset := (page - 1) * pageSize

	query := `SELECT` + hospitalColumns + `
		FROM hospitals
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	defer rows.Close()

	hospitals := make([]*models.Hospital, 0)
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w", err)
		}
		hospitals = append(hospitals, hospital)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return hospitals, nil
}

func (r *HospitalRepository) Update(ctx context.Context, hospital *models.Hospital) error {
	query := `
		UPDATE hospitals SET
			name = $1,
			latitude = $2,
			longitude = $3,
			icu_available = $4,
			beds_available = $5
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		hospital.Name,
		hospital.Latitude,
		hospital.Longitude,
		hospital.ICUAvailable,
		hospital.BedsAvailable,
		hospital.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update hospital: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("hospital with id %d for update: %w", hospital.ID, models.ErrNotFound)
	}
	return nil
}

func (r *HospitalRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM hospitals WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hospital: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("hospital with id %d for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// UpdateBeds перезаписывает счетчики свободных мест. Отрицательные значения не отсекаются.
func (r *HospitalRepository) UpdateBeds(ctx context.Context, id int64, icuAvailable, bedsAvailable int) error {
	query := `
		UPDATE hospitals SET
			icu_available = $1,
			beds_available = $2
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, icuAvailable, bedsAvailable, id)
	if err != nil {
		return fmt.Errorf("failed to update hospital beds: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("hospital with id %d for beds update: %w", id, models.ErrNotFound)
	}
	return nil
}
