package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/shenikar/emergency_dispatch/pkg/postgres"
)

const emergencyColumns = `
	id,
	COALESCE(description, ''),
	COALESCE(severity, ''),
	COALESCE(latitude, 0),
	COALESCE(longitude, 0),
	ambulance_id,
	hospital_id,
	COALESCE(status, ''),
	created_at,
	updated_at`

type EmergencyRepository struct {
	db          postgres.DB
	redisClient redis.Cmdable
	cacheTTL    time.Duration
}

func NewEmergencyRepository(db postgres.DB, redisClient redis.Cmdable, cacheTTL time.Duration) service.EmergencyRepository {
	return &EmergencyRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func scanEmergency(row pgx.Row) (*models.Emergency, error) {
	emergency := &models.Emergency{}
	err := row.Scan(
		&emergency.ID,
		&emergency.Description,
		&emergency.Severity,
		&emergency.Latitude,
		&emergency.Longitude,
		&emergency.AmbulanceID,
		&emergency.HospitalID,
		&emergency.Status,
		&emergency.CreatedAt,
		&emergency.UpdatedAt,
	)
	return emergency, err
}

func cacheKey(id int64) string {
	return fmt.Sprintf("emergency:%d", id)
}

// Create создает новую запись о вызове в бд.
// ambulance_id и hospital_id пишутся как есть, без проверки существования.
func (r *EmergencyRepository) Create(ctx context.Context, emergency *models.Emergency) error {
	query := `
		INSERT INTO emergencies (description, severity, latitude, longitude, ambulance_id, hospital_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		emergency.Description,
		emergency.Severity,
		emergency.Latitude,
		emergency.Longitude,
		emergency.AmbulanceID,
		emergency.HospitalID,
		emergency.Status,
	).Scan(&emergency.ID, &emergency.CreatedAt, &emergency.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create emergency: %w", err)
	}
	return nil
}

// GetByID возвращает вызов по id
func (r *EmergencyRepository) GetByID(ctx context.Context, id int64) (*models.Emergency, error) {
	query := `SELECT` + emergencyColumns + `
		FROM emergencies
		WHERE id = $1;
	`
	emergency, err := scanEmergency(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("emergency with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get emergency by id: %w", err)
	}
	return emergency, nil
}

// List возвращает список вызовов с пагинацией, новые первыми
func (r *EmergencyRepository) List(ctx context.Context, page, pageSize int) ([]*models.Emergency, error) {
	offset := (page - 1) * pageSize

	query := `SELECT` + emergencyColumns + `
		FROM emergencies
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergencies: %w", err)
	}
	return collectEmergencies(rows)
}

// ListByAmbulance возвращает незавершенные вызовы, закрепленные за машиной
func (r *EmergencyRepository) ListByAmbulance(ctx context.Context, ambulanceID int64) ([]*models.Emergency, error) {
	query := `SELECT` + emergencyColumns + `
		FROM emergencies
		WHERE
			ambulance_id = $1
			AND status IS DISTINCT FROM 'completed'
		ORDER BY created_at DESC, id DESC;
	`
	rows, err := r.db.Query(ctx, query, ambulanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergencies by ambulance: %w", err)
	}
	return collectEmergencies(rows)
}

func collectEmergencies(rows pgx.Rows) ([]*models.Emergency, error) {
	defer rows.Close()

	emergencies := make([]*models.Emergency, 0)
	for rows.Next() {
		emergency, err := scanEmergency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency row: %w", err)
		}
		emergencies = append(emergencies, emergency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return emergencies, nil
}

func (r *EmergencyRepository) Update(ctx context.Context, emergency *models.Emergency) error {
	query := `
		UPDATE emergencies SET
			description = $1,
			severity = $2,
			latitude = $3,
			longitude = $4,
			ambulance_id = $5,
			hospital_id = $6,
			status = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		emergency.Description,
		emergency.Severity,
		emergency.Latitude,
		emergency.Longitude,
		emergency.AmbulanceID,
		emergency.HospitalID,
		emergency.Status,
		emergency.ID,
	).Scan(&emergency.CreatedAt, &emergency.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("emergency with id %d for update: %w", emergency.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update emergency: %w", err)
	}
	return nil
}

func (r *EmergencyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM emergencies WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete emergency: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("emergency with id %d for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// UpdateStatus меняет статус; если ambulanceID не передан, машина остается прежней
func (r *EmergencyRepository) UpdateStatus(ctx context.Context, id int64, status string, ambulanceID *int64) (*models.Emergency, error) {
	query := `
		UPDATE emergencies SET
			status = $1,
			ambulance_id = COALESCE($2, ambulance_id),
			updated_at = NOW()
		WHERE id = $3
		RETURNING` + emergencyColumns + `;`
	return r.returning(ctx, "update status of", id, query, status, ambulanceID, id)
}

// Assign записывает статус и машину, nil очищает ambulance_id
func (r *EmergencyRepository) Assign(ctx context.Context, id int64, status string, ambulanceID *int64) (*models.Emergency, error) {
	query := `
		UPDATE emergencies SET
			status = $1,
			ambulance_id = $2,
			updated_at = NOW()
		WHERE id = $3
		RETURNING` + emergencyColumns + `;`
	return r.returning(ctx, "assign", id, query, status, ambulanceID, id)
}

func (r *EmergencyRepository) returning(ctx context.Context, action string, id int64, query string, args ...any) (*models.Emergency, error) {
	emergency, err := scanEmergency(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("emergency with id %d to %s: %w", id, action, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to %s emergency: %w", action, err)
	}
	return emergency, nil
}

// GetEmergencyFromCache пытается получить вызов из Redis; промах - (nil, nil)
func (r *EmergencyRepository) GetEmergencyFromCache(ctx context.Context, id int64) (*models.Emergency, error) {
	val, err := r.redisClient.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get emergency from cache: %w", err)
	}

	emergency := &models.Emergency{}
	if err := json.Unmarshal(val, emergency); err != nil {
		return nil, fmt.Errorf("failed to unmarshal emergency from cache: %w", err)
	}
	return emergency, nil
}

// SetEmergencyCache сохраняет вызов в Redis
func (r *EmergencyRepository) SetEmergencyCache(ctx context.Context, emergency *models.Emergency) error {
	val, err := json.Marshal(emergency)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, cacheKey(emergency.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set emergency in cache: %w", err)
	}
	return nil
}

// InvalidateEmergencyCache удаляет вызов из Redis кеша
func (r *EmergencyRepository) InvalidateEmergencyCache(ctx context.Context, id int64) error {
	if err := r.redisClient.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate emergency cache: %w", err)
	}
	return nil
}
