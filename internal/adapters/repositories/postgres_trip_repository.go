package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/ports"
)

// Postgres-backed implementation of the TripRepository port. The full plan is
// stored as a JSONB document; id, name, status and timestamps are lifted into
// columns for filtering and ordering.
type PostgresTripRepository struct{ DB *sql.DB }

func NewPostgresTripRepository(db *sql.DB) *PostgresTripRepository {
	return &PostgresTripRepository{DB: db}
}

func (r *PostgresTripRepository) Create(ctx context.Context, plan *domain.TripPlan) error {
	if r.DB == nil {
		return errors.New("postgres trip repository: DB is nil")
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("create trip: encode plan: %w", err)
	}

	query := `
	INSERT INTO trips (id, name, status, data, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = r.DB.ExecContext(ctx, query,
		plan.ID, plan.Name, string(plan.Status), data, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create trip %q: %w", plan.ID, err)
	}

	return nil
}

func (r *PostgresTripRepository) Get(ctx context.Context, id string) (*domain.TripPlan, error) {
	if r.DB == nil {
		return nil, errors.New("postgres trip repository: DB is nil")
	}

	query := `SELECT data FROM trips WHERE id = $1;`

	var data []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %q: %w", id, err)
	}

	var plan domain.TripPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("get trip %q: decode plan: %w", id, err)
	}

	return &plan, nil
}

func (r *PostgresTripRepository) Update(ctx context.Context, plan *domain.TripPlan) error {
	if r.DB == nil {
		return errors.New("postgres trip repository: DB is nil")
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("update trip: encode plan: %w", err)
	}

	query := `
	UPDATE trips
	SET name = $2, status = $3, data = $4, updated_at = $5
	WHERE id = $1;
	`
	res, err := r.DB.ExecContext(ctx, query,
		plan.ID, plan.Name, string(plan.Status), data, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update trip %q: %w", plan.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update trip %q: rows affected: %w", plan.ID, err)
	}
	if affected == 0 {
		return ports.ErrTripNotFound
	}

	return nil
}

func (r *PostgresTripRepository) Delete(ctx context.Context, id string) error {
	if r.DB == nil {
		return errors.New("postgres trip repository: DB is nil")
	}

	res, err := r.DB.ExecContext(ctx, `DELETE FROM trips WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete trip %q: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete trip %q: rows affected: %w", id, err)
	}
	if affected == 0 {
		return ports.ErrTripNotFound
	}

	return nil
}

func (r *PostgresTripRepository) List(ctx context.Context, filter ports.TripFilter) ([]*domain.TripPlan, error) {
	if r.DB == nil {
		return nil, errors.New("postgres trip repository: DB is nil")
	}

	query := `SELECT data FROM trips`
	args := []any{}
	if filter.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY updated_at DESC;`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.TripPlan, 0, 16)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("list trips: scan row: %w", err)
		}

		var plan domain.TripPlan
		if err := json.Unmarshal(data, &plan); err != nil {
			return nil, fmt.Errorf("list trips: decode plan: %w", err)
		}
		trips = append(trips, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}
