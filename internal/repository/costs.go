package repository

import (
	"context"
	"time"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

func (r *Repository) CreateCost(cost *domain.Cost) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO costs (name, type, category, amount, unit, expected_volume, actual_volume, month, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, version
	`

	args := []any{cost.Name, cost.Type, cost.Category, cost.Amount, cost.Unit, cost.ExpectedVolume, cost.ActualVolume, cost.Month, cost.CreatedBy}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&cost.ID, &cost.CreatedAt, &cost.Version)
}

func (r *Repository) GetCostByID(id int64) (*domain.Cost, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT name, type, category, amount, unit, expected_volume, actual_volume, month, created_by, created_at, updated_by, updated_at, version
		FROM costs WHERE id = $1
	`

	cost := &domain.Cost{ID: id}
	dst := []any{&cost.Name, &cost.Type, &cost.Category, &cost.Amount, &cost.Unit, &cost.ExpectedVolume, &cost.ActualVolume, &cost.Month, &cost.CreatedBy, &cost.CreatedAt, &cost.UpdatedBy, &cost.UpdatedAt, &cost.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return cost, nil
}

// GetCostsByMonth lists the costs for one month, newest first, matching
// the finance screen's default ordering.
func (r *Repository) GetCostsByMonth(month string) ([]*domain.Cost, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, type, category, amount, unit, expected_volume, actual_volume, month, created_by, created_at, updated_by, updated_at, version
		FROM costs
		WHERE month = $1
		ORDER BY created_at DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	costs := make([]*domain.Cost, 0)
	for rows.Next() {
		cost := &domain.Cost{}
		dst := []any{&cost.ID, &cost.Name, &cost.Type, &cost.Category, &cost.Amount, &cost.Unit, &cost.ExpectedVolume, &cost.ActualVolume, &cost.Month, &cost.CreatedBy, &cost.CreatedAt, &cost.UpdatedBy, &cost.UpdatedAt, &cost.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		costs = append(costs, cost)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return costs, nil
}

func (r *Repository) UpdateCost(cost *domain.Cost) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE costs
		SET
			name = $1,
			type = $2,
			category = $3,
			amount = $4,
			unit = $5,
			expected_volume = $6,
			actual_volume = $7,
			month = $8,
			updated_by = $9,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $10 AND version = $11
		RETURNING updated_at, version
	`

	args := []any{cost.Name, cost.Type, cost.Category, cost.Amount, cost.Unit, cost.ExpectedVolume, cost.ActualVolume, cost.Month, cost.UpdatedBy, cost.ID, cost.Version}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&cost.UpdatedAt, &cost.Version)
}

func (r *Repository) DeleteCost(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, `DELETE FROM costs WHERE id = $1`, id)
	return err
}
