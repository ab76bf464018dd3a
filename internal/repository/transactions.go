package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

func (r *Repository) CreateTransaction(txn *domain.Transaction) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO transactions (type, category, custom_category, amount_net, gst_applied, amount_gross, payment_method, description, client_name, txn_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	args := []any{
		txn.Type, txn.Category, txn.CustomCategory,
		txn.AmountNet, txn.GSTApplied, txn.AmountGross,
		txn.PaymentMethod, txn.Description, txn.ClientName,
		txn.Date, txn.CreatedBy,
	}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&txn.ID, &txn.CreatedAt)
}

// TransactionFilters narrows GetTransactions. Zero values mean "no
// filter"; filtering happens in SQL so the handler never post-filters.
type TransactionFilters struct {
	Type     domain.TransactionType
	Category domain.TransactionCategory
	From     *time.Time
	To       *time.Time
}

func (r *Repository) GetTransactions(filters TransactionFilters) ([]*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, type, category, custom_category, amount_net, gst_applied, amount_gross, payment_method, description, client_name, txn_date, created_by, created_at
		FROM transactions
		WHERE 1 = 1
	`
	args := []any{}

	if filters.Type != "" {
		args = append(args, filters.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filters.Category != "" {
		args = append(args, filters.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filters.From != nil {
		args = append(args, *filters.From)
		query += fmt.Sprintf(" AND txn_date >= $%d", len(args))
	}
	if filters.To != nil {
		args = append(args, *filters.To)
		query += fmt.Sprintf(" AND txn_date <= $%d", len(args))
	}

	query += " ORDER BY txn_date DESC, id DESC"

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := make([]*domain.Transaction, 0)
	for rows.Next() {
		txn := &domain.Transaction{}
		dst := []any{
			&txn.ID, &txn.Type, &txn.Category, &txn.CustomCategory,
			&txn.AmountNet, &txn.GSTApplied, &txn.AmountGross,
			&txn.PaymentMethod, &txn.Description, &txn.ClientName,
			&txn.Date, &txn.CreatedBy, &txn.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return txns, nil
}

// GetMonthlyRevenue sums net inflows for the given month ("YYYY-MM").
func (r *Repository) GetMonthlyRevenue(month string) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT COALESCE(SUM(amount_net), 0)
		FROM transactions
		WHERE type = $1 AND to_char(txn_date, 'YYYY-MM') = $2
	`

	var revenue decimal.Decimal
	if err := r.dbpool.QueryRowContext(ctx, query, domain.TransactionInflow, month).Scan(&revenue); err != nil {
		return decimal.Zero, err
	}

	return revenue, nil
}

func (r *Repository) CountTransactions() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var count int64
	if err := r.dbpool.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
