package postgres

import (
	"context"
	"database/sql"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/repository"
)

// paymentRepository is append-only: there is deliberately no update or
// delete method on the ledger.
type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, rec *domain.PaymentRecord) error {
	query := `INSERT INTO payments (id, email, amount_cents, transaction_id, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.Email, rec.AmountCents, rec.TransactionID, rec.Status, rec.CreatedAt)
	return err
}

func (r *paymentRepository) List(ctx context.Context, sortDesc bool) ([]domain.PaymentRecord, error) {
	query := `SELECT id, email, amount_cents, transaction_id, status, created_at FROM payments ORDER BY created_at`
	if sortDesc {
		query += " DESC"
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.PaymentRecord
	for rows.Next() {
		var rec domain.PaymentRecord
		if err := rows.Scan(&rec.ID, &rec.Email, &rec.AmountCents, &rec.TransactionID, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *paymentRepository) TotalCents(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount_cents), 0) FROM payments`).Scan(&total)
	return total, err
}
