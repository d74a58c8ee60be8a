package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/repository"

	"github.com/lib/pq"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, email, name, avatar_url, role, status, blood_group, district, upazila, created_at, last_login_at`

func scanAccount(row interface{ Scan(...any) error }) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(&a.ID, &a.Email, &a.Name, &a.AvatarURL, &a.Role, &a.Status, &a.BloodGroup, &a.District, &a.Upazila, &a.CreatedAt, &a.LastLoginAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) Create(ctx context.Context, acct *domain.Account) error {
	query := `INSERT INTO accounts (email, name, avatar_url, role, status, blood_group, district, upazila, created_at, last_login_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		acct.Email, acct.Name, acct.AvatarURL, acct.Role, acct.Status,
		acct.BloodGroup, acct.District, acct.Upazila, acct.CreatedAt, acct.LastLoginAt,
	).Scan(&acct.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("account %s already exists: %w", acct.Email, domain.ErrInvalidInput)
	}
	return err
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (class 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	acct, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}
	return acct, err
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	acct, err := scanAccount(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", email, domain.ErrNotFound)
	}
	return acct, err
}

func (r *accountRepository) UpdateProfile(ctx context.Context, email string, patch domain.AccountPatch) (bool, error) {
	sets := []string{}
	args := []interface{}{}
	idx := 1
	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.AvatarURL != nil {
		add("avatar_url", *patch.AvatarURL)
	}
	if patch.BloodGroup != nil {
		add("blood_group", *patch.BloodGroup)
	}
	if patch.District != nil {
		add("district", *patch.District)
	}
	if patch.Upazila != nil {
		add("upazila", *patch.Upazila)
	}
	if len(sets) == 0 {
		return false, nil
	}

	query := fmt.Sprintf("UPDATE accounts SET %s WHERE email = $%d", strings.Join(sets, ", "), idx)
	args = append(args, email)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *accountRepository) UpdateRoleStatus(ctx context.Context, id int64, role *domain.Role, status *domain.AccountStatus) (bool, error) {
	sets := []string{}
	args := []interface{}{}
	idx := 1
	if role != nil {
		sets = append(sets, fmt.Sprintf("role = $%d", idx))
		args = append(args, *role)
		idx++
	}
	if status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", idx))
		args = append(args, *status)
		idx++
	}
	if len(sets) == 0 {
		return false, nil
	}

	query := fmt.Sprintf("UPDATE accounts SET %s WHERE id = $%d", strings.Join(sets, ", "), idx)
	args = append(args, id)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}
	return true, nil
}

func (r *accountRepository) TouchLastLogin(ctx context.Context, email string) error {
	query := `UPDATE accounts SET last_login_at = now() WHERE email = $1`
	res, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("account %s: %w", email, domain.ErrNotFound)
	}
	return nil
}

func (r *accountRepository) SearchDonors(ctx context.Context, bloodGroup, district, upazila string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
	          WHERE role = 'donor' AND status = 'active' AND blood_group = $1 AND district = $2 AND upazila = $3
	          ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, bloodGroup, district, upazila)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acct)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) List(ctx context.Context, status domain.AccountStatus, page, pageSize int64) ([]domain.Account, int64, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + accountColumns + ` FROM accounts`
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
		argIdx++
	}

	var count int64
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, *acct)
	}
	return accounts, count, rows.Err()
}

func (r *accountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM accounts`).Scan(&count)
	return count, err
}
