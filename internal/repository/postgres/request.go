package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, requester_email, requester_name, recipient_name, recipient_district, recipient_upazila,
	hospital_name, full_address, blood_group, donation_date, donation_time, request_message,
	status, donor_name, donor_email, created_at`

func scanRequest(row interface{ Scan(...any) error }) (*domain.DonationRequest, error) {
	req := &domain.DonationRequest{}
	err := row.Scan(
		&req.ID, &req.RequesterEmail, &req.RequesterName, &req.RecipientName, &req.RecipientDistrict,
		&req.RecipientUpazila, &req.HospitalName, &req.FullAddress, &req.BloodGroup, &req.DonationDate,
		&req.DonationTime, &req.RequestMessage, &req.Status, &req.DonorName, &req.DonorEmail, &req.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) Create(ctx context.Context, req *domain.DonationRequest) error {
	query := `INSERT INTO donation_requests (requester_email, requester_name, recipient_name, recipient_district, recipient_upazila,
	            hospital_name, full_address, blood_group, donation_date, donation_time, request_message, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		req.RequesterEmail, req.RequesterName, req.RecipientName, req.RecipientDistrict, req.RecipientUpazila,
		req.HospitalName, req.FullAddress, req.BloodGroup, req.DonationDate, req.DonationTime,
		req.RequestMessage, req.Status, req.CreatedAt,
	).Scan(&req.ID)
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.DonationRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM donation_requests WHERE id = $1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("donation request %d: %w", id, domain.ErrNotFound)
	}
	return req, err
}

// Claim is the one operation with a real concurrency hazard: the transition
// to inprogress happens only if the stored status is still pending at the
// moment of the write. The predicate makes the update a compare-and-set on a
// single row; no application-level locking, no read-then-write.
func (r *requestRepository) Claim(ctx context.Context, id int64, donorName, donorEmail string) error {
	query := `UPDATE donation_requests SET status = $1, donor_name = $2, donor_email = $3
	          WHERE id = $4 AND status = $5`
	res, err := r.db.ExecContext(ctx, query, domain.RequestStatusInProgress, donorName, donorEmail, id, domain.RequestStatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Lost the race, or the request was canceled. Either way it is no
		// longer pending.
		return fmt.Errorf("donation request %d: %w", id, domain.ErrAlreadyClaimed)
	}
	return nil
}

func (r *requestRepository) Update(ctx context.Context, id int64, patch domain.RequestPatch) (bool, error) {
	sets := []string{}
	args := []interface{}{}
	idx := 1
	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}
	if patch.RecipientName != nil {
		add("recipient_name", *patch.RecipientName)
	}
	if patch.RecipientDistrict != nil {
		add("recipient_district", *patch.RecipientDistrict)
	}
	if patch.RecipientUpazila != nil {
		add("recipient_upazila", *patch.RecipientUpazila)
	}
	if patch.HospitalName != nil {
		add("hospital_name", *patch.HospitalName)
	}
	if patch.FullAddress != nil {
		add("full_address", *patch.FullAddress)
	}
	if patch.BloodGroup != nil {
		add("blood_group", *patch.BloodGroup)
	}
	if patch.DonationDate != nil {
		add("donation_date", *patch.DonationDate)
	}
	if patch.DonationTime != nil {
		add("donation_time", *patch.DonationTime)
	}
	if patch.RequestMessage != nil {
		add("request_message", *patch.RequestMessage)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if len(sets) == 0 {
		return false, nil
	}

	query := fmt.Sprintf("UPDATE donation_requests SET %s WHERE id = $%d", strings.Join(sets, ", "), idx)
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
		return false, fmt.Errorf("donation request %d: %w", id, domain.ErrNotFound)
	}
	return true, nil
}

func (r *requestRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM donation_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("donation request %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *requestRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.DonationRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM donation_requests`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func (r *requestRepository) ListByRequester(ctx context.Context, email string, status domain.RequestStatus, page, pageSize int64) ([]domain.DonationRequest, int64, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + requestColumns + ` FROM donation_requests WHERE requester_email = $1`
	args := []interface{}{email}
	argIdx := 2
	if status != "" {
		query += " AND status = $2"
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

	reqs, err := collectRequests(rows)
	return reqs, count, err
}

func (r *requestRepository) ListAll(ctx context.Context, status domain.RequestStatus, page, pageSize int64) ([]domain.DonationRequest, int64, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + requestColumns + ` FROM donation_requests`
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

	reqs, err := collectRequests(rows)
	return reqs, count, err
}

func (r *requestRepository) StatusCounts(ctx context.Context, requesterEmail string) (*domain.RequestStats, error) {
	stats := &domain.RequestStats{
		PerStatus: make(map[domain.RequestStatus]int64),
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT status, count(*) FROM donation_requests WHERE requester_email = $1 GROUP BY status`,
		requesterEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status domain.RequestStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.PerStatus[status] = count
		stats.Total += count
	}
	return stats, rows.Err()
}

func (r *requestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM donation_requests`).Scan(&count)
	return count, err
}

func collectRequests(rows *sql.Rows) ([]domain.DonationRequest, error) {
	var reqs []domain.DonationRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}
