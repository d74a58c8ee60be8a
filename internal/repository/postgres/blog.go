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

type blogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

const blogColumns = `id, title, thumbnail_url, content, author_email, status, created_at, updated_at`

func scanBlog(row interface{ Scan(...any) error }) (*domain.Blog, error) {
	b := &domain.Blog{}
	err := row.Scan(&b.ID, &b.Title, &b.ThumbnailURL, &b.Content, &b.AuthorEmail, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	query := `INSERT INTO blogs (title, thumbnail_url, content, author_email, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		blog.Title, blog.ThumbnailURL, blog.Content, blog.AuthorEmail, blog.Status, blog.CreatedAt, blog.UpdatedAt,
	).Scan(&blog.ID)
}

func (r *blogRepository) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`
	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("blog %d: %w", id, domain.ErrNotFound)
	}
	return blog, err
}

// Update applies a partial edit. The caller decides whether updated_at is
// refreshed: status-only transitions preserve the stored timestamp so the
// moment of the last content edit survives publish/unpublish flips.
func (r *blogRepository) Update(ctx context.Context, id int64, patch domain.BlogPatch, touchUpdatedAt bool) (bool, error) {
	sets := []string{}
	args := []interface{}{}
	idx := 1
	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.ThumbnailURL != nil {
		add("thumbnail_url", *patch.ThumbnailURL)
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if len(sets) == 0 {
		return false, nil
	}
	if touchUpdatedAt {
		sets = append(sets, "updated_at = now()")
	}

	query := fmt.Sprintf("UPDATE blogs SET %s WHERE id = $%d", strings.Join(sets, ", "), idx)
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
		return false, fmt.Errorf("blog %d: %w", id, domain.ErrNotFound)
	}
	return true, nil
}

func (r *blogRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("blog %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *blogRepository) List(ctx context.Context, status domain.BlogStatus) ([]domain.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs`
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

	var blogs []domain.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}
	return blogs, rows.Err()
}

func (r *blogRepository) Stats(ctx context.Context) (*domain.BlogStats, error) {
	stats := &domain.BlogStats{
		PerStatus: make(map[domain.BlogStatus]int64),
	}

	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM blogs GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status domain.BlogStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.PerStatus[status] = count
		stats.Total += count
	}
	return stats, rows.Err()
}
