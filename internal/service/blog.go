package service

import (
	"context"
	"fmt"
	"time"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/repository"
)

type blogService struct {
	blogRepo repository.BlogRepository
}

func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

// Create stores a new post. Every post is born a draft; publication is a
// separate moderator action.
func (s *blogService) Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	if blog.Title == "" || blog.Content == "" {
		return nil, fmt.Errorf("title and content are required: %w", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	blog.Status = domain.BlogStatusDraft
	blog.CreatedAt = now
	blog.UpdatedAt = now

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// Get returns a post subject to visibility: drafts and other non-published
// states exist only for moderators.
func (s *blogService) Get(ctx context.Context, id int64, callerRole domain.Role) (*domain.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog.Status != domain.BlogStatusPublished && !callerRole.IsModerator() {
		return nil, fmt.Errorf("blog %d: %w", id, domain.ErrNotFound)
	}
	return blog, nil
}

// ListVisible lists posts the caller may see. Non-moderators only ever see
// published posts regardless of the requested filter; moderators may filter
// by any status and default to unfiltered.
func (s *blogService) ListVisible(ctx context.Context, callerRole domain.Role, status domain.BlogStatus) ([]domain.Blog, error) {
	if !callerRole.IsModerator() {
		return s.blogRepo.List(ctx, domain.BlogStatusPublished)
	}
	return s.blogRepo.List(ctx, status)
}

// SetFields applies a partial edit. A patch that moves status relative to
// the stored value leaves updatedAt alone, preserving the time of the last
// content edit across publish/unpublish transitions; all other edits
// refresh it.
func (s *blogService) SetFields(ctx context.Context, id int64, patch domain.BlogPatch) (bool, error) {
	if patch.Empty() {
		return false, nil
	}

	stored, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	statusChanged := patch.Status != nil && *patch.Status != stored.Status
	return s.blogRepo.Update(ctx, id, patch, !statusChanged)
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	return s.blogRepo.Delete(ctx, id)
}

func (s *blogService) Stats(ctx context.Context) (*domain.BlogStats, error) {
	return s.blogRepo.Stats(ctx)
}
