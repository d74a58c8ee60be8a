package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/logger"
	"bloodlink-backend/internal/repository"
)

type requestService struct {
	requestRepo repository.RequestRepository
	accountRepo repository.AccountRepository
	emailSvc    EmailService
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	accountRepo repository.AccountRepository,
	emailSvc EmailService,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		accountRepo: accountRepo,
		emailSvc:    emailSvc,
	}
}

// Create stores a new donation request. The lifecycle state is
// server-assigned: a request is born pending with no donor attached, no
// matter what the payload says.
func (s *requestService) Create(ctx context.Context, req *domain.DonationRequest) (*domain.DonationRequest, error) {
	req.RequesterEmail = strings.ToLower(req.RequesterEmail)
	if req.RecipientName == "" || req.BloodGroup == "" {
		return nil, fmt.Errorf("recipient name and blood group are required: %w", domain.ErrInvalidInput)
	}

	req.Status = domain.RequestStatusPending
	req.DonorName = nil
	req.DonorEmail = nil
	req.CreatedAt = time.Now().UTC()

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *requestService) Get(ctx context.Context, id int64) (*domain.DonationRequest, error) {
	return s.requestRepo.GetByID(ctx, id)
}

// Claim lets a donor accept a pending request. Arbitration between
// concurrent claims happens entirely inside the repository's conditional
// update; this method never decides the race by reading first. The donor
// sub-record comes from the caller's stored account, so the attached donor
// always matches the winning caller.
func (s *requestService) Claim(ctx context.Context, id int64, donorEmail string) (*domain.DonationRequest, error) {
	donorEmail = strings.ToLower(donorEmail)
	donor, err := s.accountRepo.GetByEmail(ctx, donorEmail)
	if err != nil {
		return nil, err
	}

	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(req.RequesterEmail, donorEmail) {
		return nil, fmt.Errorf("cannot claim own request: %w", domain.ErrForbidden)
	}

	if err := s.requestRepo.Claim(ctx, id, donor.Name, donor.Email); err != nil {
		return nil, err
	}

	req.Status = domain.RequestStatusInProgress
	req.DonorName = &donor.Name
	req.DonorEmail = &donor.Email

	// Best effort; a failed mail never fails the claim.
	if err := s.emailSvc.SendClaimNotification(ctx, req.RequesterEmail, req.RequesterName, donor.Name, donor.Email, req.BloodGroup); err != nil {
		logger.Warn("claim notification email failed", "request_id", id, "error", err)
	}

	return req, nil
}

// Update is the moderator-facing edit: it may force any status regardless of
// the current one, so it deliberately carries no pending-state guard.
func (s *requestService) Update(ctx context.Context, id int64, patch domain.RequestPatch) (bool, error) {
	if patch.Empty() {
		return false, nil
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return false, fmt.Errorf("unknown status %q: %w", *patch.Status, domain.ErrInvalidInput)
	}
	return s.requestRepo.Update(ctx, id, patch)
}

func (s *requestService) Delete(ctx context.Context, id int64) error {
	return s.requestRepo.Delete(ctx, id)
}

func (s *requestService) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.DonationRequest, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", status, domain.ErrInvalidInput)
	}
	return s.requestRepo.ListByStatus(ctx, status)
}

func (s *requestService) ListByRequester(ctx context.Context, email string, status domain.RequestStatus, page, pageSize int64) ([]domain.DonationRequest, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("unknown status %q: %w", status, domain.ErrInvalidInput)
	}
	return s.requestRepo.ListByRequester(ctx, strings.ToLower(email), status, page, pageSize)
}

func (s *requestService) ListAll(ctx context.Context, status domain.RequestStatus, page, pageSize int64) ([]domain.DonationRequest, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("unknown status %q: %w", status, domain.ErrInvalidInput)
	}
	return s.requestRepo.ListAll(ctx, status, page, pageSize)
}

func (s *requestService) StatusCounts(ctx context.Context, requesterEmail string) (*domain.RequestStats, error) {
	return s.requestRepo.StatusCounts(ctx, strings.ToLower(requesterEmail))
}
