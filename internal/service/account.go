package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/repository"
)

type accountService struct {
	accountRepo repository.AccountRepository
}

func NewAccountService(accountRepo repository.AccountRepository) AccountService {
	return &accountService{accountRepo: accountRepo}
}

// Register creates an account from a registration payload. Role, status and
// both timestamps are server-assigned; whatever the client sent for them is
// discarded.
func (s *accountService) Register(ctx context.Context, acct *domain.Account) (*domain.Account, error) {
	acct.Email = strings.ToLower(strings.TrimSpace(acct.Email))
	if acct.Email == "" {
		return nil, fmt.Errorf("email is required: %w", domain.ErrInvalidInput)
	}
	if acct.Name == "" {
		return nil, fmt.Errorf("name is required: %w", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	acct.Role = domain.RoleDonor
	acct.Status = domain.AccountStatusActive
	acct.CreatedAt = now
	acct.LastLoginAt = now

	if err := s.accountRepo.Create(ctx, acct); err != nil {
		return nil, err
	}
	return acct, nil
}

func (s *accountService) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.accountRepo.GetByEmail(ctx, strings.ToLower(email))
}

func (s *accountService) GetRole(ctx context.Context, email string) (domain.Role, error) {
	acct, err := s.accountRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", err
	}
	return acct.Role, nil
}

// UpdateProfile merges a partial patch. An empty patch is not an error; it
// simply reports that nothing was modified.
func (s *accountService) UpdateProfile(ctx context.Context, email string, patch domain.AccountPatch) (bool, error) {
	if patch.Empty() {
		return false, nil
	}
	return s.accountRepo.UpdateProfile(ctx, strings.ToLower(email), patch)
}

func (s *accountService) TouchLastLogin(ctx context.Context, email string) error {
	return s.accountRepo.TouchLastLogin(ctx, strings.ToLower(email))
}

// SearchDonors requires all three filters; a partially-specified search
// returns no results at all, only InvalidInput.
func (s *accountService) SearchDonors(ctx context.Context, bloodGroup, district, upazila string) ([]domain.Account, error) {
	if bloodGroup == "" || district == "" || upazila == "" {
		return nil, fmt.Errorf("bloodGroup, district and upazila are all required: %w", domain.ErrInvalidInput)
	}
	return s.accountRepo.SearchDonors(ctx, bloodGroup, district, upazila)
}

func (s *accountService) AdminUpdate(ctx context.Context, id int64, role *domain.Role, status *domain.AccountStatus) (bool, error) {
	if role == nil && status == nil {
		return false, fmt.Errorf("at least one of role or status is required: %w", domain.ErrInvalidInput)
	}
	if role != nil && !role.Valid() {
		return false, fmt.Errorf("unknown role %q: %w", *role, domain.ErrInvalidInput)
	}
	if status != nil && !status.Valid() {
		return false, fmt.Errorf("unknown status %q: %w", *status, domain.ErrInvalidInput)
	}
	return s.accountRepo.UpdateRoleStatus(ctx, id, role, status)
}

func (s *accountService) AdminList(ctx context.Context, status domain.AccountStatus, page, pageSize int64) ([]domain.Account, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("unknown status %q: %w", status, domain.ErrInvalidInput)
	}
	return s.accountRepo.List(ctx, status, page, pageSize)
}
