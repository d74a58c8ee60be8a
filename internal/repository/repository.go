package repository

import (
	"context"

	"bloodlink-backend/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, acct *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, email string, patch domain.AccountPatch) (bool, error)
	UpdateRoleStatus(ctx context.Context, id int64, role *domain.Role, status *domain.AccountStatus) (bool, error)
	TouchLastLogin(ctx context.Context, email string) error
	SearchDonors(ctx context.Context, bloodGroup, district, upazila string) ([]domain.Account, error)
	List(ctx context.Context, status domain.AccountStatus, page, pageSize int64) ([]domain.Account, int64, error)
	Count(ctx context.Context) (int64, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.DonationRequest) error
	GetByID(ctx context.Context, id int64) (*domain.DonationRequest, error)

	// Claim atomically moves a pending request to inprogress and attaches
	// the donor. It reports domain.ErrAlreadyClaimed when the stored status
	// was no longer pending at the moment of the write.
	Claim(ctx context.Context, id int64, donorName, donorEmail string) error

	Update(ctx context.Context, id int64, patch domain.RequestPatch) (bool, error)
	Delete(ctx context.Context, id int64) error
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.DonationRequest, error)
	ListByRequester(ctx context.Context, email string, status domain.RequestStatus, page, pageSize int64) ([]domain.DonationRequest, int64, error)
	ListAll(ctx context.Context, status domain.RequestStatus, page, pageSize int64) ([]domain.DonationRequest, int64, error)
	StatusCounts(ctx context.Context, requesterEmail string) (*domain.RequestStats, error)
	Count(ctx context.Context) (int64, error)
}

type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	GetByID(ctx context.Context, id int64) (*domain.Blog, error)
	Update(ctx context.Context, id int64, patch domain.BlogPatch, touchUpdatedAt bool) (bool, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, status domain.BlogStatus) ([]domain.Blog, error)
	Stats(ctx context.Context) (*domain.BlogStats, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, rec *domain.PaymentRecord) error
	List(ctx context.Context, sortDesc bool) ([]domain.PaymentRecord, error)
	TotalCents(ctx context.Context) (int64, error)
}
