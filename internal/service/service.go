package service

import (
	"context"

	"bloodlink-backend/internal/domain"
)

type AccountService interface {
	Register(ctx context.Context, acct *domain.Account) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetRole(ctx context.Context, email string) (domain.Role, error)
	UpdateProfile(ctx context.Context, email string, patch domain.AccountPatch) (bool, error)
	TouchLastLogin(ctx context.Context, email string) error
	SearchDonors(ctx context.Context, bloodGroup, district, upazila string) ([]domain.Account, error)
	AdminUpdate(ctx context.Context, id int64, role *domain.Role, status *domain.AccountStatus) (bool, error)
	AdminList(ctx context.Context, status domain.AccountStatus, page, pageSize int64) ([]domain.Account, int64, error)
}

type RequestService interface {
	Create(ctx context.Context, req *domain.DonationRequest) (*domain.DonationRequest, error)
	Get(ctx context.Context, id int64) (*domain.DonationRequest, error)
	Claim(ctx context.Context, id int64, donorEmail string) (*domain.DonationRequest, error)
	Update(ctx context.Context, id int64, patch domain.RequestPatch) (bool, error)
	Delete(ctx context.Context, id int64) error
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.DonationRequest, error)
	ListByRequester(ctx context.Context, email string, status domain.RequestStatus, page, pageSize int64) ([]domain.DonationRequest, int64, error)
	ListAll(ctx context.Context, status domain.RequestStatus, page, pageSize int64) ([]domain.DonationRequest, int64, error)
	StatusCounts(ctx context.Context, requesterEmail string) (*domain.RequestStats, error)
}

type BlogService interface {
	Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	Get(ctx context.Context, id int64, callerRole domain.Role) (*domain.Blog, error)
	ListVisible(ctx context.Context, callerRole domain.Role, status domain.BlogStatus) ([]domain.Blog, error)
	SetFields(ctx context.Context, id int64, patch domain.BlogPatch) (bool, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*domain.BlogStats, error)
}

type PaymentService interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
	Record(ctx context.Context, email, transactionID string, amountCents int64) (*domain.PaymentRecord, error)
	TotalFunds(ctx context.Context) (int64, error)
	List(ctx context.Context, sortDesc bool) ([]domain.PaymentRecord, error)
}

type AdminService interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type EmailService interface {
	SendClaimNotification(ctx context.Context, requesterEmail, requesterName, donorName, donorEmail, bloodGroup string) error
	SendPaymentReceipt(ctx context.Context, email string, amountCents int64, transactionID string) error
}
