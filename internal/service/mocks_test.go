package service

import (
	"context"

	"bloodlink-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, acct *domain.Account) error {
	args := m.Called(ctx, acct)
	return args.Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) UpdateProfile(ctx context.Context, email string, patch domain.AccountPatch) (bool, error) {
	args := m.Called(ctx, email, patch)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountRepo) UpdateRoleStatus(ctx context.Context, id int64, role *domain.Role, status *domain.AccountStatus) (bool, error) {
	args := m.Called(ctx, id, role, status)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountRepo) TouchLastLogin(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
func (m *MockAccountRepo) SearchDonors(ctx context.Context, bloodGroup, district, upazila string) ([]domain.Account, error) {
	args := m.Called(ctx, bloodGroup, district, upazila)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) List(ctx context.Context, status domain.AccountStatus, page, pageSize int64) ([]domain.Account, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Account), args.Get(1).(int64), args.Error(2)
}
func (m *MockAccountRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.DonationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int64) (*domain.DonationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationRequest), args.Error(1)
}
func (m *MockRequestRepo) Claim(ctx context.Context, id int64, donorName, donorEmail string) error {
	args := m.Called(ctx, id, donorName, donorEmail)
	return args.Error(0)
}
func (m *MockRequestRepo) Update(ctx context.Context, id int64, patch domain.RequestPatch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}
func (m *MockRequestRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRequestRepo) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.DonationRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DonationRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByRequester(ctx context.Context, email string, status domain.RequestStatus, page, pageSize int64) ([]domain.DonationRequest, int64, error) {
	args := m.Called(ctx, email, status, page, pageSize)
	return args.Get(0).([]domain.DonationRequest), args.Get(1).(int64), args.Error(2)
}
func (m *MockRequestRepo) ListAll(ctx context.Context, status domain.RequestStatus, page, pageSize int64) ([]domain.DonationRequest, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.DonationRequest), args.Get(1).(int64), args.Error(2)
}
func (m *MockRequestRepo) StatusCounts(ctx context.Context, requesterEmail string) (*domain.RequestStats, error) {
	args := m.Called(ctx, requesterEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RequestStats), args.Error(1)
}
func (m *MockRequestRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBlogRepo
type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}
func (m *MockBlogRepo) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}
func (m *MockBlogRepo) Update(ctx context.Context, id int64, patch domain.BlogPatch, touchUpdatedAt bool) (bool, error) {
	args := m.Called(ctx, id, patch, touchUpdatedAt)
	return args.Bool(0), args.Error(1)
}
func (m *MockBlogRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBlogRepo) List(ctx context.Context, status domain.BlogStatus) ([]domain.Blog, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Blog), args.Error(1)
}
func (m *MockBlogRepo) Stats(ctx context.Context) (*domain.BlogStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogStats), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, rec *domain.PaymentRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockPaymentRepo) List(ctx context.Context, sortDesc bool) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, sortDesc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentRepo) TotalCents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendClaimNotification(ctx context.Context, requesterEmail, requesterName, donorName, donorEmail, bloodGroup string) error {
	args := m.Called(ctx, requesterEmail, requesterName, donorName, donorEmail, bloodGroup)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, email string, amountCents int64, transactionID string) error {
	args := m.Called(ctx, email, amountCents, transactionID)
	return args.Error(0)
}

// MockGateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	args := m.Called(ctx, amountCents)
	return args.String(0), args.Error(1)
}
