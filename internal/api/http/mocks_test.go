package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/identity"
	"bloodlink-backend/internal/policy"

	"github.com/stretchr/testify/mock"
)

// stubVerifier maps tokens straight to emails. An unknown token fails
// verification the way a bad credential would.
type stubVerifier struct {
	tokens map[string]string
}

func (v *stubVerifier) Verify(_ context.Context, token string) (*identity.Identity, error) {
	if email, ok := v.tokens[token]; ok {
		return &identity.Identity{Email: email}, nil
	}
	return nil, fmt.Errorf("unknown token: %w", domain.ErrUnauthenticated)
}

type stubAccounts struct {
	accounts map[string]*domain.Account
}

func (s *stubAccounts) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	if acct, ok := s.accounts[email]; ok {
		return acct, nil
	}
	return nil, fmt.Errorf("account %s: %w", email, domain.ErrNotFound)
}

// MockAccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, acct *domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, acct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetRole(ctx context.Context, email string) (domain.Role, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Role), args.Error(1)
}
func (m *MockAccountService) UpdateProfile(ctx context.Context, email string, patch domain.AccountPatch) (bool, error) {
	args := m.Called(ctx, email, patch)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountService) TouchLastLogin(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
func (m *MockAccountService) SearchDonors(ctx context.Context, bloodGroup, district, upazila string) ([]domain.Account, error) {
	args := m.Called(ctx, bloodGroup, district, upazila)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) AdminUpdate(ctx context.Context, id int64, role *domain.Role, status *domain.AccountStatus) (bool, error) {
	args := m.Called(ctx, id, role, status)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountService) AdminList(ctx context.Context, status domain.AccountStatus, page, pageSize int64) ([]domain.Account, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Account), args.Get(1).(int64), args.Error(2)
}

// MockRequestService
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) Create(ctx context.Context, req *domain.DonationRequest) (*domain.DonationRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationRequest), args.Error(1)
}
func (m *MockRequestService) Get(ctx context.Context, id int64) (*domain.DonationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationRequest), args.Error(1)
}
func (m *MockRequestService) Claim(ctx context.Context, id int64, donorEmail string) (*domain.DonationRequest, error) {
	args := m.Called(ctx, id, donorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationRequest), args.Error(1)
}
func (m *MockRequestService) Update(ctx context.Context, id int64, patch domain.RequestPatch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}
func (m *MockRequestService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRequestService) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.DonationRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DonationRequest), args.Error(1)
}
func (m *MockRequestService) ListByRequester(ctx context.Context, email string, status domain.RequestStatus, page, pageSize int64) ([]domain.DonationRequest, int64, error) {
	args := m.Called(ctx, email, status, page, pageSize)
	return args.Get(0).([]domain.DonationRequest), args.Get(1).(int64), args.Error(2)
}
func (m *MockRequestService) ListAll(ctx context.Context, status domain.RequestStatus, page, pageSize int64) ([]domain.DonationRequest, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.DonationRequest), args.Get(1).(int64), args.Error(2)
}
func (m *MockRequestService) StatusCounts(ctx context.Context, requesterEmail string) (*domain.RequestStats, error) {
	args := m.Called(ctx, requesterEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RequestStats), args.Error(1)
}

// MockBlogService
type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	args := m.Called(ctx, blog)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}
func (m *MockBlogService) Get(ctx context.Context, id int64, callerRole domain.Role) (*domain.Blog, error) {
	args := m.Called(ctx, id, callerRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}
func (m *MockBlogService) ListVisible(ctx context.Context, callerRole domain.Role, status domain.BlogStatus) ([]domain.Blog, error) {
	args := m.Called(ctx, callerRole, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Blog), args.Error(1)
}
func (m *MockBlogService) SetFields(ctx context.Context, id int64, patch domain.BlogPatch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}
func (m *MockBlogService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBlogService) Stats(ctx context.Context) (*domain.BlogStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogStats), args.Error(1)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	args := m.Called(ctx, amountCents)
	return args.String(0), args.Error(1)
}
func (m *MockPaymentService) Record(ctx context.Context, email, transactionID string, amountCents int64) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, email, transactionID, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentService) TotalFunds(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPaymentService) List(ctx context.Context, sortDesc bool) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, sortDesc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

// testEnv wires the full router against mocks with a fixed set of accounts
// and bearer tokens: token "<email>" authenticates as that email.
type testEnv struct {
	accountSvc *MockAccountService
	requestSvc *MockRequestService
	blogSvc    *MockBlogService
	paymentSvc *MockPaymentService
	adminSvc   *MockAdminService
	router     http.Handler
}

func newTestEnv() *testEnv {
	accounts := &stubAccounts{accounts: map[string]*domain.Account{
		"donor@test.com": {Email: "donor@test.com", Name: "Donor", Role: domain.RoleDonor, Status: domain.AccountStatusActive},
		"vol@test.com":   {Email: "vol@test.com", Name: "Volunteer", Role: domain.RoleVolunteer, Status: domain.AccountStatusActive},
		"admin@test.com": {Email: "admin@test.com", Name: "Admin", Role: domain.RoleAdmin, Status: domain.AccountStatusActive},
	}}
	verifier := &stubVerifier{tokens: map[string]string{
		"donor-token": "donor@test.com",
		"vol-token":   "vol@test.com",
		"admin-token": "admin@test.com",
	}}
	authz := policy.NewAuthorizer(accounts)

	env := &testEnv{
		accountSvc: new(MockAccountService),
		requestSvc: new(MockRequestService),
		blogSvc:    new(MockBlogService),
		paymentSvc: new(MockPaymentService),
		adminSvc:   new(MockAdminService),
	}
	handlers := Handlers{
		Account: NewAccountHandler(env.accountSvc, authz),
		Request: NewRequestHandler(env.requestSvc, env.accountSvc, authz),
		Blog:    NewBlogHandler(env.blogSvc, env.accountSvc, authz),
		Payment: NewPaymentHandler(env.paymentSvc, authz),
		Admin:   NewAdminHandler(env.adminSvc, env.accountSvc, env.requestSvc, authz),
	}
	env.router = NewRouter(handlers, NewMiddleware(verifier, 5*time.Second))
	return env
}
