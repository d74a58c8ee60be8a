package service

import (
	"context"
	"testing"

	"bloodlink-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentService_CreateIntent(t *testing.T) {
	repo := new(MockPaymentRepo)
	gateway := new(MockGateway)
	svc := NewPaymentService(repo, gateway, new(MockEmailService))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		gateway.On("CreateIntent", ctx, int64(2500)).Return("pi_secret", nil)

		secret, err := svc.CreateIntent(ctx, 2500)
		assert.NoError(t, err)
		assert.Equal(t, "pi_secret", secret)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		_, err := svc.CreateIntent(ctx, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		gateway.AssertNotCalled(t, "CreateIntent", mock.Anything, int64(0))
	})
}

func TestPaymentService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockPaymentRepo)
		emailSvc := new(MockEmailService)
		svc := NewPaymentService(repo, new(MockGateway), emailSvc)

		repo.On("Create", ctx, mock.MatchedBy(func(rec *domain.PaymentRecord) bool {
			return rec.ID != "" &&
				rec.Email == "donor@test.com" &&
				rec.AmountCents == 2500 &&
				rec.Status == domain.PaymentStatusSucceeded
		})).Return(nil)
		emailSvc.On("SendPaymentReceipt", ctx, "donor@test.com", int64(2500), "pi_123").Return(nil)

		rec, err := svc.Record(ctx, "Donor@Test.com", "pi_123", 2500)
		assert.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		repo.AssertExpectations(t)
	})

	t.Run("MissingTransaction", func(t *testing.T) {
		svc := NewPaymentService(new(MockPaymentRepo), new(MockGateway), new(MockEmailService))
		_, err := svc.Record(ctx, "donor@test.com", "", 2500)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("ReceiptFailureDoesNotFailRecord", func(t *testing.T) {
		repo := new(MockPaymentRepo)
		emailSvc := new(MockEmailService)
		svc := NewPaymentService(repo, new(MockGateway), emailSvc)

		repo.On("Create", ctx, mock.Anything).Return(nil)
		emailSvc.On("SendPaymentReceipt", ctx, "donor@test.com", int64(2500), "pi_123").Return(assert.AnError)

		rec, err := svc.Record(ctx, "donor@test.com", "pi_123", 2500)
		assert.NoError(t, err)
		assert.NotNil(t, rec)
	})
}

func TestAdminService_DashboardStats(t *testing.T) {
	accountRepo := new(MockAccountRepo)
	requestRepo := new(MockRequestRepo)
	paymentRepo := new(MockPaymentRepo)
	svc := NewAdminService(accountRepo, requestRepo, paymentRepo)
	ctx := context.Background()

	accountRepo.On("Count", ctx).Return(int64(10), nil)
	requestRepo.On("Count", ctx).Return(int64(20), nil)
	paymentRepo.On("TotalCents", ctx).Return(int64(3000), nil)

	stats, err := svc.DashboardStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(20), stats.TotalRequests)
	assert.Equal(t, int64(3000), stats.TotalFundsCents)
}
