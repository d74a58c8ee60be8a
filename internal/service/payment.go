package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/logger"
	"bloodlink-backend/internal/payments"
	"bloodlink-backend/internal/repository"

	"github.com/google/uuid"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	gateway     payments.Gateway
	emailSvc    EmailService
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	gateway payments.Gateway,
	emailSvc EmailService,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		emailSvc:    emailSvc,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	if amountCents <= 0 {
		return "", fmt.Errorf("amount must be positive: %w", domain.ErrInvalidInput)
	}
	return s.gateway.CreateIntent(ctx, amountCents)
}

// Record appends a confirmed gateway transaction to the ledger. Records are
// written only after the caller asserts gateway success; there is no
// reconciliation of half-finished payments here.
func (s *paymentService) Record(ctx context.Context, email, transactionID string, amountCents int64) (*domain.PaymentRecord, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || transactionID == "" || amountCents <= 0 {
		return nil, fmt.Errorf("email, transactionId and a positive amount are required: %w", domain.ErrInvalidInput)
	}

	rec := &domain.PaymentRecord{
		ID:            uuid.NewString(),
		Email:         email,
		AmountCents:   amountCents,
		TransactionID: transactionID,
		Status:        domain.PaymentStatusSucceeded,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.paymentRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	// Best effort; the record stands whether or not the receipt lands.
	if err := s.emailSvc.SendPaymentReceipt(ctx, email, amountCents, transactionID); err != nil {
		logger.Warn("payment receipt email failed", "payment_id", rec.ID, "error", err)
	}

	return rec, nil
}

func (s *paymentService) TotalFunds(ctx context.Context) (int64, error) {
	return s.paymentRepo.TotalCents(ctx)
}

func (s *paymentService) List(ctx context.Context, sortDesc bool) ([]domain.PaymentRecord, error) {
	return s.paymentRepo.List(ctx, sortDesc)
}
