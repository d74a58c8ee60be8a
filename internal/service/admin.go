package service

import (
	"context"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/repository"
)

type adminService struct {
	accountRepo repository.AccountRepository
	requestRepo repository.RequestRepository
	paymentRepo repository.PaymentRepository
}

func NewAdminService(
	accountRepo repository.AccountRepository,
	requestRepo repository.RequestRepository,
	paymentRepo repository.PaymentRepository,
) AdminService {
	return &adminService{
		accountRepo: accountRepo,
		requestRepo: requestRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *adminService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	users, err := s.accountRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	funds, err := s.paymentRepo.TotalCents(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TotalUsers:      users,
		TotalRequests:   requests,
		TotalFundsCents: funds,
	}, nil
}
