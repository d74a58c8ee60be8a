package postgres

import (
	"database/sql"

	"bloodlink-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AccountRepository
	repository.RequestRepository
	repository.BlogRepository
	repository.PaymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		AccountRepository: NewAccountRepository(db),
		RequestRepository: NewRequestRepository(db),
		BlogRepository:    NewBlogRepository(db),
		PaymentRepository: NewPaymentRepository(db),
	}
}
