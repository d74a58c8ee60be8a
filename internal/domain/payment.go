package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "succeeded"
)

// PaymentRecord is one confirmed gateway transaction. The ledger is
// append-only: records are never updated or deleted.
type PaymentRecord struct {
	ID            string        `json:"id"`
	Email         string        `json:"email"`
	AmountCents   int64         `json:"amountCents"`
	TransactionID string        `json:"transactionId"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}
