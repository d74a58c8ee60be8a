// Package payments wraps the external payment gateway. Only intent creation
// is consumed here; confirmation happens client-side and the caller reports
// the confirmed transaction back through the ledger.
package payments

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/paymentintent"
)

// Gateway creates a payment intent for an amount and returns the
// client-usable secret.
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

type stripeGateway struct{}

// NewStripeGateway configures the process-wide Stripe key and returns the
// gateway. Called once at startup.
func NewStripeGateway(secretKey string) Gateway {
	stripe.Key = secretKey
	return &stripeGateway{}
}

func (g *stripeGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
