// Package identity resolves opaque bearer credentials to a caller identity.
// Credentials are minted by an external provider; this package only verifies
// them and extracts the email claim.
package identity

import (
	"context"
	"fmt"

	"bloodlink-backend/internal/domain"
)

// Identity is the verified caller identity downstream checks consume.
type Identity struct {
	Email string
}

type TokenVerifier interface {
	// Verify validates a bearer token and returns the identity it carries.
	// Any verification failure (malformed, expired, wrong signature, missing
	// email claim) is reported as domain.ErrUnauthenticated.
	Verify(ctx context.Context, token string) (*Identity, error)
}

func unauthenticated(reason string) error {
	return fmt.Errorf("%s: %w", reason, domain.ErrUnauthenticated)
}
