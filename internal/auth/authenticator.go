package auth

import (
	"context"

	"github.com/mmynk/fivehundred/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// The service layer depends only on this, so the credential scheme can change
// without touching it.
type Authenticator interface {
	// Register creates a new scorer account with the given email and credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.Scorer, error)

	// Authenticate verifies the credentials and returns the scorer.
	Authenticate(ctx context.Context, email, credential string) (*models.Scorer, error)

	// Lookup returns the scorer with the given id, or ErrInvalidCredentials
	// when the account no longer exists.
	Lookup(ctx context.Context, id string) (*models.Scorer, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
