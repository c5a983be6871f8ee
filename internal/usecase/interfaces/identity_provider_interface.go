package interfaces

import (
	"context"
	"errors"

	"pizzamaster/internal/domain/entities"
)

var (
	ErrIdentityInvalidCredentials = errors.New("identity provider rejected credentials")
	ErrIdentityUserNotFound       = errors.New("identity provider user not found")
)

// IIdentityProvider abstracts the external identity service (e.g. Cognito)
// that verifies operator credentials.
//
// SignIn returns one of the sentinel errors above for the two outcomes the
// POS distinguishes; anything else is an opaque provider failure.
type IIdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (entities.IdentitySession, error)
	SignOut(ctx context.Context, accessToken string) error
}
