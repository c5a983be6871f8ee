package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pizzamaster/internal/domain/entities"
	"pizzamaster/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidSessionToken = errors.New("invalid session token")
)

// IAuthUseCase is the session gate: credential verification through the
// external identity provider plus bearer tokens for the rest of the API.
type IAuthUseCase interface {
	SignIn(ctx context.Context, email, password string) (entities.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	Verify(token string) (string, error)
}

type AuthUseCase struct {
	provider interfaces.IIdentityProvider
	secret   []byte
	tokenTTL time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(provider interfaces.IIdentityProvider, secret string, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{provider: provider, secret: []byte(secret), tokenTTL: tokenTTL}
}

// SignIn verifies the credentials upstream and issues the API bearer token.
func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (entities.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.Session{}, ErrInvalidCredentials
	}

	upstream, err := u.provider.SignIn(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrIdentityUserNotFound):
			return entities.Session{}, ErrUserNotFound
		case errors.Is(err, interfaces.ErrIdentityInvalidCredentials):
			return entities.Session{}, ErrInvalidCredentials
		default:
			return entities.Session{}, fmt.Errorf("identity provider sign-in: %w", err)
		}
	}

	expiresAt := time.Now().UTC().Add(u.tokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   email,
		Issuer:    "pizzamaster",
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return entities.Session{}, fmt.Errorf("sign session token: %w", err)
	}

	log.Printf("[auth][usecase] sign-in email=%s", email)
	return entities.Session{
		Email:       email,
		Token:       token,
		AccessToken: upstream.AccessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// SignOut revokes the provider session. A missing token is a no-op success,
// mirroring the always-succeeding sign-out of the UI.
func (u *AuthUseCase) SignOut(ctx context.Context, accessToken string) error {
	if strings.TrimSpace(accessToken) == "" {
		return nil
	}
	if err := u.provider.SignOut(ctx, accessToken); err != nil {
		return fmt.Errorf("identity provider sign-out: %w", err)
	}
	return nil
}

// Verify checks a bearer token and returns the operator email it carries.
func (u *AuthUseCase) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return u.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidSessionToken
	}
	return claims.Subject, nil
}
