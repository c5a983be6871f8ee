package response

import (
	"time"

	"pizzamaster/internal/domain/entities"
)

type SessionResponse struct {
	Email       string    `json:"email"`
	Token       string    `json:"token"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		Email:       s.Email,
		Token:       s.Token,
		AccessToken: s.AccessToken,
		ExpiresAt:   s.ExpiresAt,
	}
}
