package request

import "strings"

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r SignInRequest) ResolveEmail() string {
	return strings.TrimSpace(r.Email)
}

type SignOutRequest struct {
	AccessToken string `json:"access_token"`
}
