package handlers

import (
	"errors"
	"net/http"

	request "pizzamaster/internal/adapter/http/dto/request"
	response "pizzamaster/internal/adapter/http/dto/response"
	"pizzamaster/internal/usecase"
	"pizzamaster/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSignInPayload = pkg.NewDomainErrorSimple("INVALID_SIGN_IN_INPUT", "Invalid sign-in payload", http.StatusBadRequest)

// AuthHandler is the session gate: sign-in issues the bearer token the rest
// of the API requires, sign-out revokes the upstream session.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignInPayload.HTTPStatus, errInvalidSignInPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SignIn(c.Request.Context(), payload.ResolveEmail(), payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	// The body is optional; without a provider token sign-out is local only.
	var payload request.SignOutRequest
	_ = c.ShouldBindJSON(&payload)

	if err := h.usecase.SignOut(c.Request.Context(), payload.AccessToken); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
