package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pizzamaster/internal/adapter/http/handlers/mocks"
	"pizzamaster/internal/domain/entities"
	"pizzamaster/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_SignIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/sign-in", h.SignIn)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-in", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/sign-in", h.SignIn)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-in", bytes.NewBufferString(`{"email":"op@pizza.iq"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong password maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().SignIn(gomock.Any(), "op@pizza.iq", "bad").Return(entities.Session{}, usecase.ErrInvalidCredentials)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/sign-in", h.SignIn)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-in", bytes.NewBufferString(`{"email":"op@pizza.iq","password":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown user maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().SignIn(gomock.Any(), "ghost@pizza.iq", "pw").Return(entities.Session{}, usecase.ErrUserNotFound)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/sign-in", h.SignIn)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-in", bytes.NewBufferString(`{"email":"ghost@pizza.iq","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().SignIn(gomock.Any(), "op@pizza.iq", "pw").Return(entities.Session{
			Email:       "op@pizza.iq",
			Token:       "jwt-token",
			AccessToken: "cognito-token",
			ExpiresAt:   time.Date(2026, time.January, 10, 18, 0, 0, 0, time.UTC),
		}, nil)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/sign-in", h.SignIn)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-in", bytes.NewBufferString(`{"email":"op@pizza.iq","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["token"] != "jwt-token" || body["email"] != "op@pizza.iq" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestAuthHandler_SignOut(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().SignOut(gomock.Any(), "").Return(nil)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/sign-out", h.SignOut)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-out", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("provider failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().SignOut(gomock.Any(), "cognito-token").Return(errors.New("upstream"))
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/sign-out", h.SignOut)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-out", bytes.NewBufferString(`{"access_token":"cognito-token"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
