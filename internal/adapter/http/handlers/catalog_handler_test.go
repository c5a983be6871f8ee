package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pizzamaster/internal/adapter/http/handlers/mocks"
	"pizzamaster/internal/domain/entities"
	"pizzamaster/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("menu catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().Items(entities.CatalogMenu).Return([]entities.CatalogItem{
			{ID: "pizza-1", Name: "Margherita", Category: "Classic", Pricing: entities.PricingSized, Sizes: []entities.SizeVariant{{Name: "Large", Price: 8000}}},
		}, nil)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalogs/:catalog/items", h.ListItems)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalogs/menu/items", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "pizza-1" || body[0]["pricing"] != "sized" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unknown catalog maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().Items(entities.CatalogName("desserts")).Return(nil, usecase.ErrUnknownCatalog)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalogs/:catalog/items", h.ListItems)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalogs/desserts/items", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_ToggleAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("flips the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().ToggleAvailability(gomock.Any(), "drink-1").Return(entities.CatalogItem{ID: "drink-1", Name: "Cola", Pricing: entities.PricingFlat, Price: 1000, Disabled: true}, nil)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PATCH("/v1/items/:id/availability", h.ToggleAvailability)

		req := httptest.NewRequest(http.MethodPatch, "/v1/items/drink-1/availability", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["disabled"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unknown item maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().ToggleAvailability(gomock.Any(), "missing").Return(entities.CatalogItem{}, usecase.ErrItemNotFound)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PATCH("/v1/items/:id/availability", h.ToggleAvailability)

		req := httptest.NewRequest(http.MethodPatch, "/v1/items/missing/availability", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_EditItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/items/:id", h.EditItem)

		req := httptest.NewRequest(http.MethodPut, "/v1/items/drink-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("renames and reprices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().RenameAndReprice(gomock.Any(), "drink-1", "Cola Zero", int64(1500), nil).
			Return(entities.CatalogItem{ID: "drink-1", Name: "Cola Zero", Pricing: entities.PricingFlat, Price: 1500}, nil)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/items/:id", h.EditItem)

		req := httptest.NewRequest(http.MethodPut, "/v1/items/drink-1", bytes.NewBufferString(`{"name":"Cola Zero","price":1500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("sized reprice forwards the mapping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().RenameAndReprice(gomock.Any(), "pizza-1", "Margherita", int64(0), map[string]int64{"Large": 9000}).
			Return(entities.CatalogItem{ID: "pizza-1", Name: "Margherita", Pricing: entities.PricingSized}, nil)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/items/:id", h.EditItem)

		req := httptest.NewRequest(http.MethodPut, "/v1/items/pizza-1", bytes.NewBufferString(`{"name":"Margherita","size_prices":{"Large":9000}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid price maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().RenameAndReprice(gomock.Any(), "drink-1", "Cola", int64(-5), nil).
			Return(entities.CatalogItem{}, usecase.ErrInvalidItemPrice)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/items/:id", h.EditItem)

		req := httptest.NewRequest(http.MethodPut, "/v1/items/drink-1", bytes.NewBufferString(`{"name":"Cola","price":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
