package handlers

import (
	"bytes"
	"encoding/json"
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

func cartViewFixture() usecase.CartView {
	return usecase.CartView{
		Lines: []entities.CartLine{
			{ItemID: "pizza-1", Name: "Margherita", Catalog: entities.CatalogMenu, SelectedSize: "Large", UnitPrice: 8000, Quantity: 1},
		},
		Subtotal: 8000,
		Total:    8000,
	}
}

func orderFixture() entities.Order {
	return entities.Order{
		ID:       "doc-001",
		Number:   "001",
		Items:    cartViewFixture().Lines,
		Subtotal: 8000,
		Total:    8000,
		PlacedAt: time.Date(2026, time.January, 10, 18, 0, 0, 0, time.UTC),
	}
}

func TestOrderHandler_Cart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().CartState().Return(cartViewFixture())
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/cart", h.GetCart)

		req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["subtotal"] != float64(8000) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("add invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddToCart)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add returns the updated cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().AddToCart("pizza-1", "Large").Return(cartViewFixture().Lines[0], nil)
		uc.EXPECT().CartState().Return(cartViewFixture())
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddToCart)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"item_id":"pizza-1","size":"Large"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("add unavailable item maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().AddToCart("pizza-1", "").Return(entities.CartLine{}, entities.ErrItemUnavailable)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddToCart)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"item_id":"pizza-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("add item without a configured price maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().AddToCart("pizza-broken", "").Return(entities.CartLine{}, entities.ErrItemNotPriced)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddToCart)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"item_id":"pizza-broken"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("adjust quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().AdjustQuantity("pizza-1", "Large", -1).Return(usecase.CartView{})
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/cart/items", h.AdjustQuantity)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cart/items", bytes.NewBufferString(`{"item_id":"pizza-1","size":"Large","delta":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().RemoveFromCart("pizza-1", "Large").Return(usecase.CartView{})
		h := NewOrderHandler(uc)

		r := gin.New()
		r.DELETE("/v1/cart/items", h.RemoveFromCart)

		req := httptest.NewRequest(http.MethodDelete, "/v1/cart/items", bytes.NewBufferString(`{"item_id":"pizza-1","size":"Large"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("negative delivery fee maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().SetDeliveryFee(int64(-1)).Return(usecase.CartView{}, usecase.ErrInvalidDeliveryFee)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/cart/delivery-fee", h.SetDeliveryFee)

		req := httptest.NewRequest(http.MethodPut, "/v1/cart/delivery-fee", bytes.NewBufferString(`{"fee":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 201 with the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().PlaceOrder(gomock.Any()).Return(orderFixture(), nil)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.PlaceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["number"] != "001" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("empty cart maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().PlaceOrder(gomock.Any()).Return(entities.Order{}, usecase.ErrEmptyCart)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.PlaceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("edit in progress maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().PlaceOrder(gomock.Any()).Return(entities.Order{}, usecase.ErrEditInProgress)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.PlaceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestOrderHandler_EditFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("begin edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		view := cartViewFixture()
		view.Editing = true
		view.EditingNumber = "001"
		uc.EXPECT().BeginEdit("001").Return(view, nil)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:number/edit", h.BeginEdit)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/001/edit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["editing"] != true || body["editing_number"] != "001" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("begin edit on a missing order maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().BeginEdit("999").Return(usecase.CartView{}, usecase.ErrOrderNotFound)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:number/edit", h.BeginEdit)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/999/edit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("commit without an edit maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().CommitEdit(gomock.Any()).Return(entities.Order{}, usecase.ErrNotEditing)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/edit", h.CommitEdit)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/edit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().CancelEdit().Return(usecase.CartView{})
		h := NewOrderHandler(uc)

		r := gin.New()
		r.DELETE("/v1/orders/edit", h.CancelEdit)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/edit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_HistoryAndSales(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().Orders().Return([]entities.Order{orderFixture()})
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["number"] != "001" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("clear orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().ClearOrders(gomock.Any()).Return(nil)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.DELETE("/v1/orders", h.ClearOrders)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("reset sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().ResetSequence(gomock.Any()).Return(nil)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/sequence/reset", h.ResetSequence)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/sequence/reset", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("monthly sales", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().MonthlySales().Return(map[string]entities.MonthlySalesBucket{
			"2026-0": {Food: map[string]int64{"Margherita-Large": 8000}, Drinks: map[string]int64{}, Total: 8000},
		})
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/sales/monthly", h.MonthlySales)

		req := httptest.NewRequest(http.MethodGet, "/v1/sales/monthly", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["2026-0"]["total"] != float64(8000) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
