package handlers

import (
	"errors"
	"net/http"

	request "pizzamaster/internal/adapter/http/dto/request"
	response "pizzamaster/internal/adapter/http/dto/response"
	"pizzamaster/internal/domain/entities"
	"pizzamaster/internal/usecase"
	"pizzamaster/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCartPayload        = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)
	errInvalidDeliveryFeePayload = pkg.NewDomainErrorSimple("INVALID_DELIVERY_FEE_INPUT", "Invalid delivery fee payload", http.StatusBadRequest)
)

// OrderHandler covers the cart, the order lifecycle and the monthly
// sales report.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCartView(h.usecase.CartState()))
}

func (h *OrderHandler) AddToCart(c *gin.Context) {
	var payload request.CartAddRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	if _, err := h.usecase.AddToCart(payload.ResolveItemID(), payload.Size); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCartView(h.usecase.CartState()))
}

func (h *OrderHandler) AdjustQuantity(c *gin.Context) {
	var payload request.CartAdjustRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	view := h.usecase.AdjustQuantity(payload.ItemID, payload.Size, payload.Delta)
	c.JSON(http.StatusOK, response.FromCartView(view))
}

func (h *OrderHandler) RemoveFromCart(c *gin.Context) {
	var payload request.CartRemoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	view := h.usecase.RemoveFromCart(payload.ItemID, payload.Size)
	c.JSON(http.StatusOK, response.FromCartView(view))
}

func (h *OrderHandler) SetDeliveryFee(c *gin.Context) {
	var payload request.DeliveryFeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDeliveryFeePayload.HTTPStatus, errInvalidDeliveryFeePayload.ToHTTPError())
		return
	}

	view, err := h.usecase.SetDeliveryFee(*payload.Fee)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCartView(view))
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	order, err := h.usecase.PlaceOrder(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromOrders(h.usecase.Orders()))
}

func (h *OrderHandler) BeginEdit(c *gin.Context) {
	view, err := h.usecase.BeginEdit(c.Param("number"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCartView(view))
}

func (h *OrderHandler) CommitEdit(c *gin.Context) {
	order, err := h.usecase.CommitEdit(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) CancelEdit(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCartView(h.usecase.CancelEdit()))
}

func (h *OrderHandler) ClearOrders(c *gin.Context) {
	if err := h.usecase.ClearOrders(c.Request.Context()); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) ResetSequence(c *gin.Context) {
	if err := h.usecase.ResetSequence(c.Request.Context()); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) MonthlySales(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromMonthlySales(h.usecase.MonthlySales()))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrItemUnavailable):
		return pkg.NewDomainErrorSimple("ITEM_UNAVAILABLE", "Item is currently unavailable", http.StatusConflict)
	case errors.Is(err, entities.ErrUnknownSize):
		return pkg.NewDomainErrorSimple("UNKNOWN_SIZE", "Unknown size for this item", http.StatusBadRequest)
	case errors.Is(err, entities.ErrItemNotPriced):
		return pkg.NewDomainErrorSimple("ITEM_NOT_PRICED", "Item has no price configured", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Your cart is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEditInProgress):
		return pkg.NewDomainErrorSimple("EDIT_IN_PROGRESS", "An order edit is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotEditing):
		return pkg.NewDomainErrorSimple("NOT_EDITING", "No order edit is in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDeliveryFee):
		return pkg.NewDomainErrorSimple("INVALID_DELIVERY_FEE", "Delivery fee must not be negative", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
