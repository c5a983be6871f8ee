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

var errInvalidItemEditPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_EDIT_INPUT", "Invalid item edit payload", http.StatusBadRequest)

// CatalogHandler serves the three product catalogs and the per-item
// availability and detail edits the counter staff performs.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListItems(c *gin.Context) {
	catalog := entities.CatalogName(c.Param("catalog"))

	items, err := h.usecase.Items(catalog)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

func (h *CatalogHandler) ToggleAvailability(c *gin.Context) {
	item, err := h.usecase.ToggleAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

func (h *CatalogHandler) EditItem(c *gin.Context) {
	var payload request.ItemEditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemEditPayload.HTTPStatus, errInvalidItemEditPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.RenameAndReprice(c.Request.Context(), c.Param("id"), payload.ResolveName(), payload.ResolvePrice(), payload.SizePrices)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownCatalog):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATALOG", "Unknown catalog", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItemName):
		return pkg.NewDomainErrorSimple("INVALID_ITEM_NAME", "Item name must not be empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItemPrice):
		return pkg.NewDomainErrorSimple("INVALID_ITEM_PRICE", "Item price must be greater than zero", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
