package routes

import (
	"pizzamaster/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalogs = "/catalogs"
	PathItems    = "/items"
	PathCart     = "/cart"
	PathOrders   = "/orders"
	PathSales    = "/sales"
)

func addPosRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, orderHandler *handlers.OrderHandler) {
	catalogs := rg.Group(PathCatalogs)
	{
		catalogs.GET("/:catalog/items", catalogHandler.ListItems)
	}

	items := rg.Group(PathItems)
	{
		items.PATCH("/:id/availability", catalogHandler.ToggleAvailability)
		items.PUT("/:id", catalogHandler.EditItem)
	}

	cart := rg.Group(PathCart)
	{
		cart.GET("", orderHandler.GetCart)
		cart.POST("/items", orderHandler.AddToCart)
		cart.PATCH("/items", orderHandler.AdjustQuantity)
		cart.DELETE("/items", orderHandler.RemoveFromCart)
		cart.PUT("/delivery-fee", orderHandler.SetDeliveryFee)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.PlaceOrder)
		orders.DELETE("", orderHandler.ClearOrders)
		orders.POST("/:number/edit", orderHandler.BeginEdit)
		orders.PUT("/edit", orderHandler.CommitEdit)
		orders.DELETE("/edit", orderHandler.CancelEdit)
		orders.POST("/sequence/reset", orderHandler.ResetSequence)
	}

	sales := rg.Group(PathSales)
	{
		sales.GET("/monthly", orderHandler.MonthlySales)
	}
}
