package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/lahuerta/storefront-api/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	// Build the order from the current cart and fire it at the endpoint
	r.POST("/checkout", orderControllers.Checkout(deps.Cart, deps.Index, deps.Submitter))

	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderFeedHandler)
}
