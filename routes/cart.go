package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/lahuerta/storefront-api/controllers/cart"
)

func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cartControllers.GetCart(deps.Cart, deps.Index))                // GET /cart
		cartGroup.POST("/items", cartControllers.AddCartItem(deps.Cart))                  // POST /cart/items
		cartGroup.DELETE("/items/:product_id", cartControllers.RemoveCartItem(deps.Cart)) // DELETE /cart/items/:product_id
		cartGroup.DELETE("/", cartControllers.ClearCart(deps.Cart))                       // DELETE /cart
	}
}
