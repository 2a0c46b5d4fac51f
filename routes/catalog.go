package routes

import (
	"github.com/gin-gonic/gin"
	catalogControllers "github.com/lahuerta/storefront-api/controllers/catalog"
)

func SetupCatalogRoutes(r *gin.Engine, deps Deps) {
	catalogGroup := r.Group("/catalog")
	{
		// Grouped catalog plus loader status
		catalogGroup.GET("/", catalogControllers.GetCatalog(deps.Loader, deps.Index))

		// Single product lookup
		catalogGroup.GET("/products/:id", catalogControllers.GetProductByID(deps.Index))
	}
}
