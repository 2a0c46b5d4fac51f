package routes

import (
	"github.com/gin-gonic/gin"
	catalogControllers "github.com/lahuerta/storefront-api/controllers/catalog"
	"github.com/lahuerta/storefront-api/middleware"
)

// SetupAdminRoutes registers the “/admin/*” endpoints. Requires the API key.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.POST("/catalog/reload", catalogControllers.ReloadCatalog(deps.Loader))
		adminGroup.GET("/catalog/export", catalogControllers.ExportCatalogToExcel(deps.Index))
	}
}
