package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lahuerta/storefront-api/catalog"
)

// GET /catalog
func GetCatalog(loader *catalog.Loader, index *catalog.Index) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     loader.Status(),
			"categories": index.GroupByCategory(),
		})
	}
}

// GET /catalog/products/:id
func GetProductByID(index *catalog.Index) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		product, ok := index.Find(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// POST /admin/catalog/reload
func ReloadCatalog(loader *catalog.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := loader.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Catalog reloaded successfully"})
	}
}
