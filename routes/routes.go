package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lahuerta/storefront-api/cart"
	"github.com/lahuerta/storefront-api/catalog"
	"github.com/lahuerta/storefront-api/order"
)

// Deps bundles the owned state every route group needs. It is built once in
// main and threaded through explicitly; no package-level stores.
type Deps struct {
	Cart      *cart.Store
	Index     *catalog.Index
	Loader    *catalog.Loader
	Submitter *order.Submitter
}

// SetupRoutes is the single entry‐point that wires up the catalog, cart,
// order, and admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupCatalogRoutes(r, deps)
	SetupCartRoutes(r, deps)
	SetupOrderRoutes(r, deps)
	SetupAdminRoutes(r, deps)
}
