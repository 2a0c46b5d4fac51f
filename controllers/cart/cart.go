package cartControllers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lahuerta/storefront-api/cart"
	"github.com/lahuerta/storefront-api/catalog"
	"github.com/lahuerta/storefront-api/models"
	"github.com/shopspring/decimal"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// cartLine is one row of the priced cart view.
type cartLine struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal float64        `json:"subtotal"`
}

// GET /cart
func GetCart(store *cart.Store, index *catalog.Index) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := store.Read()

		ids := make([]string, 0, len(snapshot))
		for id := range snapshot {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			a, errA := strconv.Atoi(ids[i])
			b, errB := strconv.Atoi(ids[j])
			if errA == nil && errB == nil {
				return a < b
			}
			return ids[i] < ids[j]
		})

		// Stale ids from an older catalog are simply not shown.
		total := decimal.Zero
		lines := make([]cartLine, 0, len(ids))
		for _, idStr := range ids {
			id, err := strconv.Atoi(idStr)
			if err != nil {
				continue
			}
			product, ok := index.Find(id)
			if !ok {
				continue
			}
			quantity := snapshot[idStr]
			subtotal := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(quantity)))
			total = total.Add(subtotal)
			lines = append(lines, cartLine{
				Product:  product,
				Quantity: quantity,
				Subtotal: subtotal.InexactFloat64(),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"cart":  snapshot,
			"items": lines,
			"total": total.Round(2).InexactFloat64(),
		})
	}
}

// POST /cart/items
func AddCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		store.Add(input.ProductID, input.Quantity)
		c.JSON(http.StatusOK, gin.H{"cart": store.Read()})
	}
}

// DELETE /cart/items/:product_id (?all=true drops the line entirely)
func RemoveCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}
		if c.Query("all") == "true" {
			store.RemoveAll(productID)
		} else {
			store.RemoveOne(productID)
		}
		c.JSON(http.StatusOK, gin.H{"cart": store.Read()})
	}
}

// DELETE /cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
