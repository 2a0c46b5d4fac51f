package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lahuerta/storefront-api/cart"
	"github.com/lahuerta/storefront-api/catalog"
	"github.com/lahuerta/storefront-api/models"
	"github.com/lahuerta/storefront-api/order"
)

// CheckoutRequest carries the buyer-contact form. Every field is optional;
// the builder trims and defaults them.
type CheckoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// POST /checkout
func Checkout(store *cart.Store, index *catalog.Index, submitter *order.Submitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
				return
			}
		}

		snapshot := store.Read()
		if len(snapshot) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		payload := order.Build(snapshot, index, models.BuyerInfo{
			Name:    req.Name,
			Phone:   req.Phone,
			City:    req.City,
			Address: req.Address,
			Notes:   req.Notes,
		})

		outcome, err := submitter.Submit(payload)
		if err != nil {
			if errors.Is(err, order.ErrSubmissionInProgress) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusAccepted, gin.H{
			"message": "Order placed successfully",
			"outcome": outcome,
			"order":   payload,
		})
	}
}
