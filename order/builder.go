package order

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lahuerta/storefront-api/catalog"
	"github.com/lahuerta/storefront-api/models"
	"github.com/shopspring/decimal"
)

// Build joins a cart snapshot with the catalog index into a priced order
// payload. It touches no storage and no network. A cart id missing from the
// catalog becomes a placeholder line: the raw id as the display name at unit
// price 0, so a stale cart never breaks the total.
func Build(cartSnapshot map[string]int, index *catalog.Index, buyer models.BuyerInfo) models.Order {
	ids := make([]string, 0, len(cartSnapshot))
	for id := range cartSnapshot {
		ids = append(ids, id)
	}
	// Numeric-ascending where possible, so payload order is deterministic.
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})

	total := decimal.Zero
	items := make([]models.LineItem, 0, len(ids))
	for _, idStr := range ids {
		quantity := cartSnapshot[idStr]
		if quantity <= 0 {
			continue
		}

		productID := 0
		name := idStr
		unitPrice := 0.0
		if id, err := strconv.Atoi(idStr); err == nil {
			productID = id
			if product, ok := index.Find(id); ok {
				name = product.Name
				unitPrice = product.Price
			}
		}

		subtotal := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
		total = total.Add(subtotal)
		items = append(items, models.LineItem{
			ProductID: productID,
			Name:      name,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal.InexactFloat64(),
		})
	}

	return models.Order{
		OrderRef:  generateOrderRef(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		BuyerInfo: trimBuyer(buyer),
		Items:     items,
		Total:     total.Round(2).InexactFloat64(),
	}
}

// Example: 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func trimBuyer(b models.BuyerInfo) models.BuyerInfo {
	b.Name = strings.TrimSpace(b.Name)
	b.Phone = strings.TrimSpace(b.Phone)
	b.City = strings.TrimSpace(b.City)
	b.Address = strings.TrimSpace(b.Address)
	b.Notes = strings.TrimSpace(b.Notes)
	return b
}
