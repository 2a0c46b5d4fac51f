package catalog

import (
	"errors"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/lahuerta/storefront-api/models"
)

// FallbackCategory groups products whose row carries no category.
const FallbackCategory = "Uncategorized"

// Rejection reasons for rows that cannot become products. Rejected rows are
// dropped from the catalog, never surfaced as load failures.
var (
	ErrEmptyName = errors.New("product name is empty")
	ErrBadPrice  = errors.New("product price is not a finite number")
)

// RawRow is one uncoerced sheet row. The sheet backend is loose about both
// field names (Spanish and English variants) and value types (numbers
// sometimes arrive as strings and vice versa).
type RawRow map[string]any

// NormalizeRow turns a raw sheet row into a Product or an explicit rejection.
// position is the row's index in the response, used as the id fallback.
func NormalizeRow(row RawRow, position int) (models.Product, error) {
	name := pickString(row, "Nombre", "nombre")
	if name == "" {
		return models.Product{}, ErrEmptyName
	}

	price, ok := pickPrice(row, "Precio", "precio")
	if !ok {
		return models.Product{}, ErrBadPrice
	}
	if price < 0 {
		price = 0
	}

	category := pickString(row, "Categoria", "categoria")
	if category == "" {
		category = FallbackCategory
	}

	return models.Product{
		ID:          pickID(row, position, "IdProducto", "id"),
		Name:        name,
		Description: pickString(row, "Descripción", "descripcion"),
		Price:       price,
		Image:       pickString(row, "Imagen", "imagen"),
		Category:    category,
	}, nil
}

// Normalize maps every raw row through NormalizeRow and drops the rejects.
func Normalize(rows []RawRow) []models.Product {
	products := make([]models.Product, 0, len(rows))
	dropped := 0
	for i, row := range rows {
		product, err := NormalizeRow(row, i)
		if err != nil {
			dropped++
			continue
		}
		products = append(products, product)
	}
	if dropped > 0 {
		log.Printf("⚠️ catalog: dropped %d invalid rows out of %d", dropped, len(rows))
	}
	return products
}

func pickString(row RawRow, keys ...string) string {
	for _, key := range keys {
		switch v := row[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func pickID(row RawRow, position int, keys ...string) int {
	for _, key := range keys {
		switch v := row[key].(type) {
		case float64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		}
	}
	return position + 1
}

func pickPrice(row RawRow, keys ...string) (float64, bool) {
	for _, key := range keys {
		switch v := row[key].(type) {
		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, false
			}
			return v, true
		case string:
			return ParsePrice(v), true
		}
	}
	// No price field at all still yields a sellable 0-priced product.
	return 0, true
}
