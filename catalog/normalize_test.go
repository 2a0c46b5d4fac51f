package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRowSpanishFields(t *testing.T) {
	row := RawRow{
		"IdProducto":  "3",
		"Nombre":      "Bolsa de lechuga Romana (125 gr)",
		"Descripción": "Cosecha fresca",
		"Precio":      "8500",
		"Imagen":      "romana.png",
		"Categoria":   "Bolsas sencillas",
	}

	p, err := NormalizeRow(row, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, p.ID)
	assert.Equal(t, "Bolsa de lechuga Romana (125 gr)", p.Name)
	assert.Equal(t, "Cosecha fresca", p.Description)
	assert.Equal(t, 8500.0, p.Price)
	assert.Equal(t, "romana.png", p.Image)
	assert.Equal(t, "Bolsas sencillas", p.Category)
}

func TestNormalizeRowEnglishFieldsAndNumericValues(t *testing.T) {
	row := RawRow{
		"id":     float64(14),
		"nombre": "Mermelada (250 gr)",
		"precio": float64(18000),
	}

	p, err := NormalizeRow(row, 5)
	require.NoError(t, err)
	assert.Equal(t, 14, p.ID)
	assert.Equal(t, 18000.0, p.Price)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, FallbackCategory, p.Category)
}

func TestNormalizeRowEmptyNameIsRejected(t *testing.T) {
	_, err := NormalizeRow(RawRow{"Nombre": "   ", "Precio": "8500"}, 0)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNormalizeRowUnsalvageablePriceDefaultsToZero(t *testing.T) {
	p, err := NormalizeRow(RawRow{"Nombre": "Chocoteja", "Precio": "a convenir"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Price)
}

func TestNormalizeRowMissingPriceDefaultsToZero(t *testing.T) {
	p, err := NormalizeRow(RawRow{"Nombre": "Chocoteja"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Price)
}

func TestNormalizeRowNegativePriceClampedToZero(t *testing.T) {
	p, err := NormalizeRow(RawRow{"Nombre": "Chocoteja", "Precio": "-4000"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Price)
}

func TestNormalizeRowIDFallsBackToPosition(t *testing.T) {
	p, err := NormalizeRow(RawRow{"Nombre": "Mix", "Precio": "8500", "IdProducto": "n/a"}, 7)
	require.NoError(t, err)
	assert.Equal(t, 8, p.ID)

	p, err = NormalizeRow(RawRow{"Nombre": "Mix", "Precio": "8500"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
}

func TestNormalizeDropsRejectedRowsOnly(t *testing.T) {
	rows := []RawRow{
		{"Nombre": "Mix (125 gr)", "Precio": "8500"},
		{"Nombre": "", "Precio": "6000"},
		{"Nombre": "Chimichurri (180 gr)", "Precio": "18.000,50"},
	}

	products := Normalize(rows)
	require.Len(t, products, 2)
	assert.Equal(t, "Mix (125 gr)", products[0].Name)
	assert.Equal(t, 18000.50, products[1].Price)
	// Positional fallback counts rejected rows too
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, 3, products[1].ID)
}
