package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain integer", "8500", 8500},
		{"thousands dot with decimal comma", "18.000,50", 18000.50},
		{"currency symbol and spaces", "$ 8.500", 8500},
		{"millions", "1.234.567,89", 1234567.89},
		{"decimal comma only", "8500,75", 8500.75},
		{"plain decimal point", "8.5", 8.5},
		{"unsalvageable", "gratis", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParsePrice(tt.raw), 1e-9)
		})
	}
}
