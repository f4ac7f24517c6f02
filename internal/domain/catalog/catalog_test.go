package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalog() *Catalog {
	return &Catalog{
		Prices: []PriceItem{
			{Name: "Клубника", Price: decimal.NewFromInt(180), MinOrder: decimal.NewFromInt(50)},
		},
		Stock: []StockItem{
			{Name: "Клубника", Quantity: decimal.NewFromInt(1200), Unit: "кг"},
			{Name: "Малина", Quantity: decimal.Zero, Unit: "кг"},
		},
		Upcoming: []Shipment{
			{Name: "Вишня", Date: "15 марта", Quantity: decimal.NewFromInt(1000)},
		},
		Contacts: "Менеджер: Иван",
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validCatalog().Validate())
	require.NoError(t, (&Catalog{}).Validate())
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
	}{
		{"negative price", func(c *Catalog) { c.Prices[0].Price = decimal.NewFromInt(-1) }},
		{"negative min order", func(c *Catalog) { c.Prices[0].MinOrder = decimal.NewFromInt(-5) }},
		{"empty price name", func(c *Catalog) { c.Prices[0].Name = "  " }},
		{"negative stock", func(c *Catalog) { c.Stock[1].Quantity = decimal.RequireFromString("-0.5") }},
		{"empty stock name", func(c *Catalog) { c.Stock[0].Name = "" }},
		{"negative shipment", func(c *Catalog) { c.Upcoming[0].Quantity = decimal.NewFromInt(-10) }},
		{"empty shipment name", func(c *Catalog) { c.Upcoming[0].Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCatalog()
			tt.mutate(c)

			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}
