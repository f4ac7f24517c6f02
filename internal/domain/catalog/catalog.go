package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidCatalog is returned by Validate when a record breaks a catalog invariant.
var ErrInvalidCatalog = errors.New("invalid catalog")

// PriceItem is a single line of the price list.
type PriceItem struct {
	Name     string
	Price    decimal.Decimal // per kg
	MinOrder decimal.Decimal // kg
}

// StockItem represents what is currently on the warehouse shelves.
// A zero Quantity means the item is out of stock. Fractional quantities
// ("0.5 т") are kept as written.
type StockItem struct {
	Name     string
	Quantity decimal.Decimal
	Unit     string
}

// Shipment is an expected delivery. Date is free-form ("15 марта", "конец месяца").
type Shipment struct {
	Name     string
	Date     string
	Quantity decimal.Decimal // kg
}

// Catalog is the whole static business data set. It is built once at startup
// and never mutated afterwards, so it is safe for concurrent readers.
type Catalog struct {
	Prices   []PriceItem
	Stock    []StockItem
	Upcoming []Shipment
	Contacts string
}

// Validate checks the invariants of every record and reports the first violation.
func (c *Catalog) Validate() error {
	for i, p := range c.Prices {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: price item #%d has empty name", ErrInvalidCatalog, i+1)
		}
		if p.Price.IsNegative() {
			return fmt.Errorf("%w: price item %q has negative price %s", ErrInvalidCatalog, p.Name, p.Price)
		}
		if p.MinOrder.IsNegative() {
			return fmt.Errorf("%w: price item %q has negative min order %s", ErrInvalidCatalog, p.Name, p.MinOrder)
		}
	}

	for i, s := range c.Stock {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("%w: stock item #%d has empty name", ErrInvalidCatalog, i+1)
		}
		if s.Quantity.IsNegative() {
			return fmt.Errorf("%w: stock item %q has negative quantity %s", ErrInvalidCatalog, s.Name, s.Quantity)
		}
	}

	for i, u := range c.Upcoming {
		if strings.TrimSpace(u.Name) == "" {
			return fmt.Errorf("%w: shipment #%d has empty name", ErrInvalidCatalog, i+1)
		}
		if u.Quantity.IsNegative() {
			return fmt.Errorf("%w: shipment %q has negative quantity %s", ErrInvalidCatalog, u.Name, u.Quantity)
		}
	}

	return nil
}
