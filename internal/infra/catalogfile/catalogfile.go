// Package catalogfile loads the static catalog from a YAML document.
package catalogfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"wholesale_catalog_bot/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

type priceRecord struct {
	Name     string          `yaml:"name"`
	Price    decimal.Decimal `yaml:"price"`
	MinOrder decimal.Decimal `yaml:"min_order"`
}

type stockRecord struct {
	Name     string          `yaml:"name"`
	Quantity decimal.Decimal `yaml:"quantity"`
	Unit     string          `yaml:"unit"`
}

type shipmentRecord struct {
	Name     string          `yaml:"name"`
	Date     string          `yaml:"date"`
	Quantity decimal.Decimal `yaml:"quantity"`
}

type document struct {
	Prices   []priceRecord    `yaml:"prices"`
	Stock    []stockRecord    `yaml:"stock"`
	Upcoming []shipmentRecord `yaml:"upcoming"`
	Contacts string           `yaml:"contacts"`
}

// Load reads and validates the catalog at path. An empty path selects the
// catalog embedded in the binary.
func Load(path string) (*catalog.Catalog, error) {
	if path == "" {
		return Parse(bytes.NewReader(defaultCatalog))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog. Unknown keys are rejected so that typos in
// hand-edited files fail at startup instead of silently hiding data.
func Parse(r io.Reader) (*catalog.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := &catalog.Catalog{
		Prices:   make([]catalog.PriceItem, 0, len(doc.Prices)),
		Stock:    make([]catalog.StockItem, 0, len(doc.Stock)),
		Upcoming: make([]catalog.Shipment, 0, len(doc.Upcoming)),
		Contacts: strings.TrimRight(doc.Contacts, "\n"),
	}
	for _, p := range doc.Prices {
		c.Prices = append(c.Prices, catalog.PriceItem{Name: p.Name, Price: p.Price, MinOrder: p.MinOrder})
	}
	for _, s := range doc.Stock {
		c.Stock = append(c.Stock, catalog.StockItem{Name: s.Name, Quantity: s.Quantity, Unit: s.Unit})
	}
	for _, u := range doc.Upcoming {
		c.Upcoming = append(c.Upcoming, catalog.Shipment{Name: u.Name, Date: u.Date, Quantity: u.Quantity})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
