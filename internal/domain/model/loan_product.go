package model

import (
	"errors"
	"fmt"
	"slices"
)

// ---------------------------------------------------------------------------
// LoanProduct – immutable reference data
// ---------------------------------------------------------------------------

// LoanProduct describes one product on offer together with its amount, term
// and rate envelopes. Values are created once at catalog load and never change.
type LoanProduct struct {
	id          string
	name        string
	description string
	purposes    []string
	minAmount   float64
	maxAmount   float64
	rateMin     float64
	rateMax     float64
	minTerm     int
	maxTerm     int
}

// NewLoanProduct validates and constructs a LoanProduct.
func NewLoanProduct(
	id, name, description string,
	minAmount, maxAmount float64,
	minTerm, maxTerm int,
	rateMin, rateMax float64,
	purposes []string,
) (LoanProduct, error) {
	if id == "" {
		return LoanProduct{}, errors.New("product ID is required")
	}
	if name == "" {
		return LoanProduct{}, fmt.Errorf("product %s: name is required", id)
	}
	if minAmount <= 0 || minAmount > maxAmount {
		return LoanProduct{}, fmt.Errorf("product %s: invalid amount range [%v, %v]", id, minAmount, maxAmount)
	}
	if minTerm <= 0 || minTerm > maxTerm {
		return LoanProduct{}, fmt.Errorf("product %s: invalid term range [%d, %d]", id, minTerm, maxTerm)
	}
	if rateMin < 0 || rateMin > rateMax {
		return LoanProduct{}, fmt.Errorf("product %s: invalid rate range [%v, %v]", id, rateMin, rateMax)
	}
	if len(purposes) == 0 {
		return LoanProduct{}, fmt.Errorf("product %s: at least one purpose is required", id)
	}

	return LoanProduct{
		id:          id,
		name:        name,
		description: description,
		minAmount:   minAmount,
		maxAmount:   maxAmount,
		minTerm:     minTerm,
		maxTerm:     maxTerm,
		rateMin:     rateMin,
		rateMax:     rateMax,
		purposes:    slices.Clone(purposes),
	}, nil
}

func (p LoanProduct) ID() string           { return p.id }
func (p LoanProduct) Name() string         { return p.name }
func (p LoanProduct) Description() string  { return p.description }
func (p LoanProduct) MinAmount() float64   { return p.minAmount }
func (p LoanProduct) MaxAmount() float64   { return p.maxAmount }
func (p LoanProduct) MinTerm() int         { return p.minTerm }
func (p LoanProduct) MaxTerm() int         { return p.maxTerm }
func (p LoanProduct) RateMin() float64     { return p.rateMin }
func (p LoanProduct) RateMax() float64     { return p.rateMax }
func (p LoanProduct) Purposes() []string   { return slices.Clone(p.purposes) }

// AllowsPurpose reports whether purpose is one of the product's tags.
func (p LoanProduct) AllowsPurpose(purpose string) bool {
	return slices.Contains(p.purposes, purpose)
}

// DefaultPurpose is the first listed purpose.
func (p LoanProduct) DefaultPurpose() string {
	return p.purposes[0]
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

// ErrDuplicateProduct is returned when two products share an ID.
var ErrDuplicateProduct = errors.New("duplicate product ID")

// Catalog is the ordered, read-only list of loan products.
type Catalog struct {
	products []LoanProduct
}

// NewCatalog builds a catalog preserving the given order.
func NewCatalog(products ...LoanProduct) (Catalog, error) {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID()]; dup {
			return Catalog{}, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID())
		}
		seen[p.ID()] = struct{}{}
	}
	return Catalog{products: slices.Clone(products)}, nil
}

// Products returns the products in catalog order.
func (c Catalog) Products() []LoanProduct { return slices.Clone(c.products) }

// Len returns the number of products.
func (c Catalog) Len() int { return len(c.products) }

// Find looks a product up by ID.
func (c Catalog) Find(id string) (LoanProduct, bool) {
	for _, p := range c.products {
		if p.id == id {
			return p, true
		}
	}
	return LoanProduct{}, false
}
