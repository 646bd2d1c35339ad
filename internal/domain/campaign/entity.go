// Package campaign models a time-boxed preorder offering with fixed
// per-product supply.
package campaign

import (
	"errors"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrProductNotInCampaign = errors.New("product not in campaign")
	ErrQuantityExceedsStock = errors.New("quantity exceeds remaining stock")
)

type Product struct {
	ProductID        uuid.UUID
	ProductName      string
	UnitPrice        money.Money
	SupplyQuantity   int32
	ReservedQuantity int32
}

// Remaining is derived, never stored.
func (p Product) Remaining() int32 {
	return p.SupplyQuantity - p.ReservedQuantity
}

type Campaign struct {
	id       uuid.UUID
	name     string
	products []Product
}

func NewCampaign(id uuid.UUID, name string, products []Product) *Campaign {
	return &Campaign{
		id:       id,
		name:     name,
		products: products,
	}
}

func (c *Campaign) ID() uuid.UUID       { return c.id }
func (c *Campaign) Name() string        { return c.name }
func (c *Campaign) Products() []Product { return c.products }

func (c *Campaign) FindProduct(productID uuid.UUID) (Product, error) {
	for _, p := range c.products {
		if p.ProductID == productID {
			return p, nil
		}
	}
	return Product{}, ErrProductNotInCampaign
}

// CheckAvailability is the read-only quote-time check. The authoritative
// check is the conditional reservation at confirm time.
func (c *Campaign) CheckAvailability(productID uuid.UUID, qty money.Quantity) error {
	p, err := c.FindProduct(productID)
	if err != nil {
		return err
	}
	if qty.Int32() > p.Remaining() {
		return ErrQuantityExceedsStock
	}
	return nil
}
