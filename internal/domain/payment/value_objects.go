package payment

import (
	"errors"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrNoItems        = errors.New("payment must contain at least one item")
	ErrInvalidItem    = errors.New("invalid payment item")
	ErrDuplicateItems = errors.New("duplicate product in items")
)

// ItemLine is one {productId, quantity} pair of a payment intent. The list
// is committed at intent time and immutable afterwards.
type ItemLine struct {
	productID uuid.UUID
	quantity  money.Quantity
}

func NewItemLine(productID uuid.UUID, quantity int32) (ItemLine, error) {
	if productID == uuid.Nil {
		return ItemLine{}, ErrInvalidItem
	}
	qty, err := money.NewQuantity(quantity)
	if err != nil {
		return ItemLine{}, ErrInvalidItem
	}
	return ItemLine{productID: productID, quantity: qty}, nil
}

func (l ItemLine) ProductID() uuid.UUID     { return l.productID }
func (l ItemLine) Quantity() money.Quantity { return l.quantity }

func NewItemLines(lines []ItemLine) ([]ItemLine, error) {
	if len(lines) == 0 {
		return nil, ErrNoItems
	}
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.productID]; ok {
			return nil, ErrDuplicateItems
		}
		seen[l.productID] = struct{}{}
	}
	return lines, nil
}

func TotalQuantity(lines []ItemLine) int32 {
	var total int32
	for _, l := range lines {
		total += l.quantity.Int32()
	}
	return total
}
