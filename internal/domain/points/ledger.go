// Package points validates loyalty-point redemptions and converts points
// to a monetary discount. Balances are debited only when an order
// materializes; validation here never mutates anything.
package points

import (
	"errors"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrNotLineLinked       = errors.New("user has no LINE-linked membership")
	ErrNonPositivePoints   = errors.New("points to redeem must be positive")
	ErrInsufficientBalance = errors.New("points exceed balance")
)

// Account is a snapshot of a user's points state at validation time.
type Account struct {
	UserID     uuid.UUID
	LineLinked bool
	Balance    int64
}

// ValidateRedemption checks eligibility and balance. Deterministic for a
// given snapshot; callers run it once at quote time and again at confirm
// time because the balance may have changed in between.
func ValidateRedemption(acct Account, pts int64) error {
	if !acct.LineLinked {
		return ErrNotLineLinked
	}
	if pts <= 0 {
		return ErrNonPositivePoints
	}
	if pts > acct.Balance {
		return ErrInsufficientBalance
	}
	return nil
}

// Converter turns a points amount into a TWD discount at a fixed rate.
type Converter struct {
	rate int64 // points per 1 TWD minor unit of discount
}

func NewConverter(rate int64) Converter {
	if rate <= 0 {
		rate = 1
	}
	return Converter{rate: rate}
}

func (c Converter) Rate() int64 {
	return c.rate
}

// DiscountFor is pure floor division: same input, same output.
func (c Converter) DiscountFor(pts int64) money.Money {
	if pts <= 0 {
		return money.NewMoney(0)
	}
	return money.NewMoney(pts / c.rate)
}
