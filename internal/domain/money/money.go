// Package money provides integer minor-unit currency arithmetic.
// Amounts never pass through floating point.
package money

import "errors"

var (
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Money is an amount of TWD in minor units.
type Money struct {
	twd int64
}

func NewMoney(twd int64) Money {
	return Money{twd: twd}
}

func NewNonNegative(twd int64) (Money, error) {
	if twd < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{twd: twd}, nil
}

func (m Money) Twd() int64 {
	return m.twd
}

func (m Money) IsNegative() bool {
	return m.twd < 0
}

func (m Money) Add(other Money) Money {
	return Money{twd: m.twd + other.twd}
}

func (m Money) Sub(other Money) Money {
	return Money{twd: m.twd - other.twd}
}

// SubClamped subtracts and floors the result at zero.
func (m Money) SubClamped(other Money) Money {
	v := m.twd - other.twd
	if v < 0 {
		v = 0
	}
	return Money{twd: v}
}

func (m Money) MulQuantity(q Quantity) Money {
	return Money{twd: m.twd * int64(q)}
}

// AbsDiff returns |m - other| in minor units.
func (m Money) AbsDiff(other Money) int64 {
	d := m.twd - other.twd
	if d < 0 {
		d = -d
	}
	return d
}

// Quantity is a count of units in an order line.
type Quantity int32

func NewQuantity(v int32) (Quantity, error) {
	if v <= 0 {
		return 0, ErrInvalidQuantity
	}
	return Quantity(v), nil
}

func (q Quantity) Int32() int32 {
	return int32(q)
}
