//go:build unit

package payment_test

import (
	"testing"
	"time"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"
	"github.com/linmiepii-2049/POS-sub000/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, qty int32) payment.ItemLine {
	t.Helper()
	line, err := payment.NewItemLine(uuid.New(), qty)
	require.NoError(t, err)
	return line
}

func TestItemLines(t *testing.T) {
	t.Run("rejects empty list", func(t *testing.T) {
		_, err := payment.NewItemLines(nil)
		assert.ErrorIs(t, err, payment.ErrNoItems)
	})

	t.Run("rejects duplicate products", func(t *testing.T) {
		productID := uuid.New()
		a, err := payment.NewItemLine(productID, 1)
		require.NoError(t, err)
		b, err := payment.NewItemLine(productID, 2)
		require.NoError(t, err)

		_, err = payment.NewItemLines([]payment.ItemLine{a, b})
		assert.ErrorIs(t, err, payment.ErrDuplicateItems)
	})

	t.Run("rejects nil product and non-positive quantity", func(t *testing.T) {
		_, err := payment.NewItemLine(uuid.Nil, 1)
		assert.ErrorIs(t, err, payment.ErrInvalidItem)

		_, err = payment.NewItemLine(uuid.New(), 0)
		assert.ErrorIs(t, err, payment.ErrInvalidItem)
	})

	t.Run("TotalQuantity sums lines", func(t *testing.T) {
		lines := []payment.ItemLine{mustLine(t, 2), mustLine(t, 3)}
		assert.Equal(t, int32(5), payment.TotalQuantity(lines))
	})
}

func TestIntent(t *testing.T) {
	pickup := time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC)

	newIntent := func(t *testing.T) *payment.Intent {
		t.Helper()
		intent, err := payment.NewIntent(
			"2025090112345678901",
			uuid.New().String(),
			uuid.New(),
			[]payment.ItemLine{mustLine(t, 2)},
			money.NewMoney(1760),
			pickup,
			nil,
			0,
		)
		require.NoError(t, err)
		return intent
	}

	t.Run("starts pending", func(t *testing.T) {
		intent := newIntent(t)
		assert.Equal(t, payment.StatusPending, intent.Status())
		assert.False(t, intent.IsConfirmed())
		assert.NotEqual(t, uuid.Nil, intent.ID())
	})

	t.Run("requires both keys", func(t *testing.T) {
		_, err := payment.NewIntent("", "order-1", uuid.New(), []payment.ItemLine{mustLine(t, 1)}, money.NewMoney(100), pickup, nil, 0)
		assert.ErrorIs(t, err, payment.ErrEmptyTransactionID)

		_, err = payment.NewIntent("txn-1", "", uuid.New(), []payment.ItemLine{mustLine(t, 1)}, money.NewMoney(100), pickup, nil, 0)
		assert.ErrorIs(t, err, payment.ErrEmptyInternalOrderID)
	})

	t.Run("rejects negative amount and points", func(t *testing.T) {
		_, err := payment.NewIntent("txn-1", "order-1", uuid.New(), []payment.ItemLine{mustLine(t, 1)}, money.NewMoney(-1), pickup, nil, 0)
		assert.ErrorIs(t, err, payment.ErrNegativeAmount)

		_, err = payment.NewIntent("txn-1", "order-1", uuid.New(), []payment.ItemLine{mustLine(t, 1)}, money.NewMoney(100), pickup, nil, -5)
		assert.ErrorIs(t, err, payment.ErrNegativePoints)
	})

	t.Run("confirmed is terminal", func(t *testing.T) {
		intent := newIntent(t)

		require.NoError(t, intent.Confirm())
		assert.True(t, intent.IsConfirmed())

		assert.ErrorIs(t, intent.Confirm(), payment.ErrAlreadyConfirmed)

		// Fail never downgrades a confirmed intent
		intent.Fail()
		assert.Equal(t, payment.StatusConfirmed, intent.Status())
	})

	t.Run("failed intent can still be confirmed on retry", func(t *testing.T) {
		intent := newIntent(t)
		intent.Fail()
		assert.Equal(t, payment.StatusFailed, intent.Status())

		require.NoError(t, intent.Confirm())
		assert.True(t, intent.IsConfirmed())
	})
}
