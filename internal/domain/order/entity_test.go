//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"
	"github.com/linmiepii-2049/POS-sub000/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(t *testing.T, v int32) money.Quantity {
	t.Helper()
	q, err := money.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func TestNewOrder(t *testing.T) {
	items := []order.Item{
		{ProductID: uuid.New(), ProductName: "Mooncake Gift Box", UnitPrice: money.NewMoney(880), Quantity: qty(t, 2)},
		{ProductID: uuid.New(), ProductName: "Pineapple Cake", UnitPrice: money.NewMoney(240), Quantity: qty(t, 1)},
	}

	t.Run("total must equal item sum minus discount", func(t *testing.T) {
		// 880*2 + 240 - 25 = 1975
		o, err := order.NewOrder("PO-20250901120000-abc123", uuid.New(), nil, items,
			money.NewMoney(25), money.NewMoney(1975), 500, nil, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(1975), o.TotalAmount().Twd())
		assert.Equal(t, int64(25), o.Discount().Twd())
		assert.Equal(t, int64(500), o.PointsRedeemed())
		assert.Equal(t, int32(3), o.TotalQuantity())
	})

	t.Run("rejects a drifted total", func(t *testing.T) {
		_, err := order.NewOrder("PO-20250901120000-abc123", uuid.New(), nil, items,
			money.NewMoney(25), money.NewMoney(2025), 500, nil, nil, nil)
		assert.ErrorIs(t, err, order.ErrTotalMismatch)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := order.NewOrder("PO-20250901120000-abc123", uuid.New(), nil, nil,
			money.NewMoney(0), money.NewMoney(0), 0, nil, nil, nil)
		assert.ErrorIs(t, err, order.ErrNoItems)
	})

	t.Run("discount larger than sum clamps expected total to zero", func(t *testing.T) {
		small := []order.Item{
			{ProductID: uuid.New(), ProductName: "Sample", UnitPrice: money.NewMoney(10), Quantity: qty(t, 1)},
		}
		o, err := order.NewOrder("PO-20250901120000-abc123", uuid.New(), nil, small,
			money.NewMoney(100), money.NewMoney(0), 2000, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), o.TotalAmount().Twd())
	})
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2025, 9, 1, 14, 30, 5, 0, time.UTC)

	n := order.NewOrderNumber(now)
	assert.True(t, strings.HasPrefix(n, "PO-20250901143005-"), n)

	parts := strings.Split(n, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 6)

	// suffix keeps concurrent orders from colliding within one second
	other := order.NewOrderNumber(now)
	assert.NotEqual(t, n, other)
}
