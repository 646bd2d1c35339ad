//go:build unit

package money_test

import (
	"testing"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("arithmetic stays in integer minor units", func(t *testing.T) {
		a := money.NewMoney(150)
		b := money.NewMoney(50)

		assert.Equal(t, int64(200), a.Add(b).Twd())
		assert.Equal(t, int64(100), a.Sub(b).Twd())
		assert.Equal(t, int64(100), b.Sub(a).Twd()*-1)
	})

	t.Run("NewNonNegative rejects negative amounts", func(t *testing.T) {
		_, err := money.NewNonNegative(-1)
		assert.ErrorIs(t, err, money.ErrNegativeAmount)

		m, err := money.NewNonNegative(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Twd())
	})

	t.Run("SubClamped floors at zero", func(t *testing.T) {
		total := money.NewMoney(100)
		discount := money.NewMoney(250)

		assert.Equal(t, int64(0), total.SubClamped(discount).Twd())
		assert.Equal(t, int64(50), total.SubClamped(money.NewMoney(50)).Twd())
	})

	t.Run("MulQuantity", func(t *testing.T) {
		qty, err := money.NewQuantity(3)
		require.NoError(t, err)

		assert.Equal(t, int64(450), money.NewMoney(150).MulQuantity(qty).Twd())
	})

	t.Run("AbsDiff is symmetric", func(t *testing.T) {
		a := money.NewMoney(9975)
		b := money.NewMoney(10025)

		assert.Equal(t, int64(50), a.AbsDiff(b))
		assert.Equal(t, int64(50), b.AbsDiff(a))
		assert.Equal(t, int64(0), a.AbsDiff(a))
	})
}

func TestQuantity(t *testing.T) {
	cases := []struct {
		name  string
		value int32
		errIs error
	}{
		{name: "positive", value: 1},
		{name: "large", value: 10000},
		{name: "zero", value: 0, errIs: money.ErrInvalidQuantity},
		{name: "negative", value: -5, errIs: money.ErrInvalidQuantity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := money.NewQuantity(tc.value)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, q.Int32())
		})
	}
}
