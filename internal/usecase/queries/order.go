package queries

import (
	"context"

	"github.com/linmiepii-2049/POS-sub000/internal/infra"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/errs"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderReadStore interface {
	// FindByPaymentKeys joins orders through payment intents on the
	// (transaction id, internal order id) pair.
	FindByPaymentKeys(ctx context.Context, transactionID, internalOrderID string) (*OrderView, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*OrderView, error)
}

type OrderQueries interface {
	GetOrderByNumber(ctx context.Context, orderNumber string) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetOrderByNumber(ctx context.Context, orderNumber string) (*OrderView, error) {
	view, err := q.store.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}
	return view, nil
}
