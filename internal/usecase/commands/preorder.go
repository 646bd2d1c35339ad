package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/campaign"
	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"
	"github.com/linmiepii-2049/POS-sub000/internal/domain/order"
	"github.com/linmiepii-2049/POS-sub000/internal/domain/payment"
	"github.com/linmiepii-2049/POS-sub000/internal/domain/points"
	"github.com/linmiepii-2049/POS-sub000/internal/infra"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/db"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/gateway"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/clock"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/errs"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/queries"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrValidation           = errs.New("invalid payment request")
	ErrCampaignNotFound     = errs.New("campaign not found")
	ErrProductNotInCampaign = errs.New("product not in campaign")
	ErrQuotaExceeded        = errs.New("quota exceeded")
	ErrPointsRedeemInvalid  = errs.New("points redemption invalid")
	ErrAmountMismatch       = errs.New("amount mismatch")
	ErrGatewayFailed        = errs.New("payment gateway failed")
	ErrPaymentStorageFailed = errs.New("payment storage failed")
	ErrPaymentNotFound      = errs.New("payment not found")
)

// confirmAmountTolerance absorbs rounding drift between the quoted and the
// recomputed total, in TWD minor units. Anything beyond it is treated as
// tampering between intent and confirm.
const confirmAmountTolerance = 1

type preorderCommandsImpl struct {
	uow       shared.UnitOfWork
	intents   shared.PaymentIntentRepository
	quota     shared.QuotaRepository
	orders    shared.OrderRepository
	points    shared.PointsRepository
	campaigns shared.CampaignReadStore
	accounts  shared.PointsAccountReadStore
	orderView queries.OrderReadStore
	gateway   GatewayClient
	converter points.Converter
	clock     clock.Clock
}

func NewPreorderCommands(
	uow shared.UnitOfWork,
	intents shared.PaymentIntentRepository,
	quota shared.QuotaRepository,
	orders shared.OrderRepository,
	pointsRepo shared.PointsRepository,
	campaigns shared.CampaignReadStore,
	accounts shared.PointsAccountReadStore,
	orderView queries.OrderReadStore,
	gatewayClient GatewayClient,
	converter points.Converter,
	clock clock.Clock,
) PreorderCommands {
	return &preorderCommandsImpl{
		uow:       uow,
		intents:   intents,
		quota:     quota,
		orders:    orders,
		points:    pointsRepo,
		campaigns: campaigns,
		accounts:  accounts,
		orderView: orderView,
		gateway:   gatewayClient,
		converter: converter,
		clock:     clock,
	}
}

// quote is the priced validation of a request against the current catalog
// state. It is computed at intent time and recomputed at confirm time; both
// must be deterministic given the same snapshot.
type quote struct {
	lines    []payment.ItemLine
	gateway  []gateway.LineItem
	gross    money.Money
	discount money.Money
	total    money.Money
}

func (p *preorderCommandsImpl) RequestPayment(ctx context.Context, in RequestPaymentInput) (*RequestPaymentResult, error) {
	lines, err := toItemLines(in.Items)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if in.PickupDate.IsZero() {
		return nil, errs.Mark(errs.New("pickup date required"), ErrValidation)
	}
	if in.PointsToRedeem < 0 {
		return nil, errs.Mark(errs.New("points to redeem cannot be negative"), ErrValidation)
	}

	camp, err := p.loadCampaign(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}

	q, err := p.buildQuote(ctx, camp, lines, in.UserID, in.PointsToRedeem)
	if err != nil {
		return nil, err
	}

	// Read-only availability gate, intent time only. The authoritative check
	// is the conditional reserve at confirm; re-checking here on a retrying
	// confirm would reject a payment whose own reservation already landed.
	for _, line := range lines {
		if err := camp.CheckAvailability(line.ProductID(), line.Quantity()); err != nil {
			return nil, errs.Mark(err, ErrQuotaExceeded)
		}
	}

	internalOrderID := uuid.New().String()

	opened, err := p.gateway.OpenPayment(ctx, gateway.OpenPaymentInput{
		OrderID:     internalOrderID,
		Amount:      q.total,
		Description: camp.Name(),
		Items:       q.gateway,
		Discount:    q.discount,
	})
	if err != nil {
		if errors.Is(err, gateway.ErrAmountMismatch) {
			return nil, errs.Mark(err, ErrAmountMismatch)
		}
		slog.Error("gateway open payment failed",
			"order_id", internalOrderID,
			"campaign_id", in.CampaignID,
			"amount_twd", q.total.Twd(),
			"error", err.Error())
		return nil, errs.Mark(err, ErrGatewayFailed)
	}

	intent, err := payment.NewIntent(
		opened.TransactionID,
		internalOrderID,
		camp.ID(),
		lines,
		q.total,
		in.PickupDate,
		in.UserID,
		in.PointsToRedeem,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = p.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return p.intents.Insert(ctx, dbtx, intent)
	})
	if err != nil {
		// An open payment with no durable record is unrecoverable; never
		// hand the payment URL to the client in this state.
		slog.Error("failed to persist payment intent after gateway open",
			"transaction_id", opened.TransactionID,
			"order_id", internalOrderID,
			"campaign_id", camp.ID(),
			"amount_twd", q.total.Twd(),
			"error", err.Error())
		return nil, errs.Mark(err, ErrPaymentStorageFailed)
	}

	return &RequestPaymentResult{
		PaymentURL:     opened.PaymentURL,
		TransactionID:  opened.TransactionID,
		OrderID:        internalOrderID,
		TotalAmountTwd: q.total.Twd(),
	}, nil
}

func (p *preorderCommandsImpl) ConfirmPayment(ctx context.Context, in ConfirmPaymentInput) (*ConfirmPaymentResult, error) {
	if in.TransactionID == "" || in.InternalOrderID == "" {
		return nil, errs.Mark(errs.New("transaction id and order id required"), ErrValidation)
	}

	intent, err := p.loadIntent(ctx, in.TransactionID, in.InternalOrderID)
	if err != nil {
		return nil, err
	}

	// Idempotent replay: a confirmed intent already has its order; return
	// it without touching the gateway or quota again.
	if intent.IsConfirmed() {
		return p.replayResult(ctx, intent)
	}

	camp, err := p.loadCampaign(ctx, intent.CampaignID())
	if err != nil {
		return nil, err
	}

	q, err := p.buildQuote(ctx, camp, intent.Items(), intent.UserID(), intent.PointsToRedeem())
	if err != nil {
		return nil, err
	}
	if q.total.AbsDiff(intent.TotalAmount()) > confirmAmountTolerance {
		slog.Warn("confirm amount diverged from stored intent",
			"transaction_id", intent.TransactionID(),
			"order_id", intent.InternalOrderID(),
			"stored_twd", intent.TotalAmount().Twd(),
			"recomputed_twd", q.total.Twd())
		return nil, errs.Mark(errs.New("recomputed amount diverges from intent"), ErrAmountMismatch)
	}

	if _, err := p.gateway.ConfirmPayment(ctx, intent.TransactionID(), intent.TotalAmount()); err != nil {
		return p.recoverFromConfirmError(ctx, intent, err)
	}

	// From here the provider has settled; everything is append-only
	// forward progress. Failures surface as retryable and land on the
	// replay or duplicate-detection path.
	if err := p.reserveAll(ctx, intent); err != nil {
		return nil, err
	}

	if err := p.materialize(ctx, intent, camp, q, in); err != nil {
		return nil, err
	}

	view, err := p.orderView.FindByPaymentKeys(ctx, intent.TransactionID(), intent.InternalOrderID())
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentStorageFailed)
	}
	return p.buildResult(ctx, intent, view, false)
}

func (p *preorderCommandsImpl) loadCampaign(ctx context.Context, campaignID uuid.UUID) (*campaign.Campaign, error) {
	camp, err := p.campaigns.FindSnapshot(ctx, campaignID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, errs.Mark(err, ErrPaymentStorageFailed)
	}
	return camp, nil
}

func (p *preorderCommandsImpl) loadIntent(ctx context.Context, transactionID, internalOrderID string) (*payment.Intent, error) {
	var intent *payment.Intent
	err := p.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, err := p.intents.FindByKeys(ctx, dbtx, transactionID, internalOrderID)
		if err != nil {
			return err
		}
		intent = found
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("confirm called for unknown payment",
				"transaction_id", transactionID,
				"order_id", internalOrderID)
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Mark(err, ErrPaymentStorageFailed)
	}
	return intent, nil
}

func (p *preorderCommandsImpl) buildQuote(
	ctx context.Context,
	camp *campaign.Campaign,
	lines []payment.ItemLine,
	userID *uuid.UUID,
	pointsToRedeem int64,
) (*quote, error) {
	q := &quote{lines: lines, gross: money.NewMoney(0)}

	for _, line := range lines {
		product, err := camp.FindProduct(line.ProductID())
		if err != nil {
			return nil, errs.Mark(err, ErrProductNotInCampaign)
		}
		q.gross = q.gross.Add(product.UnitPrice.MulQuantity(line.Quantity()))
		q.gateway = append(q.gateway, gateway.LineItem{
			Name:      product.ProductName,
			UnitPrice: product.UnitPrice,
			Quantity:  line.Quantity(),
		})
	}

	q.discount = money.NewMoney(0)
	if pointsToRedeem > 0 {
		if userID == nil {
			return nil, errs.Mark(errs.New("points redemption requires a user"), ErrPointsRedeemInvalid)
		}
		acct, err := p.accounts.FindAccount(ctx, *userID)
		if err != nil {
			return nil, errs.Mark(err, ErrPointsRedeemInvalid)
		}
		if err := points.ValidateRedemption(acct, pointsToRedeem); err != nil {
			slog.Warn("points redemption rejected",
				"user_id", *userID,
				"points", pointsToRedeem,
				"balance", acct.Balance,
				"error", err.Error())
			return nil, errs.Mark(err, ErrPointsRedeemInvalid)
		}
		q.discount = p.converter.DiscountFor(pointsToRedeem)
		// Cap at the gross amount so the line items handed to the gateway
		// (discount as a negative line) always sum to the total exactly.
		if q.discount.Twd() > q.gross.Twd() {
			q.discount = q.gross
		}
	}

	q.total = q.gross.Sub(q.discount)
	return q, nil
}

// recoverFromConfirmError resolves a failed provider confirm. A duplicate
// style error is evidence that a prior confirm already succeeded upstream:
// if the order exists locally this call converges on it, otherwise the
// error propagates for the client to retry.
func (p *preorderCommandsImpl) recoverFromConfirmError(ctx context.Context, intent *payment.Intent, confirmErr error) (*ConfirmPaymentResult, error) {
	if gateway.IsDuplicateOrderError(confirmErr) {
		view, err := p.orderView.FindByPaymentKeys(ctx, intent.TransactionID(), intent.InternalOrderID())
		if err == nil {
			slog.Info("recovered duplicate gateway confirm to existing order",
				"transaction_id", intent.TransactionID(),
				"order_id", intent.InternalOrderID(),
				"order_number", view.OrderNumber)
			if markErr := p.markConfirmed(ctx, intent); markErr != nil {
				return nil, errs.Mark(markErr, ErrPaymentStorageFailed)
			}
			return p.buildResult(ctx, intent, view, true)
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPaymentStorageFailed)
		}
		// Upstream says duplicate but no order exists here; never
		// fabricate one.
		slog.Error("duplicate gateway confirm without matching order",
			"transaction_id", intent.TransactionID(),
			"order_id", intent.InternalOrderID(),
			"gateway_error", confirmErr.Error())
		return nil, errs.Mark(confirmErr, ErrGatewayFailed)
	}

	slog.Error("gateway confirm failed",
		"transaction_id", intent.TransactionID(),
		"order_id", intent.InternalOrderID(),
		"amount_twd", intent.TotalAmount().Twd(),
		"error", confirmErr.Error())
	if err := p.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return p.intents.MarkFailed(ctx, dbtx, intent.TransactionID(), intent.InternalOrderID())
	}); err != nil {
		slog.Warn("failed to record payment failure",
			"transaction_id", intent.TransactionID(),
			"error", err.Error())
	}
	return nil, errs.Mark(confirmErr, ErrGatewayFailed)
}

// reserveAll claims quota item by item. A refused reservation aborts the
// remaining items; reservations already committed in this attempt are not
// rolled back — a known, logged inconsistency bounded by the item count.
func (p *preorderCommandsImpl) reserveAll(ctx context.Context, intent *payment.Intent) error {
	for i, line := range intent.Items() {
		var granted bool
		err := p.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
			ok, reserveErr := p.quota.Reserve(ctx, dbtx, intent.CampaignID(), line.ProductID(), line.Quantity().Int32())
			granted = ok
			return reserveErr
		})
		if err != nil {
			return errs.Mark(err, ErrPaymentStorageFailed)
		}
		if !granted {
			slog.Error("quota exhausted during confirm",
				"transaction_id", intent.TransactionID(),
				"order_id", intent.InternalOrderID(),
				"product_id", line.ProductID(),
				"quantity", line.Quantity().Int32(),
				"items_already_reserved", i)
			return errs.Mark(errs.New("no remaining quota for product"), ErrQuotaExceeded)
		}
	}
	return nil
}

func (p *preorderCommandsImpl) materialize(
	ctx context.Context,
	intent *payment.Intent,
	camp *campaign.Campaign,
	q *quote,
	in ConfirmPaymentInput,
) error {
	items := make([]order.Item, len(intent.Items()))
	for i, line := range intent.Items() {
		product, err := camp.FindProduct(line.ProductID())
		if err != nil {
			return errs.Mark(err, ErrProductNotInCampaign)
		}
		items[i] = order.Item{
			ProductID:   product.ProductID,
			ProductName: product.ProductName,
			UnitPrice:   product.UnitPrice,
			Quantity:    line.Quantity(),
		}
	}

	ord, err := order.NewOrder(
		order.NewOrderNumber(p.clock.Now()),
		intent.CampaignID(),
		intent.UserID(),
		items,
		q.discount,
		q.total,
		intent.PointsToRedeem(),
		in.CustomerName,
		in.CustomerPhone,
		in.CustomerNote,
	)
	if err != nil {
		return errs.Mark(err, ErrAmountMismatch)
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := p.orders.Create(ctx, tx, ord, intent.ID()); err != nil {
			return err
		}
		if intent.PointsToRedeem() > 0 && intent.UserID() != nil {
			if err := p.points.Debit(ctx, tx, *intent.UserID(), intent.PointsToRedeem()); err != nil {
				return err
			}
		}
		return p.intents.MarkConfirmed(ctx, tx, intent.TransactionID(), intent.InternalOrderID())
	})
	if err != nil {
		// The gateway has already settled; surface as retryable. The retry
		// lands on the replay path once the write goes through, or on the
		// duplicate-detection path if it settled upstream only.
		slog.Error("failed to materialize order after gateway confirm",
			"transaction_id", intent.TransactionID(),
			"order_id", intent.InternalOrderID(),
			"order_number", ord.OrderNumber(),
			"amount_twd", q.total.Twd(),
			"error", err.Error())
		return errs.Mark(err, ErrPaymentStorageFailed)
	}
	return nil
}

func (p *preorderCommandsImpl) replayResult(ctx context.Context, intent *payment.Intent) (*ConfirmPaymentResult, error) {
	view, err := p.orderView.FindByPaymentKeys(ctx, intent.TransactionID(), intent.InternalOrderID())
	if err != nil {
		slog.Error("confirmed intent has no materialized order",
			"transaction_id", intent.TransactionID(),
			"order_id", intent.InternalOrderID(),
			"error", err.Error())
		return nil, errs.Mark(err, ErrPaymentStorageFailed)
	}
	return p.buildResult(ctx, intent, view, true)
}

func (p *preorderCommandsImpl) markConfirmed(ctx context.Context, intent *payment.Intent) error {
	return p.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return p.intents.MarkConfirmed(ctx, dbtx, intent.TransactionID(), intent.InternalOrderID())
	})
}

func (p *preorderCommandsImpl) buildResult(ctx context.Context, intent *payment.Intent, view *queries.OrderView, replayed bool) (*ConfirmPaymentResult, error) {
	remaining, err := p.remainingFor(ctx, intent)
	if err != nil {
		return nil, err
	}
	return &ConfirmPaymentResult{
		OrderNumber:       view.OrderNumber,
		CampaignID:        view.CampaignID,
		TotalQuantity:     view.TotalQuantity(),
		RemainingQuantity: remaining,
		TotalAmountTwd:    view.TotalTwd,
		IsReplayed:        replayed,
	}, nil
}

// remainingFor sums what is still available for the products this payment
// covers, after reservation.
func (p *preorderCommandsImpl) remainingFor(ctx context.Context, intent *payment.Intent) (int32, error) {
	camp, err := p.loadCampaign(ctx, intent.CampaignID())
	if err != nil {
		return 0, err
	}
	var remaining int32
	for _, line := range intent.Items() {
		product, err := camp.FindProduct(line.ProductID())
		if err != nil {
			continue // product removed from catalog after the fact
		}
		remaining += product.Remaining()
	}
	return remaining, nil
}

func toItemLines(items []RequestItemInput) ([]payment.ItemLine, error) {
	lines := make([]payment.ItemLine, len(items))
	for i, it := range items {
		line, err := payment.NewItemLine(it.ProductID, it.Quantity)
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}
	return payment.NewItemLines(lines)
}
