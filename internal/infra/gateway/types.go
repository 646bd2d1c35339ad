package gateway

import (
	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"
)

// LineItem is one signed line of an open-payment request. A points discount
// is carried as a separate negative line, so the signed sum of all lines
// must equal the declared amount exactly.
type LineItem struct {
	Name      string
	UnitPrice money.Money
	Quantity  money.Quantity
}

type OpenPaymentInput struct {
	OrderID     string
	Amount      money.Money
	Description string
	Items       []LineItem
	Discount    money.Money // zero when no points are redeemed
}

type OpenPaymentResult struct {
	// TransactionID is provider-assigned. It is numeric upstream but can
	// exceed 2^53, so it stays an opaque string end to end.
	TransactionID string
	PaymentURL    string
}

type PayInfo struct {
	Method string `json:"method"`
	Amount int64  `json:"amount"`
}

type ConfirmPaymentResult struct {
	TransactionID string
	PayInfo       []PayInfo
}

// Wire types for the provider's JSON protocol. The provider embeds its
// application status in the body (returnCode), distinct from the HTTP
// status.

type requestPackageProduct struct {
	Name     string `json:"name"`
	Quantity int32  `json:"quantity"`
	Price    int64  `json:"price"`
}

type requestPackage struct {
	ID       string                  `json:"id"`
	Amount   int64                   `json:"amount"`
	Name     string                  `json:"name,omitempty"`
	Products []requestPackageProduct `json:"products"`
}

type redirectURLs struct {
	ConfirmURL string `json:"confirmUrl"`
	CancelURL  string `json:"cancelUrl"`
}

type openPaymentRequest struct {
	Amount       int64            `json:"amount"`
	Currency     string           `json:"currency"`
	OrderID      string           `json:"orderId"`
	Packages     []requestPackage `json:"packages"`
	RedirectURLs redirectURLs     `json:"redirectUrls"`
}

type confirmPaymentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
