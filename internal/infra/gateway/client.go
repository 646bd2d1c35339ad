// Package gateway drives the external payment provider's two-phase
// request/confirm protocol over HTTP.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/config"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	requestPath     = "/v3/payments/request"
	confirmPathFmt  = "/v3/payments/%s/confirm"
	currencyTWD     = "TWD"
	returnCodeOK    = "0000"
	headerChannelID = "X-LINE-ChannelId"
	headerNonce     = "X-LINE-Authorization-Nonce"
	headerSignature = "X-LINE-Authorization"
)

// Client holds its credentials explicitly; it is constructed once at
// startup and passed by reference to the orchestrator.
type Client struct {
	baseURL       string
	channelID     string
	channelSecret string
	confirmURL    string
	cancelURL     string
	http          *http.Client
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		channelID:     cfg.ChannelID,
		channelSecret: cfg.ChannelSecret,
		confirmURL:    cfg.ConfirmURL,
		cancelURL:     cfg.CancelURL,
		http:          &http.Client{Timeout: cfg.Timeout},
	}
}

// OpenPayment opens a payment with the provider and returns the redirect
// URL plus the provider transaction id.
func (c *Client) OpenPayment(ctx context.Context, in OpenPaymentInput) (*OpenPaymentResult, error) {
	if err := verifyLineItemSum(in); err != nil {
		return nil, err
	}

	packages := []requestPackage{{
		ID:       "preorder",
		Amount:   in.Amount.Add(in.Discount).Twd(),
		Name:     in.Description,
		Products: toWireProducts(in.Items),
	}}
	if in.Discount.Twd() > 0 {
		packages = append(packages, requestPackage{
			ID:     "points-discount",
			Amount: -in.Discount.Twd(),
			Products: []requestPackageProduct{{
				Name:     "Points discount",
				Quantity: 1,
				Price:    -in.Discount.Twd(),
			}},
		})
	}

	body := openPaymentRequest{
		Amount:   in.Amount.Twd(),
		Currency: currencyTWD,
		OrderID:  in.OrderID,
		Packages: packages,
		RedirectURLs: redirectURLs{
			ConfirmURL: c.confirmURL,
			CancelURL:  c.cancelURL,
		},
	}

	var resp struct {
		Info struct {
			TransactionID json.RawMessage `json:"transactionId"`
			PaymentURL    struct {
				Web string `json:"web"`
			} `json:"paymentUrl"`
		} `json:"info"`
	}
	if err := c.post(ctx, requestPath, body, &resp); err != nil {
		return nil, err
	}

	transactionID := rawNumericToString(resp.Info.TransactionID)
	if transactionID == "" {
		return nil, errs.New("gateway response missing transaction id")
	}

	return &OpenPaymentResult{
		TransactionID: transactionID,
		PaymentURL:    resp.Info.PaymentURL.Web,
	}, nil
}

// ConfirmPayment settles an opened payment. The provider's confirm is not
// cancelable; callers must not issue it while holding any lock.
func (c *Client) ConfirmPayment(ctx context.Context, transactionID string, amount money.Money) (*ConfirmPaymentResult, error) {
	if transactionID == "" {
		return nil, errs.New("transaction id required for confirm")
	}

	body := confirmPaymentRequest{
		Amount:   amount.Twd(),
		Currency: currencyTWD,
	}

	var resp struct {
		Info struct {
			TransactionID json.RawMessage `json:"transactionId"`
			PayInfo       []PayInfo       `json:"payInfo"`
		} `json:"info"`
	}
	path := fmt.Sprintf(confirmPathFmt, transactionID)
	if err := c.post(ctx, path, body, &resp); err != nil {
		return nil, err
	}

	confirmedID := rawNumericToString(resp.Info.TransactionID)
	if confirmedID == "" {
		confirmedID = transactionID
	}

	return &ConfirmPaymentResult{
		TransactionID: confirmedID,
		PayInfo:       resp.Info.PayInfo,
	}, nil
}

// post signs and sends one provider call, decodes the body-embedded status
// code, and on success unmarshals the full body into out.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode gateway request")
	}

	nonce := uuid.New().String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerChannelID, c.channelID)
	req.Header.Set(headerNonce, nonce)
	req.Header.Set(headerSignature, c.sign(path, payload, nonce))

	httpResp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "gateway request failed")
	}
	defer func() {
		if closeErr := httpResp.Body.Close(); closeErr != nil {
			slog.Warn("failed to close gateway response body", "error", closeErr)
		}
	}()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return errs.Wrap(err, "failed to read gateway response")
	}

	var status struct {
		ReturnCode    string `json:"returnCode"`
		ReturnMessage string `json:"returnMessage"`
	}
	if err := json.Unmarshal(raw, &status); err != nil {
		return errs.Wrap(err, "failed to decode gateway response")
	}
	if status.ReturnCode != returnCodeOK {
		return &GatewayError{Code: status.ReturnCode, Message: status.ReturnMessage}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errs.Wrap(err, "failed to decode gateway response body")
		}
	}
	return nil
}

// sign computes the MAC over {secret, path, body, nonce}. A fresh nonce is
// generated per call by the caller.
func (c *Client) sign(path string, body []byte, nonce string) string {
	mac := hmac.New(sha256.New, []byte(c.channelSecret))
	mac.Write([]byte(c.channelSecret))
	mac.Write([]byte(path))
	mac.Write(body)
	mac.Write([]byte(nonce))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// verifyLineItemSum enforces the pre-flight invariant: the signed sum of
// line items (discount as a negative line) must equal the declared amount
// exactly, or the call is rejected before going upstream.
func verifyLineItemSum(in OpenPaymentInput) error {
	sum := money.NewMoney(0)
	for _, it := range in.Items {
		sum = sum.Add(it.UnitPrice.MulQuantity(it.Quantity))
	}
	sum = sum.Sub(in.Discount)
	if sum.Twd() != in.Amount.Twd() {
		slog.Error("gateway open-payment amount mismatch",
			"order_id", in.OrderID,
			"declared", in.Amount.Twd(),
			"line_item_sum", sum.Twd())
		return ErrAmountMismatch
	}
	return nil
}

func toWireProducts(items []LineItem) []requestPackageProduct {
	products := make([]requestPackageProduct, len(items))
	for i, it := range items {
		products[i] = requestPackageProduct{
			Name:     it.Name,
			Quantity: it.Quantity.Int32(),
			Price:    it.UnitPrice.Twd(),
		}
	}
	return products
}

// rawNumericToString extracts a transaction id from raw JSON without ever
// round-tripping it through float64; ids can exceed 2^53.
func rawNumericToString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	if s == "null" {
		return ""
	}
	return s
}
