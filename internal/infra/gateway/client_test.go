//go:build unit

package gateway_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/gateway"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return gateway.NewClient(config.GatewayConfig{
		BaseURL:       srv.URL,
		ChannelID:     "channel-1",
		ChannelSecret: testSecret,
		ConfirmURL:    "https://shop.example.com/preorder/confirm",
		CancelURL:     "https://shop.example.com/preorder/cancel",
		Timeout:       5 * time.Second,
	})
}

func qty(t *testing.T, v int32) money.Quantity {
	t.Helper()
	q, err := money.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func openInput(t *testing.T) gateway.OpenPaymentInput {
	t.Helper()
	return gateway.OpenPaymentInput{
		OrderID:     "order-1",
		Amount:      money.NewMoney(1975),
		Description: "Mid-Autumn Preorder",
		Items: []gateway.LineItem{
			{Name: "Mooncake Gift Box", UnitPrice: money.NewMoney(880), Quantity: qty(t, 2)},
			{Name: "Pineapple Cake", UnitPrice: money.NewMoney(240), Quantity: qty(t, 1)},
		},
		Discount: money.NewMoney(25),
	}
}

func TestOpenPayment(t *testing.T) {
	t.Run("signs the request and decodes the opaque transaction id", func(t *testing.T) {
		var gotPath string
		var gotBody []byte
		var gotHeaders http.Header

		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotHeaders = r.Header.Clone()
			gotBody, _ = io.ReadAll(r.Body)

			// transaction id deliberately exceeds 2^53
			_, _ = w.Write([]byte(`{
				"returnCode": "0000",
				"returnMessage": "OK",
				"info": {
					"transactionId": 2025090112345678901,
					"paymentUrl": {"web": "https://pay.example.com/checkout/abc"}
				}
			}`))
		})

		result, err := client.OpenPayment(context.Background(), openInput(t))
		require.NoError(t, err)

		assert.Equal(t, "/v3/payments/request", gotPath)
		assert.Equal(t, "2025090112345678901", result.TransactionID)
		assert.Equal(t, "https://pay.example.com/checkout/abc", result.PaymentURL)

		assert.Equal(t, "channel-1", gotHeaders.Get("X-LINE-ChannelId"))
		nonce := gotHeaders.Get("X-LINE-Authorization-Nonce")
		require.NotEmpty(t, nonce)

		mac := hmac.New(sha256.New, []byte(testSecret))
		mac.Write([]byte(testSecret))
		mac.Write([]byte("/v3/payments/request"))
		mac.Write(gotBody)
		mac.Write([]byte(nonce))
		expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
		assert.Equal(t, expected, gotHeaders.Get("X-LINE-Authorization"))
	})

	t.Run("carries the discount as a negative package", func(t *testing.T) {
		var req struct {
			Amount   int64 `json:"amount"`
			Packages []struct {
				ID     string `json:"id"`
				Amount int64  `json:"amount"`
			} `json:"packages"`
		}

		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &req))
			_, _ = w.Write([]byte(`{"returnCode":"0000","info":{"transactionId":"1","paymentUrl":{"web":"u"}}}`))
		})

		_, err := client.OpenPayment(context.Background(), openInput(t))
		require.NoError(t, err)

		assert.Equal(t, int64(1975), req.Amount)
		require.Len(t, req.Packages, 2)
		assert.Equal(t, int64(2000), req.Packages[0].Amount)
		assert.Equal(t, "points-discount", req.Packages[1].ID)
		assert.Equal(t, int64(-25), req.Packages[1].Amount)
		// signed package sum equals the declared amount
		assert.Equal(t, req.Amount, req.Packages[0].Amount+req.Packages[1].Amount)
	})

	t.Run("rejects a mismatched amount before any network call", func(t *testing.T) {
		called := false
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		in := openInput(t)
		in.Amount = money.NewMoney(2025) // +50 tamper

		_, err := client.OpenPayment(context.Background(), in)
		assert.ErrorIs(t, err, gateway.ErrAmountMismatch)
		assert.False(t, called)
	})

	t.Run("surfaces a body-embedded failure code", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			// HTTP 200 with an application-level failure
			_, _ = w.Write([]byte(`{"returnCode":"1104","returnMessage":"merchant not found"}`))
		})

		_, err := client.OpenPayment(context.Background(), openInput(t))
		require.Error(t, err)

		var ge *gateway.GatewayError
		require.ErrorAs(t, err, &ge)
		assert.Equal(t, "1104", ge.Code)
		assert.False(t, ge.IsDuplicateOrder())
	})
}

func TestConfirmPayment(t *testing.T) {
	t.Run("posts to the transaction-scoped path", func(t *testing.T) {
		var gotPath string
		var req struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		}

		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &req))
			_, _ = w.Write([]byte(`{
				"returnCode": "0000",
				"info": {
					"transactionId": 2025090112345678901,
					"payInfo": [{"method": "CREDIT_CARD", "amount": 1975}]
				}
			}`))
		})

		result, err := client.ConfirmPayment(context.Background(), "2025090112345678901", money.NewMoney(1975))
		require.NoError(t, err)

		assert.Equal(t, "/v3/payments/2025090112345678901/confirm", gotPath)
		assert.Equal(t, int64(1975), req.Amount)
		assert.Equal(t, "TWD", req.Currency)
		assert.Equal(t, "2025090112345678901", result.TransactionID)
		require.Len(t, result.PayInfo, 1)
		assert.Equal(t, int64(1975), result.PayInfo[0].Amount)
	})

	t.Run("duplicate order code is detectable", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"returnCode":"1172","returnMessage":"There is a record of the same orderId."}`))
		})

		_, err := client.ConfirmPayment(context.Background(), "txn-1", money.NewMoney(100))
		require.Error(t, err)
		assert.True(t, gateway.IsDuplicateOrderError(err))
	})

	t.Run("requires a transaction id", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.ConfirmPayment(context.Background(), "", money.NewMoney(100))
		assert.Error(t, err)
	})
}
