//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/linmiepii-2049/POS-sub000/internal/handler/api"
	resdto "github.com/linmiepii-2049/POS-sub000/internal/handler/dto/response"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/errs"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/commands"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/queries"
	"github.com/linmiepii-2049/POS-sub000/tests/common/httptest"
	commandsmock "github.com/linmiepii-2049/POS-sub000/tests/mock/commands"
	queriesmock "github.com/linmiepii-2049/POS-sub000/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PreorderHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockPreorderCommands
	mockCampaigns *queriesmock.MockCampaignQueries
	mockOrders    *queriesmock.MockOrderQueries
}

func (s *PreorderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPreorderCommands(s.mockCtrl)
	s.mockCampaigns = queriesmock.NewMockCampaignQueries(s.mockCtrl)
	s.mockOrders = queriesmock.NewMockOrderQueries(s.mockCtrl)

	preorderHandler := api.NewPreorderHandler(s.mockCommands)
	campaignHandler := api.NewCampaignHandler(s.mockCampaigns)
	orderHandler := api.NewOrderHandler(s.mockOrders)

	s.router.POST("/payments/request", preorderHandler.RequestPayment)
	s.router.POST("/payments/confirm", preorderHandler.ConfirmPayment)
	s.router.GET("/campaigns/:id", campaignHandler.GetCampaign)
	s.router.GET("/orders/:orderNumber", orderHandler.GetOrder)
}

func (s *PreorderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPreorderHandlerSuite(t *testing.T) {
	suite.Run(t, new(PreorderHandlerTestSuite))
}

func validRequestBody() map[string]any {
	return map[string]any{
		"campaign_id": uuid.New().String(),
		"items": []map[string]any{
			{"product_id": uuid.New().String(), "quantity": 2},
		},
		"pickup_date":      "2025-09-20",
		"points_to_redeem": 500,
	}
}

func (s *PreorderHandlerTestSuite) TestRequestPayment() {
	url := "/payments/request"

	s.Run("success: returns 201 with the checkout URL", func() {
		s.mockCommands.EXPECT().RequestPayment(gomock.Any(), gomock.Any()).
			Return(&commands.RequestPaymentResult{
				PaymentURL:     "https://pay.example.com/checkout/abc",
				TransactionID:  "2025090112345678901",
				OrderID:        "order-1",
				TotalAmountTwd: 1975,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validRequestBody())

		var body resdto.RequestPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("https://pay.example.com/checkout/abc", body.PaymentURL)
		s.Equal("2025090112345678901", body.TransactionID)
		s.Equal(int64(1975), body.TotalAmountTwd)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"campaign_id": "not-a-uuid",
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on bad pickup date", func() {
		body := validRequestBody()
		body["pickup_date"] = "20/09/2025"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "pickup_date")
	})

	s.Run("error: 400 on empty items", func() {
		body := validRequestBody()
		body["items"] = []map[string]any{}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			// the usecase returns its causes marked with a sentinel, so the
			// table uses marked errors, not the bare sentinels
			{"campaign not found", errs.Mark(errs.New("campaign missing"), commands.ErrCampaignNotFound), http.StatusNotFound},
			{"product not in campaign", errs.Mark(errs.New("product not listed"), commands.ErrProductNotInCampaign), http.StatusUnprocessableEntity},
			{"quota exceeded", errs.Mark(errs.New("no remaining quota for product"), commands.ErrQuotaExceeded), http.StatusConflict},
			{"points invalid", errs.Mark(errs.New("balance too low"), commands.ErrPointsRedeemInvalid), http.StatusUnprocessableEntity},
			{"amount mismatch", errs.Mark(errs.New("recomputed amount drifted"), commands.ErrAmountMismatch), http.StatusUnprocessableEntity},
			{"gateway failed", errs.Mark(errs.New("provider returned 1198"), commands.ErrGatewayFailed), http.StatusBadGateway},
			{"storage failed", errs.Mark(errs.New("insert failed"), commands.ErrPaymentStorageFailed), http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RequestPayment(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validRequestBody())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *PreorderHandlerTestSuite) TestConfirmPayment() {
	url := "/payments/confirm"

	confirmBody := map[string]any{
		"transaction_id": "2025090112345678901",
		"order_id":       "order-1",
		"customer_name":  "Lin Mei",
	}

	s.Run("success: returns 200 with the order summary", func() {
		campaignID := uuid.New()
		s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).
			Return(&commands.ConfirmPaymentResult{
				OrderNumber:       "PO-20250901120000-abc123",
				CampaignID:        campaignID,
				TotalQuantity:     3,
				RemainingQuantity: 12,
				TotalAmountTwd:    1975,
				IsReplayed:        false,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, confirmBody)

		var body resdto.ConfirmPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("PO-20250901120000-abc123", body.OrderNumber)
		s.Equal(campaignID, body.CampaignID)
		s.Equal(int32(12), body.RemainingQuantity)
		s.False(body.IsReplayed)
	})

	s.Run("success: replay is exposed in the response", func() {
		s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).
			Return(&commands.ConfirmPaymentResult{
				OrderNumber: "PO-20250901120000-abc123",
				IsReplayed:  true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, confirmBody)

		var body resdto.ConfirmPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.IsReplayed)
	})

	s.Run("error: 400 on missing keys", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"transaction_id": "txn-only",
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"payment not found", errs.Mark(errs.New("intent missing"), commands.ErrPaymentNotFound), http.StatusNotFound},
			{"quota exceeded", errs.Mark(errs.New("no remaining quota for product"), commands.ErrQuotaExceeded), http.StatusConflict},
			{"amount mismatch", errs.Mark(errs.New("recomputed amount drifted"), commands.ErrAmountMismatch), http.StatusUnprocessableEntity},
			{"gateway failed", errs.Mark(errs.New("provider returned 1198"), commands.ErrGatewayFailed), http.StatusBadGateway},
			{"storage failed", errs.Mark(errs.New("insert failed"), commands.ErrPaymentStorageFailed), http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, confirmBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *PreorderHandlerTestSuite) TestGetCampaign() {
	s.Run("success: returns 200 with products", func() {
		id := uuid.New()
		s.mockCampaigns.EXPECT().GetCampaign(gomock.Any(), id).
			Return(&queries.CampaignView{
				ID:   id,
				Name: "Mid-Autumn Preorder",
				Products: []queries.CampaignProductView{
					{ProductID: uuid.New(), ProductName: "Mooncake Gift Box", UnitPriceTwd: 880, SupplyQuantity: 10, RemainingQuantity: 8},
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campaigns/"+id.String(), nil)

		var body resdto.CampaignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Mid-Autumn Preorder", body.Name)
		s.Len(body.Products, 1)
		s.Equal(int32(8), body.Products[0].RemainingQuantity)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campaigns/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockCampaigns.EXPECT().GetCampaign(gomock.Any(), id).
			Return(nil, queries.ErrCampaignNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campaigns/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *PreorderHandlerTestSuite) TestGetOrder() {
	s.Run("success: returns 200", func() {
		s.mockOrders.EXPECT().GetOrderByNumber(gomock.Any(), "PO-20250901120000-abc123").
			Return(&queries.OrderView{
				ID:          uuid.New(),
				OrderNumber: "PO-20250901120000-abc123",
				TotalTwd:    1975,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/PO-20250901120000-abc123", nil)

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("PO-20250901120000-abc123", body.OrderNumber)
		s.Equal(int64(1975), body.TotalTwd)
	})

	s.Run("error: 404 when missing", func() {
		s.mockOrders.EXPECT().GetOrderByNumber(gomock.Any(), "PO-unknown").
			Return(nil, queries.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/PO-unknown", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
