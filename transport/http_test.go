package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/muhammadheryan/inventory/constant"
	alertmocks "github.com/muhammadheryan/inventory/mocks/application/alert"
	checkoutmocks "github.com/muhammadheryan/inventory/mocks/application/checkout"
	productmocks "github.com/muhammadheryan/inventory/mocks/application/product"
	reportmocks "github.com/muhammadheryan/inventory/mocks/application/report"
	stockmocks "github.com/muhammadheryan/inventory/mocks/application/stock"
	usermocks "github.com/muhammadheryan/inventory/mocks/application/user"
	"github.com/muhammadheryan/inventory/model"
	"github.com/muhammadheryan/inventory/transport"
	cerr "github.com/muhammadheryan/inventory/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	validToken = "valid-token"
	apiKey     = "internal-key"
)

type apps struct {
	user     *usermocks.UserApp
	stock    *stockmocks.StockApp
	alert    *alertmocks.AlertApp
	checkout *checkoutmocks.CheckoutApp
	report   *reportmocks.ReportApp
	product  *productmocks.ProductApp
}

func newApps(t *testing.T) apps {
	return apps{
		user:     usermocks.NewUserApp(t),
		stock:    stockmocks.NewStockApp(t),
		alert:    alertmocks.NewAlertApp(t),
		checkout: checkoutmocks.NewCheckoutApp(t),
		report:   reportmocks.NewReportApp(t),
		product:  productmocks.NewProductApp(t),
	}
}

func (a apps) handler() http.Handler {
	return transport.NewTransport(&transport.RestHandler{
		UserApp:     a.user,
		StockApp:    a.stock,
		AlertApp:    a.alert,
		CheckoutApp: a.checkout,
		ReportApp:   a.report,
		ProductApp:  a.product,
	}, apiKey)
}

func (a apps) authorize() {
	a.user.On("ValidateToken", mock.Anything, validToken).Return("m1", nil).Once()
}

func do(t *testing.T, h http.Handler, method, target, body, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	return rec, decoded
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		a := newApps(t)
		rec, body := do(t, a.handler(), http.MethodGet, "/inventory/alerts", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrUnauthorize], body["code"])
	})

	t.Run("rejected token", func(t *testing.T) {
		a := newApps(t)
		a.user.On("ValidateToken", mock.Anything, "expired").Return("", errors.New("invalid or expired session")).Once()
		rec, _ := do(t, a.handler(), http.MethodGet, "/inventory/alerts", "", "expired")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("merchant id reaches the handler", func(t *testing.T) {
		a := newApps(t)
		a.authorize()
		a.alert.On("GetAlerts", mock.Anything, "m1", true).Return([]model.InventoryAlert{{ID: "a1"}}, nil).Once()
		rec, body := do(t, a.handler(), http.MethodGet, "/inventory/alerts?unread=true", "", validToken)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Len(t, body["data"], 1)
	})
}

func TestAdjustStock(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockCall   func(a apps)
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name: "positive OUT quantity is negated",
			body: `{"product_id":"p1","movement_type":"OUT","quantity":5,"reason":"damaged"}`,
			mockCall: func(a apps) {
				a.stock.On("AdjustStock", mock.Anything, mock.MatchedBy(func(req *model.AdjustStockRequest) bool {
					return req.MerchantID == "m1" && req.ProductID == "p1" && req.Delta == -5 &&
						req.Type == constant.MovementTypeOut && req.Reason == "damaged" && req.PerformedBy == "m1"
				})).Return(&model.StockMovement{ID: "mv1", StockBefore: 20, StockAfter: 15}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "signed adjustment passes through",
			body: `{"product_id":"p1","movement_type":"ADJUSTMENT","quantity":-3}`,
			mockCall: func(a apps) {
				a.stock.On("AdjustStock", mock.Anything, mock.MatchedBy(func(req *model.AdjustStockRequest) bool {
					return req.Delta == -3 && req.Type == constant.MovementTypeAdjustment
				})).Return(&model.StockMovement{ID: "mv1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown movement type",
			body:       `{"product_id":"p1","movement_type":"LOST","quantity":1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
			wantError:  "movement_type must be one of IN, OUT, ADJUSTMENT, RETURN, SALE",
		},
		{
			name:       "missing product id",
			body:       `{"movement_type":"IN","quantity":1}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "product_id is required",
		},
		{
			name:       "malformed body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "negative stock is a client error",
			body: `{"product_id":"p1","movement_type":"OUT","quantity":150}`,
			mockCall: func(a apps) {
				a.stock.On("AdjustStock", mock.Anything, mock.Anything).Return(nil,
					cerr.SetCustomErrorWithDetail(constant.ErrNegativeStock, "Invalid adjustment: Stock cannot go negative. Current: 100, Change: -150")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrNegativeStock],
			wantError:  "Invalid adjustment: Stock cannot go negative. Current: 100, Change: -150",
		},
		{
			name: "unknown product",
			body: `{"product_id":"nope","movement_type":"IN","quantity":1}`,
			mockCall: func(a apps) {
				a.stock.On("AdjustStock", mock.Anything, mock.Anything).Return(nil, cerr.SetCustomError(constant.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "unexpected error becomes internal",
			body: `{"product_id":"p1","movement_type":"IN","quantity":1}`,
			mockCall: func(a apps) {
				a.stock.On("AdjustStock", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   constant.ErrorTypeCode[constant.ErrInternal],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			a := newApps(t)
			a.authorize()
			if tt.mockCall != nil {
				tt.mockCall(a)
			}

			rec, body := do(t, a.handler(), http.MethodPost, "/inventory/adjust", tt.body, validToken)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, body["success"])
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["code"])
			}
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}

func TestGetMovementHistory(t *testing.T) {
	a := newApps(t)
	a.authorize()
	a.stock.On("GetMovementHistory", mock.Anything, mock.MatchedBy(func(f *model.MovementFilter) bool {
		return f.MerchantID == "m1" && f.ProductID == "p1" && f.Page == 2 && f.Limit == 5 &&
			f.Type == constant.MovementTypeSale &&
			f.StartDate != nil && f.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.EndDate != nil && f.EndDate.Equal(time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC))
	})).Return(&model.MovementHistory{
		Data:       []model.StockMovement{{ID: "mv1"}},
		Total:      6,
		Page:       2,
		Limit:      5,
		TotalPages: 2,
	}, nil).Once()

	rec, body := do(t, a.handler(), http.MethodGet,
		"/inventory/movements?product_id=p1&type=SALE&page=2&limit=5&start_date=2024-01-01&end_date=2024-01-31", "", validToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["data"], 1)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(6), pagination["total"])
	assert.Equal(t, float64(2), pagination["total_pages"])
}

func TestGetReport(t *testing.T) {
	t.Run("valuation", func(t *testing.T) {
		a := newApps(t)
		a.authorize()
		a.report.On("GetReport", mock.Anything, mock.MatchedBy(func(req *model.ReportRequest) bool {
			return req.MerchantID == "m1" && req.Type == "valuation"
		})).Return(&model.InventoryValuation{ByCategory: []model.CategoryValuation{}}, nil).Once()

		rec, body := do(t, a.handler(), http.MethodGet, "/inventory/report?type=valuation", "", validToken)
		assert.Equal(t, http.StatusOK, rec.Code)
		data := body["data"].(map[string]interface{})
		assert.Contains(t, data, "totalValue")
		assert.Contains(t, data, "byCategory")
	})

	t.Run("invalid date", func(t *testing.T) {
		a := newApps(t)
		a.authorize()
		rec, body := do(t, a.handler(), http.MethodGet, "/inventory/report?type=movements&start_date=yesterday", "", validToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], body["code"])
	})
}

func TestAlerts(t *testing.T) {
	t.Run("dismiss unknown alert", func(t *testing.T) {
		a := newApps(t)
		a.authorize()
		a.alert.On("DismissAlert", mock.Anything, "m1", "a9").Return(cerr.SetCustomError(constant.ErrNotFound)).Once()
		rec, _ := do(t, a.handler(), http.MethodPut, "/inventory/alerts/a9/read", "", validToken)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("dismiss alert", func(t *testing.T) {
		a := newApps(t)
		a.authorize()
		a.alert.On("DismissAlert", mock.Anything, "m1", "a1").Return(nil).Once()
		rec, body := do(t, a.handler(), http.MethodPut, "/inventory/alerts/a1/read", "", validToken)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
	})

	t.Run("dismiss all", func(t *testing.T) {
		a := newApps(t)
		a.authorize()
		a.alert.On("DismissAllAlerts", mock.Anything, "m1").Return(true, nil).Once()
		rec, body := do(t, a.handler(), http.MethodPut, "/inventory/alerts/read", "", validToken)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]interface{}{"updated": true}, body["data"])
	})
}

func TestCheckout(t *testing.T) {
	t.Run("public route with per item results", func(t *testing.T) {
		a := newApps(t)
		a.checkout.On("ProcessCheckout", mock.Anything, mock.MatchedBy(func(req *model.CheckoutRequest) bool {
			return len(req.Items) == 2 && req.Items[0].ResolvedProductID() == "A" && req.Items[1].ResolvedProductID() == "B"
		})).Return(&model.CheckoutResponse{
			TransactionID: "trx-1",
			Results: []model.CheckoutItemResult{
				{ID: "A", Status: constant.CheckoutItemSuccess},
				{ID: "B", Status: constant.CheckoutItemFailed, Error: "data not found"},
			},
		}, nil).Once()

		body := `{"items":[{"product":{"id":"A"},"quantity":2,"price":50},{"product_id":"B","quantity":1,"price":"150"}],"paymentData":{"method":"mpesa"}}`
		rec, decoded := do(t, a.handler(), http.MethodPost, "/inventory/checkout", body, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decoded["success"])
		assert.Equal(t, "trx-1", decoded["transactionId"])
		results := decoded["results"].([]interface{})
		require.Len(t, results, 2)
		assert.Equal(t, "failed", results[1].(map[string]interface{})["status"])
	})

	t.Run("empty cart", func(t *testing.T) {
		a := newApps(t)
		rec, decoded := do(t, a.handler(), http.MethodPost, "/inventory/checkout", `{"items":[]}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, decoded["success"])
	})

	t.Run("zero quantity", func(t *testing.T) {
		a := newApps(t)
		rec, _ := do(t, a.handler(), http.MethodPost, "/inventory/checkout", `{"items":[{"product_id":"A","quantity":0,"price":1}]}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProducts(t *testing.T) {
	a := newApps(t)
	a.authorize()
	a.product.On("ListProducts", mock.Anything, "m1", 3, 25).Return(&model.ProductListResponse{Items: []model.ProductListItem{}, Page: 3, PerPage: 25}, nil).Once()

	rec, body := do(t, a.handler(), http.MethodGet, "/products?page=3&per_page=25", "", validToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
}

func TestInternalScan(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		a := newApps(t)
		rec, body := do(t, a.handler(), http.MethodPost, "/internal/v1/alerts/scan", `{"merchant_id":"m1"}`, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrForbidden], body["code"])
	})

	t.Run("wrong api key", func(t *testing.T) {
		a := newApps(t)
		rec, _ := do(t, a.handler(), http.MethodPost, "/internal/v1/alerts/scan", `{"merchant_id":"m1"}`, "guess")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("sweep merchant", func(t *testing.T) {
		a := newApps(t)
		a.alert.On("CheckLowStock", mock.Anything, "m1").Return(3, nil).Once()
		rec, body := do(t, a.handler(), http.MethodPost, "/internal/v1/alerts/scan", `{"merchant_id":"m1"}`, apiKey)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]interface{}{"created": float64(3)}, body["data"])
	})
}
