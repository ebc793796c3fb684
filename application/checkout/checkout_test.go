package checkout_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	appcheckout "github.com/muhammadheryan/inventory/application/checkout"
	"github.com/muhammadheryan/inventory/cmd/config"
	"github.com/muhammadheryan/inventory/constant"
	stockmocks "github.com/muhammadheryan/inventory/mocks/application/stock"
	transactionmocks "github.com/muhammadheryan/inventory/mocks/repository/transaction"
	"github.com/muhammadheryan/inventory/model"
	cerr "github.com/muhammadheryan/inventory/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func price(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestCheckoutApp_ProcessCheckout(t *testing.T) {
	type fields struct {
		config          *config.Config
		transactionRepo *transactionmocks.TransactionRepository
		stockApp        *stockmocks.StockApp
	}
	newFields := func() fields {
		return fields{
			config:          &config.Config{Checkout: config.CheckoutConfig{Currency: "KES"}},
			transactionRepo: transactionmocks.NewTransactionRepository(t),
			stockApp:        stockmocks.NewStockApp(t),
		}
	}

	tests := []struct {
		name        string
		fields      fields
		req         *model.CheckoutRequest
		mockCall    func(f fields)
		wantResults []model.CheckoutItemResult
		wantErr     bool
		errCode     constant.ErrorType
	}{
		{
			name:   "success: all items decremented",
			fields: newFields(),
			req: &model.CheckoutRequest{
				Items: []model.CheckoutItem{
					{Product: &model.CheckoutProduct{ID: "A"}, Quantity: 2, Price: price("50")},
					{ProductID: "B", Quantity: 1, Price: price("150")},
				},
				CustomerDetails: json.RawMessage(`{"name":"Jane"}`),
			},
			mockCall: func(f fields) {
				f.transactionRepo.On("Create", mock.Anything, mock.MatchedBy(func(trx *model.TransactionEntity) bool {
					return trx.TotalAmount.Equal(decimal.NewFromInt(250)) &&
						trx.Currency == "KES" &&
						trx.Status == constant.TransactionStatusCompleted &&
						string(trx.CustomerDetails) == `{"name":"Jane"}` &&
						string(trx.PaymentMetadata) == `{}`
				})).Return(nil).Once()
				f.stockApp.On("AdjustStock", mock.Anything, mock.MatchedBy(func(req *model.AdjustStockRequest) bool {
					return req.ProductID == "A" && req.Delta == -2 && req.Type == constant.MovementTypeSale &&
						req.Reason == constant.CheckoutReason && req.ReferenceID != ""
				})).Return(&model.StockMovement{}, nil).Once()
				f.stockApp.On("AdjustStock", mock.Anything, mock.MatchedBy(func(req *model.AdjustStockRequest) bool {
					return req.ProductID == "B" && req.Delta == -1
				})).Return(&model.StockMovement{}, nil).Once()
			},
			wantResults: []model.CheckoutItemResult{
				{ID: "A", Status: constant.CheckoutItemSuccess},
				{ID: "B", Status: constant.CheckoutItemSuccess},
			},
		},
		{
			name:   "success: failing item does not stop the rest",
			fields: newFields(),
			req: &model.CheckoutRequest{
				Items: []model.CheckoutItem{
					{ProductID: "A", Quantity: 1, Price: price("10")},
					{ProductID: "B", Quantity: 150, Price: price("1")},
					{ProductID: "C", Quantity: 1, Price: price("5")},
				},
			},
			mockCall: func(f fields) {
				f.transactionRepo.On("Create", mock.Anything, mock.MatchedBy(func(trx *model.TransactionEntity) bool {
					return trx.TotalAmount.Equal(decimal.NewFromInt(165))
				})).Return(nil).Once()
				f.stockApp.On("AdjustStock", mock.Anything, mock.MatchedBy(func(req *model.AdjustStockRequest) bool {
					return req.ProductID == "A"
				})).Return(&model.StockMovement{}, nil).Once()
				f.stockApp.On("AdjustStock", mock.Anything, mock.MatchedBy(func(req *model.AdjustStockRequest) bool {
					return req.ProductID == "B"
				})).Return(nil, cerr.SetCustomErrorWithDetail(constant.ErrNegativeStock,
					"Invalid adjustment: Stock cannot go negative. Current: 100, Change: -150")).Once()
				f.stockApp.On("AdjustStock", mock.Anything, mock.MatchedBy(func(req *model.AdjustStockRequest) bool {
					return req.ProductID == "C"
				})).Return(&model.StockMovement{}, nil).Once()
			},
			wantResults: []model.CheckoutItemResult{
				{ID: "A", Status: constant.CheckoutItemSuccess},
				{ID: "B", Status: constant.CheckoutItemFailed, Error: "Invalid adjustment: Stock cannot go negative. Current: 100, Change: -150"},
				{ID: "C", Status: constant.CheckoutItemSuccess},
			},
		},
		{
			name:   "success: price on nested product is used",
			fields: newFields(),
			req: &model.CheckoutRequest{
				Items: []model.CheckoutItem{
					{Product: &model.CheckoutProduct{ID: "A", Price: price("12.50")}, Quantity: 2},
				},
			},
			mockCall: func(f fields) {
				f.transactionRepo.On("Create", mock.Anything, mock.MatchedBy(func(trx *model.TransactionEntity) bool {
					return trx.TotalAmount.Equal(decimal.RequireFromString("25"))
				})).Return(nil).Once()
				f.stockApp.On("AdjustStock", mock.Anything, mock.Anything).Return(&model.StockMovement{}, nil).Once()
			},
			wantResults: []model.CheckoutItemResult{{ID: "A", Status: constant.CheckoutItemSuccess}},
		},
		{
			name:    "error: empty items",
			fields:  newFields(),
			req:     &model.CheckoutRequest{},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: item without product id",
			fields: newFields(),
			req: &model.CheckoutRequest{
				Items: []model.CheckoutItem{{Quantity: 1, Price: price("1")}},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: item with zero quantity",
			fields: newFields(),
			req: &model.CheckoutRequest{
				Items: []model.CheckoutItem{{ProductID: "A", Quantity: 0, Price: price("1")}},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: transaction insert fails",
			fields: newFields(),
			req: &model.CheckoutRequest{
				Items: []model.CheckoutItem{{ProductID: "A", Quantity: 1, Price: price("1")}},
			},
			mockCall: func(f fields) {
				f.transactionRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcheckout.NewCheckoutApp(tt.fields.config, tt.fields.transactionRepo, tt.fields.stockApp)

			got, err := app.ProcessCheckout(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ProcessCheckout() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			require.NotNil(t, got)
			assert.NotEmpty(t, got.TransactionID)
			assert.Equal(t, tt.wantResults, got.Results)
		})
	}
}
