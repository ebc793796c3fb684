package checkout

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/inventory/application/stock"
	"github.com/muhammadheryan/inventory/cmd/config"
	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	transactionrepo "github.com/muhammadheryan/inventory/repository/transaction"
	"github.com/muhammadheryan/inventory/utils/errors"
	"github.com/muhammadheryan/inventory/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CheckoutApp interface {
	ProcessCheckout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

type CheckoutAppImpl struct {
	config          *config.Config
	transactionRepo transactionrepo.TransactionRepository
	stockApp        stock.StockApp
}

func NewCheckoutApp(config *config.Config, transactionRepo transactionrepo.TransactionRepository, stockApp stock.StockApp) CheckoutApp {
	return &CheckoutAppImpl{
		config:          config,
		transactionRepo: transactionRepo,
		stockApp:        stockApp,
	}
}

// ProcessCheckout records the transaction first, then decrements stock item by item. An item
// that fails is reported in the results; earlier items and the transaction stay committed.
func (s *CheckoutAppImpl) ProcessCheckout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "items is required")
	}

	total := decimal.Zero
	for _, item := range req.Items {
		if item.ResolvedProductID() == "" || item.Quantity <= 0 {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "each item needs a product id and a positive quantity")
		}
		total = total.Add(item.UnitPrice().Mul(decimal.NewFromInt(item.Quantity)))
	}

	trx := &model.TransactionEntity{
		ID:              uuid.NewString(),
		TotalAmount:     total,
		Currency:        s.config.Checkout.Currency,
		Status:          constant.TransactionStatusCompleted,
		CustomerDetails: jsonOrEmpty(req.CustomerDetails),
		PaymentMetadata: jsonOrEmpty(req.PaymentData),
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.transactionRepo.Create(ctx, trx); err != nil {
		logger.Error("[ProcessCheckout] err transactionRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	results := make([]model.CheckoutItemResult, 0, len(req.Items))
	for _, item := range req.Items {
		productID := item.ResolvedProductID()
		_, err := s.stockApp.AdjustStock(ctx, &model.AdjustStockRequest{
			ProductID:   productID,
			Delta:       -item.Quantity,
			Type:        constant.MovementTypeSale,
			Reason:      constant.CheckoutReason,
			ReferenceID: trx.ID,
		})
		if err != nil {
			logger.FromContext(ctx).Warn("[ProcessCheckout] item failed",
				zap.String("transaction_id", trx.ID),
				zap.String("product_id", productID),
				zap.String("error", err.Error()))
			results = append(results, model.CheckoutItemResult{ID: productID, Status: constant.CheckoutItemFailed, Error: err.Error()})
			continue
		}
		results = append(results, model.CheckoutItemResult{ID: productID, Status: constant.CheckoutItemSuccess})
	}

	return &model.CheckoutResponse{
		TransactionID: trx.ID,
		Results:       results,
	}, nil
}

func jsonOrEmpty(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage(`{}`)
	}
	return raw
}
