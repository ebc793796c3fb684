package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/inventory/cmd/config"
	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	alertrepo "github.com/muhammadheryan/inventory/repository/alert"
	reportrepo "github.com/muhammadheryan/inventory/repository/report"
	"github.com/muhammadheryan/inventory/utils/errors"
	"github.com/muhammadheryan/inventory/utils/logger"
	"go.uber.org/zap"
)

type AlertApp interface {
	TriggerLowStockAlert(ctx context.Context, merchantID, productID string, currentStock, threshold int64) (*model.InventoryAlert, error)
	// HandleLowStock consumes a low-stock event from the dispatcher or the queue.
	HandleLowStock(ctx context.Context, event model.LowStockEvent) error
	GetAlerts(ctx context.Context, merchantID string, unreadOnly bool) ([]model.InventoryAlert, error)
	GetUnreadAlerts(ctx context.Context, merchantID string) ([]model.InventoryAlert, error)
	DismissAlert(ctx context.Context, merchantID, alertID string) error
	DismissAllAlerts(ctx context.Context, merchantID string) (bool, error)
	CheckLowStock(ctx context.Context, merchantID string) (int, error)
}

type AlertAppImpl struct {
	config     *config.Config
	alertRepo  alertrepo.AlertRepository
	reportRepo reportrepo.ReportRepository
}

func NewAlertApp(config *config.Config, alertRepo alertrepo.AlertRepository, reportRepo reportrepo.ReportRepository) AlertApp {
	return &AlertAppImpl{
		config:     config,
		alertRepo:  alertRepo,
		reportRepo: reportRepo,
	}
}

// TriggerLowStockAlert stores a LOW_STOCK alert. With deduplication enabled an existing unread
// alert for the product suppresses the new one and (nil, nil) is returned.
func (s *AlertAppImpl) TriggerLowStockAlert(ctx context.Context, merchantID, productID string, currentStock, threshold int64) (*model.InventoryAlert, error) {
	if merchantID == "" || productID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if s.config.Alert.Deduplicate {
		exists, err := s.alertRepo.HasUnread(ctx, merchantID, productID, constant.AlertTypeLowStock)
		if err != nil {
			logger.Error("[TriggerLowStockAlert] err alertRepo.HasUnread", zap.String("product_id", productID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if exists {
			logger.Debug("[TriggerLowStockAlert] unread alert exists", zap.String("product_id", productID))
			return nil, nil
		}
	}

	alert := &model.InventoryAlert{
		ID:         uuid.NewString(),
		MerchantID: merchantID,
		ProductID:  &productID,
		Type:       constant.AlertTypeLowStock,
		Message:    fmt.Sprintf("Product stock is low (%d). Threshold is %d.", currentStock, threshold),
		IsRead:     false,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		logger.Error("[TriggerLowStockAlert] err alertRepo.Create", zap.String("product_id", productID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return alert, nil
}

func (s *AlertAppImpl) HandleLowStock(ctx context.Context, event model.LowStockEvent) error {
	threshold := event.Threshold
	if threshold <= 0 {
		threshold = constant.LowStockThreshold
	}
	_, err := s.TriggerLowStockAlert(ctx, event.MerchantID, event.ProductID, event.CurrentStock, threshold)
	return err
}

func (s *AlertAppImpl) GetAlerts(ctx context.Context, merchantID string, unreadOnly bool) ([]model.InventoryAlert, error) {
	alerts, err := s.alertRepo.ListByMerchant(ctx, merchantID, unreadOnly)
	if err != nil {
		logger.Error("[GetAlerts] err alertRepo.ListByMerchant", zap.String("merchant_id", merchantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if alerts == nil {
		alerts = []model.InventoryAlert{}
	}
	return alerts, nil
}

func (s *AlertAppImpl) GetUnreadAlerts(ctx context.Context, merchantID string) ([]model.InventoryAlert, error) {
	return s.GetAlerts(ctx, merchantID, true)
}

func (s *AlertAppImpl) DismissAlert(ctx context.Context, merchantID, alertID string) error {
	if alertID == "" {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	found, err := s.alertRepo.MarkRead(ctx, merchantID, alertID)
	if err != nil {
		logger.Error("[DismissAlert] err alertRepo.MarkRead", zap.String("alert_id", alertID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *AlertAppImpl) DismissAllAlerts(ctx context.Context, merchantID string) (bool, error) {
	updated, err := s.alertRepo.MarkAllRead(ctx, merchantID)
	if err != nil {
		logger.Error("[DismissAllAlerts] err alertRepo.MarkAllRead", zap.String("merchant_id", merchantID), zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	return updated > 0, nil
}

// CheckLowStock sweeps every product of the merchant at or below the threshold and returns the
// number of alerts created. A failing product is logged and skipped.
func (s *AlertAppImpl) CheckLowStock(ctx context.Context, merchantID string) (int, error) {
	if merchantID == "" {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	products, err := s.reportRepo.GetLowStockProducts(ctx, merchantID, constant.LowStockThreshold)
	if err != nil {
		logger.Error("[CheckLowStock] err reportRepo.GetLowStockProducts", zap.String("merchant_id", merchantID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	created := 0
	for _, p := range products {
		alert, err := s.TriggerLowStockAlert(ctx, merchantID, p.ID, p.Quantity, constant.LowStockThreshold)
		if err != nil {
			logger.Warn("[CheckLowStock] trigger alert", zap.String("product_id", p.ID), zap.String("error", err.Error()))
			continue
		}
		if alert != nil {
			created++
		}
	}

	logger.Info("[CheckLowStock] sweep finished", zap.String("merchant_id", merchantID), zap.Int("scanned", len(products)), zap.Int("created", created))
	return created, nil
}
