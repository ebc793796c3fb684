package stock

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	inventoryrepo "github.com/muhammadheryan/inventory/repository/inventory"
	txrepo "github.com/muhammadheryan/inventory/repository/tx"
	"github.com/muhammadheryan/inventory/utils/errors"
	"github.com/muhammadheryan/inventory/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type StockApp interface {
	AdjustStock(ctx context.Context, req *model.AdjustStockRequest) (*model.StockMovement, error)
	GetMovementHistory(ctx context.Context, filter *model.MovementFilter) (*model.MovementHistory, error)
}

// LowStockNotifier receives an event once an adjustment has committed at or below the threshold.
type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, event model.LowStockEvent) error
}

// MovementPublisher streams committed movements to downstream consumers.
type MovementPublisher interface {
	PublishMovement(ctx context.Context, movement *model.StockMovement) error
}

type stockAppImpl struct {
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
	notifier      LowStockNotifier
	publisher     MovementPublisher
}

// NewStockApp wires the adjustment engine. notifier and publisher are optional.
func NewStockApp(txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository, notifier LowStockNotifier, publisher MovementPublisher) StockApp {
	return &stockAppImpl{
		txRepo:        txRepo,
		inventoryRepo: inventoryRepo,
		notifier:      notifier,
		publisher:     publisher,
	}
}

func (s *stockAppImpl) AdjustStock(ctx context.Context, req *model.AdjustStockRequest) (*model.StockMovement, error) {
	if req == nil || req.ProductID == "" || req.Delta == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Type != "" && !req.Type.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	current, err := s.inventoryRepo.GetStock(ctx, req.ProductID, req.VariantID)
	if err != nil {
		logger.Error("[AdjustStock] get stock", zap.String("product_id", req.ProductID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if current == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if req.MerchantID != "" && current.MerchantID != req.MerchantID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	newQuantity := current.Quantity + req.Delta
	if newQuantity < 0 {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrNegativeStock,
			fmt.Sprintf("Invalid adjustment: Stock cannot go negative. Current: %d, Change: %d", current.Quantity, req.Delta))
	}

	movementType := req.Type
	if movementType == "" {
		movementType = constant.MovementTypeIn
		if req.Delta < 0 {
			movementType = constant.MovementTypeOut
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AdjustStock] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	after, err := s.inventoryRepo.ApplyDeltaTx(ctx, tx, req.ProductID, req.VariantID, req.Delta)
	if err != nil {
		switch {
		case stderrors.Is(err, errors.SetCustomError(constant.ErrNegativeStock)):
			logger.Info("[AdjustStock] concurrent adjustment exhausted stock", zap.String("product_id", req.ProductID), zap.Int64("change", req.Delta))
			return nil, errors.SetCustomErrorWithDetail(constant.ErrNegativeStock,
				fmt.Sprintf("Invalid adjustment: Stock cannot go negative. Change: %d", req.Delta))
		case stderrors.Is(err, sql.ErrNoRows):
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[AdjustStock] apply delta", zap.String("product_id", req.ProductID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	movement := &model.StockMovement{
		ID:             uuid.NewString(),
		ProductID:      req.ProductID,
		VariantID:      req.VariantID,
		ChangeQuantity: req.Delta,
		StockBefore:    after - req.Delta,
		StockAfter:     after,
		MovementType:   movementType,
		ReferenceID:    optional(req.ReferenceID),
		Reason:         optional(req.Reason),
		PerformedBy:    optional(req.PerformedBy),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.inventoryRepo.InsertMovementTx(ctx, tx, movement); err != nil {
		logger.Error("[AdjustStock] insert movement", zap.String("product_id", req.ProductID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AdjustStock] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.afterCommit(ctx, current.MerchantID, movement)

	return movement, nil
}

// afterCommit runs the post-commit side effects. Their failures never reach the caller.
func (s *stockAppImpl) afterCommit(ctx context.Context, merchantID string, movement *model.StockMovement) {
	if movement.StockAfter <= constant.LowStockThreshold && s.notifier != nil {
		event := model.LowStockEvent{
			MerchantID:   merchantID,
			ProductID:    movement.ProductID,
			CurrentStock: movement.StockAfter,
			Threshold:    constant.LowStockThreshold,
			OccurredAt:   movement.CreatedAt,
		}
		if err := s.notifier.NotifyLowStock(ctx, event); err != nil {
			logger.FromContext(ctx).Error("[AdjustStock] notify low stock",
				zap.String("product_id", movement.ProductID),
				zap.Int64("stock", movement.StockAfter),
				zap.String("error", err.Error()))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishMovement(ctx, movement); err != nil {
			logger.FromContext(ctx).Warn("[AdjustStock] publish movement", zap.String("movement_id", movement.ID), zap.String("error", err.Error()))
		}
	}
}

func (s *stockAppImpl) GetMovementHistory(ctx context.Context, filter *model.MovementFilter) (*model.MovementHistory, error) {
	if filter == nil || filter.ProductID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if filter.MerchantID != "" {
		level, err := s.inventoryRepo.GetStock(ctx, filter.ProductID, nil)
		if err != nil {
			logger.Error("[GetMovementHistory] get stock", zap.String("product_id", filter.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if level == nil || level.MerchantID != filter.MerchantID {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultHistoryLimit
	}
	if filter.Limit > maxHistoryLimit {
		filter.Limit = maxHistoryLimit
	}

	items, total, err := s.inventoryRepo.ListMovements(ctx, filter)
	if err != nil {
		logger.Error("[GetMovementHistory] list movements", zap.String("product_id", filter.ProductID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.MovementHistory{
		Data:       items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
