package report

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	reportrepo "github.com/muhammadheryan/inventory/repository/report"
	"github.com/muhammadheryan/inventory/utils/errors"
	"github.com/muhammadheryan/inventory/utils/logger"
	"go.uber.org/zap"
)

type ReportApp interface {
	// GetReport dispatches on req.Type; an empty or unknown type yields the summary.
	GetReport(ctx context.Context, req *model.ReportRequest) (interface{}, error)
	GetInventorySummary(ctx context.Context, merchantID string) (*model.InventorySummary, error)
	GetLowStockProducts(ctx context.Context, merchantID string, threshold int64) ([]model.ProductDetail, error)
	GetInventoryValuation(ctx context.Context, merchantID string) (*model.InventoryValuation, error)
	GetMerchantStockMovements(ctx context.Context, merchantID string, startDate, endDate *time.Time) ([]model.StockMovement, error)
}

type ReportAppImpl struct {
	reportRepo reportrepo.ReportRepository
}

func NewReportApp(reportRepo reportrepo.ReportRepository) ReportApp {
	return &ReportAppImpl{reportRepo: reportRepo}
}

func (s *ReportAppImpl) GetReport(ctx context.Context, req *model.ReportRequest) (interface{}, error) {
	if req == nil || req.MerchantID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	switch constant.ReportType(strings.ToLower(req.Type)) {
	case constant.ReportTypeLowStock:
		return s.GetLowStockProducts(ctx, req.MerchantID, constant.LowStockThreshold)
	case constant.ReportTypeMovements:
		return s.GetMerchantStockMovements(ctx, req.MerchantID, req.StartDate, req.EndDate)
	case constant.ReportTypeValuation, constant.ReportTypeValue:
		return s.GetInventoryValuation(ctx, req.MerchantID)
	default:
		return s.GetInventorySummary(ctx, req.MerchantID)
	}
}

func (s *ReportAppImpl) GetInventorySummary(ctx context.Context, merchantID string) (*model.InventorySummary, error) {
	summary, err := s.reportRepo.GetInventorySummary(ctx, merchantID)
	if err != nil {
		logger.Error("[GetInventorySummary] err reportRepo.GetInventorySummary", zap.String("merchant_id", merchantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return summary, nil
}

func (s *ReportAppImpl) GetLowStockProducts(ctx context.Context, merchantID string, threshold int64) ([]model.ProductDetail, error) {
	if threshold <= 0 {
		threshold = constant.LowStockThreshold
	}

	products, err := s.reportRepo.GetLowStockProducts(ctx, merchantID, threshold)
	if err != nil {
		logger.Error("[GetLowStockProducts] err reportRepo.GetLowStockProducts", zap.String("merchant_id", merchantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if products == nil {
		products = []model.ProductDetail{}
	}
	return products, nil
}

func (s *ReportAppImpl) GetInventoryValuation(ctx context.Context, merchantID string) (*model.InventoryValuation, error) {
	total, err := s.reportRepo.GetTotalValue(ctx, merchantID)
	if err != nil {
		logger.Error("[GetInventoryValuation] err reportRepo.GetTotalValue", zap.String("merchant_id", merchantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	byCategory, err := s.reportRepo.GetValueByCategory(ctx, merchantID)
	if err != nil {
		logger.Error("[GetInventoryValuation] err reportRepo.GetValueByCategory", zap.String("merchant_id", merchantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if byCategory == nil {
		byCategory = []model.CategoryValuation{}
	}

	return &model.InventoryValuation{
		TotalValue: total,
		ByCategory: byCategory,
	}, nil
}

func (s *ReportAppImpl) GetMerchantStockMovements(ctx context.Context, merchantID string, startDate, endDate *time.Time) ([]model.StockMovement, error) {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "end_date must not be before start_date")
	}

	movements, err := s.reportRepo.GetMerchantStockMovements(ctx, merchantID, startDate, endDate)
	if err != nil {
		logger.Error("[GetMerchantStockMovements] err reportRepo.GetMerchantStockMovements", zap.String("merchant_id", merchantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if movements == nil {
		movements = []model.StockMovement{}
	}
	return movements, nil
}
