package report

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	"github.com/shopspring/decimal"
)

type SQL struct {
	conn *sqlx.DB
}

type ReportRepository interface {
	GetInventorySummary(ctx context.Context, merchantID string) (*model.InventorySummary, error)
	GetLowStockProducts(ctx context.Context, merchantID string, threshold int64) ([]model.ProductDetail, error)
	GetTotalValue(ctx context.Context, merchantID string) (decimal.Decimal, error)
	GetValueByCategory(ctx context.Context, merchantID string) ([]model.CategoryValuation, error)
	GetMerchantStockMovements(ctx context.Context, merchantID string, startDate, endDate *time.Time) ([]model.StockMovement, error)
}

func NewReportRepository(conn *sqlx.DB) ReportRepository {
	return &SQL{conn: conn}
}

const (
	getInventorySummary = `SELECT COUNT(*) AS total_products,
	COALESCE(SUM(quantity * price), 0) AS total_stock_value,
	COALESCE(SUM(CASE WHEN quantity > 0 AND quantity <= ? THEN 1 ELSE 0 END), 0) AS low_stock_count,
	COALESCE(SUM(CASE WHEN quantity = 0 THEN 1 ELSE 0 END), 0) AS out_of_stock_count
FROM product
WHERE merchant_id = ?`

	getLowStockProducts = `SELECT id, merchant_id, name, price, quantity, category_id, supplier_id, created_at, updated_at
FROM product
WHERE merchant_id = ? AND quantity <= ?
ORDER BY quantity ASC`

	getTotalValue = `SELECT COALESCE(SUM(quantity * price), 0) FROM product WHERE merchant_id = ?`

	getValueByCategory = `SELECT c.name AS category, COUNT(p.id) AS count, COALESCE(SUM(p.quantity * p.price), 0) AS value
FROM product p
LEFT JOIN category c ON p.category_id = c.id
WHERE p.merchant_id = ?
GROUP BY c.name`

	getMerchantMovementsBase = `SELECT sm.id, sm.product_id, sm.variant_id, sm.change_quantity, sm.stock_before, sm.stock_after, sm.movement_type, sm.reference_id, sm.reason, sm.performed_by, sm.created_at
FROM stock_movement sm
JOIN product p ON sm.product_id = p.id
WHERE p.merchant_id = ?`
)

func (s *SQL) GetInventorySummary(ctx context.Context, merchantID string) (*model.InventorySummary, error) {
	var summary model.InventorySummary
	if err := s.conn.GetContext(ctx, &summary, getInventorySummary, constant.LowStockThreshold, merchantID); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *SQL) GetLowStockProducts(ctx context.Context, merchantID string, threshold int64) ([]model.ProductDetail, error) {
	items := make([]model.ProductDetail, 0)
	if err := s.conn.SelectContext(ctx, &items, getLowStockProducts, merchantID, threshold); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetTotalValue(ctx context.Context, merchantID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := s.conn.GetContext(ctx, &total, getTotalValue, merchantID); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (s *SQL) GetValueByCategory(ctx context.Context, merchantID string) ([]model.CategoryValuation, error) {
	items := make([]model.CategoryValuation, 0)
	if err := s.conn.SelectContext(ctx, &items, getValueByCategory, merchantID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetMerchantStockMovements(ctx context.Context, merchantID string, startDate, endDate *time.Time) ([]model.StockMovement, error) {
	query := getMerchantMovementsBase
	args := []any{merchantID}

	if startDate != nil {
		query += " AND sm.created_at >= ?"
		args = append(args, *startDate)
	}
	if endDate != nil {
		query += " AND sm.created_at <= ?"
		args = append(args, *endDate)
	}
	query += " ORDER BY sm.created_at DESC"

	items := make([]model.StockMovement, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
