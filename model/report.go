package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventorySummary struct {
	TotalProducts   int64           `db:"total_products" json:"total_products"`
	TotalStockValue decimal.Decimal `db:"total_stock_value" json:"total_stock_value"`
	LowStockCount   int64           `db:"low_stock_count" json:"low_stock_count"`
	OutOfStockCount int64           `db:"out_of_stock_count" json:"out_of_stock_count"`
}

type CategoryValuation struct {
	Category *string         `db:"category" json:"category"`
	Count    int64           `db:"count" json:"count"`
	Value    decimal.Decimal `db:"value" json:"value"`
}

type InventoryValuation struct {
	TotalValue decimal.Decimal     `json:"totalValue"`
	ByCategory []CategoryValuation `json:"byCategory"`
}

type ReportRequest struct {
	MerchantID string
	Type       string
	StartDate  *time.Time
	EndDate    *time.Time
}
