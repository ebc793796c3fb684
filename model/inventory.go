package model

import (
	"time"

	"github.com/muhammadheryan/inventory/constant"
)

// StockLevel is the current counter of a product, or of one of its variants.
type StockLevel struct {
	ProductID  string  `db:"product_id"`
	VariantID  *string `db:"variant_id"`
	MerchantID string  `db:"merchant_id"`
	Quantity   int64   `db:"quantity"`
}

type StockMovement struct {
	ID             string                `db:"id" json:"id"`
	ProductID      string                `db:"product_id" json:"product_id"`
	VariantID      *string               `db:"variant_id" json:"variant_id,omitempty"`
	ChangeQuantity int64                 `db:"change_quantity" json:"change_quantity"`
	StockBefore    int64                 `db:"stock_before" json:"stock_before"`
	StockAfter     int64                 `db:"stock_after" json:"stock_after"`
	MovementType   constant.MovementType `db:"movement_type" json:"movement_type"`
	ReferenceID    *string               `db:"reference_id" json:"reference_id,omitempty"`
	Reason         *string               `db:"reason" json:"reason,omitempty"`
	PerformedBy    *string               `db:"performed_by" json:"performed_by,omitempty"`
	CreatedAt      time.Time             `db:"created_at" json:"created_at"`
}

// AdjustStockRequest is the engine input. Delta is signed; callers negate outgoing quantities.
type AdjustStockRequest struct {
	MerchantID  string
	ProductID   string
	VariantID   *string
	Delta       int64
	Type        constant.MovementType
	Reason      string
	ReferenceID string
	PerformedBy string
}

// AdjustStockHTTPRequest is the body of POST /inventory/adjust.
type AdjustStockHTTPRequest struct {
	ProductID    string                `json:"product_id" validate:"required"`
	VariantID    *string               `json:"variant_id"`
	MovementType constant.MovementType `json:"movement_type" validate:"required,movement_type"`
	Quantity     int64                 `json:"quantity" validate:"ne=0"`
	Reason       string                `json:"reason"`
	SupplierID   *string               `json:"supplier_id"`
	ReferenceID  string                `json:"reference_id"`
}

// MovementFilter selects one product's movements. A set MerchantID restricts the lookup to that
// merchant's products.
type MovementFilter struct {
	MerchantID string
	ProductID  string
	StartDate  *time.Time
	EndDate    *time.Time
	Type       constant.MovementType
	Page       int
	Limit      int
}

type MovementHistory struct {
	Data       []StockMovement `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// LowStockEvent is emitted after an adjustment commits at or below the threshold.
type LowStockEvent struct {
	MerchantID   string    `json:"merchant_id"`
	ProductID    string    `json:"product_id"`
	CurrentStock int64     `json:"current_stock"`
	Threshold    int64     `json:"threshold"`
	OccurredAt   time.Time `json:"occurred_at"`
}
