package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductListItem struct {
	ID         string          `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	Quantity   int64           `db:"quantity" json:"quantity"`
	Price      decimal.Decimal `db:"price" json:"price"`
	CategoryID *string         `db:"category_id" json:"category_id,omitempty"`
}

type ProductDetail struct {
	ID         string          `db:"id" json:"id"`
	MerchantID string          `db:"merchant_id" json:"merchant_id"`
	Name       string          `db:"name" json:"name"`
	Price      decimal.Decimal `db:"price" json:"price"`
	Quantity   int64           `db:"quantity" json:"quantity"`
	CategoryID *string         `db:"category_id" json:"category_id,omitempty"`
	SupplierID *string         `db:"supplier_id" json:"supplier_id,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}
