package model

import (
	"time"

	"github.com/muhammadheryan/inventory/constant"
)

type InventoryAlert struct {
	ID         string             `db:"id" json:"id"`
	MerchantID string             `db:"merchant_id" json:"merchant_id"`
	ProductID  *string            `db:"product_id" json:"product_id,omitempty"`
	Type       constant.AlertType `db:"alert_type" json:"type"`
	Message    string             `db:"message" json:"message"`
	IsRead     bool               `db:"is_read" json:"is_read"`
	CreatedAt  time.Time          `db:"created_at" json:"created_at"`
}

type AlertScanRequest struct {
	MerchantID string `json:"merchant_id" validate:"required"`
}
