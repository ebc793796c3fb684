package model

import (
	"encoding/json"
	"time"

	"github.com/muhammadheryan/inventory/constant"
	"github.com/shopspring/decimal"
)

type TransactionEntity struct {
	ID              string                     `db:"id" json:"id"`
	TotalAmount     decimal.Decimal            `db:"total_amount" json:"total_amount"`
	Currency        string                     `db:"currency" json:"currency"`
	Status          constant.TransactionStatus `db:"status" json:"status"`
	CustomerDetails json.RawMessage            `db:"customer_details" json:"customer_details"`
	PaymentMetadata json.RawMessage            `db:"payment_metadata" json:"payment_metadata"`
	CreatedAt       time.Time                  `db:"created_at" json:"created_at"`
}

type CheckoutProduct struct {
	ID    string           `json:"id"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

type CheckoutItem struct {
	Product   *CheckoutProduct `json:"product"`
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity" validate:"gt=0"`
	Price     *decimal.Decimal `json:"price"`
}

// ResolvedProductID prefers the nested product object, as the storefront cart sends it.
func (i CheckoutItem) ResolvedProductID() string {
	if i.Product != nil && i.Product.ID != "" {
		return i.Product.ID
	}
	return i.ProductID
}

// UnitPrice is the client supplied price; it is not checked against the catalogue.
func (i CheckoutItem) UnitPrice() decimal.Decimal {
	if i.Price != nil {
		return *i.Price
	}
	if i.Product != nil && i.Product.Price != nil {
		return *i.Product.Price
	}
	return decimal.Zero
}

type CheckoutRequest struct {
	Items           []CheckoutItem  `json:"items" validate:"required,min=1,dive"`
	PaymentData     json.RawMessage `json:"paymentData"`
	CustomerDetails json.RawMessage `json:"customerDetails"`
}

type CheckoutItemResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type CheckoutResponse struct {
	TransactionID string               `json:"transactionId"`
	Results       []CheckoutItemResult `json:"results"`
}
