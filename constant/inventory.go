package constant

// LowStockThreshold is the quantity at or below which an adjustment raises an alert.
const LowStockThreshold = 10

type MovementType string

const (
	MovementTypeIn         MovementType = "IN"
	MovementTypeOut        MovementType = "OUT"
	MovementTypeAdjustment MovementType = "ADJUSTMENT"
	MovementTypeReturn     MovementType = "RETURN"
	MovementTypeSale       MovementType = "SALE"
)

func (m MovementType) Valid() bool {
	switch m {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjustment, MovementTypeReturn, MovementTypeSale:
		return true
	}
	return false
}

type AlertType string

const (
	AlertTypeLowStock   AlertType = "LOW_STOCK"
	AlertTypeOutOfStock AlertType = "OUT_OF_STOCK"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

type ReportType string

const (
	ReportTypeSummary   ReportType = "summary"
	ReportTypeLowStock  ReportType = "low_stock"
	ReportTypeMovements ReportType = "movements"
	ReportTypeValuation ReportType = "valuation"
	// ReportTypeValue is accepted by older dashboard builds.
	ReportTypeValue ReportType = "value"
)

const (
	CheckoutItemSuccess = "success"
	CheckoutItemFailed  = "failed"
	CheckoutReason      = "Customer Purchase"
)
