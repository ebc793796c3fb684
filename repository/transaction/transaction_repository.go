package transaction

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory/model"
)

type SQL struct {
	conn *sqlx.DB
}

type TransactionRepository interface {
	Create(ctx context.Context, trx *model.TransactionEntity) error
}

func NewTransactionRepository(conn *sqlx.DB) TransactionRepository {
	return &SQL{conn: conn}
}

const insertTransaction = "INSERT INTO `transaction` (id, total_amount, currency, status, customer_details, payment_metadata, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)"

func (s *SQL) Create(ctx context.Context, trx *model.TransactionEntity) error {
	_, err := s.conn.ExecContext(ctx, insertTransaction,
		trx.ID,
		trx.TotalAmount,
		trx.Currency,
		trx.Status,
		jsonOrEmpty(trx.CustomerDetails),
		jsonOrEmpty(trx.PaymentMetadata),
		trx.CreatedAt,
	)
	return err
}

func jsonOrEmpty(raw []byte) string {
	if len(raw) == 0 || string(raw) == "null" {
		return "{}"
	}
	return string(raw)
}
