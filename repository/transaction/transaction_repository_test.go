package transaction_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	transactionrepo "github.com/muhammadheryan/inventory/repository/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `transaction`")).
		WithArgs("t1", "250", "KES", "COMPLETED", `{"name":"Jane"}`, "{}", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = transactionrepo.NewTransactionRepository(sqlx.NewDb(db, "mysql")).Create(context.Background(), &model.TransactionEntity{
		ID:              "t1",
		TotalAmount:     decimal.NewFromInt(250),
		Currency:        "KES",
		Status:          constant.TransactionStatusCompleted,
		CustomerDetails: json.RawMessage(`{"name":"Jane"}`),
		CreatedAt:       now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
