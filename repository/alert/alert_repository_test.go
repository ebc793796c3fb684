package alert_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	alertrepo "github.com/muhammadheryan/inventory/repository/alert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func TestAlertRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	productID := "p1"
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inventory_alert")).
		WithArgs("a1", "m1", "p1", "LOW_STOCK", "Product stock is low (4). Threshold is 10.", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := alertrepo.NewAlertRepository(db).Create(context.Background(), &model.InventoryAlert{
		ID:         "a1",
		MerchantID: "m1",
		ProductID:  &productID,
		Type:       constant.AlertTypeLowStock,
		Message:    "Product stock is low (4). Threshold is 10.",
		CreatedAt:  time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_ListByMerchant(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE merchant_id = ? AND is_read = false ORDER BY created_at DESC")).
		WithArgs("m1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "merchant_id", "product_id", "alert_type", "message", "is_read", "created_at"}).
			AddRow("a2", "m1", "p1", "LOW_STOCK", "Product stock is low (3). Threshold is 10.", false, time.Now()))

	got, err := alertrepo.NewAlertRepository(db).ListByMerchant(context.Background(), "m1", true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, constant.AlertTypeLowStock, got[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_MarkRead(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "found", affected: 1, want: true},
		{name: "not found", affected: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec(regexp.QuoteMeta("UPDATE inventory_alert SET is_read = true WHERE id = ? AND merchant_id = ?")).
				WithArgs("a1", "m1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			got, err := alertrepo.NewAlertRepository(db).MarkRead(context.Background(), "m1", "a1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlertRepository_HasUnread(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("m1", "p1", "LOW_STOCK").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := alertrepo.NewAlertRepository(db).HasUnread(context.Background(), "m1", "p1", constant.AlertTypeLowStock)
	require.NoError(t, err)
	assert.True(t, got)
}
