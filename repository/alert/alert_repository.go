package alert

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AlertRepository interface {
	Create(ctx context.Context, alert *model.InventoryAlert) error
	ListByMerchant(ctx context.Context, merchantID string, unreadOnly bool) ([]model.InventoryAlert, error)
	HasUnread(ctx context.Context, merchantID, productID string, alertType constant.AlertType) (bool, error)
	// MarkRead reports whether an alert with that id belongs to the merchant.
	MarkRead(ctx context.Context, merchantID, alertID string) (bool, error)
	MarkAllRead(ctx context.Context, merchantID string) (int64, error)
}

func NewAlertRepository(conn *sqlx.DB) AlertRepository {
	return &SQL{conn: conn}
}

const (
	insertAlert = `INSERT INTO inventory_alert (id, merchant_id, product_id, alert_type, message, is_read, created_at)
VALUES (:id, :merchant_id, :product_id, :alert_type, :message, :is_read, :created_at)`

	listAlertsBase = `SELECT id, merchant_id, product_id, alert_type, message, is_read, created_at FROM inventory_alert WHERE merchant_id = ?`

	hasUnreadAlert = `SELECT EXISTS(SELECT 1 FROM inventory_alert WHERE merchant_id = ? AND product_id = ? AND alert_type = ? AND is_read = false)`

	markAlertRead     = `UPDATE inventory_alert SET is_read = true WHERE id = ? AND merchant_id = ?`
	markAllAlertsRead = `UPDATE inventory_alert SET is_read = true WHERE merchant_id = ? AND is_read = false`
)

func (s *SQL) Create(ctx context.Context, alert *model.InventoryAlert) error {
	_, err := s.conn.NamedExecContext(ctx, insertAlert, alert)
	return err
}

func (s *SQL) ListByMerchant(ctx context.Context, merchantID string, unreadOnly bool) ([]model.InventoryAlert, error) {
	query := listAlertsBase
	if unreadOnly {
		query += " AND is_read = false"
	}
	query += " ORDER BY created_at DESC"

	items := make([]model.InventoryAlert, 0)
	if err := s.conn.SelectContext(ctx, &items, query, merchantID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) HasUnread(ctx context.Context, merchantID, productID string, alertType constant.AlertType) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, hasUnreadAlert, merchantID, productID, alertType); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQL) MarkRead(ctx context.Context, merchantID, alertID string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, markAlertRead, alertID, merchantID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) MarkAllRead(ctx context.Context, merchantID string) (int64, error) {
	res, err := s.conn.ExecContext(ctx, markAllAlertsRead, merchantID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
