package inventory

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	"github.com/muhammadheryan/inventory/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type InventoryRepository interface {
	// GetStock returns nil when the product (or the variant of that product) does not exist.
	GetStock(ctx context.Context, productID string, variantID *string) (*model.StockLevel, error)
	// ApplyDeltaTx increments the counter relationally and returns the post-update quantity.
	ApplyDeltaTx(ctx context.Context, tx *sqlx.Tx, productID string, variantID *string, delta int64) (int64, error)
	InsertMovementTx(ctx context.Context, tx *sqlx.Tx, movement *model.StockMovement) error
	ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, int64, error)
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const (
	getProductStock = `SELECT p.id AS product_id, NULL AS variant_id, p.merchant_id, p.quantity
FROM product p
WHERE p.id = ?`

	getVariantStock = `SELECT v.product_id, v.id AS variant_id, p.merchant_id, v.stock_level AS quantity
FROM product_variant v
JOIN product p ON p.id = v.product_id
WHERE v.id = ? AND v.product_id = ?`

	// the guard lives in the WHERE clause so concurrent decrements cannot pass a stale check
	applyProductDelta = `UPDATE product SET quantity = quantity + ?, updated_at = NOW() WHERE id = ? AND quantity + ? >= 0`
	applyVariantDelta = `UPDATE product_variant SET stock_level = stock_level + ? WHERE id = ? AND product_id = ? AND stock_level + ? >= 0`

	countProduct     = `SELECT COUNT(*) FROM product WHERE id = ?`
	countVariant     = `SELECT COUNT(*) FROM product_variant WHERE id = ? AND product_id = ?`
	selectProductQty = `SELECT quantity FROM product WHERE id = ?`
	selectVariantQty = `SELECT stock_level FROM product_variant WHERE id = ? AND product_id = ?`

	insertMovement = `INSERT INTO stock_movement (id, product_id, variant_id, change_quantity, stock_before, stock_after, movement_type, reference_id, reason, performed_by, created_at)
VALUES (:id, :product_id, :variant_id, :change_quantity, :stock_before, :stock_after, :movement_type, :reference_id, :reason, :performed_by, :created_at)`

	movementColumns = `id, product_id, variant_id, change_quantity, stock_before, stock_after, movement_type, reference_id, reason, performed_by, created_at`
)

func (s *SQL) GetStock(ctx context.Context, productID string, variantID *string) (*model.StockLevel, error) {
	var level model.StockLevel
	var err error
	if variantID != nil {
		err = s.conn.GetContext(ctx, &level, getVariantStock, *variantID, productID)
	} else {
		err = s.conn.GetContext(ctx, &level, getProductStock, productID)
	}
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &level, nil
}

func (s *SQL) ApplyDeltaTx(ctx context.Context, tx *sqlx.Tx, productID string, variantID *string, delta int64) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if variantID != nil {
		res, err = tx.ExecContext(ctx, applyVariantDelta, delta, *variantID, productID, delta)
	} else {
		res, err = tx.ExecContext(ctx, applyProductDelta, delta, productID, delta)
	}
	if err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if affected == 0 {
		var count int64
		if variantID != nil {
			err = tx.GetContext(ctx, &count, countVariant, *variantID, productID)
		} else {
			err = tx.GetContext(ctx, &count, countProduct, productID)
		}
		if err != nil {
			return 0, err
		}
		if count == 0 {
			return 0, sql.ErrNoRows
		}
		return 0, errors.SetCustomError(constant.ErrNegativeStock)
	}

	// the row is locked by this transaction, so the read sees our own write
	var after int64
	if variantID != nil {
		err = tx.GetContext(ctx, &after, selectVariantQty, *variantID, productID)
	} else {
		err = tx.GetContext(ctx, &after, selectProductQty, productID)
	}
	if err != nil {
		return 0, err
	}
	return after, nil
}

func (s *SQL) InsertMovementTx(ctx context.Context, tx *sqlx.Tx, movement *model.StockMovement) error {
	_, err := tx.NamedExecContext(ctx, insertMovement, movement)
	return err
}

func (s *SQL) ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, int64, error) {
	conditions := []string{"product_id = ?"}
	args := []any{filter.ProductID}

	if filter.StartDate != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *filter.EndDate)
	}
	if filter.Type != "" {
		conditions = append(conditions, "movement_type = ?")
		args = append(args, filter.Type)
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM stock_movement"+where, args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + movementColumns + " FROM stock_movement" + where + " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	items := make([]model.StockMovement, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
