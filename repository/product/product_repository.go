package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, merchantID string, page, perPage int) ([]model.ProductListItem, int64, error)
	GetByID(ctx context.Context, merchantID, id string) (*model.ProductDetail, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProducts = `SELECT id, name, quantity, price, category_id
FROM product
WHERE merchant_id = ?
ORDER BY name LIMIT ? OFFSET ?`

	countProductsQuery = `SELECT COUNT(*) FROM product WHERE merchant_id = ?`

	getProductDetail = `SELECT id, merchant_id, name, price, quantity, category_id, supplier_id, created_at, updated_at
FROM product
WHERE id = ? AND merchant_id = ?`
)

func (s *SQL) List(ctx context.Context, merchantID string, page, perPage int) ([]model.ProductListItem, int64, error) {
	offset := (page - 1) * perPage

	rows, err := s.conn.QueryxContext(ctx, listProducts, merchantID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery, merchantID); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// GetByID returns nil when the product does not exist or belongs to another merchant
func (s *SQL) GetByID(ctx context.Context, merchantID, id string) (*model.ProductDetail, error) {
	var detail model.ProductDetail
	if err := s.conn.QueryRowxContext(ctx, getProductDetail, id, merchantID).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}
