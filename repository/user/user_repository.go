package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.MerchantEntity) (*model.MerchantEntity, error)
	Get(ctx context.Context, filter *model.MerchantFilter) (*model.MerchantEntity, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertMerchantQuery = `INSERT INTO merchant (id, name, email, phone, password_hash, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	getMerchantBase     = `SELECT id, name, email, phone, password_hash, created_at, updated_at FROM merchant WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.MerchantEntity) (*model.MerchantEntity, error) {
	if _, err := s.conn.ExecContext(ctx, insertMerchantQuery, data.ID, data.Name, data.Email, data.Phone, data.PasswordHash); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.MerchantFilter) (*model.MerchantEntity, error) {
	query := getMerchantBase
	args := make([]any, 0, 3)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}

	var entity model.MerchantEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
