package user_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory/model"
	userrepo "github.com/muhammadheryan/inventory/repository/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO merchant")).
		WithArgs("m1", "Duka Moja", "owner@duka.co.ke", "0712345678", "hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := userrepo.NewUserRepository(sqlx.NewDb(db, "mysql")).Create(context.Background(), &model.MerchantEntity{
		ID: "m1", Name: "Duka Moja", Email: "owner@duka.co.ke", Phone: "0712345678", PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	columns := []string{"id", "name", "email", "phone", "password_hash", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM merchant WHERE true AND email = ?")).
		WithArgs("owner@duka.co.ke").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("m1", "Duka Moja", "owner@duka.co.ke", "0712345678", "hash", time.Now(), nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM merchant WHERE true AND phone = ?")).
		WithArgs("0799999999").
		WillReturnRows(sqlmock.NewRows(columns))

	repo := userrepo.NewUserRepository(sqlx.NewDb(db, "mysql"))

	got, err := repo.Get(context.Background(), &model.MerchantFilter{Email: "owner@duka.co.ke"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "m1", got.ID)

	got, err = repo.Get(context.Background(), &model.MerchantFilter{Phone: "0799999999"})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
