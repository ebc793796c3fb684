package alert_test

import (
	"context"
	"errors"
	"testing"

	appalert "github.com/muhammadheryan/inventory/application/alert"
	"github.com/muhammadheryan/inventory/cmd/config"
	"github.com/muhammadheryan/inventory/constant"
	alertmocks "github.com/muhammadheryan/inventory/mocks/repository/alert"
	reportmocks "github.com/muhammadheryan/inventory/mocks/repository/report"
	"github.com/muhammadheryan/inventory/model"
	cerr "github.com/muhammadheryan/inventory/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestAlertApp_TriggerLowStockAlert(t *testing.T) {
	type fields struct {
		config    *config.Config
		alertRepo *alertmocks.AlertRepository
	}
	type args struct {
		merchantID   string
		productID    string
		currentStock int64
		threshold    int64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantNil  bool
		wantMsg  string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: creates unread low stock alert",
			fields: fields{config: &config.Config{}, alertRepo: alertmocks.NewAlertRepository(t)},
			args:   args{merchantID: "m1", productID: "p1", currentStock: 8, threshold: 10},
			mockCall: func(f fields) {
				f.alertRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.InventoryAlert) bool {
					return a.MerchantID == "m1" && *a.ProductID == "p1" && a.Type == constant.AlertTypeLowStock && !a.IsRead
				})).Return(nil).Once()
			},
			wantMsg: "Product stock is low (8). Threshold is 10.",
		},
		{
			name:   "success: duplicates are kept when deduplication is off",
			fields: fields{config: &config.Config{}, alertRepo: alertmocks.NewAlertRepository(t)},
			args:   args{merchantID: "m1", productID: "p1", currentStock: 0, threshold: 10},
			mockCall: func(f fields) {
				f.alertRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantMsg: "Product stock is low (0). Threshold is 10.",
		},
		{
			name: "success: deduplication suppresses alert when unread exists",
			fields: fields{
				config:    &config.Config{Alert: config.AlertConfig{Deduplicate: true}},
				alertRepo: alertmocks.NewAlertRepository(t),
			},
			args: args{merchantID: "m1", productID: "p1", currentStock: 5, threshold: 10},
			mockCall: func(f fields) {
				f.alertRepo.On("HasUnread", mock.Anything, "m1", "p1", constant.AlertTypeLowStock).Return(true, nil).Once()
			},
			wantNil: true,
		},
		{
			name: "success: deduplication creates alert when none unread",
			fields: fields{
				config:    &config.Config{Alert: config.AlertConfig{Deduplicate: true}},
				alertRepo: alertmocks.NewAlertRepository(t),
			},
			args: args{merchantID: "m1", productID: "p1", currentStock: 5, threshold: 10},
			mockCall: func(f fields) {
				f.alertRepo.On("HasUnread", mock.Anything, "m1", "p1", constant.AlertTypeLowStock).Return(false, nil).Once()
				f.alertRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantMsg: "Product stock is low (5). Threshold is 10.",
		},
		{
			name:    "error: missing product id",
			fields:  fields{config: &config.Config{}, alertRepo: alertmocks.NewAlertRepository(t)},
			args:    args{merchantID: "m1", currentStock: 5, threshold: 10},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: Create returns error",
			fields: fields{config: &config.Config{}, alertRepo: alertmocks.NewAlertRepository(t)},
			args:   args{merchantID: "m1", productID: "p1", currentStock: 5, threshold: 10},
			mockCall: func(f fields) {
				f.alertRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appalert.NewAlertApp(tt.fields.config, tt.fields.alertRepo, reportmocks.NewReportRepository(t))

			got, err := app.TriggerLowStockAlert(context.Background(), tt.args.merchantID, tt.args.productID, tt.args.currentStock, tt.args.threshold)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TriggerLowStockAlert() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestAlertApp_HandleLowStock_DefaultsThreshold(t *testing.T) {
	alertRepo := alertmocks.NewAlertRepository(t)
	alertRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.InventoryAlert) bool {
		return a.Message == "Product stock is low (3). Threshold is 10."
	})).Return(nil).Once()

	app := appalert.NewAlertApp(&config.Config{}, alertRepo, reportmocks.NewReportRepository(t))
	err := app.HandleLowStock(context.Background(), model.LowStockEvent{MerchantID: "m1", ProductID: "p1", CurrentStock: 3})
	require.NoError(t, err)
}

func TestAlertApp_GetAlerts(t *testing.T) {
	alertRepo := alertmocks.NewAlertRepository(t)
	alertRepo.On("ListByMerchant", mock.Anything, "m1", true).Return(nil, nil).Once()
	alertRepo.On("ListByMerchant", mock.Anything, "m1", false).Return([]model.InventoryAlert{{ID: "a2"}, {ID: "a1"}}, nil).Once()
	alertRepo.On("ListByMerchant", mock.Anything, "m2", false).Return(nil, errors.New("db down")).Once()

	app := appalert.NewAlertApp(&config.Config{}, alertRepo, reportmocks.NewReportRepository(t))

	unread, err := app.GetUnreadAlerts(context.Background(), "m1")
	require.NoError(t, err)
	assert.NotNil(t, unread)
	assert.Empty(t, unread)

	all, err := app.GetAlerts(context.Background(), "m1", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "a2", all[0].ID)

	_, err = app.GetAlerts(context.Background(), "m2", false)
	assertErrCode(t, err, constant.ErrInternal)
}

func TestAlertApp_DismissAlert(t *testing.T) {
	tests := []struct {
		name     string
		alertID  string
		mockCall func(repo *alertmocks.AlertRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: mark read",
			alertID: "a1",
			mockCall: func(repo *alertmocks.AlertRepository) {
				repo.On("MarkRead", mock.Anything, "m1", "a1").Return(true, nil).Once()
			},
		},
		{
			name:    "error: alert of another merchant",
			alertID: "a9",
			mockCall: func(repo *alertmocks.AlertRepository) {
				repo.On("MarkRead", mock.Anything, "m1", "a9").Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: empty alert id",
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: MarkRead returns error",
			alertID: "a1",
			mockCall: func(repo *alertmocks.AlertRepository) {
				repo.On("MarkRead", mock.Anything, "m1", "a1").Return(false, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := alertmocks.NewAlertRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appalert.NewAlertApp(&config.Config{}, repo, reportmocks.NewReportRepository(t))

			err := app.DismissAlert(context.Background(), "m1", tt.alertID)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAlertApp_DismissAllAlerts(t *testing.T) {
	repo := alertmocks.NewAlertRepository(t)
	repo.On("MarkAllRead", mock.Anything, "m1").Return(int64(3), nil).Once()
	repo.On("MarkAllRead", mock.Anything, "m1").Return(int64(0), nil).Once()

	app := appalert.NewAlertApp(&config.Config{}, repo, reportmocks.NewReportRepository(t))

	changed, err := app.DismissAllAlerts(context.Background(), "m1")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = app.DismissAllAlerts(context.Background(), "m1")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestAlertApp_CheckLowStock(t *testing.T) {
	alertRepo := alertmocks.NewAlertRepository(t)
	reportRepo := reportmocks.NewReportRepository(t)

	reportRepo.On("GetLowStockProducts", mock.Anything, "m1", int64(constant.LowStockThreshold)).Return([]model.ProductDetail{
		{ID: "p1", MerchantID: "m1", Quantity: 0},
		{ID: "p2", MerchantID: "m1", Quantity: 4},
		{ID: "p3", MerchantID: "m1", Quantity: 10},
	}, nil).Once()
	alertRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.InventoryAlert) bool { return *a.ProductID == "p1" })).Return(nil).Once()
	alertRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.InventoryAlert) bool { return *a.ProductID == "p2" })).Return(errors.New("db down")).Once()
	alertRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.InventoryAlert) bool { return *a.ProductID == "p3" })).Return(nil).Once()

	app := appalert.NewAlertApp(&config.Config{}, alertRepo, reportRepo)

	created, err := app.CheckLowStock(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestAlertApp_CheckLowStock_RepositoryError(t *testing.T) {
	reportRepo := reportmocks.NewReportRepository(t)
	reportRepo.On("GetLowStockProducts", mock.Anything, "m1", int64(constant.LowStockThreshold)).Return(nil, errors.New("db down")).Once()

	app := appalert.NewAlertApp(&config.Config{}, alertmocks.NewAlertRepository(t), reportRepo)

	_, err := app.CheckLowStock(context.Background(), "m1")
	assertErrCode(t, err, constant.ErrInternal)
}
