package product

import (
	"context"

	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	productRepo "github.com/muhammadheryan/inventory/repository/product"
	"github.com/muhammadheryan/inventory/utils/errors"
	"github.com/muhammadheryan/inventory/utils/logger"
	"go.uber.org/zap"
)

const maxPerPage = 100

type ProductApp interface {
	ListProducts(ctx context.Context, merchantID string, page, perPage int) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, merchantID, id string) (*model.ProductDetail, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, merchantID string, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	items, total, err := s.productRepo.List(ctx, merchantID, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("merchant_id", merchantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if items == nil {
		items = []model.ProductListItem{}
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, merchantID, id string) (*model.ProductDetail, error) {
	result, err := s.productRepo.GetByID(ctx, merchantID, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("product_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return result, nil
}
