package usecase

import (
	"context"
	"fmt"

	"github.com/naik-shashank/AgriMart/internal/domain"
	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter, page, limit int) ([]domain.Product, int64, error)
}

type productUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" || product.Category == "" || product.Price <= 0 {
		uc.log.Warnf("Use Case: Attempted to create product with missing required fields (name: %q, category: %q, price: %f)",
			product.Name, product.Category, product.Price)
		return nil, fmt.Errorf("%w: name, category, and price are required", domain.ErrValidation)
	}
	if product.Img == "" {
		uc.log.Warn("Use Case: Attempted to create product without an image path")
		return nil, fmt.Errorf("%w: image is required", domain.ErrValidation)
	}

	uc.log.Infof("Use Case: Attempting to create product '%s' for outlet %s", product.Name, product.OutletID.Hex())
	createdProduct, err := uc.productRepo.CreateProduct(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product created successfully: ID %s, Name %s", createdProduct.ID.Hex(), createdProduct.Name)
	return createdProduct, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filter domain.ProductFilter, page, limit int) ([]domain.Product, int64, error) {
	page, limit = clampPage(page, limit)
	offset := (page - 1) * limit

	uc.log.Infof("Use Case: Listing products (page: %d, limit: %d, category: %q)", page, limit, filter.Category)
	products, err := uc.productRepo.ListProducts(ctx, filter, limit, offset)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, 0, fmt.Errorf("could not retrieve products: %w", err)
	}

	total, err := uc.productRepo.CountProducts(ctx, filter)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to count products: %v", err)
		return nil, 0, fmt.Errorf("could not count products: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d of %d products", len(products), total)
	return products, total, nil
}

// clampPage guards against zero or negative paging values so the skip
// offset never goes below zero.
func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
