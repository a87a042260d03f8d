package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/naik-shashank/AgriMart/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type mockProductRepository struct {
	createErr error
	created   *domain.Product

	products  []domain.Product
	listErr   error
	gotFilter domain.ProductFilter
	gotLimit  int
	gotOffset int

	total    int64
	countErr error
}

func (m *mockProductRepository) CreateProduct(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = product
	created := *product
	created.ID = primitive.NewObjectID()
	return &created, nil
}

func (m *mockProductRepository) ListProducts(_ context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, error) {
	m.gotFilter = filter
	m.gotLimit = limit
	m.gotOffset = offset
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.products, nil
}

func (m *mockProductRepository) CountProducts(_ context.Context, filter domain.ProductFilter) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.total, nil
}

func validProduct() *domain.Product {
	return &domain.Product{
		Name:     "Tomatoes",
		Category: "Vegetables",
		Price:    3.49,
		Img:      "uploads/tomatoes.jpg",
		OutletID: primitive.NewObjectID(),
	}
}

func TestProductUseCase_CreateProduct(t *testing.T) {
	repo := &mockProductRepository{}
	uc := NewProductUseCase(repo, testLogger())

	created, err := uc.CreateProduct(context.Background(), validProduct())
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Tomatoes", created.Name)
}

func TestProductUseCase_CreateProduct_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *domain.Product)
	}{
		{"empty name", func(p *domain.Product) { p.Name = "" }},
		{"empty category", func(p *domain.Product) { p.Category = "" }},
		{"zero price", func(p *domain.Product) { p.Price = 0 }},
		{"empty image path", func(p *domain.Product) { p.Img = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockProductRepository{}
			uc := NewProductUseCase(repo, testLogger())

			product := validProduct()
			tc.mutate(product)

			_, err := uc.CreateProduct(context.Background(), product)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Nil(t, repo.created)
		})
	}
}

func TestProductUseCase_CreateProduct_DuplicatePassthrough(t *testing.T) {
	repo := &mockProductRepository{createErr: domain.ErrProductExists}
	uc := NewProductUseCase(repo, testLogger())

	_, err := uc.CreateProduct(context.Background(), validProduct())
	assert.ErrorIs(t, err, domain.ErrProductExists)
}

func TestProductUseCase_ListProducts_OffsetMath(t *testing.T) {
	cases := []struct {
		page, limit        int
		wantLimit, wantOff int
	}{
		{1, 10, 10, 0},
		{2, 10, 10, 10},
		{3, 5, 5, 10},
		{0, 10, 10, 0},  // clamped to page 1
		{-4, 0, 10, 0},  // both clamped to defaults
		{2, -1, 10, 10}, // limit clamped to default
	}

	for _, tc := range cases {
		repo := &mockProductRepository{total: 99}
		uc := NewProductUseCase(repo, testLogger())

		_, total, err := uc.ListProducts(context.Background(), domain.ProductFilter{}, tc.page, tc.limit)
		require.NoError(t, err)
		assert.Equal(t, tc.wantLimit, repo.gotLimit, "page=%d limit=%d", tc.page, tc.limit)
		assert.Equal(t, tc.wantOff, repo.gotOffset, "page=%d limit=%d", tc.page, tc.limit)
		assert.Equal(t, int64(99), total)
	}
}

func TestProductUseCase_ListProducts_FilterPassthrough(t *testing.T) {
	outletID := primitive.NewObjectID()
	repo := &mockProductRepository{}
	uc := NewProductUseCase(repo, testLogger())

	filter := domain.ProductFilter{Category: "Fruits", OutletID: &outletID}
	_, _, err := uc.ListProducts(context.Background(), filter, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, filter, repo.gotFilter)
}

func TestProductUseCase_ListProducts_CountError(t *testing.T) {
	repo := &mockProductRepository{countErr: assert.AnError}
	uc := NewProductUseCase(repo, testLogger())

	_, _, err := uc.ListProducts(context.Background(), domain.ProductFilter{}, 1, 10)
	assert.Error(t, err)
}
