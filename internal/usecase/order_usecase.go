package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/naik-shashank/AgriMart/internal/domain"
	"github.com/sirupsen/logrus"
)

// OrderInput is the raw create-order request: outlet and line items
// arrive as strings and are parsed here.
type OrderInput struct {
	StoreID    string
	OutletID   string
	Lines      string
	TotalPrice float64
}

type OrderUseCase interface {
	CreateOrder(ctx context.Context, customer *domain.User, input OrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter, page, limit int) ([]domain.Order, int64, error)
}

type orderUseCase struct {
	orderRepo domain.OrderRepository
	log       *logrus.Logger
}

func NewOrderUseCase(repo domain.OrderRepository, logger *logrus.Logger) OrderUseCase {
	return &orderUseCase{
		orderRepo: repo,
		log:       logger,
	}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, customer *domain.User, input OrderInput) (*domain.Order, error) {
	outletID, err := domain.ParseRef(input.OutletID)
	if err != nil {
		uc.log.Warnf("Use Case: Invalid outlet ID %q on order creation: %v", input.OutletID, err)
		return nil, err
	}

	var lines []domain.OrderLine
	if err := json.Unmarshal([]byte(input.Lines), &lines); err != nil {
		uc.log.Errorf("Use Case: Failed to decode order line items for customer %s: %v", customer.ID.Hex(), err)
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}

	order := &domain.Order{
		CustomerID: customer.ID,
		OutletID:   outletID,
		StoreID:    input.StoreID,
		Lines:      lines,
		TotalPrice: input.TotalPrice,
		Status:     domain.StatusPending,
	}

	uc.log.Infof("Use Case: Attempting to save order for customer %s (outlet %s, %d lines)",
		customer.ID.Hex(), outletID.Hex(), len(lines))
	createdOrder, err := uc.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create order for customer %s: %v", customer.ID.Hex(), err)
		return nil, err
	}

	uc.log.Infof("Use Case: Order created successfully with ID %s for customer %s", createdOrder.ID.Hex(), customer.ID.Hex())
	return createdOrder, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, filter domain.OrderFilter, page, limit int) ([]domain.Order, int64, error) {
	page, limit = clampPage(page, limit)
	offset := (page - 1) * limit

	uc.log.Infof("Use Case: Listing orders (page: %d, limit: %d, status: %q)", page, limit, filter.Status)
	orders, err := uc.orderRepo.ListOrders(ctx, filter, limit, offset)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list orders: %v", err)
		return nil, 0, fmt.Errorf("could not retrieve orders: %w", err)
	}

	total, err := uc.orderRepo.CountOrders(ctx, filter)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to count orders: %v", err)
		return nil, 0, fmt.Errorf("could not count orders: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d of %d orders", len(orders), total)
	return orders, total, nil
}
