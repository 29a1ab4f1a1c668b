package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dkrasnov/storefront/internal/models"
	"github.com/dkrasnov/storefront/internal/repo"
	"github.com/dkrasnov/storefront/internal/transport"
)

type LedgerService struct {
	Repo *repo.GormRepo
}

// CreateOrder reads the product's current unit price and stores the order
// with total_price = price × quantity. The price is never copied from a
// previous order row.
func (s *LedgerService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*transport.OrderRow, error) {
	if req.ProductID == nil || req.Quantity == nil {
		return nil, fail(ErrValidation, "Product ID and quantity are required")
	}
	if *req.Quantity <= 0 {
		return nil, fail(ErrValidation, "Quantity must be greater than 0")
	}

	product, err := s.Repo.GetProduct(ctx, *req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(ErrNotFound, "Product not found")
		}
		return nil, err
	}

	order := models.Order{
		ProductID:  product.ID,
		Quantity:   *req.Quantity,
		TotalPrice: TotalPrice(product.Price, *req.Quantity),
	}

	if _, err := s.Repo.CreateOrder(ctx, &order); err != nil {
		return nil, err
	}

	return &transport.OrderRow{
		OrderID:     order.OrderID,
		ProductID:   order.ProductID,
		ProductName: product.Name,
		Quantity:    order.Quantity,
		TotalPrice:  order.TotalPrice,
		OrderDate:   order.OrderDate,
	}, nil
}

func (s *LedgerService) GetOrders(ctx context.Context) ([]transport.OrderRow, error) {
	return s.Repo.GetOrderRows(ctx)
}

func (s *LedgerService) GetOrder(ctx context.Context, id int) (*transport.OrderRow, error) {
	row, err := s.Repo.GetOrderRow(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(ErrNotFound, "Order not found")
		}
		return nil, err
	}
	return row, nil
}

// UpdateOrder recomputes total_price from the product's price at update
// time, not from the price the order was created with.
func (s *LedgerService) UpdateOrder(ctx context.Context, id int, req transport.UpdateOrderRequest) (*models.Order, error) {
	if req.Quantity == nil {
		return nil, fail(ErrValidation, "Quantity is required")
	}
	if *req.Quantity <= 0 {
		return nil, fail(ErrValidation, "Quantity must be greater than 0")
	}

	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(ErrNotFound, "Order not found")
		}
		return nil, err
	}

	product, err := s.Repo.GetProduct(ctx, order.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(ErrNotFound, "Product not found")
		}
		return nil, err
	}

	return s.Repo.UpdateOrder(ctx, order, *req.Quantity, TotalPrice(product.Price, *req.Quantity))
}

func (s *LedgerService) DeleteOrder(ctx context.Context, id int) error {
	if err := s.Repo.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(ErrNotFound, "Order not found")
		}
		return err
	}
	return nil
}

func (s *LedgerService) DeleteAllOrders(ctx context.Context) (int64, error) {
	return s.Repo.DeleteAllOrders(ctx)
}
