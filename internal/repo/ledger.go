package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/dkrasnov/storefront/internal/models"
	"github.com/dkrasnov/storefront/internal/transport"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	order := models.Order{}
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderRow returns a single order joined with its product's current name
// and unit price.
func (r *GormRepo) GetOrderRow(ctx context.Context, id int) (*transport.OrderRow, error) {
	var row transport.OrderRow
	res := r.DB.WithContext(ctx).Model(&models.Order{}).
		Select("orders.order_id, orders.product_id, products.name AS product_name, orders.quantity, orders.total_price, products.price AS unit_price, orders.order_date").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.order_id = ?", id).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *GormRepo) GetOrderRows(ctx context.Context) ([]transport.OrderRow, error) {
	rows := []transport.OrderRow{}
	err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Select("orders.order_id, orders.product_id, products.name AS product_name, orders.quantity, orders.total_price, orders.order_date").
		Joins("JOIN products ON products.id = orders.product_id").
		Order("orders.order_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) UpdateOrder(ctx context.Context, order *models.Order, quantity int, totalPrice float64) (*models.Order, error) {
	order.Quantity = quantity
	order.TotalPrice = totalPrice
	if err := r.DB.WithContext(ctx).Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) DeleteOrder(ctx context.Context, id int) error {
	res := r.DB.WithContext(ctx).Delete(&models.Order{}, id)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DeleteAllOrders removes every order in a single statement and reports how
// many rows went away. Zero is a valid outcome.
func (r *GormRepo) DeleteAllOrders(ctx context.Context) (int64, error) {
	res := r.DB.WithContext(ctx).Where("1 = 1").Delete(&models.Order{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
