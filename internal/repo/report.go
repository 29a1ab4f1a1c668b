package repo

import (
	"context"

	"github.com/dkrasnov/storefront/internal/models"
	"github.com/dkrasnov/storefront/internal/transport"
)

// TopSellers aggregates quantity, order count and revenue per product over
// an inner join, so products without a single order never appear.
func (r *GormRepo) TopSellers(ctx context.Context, limit int) ([]transport.TopSeller, error) {
	rows := []transport.TopSeller{}
	err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Select("products.id, products.name, products.price, SUM(orders.quantity) AS total_quantity_sold, COUNT(orders.order_id) AS number_of_orders, SUM(orders.total_price) AS total_revenue").
		Joins("JOIN orders ON orders.product_id = products.id").
		Group("products.id, products.name, products.price").
		Order("total_quantity_sold DESC, products.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) SalesSummary(ctx context.Context) (*transport.SalesSummary, error) {
	var row transport.SalesSummary
	err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Select("COUNT(order_id) AS total_orders, COALESCE(SUM(quantity), 0) AS total_items_sold, COALESCE(SUM(total_price), 0) AS total_revenue, COALESCE(AVG(total_price), 0) AS average_order_value, MIN(order_date) AS first_order_date, MAX(order_date) AS last_order_date").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ProductPerformance is the unfiltered, unlimited variant of TopSellers:
// a left join keeps zero-sales products with zeroed metrics.
func (r *GormRepo) ProductPerformance(ctx context.Context) ([]transport.ProductPerformance, error) {
	rows := []transport.ProductPerformance{}
	err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Select("products.id, products.name, products.price, COALESCE(SUM(orders.quantity), 0) AS total_sold, COUNT(orders.order_id) AS order_count, COALESCE(SUM(orders.total_price), 0) AS revenue").
		Joins("LEFT JOIN orders ON orders.product_id = products.id").
		Group("products.id, products.name, products.price").
		Order("total_sold DESC, products.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
