package transport

import "time"

type CreateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type UpdateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type CreateOrderRequest struct {
	ProductID *int `json:"product_id"`
	Quantity  *int `json:"quantity"`
}

type UpdateOrderRequest struct {
	Quantity *int `json:"quantity"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// OrderRow is an order joined with its product's current name. UnitPrice is
// filled only on single-order reads.
type OrderRow struct {
	OrderID     int       `json:"order_id"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	TotalPrice  float64   `json:"total_price"`
	UnitPrice   float64   `json:"unit_price,omitempty"`
	OrderDate   time.Time `json:"order_date"`
}

type TopSeller struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	TotalQuantitySold int     `json:"total_quantity_sold"`
	NumberOfOrders    int     `json:"number_of_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
}

type SalesSummary struct {
	TotalOrders       int        `json:"total_orders"`
	TotalItemsSold    int        `json:"total_items_sold"`
	TotalRevenue      float64    `json:"total_revenue"`
	AverageOrderValue float64    `json:"average_order_value"`
	FirstOrderDate    *time.Time `json:"first_order_date"`
	LastOrderDate     *time.Time `json:"last_order_date"`
}

type ProductPerformance struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	TotalSold  int     `json:"total_sold"`
	OrderCount int     `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}
