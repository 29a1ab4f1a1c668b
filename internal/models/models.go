package models

import (
	"time"
)

type Product struct {
	ID        int       `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name      string    `gorm:"not null"                  json:"name"`
	Price     float64   `gorm:"not null;check:price > 0"  json:"price"`
	CreatedAt time.Time `gorm:"autoCreateTime"            json:"created_at"`
}

type Order struct {
	OrderID    int       `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	ProductID  int       `gorm:"index;not null"                           json:"product_id"`
	Quantity   int       `gorm:"not null;check:quantity > 0"              json:"quantity"`
	TotalPrice float64   `gorm:"not null"                                 json:"total_price"`
	OrderDate  time.Time `gorm:"autoCreateTime"                           json:"order_date"`
}
