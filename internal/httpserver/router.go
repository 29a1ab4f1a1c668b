package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/dkrasnov/storefront/internal/auth"
	"github.com/dkrasnov/storefront/internal/handlers"
	"github.com/dkrasnov/storefront/internal/metrics"
)

type Deps struct {
	ProductHandler *handlers.ProductHandler
	OrderHandler   *handlers.OrderHandler
	ReportHandler  *handlers.ReportHandler
	AuthHandler    *handlers.AuthHandler
	SearchHandler  *handlers.SearchHandler
	Tokens         *auth.TokenService
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	v1 := e.Group("/api/v1")

	v1.POST("/auth/login", d.AuthHandler.Login)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	if d.SearchHandler != nil {
		products.GET("/search", d.SearchHandler.Search)
	}
	products.GET("/:id", d.ProductHandler.GetProduct)

	admin := v1.Group("/products", d.Tokens.RequireAdmin)
	admin.POST("", d.ProductHandler.CreateProduct)
	admin.PUT("/:id", d.ProductHandler.UpdateProduct)
	admin.DELETE("/:id", d.ProductHandler.DeleteProduct)

	orders := v1.Group("/orders")
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.PUT("/:id", d.OrderHandler.UpdateOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)
	orders.DELETE("", d.OrderHandler.DeleteAllOrders)

	report := v1.Group("/report")
	report.GET("/top-sellers", d.ReportHandler.TopSellers)
	report.GET("/sales-summary", d.ReportHandler.SalesSummary)
	report.GET("/product-performance", d.ReportHandler.ProductPerformance)
}
