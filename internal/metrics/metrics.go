package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_api_requests_total",
			Help: "Total number of API requests by method and status",
		},
		[]string{"method", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	ProductsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_products_created_total",
			Help: "Total number of products created",
		},
	)

	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "Total number of orders created",
		},
	)
)

func init() {
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
	prometheus.MustRegister(ProductsCreated)
	prometheus.MustRegister(OrdersCreated)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			method := c.Request().Method
			APIRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
			APIRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
