package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dkrasnov/storefront/internal/logging"
	"github.com/dkrasnov/storefront/internal/metrics"
	"github.com/dkrasnov/storefront/internal/mykafka"
	"github.com/dkrasnov/storefront/internal/service"
	"github.com/dkrasnov/storefront/internal/transport"
)

type OrderHandler struct {
	Svc      *service.LedgerService
	Producer *mykafka.Producer
}

func (h *OrderHandler) publish(c echo.Context, key string, event map[string]any) {
	if h.Producer == nil {
		return
	}
	event["event_id"] = uuid.NewString()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "order_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "error", err)
	}
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	rows, err := h.Svc.GetOrders(ctx)
	if err != nil {
		l.Error("get_orders_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	l.Info("get_orders_success", "count", len(rows))
	return respondList(c, http.StatusOK, len(rows), rows)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_order_failed", "status", 400, "reason", "id is not integer", "error", err)
		return respondBad(c, http.StatusBadRequest, "Order id must be an integer")
	}

	row, err := h.Svc.GetOrder(ctx, id)
	if err != nil {
		l.Warn("get_order_failed", "order_id", id, "error", err)
		return respondError(c, err)
	}

	return respondData(c, http.StatusOK, row)
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return respondBad(c, http.StatusBadRequest, "Invalid request body")
	}

	row, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		l.Warn("create_order_error", "error", err)
		return respondError(c, err)
	}

	metrics.OrdersCreated.Inc()
	h.publish(c, strconv.Itoa(row.OrderID), map[string]any{
		"type":        "order_created",
		"order_id":    row.OrderID,
		"product_id":  row.ProductID,
		"quantity":    row.Quantity,
		"total_price": row.TotalPrice,
	})

	l.Info("create_order_success", "order_id", row.OrderID)
	return respondData(c, http.StatusCreated, row)
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_order")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("update_order_error", "status", 400, "reason", "id is not integer", "error", err)
		return respondBad(c, http.StatusBadRequest, "Order id must be an integer")
	}

	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_error", "status", 400, "reason", "invalid body", "error", err)
		return respondBad(c, http.StatusBadRequest, "Invalid request body")
	}

	order, err := h.Svc.UpdateOrder(ctx, id, req)
	if err != nil {
		l.Warn("update_order_error", "order_id", id, "error", err)
		return respondError(c, err)
	}

	h.publish(c, strconv.Itoa(order.OrderID), map[string]any{
		"type":        "order_updated",
		"order_id":    order.OrderID,
		"quantity":    order.Quantity,
		"total_price": order.TotalPrice,
	})

	l.Info("update_order_success", "order_id", order.OrderID)
	return respondData(c, http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete_order")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("delete_order_error", "status", 400, "reason", "id is not integer", "error", err)
		return respondBad(c, http.StatusBadRequest, "Order id must be an integer")
	}

	if err := h.Svc.DeleteOrder(ctx, id); err != nil {
		l.Warn("delete_order_error", "order_id", id, "error", err)
		return respondError(c, err)
	}

	h.publish(c, strconv.Itoa(id), map[string]any{
		"type":     "order_deleted",
		"order_id": id,
	})

	l.Info("delete_order_success", "order_id", id)
	return respondMessage(c, http.StatusOK, "Order deleted successfully")
}

func (h *OrderHandler) DeleteAllOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete_all_orders")

	removed, err := h.Svc.DeleteAllOrders(ctx)
	if err != nil {
		l.Error("delete_all_orders_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	h.publish(c, "all", map[string]any{
		"type":    "orders_cleared",
		"removed": removed,
	})

	l.Info("delete_all_orders_success", "removed", removed)
	return respondMessage(c, http.StatusOK,
		fmt.Sprintf("All orders deleted successfully (%d records removed)", removed))
}
