package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dkrasnov/storefront/internal/logging"
	"github.com/dkrasnov/storefront/internal/metrics"
	"github.com/dkrasnov/storefront/internal/models"
	"github.com/dkrasnov/storefront/internal/mykafka"
	"github.com/dkrasnov/storefront/internal/search"
	"github.com/dkrasnov/storefront/internal/service"
	"github.com/dkrasnov/storefront/internal/transport"
)

type ProductHandler struct {
	Svc      *service.CatalogService
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	ESIndex  string
}

func (h *ProductHandler) publish(c echo.Context, key string, event map[string]any) {
	if h.Producer == nil {
		return
	}
	event["event_id"] = uuid.NewString()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "error", err)
	}
}

func (h *ProductHandler) index(c echo.Context, prod *models.Product) {
	if h.ES == nil {
		return
	}
	if err := search.IndexProduct(c.Request().Context(), h.ES, h.ESIndex, prod); err != nil {
		logging.FromContext(c.Request().Context()).Error("es index failed", "product_id", prod.ID, "error", err)
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Svc.GetProducts(ctx)
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	l.Info("get_products_success", "count", len(items))
	return respondList(c, http.StatusOK, len(items), items)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "id is not integer", "error", err)
		return respondBad(c, http.StatusBadRequest, "Product id must be an integer")
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		l.Warn("get_product_failed", "product_id", id, "error", err)
		return respondError(c, err)
	}

	return respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return respondBad(c, http.StatusBadRequest, "Invalid request body")
	}

	prod, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		l.Warn("product_create_error", "error", err)
		return respondError(c, err)
	}

	metrics.ProductsCreated.Inc()
	h.publish(c, strconv.Itoa(prod.ID), map[string]any{
		"type":       "product_created",
		"product_id": prod.ID,
		"name":       prod.Name,
	})
	h.index(c, prod)

	l.Info("create_product_success", "product_id", prod.ID)
	return respondData(c, http.StatusCreated, prod)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "id is not integer", "error", err)
		return respondBad(c, http.StatusBadRequest, "Product id must be an integer")
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "invalid body", "error", err)
		return respondBad(c, http.StatusBadRequest, "Invalid request body")
	}

	prod, err := h.Svc.UpdateProduct(ctx, id, req)
	if err != nil {
		l.Warn("product_update_error", "product_id", id, "error", err)
		return respondError(c, err)
	}

	h.publish(c, strconv.Itoa(prod.ID), map[string]any{
		"type":       "product_updated",
		"product_id": prod.ID,
		"name":       prod.Name,
	})
	h.index(c, prod)

	l.Info("update_product_success", "product_id", prod.ID)
	return respondData(c, http.StatusOK, prod)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("product_delete_error", "status", 400, "reason", "id is not integer", "error", err)
		return respondBad(c, http.StatusBadRequest, "Product id must be an integer")
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		l.Warn("product_delete_error", "product_id", id, "error", err)
		return respondError(c, err)
	}

	h.publish(c, strconv.Itoa(id), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})
	if h.ES != nil {
		if err := search.DeleteProduct(ctx, h.ES, h.ESIndex, id); err != nil {
			l.Error("es delete failed", "product_id", id, "error", err)
		}
	}

	l.Info("delete_product_success", "product_id", id)
	return respondMessage(c, http.StatusOK, "Product deleted successfully")
}
