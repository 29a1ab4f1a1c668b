package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkrasnov/storefront/internal/logging"
	"github.com/dkrasnov/storefront/internal/service"
	"github.com/dkrasnov/storefront/internal/util"
)

type ReportHandler struct {
	Svc *service.ReportService
}

func (h *ReportHandler) TopSellers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "report.top_sellers")

	limit := util.ParseIntDefault(c.QueryParam("limit"), service.DefaultTopSellersLimit)

	rows, err := h.Svc.TopSellers(ctx, limit)
	if err != nil {
		l.Error("top_sellers_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	l.Info("top_sellers_success", "count", len(rows))
	return respondList(c, http.StatusOK, len(rows), rows)
}

func (h *ReportHandler) SalesSummary(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "report.sales_summary")

	row, err := h.Svc.SalesSummary(ctx)
	if err != nil {
		l.Error("sales_summary_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	l.Info("sales_summary_success")
	return respondData(c, http.StatusOK, row)
}

func (h *ReportHandler) ProductPerformance(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "report.product_performance")

	rows, err := h.Svc.ProductPerformance(ctx)
	if err != nil {
		l.Error("product_performance_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	l.Info("product_performance_success", "count", len(rows))
	return respondList(c, http.StatusOK, len(rows), rows)
}
