package handlers

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/dkrasnov/storefront/internal/logging"
	"github.com/dkrasnov/storefront/internal/search"
	"github.com/dkrasnov/storefront/internal/util"
)

type SearchHandler struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	q := c.QueryParam("q")
	if q == "" {
		l.Warn("search_failed", "status", 400, "reason", "empty query")
		return respondBad(c, http.StatusBadRequest, "Query parameter q is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, size := util.Calculate(page, size)

	total, products, err := search.Search(ctx, h.ES, h.Index, q, from, size)
	if err != nil {
		l.Error("search_failed", "status", 500, "error", err)
		return respondError(c, err)
	}

	l.Info("search_success", "total", total)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "total": total, "data": products})
}
